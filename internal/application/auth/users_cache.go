package auth

import (
	"sync"
	"time"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
)

// usersCache caché explícita y acotada en el tiempo para el listado de usuarios.
// Una entrada es válida durante ttl desde que se pobló; cualquier escritura de
// usuarios debe llamar invalidate. No es estado ambiental: vive dentro del use
// case y se invalida por disparadores concretos.
type usersCache struct {
	mu        sync.Mutex
	data      []*dto.UserResponse
	fetchedAt time.Time
	ttl       time.Duration
}

func newUsersCache(ttl time.Duration) *usersCache {
	return &usersCache{ttl: ttl}
}

// get devuelve la entrada cacheada y true si aún no expira.
func (c *usersCache) get() ([]*dto.UserResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil || time.Since(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.data, true
}

// set puebla la caché y reinicia el TTL.
func (c *usersCache) set(data []*dto.UserResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.fetchedAt = time.Now()
}

// invalidate descarta la entrada; el próximo get consultará la BD.
func (c *usersCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
}
