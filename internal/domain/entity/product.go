package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de inventario.
// Stock es un entero no negativo: solo lo mutan el restock (Update) y los
// descuentos de venta dentro de una transacción. Nunca queda negativo.
type Product struct {
	ID                string
	Name              string
	Category          string
	Color             string
	Stock             int
	SalePrice         decimal.Decimal // precio de venta al público
	LastPurchasePrice decimal.Decimal // último precio de compra
	ImageID           string          // referencia opcional a la imagen almacenada
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
