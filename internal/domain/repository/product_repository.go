package repository

import "github.com/dparada2020225/inventario-server/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y DecrementStock solo tienen sentido dentro de una transacción
// (repositorio atado a la tx vía TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE)
	// para que la verificación de stock sea consistente dentro de la transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta quantity del stock del producto. Debe llamarse
	// solo después de verificar suficiencia dentro de la misma transacción.
	DecrementStock(productID string, quantity int) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
