package repository

import "github.com/dparada2020225/inventario-server/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale. Create persiste la
// cabecera y todas sus líneas; dentro de una tx es todo-o-nada. Las ventas
// confirmadas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
