package repository

import "github.com/dparada2020225/inventario-server/internal/domain/entity"

// ImageRepository define el puerto de persistencia para imágenes.
type ImageRepository interface {
	Save(image *entity.Image) error
	GetByID(id string) (*entity.Image, error)
}
