package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dparada2020225/inventario-server/internal/domain/entity"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo almacena imágenes en la tabla images (bytea). Cumple el mismo rol
// que el bucket de archivos del sistema anterior, con el motor ya presente.
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador de imágenes.
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// Save persiste la imagen completa (metadatos + bytes).
func (r *ImageRepo) Save(image *entity.Image) error {
	query := `
		INSERT INTO images (id, filename, content_type, size, data, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		image.ID, image.Filename, image.ContentType, image.Size, image.Data, image.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// GetByID recupera una imagen por ID.
func (r *ImageRepo) GetByID(id string) (*entity.Image, error) {
	query := `
		SELECT id, filename, content_type, size, data, uploaded_at
		FROM images WHERE id = $1`
	var img entity.Image
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&img.ID, &img.Filename, &img.ContentType, &img.Size, &img.Data, &img.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}
