package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

// MaxImageSize tamaño máximo de una imagen subida (5 MB).
const MaxImageSize = 5 * 1024 * 1024

// allowedImageTypes mimetypes de imagen aceptados.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ImageUseCase subida y recuperación de imágenes de producto.
type ImageUseCase struct {
	repo repository.ImageRepository
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(repo repository.ImageRepository) *ImageUseCase {
	return &ImageUseCase{repo: repo}
}

// Upload valida tipo y tamaño, y persiste la imagen. El nombre se prefija con
// el timestamp para evitar colisiones, igual que hacía el bucket anterior.
func (uc *ImageUseCase) Upload(filename, contentType string, data []byte) (*dto.UploadResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no se subió ningún archivo", domain.ErrInvalidInput)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("%w: el archivo supera el máximo de 5MB", domain.ErrInvalidInput)
	}
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("%w: solo se permiten imágenes (jpg, jpeg, png, gif)", domain.ErrInvalidInput)
	}
	now := time.Now()
	img := &entity.Image{
		ID:          uuid.New().String(),
		Filename:    fmt.Sprintf("%d-%s", now.UnixMilli(), filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
		UploadedAt:  now,
	}
	if err := uc.repo.Save(img); err != nil {
		return nil, err
	}
	return &dto.UploadResponse{
		ImageID:     img.ID,
		Filename:    img.Filename,
		ContentType: img.ContentType,
	}, nil
}

// Get recupera una imagen por ID o ErrNotFound.
func (uc *ImageUseCase) Get(id string) (*entity.Image, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: ID de imagen inválido", domain.ErrInvalidInput)
	}
	img, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, domain.ErrNotFound
	}
	return img, nil
}
