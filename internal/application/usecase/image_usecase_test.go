package usecase_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dparada2020225/inventario-server/internal/application/usecase"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
)

type fakeImageRepo struct {
	items map[string]*entity.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{items: make(map[string]*entity.Image)}
}

func (r *fakeImageRepo) Save(img *entity.Image) error {
	r.items[img.ID] = img
	return nil
}

func (r *fakeImageRepo) GetByID(id string) (*entity.Image, error) {
	return r.items[id], nil
}

func TestImage_Upload_PersisteConNombrePrefijado(t *testing.T) {
	repo := newFakeImageRepo()
	uc := usecase.NewImageUseCase(repo)

	data := []byte{0xFF, 0xD8, 0xFF, 0xE0} // cabecera JPEG
	resp, err := uc.Upload("foto.jpg", "image/jpeg", data)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ImageID)
	assert.True(t, strings.HasSuffix(resp.Filename, "-foto.jpg"),
		"el nombre debe llevar el timestamp como prefijo")
	assert.Equal(t, "image/jpeg", resp.ContentType)

	img, err := uc.Get(resp.ImageID)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, img.Data))
	assert.Equal(t, int64(len(data)), img.Size)
}

func TestImage_Upload_RechazaTipoNoPermitido(t *testing.T) {
	uc := usecase.NewImageUseCase(newFakeImageRepo())
	_, err := uc.Upload("doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "solo se permiten imágenes")
}

func TestImage_Upload_RechazaArchivoVacio(t *testing.T) {
	uc := usecase.NewImageUseCase(newFakeImageRepo())
	_, err := uc.Upload("vacio.png", "image/png", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImage_Upload_RechazaMayorA5MB(t *testing.T) {
	uc := usecase.NewImageUseCase(newFakeImageRepo())
	grande := make([]byte, usecase.MaxImageSize+1)
	_, err := uc.Upload("grande.png", "image/png", grande)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "5MB")
}

func TestImage_Get_IDInvalido(t *testing.T) {
	uc := usecase.NewImageUseCase(newFakeImageRepo())
	_, err := uc.Get("no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImage_Get_NoExiste(t *testing.T) {
	uc := usecase.NewImageUseCase(newFakeImageRepo())
	_, err := uc.Get("55555555-5555-5555-5555-555555555555")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
