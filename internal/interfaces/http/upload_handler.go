package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/application/usecase"
	"github.com/dparada2020225/inventario-server/internal/domain"
)

// UploadHandler maneja la subida y descarga de imágenes de producto.
type UploadHandler struct {
	uc *usecase.ImageUseCase
}

// NewUploadHandler construye el handler de imágenes.
func NewUploadHandler(uc *usecase.ImageUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen
// @Tags         images
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "imagen jpg, jpeg, png o gif (máx 5MB)"
// @Success      201    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No se subió ningún archivo"})
	}
	if fileHeader.Size > usecase.MaxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el archivo supera el máximo de 5MB"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno al subir archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno al subir archivo"})
	}
	out, err := h.uc.Upload(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno al subir archivo"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetImage godoc
// @Summary      Obtener imagen por ID
// @Tags         images
// @Produce      image/*
// @Param        id  path  string  true  "ID de la imagen"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /images/{id} [get]
func (h *UploadHandler) GetImage(c *fiber.Ctx) error {
	img, err := h.uc.Get(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID de imagen inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Imagen no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error del servidor al recuperar la imagen"})
	}
	c.Set(fiber.HeaderContentType, img.ContentType)
	return c.Send(img.Data)
}
