package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos y exportación CSV.
// El stock solo se muta aquí por restock (Update); los descuentos de venta
// entran por el motor de ventas dentro de su transacción.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos del catálogo.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Create valida y persiste un producto nuevo. El stock inicial no puede ser negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || in.Color == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.SalePrice.IsNegative() || in.LastPurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Category:          in.Category,
		Color:             in.Color,
		Stock:             in.Stock,
		SalePrice:         in.SalePrice,
		LastPurchasePrice: in.LastPurchasePrice,
		ImageID:           in.ImageID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update reemplaza los datos del producto (incluye restock: stock absoluto no negativo).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Stock < 0 || in.SalePrice.IsNegative() || in.LastPurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.Category = in.Category
	p.Color = in.Color
	p.Stock = in.Stock
	p.SalePrice = in.SalePrice
	p.LastPurchasePrice = in.LastPurchasePrice
	p.ImageID = in.ImageID
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ExportCSV genera el catálogo completo en CSV separado por punto y coma:
// id;nombre;categoria;color;stock;precioVenta;precioCompra;imagen
func (uc *ProductUseCase) ExportCSV() ([]byte, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write([]string{"id", "nombre", "categoria", "color", "stock", "precioVenta", "precioCompra", "imagen"}); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.ID, p.Name, p.Category, p.Color,
			strconv.Itoa(p.Stock),
			p.SalePrice.String(),
			p.LastPurchasePrice.String(),
			p.ImageID,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Color:             p.Color,
		Stock:             p.Stock,
		SalePrice:         p.SalePrice,
		LastPurchasePrice: p.LastPurchasePrice,
		ImageID:           p.ImageID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
