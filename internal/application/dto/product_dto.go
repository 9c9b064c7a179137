package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. Stock inicial incluido
// (el restock posterior también entra por PUT con este mismo shape).
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Color             string          `json:"color"`
	Stock             int             `json:"stock"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	LastPurchasePrice decimal.Decimal `json:"lastPurchasePrice"`
	ImageID           string          `json:"image,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Mismo shape que create.
type UpdateProductRequest = CreateProductRequest

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"_id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Color             string          `json:"color"`
	Stock             int             `json:"stock"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	LastPurchasePrice decimal.Decimal `json:"lastPurchasePrice"`
	ImageID           string          `json:"image,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
