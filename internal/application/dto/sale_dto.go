package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest un ítem crudo de la orden: producto, cantidad y precio unitario.
// Price es puntero para distinguir "ausente" de cero (cero es un precio válido).
type SaleItemRequest struct {
	ProductID string           `json:"product"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// CreateSaleRequest body para POST /api/sales: cliente + lista de ítems.
// El usuario que ejecuta la venta viene del token, no del body.
type CreateSaleRequest struct {
	Customer string            `json:"customer"`
	Items    []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta con su total calculado.
type SaleItemResponse struct {
	ProductID   string          `json:"product"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse venta confirmada con identificador generado, líneas y total.
type SaleResponse struct {
	ID          string             `json:"_id"`
	Date        time.Time          `json:"date"`
	Customer    string             `json:"customer"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	UserID      string             `json:"user"`
	Username    string             `json:"username,omitempty"`
}
