package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea de venta: referencia un producto, cantidad, precio unitario
// y total calculado (cantidad × precio). Inmutable una vez confirmada la venta padre.
type SaleItem struct {
	ProductID   string
	ProductName string // poblado en lecturas vía JOIN; vacío al crear
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// Sale es el registro auditable de una venta confirmada: cliente, líneas en orden,
// total y usuario que la ejecutó. No se expone actualización ni borrado.
type Sale struct {
	ID          string
	Date        time.Time
	Customer    string
	Items       []SaleItem
	TotalAmount decimal.Decimal
	UserID      string
	Username    string // poblado en lecturas vía JOIN; vacío al crear
}
