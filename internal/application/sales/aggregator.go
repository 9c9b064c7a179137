package sales

import (
	"github.com/shopspring/decimal"

	"github.com/dparada2020225/inventario-server/internal/domain/entity"
)

// CheckedItem empareja un ítem validado con el producto leído dentro de la
// transacción (ya pasó la verificación de suficiencia).
type CheckedItem struct {
	Item    ValidatedItem
	Product *entity.Product
}

// Aggregate calcula el total de cada línea (cantidad × precio unitario) y el
// total general como suma exacta de los totales de línea, preservando el orden
// de entrada. No introduce redondeos más allá de la precisión del decimal.
func Aggregate(checked []CheckedItem) ([]entity.SaleItem, decimal.Decimal) {
	lines := make([]entity.SaleItem, 0, len(checked))
	total := decimal.Zero
	for _, c := range checked {
		lineTotal := c.Item.UnitPrice.Mul(decimal.NewFromInt(int64(c.Item.Quantity)))
		lines = append(lines, entity.SaleItem{
			ProductID:   c.Item.ProductID,
			ProductName: c.Product.Name,
			Quantity:    c.Item.Quantity,
			Price:       c.Item.UnitPrice,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return lines, total
}
