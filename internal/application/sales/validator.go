package sales

import (
	"github.com/shopspring/decimal"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/domain"
)

// ValidatedItem es un ítem de venta estructuralmente válido: producto presente,
// cantidad positiva y precio unitario no negativo.
type ValidatedItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// ValidateItems verifica la forma de la orden sin efectos secundarios.
// Una lista vacía o ausente es en sí misma una falla de validación; ante un
// ítem defectuoso se reporta el primero, con índice y campo ofensivo.
func ValidateItems(in dto.CreateSaleRequest) ([]ValidatedItem, error) {
	if len(in.Items) == 0 {
		return nil, &domain.EmptySaleError{}
	}
	items := make([]ValidatedItem, 0, len(in.Items))
	for i, raw := range in.Items {
		if raw.ProductID == "" {
			return nil, &domain.InvalidItemError{Index: i, Field: "product"}
		}
		if raw.Quantity <= 0 {
			return nil, &domain.InvalidItemError{Index: i, Field: "quantity"}
		}
		if raw.Price == nil || raw.Price.IsNegative() {
			return nil, &domain.InvalidItemError{Index: i, Field: "price"}
		}
		items = append(items, ValidatedItem{
			ProductID: raw.ProductID,
			Quantity:  raw.Quantity,
			UnitPrice: *raw.Price,
		})
	}
	return items, nil
}
