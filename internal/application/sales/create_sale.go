package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

// CreateSaleUseCase coordina la creación de una venta como unidad atómica:
// valida la orden, verifica y descuenta stock por ítem y persiste el registro
// de venta dentro de una sola transacción. Cualquier falla aborta el alcance
// completo sin dejar escrituras parciales visibles.
type CreateSaleUseCase struct {
	txRunner TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// CreateSale procesa la orden (cliente + ítems) actuando userID como vendedor.
//
// Secuencia: validación estructural → por cada ítem, lectura del producto con
// bloqueo de fila y verificación de suficiencia dentro de la tx → cálculo de
// totales → descuentos de stock en el orden original → persistencia de la venta
// → commit. La suficiencia se verifica contra el valor leído dentro de la
// transacción, nunca contra un valor cacheado, para evitar la carrera
// lectura-luego-escritura con una venta concurrente del mismo producto.
//
// No reintenta ante conflicto: el rollback lo garantiza el TxRunner y el
// llamador decide si reenvía la orden.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	items, err := ValidateItems(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Lectura con bloqueo y verificación de suficiencia. Un mismo producto
		// puede repetirse entre ítems: remaining acumula lo ya comprometido en
		// esta orden para que la suma combinada tampoco exceda el stock.
		seen := make(map[string]*entity.Product, len(items))
		remaining := make(map[string]int, len(items))
		checked := make([]CheckedItem, 0, len(items))
		for _, it := range items {
			product, ok := seen[it.ProductID]
			if !ok {
				p, err := productRepo.GetForUpdate(it.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return &domain.ProductNotFoundError{ProductID: it.ProductID}
				}
				seen[it.ProductID] = p
				remaining[it.ProductID] = p.Stock
				product = p
			}
			if remaining[it.ProductID] < it.Quantity {
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Name:      product.Name,
					Available: remaining[it.ProductID],
					Requested: it.Quantity,
				}
			}
			remaining[it.ProductID] -= it.Quantity
			checked = append(checked, CheckedItem{Item: it, Product: product})
		}

		// Totales por línea y total general, en el orden de la orden.
		lines, total := Aggregate(checked)

		// Descuentos de stock en el orden original; es la última escritura
		// sobre cada producto dentro de la transacción.
		for _, c := range checked {
			if err := productRepo.DecrementStock(c.Product.ID, c.Item.Quantity); err != nil {
				return err
			}
		}

		sale = &entity.Sale{
			ID:          saleID,
			Date:        now,
			Customer:    in.Customer,
			Items:       lines,
			TotalAmount: total,
			UserID:      userID,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:          s.ID,
		Date:        s.Date,
		Customer:    s.Customer,
		Items:       make([]dto.SaleItemResponse, 0, len(s.Items)),
		TotalAmount: s.TotalAmount,
		UserID:      s.UserID,
		Username:    s.Username,
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Total:       it.Total,
		})
	}
	return resp
}
