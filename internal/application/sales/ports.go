package sales

import (
	"context"

	"github.com/dparada2020225/inventario-server/internal/domain/entity"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la capacidad de "alcance transaccional"
// del motor de ventas: las lecturas ven las escrituras previas del mismo
// alcance y todas las escrituras se vuelven visibles atómicamente en el
// commit, o ninguna en el rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una venta confirmada.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale) ([]byte, error)
}
