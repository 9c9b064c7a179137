package sales

import (
	"context"
	"fmt"

	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

// PDFUseCase genera el comprobante PDF de una venta ya confirmada.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando el repositorio y el generador.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator}
}

// DownloadReceiptPDF recupera la venta con sus líneas enriquecidas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("venta_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
