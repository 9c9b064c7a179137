package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dparada2020225/inventario-server/internal/application/sales"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/entity"
)

type stubGenerator struct {
	out []byte
	err error
}

func (g *stubGenerator) GenerateReceiptPDF(ctx context.Context, sale *entity.Sale) ([]byte, error) {
	return g.out, g.err
}

func TestDownloadReceiptPDF_OK(t *testing.T) {
	venta := &entity.Sale{
		ID:          "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Date:        time.Now(),
		Customer:    clientePepe,
		TotalAmount: decimal.RequireFromString("15.00"),
	}
	repoSales := []*entity.Sale{venta}
	repo := &memSaleRepo{sales: &repoSales}
	uc := sales.NewPDFUseCase(repo, &stubGenerator{out: []byte("%PDF-1.7 fake")})

	data, filename, err := uc.DownloadReceiptPDF(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)
	assert.Equal(t, "venta_"+venta.ID+".pdf", filename)
}

func TestDownloadReceiptPDF_VentaInexistente(t *testing.T) {
	vacio := []*entity.Sale{}
	uc := sales.NewPDFUseCase(&memSaleRepo{sales: &vacio}, &stubGenerator{})

	_, _, err := uc.DownloadReceiptPDF(context.Background(), "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
