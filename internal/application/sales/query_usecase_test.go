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

func TestGetSaleByID_Existente(t *testing.T) {
	venta := &entity.Sale{
		ID:          "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		Date:        time.Now(),
		Customer:    clientePepe,
		TotalAmount: decimal.RequireFromString("15.00"),
		Items: []entity.SaleItem{
			{ProductID: prodCamisa, ProductName: "Camisa", Quantity: 3,
				Price: decimal.RequireFromString("5.00"), Total: decimal.RequireFromString("15.00")},
		},
	}
	repoSales := []*entity.Sale{venta}
	uc := sales.NewQueryUseCase(&memSaleRepo{sales: &repoSales})

	resp, err := uc.GetSaleByID(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Camisa", resp.Items[0].ProductName)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("15.00")))
}

func TestGetSaleByID_NoExiste(t *testing.T) {
	vacio := []*entity.Sale{}
	uc := sales.NewQueryUseCase(&memSaleRepo{sales: &vacio})

	_, err := uc.GetSaleByID(context.Background(), "cccccccc-cccc-cccc-cccc-cccccccccccc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una venta confirmada sobrevive a la eliminación del producto del catálogo:
// la línea pierde la referencia (ID y nombre vacíos) pero conserva cantidad,
// precio y total, y la lectura no falla.
func TestGetSaleByID_ProductoEliminadoDelCatalogo(t *testing.T) {
	venta := &entity.Sale{
		ID:          "dddddddd-dddd-dddd-dddd-dddddddddddd",
		Date:        time.Now(),
		Customer:    clientePepe,
		TotalAmount: decimal.RequireFromString("15.00"),
		Items: []entity.SaleItem{
			// Así entrega el repositorio una línea cuyo producto ya no existe.
			{ProductID: "", ProductName: "", Quantity: 3,
				Price: decimal.RequireFromString("5.00"), Total: decimal.RequireFromString("15.00")},
		},
	}
	repoSales := []*entity.Sale{venta}
	uc := sales.NewQueryUseCase(&memSaleRepo{sales: &repoSales})

	resp, err := uc.GetSaleByID(context.Background(), venta.ID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Empty(t, resp.Items[0].ProductID)
	assert.Empty(t, resp.Items[0].ProductName)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].Total.Equal(decimal.RequireFromString("15.00")))
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("15.00")),
		"el total histórico no depende del catálogo")
}

func TestGetAllSales(t *testing.T) {
	repoSales := []*entity.Sale{
		{ID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", TotalAmount: decimal.RequireFromString("15.00")},
		{ID: "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", TotalAmount: decimal.RequireFromString("46.75")},
	}
	uc := sales.NewQueryUseCase(&memSaleRepo{sales: &repoSales})

	list, err := uc.GetAllSales(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, repoSales[0].ID, list[0].ID)
}
