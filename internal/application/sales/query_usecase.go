package sales

import (
	"context"

	"github.com/dparada2020225/inventario-server/internal/application/dto"
	"github.com/dparada2020225/inventario-server/internal/domain"
	"github.com/dparada2020225/inventario-server/internal/domain/repository"
)

// QueryUseCase lecturas de ventas confirmadas (listado e individual), con
// username y nombres de producto resueltos por el repositorio.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso de lecturas.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// GetAllSales devuelve todas las ventas, más reciente primero.
func (uc *QueryUseCase) GetAllSales(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// GetSaleByID devuelve una venta por ID o ErrNotFound.
func (uc *QueryUseCase) GetSaleByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(s), nil
}
