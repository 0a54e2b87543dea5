// Package stock contiene el caso de uso del Stock Aggregator: cifras de stock
// por producto derivadas de lotes y ventas vivas. Todas las pantallas y chequeos
// de sobre-venta leen de aquí; no hay sumas duplicadas en otros call-sites.
package stock

import (
	"context"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
	domstock "github.com/jhoicas/fruver-ledger/internal/domain/stock"
)

// UseCase agregador de stock (solo lectura, seguro para invocación concurrente).
type UseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{stockRepo: stockRepo, productRepo: productRepo}
}

// GetCurrentStock devuelve comprado/vendido/restante/sobre-vendido y estado del producto.
// Sin lotes ni ventas devuelve todo en cero con estado OK.
func (uc *UseCase) GetCurrentStock(ctx context.Context, productID string) (*dto.ProductStockDTO, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	purchased, sold, err := uc.stockRepo.ProductTotals(ctx, productID)
	if err != nil {
		return nil, err
	}
	f := domstock.Compute(purchased, sold)

	return &dto.ProductStockDTO{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitType:    product.UnitType,
		Purchased:   f.Purchased,
		Sold:        f.Sold,
		Remaining:   f.Remaining,
		ExtraSold:   f.ExtraSold,
		Status:      f.Status,
	}, nil
}

// GetOverview devuelve las cifras de stock de todos los productos activos.
func (uc *UseCase) GetOverview(ctx context.Context) (*dto.StockOverviewDTO, error) {
	rows, err := uc.stockRepo.ListProductTotals(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductStockDTO, 0, len(rows))
	for _, row := range rows {
		f := domstock.Compute(row.Purchased, row.Sold)
		items = append(items, dto.ProductStockDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitType:    row.UnitType,
			Purchased:   f.Purchased,
			Sold:        f.Sold,
			Remaining:   f.Remaining,
			ExtraSold:   f.ExtraSold,
			Status:      f.Status,
		})
	}
	return &dto.StockOverviewDTO{Items: items}, nil
}
