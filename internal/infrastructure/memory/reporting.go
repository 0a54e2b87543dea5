package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var (
	_ repository.StockRepository  = (*StockRepo)(nil)
	_ repository.StockRepository  = (*txStockRepo)(nil)
	_ repository.LedgerRepository = (*LedgerRepo)(nil)
)

// StockRepo agregador de stock sobre el store.
type StockRepo struct {
	s *Store
}

// NewStockRepository construye el agregador de stock.
func NewStockRepository(s *Store) *StockRepo {
	return &StockRepo{s: s}
}

func (r *StockRepo) ProductTotals(ctx context.Context, productID string) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	purchased, sold := r.s.productTotals(productID)
	return purchased, sold, nil
}

func (r *StockRepo) ListProductTotals(ctx context.Context) ([]repository.ProductTotalsRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listProductTotals(), nil
}

type txStockRepo struct {
	s *Store
}

func (r *txStockRepo) ProductTotals(ctx context.Context, productID string) (decimal.Decimal, decimal.Decimal, error) {
	purchased, sold := r.s.productTotals(productID)
	return purchased, sold, nil
}

func (r *txStockRepo) ListProductTotals(ctx context.Context) ([]repository.ProductTotalsRow, error) {
	return r.s.listProductTotals(), nil
}

func (s *Store) productTotals(productID string) (decimal.Decimal, decimal.Decimal) {
	purchased, sold := decimal.Zero, decimal.Zero
	for _, l := range s.lots {
		if !l.IsDeleted && l.ProductID == productID {
			purchased = purchased.Add(l.Quantity)
		}
	}
	for _, sl := range s.sales {
		if !sl.IsDeleted && sl.ProductID == productID {
			sold = sold.Add(sl.Quantity)
		}
	}
	return purchased, sold
}

func (s *Store) listProductTotals() []repository.ProductTotalsRow {
	var list []repository.ProductTotalsRow
	for _, p := range s.products {
		if p.IsDeleted {
			continue
		}
		purchased, sold := s.productTotals(p.ID)
		list = append(list, repository.ProductTotalsRow{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitType:    p.UnitType,
			Purchased:   purchased,
			Sold:        sold,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductName < list[j].ProductName })
	return list
}

// LedgerRepo fuente de datos del libro de lotes sobre el store.
type LedgerRepo struct {
	s *Store
}

// NewLedgerRepository construye la fuente de datos del libro de lotes.
func NewLedgerRepository(s *Store) *LedgerRepo {
	return &LedgerRepo{s: s}
}

// Snapshot lee lotes y ventas bajo un solo RLock: la misma garantía de foto
// consistente que da la tx read-only en Postgres.
func (r *LedgerRepo) Snapshot(ctx context.Context, f repository.LotFilter) ([]repository.LedgerLotRow, []repository.LedgerSaleRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	lots, err := r.s.listActiveLots(f)
	if err != nil {
		return nil, nil, err
	}

	lotRows := make([]repository.LedgerLotRow, 0, len(lots))
	included := make(map[string]bool, len(lots))
	for _, l := range lots {
		included[l.ID] = true
		row := repository.LedgerLotRow{
			ID:           l.ID,
			ProductID:    l.ProductID,
			LotName:      l.LotName,
			Quantity:     l.Quantity,
			Rate:         l.Rate,
			TotalAmount:  l.TotalAmount,
			RemainingQty: l.RemainingQty,
			Date:         l.Date,
			Notes:        l.Notes,
		}
		if p, ok := r.s.products[l.ProductID]; ok {
			row.ProductName = p.Name
			row.UnitType = p.UnitType
		}
		for _, vid := range l.VendorIDs {
			if v, ok := r.s.vendors[vid]; ok {
				row.VendorNames = append(row.VendorNames, v.Name)
			}
		}
		sort.Strings(row.VendorNames)
		lotRows = append(lotRows, row)
	}

	var saleRows []repository.LedgerSaleRow
	for _, sl := range r.s.sales {
		if sl.IsDeleted || !included[sl.LotID] {
			continue
		}
		name := "Desconocido"
		if c, ok := r.s.customers[sl.CustomerID]; ok && !c.IsDeleted {
			name = c.Name
		}
		saleRows = append(saleRows, repository.LedgerSaleRow{
			ID:           sl.ID,
			LotID:        sl.LotID,
			CustomerName: name,
			Kind:         sl.Kind,
			Quantity:     sl.Quantity,
			Date:         sl.Date,
		})
	}
	sort.Slice(saleRows, func(i, j int) bool {
		if !saleRows[i].Date.Equal(saleRows[j].Date) {
			return saleRows[i].Date.Before(saleRows[j].Date)
		}
		return saleRows[i].ID < saleRows[j].ID
	})

	return lotRows, saleRows, nil
}
