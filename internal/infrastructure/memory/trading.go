package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var (
	_ repository.LotRepository  = (*LotRepo)(nil)
	_ repository.SaleRepository = (*SaleRepo)(nil)
	_ repository.LotRepository  = (*txLotRepo)(nil)
	_ repository.SaleRepository = (*txSaleRepo)(nil)
)

// LotRepo vista del store para lotes, con lock propio.
type LotRepo struct {
	s *Store
}

// NewLotRepository construye la vista de lotes.
func NewLotRepository(s *Store) *LotRepo {
	return &LotRepo{s: s}
}

func (r *LotRepo) Create(lot *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createLot(lot)
}

func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.getLot(id)
}

func (r *LotRepo) Update(lot *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.updateLot(lot)
}

func (r *LotRepo) ListActive(f repository.LotFilter) ([]*entity.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listActiveLots(f)
}

func (r *LotRepo) ListDeleted() ([]*entity.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listDeletedLots()
}

func (r *LotRepo) SoftDelete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.softDeleteLot(id)
}

func (r *LotRepo) Restore(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.restoreLot(id)
}

func (r *LotRepo) AdjustRemaining(id string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.adjustLotRemaining(id, delta)
}

// SaleRepo vista del store para ventas, con lock propio.
type SaleRepo struct {
	s *Store
}

// NewSaleRepository construye la vista de ventas.
func NewSaleRepository(s *Store) *SaleRepo {
	return &SaleRepo{s: s}
}

func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createSale(sale)
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.getSale(id)
}

func (r *SaleRepo) ListActive(f repository.LotFilter) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listActiveSales(f)
}

func (r *SaleRepo) ListActiveByLot(lotID string) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listActiveSalesByLot(lotID)
}

func (r *SaleRepo) ListDeleted() ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listDeletedSales()
}

func (r *SaleRepo) SoftDelete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.softDeleteSale(id)
}

func (r *SaleRepo) Restore(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.restoreSale(id)
}

func (r *SaleRepo) SoftDeleteByLot(lotID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.softDeleteSalesByLot(lotID)
}

func (r *SaleRepo) SumActiveByLot(lotID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sumActiveSalesByLot(lotID)
}

// txLotRepo y txSaleRepo operan sin lock: Run ya sostiene el de escritura.

type txLotRepo struct {
	s *Store
}

func (r *txLotRepo) Create(lot *entity.Lot) error           { return r.s.createLot(lot) }
func (r *txLotRepo) GetByID(id string) (*entity.Lot, error) { return r.s.getLot(id) }
func (r *txLotRepo) Update(lot *entity.Lot) error           { return r.s.updateLot(lot) }
func (r *txLotRepo) ListActive(f repository.LotFilter) ([]*entity.Lot, error) {
	return r.s.listActiveLots(f)
}
func (r *txLotRepo) ListDeleted() ([]*entity.Lot, error) { return r.s.listDeletedLots() }
func (r *txLotRepo) SoftDelete(id string) error          { return r.s.softDeleteLot(id) }
func (r *txLotRepo) Restore(id string) error             { return r.s.restoreLot(id) }
func (r *txLotRepo) AdjustRemaining(id string, delta decimal.Decimal) error {
	return r.s.adjustLotRemaining(id, delta)
}

type txSaleRepo struct {
	s *Store
}

func (r *txSaleRepo) Create(sale *entity.Sale) error          { return r.s.createSale(sale) }
func (r *txSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.s.getSale(id) }
func (r *txSaleRepo) ListActive(f repository.LotFilter) ([]*entity.Sale, error) {
	return r.s.listActiveSales(f)
}
func (r *txSaleRepo) ListActiveByLot(lotID string) ([]*entity.Sale, error) {
	return r.s.listActiveSalesByLot(lotID)
}
func (r *txSaleRepo) ListDeleted() ([]*entity.Sale, error) { return r.s.listDeletedSales() }
func (r *txSaleRepo) SoftDelete(id string) error           { return r.s.softDeleteSale(id) }
func (r *txSaleRepo) Restore(id string) error              { return r.s.restoreSale(id) }
func (r *txSaleRepo) SoftDeleteByLot(lotID string) error   { return r.s.softDeleteSalesByLot(lotID) }
func (r *txSaleRepo) SumActiveByLot(lotID string) (decimal.Decimal, error) {
	return r.s.sumActiveSalesByLot(lotID)
}

// Núcleo sin lock. El caller debe sostener s.mu.

func (s *Store) createLot(lot *entity.Lot) error {
	s.lots[lot.ID] = *lot
	return nil
}

func (s *Store) getLot(id string) (*entity.Lot, error) {
	if l, ok := s.lots[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (s *Store) updateLot(lot *entity.Lot) error {
	s.lots[lot.ID] = *lot
	return nil
}

func matchesFilter(f repository.LotFilter, productID string, date time.Time) bool {
	if f.ProductID != "" && productID != f.ProductID {
		return false
	}
	if f.FromDate != nil && date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && date.After(*f.ToDate) {
		return false
	}
	return true
}

func (s *Store) listActiveLots(f repository.LotFilter) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for _, l := range s.lots {
		if !l.IsDeleted && matchesFilter(f, l.ProductID, l.Date) {
			l := l
			list = append(list, &l)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *Store) listDeletedLots() ([]*entity.Lot, error) {
	var list []*entity.Lot
	for _, l := range s.lots {
		if l.IsDeleted {
			l := l
			list = append(list, &l)
		}
	}
	sortByUpdatedDesc(list, func(l *entity.Lot) time.Time { return l.UpdatedAt })
	return list, nil
}

func (s *Store) softDeleteLot(id string) error {
	if l, ok := s.lots[id]; ok && !l.IsDeleted {
		l.IsDeleted = true
		l.UpdatedAt = time.Now()
		s.lots[id] = l
	}
	return nil
}

func (s *Store) restoreLot(id string) error {
	if l, ok := s.lots[id]; ok && l.IsDeleted {
		l.IsDeleted = false
		l.UpdatedAt = time.Now()
		s.lots[id] = l
	}
	return nil
}

func (s *Store) adjustLotRemaining(id string, delta decimal.Decimal) error {
	if l, ok := s.lots[id]; ok {
		l.RemainingQty = l.RemainingQty.Add(delta)
		l.UpdatedAt = time.Now()
		s.lots[id] = l
	}
	return nil
}

func (s *Store) createSale(sale *entity.Sale) error {
	s.sales[sale.ID] = *sale
	return nil
}

func (s *Store) getSale(id string) (*entity.Sale, error) {
	if sl, ok := s.sales[id]; ok {
		return &sl, nil
	}
	return nil, nil
}

func (s *Store) listActiveSales(f repository.LotFilter) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, sl := range s.sales {
		if !sl.IsDeleted && matchesFilter(f, sl.ProductID, sl.Date) {
			sl := sl
			list = append(list, &sl)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *Store) listActiveSalesByLot(lotID string) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, sl := range s.sales {
		if !sl.IsDeleted && sl.LotID == lotID {
			sl := sl
			list = append(list, &sl)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *Store) listDeletedSales() ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, sl := range s.sales {
		if sl.IsDeleted {
			sl := sl
			list = append(list, &sl)
		}
	}
	sortByUpdatedDesc(list, func(sl *entity.Sale) time.Time { return sl.UpdatedAt })
	return list, nil
}

func (s *Store) softDeleteSale(id string) error {
	if sl, ok := s.sales[id]; ok && !sl.IsDeleted {
		sl.IsDeleted = true
		sl.UpdatedAt = time.Now()
		s.sales[id] = sl
	}
	return nil
}

func (s *Store) restoreSale(id string) error {
	if sl, ok := s.sales[id]; ok && sl.IsDeleted {
		sl.IsDeleted = false
		sl.UpdatedAt = time.Now()
		s.sales[id] = sl
	}
	return nil
}

func (s *Store) softDeleteSalesByLot(lotID string) error {
	for id, sl := range s.sales {
		if sl.LotID == lotID && !sl.IsDeleted {
			sl.IsDeleted = true
			sl.UpdatedAt = time.Now()
			s.sales[id] = sl
		}
	}
	return nil
}

func (s *Store) sumActiveSalesByLot(lotID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, sl := range s.sales {
		if !sl.IsDeleted && sl.LotID == lotID {
			sum = sum.Add(sl.Quantity)
		}
	}
	return sum, nil
}
