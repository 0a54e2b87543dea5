package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
)

// LotFilter restringe listados y reportes de lotes.
// ToDate es inclusivo del día calendario completo (el caller ya lo normaliza a fin de día).
type LotFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	ProductID string
}

// LotRepository define el puerto de persistencia para Lot (lote de compra).
// GetByID devuelve el lote aunque esté en la papelera; los listados filtran por tombstone.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	Update(lot *entity.Lot) error
	ListActive(f LotFilter) ([]*entity.Lot, error)
	ListDeleted() ([]*entity.Lot, error)
	SoftDelete(id string) error
	Restore(id string) error
	// AdjustRemaining suma delta (con signo) al contador cacheado RemainingQty.
	// Usar solo dentro de la misma transacción que la mutación de venta que lo justifica.
	AdjustRemaining(id string, delta decimal.Decimal) error
}
