package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListActive(f LotFilter) ([]*entity.Sale, error)
	// ListActiveByLot devuelve las ventas vivas del lote ordenadas por fecha ascendente,
	// con desempate estable por id. El orden es contractual: alimenta el libro T del lote.
	ListActiveByLot(lotID string) ([]*entity.Sale, error)
	ListDeleted() ([]*entity.Sale, error)
	SoftDelete(id string) error
	Restore(id string) error
	// SoftDeleteByLot marca todas las ventas vivas del lote como borradas (cascada de DeleteLot).
	SoftDeleteByLot(lotID string) error
	// SumActiveByLot es el camino lento: Σ quantity de ventas vivas del lote.
	// Es la verdad contra la que se reconcilia el contador cacheado del lote.
	SumActiveByLot(lotID string) (decimal.Decimal, error)
}
