package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLotRow fila cruda de lote para el constructor del libro de lotes,
// ya unida al producto para los campos de display.
type LedgerLotRow struct {
	ID           string
	ProductID    string
	ProductName  string
	UnitType     string
	LotName      string
	VendorNames  []string
	Quantity     decimal.Decimal
	Rate         decimal.Decimal
	TotalAmount  decimal.Decimal
	RemainingQty decimal.Decimal
	Date         time.Time
	Notes        string
}

// LedgerSaleRow fila cruda de venta para el libro: solo lo que el manifiesto muestra.
// CustomerName ya resuelto ("Desconocido" si el cliente no existe o fue borrado).
type LedgerSaleRow struct {
	ID           string
	LotID        string
	CustomerName string
	Kind         string
	Quantity     decimal.Decimal
	Date         time.Time
}

// LedgerRepository puerto de solo lectura para el Lot Ledger Builder.
//
// Snapshot devuelve lotes vivos (según filtro) y TODAS sus ventas vivas en una sola
// foto consistente (transacción read-only en Postgres, lock único en memoria).
// Las ventas vienen ordenadas por fecha ascendente con desempate por id.
type LedgerRepository interface {
	Snapshot(ctx context.Context, f LotFilter) ([]LedgerLotRow, []LedgerSaleRow, error)
}
