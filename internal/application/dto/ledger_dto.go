package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotEntryDTO una fila del manifiesto del lote: quién se llevó cuánto y cuándo.
// El orden cronológico (fecha asc, desempate por id) es contractual: alimenta el
// libro T con saldo corrido.
type LotEntryDTO struct {
	CustomerName   string          `json:"customer_name"` // "Merma" en bajas por deterioro
	Quantity       decimal.Decimal `json:"quantity"`
	Date           time.Time       `json:"date"`
	RunningBalance decimal.Decimal `json:"running_balance"` // saldo del lote después de esta fila
}

// LotSummaryDTO resumen de un lote con su manifiesto de ventas.
type LotSummaryDTO struct {
	LotID          string          `json:"lot_id"`
	LotName        string          `json:"lot_name"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	UnitType       string          `json:"unit_type"`
	VendorNames    []string        `json:"vendor_names"`
	Date           time.Time       `json:"date"`
	Quantity       decimal.Decimal `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalSold      decimal.Decimal `json:"total_sold"`
	RemainingStock decimal.Decimal `json:"remaining_stock"` // con signo; negativo = sobre-venta
	Status         string          `json:"status"`          // OK, REMAINING, EXTRA_SOLD
	IsAging        bool            `json:"is_aging"`        // lote abierto más viejo que el umbral configurado
	Notes          string          `json:"notes,omitempty"`
	Entries        []LotEntryDTO   `json:"entries"`
}

// LedgerTotalsDTO agregado sobre todos los lotes del reporte.
type LedgerTotalsDTO struct {
	ActiveBatches int             `json:"active_batches"` // lotes con restante > 0
	UnitsInHand   decimal.Decimal `json:"units_in_hand"`  // Σ max(restante, 0)
	ShortageUnits decimal.Decimal `json:"shortage_units"` // Σ max(-restante, 0)
}

// LotLedgerDTO respuesta de GET /api/lots/summaries.
type LotLedgerDTO struct {
	Lots    []LotSummaryDTO `json:"lots"`
	Summary LedgerTotalsDTO `json:"summary"`
}
