package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SaleKindStandard = "STANDARD" // venta normal a un cliente
	SaleKindSpoilage = "SPOILAGE" // merma: baja de stock a tarifa cero, sin cliente real
)

// Sale representa una venta tomada de un lote concreto.
//
// IsExtraSold es una foto del momento de creación: compara la cantidad pedida contra la
// disponibilidad a nivel de producto en ese instante. No se recalcula si otras ventas
// cambian después; el estado vivo del lote sale del Lot Ledger.
type Sale struct {
	ID          string
	ProductID   string
	CustomerID  string // vacío en ventas SPOILAGE
	LotID       string
	Kind        string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	TotalAmount decimal.Decimal // siempre Quantity * Rate
	Date        time.Time
	Notes       string
	IsExtraSold bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecalcTotal recalcula TotalAmount a partir de Quantity y Rate.
func (s *Sale) RecalcTotal() {
	s.TotalAmount = s.Quantity.Mul(s.Rate)
}
