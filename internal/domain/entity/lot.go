package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote de compra: una entrega de un proveedor de la que se vende.
// Quantity es la única cifra autoritativa de "comprado"; el motor de stock la lee, nunca la muta.
// RemainingQty es un contador cacheado de conveniencia: se ajusta junto con cada mutación de venta
// pero la verdad siempre es recomputable como Quantity - Σ ventas vivas del lote.
type Lot struct {
	ID           string
	ProductID    string
	VendorIDs    []string
	LotName      string
	Quantity     decimal.Decimal
	Rate         decimal.Decimal
	TotalAmount  decimal.Decimal // siempre Quantity * Rate
	RemainingQty decimal.Decimal
	Date         time.Time
	Notes        string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecalcTotal recalcula TotalAmount a partir de Quantity y Rate.
// Llamar antes de persistir cualquier cambio de cantidad o tarifa.
func (l *Lot) RecalcTotal() {
	l.TotalAmount = l.Quantity.Mul(l.Rate)
}
