// Package stock contiene la aritmética pura de reconciliación de stock (servicio de dominio).
// Toda lectura de stock del sistema pasa por aquí: no se duplica la suma en call-sites.
package stock

import "github.com/shopspring/decimal"

// Estado de stock de un producto o lote.
const (
	StatusOK        = "OK"         // comprado == vendido
	StatusRemaining = "REMAINING"  // queda stock
	StatusExtraSold = "EXTRA_SOLD" // se vendió más de lo comprado
)

// Figures cifras de stock de un producto: comprado/vendido y su descomposición.
// Invariante: Purchased - Sold == Remaining - ExtraSold, y a lo sumo uno de
// Remaining/ExtraSold es distinto de cero.
type Figures struct {
	Purchased decimal.Decimal
	Sold      decimal.Decimal
	Remaining decimal.Decimal
	ExtraSold decimal.Decimal
	Status    string
}

// Compute descompone el balance comprado-vendido en las cifras de stock.
func Compute(purchased, sold decimal.Decimal) Figures {
	f := Figures{
		Purchased: purchased,
		Sold:      sold,
		Remaining: decimal.Zero,
		ExtraSold: decimal.Zero,
		Status:    StatusOK,
	}
	switch {
	case sold.GreaterThan(purchased):
		f.Status = StatusExtraSold
		f.ExtraSold = sold.Sub(purchased)
	case purchased.GreaterThan(sold):
		f.Status = StatusRemaining
		f.Remaining = purchased.Sub(sold)
	}
	return f
}

// Available devuelve la disponibilidad con signo (Remaining - ExtraSold == Purchased - Sold).
// Es la cifra contra la que se decide IsExtraSold de una venta prospectiva:
// cantidad pedida > Available => venta marcada como sobre-venta.
func (f Figures) Available() decimal.Decimal {
	return f.Remaining.Sub(f.ExtraSold)
}

// LotStatus clasifica el restante con signo de un lote.
func LotStatus(remaining decimal.Decimal) string {
	switch {
	case remaining.GreaterThan(decimal.Zero):
		return StatusRemaining
	case remaining.LessThan(decimal.Zero):
		return StatusExtraSold
	default:
		return StatusOK
	}
}
