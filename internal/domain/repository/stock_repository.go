package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductTotalsRow totales crudos de un producto: Σ lotes vivos y Σ ventas vivas.
type ProductTotalsRow struct {
	ProductID   string
	ProductName string
	UnitType    string
	Purchased   decimal.Decimal
	Sold        decimal.Decimal
}

// StockRepository puerto de solo lectura para el agregador de stock.
//
// ProductTotals debe leerse de una sola foto consistente (una sola sentencia de
// agregación, o transacción de solo lectura): un lector concurrente nunca puede
// sumar un conjunto de ventas a medio actualizar.
type StockRepository interface {
	ProductTotals(ctx context.Context, productID string) (purchased, sold decimal.Decimal, err error)
	ListProductTotals(ctx context.Context) ([]ProductTotalsRow, error)
}
