package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo agregador de solo lectura sobre lots y sales (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el agregador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ProductTotals Σ compras vivas y Σ ventas vivas del producto.
// Una sola sentencia: ambos agregados salen de la misma foto, nunca de
// dos lecturas separadas por un escritor concurrente.
func (r *StockRepo) ProductTotals(ctx context.Context, productID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(quantity) FROM lots  WHERE product_id = $1 AND is_deleted = false), 0),
			COALESCE((SELECT SUM(quantity) FROM sales WHERE product_id = $1 AND is_deleted = false), 0)`
	var purchased, sold decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID).Scan(&purchased, &sold); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("product totals: %w", err)
	}
	return purchased, sold, nil
}

// ListProductTotals totales de todos los productos vivos, para el overview de stock.
func (r *StockRepo) ListProductTotals(ctx context.Context) ([]repository.ProductTotalsRow, error) {
	query := `
		SELECT p.id, p.name, p.unit_type,
			COALESCE((SELECT SUM(l.quantity) FROM lots  l WHERE l.product_id = p.id AND l.is_deleted = false), 0),
			COALESCE((SELECT SUM(s.quantity) FROM sales s WHERE s.product_id = p.id AND s.is_deleted = false), 0)
		FROM products p
		WHERE p.is_deleted = false
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product totals: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductTotalsRow
	for rows.Next() {
		var row repository.ProductTotalsRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitType, &row.Purchased, &row.Sold); err != nil {
			return nil, fmt.Errorf("scan product totals: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
