package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo fuente de datos del libro de lotes. Necesita el pool directamente
// porque abre su propia transacción de solo lectura para la foto consistente.
type LedgerRepo struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository construye la fuente de datos del libro de lotes.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Snapshot lee lotes vivos (según filtro) y todas sus ventas vivas dentro de una
// transacción REPEATABLE READ de solo lectura: las dos consultas ven la misma foto.
func (r *LedgerRepo) Snapshot(ctx context.Context, f repository.LotFilter) ([]repository.LedgerLotRow, []repository.LedgerSaleRow, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	lots, err := r.queryLots(ctx, tx, f)
	if err != nil {
		return nil, nil, err
	}
	sales, err := r.querySales(ctx, tx, f)
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit snapshot tx: %w", err)
	}
	return lots, sales, nil
}

func (r *LedgerRepo) queryLots(ctx context.Context, tx pgx.Tx, f repository.LotFilter) ([]repository.LedgerLotRow, error) {
	query := `
		SELECT l.id, l.product_id, p.name, p.unit_type, l.lot_name,
			COALESCE((SELECT array_agg(v.name ORDER BY v.name) FROM vendors v WHERE v.id = ANY(l.vendor_ids)), '{}'),
			l.quantity, l.rate, l.total_amount, l.remaining_qty, l.date, l.notes
		FROM lots l
		JOIN products p ON p.id = l.product_id
		WHERE l.is_deleted = false`
	args := []any{}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		query += fmt.Sprintf(" AND l.product_id = $%d", len(args))
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		query += fmt.Sprintf(" AND l.date >= $%d", len(args))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		query += fmt.Sprintf(" AND l.date <= $%d", len(args))
	}
	query += " ORDER BY l.date DESC, l.id"

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("snapshot lots: %w", err)
	}
	defer rows.Close()

	var lots []repository.LedgerLotRow
	for rows.Next() {
		var row repository.LedgerLotRow
		if err := rows.Scan(&row.ID, &row.ProductID, &row.ProductName, &row.UnitType, &row.LotName,
			&row.VendorNames, &row.Quantity, &row.Rate, &row.TotalAmount,
			&row.RemainingQty, &row.Date, &row.Notes); err != nil {
			return nil, fmt.Errorf("scan snapshot lot: %w", err)
		}
		lots = append(lots, row)
	}
	return lots, rows.Err()
}

// querySales trae las ventas vivas de los lotes del filtro. Se filtra por las
// mismas condiciones del lote, no por la fecha de la venta: el libro muestra la
// historia completa de cada lote incluido.
func (r *LedgerRepo) querySales(ctx context.Context, tx pgx.Tx, f repository.LotFilter) ([]repository.LedgerSaleRow, error) {
	query := `
		SELECT s.id, s.lot_id, COALESCE(c.name, 'Desconocido'), s.kind, s.quantity, s.date
		FROM sales s
		JOIN lots l ON l.id = s.lot_id
		LEFT JOIN customers c ON c.id = s.customer_id AND c.is_deleted = false
		WHERE s.is_deleted = false AND l.is_deleted = false`
	args := []any{}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		query += fmt.Sprintf(" AND l.product_id = $%d", len(args))
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		query += fmt.Sprintf(" AND l.date >= $%d", len(args))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		query += fmt.Sprintf(" AND l.date <= $%d", len(args))
	}
	query += " ORDER BY s.date ASC, s.id ASC"

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("snapshot sales: %w", err)
	}
	defer rows.Close()

	var sales []repository.LedgerSaleRow
	for rows.Next() {
		var row repository.LedgerSaleRow
		if err := rows.Scan(&row.ID, &row.LotID, &row.CustomerName, &row.Kind, &row.Quantity, &row.Date); err != nil {
			return nil, fmt.Errorf("scan snapshot sale: %w", err)
		}
		sales = append(sales, row)
	}
	return sales, rows.Err()
}
