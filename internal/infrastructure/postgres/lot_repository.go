package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, product_id, vendor_ids, lot_name, quantity, rate, total_amount, remaining_qty, date, notes, is_deleted, created_at, updated_at`

// Create persiste un nuevo lote de compra.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, product_id, vendor_ids, lot_name, quantity, rate, total_amount, remaining_qty, date, notes, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.VendorIDs, lot.LotName, lot.Quantity, lot.Rate,
		lot.TotalAmount, lot.RemainingQty, lot.Date, lot.Notes, lot.IsDeleted,
		lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID (incluye borrados; el caller decide).
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(context.Background(),
		`SELECT `+lotColumns+` FROM lots WHERE id = $1`, id).Scan(
		&l.ID, &l.ProductID, &l.VendorIDs, &l.LotName, &l.Quantity, &l.Rate,
		&l.TotalAmount, &l.RemainingQty, &l.Date, &l.Notes, &l.IsDeleted,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// Update actualiza un lote existente. TotalAmount viene ya recalculado por la entidad.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `
		UPDATE lots SET vendor_ids = $2, lot_name = $3, quantity = $4, rate = $5,
			total_amount = $6, remaining_qty = $7, date = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.VendorIDs, lot.LotName, lot.Quantity, lot.Rate,
		lot.TotalAmount, lot.RemainingQty, lot.Date, lot.Notes, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// ListActive lista lotes vivos según filtro, más recientes primero.
func (r *LotRepo) ListActive(f repository.LotFilter) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE is_deleted = false`
	args := []any{}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		query += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	return collectLots(rows)
}

// ListDeleted lista lotes en la papelera.
func (r *LotRepo) ListDeleted() ([]*entity.Lot, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+lotColumns+` FROM lots WHERE is_deleted = true ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deleted lots: %w", err)
	}
	defer rows.Close()
	return collectLots(rows)
}

// SoftDelete marca el tombstone. Repetirlo sobre un borrado es un no-op.
func (r *LotRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return fmt.Errorf("soft delete lot: %w", err)
	}
	return nil
}

// Restore limpia el tombstone. Repetirlo sobre un activo es un no-op.
func (r *LotRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET is_deleted = false, updated_at = now() WHERE id = $1 AND is_deleted = true`, id)
	if err != nil {
		return fmt.Errorf("restore lot: %w", err)
	}
	return nil
}

// AdjustRemaining suma delta (con signo) al contador cacheado remaining_qty.
func (r *LotRepo) AdjustRemaining(id string, delta decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET remaining_qty = remaining_qty + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust lot remaining: %w", err)
	}
	return nil
}

func collectLots(rows pgx.Rows) ([]*entity.Lot, error) {
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.VendorIDs, &l.LotName, &l.Quantity, &l.Rate,
			&l.TotalAmount, &l.RemainingQty, &l.Date, &l.Notes, &l.IsDeleted,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
