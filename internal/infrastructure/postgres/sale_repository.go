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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, product_id, customer_id, lot_id, kind, quantity, rate, total_amount, date, notes, is_extra_sold, is_deleted, created_at, updated_at`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, customer_id, lot_id, kind, quantity, rate, total_amount, date, notes, is_extra_sold, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, nullIfEmpty(sale.CustomerID), sale.LotID, sale.Kind,
		sale.Quantity, sale.Rate, sale.TotalAmount, sale.Date, sale.Notes,
		sale.IsExtraSold, sale.IsDeleted, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID (incluye borradas; el caller decide).
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	var customerID *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.ProductID, &customerID, &s.LotID, &s.Kind, &s.Quantity, &s.Rate,
		&s.TotalAmount, &s.Date, &s.Notes, &s.IsExtraSold, &s.IsDeleted,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if customerID != nil {
		s.CustomerID = *customerID
	}
	return &s, nil
}

// ListActive lista ventas vivas según filtro, más recientes primero.
func (r *SaleRepo) ListActive(f repository.LotFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE is_deleted = false`
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
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListActiveByLot ventas vivas del lote en orden cronológico.
// El desempate por id mantiene el orden estable para ventas del mismo día.
func (r *SaleRepo) ListActiveByLot(lotID string) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE lot_id = $1 AND is_deleted = false
		ORDER BY date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, lotID)
	if err != nil {
		return nil, fmt.Errorf("list sales by lot: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListDeleted lista ventas en la papelera.
func (r *SaleRepo) ListDeleted() ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE is_deleted = true ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deleted sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// SoftDelete marca el tombstone. Repetirlo sobre una borrada es un no-op.
func (r *SaleRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return fmt.Errorf("soft delete sale: %w", err)
	}
	return nil
}

// Restore limpia el tombstone. Repetirlo sobre una activa es un no-op.
func (r *SaleRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET is_deleted = false, updated_at = now() WHERE id = $1 AND is_deleted = true`, id)
	if err != nil {
		return fmt.Errorf("restore sale: %w", err)
	}
	return nil
}

// SoftDeleteByLot cascada de DeleteLot: marca todas las ventas vivas del lote.
// Una sola sentencia; la atomicidad con el tombstone del lote la da la tx del caller.
func (r *SaleRepo) SoftDeleteByLot(lotID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET is_deleted = true, updated_at = now() WHERE lot_id = $1 AND is_deleted = false`, lotID)
	if err != nil {
		return fmt.Errorf("cascade soft delete sales: %w", err)
	}
	return nil
}

// SumActiveByLot camino lento: Σ quantity de ventas vivas del lote.
func (r *SaleRepo) SumActiveByLot(lotID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM sales WHERE lot_id = $1 AND is_deleted = false`,
		lotID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales by lot: %w", err)
	}
	return sum, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customerID *string
		if err := rows.Scan(&s.ID, &s.ProductID, &customerID, &s.LotID, &s.Kind, &s.Quantity, &s.Rate,
			&s.TotalAmount, &s.Date, &s.Notes, &s.IsExtraSold, &s.IsDeleted,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if customerID != nil {
			s.CustomerID = *customerID
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
