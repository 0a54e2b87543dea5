package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, contact, is_active, is_deleted, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, contact, is_active, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Contact, customer.IsActive, customer.IsDeleted,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID (incluye borrados).
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Contact, &c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, contact = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Contact, customer.IsActive, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// ListActive lista clientes vivos con paginación.
func (r *CustomerRepo) ListActive(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE is_deleted = false ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// ListDeleted lista clientes en la papelera.
func (r *CustomerRepo) ListDeleted() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE is_deleted = true ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deleted customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// SoftDelete marca el tombstone.
func (r *CustomerRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return fmt.Errorf("soft delete customer: %w", err)
	}
	return nil
}

// Restore limpia el tombstone.
func (r *CustomerRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET is_deleted = false, updated_at = now() WHERE id = $1 AND is_deleted = true`, id)
	if err != nil {
		return fmt.Errorf("restore customer: %w", err)
	}
	return nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.IsActive, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
