package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, name, contact, is_active, is_deleted, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, contact, is_active, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Contact, vendor.IsActive, vendor.IsDeleted,
		vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID (incluye borrados).
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id).Scan(
		&v.ID, &v.Name, &v.Contact, &v.IsActive, &v.IsDeleted, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update actualiza un proveedor.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Contact, vendor.IsActive, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// ListActive lista proveedores vivos con paginación.
func (r *VendorRepo) ListActive(limit, offset int) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + ` FROM vendors
		WHERE is_deleted = false ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	return collectVendors(rows)
}

// ListDeleted lista proveedores en la papelera.
func (r *VendorRepo) ListDeleted() ([]*entity.Vendor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors WHERE is_deleted = true ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list deleted vendors: %w", err)
	}
	defer rows.Close()
	return collectVendors(rows)
}

// SoftDelete marca el tombstone.
func (r *VendorRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendors SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return fmt.Errorf("soft delete vendor: %w", err)
	}
	return nil
}

// Restore limpia el tombstone.
func (r *VendorRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendors SET is_deleted = false, updated_at = now() WHERE id = $1 AND is_deleted = true`, id)
	if err != nil {
		return fmt.Errorf("restore vendor: %w", err)
	}
	return nil
}

func collectVendors(rows pgx.Rows) ([]*entity.Vendor, error) {
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Contact, &v.IsActive, &v.IsDeleted, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
