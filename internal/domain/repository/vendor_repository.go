package repository

import "github.com/jhoicas/fruver-ledger/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	ListActive(limit, offset int) ([]*entity.Vendor, error)
	ListDeleted() ([]*entity.Vendor, error)
	SoftDelete(id string) error
	Restore(id string) error
}
