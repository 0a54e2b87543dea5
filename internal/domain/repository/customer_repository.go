package repository

import "github.com/jhoicas/fruver-ledger/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListActive(limit, offset int) ([]*entity.Customer, error)
	ListDeleted() ([]*entity.Customer, error)
	SoftDelete(id string) error
	Restore(id string) error
}
