package repository

import "github.com/jhoicas/fruver-ledger/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// SoftDelete/Restore solo cambian el tombstone; nunca hay borrado físico.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListActive(limit, offset int) ([]*entity.Product, error)
	ListDeleted() ([]*entity.Product, error)
	SoftDelete(id string) error
	Restore(id string) error
}
