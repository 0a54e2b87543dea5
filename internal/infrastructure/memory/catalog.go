package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.VendorRepository   = (*VendorRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

// ProductRepo vista del store para productos.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye la vista de productos.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Name == product.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Name == product.Name && p.ID != product.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) ListActive(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if !p.IsDeleted {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *ProductRepo) ListDeleted() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.IsDeleted {
			p := p
			list = append(list, &p)
		}
	}
	sortByUpdatedDesc(list, func(p *entity.Product) time.Time { return p.UpdatedAt })
	return list, nil
}

func (r *ProductRepo) SoftDelete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok && !p.IsDeleted {
		p.IsDeleted = true
		p.UpdatedAt = time.Now()
		r.s.products[id] = p
	}
	return nil
}

func (r *ProductRepo) Restore(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok && p.IsDeleted {
		p.IsDeleted = false
		p.UpdatedAt = time.Now()
		r.s.products[id] = p
	}
	return nil
}

// VendorRepo vista del store para proveedores.
type VendorRepo struct {
	s *Store
}

// NewVendorRepository construye la vista de proveedores.
func NewVendorRepository(s *Store) *VendorRepo {
	return &VendorRepo{s: s}
}

func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.vendors[vendor.ID] = *vendor
	return nil
}

func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if v, ok := r.s.vendors[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.vendors[vendor.ID] = *vendor
	return nil
}

func (r *VendorRepo) ListActive(limit, offset int) ([]*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Vendor
	for _, v := range r.s.vendors {
		if !v.IsDeleted {
			v := v
			list = append(list, &v)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *VendorRepo) ListDeleted() ([]*entity.Vendor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Vendor
	for _, v := range r.s.vendors {
		if v.IsDeleted {
			v := v
			list = append(list, &v)
		}
	}
	sortByUpdatedDesc(list, func(v *entity.Vendor) time.Time { return v.UpdatedAt })
	return list, nil
}

func (r *VendorRepo) SoftDelete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.vendors[id]; ok && !v.IsDeleted {
		v.IsDeleted = true
		v.UpdatedAt = time.Now()
		r.s.vendors[id] = v
	}
	return nil
}

func (r *VendorRepo) Restore(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.vendors[id]; ok && v.IsDeleted {
		v.IsDeleted = false
		v.UpdatedAt = time.Now()
		r.s.vendors[id] = v
	}
	return nil
}

// CustomerRepo vista del store para clientes.
type CustomerRepo struct {
	s *Store
}

// NewCustomerRepository construye la vista de clientes.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{s: s}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepo) ListActive(limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Customer
	for _, c := range r.s.customers {
		if !c.IsDeleted {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *CustomerRepo) ListDeleted() ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Customer
	for _, c := range r.s.customers {
		if c.IsDeleted {
			c := c
			list = append(list, &c)
		}
	}
	sortByUpdatedDesc(list, func(c *entity.Customer) time.Time { return c.UpdatedAt })
	return list, nil
}

func (r *CustomerRepo) SoftDelete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.customers[id]; ok && !c.IsDeleted {
		c.IsDeleted = true
		c.UpdatedAt = time.Now()
		r.s.customers[id] = c
	}
	return nil
}

func (r *CustomerRepo) Restore(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.customers[id]; ok && c.IsDeleted {
		c.IsDeleted = false
		c.UpdatedAt = time.Now()
		r.s.customers[id] = c
	}
	return nil
}

func paginate[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func sortByUpdatedDesc[T any](list []*T, updatedAt func(*T) time.Time) {
	sort.Slice(list, func(i, j int) bool {
		return updatedAt(list[i]).After(updatedAt(list[j]))
	})
}
