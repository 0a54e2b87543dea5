package entity

import "time"

// Customer representa un cliente que compra cantidades de lotes concretos.
// Igual que Vendor: descriptivo, sin invariantes hacia las ventas históricas.
type Customer struct {
	ID        string
	Name      string
	Contact   string
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
