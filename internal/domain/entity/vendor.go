package entity

import "time"

// Vendor representa un proveedor que entrega lotes de compra.
// Puramente descriptivo: borrarlo no afecta los lotes históricos que lo referencian
// (el display cae a "Desconocido").
type Vendor struct {
	ID        string
	Name      string
	Contact   string
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
