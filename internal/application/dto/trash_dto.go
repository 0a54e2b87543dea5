package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem restaurables desde la papelera.
const (
	TrashTypeProduct  = "product"
	TrashTypeVendor   = "vendor"
	TrashTypeCustomer = "customer"
	TrashTypeLot      = "lot"
	TrashTypeSale     = "sale"
)

// TrashItemDTO un ítem en la papelera.
type TrashItemDTO struct {
	Type      string           `json:"type"`
	ID        string           `json:"id"`
	Label     string           `json:"label"` // nombre de la entidad o descripción corta
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	DeletedAt time.Time        `json:"deleted_at"` // último updated_at del registro
}

// TrashListResponse respuesta de GET /api/trash.
type TrashListResponse struct {
	Items []TrashItemDTO `json:"items"`
}

// RestoreRequest body para POST /api/trash/restore.
type RestoreRequest struct {
	Type string `json:"type"` // product, vendor, customer, lot, sale
	ID   string `json:"id"`
}
