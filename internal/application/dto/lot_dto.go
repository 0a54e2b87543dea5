package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPurchaseRequest body para POST /api/lots (comando de compra).
type RecordPurchaseRequest struct {
	ProductID string          `json:"product_id"`
	VendorIDs []string        `json:"vendor_ids"`
	LotName   string          `json:"lot_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Date      string          `json:"date,omitempty"` // 2006-01-02; vacío = hoy
	Notes     string          `json:"notes,omitempty"`
}

// LotResponse representación HTTP de un lote.
type LotResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	VendorIDs    []string        `json:"vendor_ids"`
	LotName      string          `json:"lot_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Rate         decimal.Decimal `json:"rate"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	RemainingQty decimal.Decimal `json:"remaining_qty"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// LotListResponse listado de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
}
