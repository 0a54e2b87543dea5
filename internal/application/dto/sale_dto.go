package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales (comando de venta).
type RecordSaleRequest struct {
	ProductID  string          `json:"product_id"`
	CustomerID string          `json:"customer_id"`
	LotID      string          `json:"lot_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	Date       string          `json:"date,omitempty"` // 2006-01-02; vacío = hoy
	Notes      string          `json:"notes,omitempty"`
}

// SaleResponse representación HTTP de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	CustomerID  string          `json:"customer_id,omitempty"`
	LotID       string          `json:"lot_id"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	IsExtraSold bool            `json:"is_extra_sold"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
