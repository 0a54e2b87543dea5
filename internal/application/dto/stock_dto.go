package dto

import "github.com/shopspring/decimal"

// ProductStockDTO respuesta de GET /api/stock/:productId.
// Invariante: purchased - sold == remaining - extra_sold, y a lo sumo uno de
// remaining/extra_sold es distinto de cero.
type ProductStockDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitType    string          `json:"unit_type"`
	Purchased   decimal.Decimal `json:"purchased"`
	Sold        decimal.Decimal `json:"sold"`
	Remaining   decimal.Decimal `json:"remaining"`
	ExtraSold   decimal.Decimal `json:"extra_sold"`
	Status      string          `json:"status"` // OK, REMAINING, EXTRA_SOLD
}

// StockOverviewDTO respuesta de GET /api/stock: cifras por producto activo.
type StockOverviewDTO struct {
	Items []ProductStockDTO `json:"items"`
}
