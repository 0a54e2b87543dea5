package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name     string `json:"name"`
	UnitType string `json:"unit_type"` // BOX, KG, LOT
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	UnitType *string `json:"unit_type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitType  string    `json:"unit_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
