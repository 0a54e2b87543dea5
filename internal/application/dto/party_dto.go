package dto

import "time"

// CreatePartyRequest body para POST /api/vendors y /api/customers.
type CreatePartyRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// UpdatePartyRequest body para PUT (campos opcionales).
type UpdatePartyRequest struct {
	Name     *string `json:"name,omitempty"`
	Contact  *string `json:"contact,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// PartyResponse representación HTTP de un proveedor o cliente.
type PartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListResponse listado paginado de proveedores o clientes.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
