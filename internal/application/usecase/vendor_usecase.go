package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

// VendorUseCase casos de uso CRUD para proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create crea un nuevo proveedor.
func (uc *VendorUseCase) Create(in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *VendorUseCase) GetByID(id string) (*dto.PartyResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(vendor), nil
}

// Update actualiza un proveedor.
func (uc *VendorUseCase) Update(id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.Contact != nil {
		vendor.Contact = *in.Contact
	}
	if in.IsActive != nil {
		vendor.IsActive = *in.IsActive
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores activos con paginación.
func (uc *VendorUseCase) List(limit, offset int) (*dto.PartyListResponse, error) {
	list, err := uc.repo.ListActive(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.PartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete manda el proveedor a la papelera. Los lotes históricos conservan la
// referencia; el display cae a "Desconocido".
func (uc *VendorUseCase) Delete(id string) error {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	if vendor.IsDeleted {
		return nil
	}
	return uc.repo.SoftDelete(id)
}

func toVendorResponse(v *entity.Vendor) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        v.ID,
		Name:      v.Name,
		Contact:   v.Contact,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
