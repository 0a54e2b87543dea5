package usecase

import (
	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
)

// TrashUseCase lista el contenido de la papelera por tipo de entidad.
// La restauración es un comando de reconciliación y vive en trading.RestoreItem.
type TrashUseCase struct {
	productRepo  repository.ProductRepository
	vendorRepo   repository.VendorRepository
	customerRepo repository.CustomerRepository
	lotRepo      repository.LotRepository
	saleRepo     repository.SaleRepository
}

// NewTrashUseCase construye el caso de uso.
func NewTrashUseCase(
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	customerRepo repository.CustomerRepository,
	lotRepo repository.LotRepository,
	saleRepo repository.SaleRepository,
) *TrashUseCase {
	return &TrashUseCase{
		productRepo:  productRepo,
		vendorRepo:   vendorRepo,
		customerRepo: customerRepo,
		lotRepo:      lotRepo,
		saleRepo:     saleRepo,
	}
}

// List devuelve los ítems borrados del tipo pedido, o de todos si itemType es vacío.
func (uc *TrashUseCase) List(itemType string) (*dto.TrashListResponse, error) {
	var items []dto.TrashItemDTO

	appendType := func(t string) error {
		switch t {
		case dto.TrashTypeProduct:
			list, err := uc.productRepo.ListDeleted()
			if err != nil {
				return err
			}
			for _, p := range list {
				items = append(items, dto.TrashItemDTO{Type: t, ID: p.ID, Label: p.Name, DeletedAt: p.UpdatedAt})
			}
		case dto.TrashTypeVendor:
			list, err := uc.vendorRepo.ListDeleted()
			if err != nil {
				return err
			}
			for _, v := range list {
				items = append(items, dto.TrashItemDTO{Type: t, ID: v.ID, Label: v.Name, DeletedAt: v.UpdatedAt})
			}
		case dto.TrashTypeCustomer:
			list, err := uc.customerRepo.ListDeleted()
			if err != nil {
				return err
			}
			for _, c := range list {
				items = append(items, dto.TrashItemDTO{Type: t, ID: c.ID, Label: c.Name, DeletedAt: c.UpdatedAt})
			}
		case dto.TrashTypeLot:
			list, err := uc.lotRepo.ListDeleted()
			if err != nil {
				return err
			}
			for _, l := range list {
				q := l.Quantity
				items = append(items, dto.TrashItemDTO{Type: t, ID: l.ID, Label: l.LotName, Quantity: &q, DeletedAt: l.UpdatedAt})
			}
		case dto.TrashTypeSale:
			list, err := uc.saleRepo.ListDeleted()
			if err != nil {
				return err
			}
			for _, s := range list {
				q := s.Quantity
				items = append(items, dto.TrashItemDTO{Type: t, ID: s.ID, Label: s.Notes, Quantity: &q, DeletedAt: s.UpdatedAt})
			}
		default:
			return domain.ErrInvalidInput
		}
		return nil
	}

	types := []string{itemType}
	if itemType == "" {
		types = []string{dto.TrashTypeProduct, dto.TrashTypeVendor, dto.TrashTypeCustomer, dto.TrashTypeLot, dto.TrashTypeSale}
	}
	for _, t := range types {
		if err := appendType(t); err != nil {
			return nil, err
		}
	}

	return &dto.TrashListResponse{Items: items}, nil
}
