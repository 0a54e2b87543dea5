// Package trading contiene los comandos de reconciliación sobre el ciclo de vida
// de lotes y ventas: compra, venta con detección de sobre-venta, borrados suaves
// con cascada, restauración desde papelera y baja por merma.
package trading

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
	"github.com/jhoicas/fruver-ledger/internal/domain/stock"
)

// UseCase comandos de reconciliación. Las mutaciones multi-registro pasan por TxRunner;
// las lecturas de validación previas usan los repositorios de pool directamente.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	vendorRepo   repository.VendorRepository
	customerRepo repository.CustomerRepository
	lotRepo      repository.LotRepository
	saleRepo     repository.SaleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	customerRepo repository.CustomerRepository,
	lotRepo repository.LotRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		vendorRepo:   vendorRepo,
		customerRepo: customerRepo,
		lotRepo:      lotRepo,
		saleRepo:     saleRepo,
	}
}

// RecordPurchase registra un lote de compra. TotalAmount se recalcula siempre
// como Quantity*Rate antes de persistir; RemainingQty arranca igual a Quantity.
func (uc *UseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.LotResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) || !in.Rate.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsDeleted {
		return nil, domain.ErrNotFound
	}
	for _, vid := range in.VendorIDs {
		vendor, err := uc.vendorRepo.GetByID(vid)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
	}

	date, err := parseDateOrNow(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	lot := &entity.Lot{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		VendorIDs:    in.VendorIDs,
		LotName:      in.LotName,
		Quantity:     in.Quantity,
		Rate:         in.Rate,
		RemainingQty: in.Quantity,
		Date:         date,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	lot.RecalcTotal()

	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// RecordSale registra una venta contra un lote concreto.
//
// La sobre-venta está permitida, solo se marca: IsExtraSold compara la cantidad
// pedida contra la disponibilidad a nivel de producto leída dentro de la misma
// transacción, antes de esta venta. Es una foto advisoria, no un lock de
// asignación: dos ventas concurrentes pueden leer la misma disponibilidad.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.CustomerID == "" || in.LotID == "" ||
		!in.Quantity.GreaterThan(decimal.Zero) || !in.Rate.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	date, err := parseDateOrNow(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error {
		lot, err := lotRepo.GetByID(in.LotID)
		if err != nil {
			return err
		}
		if lot == nil || lot.IsDeleted {
			return domain.ErrNotFound
		}
		if lot.ProductID != in.ProductID {
			return domain.ErrInvalidInput
		}

		purchased, sold, err := stockRepo.ProductTotals(ctx, in.ProductID)
		if err != nil {
			return err
		}
		available := stock.Compute(purchased, sold).Available()

		now := time.Now()
		sale = &entity.Sale{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			CustomerID:  in.CustomerID,
			LotID:       in.LotID,
			Kind:        entity.SaleKindStandard,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			Date:        date,
			Notes:       in.Notes,
			IsExtraSold: in.Quantity.GreaterThan(available),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		sale.RecalcTotal()

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return lotRepo.AdjustRemaining(in.LotID, in.Quantity.Neg())
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// DeleteLot manda el lote a la papelera y cascada sobre sus ventas vivas.
// Tombstone del lote y cascada van en una sola transacción: no puede quedar
// "lote borrado con ventas vivas" como estado terminal.
func (uc *UseCase) DeleteLot(ctx context.Context, lotID string) error {
	return uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		lot, err := lotRepo.GetByID(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if lot.IsDeleted {
			// Reintento u operación repetida: el estado final ya es el pedido.
			return nil
		}
		if err := lotRepo.SoftDelete(lotID); err != nil {
			return err
		}
		return saleRepo.SoftDeleteByLot(lotID)
	})
}

// DeleteSale manda la venta a la papelera devolviendo su cantidad al contador
// cacheado del lote. Ajuste y tombstone van en la misma transacción y la venta
// ya borrada es un no-op, así el comando es seguro de reintentar sin dobles
// incrementos. Si el lote ya no existe, el paso de restauración se omite.
func (uc *UseCase) DeleteSale(ctx context.Context, saleID string) error {
	return uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.IsDeleted {
			return nil
		}

		lot, err := lotRepo.GetByID(sale.LotID)
		if err != nil {
			return err
		}
		if lot != nil {
			if err := lotRepo.AdjustRemaining(lot.ID, sale.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.SoftDelete(saleID)
	})
}

// RestoreItem saca un ítem de la papelera. Para ventas aplica el ajuste inverso
// de DeleteSale exactamente una vez; restaurar un ítem ya activo no toca contadores.
func (uc *UseCase) RestoreItem(ctx context.Context, itemType, id string) error {
	switch itemType {
	case dto.TrashTypeProduct:
		return restorePlain(id, uc.productRepo.GetByID, uc.productRepo.Restore, func(p *entity.Product) bool { return p.IsDeleted })
	case dto.TrashTypeVendor:
		return restorePlain(id, uc.vendorRepo.GetByID, uc.vendorRepo.Restore, func(v *entity.Vendor) bool { return v.IsDeleted })
	case dto.TrashTypeCustomer:
		return restorePlain(id, uc.customerRepo.GetByID, uc.customerRepo.Restore, func(c *entity.Customer) bool { return c.IsDeleted })
	case dto.TrashTypeLot:
		return uc.restoreLot(ctx, id)
	case dto.TrashTypeSale:
		return uc.restoreSale(ctx, id)
	default:
		return domain.ErrInvalidInput
	}
}

// restoreLot saca el lote de la papelera y reconcilia su contador cacheado.
// La cascada de DeleteLot borra las ventas sin devolver cantidades, así que al
// volver el lote el contador se recomputa contra las ventas vivas que queden.
func (uc *UseCase) restoreLot(ctx context.Context, lotID string) error {
	return uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		lot, err := lotRepo.GetByID(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if !lot.IsDeleted {
			return nil
		}
		if err := lotRepo.Restore(lotID); err != nil {
			return err
		}
		sold, err := saleRepo.SumActiveByLot(lotID)
		if err != nil {
			return err
		}
		delta := lot.Quantity.Sub(sold).Sub(lot.RemainingQty)
		if delta.IsZero() {
			return nil
		}
		return lotRepo.AdjustRemaining(lotID, delta)
	})
}

func (uc *UseCase) restoreSale(ctx context.Context, saleID string) error {
	return uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if !sale.IsDeleted {
			// Idempotente: restaurar algo activo no ajusta nada.
			return nil
		}

		lot, err := lotRepo.GetByID(sale.LotID)
		if err != nil {
			return err
		}
		if lot != nil && lot.IsDeleted {
			// Restaurar la venta dejaría una venta viva apuntando a un lote borrado,
			// rompiendo la invariante de la cascada. Primero se restaura el lote.
			return domain.ErrConflict
		}
		if lot != nil {
			if err := lotRepo.AdjustRemaining(lot.ID, sale.Quantity.Neg()); err != nil {
				return err
			}
		}
		return saleRepo.Restore(saleID)
	})
}

// WriteOffLot da de baja el stock restante de un lote como merma: sintetiza una
// venta SPOILAGE a tarifa cero por el restante y deja el lote exactamente en cero.
// El restante se recomputa del conjunto de ventas vivas dentro de la transacción,
// nunca del contador cacheado: ventas concurrentes no pueden inflar la baja.
func (uc *UseCase) WriteOffLot(ctx context.Context, lotID string) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		saleRepo repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		lot, err := lotRepo.GetByID(lotID)
		if err != nil {
			return err
		}
		if lot == nil || lot.IsDeleted {
			return domain.ErrNotFound
		}

		sold, err := saleRepo.SumActiveByLot(lotID)
		if err != nil {
			return err
		}
		remaining := lot.Quantity.Sub(sold)
		if !remaining.GreaterThan(decimal.Zero) {
			return domain.ErrNothingToWrite
		}

		now := time.Now()
		sale = &entity.Sale{
			ID:          uuid.New().String(),
			ProductID:   lot.ProductID,
			LotID:       lotID,
			Kind:        entity.SaleKindSpoilage,
			Quantity:    remaining,
			Rate:        decimal.Zero,
			TotalAmount: decimal.Zero,
			Date:        now,
			Notes:       "baja por merma",
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return lotRepo.AdjustRemaining(lotID, remaining.Neg())
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// ListLots lista lotes vivos según filtro.
func (uc *UseCase) ListLots(ctx context.Context, filter dto.ReportFilter) (*dto.LotListResponse, error) {
	from, to, err := filter.DateRange()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lots, err := uc.lotRepo.ListActive(repository.LotFilter{FromDate: from, ToDate: to, ProductID: filter.ProductID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *toLotResponse(l))
	}
	return &dto.LotListResponse{Items: items}, nil
}

// ListSales lista ventas vivas según filtro.
func (uc *UseCase) ListSales(ctx context.Context, filter dto.ReportFilter) (*dto.SaleListResponse, error) {
	from, to, err := filter.DateRange()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListActive(repository.LotFilter{FromDate: from, ToDate: to, ProductID: filter.ProductID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items}, nil
}

// restorePlain restauración genérica sin efectos de stock (product/vendor/customer/lot).
func restorePlain[T any](
	id string,
	get func(string) (*T, error),
	restore func(string) error,
	deleted func(*T) bool,
) error {
	item, err := get(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if !deleted(item) {
		return nil
	}
	return restore(id)
}

func parseDateOrNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return dto.ParseDate(s)
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	return &dto.LotResponse{
		ID:           l.ID,
		ProductID:    l.ProductID,
		VendorIDs:    l.VendorIDs,
		LotName:      l.LotName,
		Quantity:     l.Quantity,
		Rate:         l.Rate,
		TotalAmount:  l.TotalAmount,
		RemainingQty: l.RemainingQty,
		Date:         l.Date,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		CustomerID:  s.CustomerID,
		LotID:       s.LotID,
		Kind:        s.Kind,
		Quantity:    s.Quantity,
		Rate:        s.Rate,
		TotalAmount: s.TotalAmount,
		Date:        s.Date,
		Notes:       s.Notes,
		IsExtraSold: s.IsExtraSold,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
