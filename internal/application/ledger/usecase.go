// Package ledger contiene el Lot Ledger Builder: une cada lote con sus ventas
// ordenadas para producir el manifiesto por lote con saldo corrido y clasificación
// de estado, más el agregado global del reporte.
package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
	"github.com/jhoicas/fruver-ledger/internal/domain/stock"
)

// Etiquetas de display cuando la contraparte ya no existe o es una baja.
const (
	labelUnknownVendor = "Desconocido"
	labelSpoilage      = "Merma"
)

// UseCase constructor del libro de lotes (solo lectura).
type UseCase struct {
	ledgerRepo repository.LedgerRepository
	agingDays  int
}

// NewUseCase construye el caso de uso. agingDays marca como envejecido todo lote
// abierto cuya fecha sea anterior a ese número de días.
func NewUseCase(ledgerRepo repository.LedgerRepository, agingDays int) *UseCase {
	return &UseCase{ledgerRepo: ledgerRepo, agingDays: agingDays}
}

// BuildLotSummaries arma el libro de lotes para el filtro dado.
// Las filas de cada lote conservan el orden cronológico del repositorio
// (fecha asc, desempate por id): de ese orden sale el saldo corrido.
func (uc *UseCase) BuildLotSummaries(ctx context.Context, filter dto.ReportFilter) (*dto.LotLedgerDTO, error) {
	from, to, err := filter.DateRange()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	f := repository.LotFilter{FromDate: from, ToDate: to, ProductID: filter.ProductID}

	lots, sales, err := uc.ledgerRepo.Snapshot(ctx, f)
	if err != nil {
		return nil, err
	}

	// Agrupar ventas por lote preservando el orden del snapshot.
	salesByLot := make(map[string][]repository.LedgerSaleRow, len(lots))
	for _, s := range sales {
		salesByLot[s.LotID] = append(salesByLot[s.LotID], s)
	}

	agingCutoff := time.Now().AddDate(0, 0, -uc.agingDays)

	summaries := make([]dto.LotSummaryDTO, 0, len(lots))
	totals := dto.LedgerTotalsDTO{
		UnitsInHand:   decimal.Zero,
		ShortageUnits: decimal.Zero,
	}

	for _, lot := range lots {
		balance := lot.Quantity
		totalSold := decimal.Zero
		entries := make([]dto.LotEntryDTO, 0, len(salesByLot[lot.ID]))

		for _, s := range salesByLot[lot.ID] {
			totalSold = totalSold.Add(s.Quantity)
			balance = balance.Sub(s.Quantity)
			name := s.CustomerName
			if s.Kind == entity.SaleKindSpoilage {
				name = labelSpoilage
			}
			entries = append(entries, dto.LotEntryDTO{
				CustomerName:   name,
				Quantity:       s.Quantity,
				Date:           s.Date,
				RunningBalance: balance,
			})
		}

		remaining := lot.Quantity.Sub(totalSold)
		status := stock.LotStatus(remaining)

		vendors := lot.VendorNames
		if len(vendors) == 0 {
			vendors = []string{labelUnknownVendor}
		}

		summaries = append(summaries, dto.LotSummaryDTO{
			LotID:          lot.ID,
			LotName:        lot.LotName,
			ProductID:      lot.ProductID,
			ProductName:    lot.ProductName,
			UnitType:       lot.UnitType,
			VendorNames:    vendors,
			Date:           lot.Date,
			Quantity:       lot.Quantity,
			Rate:           lot.Rate,
			TotalAmount:    lot.TotalAmount,
			TotalSold:      totalSold,
			RemainingStock: remaining,
			Status:         status,
			IsAging:        status == stock.StatusRemaining && lot.Date.Before(agingCutoff),
			Notes:          lot.Notes,
			Entries:        entries,
		})

		switch status {
		case stock.StatusRemaining:
			totals.ActiveBatches++
			totals.UnitsInHand = totals.UnitsInHand.Add(remaining)
		case stock.StatusExtraSold:
			totals.ShortageUnits = totals.ShortageUnits.Add(remaining.Neg())
		}
	}

	return &dto.LotLedgerDTO{Lots: summaries, Summary: totals}, nil
}
