package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/application/ledger"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
	"github.com/jhoicas/fruver-ledger/internal/domain/stock"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/memory"
)

const agingDays = 10

type fixture struct {
	store      *memory.Store
	trading    *trading.UseCase
	ledger     *ledger.UseCase
	customers  *usecase.CustomerUseCase
	productID  string
	vendorID   string
	customerID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	vendorRepo := memory.NewVendorRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	lotRepo := memory.NewLotRepository(store)
	saleRepo := memory.NewSaleRepository(store)

	product, err := usecase.NewProductUseCase(productRepo).Create(dto.CreateProductRequest{Name: "Mango Tommy", UnitType: "BOX"})
	require.NoError(t, err)
	vendor, err := usecase.NewVendorUseCase(vendorRepo).Create(dto.CreatePartyRequest{Name: "Finca El Recreo"})
	require.NoError(t, err)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	customer, err := customerUC.Create(dto.CreatePartyRequest{Name: "Plaza Minorista"})
	require.NoError(t, err)

	return &fixture{
		store:      store,
		trading:    trading.NewUseCase(store, productRepo, vendorRepo, customerRepo, lotRepo, saleRepo),
		ledger:     ledger.NewUseCase(memory.NewLedgerRepository(store), agingDays),
		customers:  customerUC,
		productID:  product.ID,
		vendorID:   vendor.ID,
		customerID: customer.ID,
	}
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func (f *fixture) purchase(t *testing.T, qty int64, date string) *dto.LotResponse {
	t.Helper()
	lot, err := f.trading.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID: f.productID,
		VendorIDs: []string{f.vendorID},
		LotName:   "lote " + date,
		Quantity:  decimal.NewFromInt(qty),
		Rate:      decimal.NewFromInt(30000),
		Date:      date,
	})
	require.NoError(t, err)
	return lot
}

func (f *fixture) sell(t *testing.T, lotID string, qty int64, date string) *dto.SaleResponse {
	t.Helper()
	sale, err := f.trading.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID:  f.productID,
		CustomerID: f.customerID,
		LotID:      lotID,
		Quantity:   decimal.NewFromInt(qty),
		Rate:       decimal.NewFromInt(38000),
		Date:       date,
	})
	require.NoError(t, err)
	return sale
}

func TestBuildLotSummaries_SaldoCorrido(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100, day(-5))
	f.sell(t, lot.ID, 30, day(-4))
	f.sell(t, lot.ID, 20, day(-3))
	f.sell(t, lot.ID, 10, day(-2))

	out, err := f.ledger.BuildLotSummaries(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, out.Lots, 1)

	summary := out.Lots[0]
	require.Len(t, summary.Entries, 3)

	// Orden cronológico con saldo corrido: 100 -30 -> 70 -20 -> 50 -10 -> 40.
	expected := []int64{70, 50, 40}
	for i, e := range summary.Entries {
		assert.True(t, e.RunningBalance.Equal(decimal.NewFromInt(expected[i])),
			"saldo corrido de la fila %d: esperado %d, obtenido %s", i, expected[i], e.RunningBalance)
		assert.Equal(t, "Plaza Minorista", e.CustomerName)
	}

	assert.True(t, summary.TotalSold.Equal(decimal.NewFromInt(60)))
	assert.True(t, summary.RemainingStock.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, stock.StatusRemaining, summary.Status)
	assert.Equal(t, []string{"Finca El Recreo"}, summary.VendorNames)
}

func TestBuildLotSummaries_EstadosYAgregado(t *testing.T) {
	f := newFixture(t)

	abierto := f.purchase(t, 100, day(-3))
	f.sell(t, abierto.ID, 60, day(-2))

	cerrado := f.purchase(t, 50, day(-3))
	f.sell(t, cerrado.ID, 50, day(-2))

	sobreVendido := f.purchase(t, 20, day(-3))
	f.sell(t, sobreVendido.ID, 30, day(-2))

	out, err := f.ledger.BuildLotSummaries(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, out.Lots, 3)

	byID := map[string]dto.LotSummaryDTO{}
	for _, s := range out.Lots {
		byID[s.LotID] = s
	}
	assert.Equal(t, stock.StatusRemaining, byID[abierto.ID].Status)
	assert.Equal(t, stock.StatusOK, byID[cerrado.ID].Status)
	assert.Equal(t, stock.StatusExtraSold, byID[sobreVendido.ID].Status)
	assert.True(t, byID[sobreVendido.ID].RemainingStock.Equal(decimal.NewFromInt(-10)),
		"el restante del lote sobre-vendido lleva signo")

	// Agregado: solo los lotes abiertos cuentan en hand, solo los sobre-vendidos en faltante.
	assert.Equal(t, 1, out.Summary.ActiveBatches)
	assert.True(t, out.Summary.UnitsInHand.Equal(decimal.NewFromInt(40)))
	assert.True(t, out.Summary.ShortageUnits.Equal(decimal.NewFromInt(10)))
}

func TestBuildLotSummaries_Envejecimiento(t *testing.T) {
	f := newFixture(t)

	viejo := f.purchase(t, 100, day(-20))
	fresco := f.purchase(t, 100, day(-1))
	viejoCerrado := f.purchase(t, 50, day(-20))
	f.sell(t, viejoCerrado.ID, 50, day(-19))

	out, err := f.ledger.BuildLotSummaries(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)

	byID := map[string]dto.LotSummaryDTO{}
	for _, s := range out.Lots {
		byID[s.LotID] = s
	}
	assert.True(t, byID[viejo.ID].IsAging, "lote abierto más viejo que el umbral")
	assert.False(t, byID[fresco.ID].IsAging, "lote reciente no envejece")
	assert.False(t, byID[viejoCerrado.ID].IsAging, "solo los lotes con restante envejecen")
}

func TestBuildLotSummaries_FiltroFechasInclusivo(t *testing.T) {
	f := newFixture(t)
	dentro := f.purchase(t, 100, day(-5))
	f.purchase(t, 100, day(-1))

	out, err := f.ledger.BuildLotSummaries(context.Background(), dto.ReportFilter{
		FromDate: day(-7),
		ToDate:   day(-5),
	})
	require.NoError(t, err)
	require.Len(t, out.Lots, 1, "to_date es inclusivo del día calendario completo")
	assert.Equal(t, dentro.ID, out.Lots[0].LotID)
}

func TestBuildLotSummaries_ClienteBorradoYMerma(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100, day(-3))
	f.sell(t, lot.ID, 60, day(-2))

	_, err := f.trading.WriteOffLot(context.Background(), lot.ID)
	require.NoError(t, err)

	require.NoError(t, f.customers.Delete(f.customerID))

	out, err := f.ledger.BuildLotSummaries(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, out.Lots, 1)
	require.Len(t, out.Lots[0].Entries, 2)

	assert.Equal(t, "Desconocido", out.Lots[0].Entries[0].CustomerName,
		"el cliente borrado cae a la etiqueta de desconocido")
	assert.Equal(t, "Merma", out.Lots[0].Entries[1].CustomerName,
		"la baja por merma se muestra con su etiqueta propia")
	assert.Equal(t, stock.StatusOK, out.Lots[0].Status, "tras la merma el lote cierra en cero")
}
