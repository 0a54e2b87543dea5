package trading_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/memory"
)

type fixture struct {
	store      *memory.Store
	trading    *trading.UseCase
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

	tradingUC := trading.NewUseCase(store, productRepo, vendorRepo, customerRepo, lotRepo, saleRepo)

	product, err := usecase.NewProductUseCase(productRepo).Create(dto.CreateProductRequest{Name: "Mango Tommy", UnitType: "BOX"})
	require.NoError(t, err)
	vendor, err := usecase.NewVendorUseCase(vendorRepo).Create(dto.CreatePartyRequest{Name: "Finca El Recreo"})
	require.NoError(t, err)
	customer, err := usecase.NewCustomerUseCase(customerRepo).Create(dto.CreatePartyRequest{Name: "Plaza Minorista"})
	require.NoError(t, err)

	return &fixture{
		store:      store,
		trading:    tradingUC,
		productID:  product.ID,
		vendorID:   vendor.ID,
		customerID: customer.ID,
	}
}

func (f *fixture) purchase(t *testing.T, qty int64) *dto.LotResponse {
	t.Helper()
	lot, err := f.trading.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID: f.productID,
		VendorIDs: []string{f.vendorID},
		LotName:   "lote de prueba",
		Quantity:  decimal.NewFromInt(qty),
		Rate:      decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	return lot
}

func (f *fixture) sell(t *testing.T, lotID string, qty int64) *dto.SaleResponse {
	t.Helper()
	sale, err := f.trading.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID:  f.productID,
		CustomerID: f.customerID,
		LotID:      lotID,
		Quantity:   decimal.NewFromInt(qty),
		Rate:       decimal.NewFromInt(38000),
	})
	require.NoError(t, err)
	return sale
}

func (f *fixture) lotRemaining(t *testing.T, lotID string) decimal.Decimal {
	t.Helper()
	lot, err := memory.NewLotRepository(f.store).GetByID(lotID)
	require.NoError(t, err)
	require.NotNil(t, lot)
	return lot.RemainingQty
}

func TestRecordPurchase(t *testing.T) {
	f := newFixture(t)

	lot := f.purchase(t, 100)
	assert.True(t, lot.RemainingQty.Equal(decimal.NewFromInt(100)), "el restante debe arrancar igual a la cantidad")
	assert.True(t, lot.TotalAmount.Equal(decimal.NewFromInt(3_000_000)), "total = cantidad * tarifa")

	_, err := f.trading.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID: f.productID,
		Quantity:  decimal.Zero,
		Rate:      decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = f.trading.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID: "no-existe",
		Quantity:  decimal.NewFromInt(10),
		Rate:      decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_DescuentaDelLote(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)

	sale := f.sell(t, lot.ID, 60)
	assert.False(t, sale.IsExtraSold, "vender dentro de la disponibilidad no es sobre-venta")
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(40)))
}

func TestRecordSale_MarcaSobreVenta(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	f.sell(t, lot.ID, 60)

	// Disponibilidad 40, se piden 50: se permite pero se marca.
	sale := f.sell(t, lot.ID, 50)
	assert.True(t, sale.IsExtraSold, "vender por encima de la disponibilidad debe marcarse")
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(-10)),
		"el contador del lote queda negativo tras sobre-venta")
}

func TestRecordSale_Validaciones(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)

	_, err := f.trading.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID:  f.productID,
		CustomerID: "no-existe",
		LotID:      lot.ID,
		Quantity:   decimal.NewFromInt(10),
		Rate:       decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")

	otro, err2 := usecase.NewProductUseCase(memory.NewProductRepository(f.store)).Create(dto.CreateProductRequest{Name: "Papaya", UnitType: "KG"})
	require.NoError(t, err2)
	_, err = f.trading.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID:  otro.ID,
		CustomerID: f.customerID,
		LotID:      lot.ID,
		Quantity:   decimal.NewFromInt(10),
		Rate:       decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el lote debe pertenecer al producto de la venta")
}

func TestDeleteSale_DevuelveCantidadAlLote(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	sale := f.sell(t, lot.ID, 60)

	require.NoError(t, f.trading.DeleteSale(context.Background(), sale.ID))
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(100)),
		"borrar la venta devuelve su cantidad al contador")

	// Repetir el borrado es un no-op: sin doble incremento.
	require.NoError(t, f.trading.DeleteSale(context.Background(), sale.ID))
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(100)))
}

func TestRestoreSale_RoundTrip(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	sale := f.sell(t, lot.ID, 60)

	require.NoError(t, f.trading.DeleteSale(context.Background(), sale.ID))
	require.NoError(t, f.trading.RestoreItem(context.Background(), dto.TrashTypeSale, sale.ID))
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(40)),
		"borrar y restaurar deja el contador como estaba")

	// Restaurar algo ya activo no ajusta nada.
	require.NoError(t, f.trading.RestoreItem(context.Background(), dto.TrashTypeSale, sale.ID))
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(40)))
}

func TestDeleteLot_Cascada(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	sale1 := f.sell(t, lot.ID, 30)
	sale2 := f.sell(t, lot.ID, 20)

	require.NoError(t, f.trading.DeleteLot(context.Background(), lot.ID))

	saleRepo := memory.NewSaleRepository(f.store)
	for _, id := range []string{sale1.ID, sale2.ID} {
		s, err := saleRepo.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.True(t, s.IsDeleted, "la cascada debe borrar las ventas vivas del lote")
	}

	// Repetir es un no-op.
	require.NoError(t, f.trading.DeleteLot(context.Background(), lot.ID))

	assert.ErrorIs(t, f.trading.DeleteLot(context.Background(), "no-existe"), domain.ErrNotFound)
}

func TestRestoreSale_ConLoteBorrado(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	sale := f.sell(t, lot.ID, 30)

	require.NoError(t, f.trading.DeleteLot(context.Background(), lot.ID))

	err := f.trading.RestoreItem(context.Background(), dto.TrashTypeSale, sale.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"no se puede restaurar una venta cuyo lote sigue en la papelera")

	// Restaurado el lote, la venta vuelve y el contador se reajusta.
	require.NoError(t, f.trading.RestoreItem(context.Background(), dto.TrashTypeLot, lot.ID))
	require.NoError(t, f.trading.RestoreItem(context.Background(), dto.TrashTypeSale, sale.ID))
	assert.True(t, f.lotRemaining(t, lot.ID).Equal(decimal.NewFromInt(70)))
}

func TestWriteOffLot(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	f.sell(t, lot.ID, 85)

	spoilage, err := f.trading.WriteOffLot(context.Background(), lot.ID)
	require.NoError(t, err)
	assert.Equal(t, "SPOILAGE", spoilage.Kind)
	assert.True(t, spoilage.Quantity.Equal(decimal.NewFromInt(15)), "la merma es exactamente el restante")
	assert.True(t, spoilage.Rate.IsZero())
	assert.True(t, spoilage.TotalAmount.IsZero())
	assert.True(t, f.lotRemaining(t, lot.ID).IsZero(), "el lote queda exactamente en cero")

	_, err = f.trading.WriteOffLot(context.Background(), lot.ID)
	assert.ErrorIs(t, err, domain.ErrNothingToWrite, "sin restante no hay nada que dar de baja")
}

func TestContadorCacheadoCoincideConRecomputo(t *testing.T) {
	f := newFixture(t)
	lot := f.purchase(t, 100)
	s1 := f.sell(t, lot.ID, 30)
	f.sell(t, lot.ID, 20)
	require.NoError(t, f.trading.DeleteSale(context.Background(), s1.ID))
	require.NoError(t, f.trading.RestoreItem(context.Background(), dto.TrashTypeSale, s1.ID))

	saleRepo := memory.NewSaleRepository(f.store)
	sold, err := saleRepo.SumActiveByLot(lot.ID)
	require.NoError(t, err)

	lotRepo := memory.NewLotRepository(f.store)
	stored, err := lotRepo.GetByID(lot.ID)
	require.NoError(t, err)
	assert.True(t, stored.RemainingQty.Equal(stored.Quantity.Sub(sold)),
		"el contador cacheado debe coincidir con el recomputo sobre ventas vivas")
}
