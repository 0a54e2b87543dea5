package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	appstock "github.com/jhoicas/fruver-ledger/internal/application/stock"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
	"github.com/jhoicas/fruver-ledger/internal/domain"
	domstock "github.com/jhoicas/fruver-ledger/internal/domain/stock"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/memory"
)

func setup(t *testing.T) (*memory.Store, *appstock.UseCase, *trading.UseCase, string, string, string) {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	vendorRepo := memory.NewVendorRepository(store)
	customerRepo := memory.NewCustomerRepository(store)

	product, err := usecase.NewProductUseCase(productRepo).Create(dto.CreateProductRequest{Name: "Mango Tommy", UnitType: "BOX"})
	require.NoError(t, err)
	vendor, err := usecase.NewVendorUseCase(vendorRepo).Create(dto.CreatePartyRequest{Name: "Finca El Recreo"})
	require.NoError(t, err)
	customer, err := usecase.NewCustomerUseCase(customerRepo).Create(dto.CreatePartyRequest{Name: "Plaza Minorista"})
	require.NoError(t, err)

	stockUC := appstock.NewUseCase(memory.NewStockRepository(store), productRepo)
	tradingUC := trading.NewUseCase(store, productRepo, vendorRepo, customerRepo,
		memory.NewLotRepository(store), memory.NewSaleRepository(store))

	return store, stockUC, tradingUC, product.ID, vendor.ID, customer.ID
}

func TestGetCurrentStock_SinMovimientos(t *testing.T) {
	_, stockUC, _, productID, _, _ := setup(t)

	out, err := stockUC.GetCurrentStock(context.Background(), productID)
	require.NoError(t, err)
	assert.True(t, out.Purchased.IsZero())
	assert.True(t, out.Sold.IsZero())
	assert.True(t, out.Remaining.IsZero())
	assert.True(t, out.ExtraSold.IsZero())
	assert.Equal(t, domstock.StatusOK, out.Status, "sin movimientos el estado es OK, no un error")
}

func TestGetCurrentStock_ProductoInexistente(t *testing.T) {
	_, stockUC, _, _, _, _ := setup(t)

	_, err := stockUC.GetCurrentStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCurrentStock_DerivaDeLotesYVentas(t *testing.T) {
	_, stockUC, tradingUC, productID, vendorID, customerID := setup(t)

	lot, err := tradingUC.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID: productID,
		VendorIDs: []string{vendorID},
		Quantity:  decimal.NewFromInt(100),
		Rate:      decimal.NewFromInt(30000),
	})
	require.NoError(t, err)
	_, err = tradingUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID:  productID,
		CustomerID: customerID,
		LotID:      lot.ID,
		Quantity:   decimal.NewFromInt(60),
		Rate:       decimal.NewFromInt(38000),
	})
	require.NoError(t, err)

	out, err := stockUC.GetCurrentStock(context.Background(), productID)
	require.NoError(t, err)
	assert.True(t, out.Purchased.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Sold.Equal(decimal.NewFromInt(60)))
	assert.True(t, out.Remaining.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, domstock.StatusRemaining, out.Status)

	// Los borrados suaves salen de las cifras.
	sales, err := tradingUC.ListSales(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, sales.Items, 1)
	require.NoError(t, tradingUC.DeleteSale(context.Background(), sales.Items[0].ID))

	out, err = stockUC.GetCurrentStock(context.Background(), productID)
	require.NoError(t, err)
	assert.True(t, out.Sold.IsZero(), "las ventas en la papelera no cuentan")
	assert.True(t, out.Remaining.Equal(decimal.NewFromInt(100)))
}

func TestGetOverview(t *testing.T) {
	_, stockUC, tradingUC, productID, vendorID, _ := setup(t)

	_, err := tradingUC.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID: productID,
		VendorIDs: []string{vendorID},
		Quantity:  decimal.NewFromInt(25),
		Rate:      decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	out, err := stockUC.GetOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, productID, out.Items[0].ProductID)
	assert.True(t, out.Items[0].Remaining.Equal(decimal.NewFromInt(25)))
}
