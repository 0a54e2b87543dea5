package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruver-ledger/internal/domain/entity"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/memory"
)

func TestRun_RollbackEnError(t *testing.T) {
	store := memory.NewStore()
	lotRepo := memory.NewLotRepository(store)

	lot := &entity.Lot{
		ID:           "lote-1",
		ProductID:    "prod-1",
		Quantity:     decimal.NewFromInt(100),
		RemainingQty: decimal.NewFromInt(100),
		Date:         time.Now(),
	}
	require.NoError(t, lotRepo.Create(lot))

	boom := errors.New("boom")
	err := store.Run(context.Background(), func(
		txLots repository.LotRepository,
		txSales repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		if err := txLots.AdjustRemaining("lote-1", decimal.NewFromInt(-60)); err != nil {
			return err
		}
		if err := txSales.Create(&entity.Sale{ID: "venta-1", LotID: "lote-1", Quantity: decimal.NewFromInt(60)}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nada de lo hecho dentro de la transacción fallida puede quedar visible.
	got, err := lotRepo.GetByID("lote-1")
	require.NoError(t, err)
	assert.True(t, got.RemainingQty.Equal(decimal.NewFromInt(100)), "el ajuste debe revertirse")

	sale, err := memory.NewSaleRepository(store).GetByID("venta-1")
	require.NoError(t, err)
	assert.Nil(t, sale, "la venta de la transacción fallida no debe existir")
}

func TestRun_CommitEnExito(t *testing.T) {
	store := memory.NewStore()
	lotRepo := memory.NewLotRepository(store)
	require.NoError(t, lotRepo.Create(&entity.Lot{
		ID:           "lote-1",
		Quantity:     decimal.NewFromInt(50),
		RemainingQty: decimal.NewFromInt(50),
		Date:         time.Now(),
	}))

	err := store.Run(context.Background(), func(
		txLots repository.LotRepository,
		_ repository.SaleRepository,
		_ repository.StockRepository,
	) error {
		return txLots.AdjustRemaining("lote-1", decimal.NewFromInt(-20))
	})
	require.NoError(t, err)

	got, err := lotRepo.GetByID("lote-1")
	require.NoError(t, err)
	assert.True(t, got.RemainingQty.Equal(decimal.NewFromInt(30)))
}
