// Comando seed: carga datos de demostración (productos, proveedores, clientes,
// un par de lotes y ventas) contra la base configurada. Pensado para entornos
// de desarrollo; no es idempotente.
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/fruver-ledger/pkg/config"
	"github.com/jhoicas/fruver-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	tradingUC := trading.NewUseCase(txRunner, productRepo, vendorRepo, customerRepo, lotRepo, saleRepo)

	mango, err := productUC.Create(dto.CreateProductRequest{Name: "Mango Tommy", UnitType: "BOX"})
	if err != nil {
		log.Fatal().Err(err).Msg("crear producto")
	}
	papaya, err := productUC.Create(dto.CreateProductRequest{Name: "Papaya Maradol", UnitType: "KG"})
	if err != nil {
		log.Fatal().Err(err).Msg("crear producto")
	}

	finca, err := vendorUC.Create(dto.CreatePartyRequest{Name: "Finca El Recreo", Contact: "310 555 0101"})
	if err != nil {
		log.Fatal().Err(err).Msg("crear proveedor")
	}

	plaza, err := customerUC.Create(dto.CreatePartyRequest{Name: "Plaza Minorista", Contact: "604 555 0202"})
	if err != nil {
		log.Fatal().Err(err).Msg("crear cliente")
	}
	tienda, err := customerUC.Create(dto.CreatePartyRequest{Name: "Tienda Don José", Contact: "301 555 0303"})
	if err != nil {
		log.Fatal().Err(err).Msg("crear cliente")
	}

	lot, err := tradingUC.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		ProductID: mango.ID,
		VendorIDs: []string{finca.ID},
		LotName:   "Mango semana 35",
		Quantity:  decimal.NewFromInt(100),
		Rate:      decimal.NewFromInt(32000),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("registrar compra")
	}

	if _, err := tradingUC.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		ProductID: papaya.ID,
		VendorIDs: []string{finca.ID},
		LotName:   "Papaya semana 35",
		Quantity:  decimal.NewFromInt(250),
		Rate:      decimal.NewFromInt(2800),
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar compra")
	}

	if _, err := tradingUC.RecordSale(ctx, dto.RecordSaleRequest{
		ProductID:  mango.ID,
		CustomerID: plaza.ID,
		LotID:      lot.ID,
		Quantity:   decimal.NewFromInt(60),
		Rate:       decimal.NewFromInt(38000),
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar venta")
	}
	if _, err := tradingUC.RecordSale(ctx, dto.RecordSaleRequest{
		ProductID:  mango.ID,
		CustomerID: tienda.ID,
		LotID:      lot.ID,
		Quantity:   decimal.NewFromInt(25),
		Rate:       decimal.NewFromInt(39000),
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar venta")
	}

	log.Info().Msg("datos de demostración cargados")
}
