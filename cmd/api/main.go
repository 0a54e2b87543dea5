package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fruver-ledger/internal/application/ledger"
	"github.com/jhoicas/fruver-ledger/internal/application/stock"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
	"github.com/jhoicas/fruver-ledger/internal/domain/repository"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/fruver-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fruver-ledger/internal/interfaces/http"
	"github.com/jhoicas/fruver-ledger/pkg/config"
	"github.com/jhoicas/fruver-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("memory_store", cfg.App.MemoryStore).
		Msg("iniciando aplicación")

	var (
		productRepo  repository.ProductRepository
		vendorRepo   repository.VendorRepository
		customerRepo repository.CustomerRepository
		lotRepo      repository.LotRepository
		saleRepo     repository.SaleRepository
		stockRepo    repository.StockRepository
		ledgerRepo   repository.LedgerRepository
		txRunner     trading.TxRunner
	)

	if cfg.App.MemoryStore {
		// Modo demo/desarrollo: todo en memoria, sin PostgreSQL.
		store := memory.NewStore()
		productRepo = memory.NewProductRepository(store)
		vendorRepo = memory.NewVendorRepository(store)
		customerRepo = memory.NewCustomerRepository(store)
		lotRepo = memory.NewLotRepository(store)
		saleRepo = memory.NewSaleRepository(store)
		stockRepo = memory.NewStockRepository(store)
		ledgerRepo = memory.NewLedgerRepository(store)
		txRunner = store
	} else {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		productRepo = postgres.NewProductRepository(pool)
		vendorRepo = postgres.NewVendorRepository(pool)
		customerRepo = postgres.NewCustomerRepository(pool)
		lotRepo = postgres.NewLotRepository(pool)
		saleRepo = postgres.NewSaleRepository(pool)
		stockRepo = postgres.NewStockRepository(pool)
		ledgerRepo = postgres.NewLedgerRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	productUC := usecase.NewProductUseCase(productRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	trashUC := usecase.NewTrashUseCase(productRepo, vendorRepo, customerRepo, lotRepo, saleRepo)
	tradingUC := trading.NewUseCase(txRunner, productRepo, vendorRepo, customerRepo, lotRepo, saleRepo)
	stockUC := stock.NewUseCase(stockRepo, productRepo)
	ledgerUC := ledger.NewUseCase(ledgerRepo, cfg.Stock.AgingDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fruver Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		VendorUC:   vendorUC,
		CustomerUC: customerUC,
		TrashUC:    trashUC,
		TradingUC:  tradingUC,
		StockUC:    stockUC,
		LedgerUC:   ledgerUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
