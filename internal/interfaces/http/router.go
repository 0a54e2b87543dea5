package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-ledger/internal/application/ledger"
	"github.com/jhoicas/fruver-ledger/internal/application/stock"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	VendorUC   *usecase.VendorUseCase
	CustomerUC *usecase.CustomerUseCase
	TrashUC    *usecase.TrashUseCase
	TradingUC  *trading.UseCase
	StockUC    *stock.UseCase
	LedgerUC   *ledger.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Lotes y libro de lotes. /summaries va antes de /:id para que Fiber no lo
	// capture como parámetro.
	lots := api.Group("/lots")
	lotHandler := NewLotHandler(deps.TradingUC, deps.LedgerUC)
	lots.Post("/", lotHandler.Create)
	lots.Get("/", lotHandler.List)
	lots.Get("/summaries", lotHandler.Summaries)
	lots.Delete("/:id", lotHandler.Delete)
	lots.Post("/:id/write-off", lotHandler.WriteOff)

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.TradingUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Delete("/:id", saleHandler.Delete)

	// Stock
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.Overview)
	stockGroup.Get("/:productId", stockHandler.GetByProduct)

	// Papelera
	trash := api.Group("/trash")
	trashHandler := NewTrashHandler(deps.TrashUC, deps.TradingUC)
	trash.Get("/", trashHandler.List)
	trash.Post("/restore", trashHandler.Restore)
}
