package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-ledger/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de cifras de stock.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Overview godoc
// @Summary      Cifras de stock de todos los productos activos
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockOverviewDTO
// @Router       /api/stock [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Cifras de stock de un producto
// @Description  comprado, vendido, restante, sobre-vendido y estado derivados de
//
//	lotes y ventas vivas. Un producto sin movimientos devuelve ceros con estado OK.
//
// @Tags         stock
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId} [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetCurrentStock(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
