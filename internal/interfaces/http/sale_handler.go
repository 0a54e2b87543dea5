package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	trading *trading.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(tradingUC *trading.UseCase) *SaleHandler {
	return &SaleHandler{trading: tradingUC}
}

// Create godoc
// @Summary      Registrar venta contra un lote
// @Description  La sobre-venta está permitida: si la cantidad supera la disponibilidad
//
//	del producto la venta se marca is_extra_sold, no se rechaza.
//
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, customer_id, lot_id, quantity, rate"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.trading.RecordSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas vivas
// @Tags         sales
// @Produce      json
// @Param        from_date   query  string  false  "2006-01-02, inicio inclusivo"
// @Param        to_date     query  string  false  "2006-01-02, inclusivo del día completo"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.trading.ListSales(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Mandar venta a la papelera
// @Description  Devuelve la cantidad al contador del lote en la misma transacción.
// @Tags         sales
// @Param        id  path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.trading.DeleteSale(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
