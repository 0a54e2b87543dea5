package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/application/ledger"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
)

// LotHandler maneja las peticiones HTTP de lotes de compra y del libro de lotes.
type LotHandler struct {
	trading *trading.UseCase
	ledger  *ledger.UseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(tradingUC *trading.UseCase, ledgerUC *ledger.UseCase) *LotHandler {
	return &LotHandler{trading: tradingUC, ledger: ledgerUC}
}

// Create godoc
// @Summary      Registrar lote de compra
// @Tags         lots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "product_id, vendor_ids, quantity, rate, date opcional"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.trading.RecordPurchase(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lotes vivos
// @Tags         lots
// @Produce      json
// @Param        from_date   query  string  false  "2006-01-02, inicio inclusivo"
// @Param        to_date     query  string  false  "2006-01-02, inclusivo del día completo"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Success      200  {object}  dto.LotListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.trading.ListLots(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summaries godoc
// @Summary      Libro de lotes
// @Description  Devuelve cada lote con su manifiesto de ventas en orden cronológico,
//
//	saldo corrido, estado (OK, REMAINING, EXTRA_SOLD) y el agregado global.
//
// @Tags         lots
// @Produce      json
// @Param        from_date   query  string  false  "2006-01-02, inicio inclusivo"
// @Param        to_date     query  string  false  "2006-01-02, inclusivo del día completo"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Success      200  {object}  dto.LotLedgerDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lots/summaries [get]
func (h *LotHandler) Summaries(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.BuildLotSummaries(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Mandar lote a la papelera
// @Description  Borra el lote y, en la misma transacción, todas sus ventas vivas.
// @Tags         lots
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	if err := h.trading.DeleteLot(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// WriteOff godoc
// @Summary      Dar de baja el restante del lote como merma
// @Description  Sintetiza una venta SPOILAGE a tarifa cero por el restante del lote
//
//	y deja su stock exactamente en cero.
//
// @Tags         lots
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      201  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/write-off [post]
func (h *LotHandler) WriteOff(c *fiber.Ctx) error {
	out, err := h.trading.WriteOffLot(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
