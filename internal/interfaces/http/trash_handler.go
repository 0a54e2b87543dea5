package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-ledger/internal/application/dto"
	"github.com/jhoicas/fruver-ledger/internal/application/trading"
	"github.com/jhoicas/fruver-ledger/internal/application/usecase"
)

// TrashHandler maneja las peticiones HTTP de la papelera.
type TrashHandler struct {
	trash   *usecase.TrashUseCase
	trading *trading.UseCase
}

// NewTrashHandler construye el handler.
func NewTrashHandler(trashUC *usecase.TrashUseCase, tradingUC *trading.UseCase) *TrashHandler {
	return &TrashHandler{trash: trashUC, trading: tradingUC}
}

// List godoc
// @Summary      Listar contenido de la papelera
// @Tags         trash
// @Produce      json
// @Param        type  query  string  false  "product, vendor, customer, lot, sale; vacío = todos"
// @Success      200  {object}  dto.TrashListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/trash [get]
func (h *TrashHandler) List(c *fiber.Ctx) error {
	out, err := h.trash.List(c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar ítem desde la papelera
// @Description  Restaurar una venta devuelve su cantidad al contador del lote
//
//	exactamente una vez; falla con 409 si el lote padre sigue borrado.
//
// @Tags         trash
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestoreRequest  true  "type, id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/trash/restore [post]
func (h *TrashHandler) Restore(c *fiber.Ctx) error {
	var in dto.RestoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.trading.RestoreItem(c.Context(), in.Type, in.ID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
