package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/usecase"
)

// StockExpenseHandler registro acquisti stock (staff).
type StockExpenseHandler struct {
	uc *usecase.StockExpenseUseCase
}

// NewStockExpenseHandler costruisce l'handler.
func NewStockExpenseHandler(uc *usecase.StockExpenseUseCase) *StockExpenseHandler {
	return &StockExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registra un acquisto di stock
// @Tags         stock-expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockExpenseRequest  true  "prodotto, pagatore, quantità, costo unitario"
// @Success      201   {object}  dto.StockExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stock-expenses [post]
func (h *StockExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.StockExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	expense, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockExpenseResponse(*expense))
}

// List godoc
// @Summary      Lista acquisti di stock
// @Tags         stock-expenses
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "filtro prodotto"
// @Success      200  {array}  dto.StockExpenseResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock-expenses [get]
func (h *StockExpenseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), CurrentUser(c), c.Query("product_id"))
	if err != nil {
		return fail(c, err)
	}
	out := make([]dto.StockExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toStockExpenseResponse(e))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina un acquisto registrato per errore
// @Tags         stock-expenses
// @Security     Bearer
// @Param        id   path  string  true  "ID spesa"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-expenses/{id} [delete]
func (h *StockExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
