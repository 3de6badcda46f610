package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/usecase"
)

// TicketHandler ticket di assistenza interni.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler costruisce l'handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Open godoc
// @Summary      Apre un ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenTicketRequest  true  "oggetto, messaggio"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Subject == "" || in.Message == "" {
		return validation(c, "subject e message sono richiesti")
	}
	t, err := h.uc.Open(c.Context(), CurrentUser(c), in.Subject, in.Message)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTicketResponse(*t))
}

// List godoc
// @Summary      Ticket visibili all'attore
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TicketResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListFor(c.Context(), CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	out := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTicketResponse(t))
	}
	return c.JSON(out)
}

// Reply godoc
// @Summary      Risponde su un ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID ticket"
// @Param        body  body  dto.TicketReplyRequest  true  "messaggio"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/replies [post]
func (h *TicketHandler) Reply(c *fiber.Ctx) error {
	var in dto.TicketReplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Message == "" {
		return validation(c, "message è richiesto")
	}
	if err := h.uc.Reply(c.Context(), CurrentUser(c), c.Params("id"), in.Message); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStatus godoc
// @Summary      Avanza lo stato di un ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID ticket"
// @Param        body  body  dto.TicketStatusRequest  true  "nuovo stato"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/status [put]
func (h *TicketHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.TicketStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Context(), CurrentUser(c), c.Params("id"), in.Status); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
