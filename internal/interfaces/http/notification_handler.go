package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/usecase"
	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// NotificationHandler avvisi in-app indirizzati per ruolo.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler costruisce l'handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Create godoc
// @Summary      Pubblica un avviso
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "titolo, messaggio, ruoli destinatari"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	roles := make([]entity.Role, 0, len(in.TargetRoles))
	for _, r := range in.TargetRoles {
		roles = append(roles, entity.Role(r))
	}
	actor := CurrentUser(c)
	n, err := h.uc.Create(c.Context(), actor, in.Title, in.Message, in.Link, roles)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toNotificationResponse(*n, actor.ID))
}

// List godoc
// @Summary      Avvisi destinati al ruolo
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "numero massimo (0 = tutti)"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user := CurrentUser(c)
	list, err := h.uc.ListForUser(c.Context(), user, c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n, user.ID))
	}
	return c.JSON(out)
}

// UnreadCount godoc
// @Summary      Conteggio avvisi non letti
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  object{unread=int}
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.uc.CountUnread(c.Context(), CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"unread": n})
}

// MarkRead godoc
// @Summary      Segna un avviso come letto
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "ID avviso"
// @Success      204
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Segna tutti gli avvisi come letti
// @Tags         notifications
// @Security     Bearer
// @Success      204
// @Router       /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(c.Context(), CurrentUser(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Elimina un avviso
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "ID avviso"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), CurrentUser(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
