package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/auth"
	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

// UserHandler amministrazione utenti (admin, in parte manager).
type UserHandler struct {
	uc        *auth.UseCase
	snapshots repository.SnapshotLoader
}

// NewUserHandler costruisce l'handler.
func NewUserHandler(uc *auth.UseCase, snapshots repository.SnapshotLoader) *UserHandler {
	return &UserHandler{uc: uc, snapshots: snapshots}
}

// Create godoc
// @Summary      Crea utente
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nome, email, password, ruolo"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateUser(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lista utenti con saldo corrente
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	balances := ledger.ComputeBalances(snap)
	out := make([]dto.UserResponse, 0, len(snap.Users))
	for i := range snap.Users {
		u := snap.Users[i]
		resp := auth.ToUserResponse(&u)
		if u.Role.HasBalance() {
			resp.Balance = money(balances[u.ID])
		}
		out = append(out, *resp)
	}
	return c.JSON(out)
}

// SetBlocked godoc
// @Summary      Blocca o sblocca un utente
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID utente"
// @Param        body  body  object{blocked=bool}  true  "blocked"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/blocked [put]
func (h *UserHandler) SetBlocked(c *fiber.Ctx) error {
	var in struct {
		Blocked bool `json:"blocked"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetBlocked(c.Context(), CurrentUser(c), c.Params("id"), in.Blocked); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
