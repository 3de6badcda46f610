package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/auth"
	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

// AuthHandler gestisce login e profilo dell'utente autenticato.
type AuthHandler struct {
	uc        *auth.UseCase
	snapshots repository.SnapshotLoader
}

// NewAuthHandler costruisce l'handler di auth.
func NewAuthHandler(uc *auth.UseCase, snapshots repository.SnapshotLoader) *AuthHandler {
	return &AuthHandler{uc: uc, snapshots: snapshots}
}

// Login godoc
// @Summary      Accesso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return validation(c, "email e password sono richiesti")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Profilo corrente con saldo
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	out := auth.ToUserResponse(&user)
	if user.Role.HasBalance() {
		snap, err := h.snapshots.Load(c.Context())
		if err != nil {
			return fail(c, err)
		}
		out.Balance = money(ledger.ComputeBalance(snap, user).Current)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambio password
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ChangePasswordRequest  true  "password attuale e nuova"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangePassword(c.Context(), CurrentUser(c).ID, in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateProfile godoc
// @Summary      Aggiorna il proprio profilo
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "nome, email"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProfile(c.Context(), CurrentUser(c).ID, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
