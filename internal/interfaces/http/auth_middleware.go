package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/pkg/jwt"
)

// Chiave Locals per l'utente autenticato.
const LocalUser = "current_user"

// AuthMiddleware valida il Bearer Token JWT, carica l'utente e lo mette
// in c.Locals. Gli account bloccati vengono respinti anche a token valido.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization richiesto"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vuoto"})
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalido o scaduto"})
		}
		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "utente non trovato"})
		}
		if user.IsBlocked {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "BLOCKED", Message: "account sospeso"})
		}
		c.Locals(LocalUser, *user)
		return c.Next()
	}
}

// RequireRoles limita la rotta ai ruoli indicati. Da montare dopo
// AuthMiddleware.
func RequireRoles(roles ...entity.Role) fiber.Handler {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if !allowed[user.Role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "ruolo non autorizzato"})
		}
		return c.Next()
	}
}

// CurrentUser restituisce l'utente autenticato dal contesto (dopo il
// middleware di auth).
func CurrentUser(c *fiber.Ctx) entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return entity.User{}
	}
	u, _ := v.(entity.User)
	return u
}
