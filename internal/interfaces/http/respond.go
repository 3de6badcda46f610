package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain"
)

// Mappa sentinella di dominio -> risposta HTTP. I casi non mappati
// diventano 500 INTERNAL.
var errorTable = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "dati non validi"},
	{domain.ErrMissingTracking, fiber.StatusBadRequest, "MISSING_TRACKING", "lo stato Spedito richiede un codice di tracking"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenziali invalide"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "operazione non consentita per il ruolo"},
	{domain.ErrStatusNotAllowed, fiber.StatusForbidden, "STATUS_NOT_ALLOWED", "stato non assegnabile dal ruolo"},
	{domain.ErrSystemStatus, fiber.StatusForbidden, "SYSTEM_STATUS", "stato riservato al sistema"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", "utente non trovato"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", "prodotto non trovato"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "risorsa non trovata"},
	{domain.ErrInsufficientBalance, fiber.StatusUnprocessableEntity, "INSUFFICIENT_BALANCE", "saldo insufficiente"},
	{domain.ErrTransactionState, fiber.StatusConflict, "TRANSACTION_STATE", "la transazione non è più in sospeso"},
}

// fail traduce un errore applicativo nella risposta JSON uniforme.
func fail(c *fiber.Ctx, err error) error {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: e.message})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo della richiesta invalido"})
}

func validation(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}
