package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/ledger"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

// PaymentHandler movimenti del registro: saldo, payout, trasferimenti,
// bonus, rettifiche, approvazioni e ricevute.
type PaymentHandler struct {
	svc       *ledger.Service
	snapshots repository.SnapshotLoader
	txRepo    repository.TransactionRepository
	receipts  ledger.ReceiptPDFGenerator
}

// NewPaymentHandler costruisce l'handler.
func NewPaymentHandler(svc *ledger.Service, snapshots repository.SnapshotLoader, txRepo repository.TransactionRepository, receipts ledger.ReceiptPDFGenerator) *PaymentHandler {
	return &PaymentHandler{svc: svc, snapshots: snapshots, txRepo: txRepo, receipts: receipts}
}

// Balance godoc
// @Summary      Scomposizione del saldo corrente
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/payments/balance [get]
func (h *PaymentHandler) Balance(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if !user.Role.HasBalance() {
		return fail(c, domain.ErrForbidden)
	}
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	b := ledger.ComputeBalance(snap, user)
	return c.JSON(toBalanceResponse(b, ledger.AvailableForPayout(snap, user)))
}

// List godoc
// @Summary      Movimenti che coinvolgono l'utente
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	list, err := h.txRepo.ListByUser(c.Context(), CurrentUser(c).ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toTransactionResponses(list))
}

// ListPending godoc
// @Summary      Transazioni in attesa di approvazione
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/payments/pending [get]
func (h *PaymentHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.txRepo.ListPending(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toTransactionResponses(list))
}

// Payout godoc
// @Summary      Richiesta di prelievo
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayoutRequest  true  "importo, metodo, coordinate"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payments/payout [post]
func (h *PaymentHandler) Payout(c *fiber.Ctx) error {
	var in dto.PayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return validation(c, "amount deve essere un decimale")
	}
	tx, err := h.svc.RequestPayout(c.Context(), CurrentUser(c).ID, amount, in.PaymentMethod, in.PaymentDetails)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(*tx))
}

// Transfer godoc
// @Summary      Trasferimento di saldo
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "mittente (solo admin), destinatario, importo"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payments/transfer [post]
func (h *PaymentHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return validation(c, "amount deve essere un decimale")
	}
	user := CurrentUser(c)
	from := user.ID
	// Solo l'admin può muovere saldo per conto di altri.
	if in.FromUserID != "" && in.FromUserID != user.ID {
		if user.Role != entity.RoleAdmin {
			return fail(c, domain.ErrForbidden)
		}
		from = in.FromUserID
	}
	tx, err := h.svc.Transfer(c.Context(), user.ID, from, in.ToUserID, amount, in.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(*tx))
}

// Bonus godoc
// @Summary      Accredito di un bonus manuale
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.BonusRequest  true  "destinatario, importo"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payments/bonus [post]
func (h *PaymentHandler) Bonus(c *fiber.Ctx) error {
	var in dto.BonusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return validation(c, "amount deve essere un decimale")
	}
	if err := h.svc.AddBonus(c.Context(), CurrentUser(c).ID, in.RecipientID, amount, in.Notes); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Rettifica amministrativa di saldo
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "destinatario, importo"
// @Success      201   {object}  dto.TransactionResponse
// @Router       /api/payments/adjustment [post]
func (h *PaymentHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return validation(c, "amount deve essere un decimale")
	}
	tx, err := h.svc.Adjust(c.Context(), CurrentUser(c).ID, in.ToUserID, amount, in.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(*tx))
}

// Approve godoc
// @Summary      Approva una transazione in sospeso
// @Tags         payments
// @Security     Bearer
// @Param        id   path  string  true  "ID transazione"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/approve [put]
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	if err := h.svc.ApproveTransaction(c.Context(), CurrentUser(c).ID, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reject godoc
// @Summary      Rifiuta una transazione in sospeso
// @Tags         payments
// @Security     Bearer
// @Param        id   path  string  true  "ID transazione"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/reject [put]
func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	if err := h.svc.RejectTransaction(c.Context(), CurrentUser(c).ID, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Ricevuta PDF di un payout completato
// @Tags         payments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID transazione"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	tx, err := h.txRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if tx == nil {
		return fail(c, domain.ErrNotFound)
	}
	if tx.Type != entity.TransactionPayout || tx.Status != entity.TransactionCompleted {
		return fail(c, domain.ErrTransactionState)
	}
	snap, err := h.snapshots.Load(c.Context())
	if err != nil {
		return fail(c, err)
	}
	payee := snap.UserByID(tx.UserID)
	if payee == nil {
		return fail(c, domain.ErrUserNotFound)
	}
	pdfBytes, err := h.receipts.GeneratePayoutReceipt(c.Context(), tx, payee)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ricevuta-`+tx.ID+`.pdf"`)
	return c.Send(pdfBytes)
}
