package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/usecase"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
)

// SaleHandler gestisce ordini: elenco, transizioni di stato, contatti,
// note, recapiti cliente e scansione duplicati.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler costruisce l'handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Lista ordini visibili al ruolo
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "filtro stato"
// @Param        product_id    query  string  false  "filtro prodotto"
// @Param        affiliate_id  query  string  false  "filtro affiliato (staff)"
// @Param        sub_id        query  string  false  "filtro sub-id (ILIKE)"
// @Param        from          query  string  false  "YYYY-MM-DD"
// @Param        to            query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter := repository.SaleFilter{
		Status:      c.Query("status"),
		ProductID:   c.Query("product_id"),
		AffiliateID: c.Query("affiliate_id"),
		SubID:       c.Query("sub_id"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return validation(c, "from deve essere YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return validation(c, "to deve essere YYYY-MM-DD")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	list, err := h.uc.List(c.Context(), CurrentUser(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toSaleResponses(list))
}

// Get godoc
// @Summary      Dettaglio ordine
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID ordine"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	sale, err := h.uc.Get(c.Context(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toSaleResponse(*sale))
}

// Create godoc
// @Summary      Inserimento manuale di un ordine
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "dati ordine"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(*sale))
}

// ChangeStatus godoc
// @Summary      Transizione di stato
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID ordine"
// @Param        body  body  dto.ChangeStatusRequest  true  "nuovo stato, tracking"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/status [put]
func (h *SaleHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Status == "" {
		return validation(c, "status è richiesto")
	}
	if err := h.uc.ChangeStatus(c.Context(), CurrentUser(c), c.Params("id"), in.Status, in.TrackingCode); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Contact godoc
// @Summary      Registra un contatto cliente
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID ordine"
// @Param        body  body  dto.ContactRequest  true  "canale, nota"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/contacts [post]
func (h *SaleHandler) Contact(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Channel == "" {
		return validation(c, "channel è richiesto")
	}
	if err := h.uc.RecordContact(c.Context(), CurrentUser(c), c.Params("id"), in.Channel, in.Note); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateNotes godoc
// @Summary      Aggiorna le note operative
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID ordine"
// @Param        body  body  dto.UpdateNotesRequest  true  "note"
// @Success      204
// @Router       /api/sales/{id}/notes [put]
func (h *SaleHandler) UpdateNotes(c *fiber.Ctx) error {
	var in dto.UpdateNotesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateNotes(c.Context(), CurrentUser(c), c.Params("id"), in.Notes); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateCustomer godoc
// @Summary      Aggiorna i recapiti del cliente
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID ordine"
// @Param        body  body  dto.UpdateCustomerRequest  true  "recapiti"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/customer [put]
func (h *SaleHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale := &entity.Sale{
		ID:                    c.Params("id"),
		CustomerName:          in.CustomerName,
		CustomerPhone:         in.CustomerPhone,
		CustomerEmail:         in.CustomerEmail,
		CustomerStreetAddress: in.CustomerStreetAddress,
		CustomerHouseNumber:   in.CustomerHouseNumber,
		CustomerCity:          in.CustomerCity,
		CustomerProvince:      in.CustomerProvince,
		CustomerZip:           in.CustomerZip,
	}
	if err := h.uc.UpdateCustomer(c.Context(), CurrentUser(c), sale); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ScanDuplicates godoc
// @Summary      Rilancia la scansione duplicati
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  object{marked=int}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/scan-duplicates [post]
func (h *SaleHandler) ScanDuplicates(c *fiber.Ctx) error {
	marked, err := h.uc.ScanDuplicates(c.Context(), CurrentUser(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"marked": marked})
}
