package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/application/usecase"
	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// ProductHandler catalogo prodotti.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler costruisce l'handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func showCosts(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleManager
}

// Create godoc
// @Summary      Crea articolo di catalogo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "dati articolo"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.Create(c.Context(), CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(*p, true))
}

// List godoc
// @Summary      Lista catalogo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	user := CurrentUser(c)
	list, err := h.uc.List(c.Context(), user)
	if err != nil {
		return fail(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p, showCosts(user.Role)))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Dettaglio articolo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID articolo"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toProductResponse(*p, showCosts(CurrentUser(c).Role)))
}

// Update godoc
// @Summary      Aggiorna articolo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID articolo"
// @Param        body  body  dto.ProductRequest  true  "dati articolo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.Update(c.Context(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toProductResponse(*p, true))
}

// AdjustStock godoc
// @Summary      Applica un delta allo stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID articolo"
// @Param        body  body  object{delta=int}  true  "delta"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AdjustStock(c.Context(), CurrentUser(c), c.Params("id"), in.Delta); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
