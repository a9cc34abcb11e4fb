package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/usecase"
)

// BusinessHandler handles directory listing endpoints.
type BusinessHandler struct {
	uc *usecase.BusinessUsecase
}

// NewBusinessHandler builds the handler.
func NewBusinessHandler(uc *usecase.BusinessUsecase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Create a listing
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Listing data"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Browse the directory
// @Tags         businesses
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Param        city      query  string  false  "City filter"
// @Param        search    query  string  false  "Name/description substring"
// @Param        verified  query  bool    false  "Verified only"
// @Param        page      query  int     false  "Page"   default(1)
// @Param        limit     query  int     false  "Limit"  default(20)
// @Success      200  {object}  dto.BusinessListResponse
// @Router       /api/v1/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	in := dto.ListBusinessesRequest{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
	}
	in.Page = c.QueryInt("page", 1)
	in.Limit = c.QueryInt("limit", 20)
	if v := c.Query("verified"); v != "" {
		verified := v == "true" || v == "1"
		in.Verified = &verified
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a listing by id
// @Tags         businesses
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id} [get]
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Get a listing by slug
// @Tags         businesses
// @Produce      json
// @Param        slug  path  string  true  "URL slug"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/slug/{slug} [get]
func (h *BusinessHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a listing
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.UpdateBusinessRequest  true  "Fields to update"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id} [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deactivate a listing
// @Tags         businesses
// @Security     Bearer
// @Param        id  path  string  true  "Business id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
