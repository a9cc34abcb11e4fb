package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/usecase"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

// NewReviewHandler builds the handler.
func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Review a business
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.CreateReviewRequest  true  "Review"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      409   {object}  dto.ErrorResponse  "Already reviewed"
// @Router       /api/v1/businesses/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByBusiness godoc
// @Summary      List reviews of a business
// @Tags         reviews
// @Produce      json
// @Param        id     path   string  true   "Business id"
// @Param        page   query  int     false  "Page"   default(1)
// @Param        limit  query  int     false  "Limit"  default(20)
// @Success      200  {object}  dto.ReviewListResponse
// @Router       /api/v1/businesses/{id}/reviews [get]
func (h *ReviewHandler) ListByBusiness(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	out, err := h.uc.ListByBusiness(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a review
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Review id"
// @Param        body  body  dto.UpdateReviewRequest  true  "Fields to update"
// @Success      200   {object}  dto.ReviewResponse
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReviewRequest
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
// @Summary      Remove a review
// @Tags         reviews
// @Security     Bearer
// @Param        id  path  string  true  "Review id"
// @Success      204
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
