package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/usecase"
)

// HoursHandler handles the weekly operating schedule.
type HoursHandler struct {
	uc *usecase.HoursUsecase
}

// NewHoursHandler builds the handler.
func NewHoursHandler(uc *usecase.HoursUsecase) *HoursHandler {
	return &HoursHandler{uc: uc}
}

// Get godoc
// @Summary      Week schedule with live open/closed state
// @Tags         hours
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dto.HoursResponse
// @Router       /api/v1/businesses/{id}/hours [get]
func (h *HoursHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Replace the full week schedule
// @Tags         hours
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.ReplaceHoursRequest  true  "All seven days"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/hours [put]
func (h *HoursHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceHoursRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	if err := h.uc.Replace(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
