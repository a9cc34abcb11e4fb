package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/usecase"
)

// ImageHandler handles the listing photo gallery.
type ImageHandler struct {
	uc *usecase.ImageUsecase
}

// NewImageHandler builds the handler.
func NewImageHandler(uc *usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// Create godoc
// @Summary      Register an image for a listing
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.CreateImageRequest  true  "Image"
// @Success      201   {object}  dto.ImageResponse
// @Router       /api/v1/businesses/{id}/images [post]
func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateImageRequest
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
// @Summary      List images of a business
// @Tags         images
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {array}  dto.ImageResponse
// @Router       /api/v1/businesses/{id}/images [get]
func (h *ImageHandler) ListByBusiness(c *fiber.Ctx) error {
	out, err := h.uc.ListByBusiness(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPrimary godoc
// @Summary      Make an image the cover photo
// @Tags         images
// @Security     Bearer
// @Param        id  path  string  true  "Image id"
// @Success      204
// @Router       /api/v1/images/{id}/primary [put]
func (h *ImageHandler) SetPrimary(c *fiber.Ctx) error {
	if err := h.uc.SetPrimary(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Remove an image
// @Tags         images
// @Security     Bearer
// @Param        id  path  string  true  "Image id"
// @Success      204
// @Router       /api/v1/images/{id} [delete]
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
