package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/usecase"
)

// ServiceHandler handles the service catalogue under a listing.
type ServiceHandler struct {
	uc *usecase.ServiceUsecase
}

// NewServiceHandler builds the handler.
func NewServiceHandler(uc *usecase.ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Add a service to a listing
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.CreateServiceRequest  true  "Service"
// @Success      201   {object}  dto.ServiceResponse
// @Router       /api/v1/businesses/{id}/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
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
// @Summary      List services of a business
// @Tags         services
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {array}  dto.ServiceResponse
// @Router       /api/v1/businesses/{id}/services [get]
func (h *ServiceHandler) ListByBusiness(c *fiber.Ctx) error {
	out, err := h.uc.ListByBusiness(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a service
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Service id"
// @Param        body  body  dto.UpdateServiceRequest  true  "Fields to update"
// @Success      200   {object}  dto.ServiceResponse
// @Router       /api/v1/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
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
// @Summary      Remove a service
// @Tags         services
// @Security     Bearer
// @Param        id  path  string  true  "Service id"
// @Success      204
// @Router       /api/v1/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
