package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/inquiry"
)

// InquiryHandler handles the customer inquiry lifecycle.
type InquiryHandler struct {
	uc *inquiry.Usecase
}

// NewInquiryHandler builds the handler.
func NewInquiryHandler(uc *inquiry.Usecase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Submit an inquiry (public contact form)
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.CreateInquiryRequest  true  "Inquiry"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/inquiries [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.Create(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByBusiness godoc
// @Summary      Owner inbox with per-status counts
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "Business id"
// @Param        status        query  string  false  "Filter by status"
// @Param        inquiry_type  query  string  false  "Filter by type"
// @Param        priority      query  string  false  "Filter by priority"
// @Param        sort_by       query  string  false  "created_at or priority"
// @Success      200  {object}  dto.InquiryListResponse
// @Router       /api/v1/businesses/{id}/inquiries [get]
func (h *InquiryHandler) ListByBusiness(c *fiber.Ctx) error {
	in := dto.ListInquiriesRequest{
		Status:      c.Query("status"),
		InquiryType: c.Query("inquiry_type"),
		Priority:    c.Query("priority"),
		SortBy:      c.Query("sort_by"),
	}
	in.Page = c.QueryInt("page", 1)
	in.Limit = c.QueryInt("limit", 20)
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Read one inquiry (marks new inquiries as read)
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Inquiry id"
// @Success      200  {object}  dto.InquiryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inquiries/{id} [get]
func (h *InquiryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Respond godoc
// @Summary      Reply to an inquiry
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Inquiry id"
// @Param        body  body  dto.RespondInquiryRequest  true  "Response message"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      409   {object}  dto.ErrorResponse  "Already responded"
// @Router       /api/v1/inquiries/{id}/respond [put]
func (h *InquiryHandler) Respond(c *fiber.Ctx) error {
	var in dto.RespondInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.Respond(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Overwrite inquiry status
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Inquiry id"
// @Param        body  body  dto.UpdateInquiryStatusRequest  true  "New status"
// @Success      200   {object}  dto.InquiryResponse
// @Router       /api/v1/inquiries/{id}/status [put]
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePriority godoc
// @Summary      Change inquiry priority
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Inquiry id"
// @Param        body  body  dto.UpdateInquiryPriorityRequest  true  "New priority"
// @Success      200   {object}  dto.InquiryResponse
// @Router       /api/v1/inquiries/{id}/priority [put]
func (h *InquiryHandler) UpdatePriority(c *fiber.Ctx) error {
	var in dto.UpdateInquiryPriorityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	out, err := h.uc.UpdatePriority(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
