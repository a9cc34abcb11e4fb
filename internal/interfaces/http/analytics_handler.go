package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/analytics"
	"github.com/isokohq/isoko-api/internal/application/dto"
)

// AnalyticsHandler handles event tracking and the dashboard.
type AnalyticsHandler struct {
	svc *analytics.Service
}

// NewAnalyticsHandler builds the handler.
func NewAnalyticsHandler(svc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// RecordEvent godoc
// @Summary      Record a tracking event (public beacon)
// @Tags         analytics
// @Accept       json
// @Param        id    path  string  true  "Business id"
// @Param        body  body  dto.RecordEventRequest  true  "Event"
// @Success      202
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/businesses/{id}/events [post]
func (h *AnalyticsHandler) RecordEvent(c *fiber.Ctx) error {
	var in dto.RecordEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "malformed JSON body")
	}
	if err := h.svc.RecordEvent(c.Context(), c.Params("id"), in.EventType); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// Weekly godoc
// @Summary      Trailing 7-day totals
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dto.PeriodStatsResponse
// @Router       /api/v1/businesses/{id}/analytics/weekly [get]
func (h *AnalyticsHandler) Weekly(c *fiber.Ctx) error {
	out, err := h.svc.GetWeeklyStats(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Trailing 30-day totals
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dto.PeriodStatsResponse
// @Router       /api/v1/businesses/{id}/analytics/monthly [get]
func (h *AnalyticsHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.svc.GetMonthlyStats(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Growth godoc
// @Summary      Window-over-window growth percentages
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dto.GrowthStatsResponse
// @Router       /api/v1/businesses/{id}/analytics/growth [get]
func (h *AnalyticsHandler) Growth(c *fiber.Ctx) error {
	out, err := h.svc.GetGrowthStats(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Full dashboard payload
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dto.AnalyticsOverviewResponse
// @Router       /api/v1/businesses/{id}/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.svc.GetOverview(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Download the overview as PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Business id"
// @Success      200  {file}  binary
// @Router       /api/v1/businesses/{id}/analytics/report.pdf [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	buf, err := h.svc.OverviewPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="analytics-report.pdf"`)
	return c.Send(buf)
}
