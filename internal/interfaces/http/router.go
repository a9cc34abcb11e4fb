package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/isokohq/isoko-api/internal/application/analytics"
	"github.com/isokohq/isoko-api/internal/application/auth"
	"github.com/isokohq/isoko-api/internal/application/inquiry"
	"github.com/isokohq/isoko-api/internal/application/usecase"
	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// RouterDeps groups the dependencies the router wires into handlers.
type RouterDeps struct {
	AuthUC      *auth.Usecase
	BusinessUC  *usecase.BusinessUsecase
	ReviewUC    *usecase.ReviewUsecase
	ServiceUC   *usecase.ServiceUsecase
	ImageUC     *usecase.ImageUsecase
	HoursUC     *usecase.HoursUsecase
	InquiryUC   *inquiry.Usecase
	AnalyticsUC *analytics.Service
	JWTSecret   string
	DevMode     bool
}

// Router registers the API routes under /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	devMode = deps.DevMode

	api := app.Group("/api/v1")
	authRequired := AuthMiddleware(deps.JWTSecret)
	ownerOrAdmin := RequireRole(entity.RoleOwner, entity.RoleAdmin)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Businesses: browsing is public, management requires owner/admin
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses := api.Group("/businesses")
	businesses.Get("/", businessHandler.List)
	businesses.Get("/slug/:slug", businessHandler.GetBySlug)
	businesses.Get("/:id", businessHandler.GetByID)
	businesses.Post("/", authRequired, ownerOrAdmin, businessHandler.Create)
	businesses.Put("/:id", authRequired, ownerOrAdmin, businessHandler.Update)
	businesses.Delete("/:id", authRequired, ownerOrAdmin, businessHandler.Delete)

	// Reviews: reading is public, writing needs any authenticated account
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	businesses.Get("/:id/reviews", reviewHandler.ListByBusiness)
	businesses.Post("/:id/reviews", authRequired, reviewHandler.Create)
	reviews := api.Group("/reviews", authRequired)
	reviews.Put("/:id", reviewHandler.Update)
	reviews.Delete("/:id", reviewHandler.Delete)

	// Services
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	businesses.Get("/:id/services", serviceHandler.ListByBusiness)
	businesses.Post("/:id/services", authRequired, ownerOrAdmin, serviceHandler.Create)
	services := api.Group("/services", authRequired, ownerOrAdmin)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Images
	imageHandler := NewImageHandler(deps.ImageUC)
	businesses.Get("/:id/images", imageHandler.ListByBusiness)
	businesses.Post("/:id/images", authRequired, ownerOrAdmin, imageHandler.Create)
	images := api.Group("/images", authRequired, ownerOrAdmin)
	images.Put("/:id/primary", imageHandler.SetPrimary)
	images.Delete("/:id", imageHandler.Delete)

	// Operating hours
	hoursHandler := NewHoursHandler(deps.HoursUC)
	businesses.Get("/:id/hours", hoursHandler.Get)
	businesses.Put("/:id/hours", authRequired, ownerOrAdmin, hoursHandler.Replace)

	// Inquiries: the contact form is public, the inbox is owner/admin
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	businesses.Post("/:id/inquiries", inquiryHandler.Create)
	businesses.Get("/:id/inquiries", authRequired, ownerOrAdmin, inquiryHandler.ListByBusiness)
	inquiries := api.Group("/inquiries", authRequired, ownerOrAdmin)
	inquiries.Get("/:id", inquiryHandler.Get)
	inquiries.Put("/:id/respond", inquiryHandler.Respond)
	inquiries.Put("/:id/status", inquiryHandler.UpdateStatus)
	inquiries.Put("/:id/priority", inquiryHandler.UpdatePriority)

	// Analytics: the beacon is public, the dashboard is owner/admin
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	businesses.Post("/:id/events", analyticsHandler.RecordEvent)
	dash := businesses.Group("/:id/analytics", authRequired, ownerOrAdmin)
	dash.Get("/weekly", analyticsHandler.Weekly)
	dash.Get("/monthly", analyticsHandler.Monthly)
	dash.Get("/growth", analyticsHandler.Growth)
	dash.Get("/overview", analyticsHandler.Overview)
	dash.Get("/report.pdf", analyticsHandler.Report)
}
