package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/isokohq/isoko-api/internal/application/analytics"
	"github.com/isokohq/isoko-api/internal/application/auth"
	"github.com/isokohq/isoko-api/internal/application/inquiry"
	"github.com/isokohq/isoko-api/internal/application/notify"
	"github.com/isokohq/isoko-api/internal/application/usecase"
	"github.com/isokohq/isoko-api/internal/infrastructure/mail"
	infrapdf "github.com/isokohq/isoko-api/internal/infrastructure/pdf"
	"github.com/isokohq/isoko-api/internal/infrastructure/postgres"
	httpRouter "github.com/isokohq/isoko-api/internal/interfaces/http"
	"github.com/isokohq/isoko-api/pkg/config"
	"github.com/isokohq/isoko-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	primary, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	replica, err := postgres.NewReplicaPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to read replica")
	}
	gateway := postgres.NewGateway(primary, replica, log)
	defer gateway.Close()

	// Writes and authorization lookups hit the primary; the public directory
	// listing reads through the gateway so a replica can absorb browse load.
	userRepo := postgres.NewUserRepository(primary)
	businessRepo := postgres.NewBusinessRepository(primary)
	businessReadRepo := postgres.NewBusinessRepository(gateway.Read())
	reviewRepo := postgres.NewReviewRepository(primary)
	serviceRepo := postgres.NewServiceRepository(primary)
	imageRepo := postgres.NewImageRepository(primary)
	inquiryRepo := postgres.NewInquiryRepository(primary)
	analyticsRepo := postgres.NewAnalyticsRepository(primary)
	hoursRepo := postgres.NewHoursRepository(primary)
	txRunner := postgres.NewTxRunner(primary)

	sender := mail.NewSMTPSender(cfg.SMTP, log)
	dispatcher := notify.NewDispatcher(sender, cfg.Notify, log)
	defer dispatcher.Close()

	authUC := auth.NewUsecase(userRepo, cfg.JWT, log)
	businessUC := usecase.NewBusinessUsecase(businessRepo, businessReadRepo, userRepo, log)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, businessRepo, userRepo, log)
	serviceUC := usecase.NewServiceUsecase(serviceRepo, businessRepo, userRepo, log)
	imageUC := usecase.NewImageUsecase(imageRepo, businessRepo, userRepo, log)
	hoursUC := usecase.NewHoursUsecase(hoursRepo, businessRepo, userRepo, txRunner, log)
	analyticsUC := appanalytics.NewService(analyticsRepo, businessRepo, userRepo, infrapdf.NewReportGenerator(), log)
	inquiryUC := inquiry.NewUsecase(inquiryRepo, businessRepo, userRepo, analyticsUC, dispatcher, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Isoko Directory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BusinessUC:  businessUC,
		ReviewUC:    reviewUC,
		ServiceUC:   serviceUC,
		ImageUC:     imageUC,
		HoursUC:     hoursUC,
		InquiryUC:   inquiryUC,
		AnalyticsUC: analyticsUC,
		JWTSecret:   cfg.JWT.Secret,
		DevMode:     cfg.App.IsDevelopment(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
