// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	scheduleRepo "medibook/database/repository/schedule"
	specialtyRepo "medibook/database/repository/specialty"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	ai "medibook/services/intelligence"
	"medibook/services/schedule"
	"medibook/services/tasks"
	"medibook/services/wizard"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitWizardCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	specialties := specialtyRepo.NewMongoSpecialtyRepo()
	doctors := doctorRepo.NewMongoDoctorRepo()
	schedules := scheduleRepo.NewMongoDoctorScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	users := userRepoPkg.NewMongoUserRepo()

	// services.
	aggregator := &schedule.DefaultAggregator{Repo: schedules}

	wizardStore := wizard.NewStore(utils.GetWizardCacheClient(), 30*time.Minute)
	wizardService := &wizard.DefaultWizardService{
		Store:      wizardStore,
		DoctorRepo: doctors,
		Aggregator: aggregator,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	submissionService := &booking.DefaultSubmissionService{
		ScheduleRepo:    schedules,
		AppointmentRepo: appointments,
		Payments: &booking.StripePaymentProvider{
			SuccessURL: config.AppConfig.PaymentSuccessURL,
			CancelURL:  config.AppConfig.PaymentCancelURL,
		},
		Reminders: &tasks.AsynqReminderScheduler{Client: asynqClient},
		Logger:    logger,
	}

	suggestionService := &ai.DefaultSuggestionService{
		Generator: ai.NewGeminiClient(config.AppConfig.GeminiAPIKey),
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:         handlers.NewAuthHandler(users, logger),
		Catalog:      handlers.NewCatalogHandler(specialties, doctors, aggregator, logger),
		Wizard:       handlers.NewWizardHandler(wizardService, logger),
		Booking:      handlers.NewBookingHandler(wizardService, submissionService, logger),
		AI:           handlers.NewAIHandler(suggestionService, logger),
		Appointments: handlers.NewAppointmentHandler(appointments, logger),

		RequiredAuth: middleware.JWTAuthMiddleware(users, false),
		OptionalAuth: middleware.JWTAuthMiddleware(users, true),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the async reminder worker.
	cron.InitReminderWorker()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
