package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/teamsync/pkg/validator"

	"github.com/johnquangdev/teamsync/internal/adapter/handler"
	"github.com/johnquangdev/teamsync/internal/adapter/repository"
	"github.com/johnquangdev/teamsync/internal/infrastructure/cache"
	"github.com/johnquangdev/teamsync/internal/infrastructure/eventbus"
	"github.com/johnquangdev/teamsync/internal/infrastructure/schedule"
	actionUsecase "github.com/johnquangdev/teamsync/internal/usecase/action"
	"github.com/johnquangdev/teamsync/internal/usecase/extraction"
	"github.com/johnquangdev/teamsync/internal/usecase/pipeline"
	"github.com/johnquangdev/teamsync/internal/usecase/query"
	"github.com/johnquangdev/teamsync/internal/usecase/reminder"
	pkgai "github.com/johnquangdev/teamsync/pkg/ai"
	"github.com/johnquangdev/teamsync/pkg/config"
	"github.com/johnquangdev/teamsync/pkg/id"
	"github.com/johnquangdev/teamsync/pkg/mailer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	store := cache.NewRedisStore(redisClient)

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(store)
	actionRepo := repository.NewActionRepository(store)
	reminderRepo := repository.NewReminderRepository(store)

	// Initialize AI extraction
	log.Println("🤖 Initializing AI extraction...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	extractionService := extraction.NewService(geminiClient, cfg, logger)

	// Initialize email delivery
	log.Println("📧 Initializing email delivery...")
	resendClient := mailer.NewResendClient(&cfg.Resend)

	// Initialize event bus and services
	log.Println("🚌 Initializing event bus...")
	bus := eventbus.New(logger)
	ids := id.NewGenerator()

	pipelineService := pipeline.NewService(
		meetingRepo,
		actionRepo,
		extractionService,
		bus,
		resendClient,
		ids,
		logger,
	)
	pipelineService.Register(bus)

	reminderService := reminder.NewService(
		actionRepo,
		reminderRepo,
		bus,
		resendClient,
		ids,
		cfg.Reminder.FallbackRecipient,
		cfg.Reminder.SendInterval,
		logger,
	)
	reminderService.Register(bus)

	actionService := actionUsecase.NewService(actionRepo, logger)
	queryService := query.NewService(meetingRepo, actionRepo, logger)

	// Initialize reminder schedule
	log.Printf("⏰ Scheduling reminder sweep: %s", cfg.Reminder.CronSpec)
	trigger, err := schedule.NewTrigger(cfg.Reminder.CronSpec, func(ctx context.Context) error {
		_, err := reminderService.Sweep(ctx)
		return err
	}, logger)
	if err != nil {
		log.Fatalf("Failed to schedule reminder sweep: %v", err)
	}
	trigger.Start()
	defer trigger.Stop()

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(pipelineService, logger)
	actionHandler := handler.NewActionHandler(actionService, queryService, logger)
	dashboardHandler := handler.NewDashboardHandler(queryService, logger)
	reminderHandler := handler.NewReminderHandler(reminderService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, actionHandler, dashboardHandler, reminderHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// Let in-flight event reactions finish
	bus.Wait()

	log.Println("✅ Server stopped gracefully")
}
