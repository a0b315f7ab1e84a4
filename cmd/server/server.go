package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"therapist-server/services/therapy-api/internal/config"
	"therapist-server/services/therapy-api/internal/domain/chat"
	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/domain/feedback"
	"therapist-server/services/therapy-api/internal/domain/transcription"
	"therapist-server/services/therapy-api/internal/infrastructure/auth"
	"therapist-server/services/therapy-api/internal/infrastructure/database"
	"therapist-server/services/therapy-api/internal/infrastructure/inference"
	"therapist-server/services/therapy-api/internal/infrastructure/logger"
	"therapist-server/services/therapy-api/internal/infrastructure/observability"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/dialoguerepo"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/feedbackrepo"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/messagerepo"
	"therapist-server/services/therapy-api/internal/interfaces/httpserver"
	"therapist-server/services/therapy-api/internal/interfaces/httpserver/handlers"
)

// @title Therapy API
// @version 1.0
// @description AI therapist conversation service
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	dialogueRepository := dialoguerepo.NewPostgresRepository(db)
	messageRepository := messagerepo.NewPostgresRepository(db)
	feedbackRepository := feedbackrepo.NewPostgresRepository(db)

	completionClient := inference.NewCompletionClient(cfg, log)
	transcriptionClient := inference.NewTranscriptionClient(cfg, log)

	dialogueService := dialogue.NewService(dialogueRepository, messageRepository, log)
	chatService := chat.NewService(dialogueRepository, messageRepository, completionClient, log)
	transcriptionService := transcription.NewService(transcriptionClient, log)
	feedbackService := feedback.NewService(dialogueRepository, feedbackRepository, log)

	handlerProvider := handlers.NewProvider(dialogueService, chatService, transcriptionService, feedbackService, log)

	httpServer := httpserver.New(cfg, log, handlerProvider, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
