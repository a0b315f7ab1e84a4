//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
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
	"therapist-server/services/therapy-api/internal/infrastructure/repository/dialoguerepo"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/feedbackrepo"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/messagerepo"
	"therapist-server/services/therapy-api/internal/interfaces/httpserver"
	"therapist-server/services/therapy-api/internal/interfaces/httpserver/handlers"
)

var repositorySet = wire.NewSet(
	dialoguerepo.NewPostgresRepository,
	wire.Bind(new(dialogue.Repository), new(*dialoguerepo.PostgresRepository)),
	messagerepo.NewPostgresRepository,
	wire.Bind(new(dialogue.MessageRepository), new(*messagerepo.PostgresRepository)),
	feedbackrepo.NewPostgresRepository,
	wire.Bind(new(feedback.Repository), new(*feedbackrepo.PostgresRepository)),
)

var inferenceSet = wire.NewSet(
	inference.NewCompletionClient,
	wire.Bind(new(chat.CompletionClient), new(*inference.CompletionClient)),
	inference.NewTranscriptionClient,
	wire.Bind(new(transcription.Transcriber), new(*inference.TranscriptionClient)),
)

var serviceSet = wire.NewSet(
	dialogue.NewService,
	chat.NewService,
	transcription.NewService,
	feedback.NewService,
)

// BuildApplication demonstrates how to assemble the therapy service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		repositorySet,
		inferenceSet,
		serviceSet,
		handlers.NewProvider,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
