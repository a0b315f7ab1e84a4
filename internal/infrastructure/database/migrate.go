package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"therapist-server/services/therapy-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for all persisted entities.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	models := []any{
		&entities.Dialogue{},
		&entities.Message{},
		&entities.Feedback{},
	}

	for _, model := range models {
		if err := db.WithContext(ctx).AutoMigrate(model); err != nil {
			log.Error().Err(err).Msgf("failed to auto migrate schema: %T", model)
			return err
		}
	}

	log.Debug().Int("models", len(models)).Msg("database schema migrated")
	return nil
}
