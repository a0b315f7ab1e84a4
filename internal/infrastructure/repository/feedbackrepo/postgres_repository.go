package feedbackrepo

import (
	"context"

	"gorm.io/gorm"

	"therapist-server/services/therapy-api/internal/domain/feedback"
	"therapist-server/services/therapy-api/internal/infrastructure/database/entities"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// PostgresRepository persists feedback via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

var _ feedback.Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create implements feedback.Repository.
func (r *PostgresRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	model := entities.NewSchemaFeedback(f)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsTypedError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, err, "failed to record feedback")
	}
	f.ID = model.ID
	f.CreatedAt = model.CreatedAt
	return nil
}
