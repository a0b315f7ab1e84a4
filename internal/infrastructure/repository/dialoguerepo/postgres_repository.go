package dialoguerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/infrastructure/database/entities"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// PostgresRepository persists dialogues via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

var _ dialogue.Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create implements dialogue.Repository.
func (r *PostgresRepository) Create(ctx context.Context, d *dialogue.Dialogue) error {
	model := entities.NewSchemaDialogue(d)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsTypedError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, err, "failed to create dialogue")
	}
	d.ID = model.ID
	d.CreatedAt = model.CreatedAt
	d.UpdatedAt = model.UpdatedAt
	return nil
}

// FindLatest implements dialogue.Repository.
func (r *PostgresRepository) FindLatest(ctx context.Context) (*dialogue.Dialogue, error) {
	var record entities.Dialogue
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "no dialogue exists", err, "")
		}
		return nil, platformerrors.AsTypedError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, err, "failed to find latest dialogue")
	}
	return record.EtoD(), nil
}

// FindByPublicID implements dialogue.Repository.
func (r *PostgresRepository) FindByPublicID(ctx context.Context, publicID string) (*dialogue.Dialogue, error) {
	var record entities.Dialogue
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "dialogue not found", err, "")
		}
		return nil, platformerrors.AsTypedError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, err, "failed to find dialogue by public ID")
	}
	return record.EtoD(), nil
}
