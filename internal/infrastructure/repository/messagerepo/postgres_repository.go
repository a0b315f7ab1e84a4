package messagerepo

import (
	"context"

	"gorm.io/gorm"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/infrastructure/database/entities"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// PostgresRepository persists messages via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

var _ dialogue.MessageRepository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByDialogueID implements dialogue.MessageRepository.
func (r *PostgresRepository) ListByDialogueID(ctx context.Context, dialogueID uint) ([]*dialogue.Message, error) {
	var records []entities.Message
	err := r.db.WithContext(ctx).
		Where("dialogue_id = ?", dialogueID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, platformerrors.AsTypedError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, err, "failed to list messages")
	}

	result := make([]*dialogue.Message, 0, len(records))
	for i := range records {
		result = append(result, records[i].EtoD())
	}
	return result, nil
}

// AppendTurn implements dialogue.MessageRepository. Both rows commit in one
// transaction so a mid-sequence failure cannot leave an orphaned user message.
func (r *PostgresRepository) AppendTurn(ctx context.Context, userMsg, assistantMsg *dialogue.Message) error {
	userModel := entities.NewSchemaMessage(userMsg)
	assistantModel := entities.NewSchemaMessage(assistantMsg)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		return tx.Create(assistantModel).Error
	})
	if err != nil {
		return platformerrors.AsTypedError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, err, "failed to append turn")
	}

	userMsg.ID = userModel.ID
	userMsg.CreatedAt = userModel.CreatedAt
	assistantMsg.ID = assistantModel.ID
	assistantMsg.CreatedAt = assistantModel.CreatedAt
	return nil
}
