package entities

import (
	"time"

	"therapist-server/services/therapy-api/internal/domain/feedback"
)

// Feedback models one persisted post-conversation response. No uniqueness
// constraint per dialogue; rows accumulate.
type Feedback struct {
	ID         uint      `gorm:"primaryKey"`
	DialogueID uint      `gorm:"index;not null"`
	Helpful    string    `gorm:"type:varchar(10)"`
	Feeling    string    `gorm:"type:varchar(10)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// EtoD converts the entity to its domain representation.
func (e *Feedback) EtoD() *feedback.Feedback {
	return &feedback.Feedback{
		ID:         e.ID,
		DialogueID: e.DialogueID,
		Helpful:    feedback.Helpful(e.Helpful),
		Feeling:    feedback.Feeling(e.Feeling),
		CreatedAt:  e.CreatedAt,
	}
}

// NewSchemaFeedback creates a database entity from domain feedback.
func NewSchemaFeedback(f *feedback.Feedback) *Feedback {
	return &Feedback{
		ID:         f.ID,
		DialogueID: f.DialogueID,
		Helpful:    string(f.Helpful),
		Feeling:    string(f.Feeling),
		CreatedAt:  f.CreatedAt,
	}
}
