package entities

import (
	"time"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
)

// Dialogue models the persisted representation of a conversation session.
type Dialogue struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Messages []Message  `gorm:"foreignKey:DialogueID"`
	Feedback []Feedback `gorm:"foreignKey:DialogueID"`
}

func (Dialogue) TableName() string {
	return "dialogues"
}

// EtoD converts the entity to its domain representation.
func (e *Dialogue) EtoD() *dialogue.Dialogue {
	return &dialogue.Dialogue{
		ID:        e.ID,
		PublicID:  e.PublicID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// NewSchemaDialogue creates a database entity from a domain dialogue.
func NewSchemaDialogue(d *dialogue.Dialogue) *Dialogue {
	return &Dialogue{
		ID:        d.ID,
		PublicID:  d.PublicID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
