package entities

import (
	"time"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
)

// Message models one persisted conversation turn half. Only user and
// assistant roles are ever stored; the system prompt stays in memory.
type Message struct {
	ID         uint      `gorm:"primaryKey"`
	DialogueID uint      `gorm:"index:idx_messages_dialogue_created,priority:1;not null"`
	Role       string    `gorm:"type:varchar(20);not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_messages_dialogue_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}

// EtoD converts the entity to its domain representation.
func (e *Message) EtoD() *dialogue.Message {
	return &dialogue.Message{
		ID:         e.ID,
		DialogueID: e.DialogueID,
		Role:       dialogue.Role(e.Role),
		Content:    e.Content,
		CreatedAt:  e.CreatedAt,
	}
}

// NewSchemaMessage creates a database entity from a domain message.
func NewSchemaMessage(m *dialogue.Message) *Message {
	return &Message{
		ID:         m.ID,
		DialogueID: m.DialogueID,
		Role:       string(m.Role),
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}
