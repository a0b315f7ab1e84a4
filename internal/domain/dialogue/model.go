package dialogue

import "time"

// Role tags a message with its author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Dialogue represents one conversation session. It is created once per
// session start and never mutated or deleted afterwards.
type Dialogue struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Message belongs to exactly one dialogue. Messages of a dialogue are totally
// ordered by creation time; replaying them in that order reconstructs the
// conversation context. System messages are never persisted.
type Message struct {
	ID         uint      `json:"-"`
	DialogueID uint      `json:"-"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
