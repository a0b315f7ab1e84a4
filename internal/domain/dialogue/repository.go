package dialogue

import "context"

// Repository exposes data access for Dialogue entities.
type Repository interface {
	Create(ctx context.Context, d *Dialogue) error
	// FindLatest returns the most recently created dialogue, or a NOT_FOUND
	// error when the store holds none.
	FindLatest(ctx context.Context) (*Dialogue, error)
	FindByPublicID(ctx context.Context, publicID string) (*Dialogue, error)
}

// MessageRepository exposes data access for Message entities.
type MessageRepository interface {
	// ListByDialogueID returns all messages of a dialogue ordered by
	// creation time ascending.
	ListByDialogueID(ctx context.Context, dialogueID uint) ([]*Message, error)
	// AppendTurn persists the user message and the assistant message in one
	// transaction, in that order. A failure leaves the store untouched.
	AppendTurn(ctx context.Context, userMsg, assistantMsg *Message) error
}
