package messagerepo

import (
	"context"
	"sync"
	"time"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  uint
	entries []*dialogue.Message

	// FailAppend makes the next AppendTurn fail (test hook for the
	// atomic-commit contract).
	FailAppend error
}

var _ dialogue.MessageRepository = (*InMemoryRepository)(nil)

// NewInMemoryRepository returns an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// ListByDialogueID implements dialogue.MessageRepository.
func (r *InMemoryRepository) ListByDialogueID(ctx context.Context, dialogueID uint) ([]*dialogue.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*dialogue.Message
	for _, m := range r.entries {
		if m.DialogueID == dialogueID {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}

// AppendTurn implements dialogue.MessageRepository. Either both messages are
// stored or neither is.
func (r *InMemoryRepository) AppendTurn(ctx context.Context, userMsg, assistantMsg *dialogue.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailAppend != nil {
		return r.FailAppend
	}

	for _, m := range []*dialogue.Message{userMsg, assistantMsg} {
		m.ID = r.nextID
		r.nextID++
		m.CreatedAt = time.Now()
		copied := *m
		r.entries = append(r.entries, &copied)
	}
	return nil
}

// All returns every stored message in insertion order (test helper).
func (r *InMemoryRepository) All() []*dialogue.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*dialogue.Message, 0, len(r.entries))
	for _, m := range r.entries {
		copied := *m
		result = append(result, &copied)
	}
	return result
}
