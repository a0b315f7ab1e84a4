package feedbackrepo

import (
	"context"
	"sync"
	"time"

	"therapist-server/services/therapy-api/internal/domain/feedback"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  uint
	entries []*feedback.Feedback
}

var _ feedback.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository returns an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Create implements feedback.Repository.
func (r *InMemoryRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.ID = r.nextID
	r.nextID++
	f.CreatedAt = time.Now()

	copied := *f
	r.entries = append(r.entries, &copied)
	return nil
}

// All returns every stored feedback row (test helper).
func (r *InMemoryRepository) All() []*feedback.Feedback {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*feedback.Feedback, 0, len(r.entries))
	for _, f := range r.entries {
		copied := *f
		result = append(result, &copied)
	}
	return result
}
