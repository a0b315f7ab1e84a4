package dialoguerepo

import (
	"context"
	"sync"
	"time"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  uint
	entries []*dialogue.Dialogue
}

var _ dialogue.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository returns an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Create implements dialogue.Repository.
func (r *InMemoryRepository) Create(ctx context.Context, d *dialogue.Dialogue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	copied := *d
	r.entries = append(r.entries, &copied)
	return nil
}

// FindLatest implements dialogue.Repository.
func (r *InMemoryRepository) FindLatest(ctx context.Context) (*dialogue.Dialogue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "no dialogue exists", nil, "")
	}
	latest := *r.entries[len(r.entries)-1]
	return &latest, nil
}

// FindByPublicID implements dialogue.Repository.
func (r *InMemoryRepository) FindByPublicID(ctx context.Context, publicID string) (*dialogue.Dialogue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.entries {
		if d.PublicID == publicID {
			found := *d
			return &found, nil
		}
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "dialogue not found", nil, "")
}

// Count returns the number of stored dialogues (test helper).
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
