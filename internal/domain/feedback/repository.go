package feedback

import "context"

// Repository exposes data access for Feedback entities.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
}
