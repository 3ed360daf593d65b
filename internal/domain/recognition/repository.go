package recognition

import "context"

type Repository interface {
	// List returns all recognitions ordered by created_at descending.
	List(ctx context.Context) ([]Recognition, error)
	// Create persists the record and fills in CreatedAt.
	Create(ctx context.Context, rec *Recognition) error
	Count(ctx context.Context) (int64, error)
}
