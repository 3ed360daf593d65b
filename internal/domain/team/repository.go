package team

import "context"

type Repository interface {
	// List returns all members in insertion order.
	List(ctx context.Context) ([]Member, error)
	Create(ctx context.Context, member *Member) error
	Count(ctx context.Context) (int64, error)
}
