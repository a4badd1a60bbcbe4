package order

import "context"

// Repository stores successful generations.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
