package adapter

import "context"

// UnitOfWork runs a group of repository calls atomically.
// Repositories called with the context passed to fn take part in the same
// database transaction; if fn returns an error nothing it wrote is kept.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
