package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories of a user, optionally filtered by type.
	FindByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.EntryType) ([]*entity.Category, error)

	// FindByNameAndType retrieves a user's category by its unique (name, type) pair.
	// It returns nil without error when no such category exists.
	FindByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.EntryType) (*entity.Category, error)

	// FindChildren retrieves the direct children of a category.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)

	// FirstOrCreate returns the user's category with the given name and type, creating a root
	// category when none exists. Repeated calls return the same category.
	FirstOrCreate(ctx context.Context, userID uuid.UUID, name string, categoryType entity.EntryType, now time.Time) (*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
