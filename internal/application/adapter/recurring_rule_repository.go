package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// RecurringRuleRepository defines the interface for recurring rule persistence operations.
type RecurringRuleRepository interface {
	// Create creates a new recurring rule in the database.
	Create(ctx context.Context, rule *entity.RecurringRule) error

	// FindByID retrieves a recurring rule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringRule, error)

	// FindByUser retrieves a user's rules, optionally filtered by active flag.
	FindByUser(ctx context.Context, userID uuid.UUID, isActive *bool) ([]*entity.RecurringRule, error)

	// FindDue retrieves active rules of every user whose next run date is on or before asOf.
	FindDue(ctx context.Context, asOf time.Time) ([]*entity.RecurringRule, error)

	// CountByAccount counts the rules that post to an account.
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)

	// CountByCategory counts the rules that file under a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing recurring rule in the database.
	Update(ctx context.Context, rule *entity.RecurringRule) error

	// Delete removes a recurring rule from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
