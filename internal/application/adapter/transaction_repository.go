package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves the transactions matching the filter ordered by date descending.
	FindByFilter(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// FindByAccount retrieves all transactions recorded against an account.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)

	// FindByTransferGroup retrieves the legs sharing a transfer group token.
	FindByTransferGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Transaction, error)

	// FindTransferPartner retrieves the other leg of a transfer.
	// It returns nil without error for a transaction that is not part of a transfer.
	FindTransferPartner(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// CountByAccount counts the transactions recorded against an account.
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)

	// CountByCategory counts the transactions filed under a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes transactions from the database.
	Delete(ctx context.Context, ids ...uuid.UUID) error
}
