package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// AttachmentRepository defines the interface for attachment persistence operations.
type AttachmentRepository interface {
	// Create creates a new attachment record in the database.
	Create(ctx context.Context, attachment *entity.Attachment) error

	// FindByID retrieves an attachment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Attachment, error)

	// FindByTransactions retrieves the attachments of the given transactions.
	FindByTransactions(ctx context.Context, transactionIDs ...uuid.UUID) ([]*entity.Attachment, error)

	// Delete removes attachment records from the database.
	Delete(ctx context.Context, ids ...uuid.UUID) error
}
