package attachment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// ListAttachmentsInput represents the input for listing a transaction's attachments.
type ListAttachmentsInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// ListAttachmentsUseCase lists the attachments of one transaction.
type ListAttachmentsUseCase struct {
	transactionRepo adapter.TransactionRepository
	attachmentRepo  adapter.AttachmentRepository
}

// NewListAttachmentsUseCase creates a new ListAttachmentsUseCase instance.
func NewListAttachmentsUseCase(
	transactionRepo adapter.TransactionRepository,
	attachmentRepo adapter.AttachmentRepository,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
	}
}

// Execute performs the listing.
func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, input ListAttachmentsInput) ([]*entity.Attachment, error) {
	transaction, err := owned.Transaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.FindByTransactions(ctx, transaction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}
