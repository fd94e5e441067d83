package attachment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// DeleteAttachmentInput represents the input for attachment deletion.
type DeleteAttachmentInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	AttachmentID  uuid.UUID
}

// DeleteAttachmentUseCase removes the stored file and then its record.
type DeleteAttachmentUseCase struct {
	transactionRepo adapter.TransactionRepository
	attachmentRepo  adapter.AttachmentRepository
	storage         adapter.FileStorage
}

// NewDeleteAttachmentUseCase creates a new DeleteAttachmentUseCase instance.
func NewDeleteAttachmentUseCase(
	transactionRepo adapter.TransactionRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
		storage:         storage,
	}
}

// Execute performs the deletion.
func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, input DeleteAttachmentInput) error {
	transaction, err := owned.Transaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return err
	}

	attachment, err := uc.attachmentRepo.FindByID(ctx, input.AttachmentID)
	if err != nil && !errors.Is(err, domainerror.ErrAttachmentNotFound) {
		return fmt.Errorf("failed to find attachment: %w", err)
	}
	if attachment == nil || attachment.TransactionID != transaction.ID {
		return domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentNotFound,
			"attachment_id",
			"attachment not found",
			domainerror.ErrAttachmentNotFound,
		)
	}

	if err := uc.storage.Delete(ctx, attachment.Path); err != nil {
		return fmt.Errorf("failed to delete attachment file: %w", err)
	}
	if err := uc.attachmentRepo.Delete(ctx, attachment.ID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
