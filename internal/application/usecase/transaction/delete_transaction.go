package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput lists every transaction removed by the deletion.
type DeleteTransactionOutput struct {
	DeletedIDs []uuid.UUID
}

// DeleteTransactionUseCase deletes a transaction with its attachments.
// Deleting either leg of a transfer deletes the whole transfer.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	attachmentRepo  adapter.AttachmentRepository
	storage         adapter.FileStorage
	unitOfWork      adapter.UnitOfWork
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	attachmentRepo adapter.AttachmentRepository,
	storage adapter.FileStorage,
	unitOfWork adapter.UnitOfWork,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
		storage:         storage,
		unitOfWork:      unitOfWork,
	}
}

// Execute performs the deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	transaction, err := owned.Transaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	ids := []uuid.UUID{transaction.ID}
	var attachments []*entity.Attachment

	err = uc.unitOfWork.Do(ctx, func(ctx context.Context) error {
		if transaction.IsTransfer() {
			partner, err := uc.transactionRepo.FindTransferPartner(ctx, transaction)
			if err != nil {
				return fmt.Errorf("failed to find transfer partner: %w", err)
			}
			if partner != nil {
				ids = append(ids, partner.ID)
			}
		}

		found, err := uc.attachmentRepo.FindByTransactions(ctx, ids...)
		if err != nil {
			return fmt.Errorf("failed to find attachments: %w", err)
		}
		attachments = found

		if len(attachments) > 0 {
			attachmentIDs := make([]uuid.UUID, len(attachments))
			for i, a := range attachments {
				attachmentIDs[i] = a.ID
			}
			if err := uc.attachmentRepo.Delete(ctx, attachmentIDs...); err != nil {
				return fmt.Errorf("failed to delete attachments: %w", err)
			}
		}

		if err := uc.transactionRepo.Delete(ctx, ids...); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stored files are removed only once the records are gone for good.
	for _, a := range attachments {
		if err := uc.storage.Delete(ctx, a.Path); err != nil {
			slog.Warn("Failed to remove attachment file", "error", err, "attachmentID", a.ID, "path", a.Path)
		}
	}

	return &DeleteTransactionOutput{
		DeletedIDs: ids,
	}, nil
}
