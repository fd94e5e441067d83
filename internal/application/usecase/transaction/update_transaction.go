package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Date          *time.Time
	Note          *string
	Counterparty  *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
// Amount and date edits on a transfer leg are applied to both legs.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	unitOfWork      adapter.UnitOfWork
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	unitOfWork adapter.UnitOfWork,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		unitOfWork:      unitOfWork,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := owned.Transaction(ctx, uc.transactionRepo, input.UserID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
	}

	if input.CategoryID != nil {
		category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, *input.CategoryID, "category_id")
		if err != nil {
			return nil, err
		}
		if err := checkCategoryType(category, transaction.Type); err != nil {
			return nil, err
		}
		transaction.CategoryID = category.ID
	}

	if input.Note != nil {
		note, err := normalizeNote(input.Note)
		if err != nil {
			return nil, err
		}
		transaction.Note = note
	}

	if input.Counterparty != nil {
		transaction.Counterparty = input.Counterparty
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = entity.DateOf(*input.Date)
	}
	transaction.UpdatedAt = time.Now().UTC()

	mirror := transaction.IsTransfer() && (input.Amount != nil || input.Date != nil)

	err = uc.unitOfWork.Do(ctx, func(ctx context.Context) error {
		if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		if !mirror {
			return nil
		}

		partner, err := uc.transactionRepo.FindTransferPartner(ctx, transaction)
		if err != nil {
			return fmt.Errorf("failed to find transfer partner: %w", err)
		}
		if partner == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransferIncomplete,
				"transfer_group_id",
				"transfer partner is missing",
				domainerror.ErrTransferIncomplete,
			)
		}

		partner.Amount = transaction.Amount
		partner.Date = transaction.Date
		partner.UpdatedAt = transaction.UpdatedAt
		if err := uc.transactionRepo.Update(ctx, partner); err != nil {
			return fmt.Errorf("failed to update transfer partner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
