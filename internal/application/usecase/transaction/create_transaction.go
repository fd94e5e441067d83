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
)

// CreateTransactionInput represents the input for transaction creation.
// Transfer legs are never created here; see the transfer use cases.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	CategoryID   uuid.UUID
	Type         entity.EntryType
	Amount       decimal.Decimal
	Date         *time.Time // Defaults to today
	Note         *string
	Counterparty *string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		clock:           clock,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	note, err := normalizeNote(input.Note)
	if err != nil {
		return nil, err
	}

	account, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.AccountID, "account_id")
	if err != nil {
		return nil, err
	}

	category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, input.CategoryID, "category_id")
	if err != nil {
		return nil, err
	}
	if err := checkCategoryType(category, input.Type); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	transaction := entity.NewTransaction(
		input.UserID,
		account.ID,
		category.ID,
		input.Type,
		date,
		input.Amount,
		note,
		input.Counterparty,
		now,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
