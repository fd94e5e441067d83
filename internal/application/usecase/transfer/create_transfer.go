// Package transfer contains the use cases that move money between two accounts.
package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// CreateTransferInput represents the input for a transfer between two accounts.
type CreateTransferInput struct {
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Note          *string
	Date          *time.Time // Defaults to today
}

// CreateTransferOutput holds both legs of the recorded transfer.
type CreateTransferOutput struct {
	Outgoing *entity.Transaction
	Incoming *entity.Transaction
}

// CreateTransferUseCase records a transfer as an expense leg on the source
// account and an income leg on the destination account sharing one group id.
type CreateTransferUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	unitOfWork      adapter.UnitOfWork
	clock           adapter.Clock
}

// NewCreateTransferUseCase creates a new CreateTransferUseCase instance.
func NewCreateTransferUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	unitOfWork adapter.UnitOfWork,
	clock adapter.Clock,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		unitOfWork:      unitOfWork,
		clock:           clock,
	}
}

// Execute records both legs or neither.
func (uc *CreateTransferUseCase) Execute(ctx context.Context, input CreateTransferInput) (*CreateTransferOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount",
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.HasMoneyScale(input.Amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount",
			fmt.Sprintf("amount must have at most %d decimal places", entity.MoneyScale),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSameTransferAccount,
			"to_account_id",
			"cannot transfer to the same account",
			domainerror.ErrSameTransferAccount,
		)
	}

	var note string
	if input.Note != nil {
		note = strings.TrimSpace(*input.Note)
		if utf8.RuneCountInString(note) > entity.MaxNoteLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNoteTooLong,
				"note",
				fmt.Sprintf("note must not exceed %d characters", entity.MaxNoteLength),
				domainerror.ErrNoteTooLong,
			)
		}
	}

	from, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.FromAccountID, "from_account_id")
	if err != nil {
		return nil, err
	}
	to, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.ToAccountID, "to_account_id")
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}
	groupID := uuid.New()

	outgoingNote := "Transfer to " + to.Name
	incomingNote := "Transfer from " + from.Name
	if note != "" {
		outgoingNote, incomingNote = note, note
	}

	outgoing := entity.NewTransaction(input.UserID, from.ID, uuid.Nil, entity.EntryTypeExpense, date, input.Amount, &outgoingNote, &to.Name, now)
	outgoing.TransferGroupID = &groupID
	incoming := entity.NewTransaction(input.UserID, to.ID, uuid.Nil, entity.EntryTypeIncome, date, input.Amount, &incomingNote, &from.Name, now)
	incoming.TransferGroupID = &groupID

	err = uc.unitOfWork.Do(ctx, func(ctx context.Context) error {
		expenseCategory, err := uc.categoryRepo.FirstOrCreate(ctx, input.UserID, entity.TransferCategoryName, entity.EntryTypeExpense, now)
		if err != nil {
			return fmt.Errorf("failed to resolve transfer expense category: %w", err)
		}
		incomeCategory, err := uc.categoryRepo.FirstOrCreate(ctx, input.UserID, entity.TransferCategoryName, entity.EntryTypeIncome, now)
		if err != nil {
			return fmt.Errorf("failed to resolve transfer income category: %w", err)
		}
		outgoing.CategoryID = expenseCategory.ID
		incoming.CategoryID = incomeCategory.ID

		if err := uc.transactionRepo.Create(ctx, outgoing); err != nil {
			return fmt.Errorf("failed to create outgoing leg: %w", err)
		}
		if err := uc.transactionRepo.Create(ctx, incoming); err != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransferIncomplete,
				"",
				"transfer could not be recorded",
				fmt.Errorf("%w: %w", domainerror.ErrTransferIncomplete, err),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransferOutput{
		Outgoing: outgoing,
		Incoming: incoming,
	}, nil
}
