package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// GetAccountBalanceInput represents the input for a balance lookup.
type GetAccountBalanceInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// GetAccountBalanceUseCase loads one account and derives its current balance.
type GetAccountBalanceUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetAccountBalanceUseCase creates a new GetAccountBalanceUseCase instance.
func NewGetAccountBalanceUseCase(accountRepo adapter.AccountRepository, transactionRepo adapter.TransactionRepository) *GetAccountBalanceUseCase {
	return &GetAccountBalanceUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute returns the account together with its current balance.
func (uc *GetAccountBalanceUseCase) Execute(ctx context.Context, input GetAccountBalanceInput) (*entity.AccountWithBalance, error) {
	account, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.AccountID, "id")
	if err != nil {
		return nil, err
	}
	return withBalance(ctx, uc.transactionRepo, account)
}

func withBalance(ctx context.Context, transactionRepo adapter.TransactionRepository, account *entity.Account) (*entity.AccountWithBalance, error) {
	transactions, err := transactionRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account transactions: %w", err)
	}
	return &entity.AccountWithBalance{
		Account:        account,
		CurrentBalance: CurrentBalance(account.StartingBalance, transactions),
	}, nil
}
