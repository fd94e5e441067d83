package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID   uuid.UUID
	Query    string
	IsActive *bool
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.AccountWithBalance
}

// ListAccountsUseCase lists a user's accounts with their current balances.
type ListAccountsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository, transactionRepo adapter.TransactionRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the account listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByFilter(ctx, adapter.AccountFilter{
		UserID:   input.UserID,
		Query:    input.Query,
		IsActive: input.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	output := &ListAccountsOutput{
		Accounts: make([]*entity.AccountWithBalance, 0, len(accounts)),
	}
	for _, account := range accounts {
		balanced, err := withBalance(ctx, uc.transactionRepo, account)
		if err != nil {
			return nil, err
		}
		output.Accounts = append(output.Accounts, balanced)
	}
	return output, nil
}
