package account

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

// UpdateAccountInput represents the input for an account update.
// Nil fields are left unchanged. The current balance is derived and cannot be set.
type UpdateAccountInput struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	Name            *string
	Type            *entity.AccountType
	StartingBalance *decimal.Decimal
	IsActive        *bool
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.AccountID, "id")
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		account.Name = name
	}
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		account.Type = *input.Type
	}
	if input.StartingBalance != nil {
		if err := validateStartingBalance(*input.StartingBalance); err != nil {
			return nil, err
		}
		account.StartingBalance = *input.StartingBalance
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
