package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	ruleRepo        adapter.RecurringRuleRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	ruleRepo adapter.RecurringRuleRepository,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
	}
}

// Execute deletes an account that no transaction or recurring rule refers to.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.AccountID, "id")
	if err != nil {
		return err
	}

	transactionCount, err := uc.transactionRepo.CountByAccount(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if transactionCount > 0 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasTransactions,
			"transactions",
			"cannot delete account that has transactions",
			domainerror.ErrAccountHasTransactions,
		)
	}

	ruleCount, err := uc.ruleRepo.CountByAccount(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to count account recurring rules: %w", err)
	}
	if ruleCount > 0 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasRecurringRules,
			"recurring_rules",
			"cannot delete account that has recurring rules",
			domainerror.ErrAccountHasRecurringRules,
		)
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
