// Package owned loads ledger records on behalf of a user. A record that
// belongs to someone else is reported exactly like a missing one.
package owned

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// Account loads an account owned by userID. field names the input that referenced it.
func Account(ctx context.Context, repo adapter.AccountRepository, userID, accountID uuid.UUID, field string) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.AccountNotFound(field)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.UserID != userID {
		return nil, domainerror.AccountNotFound(field)
	}
	return account, nil
}

// Category loads a category owned by userID. field names the input that referenced it.
func Category(ctx context.Context, repo adapter.CategoryRepository, userID, categoryID uuid.UUID, field string) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.CategoryNotFound(field)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, domainerror.CategoryNotFound(field)
	}
	return category, nil
}

// Transaction loads a transaction owned by userID.
func Transaction(ctx context.Context, repo adapter.TransactionRepository, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.TransactionNotFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if transaction.UserID != userID {
		return nil, domainerror.TransactionNotFound()
	}
	return transaction, nil
}

// RecurringRule loads a recurring rule owned by userID.
func RecurringRule(ctx context.Context, repo adapter.RecurringRuleRepository, userID, ruleID uuid.UUID) (*entity.RecurringRule, error) {
	rule, err := repo.FindByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return nil, domainerror.RecurringRuleNotFound()
		}
		return nil, fmt.Errorf("failed to find recurring rule: %w", err)
	}
	if rule.UserID != userID {
		return nil, domainerror.RecurringRuleNotFound()
	}
	return rule, nil
}
