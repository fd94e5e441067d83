package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	ruleRepo        adapter.RecurringRuleRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	ruleRepo adapter.RecurringRuleRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
	}
}

// Execute deletes a category that has no transactions, subcategories or recurring rules.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, input.CategoryID, "id")
	if err != nil {
		return err
	}

	transactionCount, err := uc.transactionRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if transactionCount > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasTransactions,
			"transactions",
			"cannot delete category that has transactions",
			domainerror.ErrCategoryHasTransactions,
		)
	}

	children, err := uc.categoryRepo.FindChildren(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to load subcategories: %w", err)
	}
	if len(children) > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasChildren,
			"children",
			"cannot delete category that has subcategories",
			domainerror.ErrCategoryHasChildren,
		)
	}

	ruleCount, err := uc.ruleRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category recurring rules: %w", err)
	}
	if ruleCount > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasRecurringRules,
			"recurring_rules",
			"cannot delete category that has recurring rules",
			domainerror.ErrCategoryHasRecurringRules,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
