package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
)

// DeleteRecurringRuleInput represents the input for recurring rule deletion.
type DeleteRecurringRuleInput struct {
	UserID uuid.UUID
	RuleID uuid.UUID
}

// DeleteRecurringRuleUseCase deletes a rule. Transactions it already produced are kept.
type DeleteRecurringRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewDeleteRecurringRuleUseCase creates a new DeleteRecurringRuleUseCase instance.
func NewDeleteRecurringRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *DeleteRecurringRuleUseCase {
	return &DeleteRecurringRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteRecurringRuleUseCase) Execute(ctx context.Context, input DeleteRecurringRuleInput) error {
	rule, err := owned.RecurringRule(ctx, uc.ruleRepo, input.UserID, input.RuleID)
	if err != nil {
		return err
	}
	if err := uc.ruleRepo.Delete(ctx, rule.ID); err != nil {
		return fmt.Errorf("failed to delete recurring rule: %w", err)
	}
	return nil
}
