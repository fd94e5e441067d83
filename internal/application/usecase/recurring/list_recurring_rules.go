package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// ListRecurringRulesInput represents the input for listing recurring rules.
type ListRecurringRulesInput struct {
	UserID   uuid.UUID
	IsActive *bool
}

// ListRecurringRulesOutput represents the output of listing recurring rules.
type ListRecurringRulesOutput struct {
	Rules []*entity.RecurringRule
}

// ListRecurringRulesUseCase lists a user's recurring rules.
type ListRecurringRulesUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewListRecurringRulesUseCase creates a new ListRecurringRulesUseCase instance.
func NewListRecurringRulesUseCase(ruleRepo adapter.RecurringRuleRepository) *ListRecurringRulesUseCase {
	return &ListRecurringRulesUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the listing.
func (uc *ListRecurringRulesUseCase) Execute(ctx context.Context, input ListRecurringRulesInput) (*ListRecurringRulesOutput, error) {
	rules, err := uc.ruleRepo.FindByUser(ctx, input.UserID, input.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}
	return &ListRecurringRulesOutput{
		Rules: rules,
	}, nil
}

// GetRecurringRuleInput represents the input for a single rule lookup.
type GetRecurringRuleInput struct {
	UserID uuid.UUID
	RuleID uuid.UUID
}

// GetRecurringRuleUseCase returns one of the user's recurring rules.
type GetRecurringRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewGetRecurringRuleUseCase creates a new GetRecurringRuleUseCase instance.
func NewGetRecurringRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *GetRecurringRuleUseCase {
	return &GetRecurringRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the lookup.
func (uc *GetRecurringRuleUseCase) Execute(ctx context.Context, input GetRecurringRuleInput) (*entity.RecurringRule, error) {
	return owned.RecurringRule(ctx, uc.ruleRepo, input.UserID, input.RuleID)
}
