package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// ExecuteRuleInput represents the input for firing one recurring rule.
type ExecuteRuleInput struct {
	UserID uuid.UUID
	RuleID uuid.UUID
}

// ExecuteRuleOutput holds the produced transaction and the advanced rule.
type ExecuteRuleOutput struct {
	Transaction *entity.Transaction
	Rule        *entity.RecurringRule
	Exhausted   bool
}

// ExecuteRuleUseCase fires a due rule: it records one transaction dated on the
// rule's next run date and advances the rule, both in one unit of work.
type ExecuteRuleUseCase struct {
	ruleRepo        adapter.RecurringRuleRepository
	transactionRepo adapter.TransactionRepository
	unitOfWork      adapter.UnitOfWork
	clock           adapter.Clock
}

// NewExecuteRuleUseCase creates a new ExecuteRuleUseCase instance.
func NewExecuteRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	transactionRepo adapter.TransactionRepository,
	unitOfWork adapter.UnitOfWork,
	clock adapter.Clock,
) *ExecuteRuleUseCase {
	return &ExecuteRuleUseCase{
		ruleRepo:        ruleRepo,
		transactionRepo: transactionRepo,
		unitOfWork:      unitOfWork,
		clock:           clock,
	}
}

// Execute fires one of the user's rules. A rule that is not due is refused.
func (uc *ExecuteRuleUseCase) Execute(ctx context.Context, input ExecuteRuleInput) (*ExecuteRuleOutput, error) {
	if _, err := owned.RecurringRule(ctx, uc.ruleRepo, input.UserID, input.RuleID); err != nil {
		return nil, err
	}
	return uc.fire(ctx, input.RuleID, uc.clock.Now())
}

// fire reloads the rule inside the unit so that a concurrent run that already
// advanced it is seen as not due.
func (uc *ExecuteRuleUseCase) fire(ctx context.Context, ruleID uuid.UUID, now time.Time) (*ExecuteRuleOutput, error) {
	var output *ExecuteRuleOutput

	err := uc.unitOfWork.Do(ctx, func(ctx context.Context) error {
		rule, err := uc.ruleRepo.FindByID(ctx, ruleID)
		if err != nil {
			if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
				return domainerror.RecurringRuleNotFound()
			}
			return fmt.Errorf("failed to find recurring rule: %w", err)
		}

		if !IsDue(rule, now) {
			return domainerror.NewRecurringRuleError(
				domainerror.ErrCodeRuleNotDue,
				"next_run_date",
				"recurring rule is not due",
				domainerror.ErrRuleNotDue,
			)
		}

		note := noteFor(rule)
		transaction := entity.NewTransaction(
			rule.UserID,
			rule.AccountID,
			rule.CategoryID,
			rule.Type,
			rule.NextRunDate,
			rule.Amount,
			&note,
			nil,
			now,
		)
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create recurring transaction: %w", err)
		}

		exhausted, err := Advance(rule)
		if err != nil {
			return fmt.Errorf("failed to advance recurring rule: %w", err)
		}
		rule.UpdatedAt = now.UTC()
		if err := uc.ruleRepo.Update(ctx, rule); err != nil {
			return fmt.Errorf("failed to update recurring rule: %w", err)
		}

		output = &ExecuteRuleOutput{
			Transaction: transaction,
			Rule:        rule,
			Exhausted:   exhausted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
