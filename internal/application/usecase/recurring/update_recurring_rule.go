package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/owned"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// UpdateRecurringRuleInput represents the input for a recurring rule update.
// Nil fields are left unchanged; ClearEndDate removes the end date.
type UpdateRecurringRuleInput struct {
	UserID       uuid.UUID
	RuleID       uuid.UUID
	Type         *entity.EntryType
	AccountID    *uuid.UUID
	CategoryID   *uuid.UUID
	Amount       *decimal.Decimal
	Frequency    *entity.Frequency
	StartDate    *time.Time
	NextRunDate  *time.Time
	Note         *string
	EndDate      *time.Time
	ClearEndDate bool
	IsActive     *bool
}

// UpdateRecurringRuleOutput represents the output of a recurring rule update.
type UpdateRecurringRuleOutput struct {
	Rule *entity.RecurringRule
}

// UpdateRecurringRuleUseCase handles recurring rule update logic.
type UpdateRecurringRuleUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpdateRecurringRuleUseCase creates a new UpdateRecurringRuleUseCase instance.
func NewUpdateRecurringRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *UpdateRecurringRuleUseCase {
	return &UpdateRecurringRuleUseCase{
		ruleRepo:     ruleRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the recurring rule update. Dates are checked against each
// other after all changes are applied.
func (uc *UpdateRecurringRuleUseCase) Execute(ctx context.Context, input UpdateRecurringRuleInput) (*UpdateRecurringRuleOutput, error) {
	rule, err := owned.RecurringRule(ctx, uc.ruleRepo, input.UserID, input.RuleID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		rule.Type = *input.Type
	}

	if input.Frequency != nil {
		if err := validateFrequency(*input.Frequency); err != nil {
			return nil, err
		}
		rule.Frequency = *input.Frequency
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		rule.Amount = *input.Amount
	}

	if input.Note != nil {
		if rule.Note, err = normalizeNote(input.Note); err != nil {
			return nil, err
		}
	}

	if input.AccountID != nil {
		if _, err := owned.Account(ctx, uc.accountRepo, input.UserID, *input.AccountID, "account_id"); err != nil {
			return nil, err
		}
		rule.AccountID = *input.AccountID
	}

	if input.CategoryID != nil || input.Type != nil {
		categoryID := rule.CategoryID
		if input.CategoryID != nil {
			categoryID = *input.CategoryID
		}
		category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, categoryID, "category_id")
		if err != nil {
			return nil, err
		}
		if err := checkCategoryType(category, rule.Type); err != nil {
			return nil, err
		}
		rule.CategoryID = category.ID
	}

	if input.StartDate != nil {
		start := entity.DateOf(*input.StartDate)
		// A rule that never fired follows its start date.
		if input.NextRunDate == nil && rule.NextRunDate.Equal(rule.StartDate) {
			rule.NextRunDate = start
		}
		rule.StartDate = start
	}

	if input.NextRunDate != nil {
		rule.NextRunDate = entity.DateOf(*input.NextRunDate)
	}

	if input.ClearEndDate {
		rule.EndDate = nil
	} else if input.EndDate != nil {
		end := entity.DateOf(*input.EndDate)
		rule.EndDate = &end
	}

	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	if err := validateSchedule(rule); err != nil {
		return nil, err
	}

	rule.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update recurring rule: %w", err)
	}

	return &UpdateRecurringRuleOutput{
		Rule: rule,
	}, nil
}

// validateSchedule checks the dates of an edited rule against each other.
func validateSchedule(rule *entity.RecurringRule) error {
	if err := validateDates(rule.StartDate, rule.EndDate); err != nil {
		return err
	}
	if !rule.IsActive {
		return nil
	}
	if rule.NextRunDate.Before(rule.StartDate) {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidRuleDates,
			"next_run_date",
			"next run date must not be before the start date of an active rule",
			domainerror.ErrInvalidRuleDates,
		)
	}
	// An active rule must still have a run left before its end date
	if rule.EndDate != nil && rule.NextRunDate.After(*rule.EndDate) {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidRuleDates,
			"end_date",
			"end date must not be before the next run date of an active rule",
			domainerror.ErrInvalidRuleDates,
		)
	}
	return nil
}
