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

// CreateRecurringRuleInput represents the input for recurring rule creation.
type CreateRecurringRuleInput struct {
	UserID     uuid.UUID
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Type       entity.EntryType
	Amount     decimal.Decimal
	Frequency  entity.Frequency
	StartDate  time.Time
	EndDate    *time.Time
	Note       *string
}

// CreateRecurringRuleOutput represents the output of recurring rule creation.
type CreateRecurringRuleOutput struct {
	Rule *entity.RecurringRule
}

// CreateRecurringRuleUseCase handles recurring rule creation logic.
type CreateRecurringRuleUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateRecurringRuleUseCase creates a new CreateRecurringRuleUseCase instance.
func NewCreateRecurringRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateRecurringRuleUseCase {
	return &CreateRecurringRuleUseCase{
		ruleRepo:     ruleRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the recurring rule creation. The first run is the start date.
func (uc *CreateRecurringRuleUseCase) Execute(ctx context.Context, input CreateRecurringRuleInput) (*CreateRecurringRuleOutput, error) {
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.StartDate.IsZero() {
		return nil, domainerror.NewRecurringRuleError(
			domainerror.ErrCodeMissingRuleFields,
			"start_date",
			"start date is required",
			domainerror.ErrInvalidRuleDates,
		)
	}
	if err := validateDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	note, err := normalizeNote(input.Note)
	if err != nil {
		return nil, err
	}

	if _, err := owned.Account(ctx, uc.accountRepo, input.UserID, input.AccountID, "account_id"); err != nil {
		return nil, err
	}
	category, err := owned.Category(ctx, uc.categoryRepo, input.UserID, input.CategoryID, "category_id")
	if err != nil {
		return nil, err
	}
	if err := checkCategoryType(category, input.Type); err != nil {
		return nil, err
	}

	rule := entity.NewRecurringRule(
		input.UserID,
		input.AccountID,
		category.ID,
		input.Type,
		input.Amount,
		input.Frequency,
		input.StartDate,
		input.EndDate,
		note,
	)

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create recurring rule: %w", err)
	}

	return &CreateRecurringRuleOutput{
		Rule: rule,
	}, nil
}
