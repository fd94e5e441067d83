package recurring

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidRuleAmount,
			"amount",
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.HasMoneyScale(amount) {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidRuleAmount,
			"amount",
			fmt.Sprintf("amount must have at most %d decimal places", entity.MoneyScale),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

func validateType(ruleType entity.EntryType) error {
	if !ruleType.IsValid() {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidRuleType,
			"type",
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}

func validateFrequency(frequency entity.Frequency) error {
	if !frequency.IsValid() {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency",
			"frequency must be 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidFrequency,
		)
	}
	return nil
}

func checkCategoryType(category *entity.Category, ruleType entity.EntryType) error {
	if category.Type != ruleType {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeRuleCategoryMismatch,
			"category_id",
			fmt.Sprintf("category must be of type '%s'", ruleType),
			domainerror.ErrCategoryTypeDiffers,
		)
	}
	return nil
}

func validateDates(start time.Time, end *time.Time) error {
	if end != nil && entity.DateOf(*end).Before(entity.DateOf(start)) {
		return domainerror.NewRecurringRuleError(
			domainerror.ErrCodeInvalidRuleDates,
			"end_date",
			"end date must not be before start date",
			domainerror.ErrInvalidRuleDates,
		)
	}
	return nil
}

func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > entity.MaxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			"note",
			fmt.Sprintf("note must not exceed %d characters", entity.MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}
	return &trimmed, nil
}
