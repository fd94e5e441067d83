// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

func validateType(transactionType entity.EntryType) error {
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type",
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount",
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.HasMoneyScale(amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount",
			fmt.Sprintf("amount must have at most %d decimal places", entity.MoneyScale),
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

// normalizeNote trims the note and returns nil for a blank one.
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

func checkCategoryType(category *entity.Category, transactionType entity.EntryType) error {
	if category.Type != transactionType {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeDiffers,
			"category_id",
			fmt.Sprintf("category must be of type '%s'", transactionType),
			domainerror.ErrCategoryTypeDiffers,
		)
	}
	return nil
}
