package account

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 255

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxAccountNameLength {
		return "", domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameInvalid,
			"name",
			fmt.Sprintf("account name must be between 1 and %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameInvalid,
		)
	}
	return name, nil
}

func validateType(accountType entity.AccountType) error {
	if !accountType.IsValid() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"type",
			"account type must be one of cash, bank, ewallet, other",
			domainerror.ErrInvalidAccountType,
		)
	}
	return nil
}

func validateStartingBalance(startingBalance decimal.Decimal) error {
	if startingBalance.IsNegative() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidStartingBalance,
			"starting_balance",
			"starting balance must not be negative",
			domainerror.ErrInvalidStartingBalance,
		)
	}
	if !entity.HasMoneyScale(startingBalance) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidStartingBalance,
			"starting_balance",
			fmt.Sprintf("starting balance must have at most %d decimal places", entity.MoneyScale),
			domainerror.ErrInvalidStartingBalance,
		)
	}
	return nil
}
