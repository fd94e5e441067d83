package entity

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits kept for amounts and balances.
const MoneyScale = 2

// HasMoneyScale reports whether amount is representable with MoneyScale fractional digits.
func HasMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyScale))
}
