// Package account contains account-related use cases.
package account

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CurrentBalance derives an account balance from its starting balance and
// transactions: starting + sum(income) - sum(expense). It is recomputed on
// every call; nothing is cached.
func CurrentBalance(startingBalance decimal.Decimal, transactions []*entity.Transaction) decimal.Decimal {
	balance := startingBalance
	for _, t := range transactions {
		balance = balance.Add(t.SignedAmount())
	}
	return balance
}
