package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of place money is held in.
type AccountType string

const (
	AccountTypeCash    AccountType = "cash"
	AccountTypeBank    AccountType = "bank"
	AccountTypeEwallet AccountType = "ewallet"
	AccountTypeOther   AccountType = "other"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCash, AccountTypeBank, AccountTypeEwallet, AccountTypeOther:
		return true
	}
	return false
}

// Account is a container of money. Its current balance is never stored; it is
// derived from StartingBalance and the account's transactions.
type Account struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Type            AccountType
	StartingBalance decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccount creates a new active Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType, startingBalance decimal.Decimal) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Type:            accountType,
		StartingBalance: startingBalance,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AccountWithBalance pairs an account with its derived current balance.
type AccountWithBalance struct {
	Account        *Account
	CurrentBalance decimal.Decimal
}

// Change returns the difference between the current and the starting balance.
func (a *AccountWithBalance) Change() decimal.Decimal {
	return a.CurrentBalance.Sub(a.Account.StartingBalance)
}
