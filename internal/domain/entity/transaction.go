package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxNoteLength is the maximum allowed length for transaction and rule notes.
const MaxNoteLength = 1000

// Transaction is a single income or expense entry against one account.
// Amount is always strictly positive; Type carries the direction.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Type            EntryType
	Date            time.Time
	Amount          decimal.Decimal
	Note            *string
	Counterparty    *string
	TransferGroupID *uuid.UUID // Shared by exactly two legs of a transfer
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity dated on the calendar day of date,
// stamped as created at now.
func NewTransaction(
	userID, accountID, categoryID uuid.UUID,
	transactionType EntryType,
	date time.Time,
	amount decimal.Decimal,
	note, counterparty *string,
	now time.Time,
) *Transaction {
	now = now.UTC()

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		CategoryID:   categoryID,
		Type:         transactionType,
		Date:         DateOf(date),
		Amount:       amount,
		Note:         note,
		Counterparty: counterparty,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsTransfer reports whether the transaction is one leg of a transfer.
func (t *Transaction) IsTransfer() bool {
	return t.TransferGroupID != nil
}

// SignedAmount returns the amount as it affects the account balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == EntryTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFilter narrows transaction listings. Zero values mean no filter.
type TransactionFilter struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *EntryType
	StartDate  *time.Time
	EndDate    *time.Time
}
