package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring rule fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// RecurringNoteSuffix is appended to the note of every transaction produced by a rule.
const RecurringNoteSuffix = " (Recurring)"

// RecurringRule is a template that produces transactions on a schedule.
// A rule is Active while IsActive is set and Exhausted once it passes its EndDate.
type RecurringRule struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Type        EntryType
	Amount      decimal.Decimal
	Frequency   Frequency
	StartDate   time.Time
	EndDate     *time.Time
	NextRunDate time.Time
	Note        *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecurringRule creates an active rule whose first run is its start date.
func NewRecurringRule(
	userID, accountID, categoryID uuid.UUID,
	ruleType EntryType,
	amount decimal.Decimal,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
	note *string,
) *RecurringRule {
	now := time.Now().UTC()
	start := DateOf(startDate)

	var end *time.Time
	if endDate != nil {
		d := DateOf(*endDate)
		end = &d
	}

	return &RecurringRule{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        ruleType,
		Amount:      amount,
		Frequency:   frequency,
		StartDate:   start,
		EndDate:     end,
		NextRunDate: start,
		Note:        note,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RunSummary reports the outcome of one batch over due rules.
type RunSummary struct {
	Executed  int
	Exhausted int
	Skipped   int
	Failed    int
}
