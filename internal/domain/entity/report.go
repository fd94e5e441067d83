package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportLine is one transaction row of a report with its display names resolved.
type ReportLine struct {
	Transaction  *Transaction
	AccountName  string
	CategoryName string
}

// Report is the computed content of a transaction report, ready for rendering.
type Report struct {
	GeneratedAt   time.Time
	Lines         []ReportLine
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
	PeriodLabel   string
}
