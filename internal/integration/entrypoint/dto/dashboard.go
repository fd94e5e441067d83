package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/dashboard"
)

// MonthTotalsResponse represents the totals of one calendar month.
type MonthTotalsResponse struct {
	Start    Date            `json:"start"`
	End      Date            `json:"end"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// OverviewResponse represents the financial overview in API responses.
// Changes are percentages relative to the previous month.
type OverviewResponse struct {
	CurrentMonth   MonthTotalsResponse `json:"current_month"`
	PreviousMonth  MonthTotalsResponse `json:"previous_month"`
	IncomeChange   decimal.Decimal     `json:"income_change_pct"`
	ExpenseChange  decimal.Decimal     `json:"expense_change_pct"`
	TotalBalance   decimal.Decimal     `json:"total_balance"`
	ActiveAccounts int                 `json:"active_accounts"`
}

func toMonthTotalsResponse(totals dashboard.MonthTotals) MonthTotalsResponse {
	return MonthTotalsResponse{
		Start:    NewDate(totals.Start),
		End:      NewDate(totals.End),
		Income:   totals.Income,
		Expenses: totals.Expenses,
		Net:      totals.Net(),
	}
}

// ToOverviewResponse converts the overview output to its response.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		CurrentMonth:   toMonthTotalsResponse(output.CurrentMonth),
		PreviousMonth:  toMonthTotalsResponse(output.PreviousMonth),
		IncomeChange:   output.IncomeChange,
		ExpenseChange:  output.ExpenseChange,
		TotalBalance:   output.TotalBalance,
		ActiveAccounts: output.ActiveAccounts,
	}
}
