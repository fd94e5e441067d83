package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

func TestBuild(t *testing.T) {
	userID, accountID := uuid.New(), uuid.New()
	salary, food := uuid.New(), uuid.New()
	day := func(s string) time.Time {
		d, _ := time.Parse(time.DateOnly, s)
		return d
	}
	txn := func(kind entity.EntryType, category uuid.UUID, amount, date string) *entity.Transaction {
		return entity.NewTransaction(userID, accountID, category, kind, day(date), decimal.RequireFromString(amount), nil, nil, day(date))
	}

	t.Run("empty", func(t *testing.T) {
		got := Build(nil, nil, nil, time.Now())
		if got.PeriodLabel != "No transactions" {
			t.Errorf("PeriodLabel = %q", got.PeriodLabel)
		}
		if !got.NetBalance.IsZero() || len(got.Lines) != 0 {
			t.Errorf("expected an empty report, got %+v", got)
		}
	})

	t.Run("totals and period", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(entity.EntryTypeExpense, food, "50000", "2025-01-26"),
			txn(entity.EntryTypeIncome, salary, "200000", "2025-01-25"),
			txn(entity.EntryTypeExpense, food, "0.10", "2024-12-31"),
		}
		got := Build(transactions,
			map[uuid.UUID]string{accountID: "Bank"},
			map[uuid.UUID]string{salary: "Salary", food: "Food"},
			time.Now(),
		)

		if !got.TotalIncome.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("TotalIncome = %s", got.TotalIncome)
		}
		if !got.TotalExpenses.Equal(decimal.RequireFromString("50000.10")) {
			t.Errorf("TotalExpenses = %s", got.TotalExpenses)
		}
		if !got.NetBalance.Equal(decimal.RequireFromString("149999.90")) {
			t.Errorf("NetBalance = %s", got.NetBalance)
		}
		if want := "Dec 31, 2024 - Jan 26, 2025"; got.PeriodLabel != want {
			t.Errorf("PeriodLabel = %q, want %q", got.PeriodLabel, want)
		}
		if got.Lines[1].CategoryName != "Salary" || got.Lines[0].AccountName != "Bank" {
			t.Errorf("names not resolved: %+v", got.Lines[1])
		}
	})
}
