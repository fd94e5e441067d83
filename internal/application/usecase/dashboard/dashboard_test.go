package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/dashboard"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence"
	"github.com/finance-tracker/bookkeeping/internal/testutil"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		date  string
		start string
		end   string
	}{
		{date: "2025-03-15", start: "2025-03-01", end: "2025-03-31"},
		{date: "2024-02-29", start: "2024-02-01", end: "2024-02-29"},
		{date: "2025-12-01", start: "2025-12-01", end: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			start, end := dashboard.MonthBounds(testutil.Date(t, tt.date).Add(15 * time.Hour))
			assert.Equal(t, testutil.Date(t, tt.start), start)
			assert.Equal(t, testutil.Date(t, tt.end), end)
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		current  string
		want     string
	}{
		{name: "growth", previous: "200", current: "250", want: "25"},
		{name: "decline", previous: "300", current: "100", want: "-66.7"},
		{name: "no previous month", previous: "0", current: "80", want: "0"},
		{name: "unchanged", previous: "45.50", current: "45.50", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dashboard.PercentChange(dec(tt.previous), dec(tt.current))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestGetOverview(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := testutil.NewSeed(t, db)
	accounts := persistence.NewAccountRepository(db)
	clock := testutil.FixedClock{At: testutil.Date(t, "2025-03-20").Add(9 * time.Hour)}
	uc := dashboard.NewGetOverviewUseCase(accounts, persistence.NewTransactionRepository(db), clock)
	ctx := context.Background()

	user := seed.User("owner@example.com")
	bank := seed.Account(user.ID, "Bank", "1000")
	wallet := seed.Account(user.ID, "Wallet", "50")
	closed := seed.Account(user.ID, "Closed", "500")
	salary := seed.Category(user.ID, "Salary", entity.EntryTypeIncome, nil)
	food := seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)

	seed.Transaction(bank, salary, "2000", "2025-02-01")
	seed.Transaction(bank, food, "400", "2025-02-28")
	seed.Transaction(bank, salary, "2500", "2025-03-01")
	seed.Transaction(wallet, food, "300", "2025-03-31")
	seed.Transaction(bank, food, "100", "2025-01-31")

	closed.IsActive = false
	require.NoError(t, accounts.Update(ctx, closed))

	stranger := seed.User("stranger@example.com")
	other := seed.Account(stranger.ID, "Other", "9999")
	otherSalary := seed.Category(stranger.ID, "Salary", entity.EntryTypeIncome, nil)
	seed.Transaction(other, otherSalary, "777", "2025-03-10")

	out, err := uc.Execute(ctx, dashboard.GetOverviewInput{UserID: user.ID})
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(t, "2025-03-01"), out.CurrentMonth.Start)
	assert.Equal(t, testutil.Date(t, "2025-03-31"), out.CurrentMonth.End)
	assert.True(t, dec("2500").Equal(out.CurrentMonth.Income))
	assert.True(t, dec("300").Equal(out.CurrentMonth.Expenses))
	assert.True(t, dec("2200").Equal(out.CurrentMonth.Net()))

	assert.Equal(t, testutil.Date(t, "2025-02-01"), out.PreviousMonth.Start)
	assert.True(t, dec("2000").Equal(out.PreviousMonth.Income))
	assert.True(t, dec("400").Equal(out.PreviousMonth.Expenses))

	assert.True(t, dec("25").Equal(out.IncomeChange), "income change %s", out.IncomeChange)
	assert.True(t, dec("-25").Equal(out.ExpenseChange), "expense change %s", out.ExpenseChange)

	// Bank: 1000 + 2000 - 400 + 2500 - 100. Wallet: 50 - 300. Closed is left out.
	assert.True(t, dec("4750").Equal(out.TotalBalance), "total %s", out.TotalBalance)
	assert.Equal(t, 2, out.ActiveAccounts)
}

func TestGetOverview_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := testutil.NewSeed(t, db)
	clock := testutil.FixedClock{At: testutil.Date(t, "2025-01-10")}
	uc := dashboard.NewGetOverviewUseCase(persistence.NewAccountRepository(db), persistence.NewTransactionRepository(db), clock)

	user := seed.User("owner@example.com")

	out, err := uc.Execute(context.Background(), dashboard.GetOverviewInput{UserID: user.ID})
	require.NoError(t, err)
	assert.True(t, out.CurrentMonth.Income.IsZero())
	assert.True(t, out.CurrentMonth.Net().IsZero())
	assert.True(t, out.IncomeChange.IsZero())
	assert.True(t, out.TotalBalance.IsZero())
	assert.Equal(t, testutil.Date(t, "2024-12-01"), out.PreviousMonth.Start)
	assert.Equal(t, 0, out.ActiveAccounts)
}
