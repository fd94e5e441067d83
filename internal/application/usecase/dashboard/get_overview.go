package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/account"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// GetOverviewInput represents the input for the financial overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// MonthTotals holds the income and expense sums of one calendar month.
type MonthTotals struct {
	Start    time.Time
	End      time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns income minus expenses.
func (m MonthTotals) Net() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// GetOverviewOutput summarizes the current month against the previous one.
type GetOverviewOutput struct {
	CurrentMonth   MonthTotals
	PreviousMonth  MonthTotals
	IncomeChange   decimal.Decimal
	ExpenseChange  decimal.Decimal
	TotalBalance   decimal.Decimal
	ActiveAccounts int
}

// GetOverviewUseCase builds the financial overview of a user.
type GetOverviewUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute computes this month's totals, the change from last month and the
// combined balance of all active accounts.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	currentStart, currentEnd := MonthBounds(uc.clock.Now().UTC())
	previousStart, previousEnd := MonthBounds(currentStart.AddDate(0, -1, 0))

	current, err := uc.monthTotals(ctx, input.UserID, currentStart, currentEnd)
	if err != nil {
		return nil, err
	}
	previous, err := uc.monthTotals(ctx, input.UserID, previousStart, previousEnd)
	if err != nil {
		return nil, err
	}

	active := true
	accounts, err := uc.accountRepo.FindByFilter(ctx, adapter.AccountFilter{UserID: input.UserID, IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	total := decimal.Zero
	for _, a := range accounts {
		transactions, err := uc.transactionRepo.FindByAccount(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load account transactions: %w", err)
		}
		total = total.Add(account.CurrentBalance(a.StartingBalance, transactions))
	}

	return &GetOverviewOutput{
		CurrentMonth:   current,
		PreviousMonth:  previous,
		IncomeChange:   PercentChange(previous.Income, current.Income),
		ExpenseChange:  PercentChange(previous.Expenses, current.Expenses),
		TotalBalance:   total,
		ActiveAccounts: len(accounts),
	}, nil
}

func (uc *GetOverviewUseCase) monthTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (MonthTotals, error) {
	totals := MonthTotals{Start: start, End: end, Income: decimal.Zero, Expenses: decimal.Zero}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, entity.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return totals, fmt.Errorf("failed to load transactions: %w", err)
	}

	for _, t := range transactions {
		switch t.Type {
		case entity.EntryTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case entity.EntryTypeExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	return totals, nil
}
