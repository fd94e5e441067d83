package recurring_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/recurring"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence"
	"github.com/finance-tracker/bookkeeping/internal/testutil"
)

type fixture struct {
	rules        adapter.RecurringRuleRepository
	transactions adapter.TransactionRepository
	executor     *recurring.ExecuteRuleUseCase
	seed         *testutil.Seed
	clock        testutil.FixedClock
}

func newFixture(t *testing.T, now string) (*fixture, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	rules := persistence.NewRecurringRuleRepository(db)
	transactions := persistence.NewTransactionRepository(db)
	clock := testutil.FixedClock{At: testutil.Date(t, now).Add(10 * time.Hour)}
	return &fixture{
		rules:        rules,
		transactions: transactions,
		executor:     recurring.NewExecuteRuleUseCase(rules, transactions, persistence.NewUnitOfWork(db), clock),
		seed:         testutil.NewSeed(t, db),
		clock:        clock,
	}, db
}

func TestExecuteRule(t *testing.T) {
	f, _ := newFixture(t, "2025-01-31")
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	rent := f.seed.Category(user.ID, "Rent", entity.EntryTypeExpense, nil)
	rule := f.seed.Rule(bank, rent, "1200", entity.FrequencyMonthly, "2025-01-31", "", "")

	out, err := f.executor.Execute(ctx, recurring.ExecuteRuleInput{UserID: user.ID, RuleID: rule.ID})
	require.NoError(t, err)
	assert.False(t, out.Exhausted)
	assert.Equal(t, "(Recurring)", *out.Transaction.Note)
	assert.True(t, out.Transaction.Amount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, testutil.Date(t, "2025-01-31"), out.Transaction.Date)
	assert.True(t, out.Transaction.CreatedAt.Equal(f.clock.At))

	stored, err := f.rules.FindByID(ctx, rule.ID)
	require.NoError(t, err)
	assert.True(t, stored.NextRunDate.Equal(testutil.Date(t, "2025-02-28")))
	assert.True(t, stored.UpdatedAt.Equal(f.clock.At))

	// The same run date cannot fire twice.
	_, err = f.executor.Execute(ctx, recurring.ExecuteRuleInput{UserID: user.ID, RuleID: rule.ID})
	require.ErrorIs(t, err, domainerror.ErrRuleNotDue)
	assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))

	txns, err := f.transactions.FindByAccount(ctx, bank.ID)
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	_, err = f.executor.Execute(ctx, recurring.ExecuteRuleInput{UserID: uuid.New(), RuleID: rule.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestExecuteRule_Exhausts(t *testing.T) {
	f, _ := newFixture(t, "2025-02-20")
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	gym := f.seed.Category(user.ID, "Gym", entity.EntryTypeExpense, nil)
	rule := f.seed.Rule(bank, gym, "40", entity.FrequencyMonthly, "2025-01-15", "2025-03-01", "2025-02-15")

	out, err := f.executor.Execute(ctx, recurring.ExecuteRuleInput{UserID: user.ID, RuleID: rule.ID})
	require.NoError(t, err)
	assert.True(t, out.Exhausted)

	stored, err := f.rules.FindByID(ctx, rule.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.True(t, stored.NextRunDate.Equal(testutil.Date(t, "2025-02-15")))
}

// denyLocker refuses the lease for one rule.
type denyLocker struct {
	denied   uuid.UUID
	released int
}

func (l *denyLocker) Acquire(_ context.Context, ruleID uuid.UUID) (func(), bool, error) {
	if ruleID == l.denied {
		return nil, false, nil
	}
	return func() { l.released++ }, true, nil
}

func TestRunDueRules(t *testing.T) {
	f, db := newFixture(t, "2025-03-10")
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	other := f.seed.User("other@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	theirs := f.seed.Account(other.ID, "Theirs", "0")
	salary := f.seed.Category(user.ID, "Salary", entity.EntryTypeIncome, nil)
	food := f.seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	coffee := f.seed.Category(other.ID, "Coffee", entity.EntryTypeExpense, nil)

	daily := f.seed.Rule(bank, food, "5", entity.FrequencyDaily, "2025-03-10", "", "")
	weekly := f.seed.Rule(theirs, coffee, "3", entity.FrequencyWeekly, "2025-03-03", "2025-03-09", "")
	leased := f.seed.Rule(bank, salary, "900", entity.FrequencyMonthly, "2025-03-01", "", "")
	f.seed.Rule(bank, food, "7", entity.FrequencyDaily, "2025-03-11", "", "")
	stale := f.seed.Rule(bank, food, "8", entity.FrequencyDaily, "2025-01-01", "2025-01-31", "2025-02-01")

	locker := &denyLocker{denied: leased.ID}
	clock := testutil.FixedClock{At: time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)}
	uc := recurring.NewRunDueRulesUseCase(f.rules, f.executor, locker, clock)

	summary, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RunSummary{Executed: 2, Exhausted: 1, Skipped: 2}, *summary)
	assert.Equal(t, 2, locker.released)

	stored, err := f.rules.FindByID(ctx, daily.ID)
	require.NoError(t, err)
	assert.True(t, stored.NextRunDate.Equal(testutil.Date(t, "2025-03-11")))

	stored, err = f.rules.FindByID(ctx, weekly.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	stored, err = f.rules.FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	var count int64
	require.NoError(t, db.Table("transactions").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCreateRecurringRule(t *testing.T) {
	f, db := newFixture(t, "2025-01-01")
	uc := recurring.NewCreateRecurringRuleUseCase(f.rules, persistence.NewAccountRepository(db), persistence.NewCategoryRepository(db))
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	salary := f.seed.Category(user.ID, "Salary", entity.EntryTypeIncome, nil)
	start := testutil.Date(t, "2025-02-01")
	before := testutil.Date(t, "2025-01-01")

	base := recurring.CreateRecurringRuleInput{
		UserID:     user.ID,
		AccountID:  bank.ID,
		CategoryID: salary.ID,
		Type:       entity.EntryTypeIncome,
		Amount:     decimal.NewFromInt(3000),
		Frequency:  entity.FrequencyMonthly,
		StartDate:  start,
	}

	tests := []struct {
		name   string
		mutate func(in *recurring.CreateRecurringRuleInput)
		field  string
	}{
		{"frequency", func(in *recurring.CreateRecurringRuleInput) { in.Frequency = "yearly" }, "frequency"},
		{"amount", func(in *recurring.CreateRecurringRuleInput) { in.Amount = decimal.Zero }, "amount"},
		{"sub-cent amount", func(in *recurring.CreateRecurringRuleInput) { in.Amount = decimal.RequireFromString("99.999") }, "amount"},
		{"end before start", func(in *recurring.CreateRecurringRuleInput) { in.EndDate = &before }, "end_date"},
		{"category type", func(in *recurring.CreateRecurringRuleInput) { in.Type = entity.EntryTypeExpense }, "category_id"},
		{"account", func(in *recurring.CreateRecurringRuleInput) { in.AccountID = uuid.New() }, "account_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := uc.Execute(ctx, in)
			require.Error(t, err)
			coded, ok := domainerror.AsCoded(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, coded.ErrorField())
		})
	}

	out, err := uc.Execute(ctx, base)
	require.NoError(t, err)
	assert.True(t, out.Rule.IsActive)
	assert.True(t, out.Rule.NextRunDate.Equal(start))
}

func TestUpdateRecurringRule(t *testing.T) {
	f, db := newFixture(t, "2025-01-01")
	uc := newUpdateUseCase(f, db)
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	food := f.seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	rule := f.seed.Rule(bank, food, "10", entity.FrequencyWeekly, "2025-01-01", "", "2025-02-01")

	early := testutil.Date(t, "2025-01-20")
	_, err := uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, EndDate: &early})
	require.Error(t, err)
	coded, _ := domainerror.AsCoded(err)
	assert.Equal(t, "end_date", coded.ErrorField())

	inactive := false
	note := "  Lunch  "
	amount := decimal.RequireFromString("12.50")
	out, err := uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, EndDate: &early, IsActive: &inactive, Note: &note, Amount: &amount})
	require.NoError(t, err)
	assert.False(t, out.Rule.IsActive)
	assert.Equal(t, "Lunch", *out.Rule.Note)

	active := true
	_, err = uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, IsActive: &active})
	require.Error(t, err)

	out, err = uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, IsActive: &active, ClearEndDate: true})
	require.NoError(t, err)
	assert.True(t, out.Rule.IsActive)
	assert.Nil(t, out.Rule.EndDate)
}

func newUpdateUseCase(f *fixture, db *gorm.DB) *recurring.UpdateRecurringRuleUseCase {
	return recurring.NewUpdateRecurringRuleUseCase(
		f.rules,
		persistence.NewAccountRepository(db),
		persistence.NewCategoryRepository(db),
		f.clock,
	)
}

func TestUpdateRecurringRule_Reassign(t *testing.T) {
	f, db := newFixture(t, "2025-01-01")
	uc := newUpdateUseCase(f, db)
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	wallet := f.seed.Account(user.ID, "Wallet", "0")
	food := f.seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	salary := f.seed.Category(user.ID, "Salary", entity.EntryTypeIncome, nil)
	rule := f.seed.Rule(bank, food, "10", entity.FrequencyWeekly, "2025-01-01", "", "")

	stranger := f.seed.User("stranger@example.com")
	foreign := f.seed.Account(stranger.ID, "Foreign", "0")

	income := entity.EntryTypeIncome
	monthly := entity.FrequencyMonthly
	bogus := entity.Frequency("hourly")

	tests := []struct {
		name  string
		input recurring.UpdateRecurringRuleInput
		kind  domainerror.Kind
		field string
	}{
		{
			name:  "type without a matching category",
			input: recurring.UpdateRecurringRuleInput{Type: &income},
			kind:  domainerror.KindValidation,
			field: "category_id",
		},
		{
			name:  "category of the other type",
			input: recurring.UpdateRecurringRuleInput{CategoryID: &salary.ID},
			kind:  domainerror.KindValidation,
			field: "category_id",
		},
		{
			name:  "account of another user",
			input: recurring.UpdateRecurringRuleInput{AccountID: &foreign.ID},
			kind:  domainerror.KindNotFound,
			field: "account_id",
		},
		{
			name:  "unknown frequency",
			input: recurring.UpdateRecurringRuleInput{Frequency: &bogus},
			kind:  domainerror.KindValidation,
			field: "frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			in.UserID = user.ID
			in.RuleID = rule.ID
			_, err := uc.Execute(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domainerror.KindOf(err))
			coded, ok := domainerror.AsCoded(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, coded.ErrorField())
		})
	}

	out, err := uc.Execute(ctx, recurring.UpdateRecurringRuleInput{
		UserID:     user.ID,
		RuleID:     rule.ID,
		Type:       &income,
		CategoryID: &salary.ID,
		AccountID:  &wallet.ID,
		Frequency:  &monthly,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryTypeIncome, out.Rule.Type)
	assert.Equal(t, salary.ID, out.Rule.CategoryID)
	assert.Equal(t, wallet.ID, out.Rule.AccountID)
	assert.Equal(t, entity.FrequencyMonthly, out.Rule.Frequency)
	assert.True(t, out.Rule.UpdatedAt.Equal(f.clock.At))

	stored, err := f.rules.FindByID(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EntryTypeIncome, stored.Type)
	assert.Equal(t, wallet.ID, stored.AccountID)
}

func TestUpdateRecurringRule_Schedule(t *testing.T) {
	f, db := newFixture(t, "2025-01-01")
	uc := newUpdateUseCase(f, db)
	ctx := context.Background()

	user := f.seed.User("owner@example.com")
	bank := f.seed.Account(user.ID, "Bank", "0")
	food := f.seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	rule := f.seed.Rule(bank, food, "10", entity.FrequencyMonthly, "2025-03-01", "", "")

	// A rule that has not fired yet moves its next run along with the start.
	start := testutil.Date(t, "2025-04-01")
	out, err := uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, StartDate: &start})
	require.NoError(t, err)
	assert.True(t, out.Rule.StartDate.Equal(start))
	assert.True(t, out.Rule.NextRunDate.Equal(start))

	beforeStart := testutil.Date(t, "2025-03-15")
	_, err = uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, NextRunDate: &beforeStart})
	require.Error(t, err)
	coded, ok := domainerror.AsCoded(err)
	require.True(t, ok)
	assert.Equal(t, "next_run_date", coded.ErrorField())
	assert.Equal(t, string(domainerror.ErrCodeInvalidRuleDates), coded.ErrorCode())

	endBeforeStart := testutil.Date(t, "2025-02-01")
	inactive := false
	_, err = uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, EndDate: &endBeforeStart, IsActive: &inactive})
	require.Error(t, err)
	coded, ok = domainerror.AsCoded(err)
	require.True(t, ok)
	assert.Equal(t, "end_date", coded.ErrorField())

	later := testutil.Date(t, "2025-05-01")
	out, err = uc.Execute(ctx, recurring.UpdateRecurringRuleInput{UserID: user.ID, RuleID: rule.ID, NextRunDate: &later})
	require.NoError(t, err)
	assert.True(t, out.Rule.NextRunDate.Equal(later))
	assert.True(t, out.Rule.StartDate.Equal(start))
}
