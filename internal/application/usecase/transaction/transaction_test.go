package transaction_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transaction"
	"github.com/finance-tracker/bookkeeping/internal/application/usecase/transfer"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence"
	"github.com/finance-tracker/bookkeeping/internal/testutil"
)

// recordingStorage remembers which paths were deleted.
type recordingStorage struct {
	deleted []string
}

func (s *recordingStorage) Save(_ context.Context, originalName string, _ io.Reader) (string, int64, error) {
	return originalName, 0, nil
}

func (s *recordingStorage) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *recordingStorage) URL(path string) string { return "/files/" + path }

var today = testutil.FixedClock{At: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)}

func TestCreateTransaction(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := testutil.NewSeed(t, db)
	uc := transaction.NewCreateTransactionUseCase(
		persistence.NewTransactionRepository(db),
		persistence.NewAccountRepository(db),
		persistence.NewCategoryRepository(db),
		today,
	)
	ctx := context.Background()

	user := seed.User("owner@example.com")
	bank := seed.Account(user.ID, "Bank", "0")
	salary := seed.Category(user.ID, "Salary", entity.EntryTypeIncome, nil)
	food := seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	longNote := strings.Repeat("x", entity.MaxNoteLength+1)

	tests := []struct {
		name  string
		input transaction.CreateTransactionInput
		kind  domainerror.Kind
		field string
	}{
		{"category type differs", transaction.CreateTransactionInput{UserID: user.ID, AccountID: bank.ID, CategoryID: food.ID, Type: entity.EntryTypeIncome, Amount: decimal.NewFromInt(1)}, domainerror.KindValidation, "category_id"},
		{"zero amount", transaction.CreateTransactionInput{UserID: user.ID, AccountID: bank.ID, CategoryID: food.ID, Type: entity.EntryTypeExpense, Amount: decimal.Zero}, domainerror.KindValidation, "amount"},
		{"sub-cent amount", transaction.CreateTransactionInput{UserID: user.ID, AccountID: bank.ID, CategoryID: food.ID, Type: entity.EntryTypeExpense, Amount: decimal.RequireFromString("0.001")}, domainerror.KindValidation, "amount"},
		{"unknown type", transaction.CreateTransactionInput{UserID: user.ID, AccountID: bank.ID, CategoryID: food.ID, Type: "refund", Amount: decimal.NewFromInt(1)}, domainerror.KindValidation, "type"},
		{"note too long", transaction.CreateTransactionInput{UserID: user.ID, AccountID: bank.ID, CategoryID: food.ID, Type: entity.EntryTypeExpense, Amount: decimal.NewFromInt(1), Note: &longNote}, domainerror.KindValidation, "note"},
		{"missing account", transaction.CreateTransactionInput{UserID: user.ID, AccountID: uuid.New(), CategoryID: food.ID, Type: entity.EntryTypeExpense, Amount: decimal.NewFromInt(1)}, domainerror.KindNotFound, "account_id"},
		{"foreign user", transaction.CreateTransactionInput{UserID: uuid.New(), AccountID: bank.ID, CategoryID: food.ID, Type: entity.EntryTypeExpense, Amount: decimal.NewFromInt(1)}, domainerror.KindNotFound, "account_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			require.Error(t, err)
			coded, ok := domainerror.AsCoded(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, coded.Kind())
			assert.Equal(t, tt.field, coded.ErrorField())
		})
	}

	out, err := uc.Execute(ctx, transaction.CreateTransactionInput{
		UserID:     user.ID,
		AccountID:  bank.ID,
		CategoryID: salary.ID,
		Type:       entity.EntryTypeIncome,
		Amount:     decimal.RequireFromString("2500.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, testutil.Date(t, "2025-05-20"), out.Transaction.Date)
	assert.Nil(t, out.Transaction.TransferGroupID)
	assert.Nil(t, out.Transaction.Note)
}

func newTransfer(t *testing.T, ctx context.Context, uc *transfer.CreateTransferUseCase, userID uuid.UUID, from, to *entity.Account, amount string) *transfer.CreateTransferOutput {
	t.Helper()
	out, err := uc.Execute(ctx, transfer.CreateTransferInput{
		UserID:        userID,
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return out
}

func TestUpdateTransaction_MirrorsTransferLeg(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := testutil.NewSeed(t, db)
	transactions := persistence.NewTransactionRepository(db)
	categories := persistence.NewCategoryRepository(db)
	uow := persistence.NewUnitOfWork(db)
	transferUC := transfer.NewCreateTransferUseCase(transactions, persistence.NewAccountRepository(db), categories, uow, today)
	uc := transaction.NewUpdateTransactionUseCase(transactions, categories, uow)
	ctx := context.Background()

	user := seed.User("owner@example.com")
	bank := seed.Account(user.ID, "Bank", "1000")
	wallet := seed.Account(user.ID, "Wallet", "0")
	food := seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	pair := newTransfer(t, ctx, transferUC, user.ID, bank, wallet, "100")

	amount := decimal.NewFromInt(250)
	date := testutil.Date(t, "2025-05-01")
	note := "moved savings"
	_, err := uc.Execute(ctx, transaction.UpdateTransactionInput{
		UserID:        user.ID,
		TransactionID: pair.Incoming.ID,
		Amount:        &amount,
		Date:          &date,
		Note:          &note,
	})
	require.NoError(t, err)

	outgoing, err := transactions.FindByID(ctx, pair.Outgoing.ID)
	require.NoError(t, err)
	assert.True(t, outgoing.Amount.Equal(amount))
	assert.True(t, outgoing.Date.Equal(date))
	assert.Equal(t, "Transfer to Wallet", *outgoing.Note)

	// An expense leg cannot be filed under an income category, and vice versa.
	_, err = uc.Execute(ctx, transaction.UpdateTransactionInput{UserID: user.ID, TransactionID: pair.Incoming.ID, CategoryID: &food.ID})
	require.Error(t, err)
	coded, _ := domainerror.AsCoded(err)
	assert.Equal(t, "category_id", coded.ErrorField())

	_, err = uc.Execute(ctx, transaction.UpdateTransactionInput{UserID: user.ID, TransactionID: pair.Outgoing.ID, CategoryID: &food.ID})
	require.NoError(t, err)
}

func TestDeleteTransaction_CascadesTransfer(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := testutil.NewSeed(t, db)
	transactions := persistence.NewTransactionRepository(db)
	attachments := persistence.NewAttachmentRepository(db)
	uow := persistence.NewUnitOfWork(db)
	storage := &recordingStorage{}
	transferUC := transfer.NewCreateTransferUseCase(transactions, persistence.NewAccountRepository(db), persistence.NewCategoryRepository(db), uow, today)
	uc := transaction.NewDeleteTransactionUseCase(transactions, attachments, storage, uow)
	ctx := context.Background()

	user := seed.User("owner@example.com")
	bank := seed.Account(user.ID, "Bank", "1000")
	wallet := seed.Account(user.ID, "Wallet", "0")
	food := seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	pair := newTransfer(t, ctx, transferUC, user.ID, bank, wallet, "100")
	plain := seed.Transaction(bank, food, "5", "2025-05-02")

	receipt := entity.NewAttachment(pair.Outgoing.ID, "2025/receipt.pdf", "receipt.pdf", 1024)
	require.NoError(t, attachments.Create(ctx, receipt))

	_, err := uc.Execute(ctx, transaction.DeleteTransactionInput{UserID: uuid.New(), TransactionID: pair.Incoming.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	out, err := uc.Execute(ctx, transaction.DeleteTransactionInput{UserID: user.ID, TransactionID: pair.Incoming.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{pair.Incoming.ID, pair.Outgoing.ID}, out.DeletedIDs)
	assert.Equal(t, []string{"2025/receipt.pdf"}, storage.deleted)

	remaining, err := transactions.FindByFilter(ctx, entity.TransactionFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, plain.ID, remaining[0].ID)

	_, err = attachments.FindByID(ctx, receipt.ID)
	assert.ErrorIs(t, err, domainerror.ErrAttachmentNotFound)
}

func TestListTransactions(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := testutil.NewSeed(t, db)
	uc := transaction.NewListTransactionsUseCase(persistence.NewTransactionRepository(db))
	ctx := context.Background()

	user := seed.User("owner@example.com")
	bank := seed.Account(user.ID, "Bank", "0")
	food := seed.Category(user.ID, "Food", entity.EntryTypeExpense, nil)
	salary := seed.Category(user.ID, "Salary", entity.EntryTypeIncome, nil)
	seed.Transaction(bank, food, "10", "2025-01-05")
	seed.Transaction(bank, food, "20", "2025-02-05")
	seed.Transaction(bank, salary, "300", "2025-02-01")

	start := testutil.Date(t, "2025-02-01")
	out, err := uc.Execute(ctx, transaction.ListTransactionsInput{UserID: user.ID, StartDate: &start})
	require.NoError(t, err)
	require.Len(t, out.Transactions, 2)
	assert.True(t, out.Transactions[0].Amount.Equal(decimal.NewFromInt(20)))

	expense := entity.EntryTypeExpense
	out, err = uc.Execute(ctx, transaction.ListTransactionsInput{UserID: user.ID, Type: &expense})
	require.NoError(t, err)
	assert.Len(t, out.Transactions, 2)

	end := testutil.Date(t, "2025-01-01")
	_, err = uc.Execute(ctx, transaction.ListTransactionsInput{UserID: user.ID, StartDate: &start, EndDate: &end})
	assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
}
