package account

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

func txn(t entity.EntryType, amount string) *entity.Transaction {
	return entity.NewTransaction(uuid.New(), uuid.New(), uuid.New(), t, time.Now(), decimal.RequireFromString(amount), nil, nil, time.Now())
}

func TestCurrentBalance(t *testing.T) {
	tests := []struct {
		name         string
		starting     string
		transactions []*entity.Transaction
		want         string
	}{
		{
			name:     "no transactions returns starting balance",
			starting: "1250.75",
			want:     "1250.75",
		},
		{
			name:     "salary and groceries",
			starting: "500000",
			transactions: []*entity.Transaction{
				txn(entity.EntryTypeIncome, "200000"),
				txn(entity.EntryTypeExpense, "50000"),
			},
			want: "650000",
		},
		{
			name:     "expenses may take the balance below zero",
			starting: "10",
			transactions: []*entity.Transaction{
				txn(entity.EntryTypeExpense, "25.50"),
			},
			want: "-15.5",
		},
		{
			name:     "decimal arithmetic is exact",
			starting: "0",
			transactions: []*entity.Transaction{
				txn(entity.EntryTypeIncome, "0.10"),
				txn(entity.EntryTypeIncome, "0.20"),
				txn(entity.EntryTypeExpense, "0.30"),
			},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentBalance(decimal.RequireFromString(tt.starting), tt.transactions)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("CurrentBalance() = %s, want %s", got, tt.want)
			}
		})
	}
}
