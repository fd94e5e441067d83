package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type            string          `gorm:"type:varchar(10);not null"`
	Date            time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note            *string         `gorm:"type:text"`
	Counterparty    *string         `gorm:"type:varchar(255)"`
	TransferGroupID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		Type:            entity.EntryType(m.Type),
		Date:            entity.DateOf(m.Date),
		Amount:          m.Amount,
		Note:            m.Note,
		Counterparty:    m.Counterparty,
		TransferGroupID: m.TransferGroupID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		AccountID:       transaction.AccountID,
		CategoryID:      transaction.CategoryID,
		Type:            string(transaction.Type),
		Date:            entity.DateOf(transaction.Date),
		Amount:          transaction.Amount,
		Note:            transaction.Note,
		Counterparty:    transaction.Counterparty,
		TransferGroupID: transaction.TransferGroupID,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
