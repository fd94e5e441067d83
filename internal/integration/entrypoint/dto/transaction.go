package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// TransferGroupID is only decoded so that it can be refused; transfers go through /transfers.
type CreateTransactionRequest struct {
	AccountID       string          `json:"account_id"`
	CategoryID      string          `json:"category_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Date            *Date           `json:"date,omitempty"`
	Note            *string         `json:"note,omitempty"`
	Counterparty    *string         `json:"counterparty,omitempty"`
	TransferGroupID *string         `json:"transfer_group_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	CategoryID   *string          `json:"category_id,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Date         *Date            `json:"date,omitempty"`
	Note         *string          `json:"note,omitempty"`
	Counterparty *string          `json:"counterparty,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	CategoryID      string          `json:"category_id"`
	Type            string          `json:"type"`
	Date            Date            `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Note            *string         `json:"note"`
	Counterparty    *string         `json:"counterparty"`
	TransferGroupID *string         `json:"transfer_group_id"`
	IsTransfer      bool            `json:"is_transfer"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DeleteTransactionResponse lists every row removed by a delete.
type DeleteTransactionResponse struct {
	DeletedIDs []string `json:"deleted_ids"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	var groupID *string
	if transaction.TransferGroupID != nil {
		id := transaction.TransferGroupID.String()
		groupID = &id
	}

	return TransactionResponse{
		ID:              transaction.ID.String(),
		AccountID:       transaction.AccountID.String(),
		CategoryID:      transaction.CategoryID.String(),
		Type:            string(transaction.Type),
		Date:            NewDate(transaction.Date),
		Amount:          transaction.Amount,
		Note:            transaction.Note,
		Counterparty:    transaction.Counterparty,
		TransferGroupID: groupID,
		IsTransfer:      transaction.IsTransfer(),
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return responses
}
