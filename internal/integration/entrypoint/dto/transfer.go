package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CreateTransferRequest represents the request body for a transfer between two accounts.
type CreateTransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Note          *string         `json:"note,omitempty"`
	Date          *Date           `json:"date,omitempty"`
}

// TransferResponse represents both legs of a transfer.
type TransferResponse struct {
	TransferGroupID string              `json:"transfer_group_id"`
	Outgoing        TransactionResponse `json:"outgoing"`
	Incoming        TransactionResponse `json:"incoming"`
}

// ToTransferResponse converts a transfer pair.
func ToTransferResponse(outgoing, incoming *entity.Transaction) TransferResponse {
	response := TransferResponse{
		Outgoing: ToTransactionResponse(outgoing),
		Incoming: ToTransactionResponse(incoming),
	}
	if outgoing.TransferGroupID != nil {
		response.TransferGroupID = outgoing.TransferGroupID.String()
	}
	return response
}
