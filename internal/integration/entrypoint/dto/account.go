package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
// The current balance is derived and never accepted from clients.
type CreateAccountRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name            *string          `json:"name,omitempty"`
	Type            *string          `json:"type,omitempty"`
	StartingBalance *decimal.Decimal `json:"starting_balance,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	StartingBalance decimal.Decimal  `json:"starting_balance"`
	CurrentBalance  *decimal.Decimal `json:"current_balance,omitempty"`
	Change          *decimal.Decimal `json:"change,omitempty"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ToAccountResponse converts an account without its derived balance.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID.String(),
		Name:            account.Name,
		Type:            string(account.Type),
		StartingBalance: account.StartingBalance,
		IsActive:        account.IsActive,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}

// ToAccountWithBalanceResponse converts an account along with its current balance.
func ToAccountWithBalanceResponse(account *entity.AccountWithBalance) AccountResponse {
	response := ToAccountResponse(account.Account)
	balance := account.CurrentBalance
	change := account.Change()
	response.CurrentBalance = &balance
	response.Change = &change
	return response
}

// ToAccountListResponse converts a list of accounts with balances.
func ToAccountListResponse(accounts []*entity.AccountWithBalance) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountWithBalanceResponse(account))
	}
	return responses
}
