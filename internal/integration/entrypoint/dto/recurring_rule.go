package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CreateRecurringRuleRequest represents the request body for recurring rule creation.
type CreateRecurringRuleRequest struct {
	AccountID  string          `json:"account_id"`
	CategoryID string          `json:"category_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Frequency  string          `json:"frequency"`
	StartDate  *Date           `json:"start_date"`
	EndDate    *Date           `json:"end_date,omitempty"`
	Note       *string         `json:"note,omitempty"`
}

// UpdateRecurringRuleRequest represents the request body for recurring rule update.
// Sending "end_date": null removes the end date.
type UpdateRecurringRuleRequest struct {
	AccountID   *string          `json:"account_id,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Frequency   *string          `json:"frequency,omitempty"`
	StartDate   *Date            `json:"start_date,omitempty"`
	NextRunDate *Date            `json:"next_run_date,omitempty"`
	Note        *string          `json:"note,omitempty"`
	EndDate     Nullable[Date]   `json:"end_date"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// RecurringRuleResponse represents a single recurring rule in API responses.
type RecurringRuleResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	CategoryID  string          `json:"category_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	StartDate   Date            `json:"start_date"`
	EndDate     *Date           `json:"end_date"`
	NextRunDate Date            `json:"next_run_date"`
	Note        *string         `json:"note"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExecuteRuleResponse represents the outcome of firing a rule once.
type ExecuteRuleResponse struct {
	Transaction TransactionResponse   `json:"transaction"`
	Rule        RecurringRuleResponse `json:"rule"`
	Exhausted   bool                  `json:"exhausted"`
}

// ToRecurringRuleResponse converts a domain RecurringRule to its DTO.
func ToRecurringRuleResponse(rule *entity.RecurringRule) RecurringRuleResponse {
	return RecurringRuleResponse{
		ID:          rule.ID.String(),
		AccountID:   rule.AccountID.String(),
		CategoryID:  rule.CategoryID.String(),
		Type:        string(rule.Type),
		Amount:      rule.Amount,
		Frequency:   string(rule.Frequency),
		StartDate:   NewDate(rule.StartDate),
		EndDate:     NewDatePtr(rule.EndDate),
		NextRunDate: NewDate(rule.NextRunDate),
		Note:        rule.Note,
		IsActive:    rule.IsActive,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}
}

// ToRecurringRuleListResponse converts a list of rules.
func ToRecurringRuleListResponse(rules []*entity.RecurringRule) []RecurringRuleResponse {
	responses := make([]RecurringRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, ToRecurringRuleResponse(rule))
	}
	return responses
}
