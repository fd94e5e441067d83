package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account does not exist or belongs to another user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountType is returned when the account type is not supported.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidStartingBalance is returned when the starting balance is negative.
	ErrInvalidStartingBalance = errors.New("invalid starting balance")

	// ErrAccountNameInvalid is returned when the account name is empty or too long.
	ErrAccountNameInvalid = errors.New("invalid account name")

	// ErrAccountHasTransactions is returned when deleting an account that still owns transactions.
	ErrAccountHasTransactions = errors.New("account has transactions")

	// ErrAccountHasRecurringRules is returned when deleting an account referenced by recurring rules.
	ErrAccountHasRecurringRules = errors.New("account has recurring rules")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is the kind and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameInvalid      AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountType      AccountErrorCode = "ACC-010002"
	ErrCodeInvalidStartingBalance  AccountErrorCode = "ACC-010003"
	ErrCodeMissingAccountFields    AccountErrorCode = "ACC-010004"

	// Not found errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"

	// Conflict errors (03XXXX)
	ErrCodeAccountHasTransactions   AccountErrorCode = "ACC-030001"
	ErrCodeAccountHasRecurringRules AccountErrorCode = "ACC-030002"
)

// AccountError represents an account error with code, offending field and message.
type AccountError struct {
	Code    AccountErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string { return formatError(e.Message, e.Err) }

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error { return e.Err }

func (e *AccountError) ErrorCode() string    { return string(e.Code) }
func (e *AccountError) ErrorField() string   { return e.Field }
func (e *AccountError) ErrorMessage() string { return e.Message }
func (e *AccountError) Kind() Kind           { return kindFromCode(string(e.Code)) }

// NewAccountError creates a new AccountError.
func NewAccountError(code AccountErrorCode, field, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// AccountNotFound is the error returned for a missing or foreign account.
func AccountNotFound(field string) *AccountError {
	return NewAccountError(ErrCodeAccountNotFound, field, "account not found", ErrAccountNotFound)
}
