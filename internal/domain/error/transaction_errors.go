package error

import "errors"

// Transaction and transfer domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrCategoryTypeDiffers is returned when the category's type differs from the transaction's.
	ErrCategoryTypeDiffers = errors.New("category type does not match transaction type")

	// ErrNoteTooLong is returned when the note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrSameTransferAccount is returned when a transfer names the same account on both sides.
	ErrSameTransferAccount = errors.New("transfer accounts must differ")

	// ErrTransferLegImmutable is returned when an edit would unbalance a transfer pair.
	ErrTransferLegImmutable = errors.New("transfer leg cannot be changed this way")

	// ErrTransferIncomplete is returned when a transfer could not be written as a whole.
	ErrTransferIncomplete = errors.New("transfer could not be recorded")
)

// TransactionErrorCode defines error codes for transaction and transfer errors.
// Format: TXN-XXYYYY where XX is the kind and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010003"
	ErrCodeCategoryTypeDiffers      TransactionErrorCode = "TXN-010004"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010005"
	ErrCodeSameTransferAccount      TransactionErrorCode = "TXN-010006"
	ErrCodeTransferLegImmutable     TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Integrity errors (04XXXX)
	ErrCodeTransferIncomplete TransactionErrorCode = "TXN-040001"
)

// TransactionError represents a transaction error with code, offending field and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string { return formatError(e.Message, e.Err) }

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error { return e.Err }

func (e *TransactionError) ErrorCode() string    { return string(e.Code) }
func (e *TransactionError) ErrorField() string   { return e.Field }
func (e *TransactionError) ErrorMessage() string { return e.Message }
func (e *TransactionError) Kind() Kind           { return kindFromCode(string(e.Code)) }

// NewTransactionError creates a new TransactionError.
func NewTransactionError(code TransactionErrorCode, field, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// TransactionNotFound is the error returned for a missing or foreign transaction.
func TransactionNotFound() *TransactionError {
	return NewTransactionError(ErrCodeTransactionNotFound, "id", "transaction not found", ErrTransactionNotFound)
}
