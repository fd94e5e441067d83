package error

import "errors"

// Recurring rule domain errors.
var (
	// ErrRecurringRuleNotFound is returned when a rule does not exist or belongs to another user.
	ErrRecurringRuleNotFound = errors.New("recurring rule not found")

	// ErrInvalidFrequency is returned when the frequency is not daily, weekly or monthly.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidRuleDates is returned when the end date precedes the start date.
	ErrInvalidRuleDates = errors.New("end date must not precede start date")

	// ErrRuleNotDue is returned when executing a rule that is inactive or not yet due.
	ErrRuleNotDue = errors.New("recurring rule is not due")
)

// RecurringRuleErrorCode defines error codes for recurring rule errors.
// Format: REC-XXYYYY where XX is the kind and YYYY is specific error.
type RecurringRuleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency      RecurringRuleErrorCode = "REC-010001"
	ErrCodeInvalidRuleDates      RecurringRuleErrorCode = "REC-010002"
	ErrCodeInvalidRuleAmount     RecurringRuleErrorCode = "REC-010003"
	ErrCodeInvalidRuleType       RecurringRuleErrorCode = "REC-010004"
	ErrCodeRuleCategoryMismatch  RecurringRuleErrorCode = "REC-010005"
	ErrCodeRuleNotDue            RecurringRuleErrorCode = "REC-010006"
	ErrCodeMissingRuleFields     RecurringRuleErrorCode = "REC-010007"

	// Not found errors (02XXXX)
	ErrCodeRecurringRuleNotFound RecurringRuleErrorCode = "REC-020001"
)

// RecurringRuleError represents a recurring rule error with code, offending field and message.
type RecurringRuleError struct {
	Code    RecurringRuleErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringRuleError) Error() string { return formatError(e.Message, e.Err) }

// Unwrap returns the underlying error.
func (e *RecurringRuleError) Unwrap() error { return e.Err }

func (e *RecurringRuleError) ErrorCode() string    { return string(e.Code) }
func (e *RecurringRuleError) ErrorField() string   { return e.Field }
func (e *RecurringRuleError) ErrorMessage() string { return e.Message }
func (e *RecurringRuleError) Kind() Kind           { return kindFromCode(string(e.Code)) }

// NewRecurringRuleError creates a new RecurringRuleError.
func NewRecurringRuleError(code RecurringRuleErrorCode, field, message string, err error) *RecurringRuleError {
	return &RecurringRuleError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// RecurringRuleNotFound is the error returned for a missing or foreign rule.
func RecurringRuleNotFound() *RecurringRuleError {
	return NewRecurringRuleError(ErrCodeRecurringRuleNotFound, "id", "recurring rule not found", ErrRecurringRuleNotFound)
}
