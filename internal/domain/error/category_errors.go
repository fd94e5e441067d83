package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or belongs to another user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when the (user, name, type) triple is already taken.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameInvalid is returned when the category name is empty or too long.
	ErrCategoryNameInvalid = errors.New("invalid category name")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryTypeMismatch is returned when a category's type differs from its parent or children.
	ErrCategoryTypeMismatch = errors.New("category type mismatch")

	// ErrCategoryCycle is returned when a re-parent would make a category its own ancestor.
	ErrCategoryCycle = errors.New("circular category reference")

	// ErrCategoryHasTransactions is returned when deleting a category that owns transactions.
	ErrCategoryHasTransactions = errors.New("category has transactions")

	// ErrCategoryHasChildren is returned when deleting a category that has subcategories.
	ErrCategoryHasChildren = errors.New("category has subcategories")

	// ErrCategoryHasRecurringRules is returned when deleting a category referenced by recurring rules.
	ErrCategoryHasRecurringRules = errors.New("category has recurring rules")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the kind and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameInvalid   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryTypeMismatch  CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryCycle         CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010005"

	// Not found errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"

	// Conflict errors (03XXXX)
	ErrCodeCategoryNameExists        CategoryErrorCode = "CAT-030001"
	ErrCodeCategoryHasTransactions   CategoryErrorCode = "CAT-030002"
	ErrCodeCategoryHasChildren       CategoryErrorCode = "CAT-030003"
	ErrCodeCategoryHasRecurringRules CategoryErrorCode = "CAT-030004"
)

// CategoryError represents a category error with code, offending field and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string { return formatError(e.Message, e.Err) }

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error { return e.Err }

func (e *CategoryError) ErrorCode() string    { return string(e.Code) }
func (e *CategoryError) ErrorField() string   { return e.Field }
func (e *CategoryError) ErrorMessage() string { return e.Message }
func (e *CategoryError) Kind() Kind           { return kindFromCode(string(e.Code)) }

// NewCategoryError creates a new CategoryError.
func NewCategoryError(code CategoryErrorCode, field, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// CategoryNotFound is the error returned for a missing or foreign category.
func CategoryNotFound(field string) *CategoryError {
	return NewCategoryError(ErrCodeCategoryNotFound, field, "category not found", ErrCategoryNotFound)
}
