package error

import "errors"

// Attachment domain errors.
var (
	// ErrAttachmentNotFound is returned when an attachment does not exist on the given transaction.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrAttachmentTooLarge is returned when an upload exceeds the configured size limit.
	ErrAttachmentTooLarge = errors.New("attachment too large")

	// ErrAttachmentEmpty is returned when an upload has no content or no name.
	ErrAttachmentEmpty = errors.New("attachment is empty")
)

// AttachmentErrorCode defines error codes for attachment errors.
// Format: ATT-XXYYYY where XX is the kind and YYYY is specific error.
type AttachmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAttachmentTooLarge AttachmentErrorCode = "ATT-010001"
	ErrCodeAttachmentEmpty    AttachmentErrorCode = "ATT-010002"

	// Not found errors (02XXXX)
	ErrCodeAttachmentNotFound AttachmentErrorCode = "ATT-020001"
)

// AttachmentError represents an attachment error with code, offending field and message.
type AttachmentError struct {
	Code    AttachmentErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AttachmentError) Error() string { return formatError(e.Message, e.Err) }

// Unwrap returns the underlying error.
func (e *AttachmentError) Unwrap() error { return e.Err }

func (e *AttachmentError) ErrorCode() string    { return string(e.Code) }
func (e *AttachmentError) ErrorField() string   { return e.Field }
func (e *AttachmentError) ErrorMessage() string { return e.Message }
func (e *AttachmentError) Kind() Kind           { return kindFromCode(string(e.Code)) }

// NewAttachmentError creates a new AttachmentError.
func NewAttachmentError(code AttachmentErrorCode, field, message string, err error) *AttachmentError {
	return &AttachmentError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
