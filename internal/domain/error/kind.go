// Package error defines domain-specific errors for the bookkeeping ledger.
package error

import (
	"errors"
	"strings"
)

// Kind classifies a domain error independently of the entity it concerns.
type Kind string

const (
	KindUnknown    Kind = ""
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindIntegrity  Kind = "integrity"
)

// CodedError is implemented by every typed ledger error.
type CodedError interface {
	error
	ErrorCode() string
	ErrorField() string
	ErrorMessage() string
	Kind() Kind
}

// kindFromCode reads the kind from a code of the form PREFIX-KKNNNN.
func kindFromCode(code string) Kind {
	_, rest, ok := strings.Cut(code, "-")
	if !ok || len(rest) < 2 {
		return KindUnknown
	}

	switch rest[:2] {
	case "01":
		return KindValidation
	case "02":
		return KindNotFound
	case "03":
		return KindConflict
	case "04":
		return KindIntegrity
	default:
		return KindUnknown
	}
}

// AsCoded finds the first typed ledger error in err's chain.
func AsCoded(err error) (CodedError, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// KindOf returns the kind of the first typed ledger error in err's chain.
func KindOf(err error) Kind {
	if coded, ok := AsCoded(err); ok {
		return coded.Kind()
	}
	return KindUnknown
}

func formatError(message string, err error) string {
	if err != nil {
		return message + ": " + err.Error()
	}
	return message
}
