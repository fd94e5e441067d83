package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", NewTransactionError(ErrCodeInvalidTransactionAmount, "amount", "amount must be positive", ErrInvalidTransactionAmount), KindValidation},
		{"not found", AccountNotFound("from_account_id"), KindNotFound},
		{"conflict", NewCategoryError(ErrCodeCategoryHasChildren, "children", "has subcategories", ErrCategoryHasChildren), KindConflict},
		{"integrity", NewTransactionError(ErrCodeTransferIncomplete, "", "transfer could not be recorded", ErrTransferIncomplete), KindIntegrity},
		{"wrapped", fmt.Errorf("outer: %w", RecurringRuleNotFound()), KindNotFound},
		{"plain error", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Kind
	}{
		{"CAT-010001", KindValidation},
		{"ACC-020001", KindNotFound},
		{"CAT-030002", KindConflict},
		{"TXN-040001", KindIntegrity},
		{"TXN-990001", KindUnknown},
		{"NODASH", KindUnknown},
		{"X-1", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := kindFromCode(tt.code); got != tt.want {
				t.Errorf("kindFromCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodedErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("create: %w", NewCategoryError(ErrCodeCategoryCycle, "parent_id", "circular reference", ErrCategoryCycle))

	if !errors.Is(err, ErrCategoryCycle) {
		t.Fatal("expected sentinel to be reachable through the chain")
	}

	coded, ok := AsCoded(err)
	if !ok {
		t.Fatal("expected a coded error")
	}
	if coded.ErrorField() != "parent_id" {
		t.Errorf("field = %q, want parent_id", coded.ErrorField())
	}
	if coded.ErrorCode() != string(ErrCodeCategoryCycle) {
		t.Errorf("code = %q, want %q", coded.ErrorCode(), ErrCodeCategoryCycle)
	}
	if coded.Error() != "circular reference: circular category reference" {
		t.Errorf("unexpected message %q", coded.Error())
	}
}
