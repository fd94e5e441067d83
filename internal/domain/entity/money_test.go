package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestHasMoneyScale(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"12", true},
		{"12.5", true},
		{"12.50", true},
		{"12.500", true},
		{"0.001", false},
		{"99.999", false},
		{"-3.141", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := HasMoneyScale(decimal.RequireFromString(tt.amount)); got != tt.want {
				t.Errorf("HasMoneyScale(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}
