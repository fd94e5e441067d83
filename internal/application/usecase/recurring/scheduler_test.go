package recurring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

func date(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr(t time.Time) *time.Time {
	return &t
}

func newRule(frequency entity.Frequency, nextRun string, end *time.Time) *entity.RecurringRule {
	rule := entity.NewRecurringRule(uuid.New(), uuid.New(), uuid.New(), entity.EntryTypeExpense, decimal.NewFromInt(10), frequency, date("2024-01-01"), end, nil)
	rule.NextRunDate = date(nextRun)
	return rule
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		frequency entity.Frequency
		want      string
	}{
		{"daily", "2025-02-28", entity.FrequencyDaily, "2025-03-01"},
		{"daily leap day", "2024-02-28", entity.FrequencyDaily, "2024-02-29"},
		{"weekly", "2025-12-29", entity.FrequencyWeekly, "2026-01-05"},
		{"monthly plain", "2025-01-15", entity.FrequencyMonthly, "2025-02-15"},
		{"monthly clamps jan 31", "2025-01-31", entity.FrequencyMonthly, "2025-02-28"},
		{"monthly clamps jan 31 leap year", "2024-01-31", entity.FrequencyMonthly, "2024-02-29"},
		{"monthly clamps to 30 days", "2025-03-31", entity.FrequencyMonthly, "2025-04-30"},
		{"monthly across year", "2025-12-31", entity.FrequencyMonthly, "2026-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(date(tt.from), tt.frequency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(date(tt.want)) {
				t.Errorf("NextOccurrence() = %s, want %s", got.Format(time.DateOnly), tt.want)
			}
		})
	}

	if _, err := NextOccurrence(date("2025-01-01"), "yearly"); err == nil {
		t.Error("expected an error for an unknown frequency")
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	inactive := newRule(entity.FrequencyDaily, "2025-03-01", nil)
	inactive.IsActive = false

	tests := []struct {
		name string
		rule *entity.RecurringRule
		want bool
	}{
		{"due today", newRule(entity.FrequencyDaily, "2025-03-10", nil), true},
		{"overdue", newRule(entity.FrequencyDaily, "2025-02-01", nil), true},
		{"tomorrow", newRule(entity.FrequencyDaily, "2025-03-11", nil), false},
		{"inactive", inactive, false},
		{"on end date", newRule(entity.FrequencyDaily, "2025-03-05", ptr(date("2025-03-05"))), true},
		{"past end date", newRule(entity.FrequencyDaily, "2025-03-06", ptr(date("2025-03-05"))), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(tt.rule, now); got != tt.want {
				t.Errorf("IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	t.Run("moves next run forward", func(t *testing.T) {
		rule := newRule(entity.FrequencyMonthly, "2025-01-31", nil)
		exhausted, err := Advance(rule)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exhausted || !rule.IsActive {
			t.Fatal("rule should stay active")
		}
		if !rule.NextRunDate.Equal(date("2025-02-28")) {
			t.Errorf("next run = %s, want 2025-02-28", rule.NextRunDate.Format(time.DateOnly))
		}
	})

	t.Run("exhausts past end date", func(t *testing.T) {
		rule := newRule(entity.FrequencyMonthly, "2025-02-15", ptr(date("2025-03-01")))
		exhausted, err := Advance(rule)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exhausted || rule.IsActive {
			t.Fatal("rule should be exhausted")
		}
		if !rule.NextRunDate.Equal(date("2025-02-15")) {
			t.Errorf("next run = %s, want it unchanged", rule.NextRunDate.Format(time.DateOnly))
		}
	})

	t.Run("landing on end date stays active", func(t *testing.T) {
		rule := newRule(entity.FrequencyWeekly, "2025-02-22", ptr(date("2025-03-01")))
		exhausted, _ := Advance(rule)
		if exhausted || !rule.NextRunDate.Equal(date("2025-03-01")) {
			t.Errorf("expected next run on the end date, got %s exhausted=%v", rule.NextRunDate.Format(time.DateOnly), exhausted)
		}
	})
}

func TestNoteFor(t *testing.T) {
	note := "Gym"
	withNote := newRule(entity.FrequencyMonthly, "2025-01-01", nil)
	withNote.Note = &note

	if got := noteFor(withNote); got != "Gym (Recurring)" {
		t.Errorf("noteFor() = %q", got)
	}
	if got := noteFor(newRule(entity.FrequencyMonthly, "2025-01-01", nil)); got != "(Recurring)" {
		t.Errorf("noteFor() without note = %q", got)
	}
}
