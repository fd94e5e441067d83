// Package recurring contains recurring rule use cases and the scheduling rules
// that decide when a rule fires next.
package recurring

import (
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// IsDue reports whether rule should fire on the calendar day of now.
func IsDue(rule *entity.RecurringRule, now time.Time) bool {
	if !rule.IsActive {
		return false
	}
	if rule.NextRunDate.After(entity.DateOf(now)) {
		return false
	}
	return rule.EndDate == nil || !rule.NextRunDate.After(*rule.EndDate)
}

// NextOccurrence returns the run that follows date for the given frequency.
// Monthly runs keep the day of month, clamped to the last day of shorter months.
func NextOccurrence(date time.Time, frequency entity.Frequency) (time.Time, error) {
	date = entity.DateOf(date)

	switch frequency {
	case entity.FrequencyDaily:
		return date.AddDate(0, 0, 1), nil
	case entity.FrequencyWeekly:
		return date.AddDate(0, 0, 7), nil
	case entity.FrequencyMonthly:
		return addMonth(date), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domainerror.ErrInvalidFrequency, frequency)
	}
}

func addMonth(date time.Time) time.Time {
	year, month, day := date.Date()
	first := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)

	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the month of t.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Advance moves rule to its next run. When that run would fall after the end
// date the rule is deactivated instead and its next run date is left as is.
func Advance(rule *entity.RecurringRule) (exhausted bool, err error) {
	next, err := NextOccurrence(rule.NextRunDate, rule.Frequency)
	if err != nil {
		return false, err
	}

	if rule.EndDate != nil && next.After(*rule.EndDate) {
		rule.IsActive = false
		return true, nil
	}
	rule.NextRunDate = next
	return false, nil
}

// noteFor builds the note of a transaction produced by rule.
func noteFor(rule *entity.RecurringRule) string {
	var note string
	if rule.Note != nil {
		note = *rule.Note
	}
	return strings.TrimSpace(note + entity.RecurringNoteSuffix)
}
