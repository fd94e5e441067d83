package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

// RunDueRulesUseCase fires every due rule of every user once.
// A failing rule is logged and counted without stopping the batch.
type RunDueRulesUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
	executor *ExecuteRuleUseCase
	locker   adapter.RuleLocker
	clock    adapter.Clock
}

// NewRunDueRulesUseCase creates a new RunDueRulesUseCase instance.
// locker may be nil when only one scheduler runs.
func NewRunDueRulesUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	executor *ExecuteRuleUseCase,
	locker adapter.RuleLocker,
	clock adapter.Clock,
) *RunDueRulesUseCase {
	return &RunDueRulesUseCase{
		ruleRepo: ruleRepo,
		executor: executor,
		locker:   locker,
		clock:    clock,
	}
}

// Execute runs the batch and reports what happened to each due rule.
func (uc *RunDueRulesUseCase) Execute(ctx context.Context) (*entity.RunSummary, error) {
	now := uc.clock.Now()

	rules, err := uc.ruleRepo.FindDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due recurring rules: %w", err)
	}

	summary := &entity.RunSummary{}
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		// Past its end date without having been deactivated yet
		if !IsDue(rule, now) {
			summary.Skipped++
			continue
		}

		release := func() {}
		if uc.locker != nil {
			unlock, acquired, err := uc.locker.Acquire(ctx, rule.ID)
			if err != nil {
				slog.Error("Failed to acquire recurring rule lease", "error", err, "ruleID", rule.ID)
				summary.Failed++
				continue
			}
			if !acquired {
				slog.Debug("Recurring rule leased by another scheduler", "ruleID", rule.ID)
				summary.Skipped++
				continue
			}
			release = unlock
		}

		output, err := uc.executor.fire(ctx, rule.ID, now)
		release()

		if err != nil {
			if errors.Is(err, domainerror.ErrRuleNotDue) {
				summary.Skipped++
				continue
			}
			slog.Error("Failed to execute recurring rule", "error", err, "ruleID", rule.ID, "userID", rule.UserID)
			summary.Failed++
			continue
		}

		summary.Executed++
		if output.Exhausted {
			summary.Exhausted++
		}
		slog.Info("Executed recurring rule",
			"ruleID", rule.ID,
			"userID", rule.UserID,
			"transactionID", output.Transaction.ID,
			"nextRunDate", output.Rule.NextRunDate.Format("2006-01-02"),
			"exhausted", output.Exhausted,
		)
	}

	return summary, nil
}
