package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run-due",
		Short: "Run every due recurring rule once and exit",
		Long: `Materializes each active recurring rule whose next run date has arrived.

Every rule fires at most once per pass. The command exits non-zero when the
batch could not list rules or any rule failed.`,
		Args: cobra.NoArgs,
		RunE: runDue,
	}
}

func runDue(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, err := openLedger(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer l.Close()

	summary, err := l.injector.RunDueRules.Execute(ctx)
	if summary != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "executed=%d exhausted=%d skipped=%d failed=%d\n",
			summary.Executed, summary.Exhausted, summary.Skipped, summary.Failed)
	}
	if err != nil {
		return fmt.Errorf("recurring rule batch failed: %w", err)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d recurring rule(s) failed", summary.Failed)
	}
	return nil
}
