//go:build integration

// Package integration runs the ledger feature files against the HTTP API.
package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/finance-tracker/bookkeeping/test/integration/steps"
)

func featureOptions(t *testing.T) *godog.Options {
	opts := &godog.Options{
		Format:   "pretty",
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		TestingT: t,
		// Scenarios share one database and one clock.
		Concurrency: 1,
	}

	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}
	// GODOG_FEATURES narrows the run, e.g. "features/transfers.feature".
	if paths := os.Getenv("GODOG_FEATURES"); paths != "" {
		opts.Paths = strings.Split(paths, ",")
	}
	return opts
}

func TestLedgerFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "bookkeeping-ledger",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              featureOptions(t),
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature suite exited with status %d", status)
	}
}
