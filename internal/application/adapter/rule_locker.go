package adapter

import (
	"context"

	"github.com/google/uuid"
)

// RuleLocker grants short exclusive leases on recurring rules so that two
// schedulers never execute the same rule concurrently.
type RuleLocker interface {
	// Acquire tries to take the lease. It returns false when another holder has it.
	Acquire(ctx context.Context, ruleID uuid.UUID) (release func(), acquired bool, err error)
}
