package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestRedisLocker_Exclusive(t *testing.T) {
	_, client := newTestClient(t)
	locker := NewRedisLocker(client, time.Minute)
	ctx := context.Background()
	ruleID := uuid.New()

	release, ok, err := locker.Acquire(ctx, ruleID)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.Acquire(ctx, ruleID)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	_, ok, err = locker.Acquire(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok, "other rules are independent")

	release()
	_, ok, err = locker.Acquire(ctx, ruleID)
	require.NoError(t, err)
	assert.True(t, ok, "lease is free after release")
}

func TestRedisLocker_ExpiredLeaseIsNotReleasedByOldHolder(t *testing.T) {
	server, client := newTestClient(t)
	locker := NewRedisLocker(client, time.Second)
	ctx := context.Background()
	ruleID := uuid.New()

	staleRelease, ok, err := locker.Acquire(ctx, ruleID)
	require.NoError(t, err)
	require.True(t, ok)

	server.FastForward(2 * time.Second)

	_, ok, err = locker.Acquire(ctx, ruleID)
	require.NoError(t, err)
	require.True(t, ok, "expired lease can be taken over")

	staleRelease()
	assert.True(t, server.Exists(keyPrefix+ruleID.String()), "new holder keeps its lease")
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+server.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestHealthChecker(t *testing.T) {
	server, client := newTestClient(t)
	check := HealthChecker(client)

	assert.True(t, check())

	server.Close()
	assert.False(t, check())
}
