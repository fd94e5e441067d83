package mock

import (
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var sharedRedis *Redis

// Redis is the lease store shared by the scenarios of a run.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts miniredis on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		sharedRedis = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return sharedRedis
}

// Clear drops every lease.
func (r *Redis) Clear() {
	r.Server.FlushAll()
}

// HoldLease stores a lease on key for ttl as if another process owned it.
func (r *Redis) HoldLease(key string, ttl time.Duration) error {
	if err := r.Server.Set(key, "another-process"); err != nil {
		return err
	}
	r.Server.SetTTL(key, ttl)
	return nil
}
