// README: Per-(caller, scope) minimum-interval gate over a pluggable ledger.
package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"motorpool/internal/types"
)

const (
	// ScopeFleet is the rate-limit scope covering the whole-fleet endpoint.
	// It is independent of every per-car scope.
	ScopeFleet = "fleet"

	redisLimitKeyPrefix = "tracking:poll:%s"
)

// ScopeCar returns the rate-limit scope for a single car.
func ScopeCar(id types.ID) string {
	return "car:" + string(id)
}

// Ledger records the last accepted request per partition key. Admit must be
// atomic per key: of two simultaneous requests inside one interval, only one
// may pass. Distinct keys never contend.
type Ledger interface {
	Admit(ctx context.Context, key string, now time.Time, minInterval time.Duration) (bool, error)
}

// MemoryLedger is the in-process ledger, a mutex-guarded map. Entries are
// overwritten on every accepted request; nothing expires them explicitly,
// the passage of time supersedes them.
type MemoryLedger struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{last: map[string]time.Time{}}
}

func (l *MemoryLedger) Admit(_ context.Context, key string, now time.Time, minInterval time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prev, ok := l.last[key]; ok && now.Sub(prev) < minInterval {
		return false, nil
	}
	l.last[key] = now
	return true, nil
}

// RedisLedger shares the ledger across service instances. SET NX with a PX
// expiry is the whole check-and-set: the key exists for exactly one interval
// after an accepted request.
type RedisLedger struct {
	redis *redis.Client
}

func NewRedisLedger(redis *redis.Client) *RedisLedger {
	return &RedisLedger{redis: redis}
}

func (l *RedisLedger) Admit(ctx context.Context, key string, now time.Time, minInterval time.Duration) (bool, error) {
	return l.redis.SetNX(ctx, fmt.Sprintf(redisLimitKeyPrefix, key), now.UnixMilli(), minInterval).Result()
}

// Limiter gates provider polling per (caller, scope) pair.
type Limiter struct {
	ledger   Ledger
	interval time.Duration
}

func NewLimiter(ledger Ledger, interval time.Duration) *Limiter {
	return &Limiter{ledger: ledger, interval: interval}
}

func (l *Limiter) Admit(ctx context.Context, callerID, scope string, now time.Time) (bool, error) {
	return l.ledger.Admit(ctx, callerID+"|"+scope, now, l.interval)
}

// PollAfterSeconds is how long callers are told to wait before polling again.
func (l *Limiter) PollAfterSeconds() int {
	return int(l.interval / time.Second)
}
