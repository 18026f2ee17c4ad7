package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:account:"

// RedisLocker implements Locker on top of Redis using the RedLock algorithm.
// The lock is visible to every process sharing the Redis instance, which is
// what serializes balance mutations across replicas of this service.
type RedisLocker struct {
	rs     *redsync.Redsync
	opts   Options
	logger *slog.Logger
}

// NewRedisLocker creates a RedisLocker with the given acquisition options.
func NewRedisLocker(client redis.UniversalClient, opts Options, logger *slog.Logger) (*RedisLocker, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lock options: %w", err)
	}

	pool := goredis.NewPool(client)

	return &RedisLocker{
		rs:     redsync.New(pool),
		opts:   opts,
		logger: logger,
	}, nil
}

// Make sure we conform to the interface
var _ Locker = (*RedisLocker)(nil)

// WithLock acquires the per-account lock, runs fn, and releases the lock on
// every exit path. A release failure is logged but never overrides the error
// already in flight; a leaked lock self-heals when its expiry lapses.
func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	mutex := l.rs.NewMutex(
		keyPrefix+key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
		redsync.WithDriftFactor(l.opts.DriftFactor),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &redsync.ErrTaken{}) {
			l.logger.DebugContext(ctx, "lock held by another transaction", "key", key)
			return fmt.Errorf("%w: %s", ErrLockUnavailable, key)
		}
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	defer func() {
		if ok, err := mutex.UnlockContext(ctx); !ok || err != nil {
			l.logger.ErrorContext(ctx, "failed to release lock", "key", key, "unlock_ok", ok, "error", err)
		}
	}()

	return fn(ctx)
}
