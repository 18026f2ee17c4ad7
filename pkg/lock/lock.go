package lock

import (
	"context"
	"errors"
	"time"
)

// ErrLockUnavailable is returned when the bounded wait for a lock elapses
// without acquiring it. It is a contention signal, not a business error.
var ErrLockUnavailable = errors.New("lock unavailable")

// Locker grants scoped per-key mutual exclusion. The lock named by key is
// held for the duration of fn and released on every exit path, including
// panics in fn. At most one holder per key exists at any instant, across all
// processes sharing the same backing store.
type Locker interface {
	// WithLock acquires the lock named by key, runs fn, and releases the
	// lock. Acquisition failure after the bounded wait returns
	// ErrLockUnavailable with fn never having run.
	WithLock(ctx context.Context, key string, fn func(context.Context) error) error
}

// Options configures lock acquisition behavior.
type Options struct {
	// Expiry is how long a held lock lives before auto-expiring. Prevents a
	// crashed holder from blocking the key forever.
	Expiry time.Duration

	// Tries bounds the acquisition wait: the lock is attempted this many
	// times before giving up with ErrLockUnavailable.
	Tries int

	// RetryDelay is the pause between acquisition attempts.
	RetryDelay time.Duration

	// DriftFactor accounts for clock drift across Redis nodes.
	DriftFactor float64
}

// DefaultOptions returns acquisition settings suited to operations that
// complete within a few seconds of store round trips.
func DefaultOptions() Options {
	return Options{
		Expiry:      10 * time.Second,
		Tries:       10,
		RetryDelay:  500 * time.Millisecond,
		DriftFactor: 0.01,
	}
}

// Validate checks that the options describe a usable lock configuration.
func (o Options) Validate() error {
	if o.Expiry <= 0 {
		return errors.New("lock expiry must be positive")
	}
	if o.Tries < 1 {
		return errors.New("lock tries must be at least 1")
	}
	if o.RetryDelay < 0 {
		return errors.New("lock retry delay cannot be negative")
	}
	if o.DriftFactor < 0 || o.DriftFactor >= 1 {
		return errors.New("lock drift factor must be in [0, 1)")
	}
	return nil
}
