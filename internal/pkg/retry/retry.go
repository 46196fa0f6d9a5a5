// Package retry runs an operation again after errors the caller has
// declared transient, with exponential backoff between attempts.
package retry

import (
	"context"
	"time"
)

// Policy controls how many times an operation is re-run and how long to
// wait in between. Retryable selects the errors worth another attempt;
// everything else is returned immediately.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Multiplier float64

	Retryable func(error) bool

	// Sleep is swapped out in tests. Nil means real sleeping.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Default is tuned for uniqueness-constraint races between requests. Such
// races are rare, so a couple of quick retries keep the response time
// reasonable while still converting most conflicts into a clean outcome.
func Default(retryable func(error) bool) Policy {
	return Policy{
		MaxRetries: 2,
		BaseDelay:  50 * time.Millisecond,
		Multiplier: 2,
		Retryable:  retryable,
	}
}

// Do runs fn up to MaxRetries+1 times. It returns nil on the first success
// and the last error once attempts run out or a non-retryable error shows
// up. Waiting respects ctx, an abandoned request stops retrying.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	delay := p.BaseDelay
	var err error
	for attempt := 0; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= p.MaxRetries || p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if serr := sleep(ctx, delay); serr != nil {
			return serr
		}
		delay = time.Duration(float64(delay) * p.Multiplier)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
