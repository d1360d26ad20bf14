package poll

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/utilkit/pkg/async"
	"github.com/dmitrymomot/utilkit/pkg/logger"
)

// Condition reports whether the awaited state has been reached.
type Condition func() bool

var errNotReady = errors.New("poll: condition not met")

// Wait checks cond immediately and then once per interval until it holds.
// It returns ErrTimeout when the timeout elapses first and ctx.Err() when ctx
// is done first. A nil cond is treated as always satisfied.
func Wait(ctx context.Context, cond Condition, opts ...Option) error {
	_, err := wait(ctx, cond, newConfig(opts))
	return err
}

func wait(ctx context.Context, cond Condition, cfg config) (int, error) {
	if cond == nil {
		return 0, nil
	}
	if cfg.interval <= 0 {
		return 0, ErrInvalidInterval
	}

	attempts := 0
	backoff := retry.WithMaxDuration(cfg.timeout, retry.NewConstant(cfg.interval))
	err := retry.Do(ctx, backoff, func(context.Context) error {
		attempts++
		if cond() {
			return nil
		}
		return retry.RetryableError(errNotReady)
	})

	if errors.Is(err, errNotReady) {
		return attempts, ErrTimeout
	}
	return attempts, err
}

// Delay runs fn once cond holds, without blocking the caller. The condition is
// polled as in Wait; when it never holds, fn is not called and the failure is
// logged. The returned Future completes after fn returns or polling stops, with
// the same error Wait would return.
func Delay(ctx context.Context, fn func(), cond Condition, opts ...Option) *async.Future[struct{}] {
	cfg := newConfig(opts)

	return async.Go(ctx, func(ctx context.Context) (struct{}, error) {
		start := time.Now()
		attempts, err := wait(ctx, cond, cfg)
		if err != nil {
			cfg.logger.ErrorContext(ctx, "condition not met, callback skipped",
				logger.Component("poll"),
				logger.Attempts(attempts),
				logger.Duration(time.Since(start)),
				logger.Timeout(cfg.timeout),
				logger.Error(err),
			)
			return struct{}{}, err
		}

		cfg.logger.DebugContext(ctx, "condition met",
			logger.Component("poll"),
			logger.Attempts(attempts),
			logger.Duration(time.Since(start)),
		)
		if fn != nil {
			fn()
		}
		return struct{}{}, nil
	})
}
