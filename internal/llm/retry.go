package llm

import (
	"context"
	"errors"
	"time"
)

// RetryConfig configures retry behavior for overloaded providers.
type RetryConfig struct {
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int

	// Delay is the fixed wait between attempts.
	Delay time.Duration
}

// RetryProvider is a decorator that retries overload errors.
// Retries are sequential, with a fixed delay, bounded by MaxRetries.
// Every other error class passes through unchanged.
type RetryProvider struct {
	inner  Provider
	config RetryConfig

	// sleep waits for d or until ctx is done. Replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) *RetryProvider {
	return &RetryProvider{
		inner:  p,
		config: cfg,
		sleep:  sleepCtx,
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := r.config.MaxRetries + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var over *ErrOverloaded
		if !errors.As(err, &over) {
			return nil, err
		}

		// Last attempt: surface the overload error as-is.
		if attempt == attempts-1 {
			break
		}

		if err := r.sleep(ctx, r.config.Delay); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
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
