package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrOverloaded indicates the provider reported transient overload
// (HTTP 503, or Anthropic's 529). This is the only error class the
// retry decorator retries.
type ErrOverloaded struct {
	Status int
	Err    error
}

func (e *ErrOverloaded) Error() string {
	return fmt.Sprintf("model overloaded (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrOverloaded) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
// Rate limits are surfaced, not retried.
type ErrRateLimit struct {
	Status     int
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUpstream wraps any other provider API error, preserving the upstream
// HTTP status so the serving layer can propagate it.
type ErrUpstream struct {
	Status int
	Err    error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("generation failed (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrUpstream) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider returned no text content.
type ErrEmptyResponse struct {
	Err error
}

func (e *ErrEmptyResponse) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("empty LLM response: %v", e.Err)
	}
	return "empty LLM response"
}

func (e *ErrEmptyResponse) Unwrap() error { return e.Err }

// HTTPStatus recovers the upstream HTTP status carried by a provider error.
// Returns (0, false) when the error carries no status.
func HTTPStatus(err error) (int, bool) {
	var over *ErrOverloaded
	if errors.As(err, &over) {
		return over.Status, true
	}
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return rl.Status, true
	}
	var up *ErrUpstream
	if errors.As(err, &up) {
		return up.Status, true
	}
	return 0, false
}
