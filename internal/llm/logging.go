package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avishek/quizy/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// generation log.
type LoggingProvider struct {
	inner Provider
	name  string
	log   store.RequestLog
}

// WithLogging wraps a Provider with generation-log recording.
// name is the provider name recorded alongside the model.
func WithLogging(p Provider, name string, log store.RequestLog) Provider {
	return &LoggingProvider{inner: p, name: name, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.GenerationRecord{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Record the request but never fail it on a logging error.
	if logErr := l.log.Append(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record generation request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
