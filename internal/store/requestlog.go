package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GenerationRecord captures one LLM generation request.
type GenerationRecord struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLog records LLM generation requests.
type RequestLog interface {
	// Append stores a new record.
	Append(ctx context.Context, rec GenerationRecord) error

	// Recent returns the most recent n records, newest first.
	Recent(ctx context.Context, n int) ([]GenerationRecord, error)
}

type sqlRequestLog struct {
	db *sql.DB
}

func (l *sqlRequestLog) Append(ctx context.Context, rec GenerationRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx, `
INSERT INTO generation_log
	(created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt,
		rec.Provider,
		rec.Model,
		rec.Purpose,
		rec.InputTokens,
		rec.OutputTokens,
		rec.LatencyMs,
		rec.Success,
		rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert generation record: %w", err)
	}
	return nil
}

func (l *sqlRequestLog) Recent(ctx context.Context, n int) ([]GenerationRecord, error) {
	rows, err := l.db.QueryContext(ctx, `
SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
FROM generation_log
ORDER BY id DESC
LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query generation log: %w", err)
	}
	defer rows.Close()

	var recs []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.CreatedAt,
			&rec.Provider,
			&rec.Model,
			&rec.Purpose,
			&rec.InputTokens,
			&rec.OutputTokens,
			&rec.LatencyMs,
			&rec.Success,
			&rec.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan generation record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
