package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRequestLog_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	log := s.RequestLog()
	ctx := t.Context()

	recs := []GenerationRecord{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz", InputTokens: 120, OutputTokens: 900, LatencyMs: 1500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz", LatencyMs: 40, Success: false, ErrorMessage: "model overloaded (HTTP 503): boom"},
	}
	for _, rec := range recs {
		if err := log.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := log.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	// Newest first.
	if got[0].Success || got[0].ErrorMessage == "" {
		t.Errorf("expected newest record to be the failure, got %+v", got[0])
	}
	if !got[1].Success || got[1].OutputTokens != 900 {
		t.Errorf("expected oldest record to be the success, got %+v", got[1])
	}
	if got[0].ID <= got[1].ID {
		t.Errorf("expected descending IDs, got %d then %d", got[0].ID, got[1].ID)
	}
}

func TestRequestLog_RecentLimit(t *testing.T) {
	s := openTestStore(t)
	log := s.RequestLog()
	ctx := t.Context()

	for range 5 {
		if err := log.Append(ctx, GenerationRecord{Provider: "mock", Model: "mock", Purpose: "quiz", Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := log.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
}

func TestRequestLog_EmptyLog(t *testing.T) {
	s := openTestStore(t)

	got, err := s.RequestLog().Recent(t.Context(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}
