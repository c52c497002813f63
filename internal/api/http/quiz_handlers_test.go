package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/avishek/quizy/internal/llm"
	"github.com/avishek/quizy/internal/quizgen"
)

type stubGenerator struct {
	raw   *quizgen.RawQuiz
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, role string) (*quizgen.RawQuiz, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateQuiz_Success(t *testing.T) {
	gen := &stubGenerator{raw: &quizgen.RawQuiz{Text: "1. Question: ...", Role: "frontend developer"}}
	rec := post(t, GenerateQuizHandler(gen, testLogger()), `{"role":"frontend developer"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Text string `json:"text"`
			Role string `json:"role"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.Data.Text != "1. Question: ..." || resp.Data.Role != "frontend developer" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestGenerateQuiz_MissingRole(t *testing.T) {
	for _, body := range []string{`{}`, `{"role":""}`, `{"role":"   "}`, `not json`} {
		gen := &stubGenerator{raw: &quizgen.RawQuiz{}}
		rec := post(t, GenerateQuizHandler(gen, testLogger()), body)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
		if gen.calls != 0 {
			t.Errorf("body %q: generation must not be invoked", body)
		}

		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Message != "Role is required" {
			t.Errorf("body %q: unexpected message %q", body, resp.Message)
		}
	}
}

func TestGenerateQuiz_UpstreamStatusPropagated(t *testing.T) {
	gen := &stubGenerator{err: &llm.ErrOverloaded{Status: 503, Err: errors.New("overloaded")}}
	rec := post(t, GenerateQuizHandler(gen, testLogger()), `{"role":"sysadmin"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Error("expected success false")
	}
	if !strings.Contains(resp.Error, "overloaded") {
		t.Errorf("expected upstream message preserved, got %q", resp.Error)
	}
}

func TestGenerateQuiz_UnknownErrorIs500(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	rec := post(t, GenerateQuizHandler(gen, testLogger()), `{"role":"sysadmin"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
