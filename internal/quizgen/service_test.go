package quizgen

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/avishek/quizy/internal/llm"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "1. Question: ..."})
	svc := NewService(mock, DefaultConfig(), testLogger())

	raw, err := svc.Generate(t.Context(), "  backend developer ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Text != "1. Question: ..." {
		t.Errorf("unexpected text: %q", raw.Text)
	}
	if raw.Role != "backend developer" {
		t.Errorf("expected trimmed role, got %q", raw.Role)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !strings.Contains(req.Prompt, "about backend developer") {
		t.Errorf("prompt missing role: %q", req.Prompt)
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("expected configured max tokens, got %d", req.MaxTokens)
	}
}

func TestService_BlankRoleNeverInvokesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "unused"})
	svc := NewService(mock, DefaultConfig(), testLogger())

	for _, role := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Generate(t.Context(), role); err == nil {
			t.Errorf("expected error for blank role %q", role)
		}
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestService_ErrorPassthrough(t *testing.T) {
	upstream := &llm.ErrUpstream{Status: 400, Err: errors.New("prompt rejected")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: upstream})
	svc := NewService(mock, DefaultConfig(), testLogger())

	_, err := svc.Generate(t.Context(), "devops engineer")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error unchanged, got %v", err)
	}
}
