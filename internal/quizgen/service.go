package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/avishek/quizy/internal/llm"
)

// RawQuiz is the uninterpreted generation result for a role.
// Parsing into questions happens on the consuming side.
type RawQuiz struct {
	Text string
	Role string
}

// Service generates quiz text for a role using an LLM provider.
// The provider is expected to already carry the retry decorator.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      logrus.FieldLogger
}

// NewService creates a quiz generation service.
func NewService(provider llm.Provider, cfg Config, log logrus.FieldLogger) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		log:      log,
	}
}

// Generate requests a quiz for the given role and returns the raw text.
// The role must be non-blank; it is trimmed before use.
func (s *Service) Generate(ctx context.Context, role string) (*RawQuiz, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("role is required")
	}

	ctx = llm.WithPurpose(ctx, "quiz")

	log := s.log.WithFields(logrus.Fields{
		"role":  role,
		"model": s.provider.ModelID(),
	})
	log.Info("sending quiz prompt")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      BuildPrompt(role, s.cfg.QuestionCount),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		log.WithError(err).Error("quiz generation failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"output_tokens": resp.Usage.OutputTokens,
		"stop_reason":   resp.StopReason,
	}).Info("quiz generated")

	return &RawQuiz{Text: resp.Text, Role: role}, nil
}
