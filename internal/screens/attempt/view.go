package attempt

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avishek/quizy/internal/quiz"
	"github.com/avishek/quizy/internal/ui/components"
	"github.com/avishek/quizy/internal/ui/layout"
	"github.com/avishek/quizy/internal/ui/theme"
)

func (s *AttemptScreen) View(width, height int) string {
	switch s.attempt.Phase() {
	case quiz.PhaseScored:
		return s.renderResults(width, height)
	case quiz.PhaseReviewing:
		return s.renderReview(width, height)
	default:
		return s.renderAnswering(width, height)
	}
}

func (s *AttemptScreen) renderAnswering(width, height int) string {
	questions := s.attempt.Questions()
	q := questions[s.current]

	var b strings.Builder

	barWidth := min(width-8, 50)
	progress := components.NewQuizProgress(s.attempt.Answered(), len(questions), barWidth)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.current+1, len(questions))))
	b.WriteString("\n\n")

	list := components.NewOptionList(q)
	list.Cursor = s.cursor
	if picked, ok := s.attempt.Answer(s.current); ok {
		list.Picked = picked
	}
	b.WriteString(list.View())

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorBanner.Render(s.errMsg))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}

func (s *AttemptScreen) renderResults(width, height int) string {
	total := len(s.attempt.Questions())
	score := s.attempt.Score()
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(score) / float64(total) * 100))
	}

	scoreStyle := theme.Correct
	if percent < 50 {
		scoreStyle = theme.Incorrect
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Quiz Complete!"),
		"",
		scoreStyle.Render(fmt.Sprintf("%d / %d correct", score, total)),
		theme.Subtitle.Render(fmt.Sprintf("%d%%", percent)),
		"",
		theme.Hint.Render("R to review your answers, N for a new quiz"),
	)

	return layout.Center(theme.Card.Render(content), width, height)
}

func (s *AttemptScreen) renderReview(width, height int) string {
	questions := s.attempt.Questions()
	q := questions[s.current]

	verdicts := make(map[string]quiz.Verdict, len(quiz.Letters))
	for _, letter := range quiz.Letters {
		verdicts[letter] = s.attempt.OptionVerdict(s.current, letter)
	}

	picked, _ := s.attempt.Answer(s.current)
	list := components.NewReviewList(q, picked, verdicts)

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.current+1, len(questions))))
	b.WriteString("\n\n")
	b.WriteString(list.View())
	b.WriteString("\n")

	if verdicts[picked] == quiz.VerdictCorrect {
		b.WriteString(theme.Correct.Render("You got this one right."))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}
