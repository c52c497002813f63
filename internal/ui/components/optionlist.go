package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/avishek/quizy/internal/quiz"
	"github.com/avishek/quizy/internal/ui/theme"
)

// OptionList renders a question's lettered options. In answering mode it
// highlights the cursor and the saved pick; in review mode it colors each
// option by its verdict.
type OptionList struct {
	Question quiz.Question
	Cursor   int
	Picked   string
	Review   bool
	Verdicts map[string]quiz.Verdict
}

// NewOptionList creates an option list for answering a question.
func NewOptionList(q quiz.Question) OptionList {
	return OptionList{Question: q, Cursor: 0}
}

// NewReviewList creates an option list showing review verdicts.
func NewReviewList(q quiz.Question, picked string, verdicts map[string]quiz.Verdict) OptionList {
	return OptionList{Question: q, Picked: picked, Review: true, Verdicts: verdicts}
}

// View renders the question stem and its options.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Question.Text) + "\n\n"

	for i, letter := range quiz.Letters {
		line := fmt.Sprintf("%s)  %s", letter, o.Question.Options[letter])

		if o.Review {
			s += o.renderReviewLine(letter, line) + "\n"
			continue
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		line = prefix + line

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case letter == o.Picked:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

func (o OptionList) renderReviewLine(letter, line string) string {
	marker := "  "
	if letter == o.Picked {
		marker = "▸ "
	}
	line = marker + line

	switch o.Verdicts[letter] {
	case quiz.VerdictCorrect:
		return theme.Correct.Render(line + "  ✓")
	case quiz.VerdictWrongPick:
		return theme.Incorrect.Render(line + "  ✗")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	}
}
