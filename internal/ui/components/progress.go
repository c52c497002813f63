package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avishek/quizy/internal/ui/theme"
)

// QuizProgress displays how many questions have been answered.
type QuizProgress struct {
	Answered int
	Total    int
	Width    int
}

// NewQuizProgress creates a progress bar over a quiz attempt.
func NewQuizProgress(answered, total, width int) QuizProgress {
	return QuizProgress{Answered: answered, Total: total, Width: width}
}

// View renders the progress bar with an answered/total counter.
func (p QuizProgress) View() string {
	counter := fmt.Sprintf("  %d/%d", p.Answered, p.Total)

	barWidth := p.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Answered / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", empty))

	return bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
