package attempt

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/avishek/quizy/internal/quiz"
	"github.com/avishek/quizy/internal/router"
	"github.com/avishek/quizy/internal/screen"
	"github.com/avishek/quizy/internal/ui/layout"
)

// AttemptScreen drives a quiz attempt through answering, results and review.
type AttemptScreen struct {
	attempt *quiz.Attempt
	role    string
	current int
	cursor  int
	errMsg  string
}

var _ screen.Screen = (*AttemptScreen)(nil)
var _ screen.KeyHintProvider = (*AttemptScreen)(nil)
var _ screen.RoleProvider = (*AttemptScreen)(nil)

// New creates an attempt screen over a freshly parsed quiz.
func New(questions []quiz.Question, role string) *AttemptScreen {
	a := quiz.NewAttempt()
	// Load only fails on an empty slice or a non-idle attempt; the parser
	// already guarantees at least one question here.
	if err := a.Load(questions); err != nil {
		return &AttemptScreen{attempt: a, role: role, errMsg: err.Error()}
	}
	return &AttemptScreen{attempt: a, role: role}
}

func (s *AttemptScreen) Title() string {
	switch s.attempt.Phase() {
	case quiz.PhaseScored:
		return "Results"
	case quiz.PhaseReviewing:
		return "Review"
	default:
		return "Quiz"
	}
}

func (s *AttemptScreen) Role() string {
	return s.role
}

func (s *AttemptScreen) Init() tea.Cmd {
	return nil
}

func (s *AttemptScreen) KeyHints() []layout.KeyHint {
	switch s.attempt.Phase() {
	case quiz.PhaseScored:
		return []layout.KeyHint{
			{Key: "R", Description: "Review answers"},
			{Key: "N", Description: "New quiz"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case quiz.PhaseReviewing:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "B", Description: "Back to results"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Select"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *AttemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.attempt.Phase() {
	case quiz.PhaseAnswering:
		return s.updateAnswering(kmsg)
	case quiz.PhaseScored:
		return s.updateScored(kmsg)
	case quiz.PhaseReviewing:
		return s.updateReviewing(kmsg)
	}
	return s, nil
}

func (s *AttemptScreen) updateAnswering(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(quiz.Letters)-1 {
			s.cursor++
		}
	case "enter":
		letter := quiz.Letters[s.cursor]
		if err := s.attempt.Select(s.current, letter); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.advance()
	case "left", "h":
		s.move(-1)
	case "right", "l":
		s.move(1)
	case "s":
		if err := s.attempt.Submit(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.errMsg = ""
	}
	return s, nil
}

func (s *AttemptScreen) updateScored(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		if err := s.attempt.Review(); err == nil {
			s.current = 0
		}
	case "n":
		s.attempt.Reset()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *AttemptScreen) updateReviewing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.move(-1)
	case "right", "l":
		s.move(1)
	case "b":
		if err := s.attempt.BackToResults(); err == nil {
			s.current = 0
		}
	}
	return s, nil
}

// move shifts the current question by delta, clamped to the quiz bounds.
func (s *AttemptScreen) move(delta int) {
	n := len(s.attempt.Questions())
	next := s.current + delta
	if next < 0 || next >= n {
		return
	}
	s.current = next
	s.syncCursor()
}

// advance jumps to the next unanswered question, or the next question
// when everything after the current one is already answered.
func (s *AttemptScreen) advance() {
	n := len(s.attempt.Questions())
	for i := 1; i <= n; i++ {
		idx := (s.current + i) % n
		if _, ok := s.attempt.Answer(idx); !ok {
			s.current = idx
			s.syncCursor()
			return
		}
	}
	if s.current < n-1 {
		s.current++
		s.syncCursor()
	}
}

// syncCursor places the cursor on the saved answer for the current
// question, or the first option when unanswered.
func (s *AttemptScreen) syncCursor() {
	s.cursor = 0
	if letter, ok := s.attempt.Answer(s.current); ok {
		if i := slices.Index(quiz.Letters, letter); i >= 0 {
			s.cursor = i
		}
	}
}
