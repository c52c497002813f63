package home

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avishek/quizy/internal/quiz"
	"github.com/avishek/quizy/internal/quizgen"
	"github.com/avishek/quizy/internal/router"
	"github.com/avishek/quizy/internal/screen"
	"github.com/avishek/quizy/internal/screens/attempt"
	"github.com/avishek/quizy/internal/ui/components"
	"github.com/avishek/quizy/internal/ui/layout"
	"github.com/avishek/quizy/internal/ui/theme"
)

const spinInterval = 100 * time.Millisecond

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// quizReadyMsg is sent when quiz generation and parsing completes.
type quizReadyMsg struct {
	Questions []quiz.Question
	Role      string
	Err       error
}

// spinTickMsg animates the loading spinner while a quiz is generating.
type spinTickMsg time.Time

// HomeScreen asks for a job role and kicks off quiz generation.
type HomeScreen struct {
	svc    *quizgen.Service
	input  components.RoleInput
	busy   bool
	spin   int
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc *quizgen.Service) *HomeScreen {
	return &HomeScreen{
		svc:   svc,
		input: components.NewRoleInput("e.g. Backend Developer", 60),
	}
}

func (h *HomeScreen) Title() string {
	return "New Quiz"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.busy {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinTickMsg:
		if !h.busy {
			return h, nil
		}
		h.spin++
		return h, spinTick()

	case quizReadyMsg:
		h.busy = false
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		// A reset lands back here with a clean slate: the previous
		// role must not linger in the input.
		h.input.Reset()
		next := attempt.New(msg.Questions, msg.Role)
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if h.busy {
			return h, nil
		}
		if msg.String() == "enter" {
			return h, h.submit()
		}
		h.errMsg = ""
	}

	if h.busy {
		return h, nil
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HomeScreen) submit() tea.Cmd {
	role := h.input.Value()
	if role == "" {
		h.errMsg = "Please enter a role"
		return nil
	}

	h.busy = true
	h.errMsg = ""
	return tea.Batch(h.generate(role), spinTick())
}

// generate calls the generation service and parses the response off the
// UI goroutine.
func (h *HomeScreen) generate(role string) tea.Cmd {
	return func() tea.Msg {
		raw, err := h.svc.Generate(context.Background(), role)
		if err != nil {
			return quizReadyMsg{Err: err}
		}

		questions, err := quiz.Parse(raw.Text)
		if err != nil {
			return quizReadyMsg{Err: err}
		}

		return quizReadyMsg{Questions: questions, Role: raw.Role}
	}
}

func spinTick() tea.Cmd {
	return tea.Tick(spinInterval, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("Interview Quiz Generator"),
		"",
		theme.Body.Render("What role are you preparing for?"),
		"",
	)

	if h.busy {
		frame := spinFrames[h.spin%len(spinFrames)]
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame+" Generating your quiz..."),
			"",
			theme.Hint.Render("This usually takes a few seconds."),
		)
	} else {
		sections = append(sections, h.input.View())
	}

	if h.errMsg != "" {
		sections = append(sections, "", theme.ErrorBanner.Render(h.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return layout.Center(theme.Card.Render(content), width, height)
}
