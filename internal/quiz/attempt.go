package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Phase is the lifecycle phase of a quiz attempt. Exactly one phase is
// active at a time; there are no independent view flags to fall out of
// sync.
type Phase int

const (
	// PhaseIdle: no questions loaded.
	PhaseIdle Phase = iota
	// PhaseAnswering: questions loaded, user selecting options.
	PhaseAnswering
	// PhaseScored: all questions answered and submitted, score computed.
	PhaseScored
	// PhaseReviewing: inspecting per-question correctness.
	PhaseReviewing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnswering:
		return "answering"
	case PhaseScored:
		return "scored"
	case PhaseReviewing:
		return "reviewing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	// ErrEmptyQuiz rejects loading a quiz with no questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")

	// ErrIncomplete rejects submission before every question is answered.
	ErrIncomplete = errors.New("answer all questions before submitting")
)

// Verdict classifies one option of one question for the review view.
type Verdict int

const (
	// VerdictNeutral: not the correct answer, not the user's pick.
	VerdictNeutral Verdict = iota
	// VerdictCorrect: the correct answer letter.
	VerdictCorrect
	// VerdictWrongPick: the user's selection, and it differs from the answer.
	VerdictWrongPick
)

// Attempt is one in-memory quiz attempt from load through scoring and
// review. It is not safe for concurrent use; each session owns its own.
type Attempt struct {
	id        string
	phase     Phase
	questions []Question
	answers   map[int]string
	score     int
}

// NewAttempt creates an idle attempt with no questions loaded.
func NewAttempt() *Attempt {
	return &Attempt{
		id:    uuid.New().String(),
		phase: PhaseIdle,
	}
}

// ID returns the attempt's unique identifier.
func (a *Attempt) ID() string { return a.id }

// Phase returns the current lifecycle phase.
func (a *Attempt) Phase() Phase { return a.phase }

// Questions returns the loaded questions in source order.
func (a *Attempt) Questions() []Question { return a.questions }

// Load installs a freshly parsed question set and moves to answering.
// Valid only from the idle phase; a new quiz requires Reset first, which
// guarantees outputs of a prior generation are fully discarded.
func (a *Attempt) Load(questions []Question) error {
	if a.phase != PhaseIdle {
		return fmt.Errorf("cannot load quiz in %s phase", a.phase)
	}
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}

	a.questions = make([]Question, len(questions))
	copy(a.questions, questions)
	a.answers = make(map[int]string, len(questions))
	a.score = 0
	a.phase = PhaseAnswering
	return nil
}

// Select records or overwrites the answer for question index i.
// Valid only while answering; the phase does not change.
func (a *Attempt) Select(i int, letter string) error {
	if a.phase != PhaseAnswering {
		return fmt.Errorf("cannot answer in %s phase", a.phase)
	}
	if i < 0 || i >= len(a.questions) {
		return fmt.Errorf("question index %d out of range", i)
	}
	if !ValidLetter(letter) {
		return fmt.Errorf("invalid option letter %q", letter)
	}
	a.answers[i] = letter
	return nil
}

// Answer returns the recorded answer for question index i, if any.
func (a *Attempt) Answer(i int) (string, bool) {
	letter, ok := a.answers[i]
	return letter, ok
}

// Answered returns how many questions have a recorded answer.
func (a *Attempt) Answered() int { return len(a.answers) }

// Complete reports whether every question has a recorded answer.
func (a *Attempt) Complete() bool {
	return len(a.questions) > 0 && len(a.answers) == len(a.questions)
}

// Submit computes the score and moves to scored.
// Rejected with ErrIncomplete, leaving all state untouched, unless every
// question is answered.
func (a *Attempt) Submit() error {
	if a.phase != PhaseAnswering {
		return fmt.Errorf("cannot submit in %s phase", a.phase)
	}
	if !a.Complete() {
		return ErrIncomplete
	}

	score := 0
	for i, q := range a.questions {
		if a.answers[i] == q.Answer {
			score++
		}
	}
	a.score = score
	a.phase = PhaseScored
	return nil
}

// Score returns the computed score. Meaningful only in the scored and
// reviewing phases.
func (a *Attempt) Score() int { return a.score }

// Review moves from scored to reviewing without touching answers or score.
func (a *Attempt) Review() error {
	if a.phase != PhaseScored {
		return fmt.Errorf("cannot review in %s phase", a.phase)
	}
	a.phase = PhaseReviewing
	return nil
}

// BackToResults moves from reviewing back to scored.
func (a *Attempt) BackToResults() error {
	if a.phase != PhaseReviewing {
		return fmt.Errorf("cannot return to results in %s phase", a.phase)
	}
	a.phase = PhaseScored
	return nil
}

// Reset discards questions, answers, and score, and returns to idle.
// Valid from any phase.
func (a *Attempt) Reset() {
	a.questions = nil
	a.answers = nil
	a.score = 0
	a.phase = PhaseIdle
}

// OptionVerdict classifies option letter of question index i for review
// rendering: the correct answer, the user's incorrect pick, or neutral.
func (a *Attempt) OptionVerdict(i int, letter string) Verdict {
	if i < 0 || i >= len(a.questions) {
		return VerdictNeutral
	}
	q := a.questions[i]
	if letter == q.Answer {
		return VerdictCorrect
	}
	if picked, ok := a.answers[i]; ok && picked == letter {
		return VerdictWrongPick
	}
	return VerdictNeutral
}
