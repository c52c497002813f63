package quiz

import (
	"errors"
	"testing"
)

func loadedAttempt(t *testing.T, k int) *Attempt {
	t.Helper()
	questions, err := Parse(wellFormedText(k))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	a := NewAttempt()
	if err := a.Load(questions); err != nil {
		t.Fatalf("load: %v", err)
	}
	return a
}

func TestAttempt_LoadMovesToAnswering(t *testing.T) {
	a := loadedAttempt(t, 3)
	if a.Phase() != PhaseAnswering {
		t.Fatalf("expected answering, got %s", a.Phase())
	}
	if len(a.Questions()) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(a.Questions()))
	}
	if a.Answered() != 0 {
		t.Fatalf("expected no answers yet, got %d", a.Answered())
	}
}

func TestAttempt_LoadRejectedWhenNotIdle(t *testing.T) {
	a := loadedAttempt(t, 2)
	if err := a.Load(a.Questions()); err == nil {
		t.Fatal("expected load to be rejected while answering")
	}
}

func TestAttempt_LoadRejectsEmpty(t *testing.T) {
	a := NewAttempt()
	if err := a.Load(nil); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("expected ErrEmptyQuiz, got %v", err)
	}
	if a.Phase() != PhaseIdle {
		t.Fatalf("expected phase unchanged, got %s", a.Phase())
	}
}

func TestAttempt_SelectRecordsAndOverwrites(t *testing.T) {
	a := loadedAttempt(t, 2)

	if err := a.Select(0, "A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := a.Select(0, "C"); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	letter, ok := a.Answer(0)
	if !ok || letter != "C" {
		t.Fatalf("expected overwritten answer C, got %q (%t)", letter, ok)
	}
	if a.Answered() != 1 {
		t.Fatalf("expected 1 answered, got %d", a.Answered())
	}
	if a.Phase() != PhaseAnswering {
		t.Fatalf("select must not change phase, got %s", a.Phase())
	}
}

func TestAttempt_SelectValidation(t *testing.T) {
	a := loadedAttempt(t, 2)

	if err := a.Select(5, "A"); err == nil {
		t.Error("expected out-of-range index rejected")
	}
	if err := a.Select(-1, "A"); err == nil {
		t.Error("expected negative index rejected")
	}
	if err := a.Select(0, "E"); err == nil {
		t.Error("expected invalid letter rejected")
	}
	if a.Answered() != 0 {
		t.Errorf("expected no answers recorded, got %d", a.Answered())
	}
}

func TestAttempt_SubmitIncompleteRejected(t *testing.T) {
	a := loadedAttempt(t, 3)
	_ = a.Select(0, "B")

	err := a.Submit()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if a.Phase() != PhaseAnswering {
		t.Fatalf("expected no state change, got %s", a.Phase())
	}
	if a.Answered() != 1 {
		t.Fatalf("expected answers untouched, got %d", a.Answered())
	}
}

func TestAttempt_SubmitScores(t *testing.T) {
	// Fixture answers are all "B".
	cases := []struct {
		name     string
		picks    []string
		expected int
	}{
		{"all correct", []string{"B", "B", "B"}, 3},
		{"all wrong", []string{"A", "C", "D"}, 0},
		{"mixed", []string{"B", "A", "B"}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := loadedAttempt(t, 3)
			for i, letter := range tc.picks {
				if err := a.Select(i, letter); err != nil {
					t.Fatalf("select %d: %v", i, err)
				}
			}
			if err := a.Submit(); err != nil {
				t.Fatalf("submit: %v", err)
			}
			if a.Phase() != PhaseScored {
				t.Fatalf("expected scored, got %s", a.Phase())
			}
			if a.Score() != tc.expected {
				t.Fatalf("expected score %d, got %d", tc.expected, a.Score())
			}
		})
	}
}

func TestAttempt_ReviewToggle(t *testing.T) {
	a := loadedAttempt(t, 1)
	_ = a.Select(0, "B")
	if err := a.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := a.Review(); err != nil {
		t.Fatalf("review: %v", err)
	}
	if a.Phase() != PhaseReviewing {
		t.Fatalf("expected reviewing, got %s", a.Phase())
	}
	if a.Score() != 1 {
		t.Fatalf("review must not alter score, got %d", a.Score())
	}

	if err := a.BackToResults(); err != nil {
		t.Fatalf("back to results: %v", err)
	}
	if a.Phase() != PhaseScored {
		t.Fatalf("expected scored, got %s", a.Phase())
	}
}

func TestAttempt_InvalidTransitions(t *testing.T) {
	a := NewAttempt()

	if err := a.Submit(); err == nil {
		t.Error("expected submit rejected in idle")
	}
	if err := a.Review(); err == nil {
		t.Error("expected review rejected in idle")
	}
	if err := a.BackToResults(); err == nil {
		t.Error("expected back-to-results rejected in idle")
	}
	if err := a.Select(0, "A"); err == nil {
		t.Error("expected select rejected in idle")
	}

	b := loadedAttempt(t, 1)
	if err := b.Review(); err == nil {
		t.Error("expected review rejected while answering")
	}
}

func TestAttempt_ResetFromAnyPhase(t *testing.T) {
	phases := []func(t *testing.T) *Attempt{
		func(t *testing.T) *Attempt { return NewAttempt() },
		func(t *testing.T) *Attempt { return loadedAttempt(t, 2) },
		func(t *testing.T) *Attempt {
			a := loadedAttempt(t, 2)
			_ = a.Select(0, "B")
			_ = a.Select(1, "B")
			_ = a.Submit()
			return a
		},
		func(t *testing.T) *Attempt {
			a := loadedAttempt(t, 2)
			_ = a.Select(0, "B")
			_ = a.Select(1, "B")
			_ = a.Submit()
			_ = a.Review()
			return a
		},
	}

	for _, build := range phases {
		a := build(t)
		a.Reset()
		if a.Phase() != PhaseIdle {
			t.Errorf("expected idle after reset, got %s", a.Phase())
		}
		if len(a.Questions()) != 0 || a.Answered() != 0 || a.Score() != 0 {
			t.Error("expected all state cleared after reset")
		}
	}
}

func TestAttempt_ResetThenLoadNewQuiz(t *testing.T) {
	a := loadedAttempt(t, 2)
	_ = a.Select(0, "B")
	a.Reset()

	questions, err := Parse(wellFormedText(5))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := a.Load(questions); err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if len(a.Questions()) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(a.Questions()))
	}
	if a.Answered() != 0 {
		t.Fatalf("expected prior answers discarded, got %d", a.Answered())
	}
}

func TestAttempt_OptionVerdicts(t *testing.T) {
	a := loadedAttempt(t, 2)
	_ = a.Select(0, "B") // correct
	_ = a.Select(1, "D") // wrong, answer is B
	if err := a.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	_ = a.Review()

	if v := a.OptionVerdict(0, "B"); v != VerdictCorrect {
		t.Errorf("q0 B: expected correct, got %d", v)
	}
	if v := a.OptionVerdict(0, "A"); v != VerdictNeutral {
		t.Errorf("q0 A: expected neutral, got %d", v)
	}
	if v := a.OptionVerdict(1, "D"); v != VerdictWrongPick {
		t.Errorf("q1 D: expected wrong pick, got %d", v)
	}
	if v := a.OptionVerdict(1, "B"); v != VerdictCorrect {
		t.Errorf("q1 B: expected correct, got %d", v)
	}
	if v := a.OptionVerdict(1, "A"); v != VerdictNeutral {
		t.Errorf("q1 A: expected neutral, got %d", v)
	}
}
