package quiz

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func wellFormedBlock(n int) string {
	return fmt.Sprintf(`%d. Question: What does tool %d do?
A) Builds
B) Tests
C) Deploys
D) Monitors
Correct Answer: B
`, n, n)
}

func wellFormedText(k int) string {
	var b strings.Builder
	for i := 1; i <= k; i++ {
		b.WriteString(wellFormedBlock(i))
		b.WriteString("\n")
	}
	return b.String()
}

func TestParse_WellFormed(t *testing.T) {
	for _, k := range []int{1, 2, 10} {
		t.Run(fmt.Sprintf("%d blocks", k), func(t *testing.T) {
			questions, err := Parse(wellFormedText(k))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(questions) != k {
				t.Fatalf("expected %d questions, got %d", k, len(questions))
			}
			for i, q := range questions {
				if q.ID != i+1 {
					t.Errorf("question %d: expected ID %d, got %d", i, i+1, q.ID)
				}
				if q.Answer != "B" {
					t.Errorf("question %d: expected answer B, got %q", i, q.Answer)
				}
				if len(q.Options) != 4 {
					t.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
				}
			}
		})
	}
}

func TestParse_ExtractsFields(t *testing.T) {
	raw := `1. Question: What is 2+2?
A) 3
B) 4
C) 5
D) 6
Correct Answer: B`

	questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := questions[0]
	if q.Text != "What is 2+2?" {
		t.Errorf("unexpected stem: %q", q.Text)
	}
	if q.Options["B"] != "4" || q.Options["D"] != "6" {
		t.Errorf("unexpected options: %v", q.Options)
	}
	if q.Answer != "B" {
		t.Errorf("unexpected answer: %q", q.Answer)
	}
}

func TestParse_DiscardsLeadingProse(t *testing.T) {
	raw := "Sure! Here are your questions:\n\nGood luck.\n" + wellFormedText(2)

	questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestParse_CaseInsensitiveLabels(t *testing.T) {
	raw := `1. QUESTION: Pick one.
A) a
B) b
C) c
D) d
correct answer: c`

	questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Answer != "C" {
		t.Errorf("expected answer upper-cased to C, got %q", questions[0].Answer)
	}
}

func TestParse_NoMarkers(t *testing.T) {
	_, err := Parse("The model refused to answer.\nNothing here looks like a quiz.")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestParse_MissingOptions(t *testing.T) {
	raw := `1. Question: Only three options here.
A) one
B) two
C) three
Correct Answer: A`

	_, err := Parse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Question != 1 {
		t.Errorf("expected ordinal 1, got %d", perr.Question)
	}
	if !strings.Contains(perr.Reason, "D") || strings.Contains(perr.Reason, "C") {
		t.Errorf("expected exactly the missing letter D named, got %q", perr.Reason)
	}
}

func TestParse_MissingMultipleOptions(t *testing.T) {
	raw := wellFormedText(1) + `2. Question: Two options only.
A) one
B) two
Correct Answer: A`

	_, err := Parse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Question != 2 {
		t.Errorf("expected ordinal 2, got %d", perr.Question)
	}
	if !strings.Contains(perr.Reason, "C, D") {
		t.Errorf("expected missing letters C, D named, got %q", perr.Reason)
	}
}

func TestParse_MissingStem(t *testing.T) {
	raw := `1. Question:
A) one
B) two
C) three
D) four
Correct Answer: A`

	_, err := Parse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Question != 1 || !strings.Contains(perr.Reason, "question text") {
		t.Errorf("expected missing-stem diagnostic for question 1, got %v", perr)
	}
}

func TestParse_MissingAnswerLine(t *testing.T) {
	raw := `1. Question: No answer given.
A) one
B) two
C) three
D) four`

	_, err := Parse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Question != 1 || !strings.Contains(perr.Reason, "correct answer") {
		t.Errorf("expected missing-answer diagnostic, got %v", perr)
	}
}

func TestParse_AnswerLineWithoutLetter(t *testing.T) {
	raw := `1. Question: Bad answer line.
A) one
B) two
C) three
D) four
Correct Answer: none of these`

	questions, err := Parse(raw)
	if err == nil {
		t.Fatalf("expected error, got %d questions", len(questions))
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Question != 1 {
		t.Errorf("expected ordinal 1, got %d", perr.Question)
	}
}

func TestParse_OneBadBlockAbortsAll(t *testing.T) {
	raw := wellFormedText(3) + `4. Question: Broken.
A) one
Correct Answer: A`

	_, err := Parse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Question != 4 {
		t.Errorf("expected failure attributed to block 4, got %d", perr.Question)
	}
}

func TestParse_DuplicateLetterLastWins(t *testing.T) {
	raw := `1. Question: Duplicate option letter.
A) first
A) second
B) two
C) three
D) four
Correct Answer: A`

	questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Options["A"] != "second" {
		t.Errorf("expected last occurrence to win, got %q", questions[0].Options["A"])
	}
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	raw := `1. Question: first?
A) a
B) b
C) c
D) d
Correct Answer: A
1. Question: numbered oddly but second in source?
A) a
B) b
C) c
D) d
Correct Answer: D`

	questions, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	// IDs follow source position, not the model's numbering.
	if questions[0].ID != 1 || questions[1].ID != 2 {
		t.Errorf("expected IDs 1, 2 by position, got %d, %d", questions[0].ID, questions[1].ID)
	}
	if questions[1].Answer != "D" {
		t.Errorf("expected second block's answer D, got %q", questions[1].Answer)
	}
}
