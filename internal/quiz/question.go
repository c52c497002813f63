// Package quiz holds the parsed quiz model, the raw-text parser, and the
// single-attempt state machine.
package quiz

// Letters are the option keys of a multiple-choice question, in display order.
var Letters = []string{"A", "B", "C", "D"}

// Question is one parsed multiple-choice question.
// A Question is only ever constructed by the parser once the stem, all
// four options, and the answer letter are resolved.
type Question struct {
	// ID is the 1-based ordinal of the question in the generated text.
	ID int

	// Text is the question stem.
	Text string

	// Options maps each letter in Letters to its option text.
	Options map[string]string

	// Answer is the letter of the correct option.
	Answer string
}

// ValidLetter reports whether s is one of the option letters.
func ValidLetter(s string) bool {
	for _, l := range Letters {
		if s == l {
			return true
		}
	}
	return false
}
