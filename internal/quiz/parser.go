package quiz

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidFormat is returned when the raw text contains no question
// markers at all.
var ErrInvalidFormat = errors.New("invalid response format")

// ParseError describes why a question block failed to parse.
// Question is the block's 1-based ordinal position in the raw text.
type ParseError struct {
	Question int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("question %d %s", e.Question, e.Reason)
}

var (
	// markerRE matches the start of a question block: "3. Question: ...".
	// The label is case-insensitive; the number is required.
	markerRE = regexp.MustCompile(`(?i)^\s*\d+\.\s*question:`)

	// optionRE matches an option line: "B) some text".
	optionRE = regexp.MustCompile(`^([A-D])\)\s*(.*\S)\s*$`)

	// answerLetterRE finds the answer letter after the "Correct Answer:" label.
	answerLetterRE = regexp.MustCompile(`[A-Da-d]`)
)

const answerLabel = "correct answer:"

// Parse extracts the ordered question sequence from raw generated text.
//
// The parser is strict: any malformed block aborts the whole parse with a
// diagnostic naming the offending block. Leading prose before the first
// marker is discarded; text with no markers at all is ErrInvalidFormat.
func Parse(raw string) ([]Question, error) {
	blocks := splitBlocks(raw)
	if len(blocks) == 0 {
		return nil, ErrInvalidFormat
	}

	questions := make([]Question, 0, len(blocks))
	for i, block := range blocks {
		q, err := parseBlock(i+1, block)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// splitBlocks cuts the raw text into per-question blocks of trimmed
// non-empty lines. Each block starts at a marker line and runs until the
// next marker or end of text.
func splitBlocks(raw string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if markerRE.MatchString(line) {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
		// Lines before the first marker are leading prose; dropped.
	}
	if current != nil {
		blocks = append(blocks, current)
	}
	return blocks
}

// parseBlock validates one block and builds its Question.
// ordinal is the block's 1-based position, used for diagnostics and the ID.
func parseBlock(ordinal int, lines []string) (Question, error) {
	stem := parseStem(lines[0])
	if stem == "" {
		return Question{}, &ParseError{Question: ordinal, Reason: "is missing question text"}
	}

	options := make(map[string]string, len(Letters))
	answer := ""
	answerSeen := false

	for _, line := range lines {
		if m := optionRE.FindStringSubmatch(line); m != nil {
			// Last occurrence of a letter wins.
			options[m[1]] = m[2]
		}
		if idx := strings.Index(strings.ToLower(line), answerLabel); idx >= 0 {
			answerSeen = true
			if m := answerLetterRE.FindString(line[idx+len(answerLabel):]); m != "" {
				answer = strings.ToUpper(m)
			}
		}
	}

	var missing []string
	for _, l := range Letters {
		if _, ok := options[l]; !ok {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return Question{}, &ParseError{
			Question: ordinal,
			Reason:   fmt.Sprintf("is missing options: %s", strings.Join(missing, ", ")),
		}
	}

	if !answerSeen {
		return Question{}, &ParseError{Question: ordinal, Reason: "is missing a correct answer line"}
	}
	if answer == "" {
		return Question{}, &ParseError{Question: ordinal, Reason: "has no valid answer letter"}
	}

	return Question{
		ID:      ordinal,
		Text:    stem,
		Options: options,
		Answer:  answer,
	}, nil
}

// parseStem strips the "<number>. Question:" marker and returns the stem.
func parseStem(markerLine string) string {
	return strings.TrimSpace(markerRE.ReplaceAllString(markerLine, ""))
}
