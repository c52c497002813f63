package quizgen

import (
	"fmt"
	"strings"
)

// promptTemplate instructs the model to emit the exact line layout the
// quiz parser accepts. The two must stay in lockstep: a numbered
// "Question:" marker per question, four "A)".."D)" option lines, and a
// "Correct Answer:" line with a single letter.
const promptTemplate = `Generate %d multiple choice questions about %s.
Format each question exactly like this:
1. Question: [question text]
A) [option text]
B) [option text]
C) [option text]
D) [option text]
Correct Answer: [letter]

Return all questions in a clear, numbered format.`

// BuildPrompt constructs the generation prompt for a role.
// The role is used verbatim; a non-blank role is the caller's
// responsibility.
func BuildPrompt(role string, count int) string {
	return fmt.Sprintf(promptTemplate, count, strings.TrimSpace(role))
}
