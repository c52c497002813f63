package quizgen

// Config holds quiz generation parameters.
type Config struct {
	// QuestionCount is the number of questions to request per quiz.
	QuestionCount int

	// MaxTokens is the generation budget. Ten questions with options and
	// answers comfortably fit; headroom for verbose models.
	MaxTokens int

	// Temperature for generation. Some variety between quizzes for the
	// same role is desirable.
	Temperature float64
}

// DefaultConfig returns the production generation parameters.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 10,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
}
