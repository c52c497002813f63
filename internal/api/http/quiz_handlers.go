package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/avishek/quizy/internal/llm"
	"github.com/avishek/quizy/internal/quizgen"
)

// Generator produces raw quiz text for a role.
type Generator interface {
	Generate(ctx context.Context, role string) (*quizgen.RawQuiz, error)
}

type generateRequest struct {
	Role string `json:"role"`
}

type quizData struct {
	Text string `json:"text"`
	Role string `json:"role"`
}

type generateResponse struct {
	Success bool     `json:"success"`
	Data    quizData `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// GenerateQuizHandler serves POST /api/generate-quiz.
// A missing or blank role is a 400; generation failures propagate the
// upstream HTTP status when the error carries one, else 500.
func GenerateQuizHandler(gen Generator, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Role is required"})
			return
		}
		if strings.TrimSpace(req.Role) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Role is required"})
			return
		}

		raw, err := gen.Generate(r.Context(), req.Role)
		if err != nil {
			status := http.StatusInternalServerError
			if s, ok := llm.HTTPStatus(err); ok {
				status = s
			}
			log.WithError(err).WithField("role", req.Role).Error("quiz generation failed")
			writeJSON(w, status, errorResponse{Success: false, Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, generateResponse{
			Success: true,
			Data:    quizData{Text: raw.Text, Role: raw.Role},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
