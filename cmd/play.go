package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avishek/quizy/internal/app"
	"github.com/avishek/quizy/internal/llm"
	"github.com/avishek/quizy/internal/quizgen"
	"github.com/avishek/quizy/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generate and take a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, builds the generation service, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.RequestLog())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet GEMINI_API_KEY (or another provider key) and try again", err)
	}

	// TUI owns the terminal; keep service logs out of it.
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := quizgen.NewService(provider, quizgen.DefaultConfig(), log)
	return app.Run(svc)
}
