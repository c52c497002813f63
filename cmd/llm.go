package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avishek/quizy/internal/llm"
	"github.com/avishek/quizy/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println()
				fmt.Println("Set one of:")
				fmt.Println("  GEMINI_API_KEY      Google Gemini")
				fmt.Println("  OPENAI_API_KEY      OpenAI")
				fmt.Println("  ANTHROPIC_API_KEY   Anthropic")
				fmt.Println("  OPENROUTER_API_KEY  OpenRouter")
				return nil
			}
			cfg = discovered
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", cfg.Gemini.Model)
		case "anthropic":
			fmt.Printf("Model:     %s\n", cfg.Anthropic.Model)
		case "openai":
			fmt.Printf("Model:     %s\n", cfg.OpenAI.Model)
		case "openrouter":
			fmt.Printf("Model:     %s\n", cfg.OpenRouter.Model)
		}
		fmt.Printf("Retries:   %d (%s between attempts)\n", cfg.Retry.MaxRetries, cfg.Retry.Delay)

		if check, _ := cmd.Flags().GetBool("check"); check {
			return probeProvider(cmd)
		}
		return nil
	},
}

// probeProvider sends a one-shot request to verify connectivity.
func probeProvider(cmd *cobra.Command) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.RequestLog())
	if err != nil {
		return fmt.Errorf("build provider: %w", err)
	}

	fmt.Println()
	fmt.Printf("Probing %s...\n", provider.ModelID())

	resp, err := provider.Generate(llm.WithPurpose(ctx, "probe"), llm.Request{
		Prompt:    "Reply with the single word: ok",
		MaxTokens: 16,
	})
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}

	fmt.Printf("Response:  %s\n", strings.TrimSpace(resp.Text))
	fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return nil
}

func init() {
	llmCmd.Flags().Bool("check", false, "Send a one-shot request to verify connectivity")
}
