package cmd

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apihttp "github.com/avishek/quizy/internal/api/http"
	"github.com/avishek/quizy/internal/config"
	"github.com/avishek/quizy/internal/llm"
	"github.com/avishek/quizy/internal/quizgen"
	"github.com/avishek/quizy/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz generation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}

		log := logrus.New()
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}

		dbPath := cfg.DBPath
		if dbPath == "" {
			var err error
			dbPath, err = resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.RequestLog())
		if err != nil {
			log.WithError(err).Fatal("LLM provider not configured; set GEMINI_API_KEY or another provider key")
		}

		svc := quizgen.NewService(provider, quizgen.DefaultConfig(), log)
		router := apihttp.NewRouter(cfg, svc, log)

		log.WithFields(logrus.Fields{
			"addr":  cfg.HTTPAddr,
			"model": provider.ModelID(),
		}).Info("quizy API listening")

		return http.ListenAndServe(cfg.HTTPAddr, router)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZY_HTTP_ADDR)")
}
