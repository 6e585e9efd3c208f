package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/venkateshgajul/SkillmapAI/internal/server"
)

var (
	servePort       int
	serveStagingTTL time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume upload, skill-gap analysis, history and progress endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().DurationVar(&serveStagingTTL, "staging-ttl", 30*time.Minute, "How long anonymous resume uploads stay analyzable")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Optional: without a key the analyzer runs the deterministic local
	// pipeline only.
	apiKey := os.Getenv("GEMINI_API_KEY")

	cfg := server.Config{
		Port:         servePort,
		DatabaseURL:  databaseURL,
		GeminiAPIKey: apiKey,
		StagingTTL:   serveStagingTTL,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
