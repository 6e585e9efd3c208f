// Package main provides the entry point for the SkillmapAI HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillmap",
	Short: "SkillmapAI HTTP API Server",
	Long:  "SkillmapAI compares the skills extracted from an uploaded resume against the skills required for a job title and serves match scores, missing skills and recommendations via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
