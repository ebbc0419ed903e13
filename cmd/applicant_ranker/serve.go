// Package main implements the applicant_ranker CLI for feature extraction and scoring.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honorsoc/applicant-ranker/internal/server"
)

var (
	servePort      int
	serveModelFile string
	servePoolFile  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes feature extraction and scoring endpoints for the admissions form frontend.

Reviewer authentication is enabled when REVIEWER_EMAIL and REVIEWER_PASSWORD_HASH are set; the scoring routes then require a Bearer token from POST /auth/login.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveModelFile, "model", "", "Path to trained ranking model JSON file (optional; without it /score answers 404)")
	serveCmd.Flags().StringVar(&servePoolFile, "pool", "", "Path to ranked JSONL used as the percentile pool (optional)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:      servePort,
		ModelPath: serveModelFile,
		PoolPath:  servePoolFile,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
