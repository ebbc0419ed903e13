// Package main provides the entry point for the applicant ranker CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "applicant_ranker",
	Short: "Honor society applicant ranking toolkit",
	Long:  "Applicant Ranker turns admissions form submissions into bounded feature vectors, scores them with a trained linear model, and ranks cohorts on a 0-10 percentile scale.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
