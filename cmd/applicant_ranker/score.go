// Package main implements the applicant_ranker CLI for feature extraction and scoring.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/honorsoc/applicant-ranker/internal/feature"
	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/observability"
	"github.com/honorsoc/applicant-ranker/internal/roster"
	"github.com/honorsoc/applicant-ranker/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single applicant against a trained model",
	Long:  "Extracts the applicant's feature vector, applies the trained ranking model, and displays the raw score plus the 0-10 percentile score. Supplying a pool file ranks the applicant against a previously ranked cohort.",
	RunE:  runScore,
}

var (
	scoreModelFile     string
	scoreApplicantFile string
	scorePoolFile      string
	scoreOutputFile    string
	scoreVerbose       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreModelFile, "model", "m", "", "Path to trained ranking model JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreApplicantFile, "applicant", "a", "", "Path to applicant record JSON file (required)")
	scoreCmd.Flags().StringVarP(&scorePoolFile, "pool", "p", "", "Path to ranked JSONL used as the percentile pool")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Optional path to write the score result JSON")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the full feature vector")

	if err := scoreCmd.MarkFlagRequired("model"); err != nil {
		panic(fmt.Sprintf("failed to mark model flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("applicant"); err != nil {
		panic(fmt.Sprintf("failed to mark applicant flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

type scoreOutput struct {
	ID             string            `json:"id,omitempty"`
	Features       []float64         `json:"features"`
	RawScore       float64           `json:"raw_score"`
	Score          float64           `json:"score_0_10"`
	FeatureVersion int               `json:"feature_version"`
	Meta           map[string]string `json:"meta,omitempty"`
}

func runScore(_ *cobra.Command, _ []string) error {
	extractor := feature.NewExtractor()

	m, err := model.LoadFile(scoreModelFile, extractor.Version())
	if err != nil {
		return fmt.Errorf("failed to load ranking model: %w", err)
	}

	record, err := roster.LoadRecord(scoreApplicantFile)
	if err != nil {
		return fmt.Errorf("failed to load applicant record: %w", err)
	}

	var pool []float64
	if scorePoolFile != "" {
		pool, err = roster.LoadPool(scorePoolFile)
		if err != nil {
			return fmt.Errorf("failed to load score pool: %w", err)
		}
	}

	vec, err := extractor.BuildFeatures(&record.Applicant)
	if err != nil {
		return fmt.Errorf("failed to extract features: %w", err)
	}

	result, err := scoring.ScoreWithPool(m, vec.Values(), pool)
	if err != nil {
		return fmt.Errorf("failed to score applicant: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if scoreVerbose {
		printer.PrintFeatureVector(extractor.FeatureNames(), vec.Values())
	}
	printer.PrintScoreResult(result, len(pool))

	if scoreOutputFile != "" {
		out := scoreOutput{
			ID:             record.ID,
			Features:       vec.Values(),
			RawScore:       result.RawScore,
			Score:          result.Score,
			FeatureVersion: vec.Version(),
			Meta:           record.Meta,
		}

		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal score result: %w", err)
		}
		if err := os.WriteFile(scoreOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)
	}

	return nil
}
