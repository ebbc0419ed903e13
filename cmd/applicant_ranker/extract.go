// Package main implements the applicant_ranker CLI for feature extraction and scoring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/honorsoc/applicant-ranker/internal/feature"
	"github.com/honorsoc/applicant-ranker/internal/observability"
	"github.com/honorsoc/applicant-ranker/internal/roster"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract feature vectors from applicant records",
	Long:  "Extracts the fixed 21-entry feature vector for one applicant record or a JSONL batch and writes the vectors as JSONL, one export per applicant. The output is the training input format for the ranking model.",
	RunE:  runExtract,
}

var (
	extractApplicantFile string
	extractInputFile     string
	extractOutputFile    string
	extractVerbose       bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractApplicantFile, "applicant", "a", "", "Path to a single applicant record JSON file")
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to a JSONL file of applicant records")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output feature export JSONL file (required)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print each feature vector")

	if err := extractCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	records, err := loadInputRecords(extractApplicantFile, extractInputFile)
	if err != nil {
		return err
	}

	extractor := feature.NewExtractor()
	printer := observability.NewPrinter(os.Stdout)

	exports := make([]roster.FeatureExport, 0, len(records))
	for _, record := range records {
		vec, err := extractor.BuildFeatures(&record.Applicant)
		if err != nil {
			return fmt.Errorf("failed to extract features for applicant %s: %w", record.ID, err)
		}

		exports = append(exports, roster.FeatureExport{
			ID:             record.ID,
			FeatureVersion: vec.Version(),
			Features:       vec.Values(),
			Meta:           record.Meta,
		})

		if extractVerbose {
			printer.PrintFeatureVector(extractor.FeatureNames(), vec.Values())
		}
	}

	if err := roster.WriteFeatureExports(extractOutputFile, exports); err != nil {
		return fmt.Errorf("failed to write feature exports: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted features for %d applicant(s)\n", len(exports))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)

	return nil
}

// loadInputRecords loads records from a single-record file or a JSONL batch.
// Exactly one of the two paths must be provided.
func loadInputRecords(applicantPath, batchPath string) ([]types.ApplicantRecord, error) {
	if applicantPath == "" && batchPath == "" {
		return nil, fmt.Errorf("either --applicant or --in must be provided")
	}
	if applicantPath != "" && batchPath != "" {
		return nil, fmt.Errorf("--applicant and --in are mutually exclusive; provide only one")
	}

	if applicantPath != "" {
		record, err := roster.LoadRecord(applicantPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load applicant record: %w", err)
		}
		return []types.ApplicantRecord{*record}, nil
	}

	records, err := roster.LoadRecords(batchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load applicant records: %w", err)
	}
	return records, nil
}
