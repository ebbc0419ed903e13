// Package main implements the applicant_ranker CLI for feature extraction and scoring.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/honorsoc/applicant-ranker/internal/config"
	"github.com/honorsoc/applicant-ranker/internal/feature"
	"github.com/honorsoc/applicant-ranker/internal/model"
	"github.com/honorsoc/applicant-ranker/internal/observability"
	"github.com/honorsoc/applicant-ranker/internal/roster"
	"github.com/honorsoc/applicant-ranker/internal/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a cohort of applicants end-to-end",
	Long: `Extracts features for every applicant in a JSONL batch, scores them with the trained model, and writes the cohort ranked by raw score with 0-10 percentile scores.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRank,
}

var (
	rankConfigPath  string
	rankModelFile   string
	rankInputFile   string
	rankOutputFile  string
	rankConcurrency int
	rankVerbose     bool
)

func init() {
	// Config file flag (processed first)
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCmd.Flags().StringVarP(&rankModelFile, "model", "m", "", "Path to trained ranking model JSON file")
	rankCmd.Flags().StringVarP(&rankInputFile, "in", "i", "", "Path to a JSONL file of applicant records")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output ranked JSONL file")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Worker bound for feature extraction (0 = unbounded)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print the ranked cohort summary")

	// Note: flags are not marked required; we validate after merging config

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if rankVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rankConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("model") {
		cfg.Model = rankModelFile
	}
	if cmd.Flags().Changed("in") {
		cfg.Applicants = rankInputFile
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = rankOutputFile
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = rankConcurrency
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Model == "" {
		return fmt.Errorf("--model must be provided (via flag or config)")
	}
	if cfg.Applicants == "" {
		return fmt.Errorf("--in must be provided (via flag or config)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--out must be provided (via flag or config)")
	}

	extractor := feature.NewExtractor()

	m, err := model.LoadFile(cfg.Model, extractor.Version())
	if err != nil {
		return fmt.Errorf("failed to load ranking model: %w", err)
	}

	records, err := roster.LoadRecords(cfg.Applicants)
	if err != nil {
		return fmt.Errorf("failed to load applicant records: %w", err)
	}

	ranked, err := scoring.RankPool(ctx, extractor, m, records, cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("failed to rank applicants: %w", err)
	}

	if err := roster.WriteRanked(cfg.Output, ranked); err != nil {
		return fmt.Errorf("failed to write ranked output: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRankedApplicants(ranked)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d applicant(s)\n", len(ranked))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.Output)

	return nil
}
