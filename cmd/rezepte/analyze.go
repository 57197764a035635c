package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/izebair/Rezepte/internal/analysis"
	"github.com/izebair/Rezepte/internal/cli"
	"github.com/izebair/Rezepte/internal/common"
	"github.com/izebair/Rezepte/internal/config"
	"github.com/izebair/Rezepte/internal/storage"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Check recipe quality without importing",
		Long: `Parse the configured input file and report quality problems: missing
titles, empty ingredient or preparation lists, vague quantities, likely
duplicates. Nothing is sent to OneNote.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Float64("threshold", analysis.DefaultSimilarityThreshold, "Similarity threshold for duplicate detection (0..1)")
	cmd.Flags().Bool("save", false, "Record the run and its analysis in the local database")
	cmd.Flags().StringP("input", "i", "", "Input file (overrides configured input_file)")

	_ = viper.BindPFlag("analyze.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("analyze.threshold", cmd.Flags().Lookup("threshold"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		cfg.InputFile = input
	}
	if err := cfg.RequireInput(); err != nil {
		return err
	}

	format := viper.GetString("analyze.format")
	if format != "console" && format != "json" {
		return fmt.Errorf("invalid format: %s", format)
	}

	threshold := viper.GetFloat64("analyze.threshold")
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %g", threshold)
	}

	recipes, err := parseAndRoute(cfg)
	if err != nil {
		return err
	}

	results := analysis.AnalyzeAll(recipes)
	report, err := analysis.BuildReport(recipes, results, threshold)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := storage.NewSQLiteStorage(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(ctx); err != nil {
			return err
		}
		runID, err := store.SaveRun(ctx, cfg.InputFile, true, recipes)
		if err != nil {
			return err
		}
		if err := store.SaveAnalyses(ctx, runID, results); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved analysis as run %d", runID)))
	}

	var out []byte
	switch format {
	case "json":
		out, err = report.MarshalIndent()
		if err != nil {
			return err
		}
		out = append(out, '\n')
	default:
		out = []byte(analysis.NewCLIFormatter().FormatReport(&report))
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, out, 0o600); err != nil {
			return common.NewUserError("failed to write report to "+path, err)
		}
		fmt.Println(cli.FormatSuccess("Report written to " + path))
		return nil
	}

	fmt.Print(string(out))
	return nil
}
