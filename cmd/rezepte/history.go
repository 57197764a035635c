package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/izebair/Rezepte/internal/cli"
	"github.com/izebair/Rezepte/internal/config"
	"github.com/izebair/Rezepte/internal/storage"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded import runs",
		RunE:  runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No runs recorded yet"))
		return nil
	}

	fmt.Println(cli.FormatTitle("Import history"))
	for _, run := range runs {
		mode := "import"
		if run.DryRun {
			mode = "dry-run"
		}
		fmt.Printf("  #%-4d %s  %-7s  %3d recipes  %s\n",
			run.ID,
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			mode,
			run.RecipeCount,
			cli.SubtleStyle.Render(run.InputFile))
	}

	return nil
}
