package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/izebair/Rezepte/internal/cli"
	"github.com/izebair/Rezepte/internal/common"
	"github.com/izebair/Rezepte/internal/config"
	"github.com/izebair/Rezepte/internal/graph"
	"github.com/izebair/Rezepte/internal/model"
	"github.com/izebair/Rezepte/internal/parser"
	"github.com/izebair/Rezepte/internal/router"
	"github.com/izebair/Rezepte/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import recipes into OneNote",
		Long: `Read recipes from the configured input file and create one OneNote page
per recipe, sorted into sections by category.

Sections are resolved in the configured notebook and created when missing.
Every import is recorded in the local history database.`,
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Parse and route without creating OneNote pages")
	cmd.Flags().String("section-id", "", "Put all pages into this section, skipping notebook lookup")
	cmd.Flags().StringP("input", "i", "", "Input file (overrides configured input_file)")

	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("import.section_id", cmd.Flags().Lookup("section-id"))

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
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

	recipes, err := parseAndRoute(cfg)
	if err != nil {
		return err
	}
	// An import with nothing to import is a no-op worth refusing; analyze
	// handles the same input by emitting an empty report.
	if len(recipes) == 0 {
		return fmt.Errorf("%w: %s", common.ErrNoRecipes, cfg.InputFile)
	}

	dryRun := viper.GetBool("import.dry_run")
	sectionID := viper.GetString("import.section_id")

	if err := recordRun(ctx, cfg, dryRun, recipes); err != nil {
		slog.Warn("Failed to record import run", "error", err)
	}

	if dryRun {
		printPlan(recipes)
		return nil
	}

	return uploadRecipes(ctx, cfg, sectionID, recipes)
}

// parseAndRoute reads the input file and runs the parsing pipeline up to and
// including category routing. Empty input yields an empty sequence, not an
// error; callers decide whether that is acceptable.
func parseAndRoute(cfg *config.Config) ([]model.Recipe, error) {
	data, err := os.ReadFile(cfg.InputFile) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	recipes := parser.Parse(string(data))

	mapping := cfg.Mapping()
	routerCfg := cfg.RouterConfig()
	for i := range recipes {
		recipes[i] = router.Route(recipes[i], mapping, routerCfg)
	}

	common.LogInfo("Parsed input file", common.Fields{
		"file":    cfg.InputFile,
		"recipes": len(recipes),
	})
	return recipes, nil
}

func recordRun(ctx context.Context, cfg *config.Config, dryRun bool, recipes []model.Recipe) error {
	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	_, err = store.SaveRun(ctx, cfg.InputFile, dryRun, recipes)
	return err
}

// printPlan shows what an import would do, grouped by target section.
func printPlan(recipes []model.Recipe) {
	fmt.Println(cli.FormatTitle("Import plan (dry run)"))

	bySection := make(map[string][]model.Recipe)
	var order []string
	for _, r := range recipes {
		if _, seen := bySection[r.Section]; !seen {
			order = append(order, r.Section)
		}
		bySection[r.Section] = append(bySection[r.Section], r)
	}

	for _, section := range order {
		fmt.Printf("\n%s %s\n", cli.BookIcon, cli.InfoStyle.Render(section))
		for _, r := range bySection[section] {
			title := r.EffectiveTitle()
			if title == "" {
				title = "(ohne Titel)"
			}
			fmt.Println("  " + title)
		}
	}

	fmt.Println()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d recipes would be imported", len(recipes))))
}

func uploadRecipes(ctx context.Context, cfg *config.Config, sectionID string, recipes []model.Recipe) error {
	if err := cfg.RequireGraph(); err != nil {
		return err
	}

	httpClient, err := graph.HTTPClient(ctx, graphAuthConfig(cfg))
	if err != nil {
		return err
	}
	client := graph.NewClient(httpClient)

	sections, err := resolveSections(ctx, client, cfg, sectionID, recipes)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(recipes),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Creating pages..."),
	)

	for i, r := range recipes {
		if err := client.CreatePage(ctx, sections[r.Section], graph.RenderPage(r)); err != nil {
			return common.NewUserError(fmt.Sprintf("failed to create page for %q", r.EffectiveTitle()), err)
		}
		_ = bar.Add(1)

		// Pause between pages so Graph throttling doesn't kick in.
		if i < len(recipes)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.PageDelay):
			}
		}
	}
	_ = bar.Finish()

	fmt.Println()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d recipes into %d sections", len(recipes), len(sections))))
	return nil
}

// resolveSections maps every target section name to a section ID, creating
// missing sections. With an explicit section ID everything goes there.
func resolveSections(ctx context.Context, client *graph.Client, cfg *config.Config, sectionID string, recipes []model.Recipe) (map[string]string, error) {
	sections := make(map[string]string)

	if sectionID != "" {
		for _, r := range recipes {
			sections[r.Section] = sectionID
		}
		return sections, nil
	}

	notebook, err := client.FindNotebook(ctx, cfg.Notebook)
	if err != nil {
		return nil, err
	}
	slog.Info("Using notebook", "notebook", notebook.DisplayName)

	for _, r := range recipes {
		if _, ok := sections[r.Section]; ok {
			continue
		}
		section, err := client.FindOrCreateSection(ctx, notebook.ID, r.Section)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve section %q: %w", r.Section, err)
		}
		sections[r.Section] = section.ID
	}

	return sections, nil
}
