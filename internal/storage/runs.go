package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/izebair/Rezepte/internal/common"
	"github.com/izebair/Rezepte/internal/model"
)

// ImportRun is one recorded invocation of the import pipeline.
type ImportRun struct {
	CreatedAt   time.Time
	InputFile   string
	ID          int64
	RecipeCount int
	DryRun      bool
}

// SaveRun records a pipeline invocation together with its parsed recipes
// and returns the new run ID.
func (s *SQLiteStorage) SaveRun(ctx context.Context, inputFile string, dryRun bool, recipes []model.Recipe) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO import_runs (input_file, dry_run, recipe_count) VALUES (?, ?, ?)`,
		inputFile, dryRun, len(recipes))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO recipes
		(run_id, position, title, category, subcategory, servings, time, difficulty,
		 ingredients, steps, images, parse_mode, section, display_title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare recipe insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range recipes {
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			return 0, fmt.Errorf("failed to encode ingredients: %w", err)
		}
		steps, err := json.Marshal(r.Steps)
		if err != nil {
			return 0, fmt.Errorf("failed to encode steps: %w", err)
		}
		images, err := json.Marshal(r.Images)
		if err != nil {
			return 0, fmt.Errorf("failed to encode images: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			runID, i, r.Title, r.Category, r.Subcategory, r.Servings, r.Time, r.Difficulty,
			string(ingredients), string(steps), string(images), string(r.ParseMode), r.Section, r.DisplayTitle,
		); err != nil {
			return 0, fmt.Errorf("failed to insert recipe %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]ImportRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_file, dry_run, recipe_count, created_at
		 FROM import_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var run ImportRun
		if err := rows.Scan(&run.ID, &run.InputFile, &run.DryRun, &run.RecipeCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRunRecipes returns the recipes recorded for a run in their original
// order.
func (s *SQLiteStorage) GetRunRecipes(ctx context.Context, runID int64) ([]model.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, category, subcategory, servings, time, difficulty,
		        ingredients, steps, images, parse_mode, section, display_title
		 FROM recipes WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var (
			r                        model.Recipe
			ingredients, steps, imgs string
			mode                     string
		)
		if err := rows.Scan(&r.Title, &r.Category, &r.Subcategory, &r.Servings, &r.Time, &r.Difficulty,
			&ingredients, &steps, &imgs, &mode, &r.Section, &r.DisplayTitle); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to decode ingredients: %w", err)
		}
		if err := json.Unmarshal([]byte(steps), &r.Steps); err != nil {
			return nil, fmt.Errorf("failed to decode steps: %w", err)
		}
		if err := json.Unmarshal([]byte(imgs), &r.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
		r.ParseMode = model.ParseMode(mode)
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(recipes) == 0 {
		var exists int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM import_runs WHERE id = ?`, runID).Scan(&exists)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %d: %w", runID, common.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check run: %w", err)
		}
	}

	return recipes, nil
}
