package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/izebair/Rezepte/internal/analysis"
)

// SaveAnalyses stores one analysis result per recipe of a run. Results must
// be in the same order as the recipes passed to SaveRun.
func (s *SQLiteStorage) SaveAnalyses(ctx context.Context, runID int64, results []analysis.Result) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM recipes WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return fmt.Errorf("failed to query recipe IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan recipe ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(ids) != len(results) {
		return fmt.Errorf("run %d has %d recipes but %d results", runID, len(ids), len(results))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO analyses
		(recipe_id, score, issues, warnings, health_hints) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare analysis insert: %w", err)
	}
	defer stmt.Close()

	for i, result := range results {
		issues, err := json.Marshal(result.Issues)
		if err != nil {
			return fmt.Errorf("failed to encode issues: %w", err)
		}
		warnings, err := json.Marshal(result.Warnings)
		if err != nil {
			return fmt.Errorf("failed to encode warnings: %w", err)
		}
		hints, err := json.Marshal(result.HealthHints)
		if err != nil {
			return fmt.Errorf("failed to encode health hints: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, ids[i], result.Score,
			string(issues), string(warnings), string(hints)); err != nil {
			return fmt.Errorf("failed to insert analysis for recipe %d: %w", ids[i], err)
		}
	}

	return tx.Commit()
}
