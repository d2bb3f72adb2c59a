package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/domain"
	"github.com/voacatofe/Supabase-Free-Connector-sub000/internal/core/ports/driven"
)

// syncRunStore implements driven.SyncRunStore.
type syncRunStore struct {
	store *Store
}

var _ driven.SyncRunStore = (*syncRunStore)(nil)

// Save records one finished pass.
func (s *syncRunStore) Save(ctx context.Context, run domain.SyncRun) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sync_runs (id, table_name, dry_run, success, total_records, message, error, diagnostic_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Table,
		boolToInt(run.DryRun), boolToInt(run.Success),
		run.TotalRecords, nullString(run.Message), nullString(run.Error),
		run.DiagnosticCount,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving sync run: %w", err)
	}
	return nil
}

// ListByTable returns the most recent runs for a table, newest first.
// A limit of zero or less returns the full history.
func (s *syncRunStore) ListByTable(ctx context.Context, table string, limit int) ([]domain.SyncRun, error) {
	query := `
		SELECT id, table_name, dry_run, success, total_records, message, error, diagnostic_count, started_at, finished_at
		FROM sync_runs
		WHERE table_name = ?
		ORDER BY started_at DESC`
	args := []interface{}{table}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.SyncRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.SyncRun
		var dryRun, success int
		var message, errMsg sql.NullString
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.Table, &dryRun, &success,
			&run.TotalRecords, &message, &errMsg, &run.DiagnosticCount,
			&startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}

		run.DryRun = dryRun == 1
		run.Success = success == 1
		if message.Valid {
			run.Message = message.String
		}
		if errMsg.Valid {
			run.Error = errMsg.String
		}
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			run.StartedAt = t
		}
		if t, err := time.Parse(time.RFC3339Nano, finishedAt); err == nil {
			run.FinishedAt = t
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}
	return runs, nil
}
