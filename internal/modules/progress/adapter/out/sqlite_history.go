package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sprinttrack/internal/modules/progress/domain"
	progressout "sprinttrack/internal/modules/progress/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteHistoryProjector maintains the per-day summary read model backing the
// history command. It is rebuildable at any time from the JSON store.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (progressout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS day_history (
  day INTEGER PRIMARY KEY,
  date TEXT NOT NULL,
  tasks_done INTEGER NOT NULL,
  tasks_total INTEGER NOT NULL,
  seconds REAL NOT NULL,
  jobs_applied INTEGER NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create day_history table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM day_history`); err != nil {
		return fmt.Errorf("reset day_history: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) UpsertDay(ctx context.Context, row domain.DaySummary) error {
	const stmt = `
INSERT INTO day_history (day, date, tasks_done, tasks_total, seconds, jobs_applied, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(day) DO UPDATE SET
  date=excluded.date,
  tasks_done=excluded.tasks_done,
  tasks_total=excluded.tasks_total,
  seconds=excluded.seconds,
  jobs_applied=excluded.jobs_applied,
  updated_at=excluded.updated_at;
`
	_, err := p.db.ExecContext(ctx, stmt,
		row.Day,
		row.Date.Format(timeLayout),
		row.TasksDone,
		row.TasksTotal,
		row.Seconds,
		row.JobsApplied,
		row.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert day %d: %w", row.Day, err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) ListDays(ctx context.Context) ([]domain.DaySummary, error) {
	rows, err := p.db.QueryContext(ctx, `
SELECT day, date, tasks_done, tasks_total, seconds, jobs_applied, updated_at
FROM day_history ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("list day_history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.DaySummary
	for rows.Next() {
		var row domain.DaySummary
		var date, updated string
		if err := rows.Scan(&row.Day, &date, &row.TasksDone, &row.TasksTotal, &row.Seconds, &row.JobsApplied, &updated); err != nil {
			return nil, fmt.Errorf("scan day_history row: %w", err)
		}
		if row.Date, err = time.Parse(timeLayout, date); err != nil {
			return nil, fmt.Errorf("parse date for day %d: %w", row.Day, err)
		}
		if row.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, fmt.Errorf("parse updated_at for day %d: %w", row.Day, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
