package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"symptrack/internal/modules/journal/domain"
	journalout "symptrack/internal/modules/journal/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteRecordProjector struct {
	db *sql.DB
}

func NewSQLiteRecordProjector(dbPath string) (journalout.RecordProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteRecordProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteRecordProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  seq INTEGER PRIMARY KEY,
  day TEXT NOT NULL,
  congestion INTEGER NOT NULL,
  itch INTEGER NOT NULL,
  sneezing INTEGER NOT NULL,
  days_post_op INTEGER NOT NULL,
  pain_score REAL NOT NULL,
  drug_a_days REAL NOT NULL,
  drug_b_days REAL NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	return nil
}

func (s *SQLiteRecordProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("reset entries: %w", err)
	}
	return nil
}

func (s *SQLiteRecordProjector) Upsert(ctx context.Context, seq int, record domain.Record) error {
	const stmt = `
INSERT INTO entries (seq, day, congestion, itch, sneezing, days_post_op, pain_score, drug_a_days, drug_b_days)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(seq) DO UPDATE SET
  day=excluded.day,
  congestion=excluded.congestion,
  itch=excluded.itch,
  sneezing=excluded.sneezing,
  days_post_op=excluded.days_post_op,
  pain_score=excluded.pain_score,
  drug_a_days=excluded.drug_a_days,
  drug_b_days=excluded.drug_b_days;
`
	_, err := s.db.ExecContext(ctx, stmt,
		seq,
		record.Date.Format("2006-01-02"),
		record.Congestion,
		record.Itch,
		record.Sneezing,
		record.DaysPostOp,
		domain.PainScore(record.FacialPain),
		domain.SuspensionDays(record.DrugASuspended),
		domain.SuspensionDays(record.DrugBSuspended),
	)
	if err != nil {
		return fmt.Errorf("upsert entry %d: %w", seq, err)
	}
	return nil
}

func (s *SQLiteRecordProjector) WeeklyAverages(ctx context.Context) ([]journalout.WeeklyAverage, error) {
	const query = `
SELECT strftime('%Y-W%W', day) AS week,
       COUNT(*),
       AVG(congestion),
       AVG(itch),
       AVG(sneezing),
       AVG(pain_score)
FROM entries
GROUP BY week
ORDER BY week;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query weekly averages: %w", err)
	}
	defer rows.Close()

	out := []journalout.WeeklyAverage{}
	for rows.Next() {
		var avg journalout.WeeklyAverage
		if err := rows.Scan(&avg.Week, &avg.Entries, &avg.MeanCongestion, &avg.MeanItch, &avg.MeanSneezing, &avg.MeanPain); err != nil {
			return nil, fmt.Errorf("scan weekly average: %w", err)
		}
		out = append(out, avg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly averages: %w", err)
	}
	return out, nil
}
