package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inward/internal/modules/checkin/domain"
	"inward/internal/modules/checkin/dto"
	checkinout "inward/internal/modules/checkin/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteIndexProjector mirrors the check-in list into a queryable
// table. It is a derived read model: Rebuild recreates it from the
// JSON list at any time.
type SQLiteIndexProjector struct {
	db  *sql.DB
	loc *time.Location
}

func NewSQLiteIndexProjector(dbPath string, loc *time.Location) (*SQLiteIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}
	projector := &SQLiteIndexProjector{db: db, loc: loc}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

var _ checkinout.IndexProjector = (*SQLiteIndexProjector)(nil)

func (s *SQLiteIndexProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS check_ins (
  id TEXT PRIMARY KEY,
  ts TEXT NOT NULL,
  day TEXT NOT NULL,
  emotion TEXT NOT NULL,
  intensity INTEGER NOT NULL,
  thought_tags TEXT,
  behaviour_action TEXT,
  value TEXT
);
CREATE INDEX IF NOT EXISTS idx_check_ins_day ON check_ins(day);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create check_ins table: %w", err)
	}
	return nil
}

func (s *SQLiteIndexProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM check_ins`); err != nil {
		return fmt.Errorf("reset check_ins: %w", err)
	}
	return nil
}

func (s *SQLiteIndexProjector) Upsert(ctx context.Context, c domain.CheckIn) error {
	const stmt = `
INSERT INTO check_ins (id, ts, day, emotion, intensity, thought_tags, behaviour_action, value)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  ts=excluded.ts,
  day=excluded.day,
  emotion=excluded.emotion,
  intensity=excluded.intensity,
  thought_tags=excluded.thought_tags,
  behaviour_action=excluded.behaviour_action,
  value=excluded.value;
`
	_, err := s.db.ExecContext(ctx, stmt,
		c.ID,
		c.Timestamp.Format(time.RFC3339),
		c.Timestamp.In(s.loc).Format("2006-01-02"),
		c.Emotion.Primary,
		c.Emotion.Intensity,
		strings.Join(c.ThoughtTags, ","),
		c.BehaviourAction,
		c.Value,
	)
	if err != nil {
		return fmt.Errorf("upsert check-in: %w", err)
	}
	return nil
}

func (s *SQLiteIndexProjector) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM check_ins WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete check-in %s: %w", id, err)
	}
	return nil
}

func (s *SQLiteIndexProjector) EmotionCounts(ctx context.Context) ([]dto.EmotionCount, error) {
	const query = `
SELECT emotion, COUNT(*) AS n
FROM check_ins
GROUP BY emotion
ORDER BY n DESC, emotion ASC;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query emotion counts: %w", err)
	}
	defer rows.Close()

	var counts []dto.EmotionCount
	for rows.Next() {
		var c dto.EmotionCount
		if err := rows.Scan(&c.Emotion, &c.Count); err != nil {
			return nil, fmt.Errorf("scan emotion count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DailyCounts returns per-day totals for the most recent days that
// have at least one check-in, newest day first.
func (s *SQLiteIndexProjector) DailyCounts(ctx context.Context, days int) ([]dto.DayCount, error) {
	const query = `
SELECT day, COUNT(*) AS n
FROM check_ins
GROUP BY day
ORDER BY day DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("query daily counts: %w", err)
	}
	defer rows.Close()

	var counts []dto.DayCount
	for rows.Next() {
		var c dto.DayCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *SQLiteIndexProjector) Close() error {
	return s.db.Close()
}
