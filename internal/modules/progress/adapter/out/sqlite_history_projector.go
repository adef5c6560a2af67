package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"leseheft/internal/modules/progress/domain"
	progressout "leseheft/internal/modules/progress/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector mirrors completed sessions into a SQLite table so
// other tools can query practice history with plain SQL. It is a derived
// index: reindex rebuilds it from the session list at any time.
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
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  text_id TEXT NOT NULL,
  text_title TEXT NOT NULL,
  text_type TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  correct_answers INTEGER NOT NULL,
  total_time_seconds INTEGER NOT NULL,
  completed_at TEXT NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions index: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) UpsertSession(ctx context.Context, session domain.CompletedSession) error {
	const stmt = `
INSERT INTO sessions (id, text_id, text_title, text_type, score, total_questions, correct_answers, total_time_seconds, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  text_id=excluded.text_id,
  text_title=excluded.text_title,
  text_type=excluded.text_type,
  score=excluded.score,
  total_questions=excluded.total_questions,
  correct_answers=excluded.correct_answers,
  total_time_seconds=excluded.total_time_seconds,
  completed_at=excluded.completed_at;
`
	_, err := p.db.ExecContext(ctx, stmt,
		session.ID,
		session.TextID,
		session.TextTitle,
		session.TextType,
		session.Score,
		session.TotalQuestions,
		session.CorrectAnswers,
		session.TotalTime,
		session.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}
