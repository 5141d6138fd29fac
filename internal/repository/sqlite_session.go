package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/focusflow/internal/db"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, user, subject, study_time, timestamp, source`

func (r *SQLiteSessionRepo) Append(ctx context.Context, s *domain.StudySession) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Source == "" {
		s.Source = domain.SourceLog
	}
	query := `INSERT INTO study_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.User,
		s.Subject,
		s.StudyTime,
		formatTimestamp(s.Timestamp),
		string(s.Source),
	)
	if err != nil {
		return fmt.Errorf("inserting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, user, id string) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = ? AND user = ?`
	row := r.db.QueryRowContext(ctx, query, id, user)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, user string) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE user = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by user: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// maxZoneOffset bounds how far a stored wall clock with a non-UTC offset
// can sit from its UTC instant.
const maxZoneOffset = 14 * time.Hour

// ListByUserSince scans the index from a bound widened by maxZoneOffset, so
// rows written with a non-UTC offset are still reached, then keeps the rows
// whose instant is at or after since.
func (r *SQLiteSessionRepo) ListByUserSince(ctx context.Context, user string, since time.Time) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE user = ? AND timestamp IS NOT NULL AND timestamp >= ?
		ORDER BY rowid`
	lower := since.Add(-maxZoneOffset).UTC().Format(timestampLayout)
	rows, err := r.db.QueryContext(ctx, query, user, lower)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by user since %s: %w", since.Format(time.DateOnly), err)
	}
	defer rows.Close()

	candidates, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	sessions := candidates[:0]
	for _, s := range candidates {
		if s.HasTimestamp() && !s.Timestamp.Before(since) {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.StudySession, error) {
	s, err := r.scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}
	return s, nil
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	sessions := []*domain.StudySession{}
	for rows.Next() {
		s, err := r.scanInto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) scanInto(row rowScanner) (*domain.StudySession, error) {
	var s domain.StudySession
	var studyTime sql.NullInt64
	var ts sql.NullString
	var source string

	if err := row.Scan(&s.ID, &s.User, &s.Subject, &studyTime, &ts, &source); err != nil {
		return nil, err
	}
	s.StudyTime = nullableIntToInt(studyTime)
	s.Timestamp = parseNullableTime(ts)
	s.Source = domain.SessionSource(source)
	return &s, nil
}
