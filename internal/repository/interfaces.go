package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// SessionRepo is the record store for study sessions. It only appends and
// reads; sessions are never updated or deleted.
type SessionRepo interface {
	// Append stores a session and assigns its ID when empty.
	Append(ctx context.Context, s *domain.StudySession) error
	// GetByID returns the session with id owned by user. Sessions owned by
	// anyone else are reported as ErrNotFound.
	GetByID(ctx context.Context, user, id string) (*domain.StudySession, error)
	// ListByUser returns every session owned by user in insertion order,
	// including rows with a missing timestamp or study time.
	ListByUser(ctx context.Context, user string) ([]*domain.StudySession, error)
	// ListByUserSince returns the user's timestamped sessions at or after
	// since, in insertion order. It is served by the (user, timestamp) index.
	ListByUserSince(ctx context.Context, user string, since time.Time) ([]*domain.StudySession, error)
}
