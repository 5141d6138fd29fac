package testutil

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/google/uuid"
)

// Monday is 2025-06-16 14:00 UTC, a fixed reference point for date tests.
var Monday = time.Date(2025, 6, 16, 14, 0, 0, 0, time.UTC)

// Session options
type SessionOption func(*domain.StudySession)

func WithSubject(subject string) SessionOption {
	return func(s *domain.StudySession) {
		s.Subject = subject
	}
}

func WithStudyTime(minutes int) SessionOption {
	return func(s *domain.StudySession) {
		s.StudyTime = minutes
	}
}

func WithTimestamp(ts time.Time) SessionOption {
	return func(s *domain.StudySession) {
		s.Timestamp = ts
	}
}

// WithoutTimestamp produces a record as if the store returned one with no
// creation instant.
func WithoutTimestamp() SessionOption {
	return func(s *domain.StudySession) {
		s.Timestamp = time.Time{}
	}
}

func WithSource(src domain.SessionSource) SessionOption {
	return func(s *domain.StudySession) {
		s.Source = src
	}
}

// NewTestSession builds a 25-minute session for user stamped at Monday.
func NewTestSession(user string, opts ...SessionOption) *domain.StudySession {
	s := &domain.StudySession{
		ID:        uuid.New().String(),
		User:      user,
		Subject:   "test",
		StudyTime: domain.CycleStudyMinutes,
		Source:    domain.SourceLog,
		Timestamp: Monday,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
