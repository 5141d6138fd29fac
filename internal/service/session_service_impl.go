package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

// LogSession decomposes the requested minutes into cycles and appends one
// session per cycle, all stamped with the same instant. Appends are not
// transactional: on failure the sessions already stored are returned with
// the error.
func (s *sessionService) LogSession(ctx context.Context, req app.LogSessionRequest) (resp *app.LogSessionResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user":              req.User,
		"requested_minutes": req.RequestedMinutes,
	}
	defer func() {
		if resp != nil {
			fields["cycles"] = resp.Cycles
			fields["stored"] = len(resp.Sessions)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if strings.TrimSpace(req.User) == "" {
		return nil, &app.LogSessionError{Code: app.LogSessionErrInvalidUser, Message: "user is required"}
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	source := req.Source
	if source == "" {
		source = domain.SourceLog
	}

	cycles := domain.Decompose(req.RequestedMinutes)
	resp = &app.LogSessionResponse{
		RequestedMinutes: req.RequestedMinutes,
		Cycles:           len(cycles),
		Sessions:         make([]*domain.StudySession, 0, len(cycles)),
	}

	for i, studyTime := range cycles {
		session := &domain.StudySession{
			User:      req.User,
			Subject:   req.Subject,
			StudyTime: studyTime,
			Source:    source,
			Timestamp: now,
		}
		if err = s.sessions.Append(ctx, session); err != nil {
			return resp, &app.LogSessionError{
				Code:    app.LogSessionErrStore,
				Message: fmt.Sprintf("stored %d of %d cycles", i, len(cycles)),
				Err:     err,
			}
		}
		resp.Sessions = append(resp.Sessions, session)
	}

	return resp, nil
}

func (s *sessionService) GetByID(ctx context.Context, user, id string) (*domain.StudySession, error) {
	return s.sessions.GetByID(ctx, user, id)
}

func (s *sessionService) ListRecent(ctx context.Context, user string, days int, now time.Time) ([]*domain.StudySession, error) {
	if days <= 0 {
		days = 1
	}
	y, m, d := now.Date()
	since := time.Date(y, m, d-(days-1), 0, 0, 0, 0, now.Location())

	sessions, err := s.sessions.ListByUserSince(ctx, user, since)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	return sessions, nil
}
