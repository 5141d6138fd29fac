package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/stats"
)

type statsService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewStatsService(sessions repository.SessionRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *statsService) Dashboard(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": req.User}
	defer func() {
		if resp != nil {
			fields["sessions"] = len(resp.Sessions)
			fields["weekdays"] = len(resp.WeeklyStats)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := resolveNow(req.Now)
	window, err := s.aggregate(ctx, req.User, now)
	if err != nil {
		return nil, err
	}

	return &app.DashboardResponse{
		User:          req.User,
		ReferenceDate: now.Format(time.DateOnly),
		GeneratedAt:   now,
		Sessions:      window.Today,
		WeeklyStats:   window.Stats,
	}, nil
}

func (s *statsService) Detail(ctx context.Context, req app.DetailRequest) (resp *app.DetailResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": req.User}
	defer func() {
		if resp != nil {
			fields["sessions"] = len(resp.Sessions)
			fields["weekdays"] = len(resp.WeeklyStats)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "detail",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := resolveNow(req.Now)
	window, err := s.aggregate(ctx, req.User, now)
	if err != nil {
		return nil, err
	}

	return &app.DetailResponse{
		User:          req.User,
		ReferenceDate: now.Format(time.DateOnly),
		WindowStart:   stats.WindowStart(now).Format(time.DateOnly),
		GeneratedAt:   now,
		Sessions:      window.Week,
		WeeklyStats:   window.Stats,
	}, nil
}

// aggregate loads every session the user owns and buckets them around now.
// There is no caching: each call rescans the user's sessions.
func (s *statsService) aggregate(ctx context.Context, user string, now time.Time) (stats.Window, error) {
	if strings.TrimSpace(user) == "" {
		return stats.Window{}, &app.StatsError{Code: app.StatsErrInvalidUser, Message: "user is required"}
	}

	sessions, err := s.sessions.ListByUser(ctx, user)
	if err != nil {
		return stats.Window{}, fmt.Errorf("loading sessions for %s: %w", user, err)
	}

	return stats.Aggregate(sessions, now), nil
}

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}
