package service

import (
	"context"
	"time"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/domain"
)

type SessionService interface {
	LogSession(ctx context.Context, req app.LogSessionRequest) (*app.LogSessionResponse, error)
	GetByID(ctx context.Context, user, id string) (*domain.StudySession, error)
	// ListRecent returns the user's sessions dated within the last days
	// calendar days up to now, in insertion order.
	ListRecent(ctx context.Context, user string, days int, now time.Time) ([]*domain.StudySession, error)
}

type StatsService interface {
	Dashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
	Detail(ctx context.Context, req app.DetailRequest) (*app.DetailResponse, error)
}
