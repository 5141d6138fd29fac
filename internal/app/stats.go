package app

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

type DashboardRequest struct {
	User string
	Now  *time.Time
}

func NewDashboardRequest(user string) DashboardRequest {
	return DashboardRequest{User: user}
}

// DashboardResponse is the at-a-glance view: today's sessions plus the
// rolling-week table.
type DashboardResponse struct {
	User          string                 `json:"user"`
	ReferenceDate string                 `json:"reference_date"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Sessions      []*domain.StudySession `json:"sessions"`
	WeeklyStats   domain.WeeklyStats     `json:"weekly_stats"`
}

type DetailRequest struct {
	User string
	Now  *time.Time
}

func NewDetailRequest(user string) DetailRequest {
	return DetailRequest{User: user}
}

// DetailResponse is the expanded view: every session in the rolling week
// plus the same table.
type DetailResponse struct {
	User          string                 `json:"user"`
	ReferenceDate string                 `json:"reference_date"`
	WindowStart   string                 `json:"window_start"`
	GeneratedAt   time.Time              `json:"generated_at"`
	Sessions      []*domain.StudySession `json:"sessions"`
	WeeklyStats   domain.WeeklyStats     `json:"weekly_stats"`
}

type StatsErrorCode string

const (
	StatsErrInvalidUser StatsErrorCode = "INVALID_USER"
)

type StatsError struct {
	Code    StatsErrorCode
	Message string
}

func (e *StatsError) Error() string {
	return string(e.Code) + ": " + e.Message
}
