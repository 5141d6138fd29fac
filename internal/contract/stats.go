package contract

import "github.com/alexanderramin/focusflow/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest(user string) DashboardRequest {
	return app.NewDashboardRequest(user)
}

type DashboardResponse = app.DashboardResponse

type DetailRequest = app.DetailRequest

func NewDetailRequest(user string) DetailRequest {
	return app.NewDetailRequest(user)
}

type DetailResponse = app.DetailResponse

type StatsErrorCode = app.StatsErrorCode

const (
	StatsErrInvalidUser StatsErrorCode = app.StatsErrInvalidUser
)

type StatsError = app.StatsError
