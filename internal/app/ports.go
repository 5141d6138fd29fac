package app

import "context"

type LogSessionUseCase interface {
	LogSession(ctx context.Context, req LogSessionRequest) (*LogSessionResponse, error)
}

type DashboardUseCase interface {
	Dashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type DetailUseCase interface {
	Detail(ctx context.Context, req DetailRequest) (*DetailResponse, error)
}
