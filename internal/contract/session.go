package contract

import "github.com/alexanderramin/focusflow/internal/app"

type LogSessionRequest = app.LogSessionRequest

func NewLogSessionRequest(user, subject string, requestedMinutes int) LogSessionRequest {
	return app.NewLogSessionRequest(user, subject, requestedMinutes)
}

type LogSessionResponse = app.LogSessionResponse

type LogSessionErrorCode = app.LogSessionErrorCode

const (
	LogSessionErrInvalidUser LogSessionErrorCode = app.LogSessionErrInvalidUser
	LogSessionErrStore       LogSessionErrorCode = app.LogSessionErrStore
)

type LogSessionError = app.LogSessionError
