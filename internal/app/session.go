package app

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

type LogSessionRequest struct {
	User             string
	Subject          string
	RequestedMinutes int
	Source           domain.SessionSource
	Now              *time.Time
}

func NewLogSessionRequest(user, subject string, requestedMinutes int) LogSessionRequest {
	return LogSessionRequest{
		User:             user,
		Subject:          subject,
		RequestedMinutes: requestedMinutes,
		Source:           domain.SourceLog,
	}
}

// LogSessionResponse lists the sessions that were stored. When an append
// fails part way, it is returned alongside the error and holds only the
// sessions written before the failure.
type LogSessionResponse struct {
	RequestedMinutes int
	Cycles           int
	Sessions         []*domain.StudySession
}

type LogSessionErrorCode string

const (
	LogSessionErrInvalidUser LogSessionErrorCode = "INVALID_USER"
	LogSessionErrStore       LogSessionErrorCode = "STORE_FAILURE"
)

type LogSessionError struct {
	Code    LogSessionErrorCode
	Message string
	Err     error
}

func (e *LogSessionError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *LogSessionError) Unwrap() error {
	return e.Err
}
