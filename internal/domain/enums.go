package domain

// SessionSource records which entry point produced a session.
type SessionSource string

const (
	SourceLog   SessionSource = "log"
	SourceTimer SessionSource = "timer"
)
