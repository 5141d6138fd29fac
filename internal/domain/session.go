package domain

import "time"

// StudySession is one persisted study record. Records are append-only.
type StudySession struct {
	ID        string        `json:"id"`
	User      string        `json:"user"`
	Subject   string        `json:"subject"`
	StudyTime int           `json:"study_time"`
	Source    SessionSource `json:"source"`

	// Timestamp is the creation instant. The zero value means the store
	// returned a record without one.
	Timestamp time.Time `json:"timestamp"`
}

// HasTimestamp reports whether the record carries a creation instant.
func (s *StudySession) HasTimestamp() bool {
	return !s.Timestamp.IsZero()
}
