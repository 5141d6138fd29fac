// Package stats buckets study sessions into today and rolling-week views.
package stats

import (
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
)

// WindowDays is the width of the rolling week: the reference date and the
// six calendar days before it.
const WindowDays = 7

// Window is the result of aggregating one user's sessions around a
// reference date.
type Window struct {
	Today []*domain.StudySession
	Week  []*domain.StudySession
	Stats domain.WeeklyStats
}

// Aggregate buckets sessions relative to the calendar date of ref. Session
// dates are taken in ref's location. Sessions keep their input order, and
// sessions without a timestamp are skipped.
//
// A session belongs to the week when DaysBetween(ref, ts) < WindowDays. The
// lower bound is exclusive at seven days; there is no upper bound, so
// sessions dated after ref still count.
func Aggregate(sessions []*domain.StudySession, ref time.Time) Window {
	w := Window{
		Today: []*domain.StudySession{},
		Week:  []*domain.StudySession{},
		Stats: domain.WeeklyStats{},
	}
	loc := ref.Location()

	for _, s := range sessions {
		if s == nil || !s.HasTimestamp() {
			continue
		}
		local := s.Timestamp.In(loc)
		days := DaysBetween(ref, local)

		if days == 0 {
			w.Today = append(w.Today, s)
		}
		if days < WindowDays {
			w.Week = append(w.Week, s)
			w.Stats.Add(local.Weekday(), s.StudyTime)
		}
	}
	return w
}

// DaysBetween returns the number of calendar days from the date of t to the
// date of ref. It is negative when t falls on a later date than ref. Both
// dates are read in their own locations, so callers should convert first.
func DaysBetween(ref, t time.Time) int {
	return int(civilDate(ref).Sub(civilDate(t)).Hours() / 24)
}

// civilDate maps a time to midnight UTC of its wall-clock date, which keeps
// date arithmetic free of DST offsets.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WindowStart returns the first instant of the rolling week ending on ref's
// date, in ref's location.
func WindowStart(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d-(WindowDays-1), 0, 0, 0, 0, ref.Location())
}
