package domain

import "time"

// DailyBucket aggregates the qualifying sessions of one weekday.
type DailyBucket struct {
	TotalStudyTime int `json:"total_study_time"`
	SessionCount   int `json:"session_count"`
}

// WeeklyStats maps an English weekday name to its bucket. Weekdays without
// qualifying sessions have no key.
type WeeklyStats map[string]DailyBucket

// Add folds one session's study time into the bucket for day.
func (w WeeklyStats) Add(day time.Weekday, studyTime int) {
	b := w[day.String()]
	b.TotalStudyTime += studyTime
	b.SessionCount++
	w[day.String()] = b
}

// TotalStudyTime sums study time across all buckets.
func (w WeeklyStats) TotalStudyTime() int {
	total := 0
	for _, b := range w {
		total += b.TotalStudyTime
	}
	return total
}

// SessionCount sums session counts across all buckets.
func (w WeeklyStats) SessionCount() int {
	total := 0
	for _, b := range w {
		total += b.SessionCount
	}
	return total
}

// WeekdayOrder lists weekday names starting from Monday.
var WeekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
