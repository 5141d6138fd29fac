package repository

import (
	"database/sql"
	"time"
)

// timestampLayout is fixed-width so stored UTC timestamps compare correctly
// as strings in range queries.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTimestamp converts a time to its stored form. The zero time is
// stored as SQL NULL.
func formatTimestamp(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(timestampLayout)
}

// parseNullableTime parses a stored timestamp and returns it in UTC. NULL,
// empty and unparseable values come back as the zero time, which readers
// treat as missing.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	for _, layout := range []string{timestampLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s.String); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// nullableIntToInt reads a nullable integer column; NULL becomes 0.
func nullableIntToInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}
