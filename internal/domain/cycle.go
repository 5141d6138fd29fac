package domain

import (
	"strconv"
	"strings"
)

const (
	// CycleMinutes is the requested time consumed by one study cycle.
	CycleMinutes = 30
	// CycleStudyMinutes is the study time recorded for one cycle. The
	// remaining CycleMinutes-CycleStudyMinutes is a break and is not logged.
	CycleStudyMinutes = 25
	// CycleBreakMinutes is the unrecorded break that closes a cycle.
	CycleBreakMinutes = CycleMinutes - CycleStudyMinutes
	// DefaultRequestedMinutes replaces a missing or unusable duration.
	DefaultRequestedMinutes = 60
)

// CycleCount returns how many whole cycles fit into requestedMinutes.
func CycleCount(requestedMinutes int) int {
	if requestedMinutes < CycleMinutes {
		return 0
	}
	return requestedMinutes / CycleMinutes
}

// Decompose splits a requested duration into study cycles and returns the
// study time of each one. Durations shorter than one cycle yield no cycles.
func Decompose(requestedMinutes int) []int {
	n := CycleCount(requestedMinutes)
	cycles := make([]int, n)
	for i := range cycles {
		cycles[i] = CycleStudyMinutes
	}
	return cycles
}

// ParseRequestedMinutes reads a user-supplied duration. Blank, non-numeric
// and negative values fall back to DefaultRequestedMinutes.
func ParseRequestedMinutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRequestedMinutes
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return DefaultRequestedMinutes
	}
	return n
}
