package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/contract"
	"github.com/alexanderramin/focusflow/internal/domain"
)

const barWidth = 20

// FormatDashboard renders today's sessions and the weekly table.
func FormatDashboard(resp *contract.DashboardResponse, now time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("Today · %s", resp.ReferenceDate)
	if len(resp.Sessions) == 0 {
		b.WriteString(RenderBox(title, Dim("No sessions logged today.")))
	} else {
		total := 0
		for _, s := range resp.Sessions {
			total += s.StudyTime
		}
		content := FormatSessions(resp.Sessions, now) + "\n" +
			fmt.Sprintf("%s %s across %d session(s)", Bold("Total:"), FormatMinutes(total), len(resp.Sessions))
		b.WriteString(RenderBox(title, content))
	}
	b.WriteString("\n")
	b.WriteString(RenderBox("Last 7 days", FormatWeeklyStats(resp.WeeklyStats)))
	b.WriteString("\n")
	return b.String()
}

// FormatDetail renders every session in the rolling week and the weekly table.
func FormatDetail(resp *contract.DetailResponse, now time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("Sessions · %s → %s", resp.WindowStart, resp.ReferenceDate)
	if len(resp.Sessions) == 0 {
		b.WriteString(RenderBox(title, Dim("No sessions in the last 7 days.")))
	} else {
		b.WriteString(RenderBox(title, FormatSessions(resp.Sessions, now)))
	}
	b.WriteString("\n")
	b.WriteString(RenderBox("Weekly stats", FormatWeeklyStats(resp.WeeklyStats)))
	b.WriteString("\n")
	return b.String()
}

// FormatSessions renders sessions as a table in the order given.
func FormatSessions(sessions []*domain.StudySession, now time.Time) string {
	headers := []string{"ID", "SUBJECT", "STUDY", "WHEN", "SOURCE"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		subject := s.Subject
		if subject == "" {
			subject = Dim("(none)")
		} else {
			subject = Truncate(subject, 32)
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			subject,
			FormatMinutes(s.StudyTime),
			HumanTimestampFrom(s.Timestamp, now),
			SourceBadge(s.Source),
		})
	}
	return RenderTable(headers, rows, 2)
}

// FormatWeeklyStats renders one row per weekday that has sessions, Monday
// first, with a bar scaled to the busiest day.
func FormatWeeklyStats(stats domain.WeeklyStats) string {
	if len(stats) == 0 {
		return Dim("No study time recorded this week.")
	}

	max := 0
	for _, b := range stats {
		if b.TotalStudyTime > max {
			max = b.TotalStudyTime
		}
	}

	headers := []string{"DAY", "STUDY", "SESSIONS", ""}
	var rows [][]string
	for _, day := range domain.WeekdayOrder {
		bucket, ok := stats[day.String()]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			day.String(),
			FormatMinutes(bucket.TotalStudyTime),
			fmt.Sprintf("%d", bucket.SessionCount),
			RenderBar(bucket.TotalStudyTime, max, barWidth),
		})
	}

	out := RenderTable(headers, rows, 1, 2)
	out += fmt.Sprintf("\n%s %s in %d session(s)",
		Bold("Week:"), FormatMinutes(stats.TotalStudyTime()), stats.SessionCount())
	return out
}
