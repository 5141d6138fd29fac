package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/teatest"
	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(db)

	return &App{
		Sessions: service.NewSessionService(repo),
		Stats:    service.NewStatsService(repo),
		Config: &config.Config{
			DataDir:        t.TempDir(),
			DBPath:         ":memory:",
			DefaultMinutes: 60,
		},
		Now: func() time.Time { return testutil.Monday },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func listAll(t *testing.T, a *App, user string) []*domain.StudySession {
	t.Helper()
	sessions, err := a.Sessions.ListRecent(context.Background(), user, 30, testutil.Monday)
	require.NoError(t, err)
	return sessions
}

// --- log ---

func TestLogCmd_DecomposesDuration(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Organic Chemistry", "--duration", "65")
	require.NoError(t, err)
	assert.Contains(t, out, "Session for 'Organic Chemistry' started. Logged 2 cycle(s).")

	sessions := listAll(t, a, "alice")
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Equal(t, 25, s.StudyTime)
		assert.Equal(t, "Organic Chemistry", s.Subject)
		assert.Equal(t, domain.SourceLog, s.Source)
		assert.True(t, s.Timestamp.Equal(testutil.Monday))
	}
}

func TestLogCmd_PositionalSubjectAndConfigDefault(t *testing.T) {
	a := testApp(t)
	a.Config.DefaultMinutes = 90

	out, err := executeCmd(t, a, "log", "--user", "alice", "Physics")
	require.NoError(t, err)
	assert.Contains(t, out, "Session for 'Physics' started. Logged 3 cycle(s).")
}

func TestLogCmd_InvalidDurationDefaultsToSixty(t *testing.T) {
	a := testApp(t)
	a.Config.DefaultMinutes = 120

	for _, raw := range []string{"", "abc", "-5"} {
		out, err := executeCmd(t, a, "log", "--user", "bob", "--subject", "x", "--duration="+raw)
		require.NoError(t, err, "duration %q", raw)
		assert.Contains(t, out, "Logged 2 cycle(s).", "duration %q", raw)
	}
}

func TestLogCmd_ShortDurationRecordsNothing(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "x", "--duration", "29")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 0 cycle(s).")
	assert.Contains(t, out, "shorter than one 30-minute cycle")
	assert.Empty(t, listAll(t, a, "alice"))
}

func TestLogCmd_UserFromConfig(t *testing.T) {
	a := testApp(t)
	a.Config.User = "carol"

	_, err := executeCmd(t, a, "log", "--subject", "x", "--duration", "30")
	require.NoError(t, err)
	assert.Len(t, listAll(t, a, "carol"), 1)
}

func TestLogCmd_NoUser(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "log", "--subject", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoUser)
}

type failingLogUseCase struct{}

func (failingLogUseCase) LogSession(_ context.Context, req app.LogSessionRequest) (*app.LogSessionResponse, error) {
	stored := []*domain.StudySession{testutil.NewTestSession(req.User)}
	return &app.LogSessionResponse{RequestedMinutes: 90, Cycles: 3, Sessions: stored},
		&app.LogSessionError{Code: app.LogSessionErrStore, Message: "stored 1 of 3 cycles", Err: errors.New("disk full")}
}

func TestLogCmd_PartialFailureReported(t *testing.T) {
	a := testApp(t)
	a.LogSession = failingLogUseCase{}

	out, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "x", "--duration", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_FAILURE")
	assert.Contains(t, out, "1 of 3 cycle(s) were saved")
}

// --- dashboard / stats ---

func TestDashboardCmd_EndToEnd(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Organic Chemistry", "--duration", "65")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "dashboard", "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-16")
	assert.Contains(t, out, "Organic Chemistry")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "50m across 2 session(s)")
}

func TestDashboardCmd_JSON(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Chem", "--duration", "65")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "dashboard", "--user", "alice", "--json")
	require.NoError(t, err)

	var resp struct {
		User        string                        `json:"user"`
		Sessions    []map[string]any              `json:"sessions"`
		WeeklyStats map[string]domain.DailyBucket `json:"weekly_stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "alice", resp.User)
	assert.Len(t, resp.Sessions, 2)
	assert.Equal(t, map[string]domain.DailyBucket{"Monday": {TotalStudyTime: 50, SessionCount: 2}}, resp.WeeklyStats)
}

func TestDashboardCmd_OtherUsersHidden(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Alice Topic", "--duration", "30")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "dashboard", "--user", "bob")
	require.NoError(t, err)
	assert.NotContains(t, out, "Alice Topic")
	assert.Contains(t, out, "No sessions logged today.")
}

func TestDashboardCmd_DateFlag(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Chem", "--duration", "30")
	require.NoError(t, err)

	out, err := executeCmd(t, a, "dashboard", "--user", "alice", "--date", "2025-06-17")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions logged today.")
	assert.Contains(t, out, "Monday")

	_, err = executeCmd(t, a, "dashboard", "--user", "alice", "--date", "17/06/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestStatsCmd_WeekWindow(t *testing.T) {
	a := testApp(t)
	ctx := context.Background()

	for _, days := range []int{0, 3, 6, 7} {
		req := app.NewLogSessionRequest("alice", "day-"+string(rune('0'+days)), 30)
		ts := testutil.Monday.AddDate(0, 0, -days)
		req.Now = &ts
		_, err := a.Sessions.LogSession(ctx, req)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, a, "stats", "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-10")
	assert.Contains(t, out, "day-0")
	assert.Contains(t, out, "day-6")
	assert.NotContains(t, out, "day-7")

	out, err = executeCmd(t, a, "stats", "--user", "alice", "--json")
	require.NoError(t, err)
	var resp app.DetailResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Sessions, 3)
	assert.Equal(t, "2025-06-10", resp.WindowStart)
	assert.Equal(t, 75, resp.WeeklyStats.TotalStudyTime())
}

// --- session ---

func TestSessionListCmd(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "session", "list", "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions found.")

	_, err = executeCmd(t, a, "log", "--user", "alice", "--subject", "Linear Algebra", "--duration", "60")
	require.NoError(t, err)

	out, err = executeCmd(t, a, "session", "list", "--user", "alice", "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Linear Algebra")
	assert.Contains(t, out, "25m")
}

func TestSessionShowCmd(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Statistics", "--duration", "30")
	require.NoError(t, err)
	sessions := listAll(t, a, "alice")
	require.Len(t, sessions, 1)

	out, err := executeCmd(t, a, "session", "show", "--user", "alice", sessions[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, sessions[0].ID)
	assert.Contains(t, out, "Statistics")
	assert.Contains(t, out, "Mon 2025-06-16 14:00")

	_, err = executeCmd(t, a, "session", "show", "--user", "alice", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionShowCmd_OtherUsersRecordHidden(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "log", "--user", "alice", "--subject", "Diary", "--duration", "30")
	require.NoError(t, err)
	sessions := listAll(t, a, "alice")
	require.Len(t, sessions, 1)

	out, err := executeCmd(t, a, "session", "show", "--user", "bob", sessions[0].ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NotContains(t, out, "Diary")
}

func TestSessionShowCmd_NoUser(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "session", "show", "some-id")
	assert.ErrorIs(t, err, errNoUser)
}

// --- timer ---

func TestTimerCmd_LogsCompletedCycles(t *testing.T) {
	a := testApp(t)
	a.RunProgram = teatest.Run(t, func(d *teatest.Driver) {
		d.Send(studyTick())
		d.Send(breakTick())
		d.Send(studyTick())
		d.PressKey('q')
	})

	out, err := executeCmd(t, a, "timer", "--user", "alice", "--subject", "Biology", "--duration", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "Session for 'Biology' started. Logged 2 cycle(s).")

	sessions := listAll(t, a, "alice")
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Equal(t, domain.SourceTimer, s.Source)
		assert.Equal(t, 25, s.StudyTime)
	}
}

func TestTimerCmd_NothingCompleted(t *testing.T) {
	a := testApp(t)
	a.RunProgram = teatest.Run(t, func(d *teatest.Driver) {
		d.PressKey('q')
	})

	out, err := executeCmd(t, a, "timer", "--user", "alice", "--subject", "Biology")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing was recorded")
	assert.Empty(t, listAll(t, a, "alice"))
}

func TestTimerCmd_TooShort(t *testing.T) {
	a := testApp(t)
	a.RunProgram = teatest.Run(t, nil)

	_, err := executeCmd(t, a, "timer", "--user", "alice", "--subject", "x", "--duration", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shorter than one 30-minute cycle")
}

// --- config ---

func TestConfigShowCmd(t *testing.T) {
	a := testApp(t)
	a.Config.User = "alice"

	out, err := executeCmd(t, a, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_minutes")
	assert.Contains(t, out, "notify_sound")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "(defaults and environment only)")
}

func TestValidateTimerMinutes(t *testing.T) {
	assert.NoError(t, validateTimerMinutes(""))
	assert.NoError(t, validateTimerMinutes("30"))
	assert.Error(t, validateTimerMinutes("29"))
	assert.Error(t, validateTimerMinutes("abc"))
	assert.Error(t, validateTimerMinutes("-30"))
}
