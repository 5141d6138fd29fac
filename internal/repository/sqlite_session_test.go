package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestSetup(t *testing.T) *SQLiteSessionRepo {
	t.Helper()
	return NewSQLiteSessionRepo(testutil.NewTestDB(t))
}

func TestSessionRepo_AppendAndGetByID(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("a", testutil.WithSubject("Biology"))
	require.NoError(t, repo.Append(ctx, sess))

	fetched, err := repo.GetByID(ctx, "a", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, "a", fetched.User)
	assert.Equal(t, "Biology", fetched.Subject)
	assert.Equal(t, 25, fetched.StudyTime)
	assert.Equal(t, domain.SourceLog, fetched.Source)
	assert.True(t, sess.Timestamp.Equal(fetched.Timestamp))
}

func TestSessionRepo_AppendAssignsID(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("a")
	sess.ID = ""
	require.NoError(t, repo.Append(ctx, sess))
	assert.NotEmpty(t, sess.ID)
}

func TestSessionRepo_TimestampKeepsSubSecondPrecision(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	ts := time.Date(2025, 6, 16, 9, 30, 15, 123456789, time.UTC)
	sess := testutil.NewTestSession("a", testutil.WithTimestamp(ts))
	require.NoError(t, repo.Append(ctx, sess))

	fetched, err := repo.GetByID(ctx, "a", sess.ID)
	require.NoError(t, err)
	assert.True(t, ts.Equal(fetched.Timestamp), "got %s", fetched.Timestamp)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "a", "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListByUser_InsertionOrder(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	// Inserted out of chronological order on purpose.
	s1 := testutil.NewTestSession("a", testutil.WithTimestamp(testutil.Monday))
	s2 := testutil.NewTestSession("a", testutil.WithTimestamp(testutil.Monday.Add(-48*time.Hour)))
	s3 := testutil.NewTestSession("a", testutil.WithTimestamp(testutil.Monday.Add(time.Hour)))
	for _, s := range []*domain.StudySession{s1, s2, s3} {
		require.NoError(t, repo.Append(ctx, s))
	}

	list, err := repo.ListByUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, s1.ID, list[0].ID)
	assert.Equal(t, s2.ID, list[1].ID)
	assert.Equal(t, s3.ID, list[2].ID)
}

func TestSessionRepo_ListByUser_FiltersByUser(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestSession("a")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestSession("b")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestSession("a")))

	list, err := repo.ListByUser(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, "a", s.User)
	}
}

func TestSessionRepo_ListByUser_Empty(t *testing.T) {
	repo := sessionTestSetup(t)

	list, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSessionRepo_ListByUser_MissingFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	// Rows written by another tool: no study_time, no or garbled timestamp.
	_, err := database.Exec(`INSERT INTO study_sessions (id, user, subject) VALUES ('bare', 'a', 'x')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO study_sessions (id, user, timestamp) VALUES ('garbled', 'a', 'yesterday')`)
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, 0, s.StudyTime)
		assert.False(t, s.HasTimestamp())
	}
}

func TestSessionRepo_ZeroTimestampStoredAsNull(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	sess := testutil.NewTestSession("a", testutil.WithoutTimestamp())
	require.NoError(t, repo.Append(ctx, sess))

	var isNull bool
	require.NoError(t, database.QueryRow(`SELECT timestamp IS NULL FROM study_sessions WHERE id = ?`, sess.ID).Scan(&isNull))
	assert.True(t, isNull)
}

func TestSessionRepo_ListByUserSince(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	since := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	before := testutil.NewTestSession("a", testutil.WithTimestamp(since.Add(-time.Nanosecond)))
	atStart := testutil.NewTestSession("a", testutil.WithTimestamp(since))
	later := testutil.NewTestSession("a", testutil.WithTimestamp(since.Add(90*time.Minute+500*time.Millisecond)))
	missing := testutil.NewTestSession("a", testutil.WithoutTimestamp())
	other := testutil.NewTestSession("b", testutil.WithTimestamp(since.Add(time.Hour)))
	for _, s := range []*domain.StudySession{before, atStart, later, missing, other} {
		require.NoError(t, repo.Append(ctx, s))
	}

	list, err := repo.ListByUserSince(ctx, "a", since)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, atStart.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)
}

func TestSessionRepo_ListByUserSince_ConvertsToUTC(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	// 02:00 in UTC+3 is 23:00 UTC the previous day.
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	since := time.Date(2025, 6, 10, 2, 0, 0, 0, plus3)
	inside := testutil.NewTestSession("a", testutil.WithTimestamp(time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)))
	require.NoError(t, repo.Append(ctx, inside))

	list, err := repo.ListByUserSince(ctx, "a", since)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSessionRepo_AppendFailureIsWrapped(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := assert.AnError
	repo := NewSQLiteSessionRepo(&testutil.FailOnNthExec{DBTX: database, FailOn: 1, Err: boom})

	err := repo.Append(context.Background(), testutil.NewTestSession("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "inserting study session")
}

func TestSessionRepo_GetByID_OtherUserNotFound(t *testing.T) {
	repo := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("alice", testutil.WithSubject("Diary"))
	require.NoError(t, repo.Append(ctx, sess))

	_, err := repo.GetByID(ctx, "bob", sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	fetched, err := repo.GetByID(ctx, "alice", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diary", fetched.Subject)
}

func TestSessionRepo_ListByUserSince_OffsetRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	insert := func(id, ts string) {
		t.Helper()
		_, err := database.ExecContext(ctx,
			`INSERT INTO study_sessions (id, user, subject, study_time, timestamp) VALUES (?, 'a', 'x', 25, ?)`, id, ts)
		require.NoError(t, err)
	}
	// 01:00+05:00 is 20:00 UTC the day before: text sorts after since, instant is before it.
	insert("early", "2025-06-16T01:00:00+05:00")
	// 23:30-05:00 is 04:30 UTC the next day: text sorts before since, instant is after it.
	insert("late", "2025-06-15T23:30:00-05:00")
	insert("utc", "2025-06-16T00:00:00Z")

	since := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	list, err := repo.ListByUserSince(ctx, "a", since)
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
		assert.Equal(t, time.UTC, s.Timestamp.Location())
	}
	assert.Equal(t, []string{"late", "utc"}, ids)
}
