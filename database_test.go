package memrank

import (
	"context"
	"testing"

	"github.com/poiesic/memrank/core"
	"github.com/poiesic/memrank/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T, opts ...DatabaseOption) *Database {
	t.Helper()

	opts = append([]DatabaseOption{WithInMemory()}, opts...)
	db, err := NewDatabase("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDatabase_RememberAndSearch(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	records, err := db.Remember(ctx, core.RecordTypeObservation,
		"fix the login bug in the auth service",
		"user prefers dark mode",
		"database migration notes for the next release")
	require.NoError(t, err)
	require.Len(t, records, 3)

	outcome, err := db.Search(ctx, "login bug", search.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, outcome.Results)

	top := outcome.Results[0]
	assert.Equal(t, "fix the login bug in the auth service", top.Record.Content)
	assert.Greater(t, top.Score, 0.0)
}

func TestDatabase_TouchOnRead(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	records, err := db.Remember(ctx, core.RecordTypeObservation, "fix the login bug")
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = db.Search(ctx, "login bug", search.DefaultOptions())
	require.NoError(t, err)

	stored, err := db.Repository().GetMemory(ctx, records[0].Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.AccessCount)
	assert.False(t, stored.LastAccessedAt.IsZero())
}

func TestDatabase_TouchOnReadDisabled(t *testing.T) {
	db := newTestDatabase(t, WithTouchOnRead(false))
	ctx := context.Background()

	records, err := db.Remember(ctx, core.RecordTypeObservation, "fix the login bug")
	require.NoError(t, err)

	_, err = db.Search(ctx, "login bug", search.DefaultOptions())
	require.NoError(t, err)

	stored, err := db.Repository().GetMemory(ctx, records[0].Id)
	require.NoError(t, err)
	assert.Zero(t, stored.AccessCount)
}

func TestDatabase_SearchEmptyCorpus(t *testing.T) {
	db := newTestDatabase(t)

	outcome, err := db.Search(context.Background(), "anything at all", search.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, outcome.Results)
	assert.Zero(t, outcome.TotalMatches)
}

func TestDatabase_IngestWithOptions(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	records, err := db.Ingest(ctx, core.RecordTypePreference,
		[]string{"prefers tabs over spaces"}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, core.RecordTypePreference, records[0].Type)
}
