package history

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestRecordAndGet(t *testing.T) {
	store := testStore(t)

	batch := &Batch{
		MediaType: "tv",
		Title:     "Breaking Bad",
		Total:     3,
		Succeeded: 2,
		Moves: []Move{
			{Src: "/dl/a.mkv", Dest: "/lib/Season 01/a.mkv", Outcome: "succeeded"},
			{Src: "/dl/b.mkv", Dest: "/lib/Season 01/b.mkv", Outcome: "succeeded"},
			{Src: "/dl/c.mkv", Dest: "/lib/Season 01/c.mkv", Outcome: "skipped", Reason: "target already exists"},
		},
	}
	require.NoError(t, store.Record(batch))
	assert.NotZero(t, batch.ID)
	assert.False(t, batch.CreatedAt.IsZero())

	got, err := store.Get(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", got.Title)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Succeeded)
	require.Len(t, got.Moves, 3)
	assert.Equal(t, "/dl/a.mkv", got.Moves[0].Src)
	assert.Equal(t, "skipped", got.Moves[2].Outcome)
	assert.Equal(t, "target already exists", got.Moves[2].Reason)
}

func TestListNewestFirst(t *testing.T) {
	store := testStore(t)

	for _, title := range []string{"First", "Second", "Third"} {
		require.NoError(t, store.Record(&Batch{MediaType: "tv", Title: title}))
	}

	batches, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, "Third", batches[0].Title)
	assert.Equal(t, "First", batches[2].Title)

	// Listing excludes moves; they load on Get only.
	assert.Empty(t, batches[0].Moves)
}

func TestListLimit(t *testing.T) {
	store := testStore(t)

	for _, title := range []string{"First", "Second", "Third"} {
		require.NoError(t, store.Record(&Batch{MediaType: "movie", Title: title}))
	}

	batches, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "Third", batches[0].Title)
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)

	_, err := store.Get(12345)
	assert.Error(t, err)
}
