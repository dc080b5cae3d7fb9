// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookscout/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{Path: t.TempDir(), MaxEntries: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.HistoryConfig{Path: dir})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening an existing database must not fail.
	s, err = Open(types.HistoryConfig{Path: dir})
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Title: "dune", ResultTitle: "Dune", ResultAuthor: "Frank Herbert", NumFound: 312, SearchedAt: base},
		{Title: "the hobbit", ResultTitle: "The Hobbit", ResultAuthor: "J.R.R. Tolkien", NumFound: 487, SearchedAt: base.Add(time.Minute)},
		{Title: "no such book", NumFound: 0, SearchedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Record(ctx, e))
	}

	got, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "no such book", got[0].Title)
	assert.Equal(t, "the hobbit", got[1].Title)
	assert.Equal(t, "dune", got[2].Title)

	assert.Equal(t, "J.R.R. Tolkien", got[1].ResultAuthor)
	assert.Equal(t, 487, got[1].NumFound)
	assert.True(t, got[1].SearchedAt.Equal(base.Add(time.Minute)))
}

func TestRecentLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Entry{
			Title:      "query",
			SearchedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecordFillsTimestamp(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Entry{Title: "dune"}))

	got, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].SearchedAt.IsZero())
}

func TestClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Entry{Title: "a"}))
	require.NoError(t, s.Record(ctx, Entry{Title: "b"}))

	removed, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	got, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
