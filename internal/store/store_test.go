package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening an already-migrated database is a no-op, not an error.
	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.RecordRun(ctx, Run{
		SourceFile: "data/site_a.dat",
		Title:      "Site A",
		ValueCount: 65,
		GridMin:    19.2,
		GridMax:    21.8,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := s.RecordRun(ctx, Run{
		SourceFile: "data/site_b.dat",
		Title:      "Site B",
		ValueCount: 65,
		GridMin:    18.9,
		GridMax:    22.1,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byID := map[string]Run{runs[0].ID: runs[0], runs[1].ID: runs[1]}
	got, ok := byID[first.ID]
	require.True(t, ok)
	assert.Equal(t, "Site A", got.Title)
	assert.Equal(t, "data/site_a.dat", got.SourceFile)
	assert.Equal(t, 65, got.ValueCount)
	assert.InDelta(t, 19.2, got.GridMin, 1e-9)
	assert.InDelta(t, 21.8, got.GridMax, 1e-9)
}

func TestListRunsEmpty(t *testing.T) {
	s := openTestStore(t)
	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}
