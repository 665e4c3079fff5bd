package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir(), zerolog.Nop(), nil)
	key := domain.ComputeFingerprint("https://go.dev/blog", "backend engineer")
	want := domain.SummaryResult{
		URL:     "https://go.dev/blog",
		Title:   "Go blog",
		Summary: "Release notes.",
		Tags:    []string{"go", "release"},
		Sections: []domain.Section{
			{
				Title:        "Generics",
				Summary:      "Type parameters.",
				KeyPoints:    []string{"constraints"},
				CodeExamples: []domain.CodeExample{{Code: "func F[T any]()", Language: "go"}},
			},
		},
		PracticalApplication: &domain.PracticalApplication{
			RelevanceScore:   7,
			RelevanceSummary: "Useful.",
			KeyTakeaways:     []string{"upgrade"},
		},
	}

	store.Put(context.Background(), key, want)

	got, ok := store.Get(context.Background(), key)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStoreRoundTripKeepsEmptyCollections(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir(), zerolog.Nop(), nil)
	key := domain.ComputeFingerprint("topic", "profile")
	want := domain.SummaryResult{URL: "https://x", Tags: []string{}, Sections: []domain.Section{}, Errors: []domain.SummaryError{}}

	store.Put(context.Background(), key, want)

	got, ok := store.Get(context.Background(), key)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStoreWritesPrettyPrintedFileNamedByFingerprint(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root, zerolog.Nop(), nil)
	key := domain.ComputeFingerprint("a", "b")

	store.Put(context.Background(), key, domain.SummaryResult{URL: "https://x"})

	data, err := os.ReadFile(filepath.Join(root, key.String()+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"url\": \"https://x\"")
}

func TestStorePutReplacesEntryWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root, zerolog.Nop(), nil)
	key := domain.ComputeFingerprint("a", "b")

	store.Put(context.Background(), key, domain.SummaryResult{URL: "https://first"})
	store.Put(context.Background(), key, domain.SummaryResult{URL: "https://second"})

	got, ok := store.Get(context.Background(), key)
	require.True(t, ok)
	assert.Equal(t, "https://second", got.URL)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, key.String()+".json", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(cacheFileMode), info.Mode().Perm())
}

func TestStorePruneIgnoresHalfWrittenEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Once()
	store := NewStore(root, zerolog.Nop(), clock)

	temp := filepath.Join(root, ".entry-123.tmp")
	require.NoError(t, os.WriteFile(temp, []byte(`{"url": "https://x"`), 0o644))
	old := now.Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(temp, old, old))

	removed, err := store.Prune(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.FileExists(t, temp)
}

func TestStoreMissIsAbsent(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "never-created"), zerolog.Nop(), nil)

	_, ok := store.Get(context.Background(), domain.ComputeFingerprint("x", "y"))
	assert.False(t, ok)
}

func TestStoreCorruptEntryIsAbsentAndLogged(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var logs bytes.Buffer
	store := NewStore(root, zerolog.New(&logs), nil)
	key := domain.ComputeFingerprint("x", "y")
	require.NoError(t, os.WriteFile(filepath.Join(root, key.String()+".json"), []byte("{not json"), 0o644))

	_, ok := store.Get(context.Background(), key)
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "corrupt cache entry")
}

func TestStorePutFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not dir"), 0o644))

	var logs bytes.Buffer
	store := NewStore(filepath.Join(blocker, "cache"), zerolog.New(&logs), nil)
	key := domain.ComputeFingerprint("x", "y")

	assert.NotPanics(t, func() {
		store.Put(context.Background(), key, domain.SummaryResult{URL: "https://x"})
	})
	assert.Contains(t, logs.String(), "Error writing to cache")

	_, ok := store.Get(context.Background(), key)
	assert.False(t, ok)
}

func TestStorePruneRemovesOnlyStaleEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Once()
	store := NewStore(root, zerolog.Nop(), clock)

	stale := domain.ComputeFingerprint("old", "p")
	fresh := domain.ComputeFingerprint("new", "p")
	store.Put(context.Background(), stale, domain.SummaryResult{URL: "https://old"})
	store.Put(context.Background(), fresh, domain.SummaryResult{URL: "https://new"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("keep"), 0o644))

	old := now.Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(root, stale.String()+".json"), old, old))
	require.NoError(t, os.Chtimes(filepath.Join(root, fresh.String()+".json"), now, now))
	require.NoError(t, os.Chtimes(filepath.Join(root, "notes.txt"), old, old))

	removed, err := store.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := store.Get(context.Background(), stale)
	assert.False(t, ok)
	_, ok = store.Get(context.Background(), fresh)
	assert.True(t, ok)
	assert.FileExists(t, filepath.Join(root, "notes.txt"))
}

func TestStorePruneRejectsNonPositiveAge(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir(), zerolog.Nop(), nil)

	_, err := store.Prune(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "prune age must be positive")
}

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir(), zerolog.Nop(), nil)
	testCases := []struct {
		name    string
		key     domain.Fingerprint
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "cache key is empty"},
		{name: "traversal", key: "../escape", wantErr: "invalid cache key"},
		{name: "nested", key: "a/b", wantErr: "invalid cache key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.pathForKey(tc.key)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
