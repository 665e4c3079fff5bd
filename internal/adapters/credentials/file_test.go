package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "credential key is empty"},
		{name: "whitespace", key: "   ", wantErr: "credential key is empty"},
		{name: "absolute", key: "/etc/passwd", wantErr: "invalid credential key"},
		{name: "traversal", key: "../escape", wantErr: "invalid credential key"},
		{name: "parent", key: "..", wantErr: "invalid credential key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFileStoreRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewFileStore(root)

	require.NoError(t, store.Put(context.Background(), "notion/token", "secret_abc\n"))

	got, err := store.Get(context.Background(), "notion/token")
	require.NoError(t, err)
	assert.Equal(t, "secret_abc", got)

	info, err := os.Stat(filepath.Join(root, "notion", "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(credentialMode), info.Mode().Perm())
}

func TestFileStoreMissingKeyIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())

	_, err := store.Get(context.Background(), "gemini/api_key")
	require.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestFileStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Put(context.Background(), "openai/api_key", "sk-test"))

	require.NoError(t, store.Delete(context.Background(), "openai/api_key"))
	require.NoError(t, store.Delete(context.Background(), "openai/api_key"))

	_, err := store.Get(context.Background(), "openai/api_key")
	require.ErrorIs(t, err, ErrCredentialNotFound)
}
