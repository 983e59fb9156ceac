package client

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewSessionStore(path)

	cookie, err := store.Load("http://a.test")
	require.NoError(t, err)
	assert.Nil(t, cookie, "missing file means no session")

	require.NoError(t, store.Save("http://a.test", &http.Cookie{Name: "token", Value: "abc"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cookie, err = store.Load("http://a.test")
	require.NoError(t, err)
	require.NotNil(t, cookie)
	assert.Equal(t, "token", cookie.Name)
	assert.Equal(t, "abc", cookie.Value)

	cookie, err = store.Load("http://b.test")
	require.NoError(t, err)
	assert.Nil(t, cookie, "session belongs to another server")

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")

	cookie, err = store.Load("http://a.test")
	require.NoError(t, err)
	assert.Nil(t, cookie)
}

func TestSessionStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewSessionStore(path).Load("http://a.test")
	assert.Error(t, err)
}

func TestSessionStore_SaveNilClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewSessionStore(path)
	require.NoError(t, store.Save("http://a.test", &http.Cookie{Name: "token", Value: "abc"}))

	require.NoError(t, store.Save("http://a.test", nil))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSessionStore_SaveTightensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))

	store := NewSessionStore(path)
	require.NoError(t, store.Save("http://a.test", &http.Cookie{Name: "token", Value: "abc"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cookie, err := store.Load("http://a.test")
	require.NoError(t, err)
	require.NotNil(t, cookie)
	assert.Equal(t, "abc", cookie.Value)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}
