package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const sessionFileName = "go-task-keeper/session.json"

// DefaultSessionPath returns the session file location under the XDG state
// directory, creating the parent directory if needed.
func DefaultSessionPath() (string, error) {
	path, err := xdg.StateFile(sessionFileName)
	if err != nil {
		return "", fmt.Errorf("error resolving session file: %w", err)
	}
	return path, nil
}

// savedSession is the on-disk form of a session cookie. Server binds the
// cookie to the API it was issued by.
type savedSession struct {
	Server  string    `json:"server"`
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	SavedAt time.Time `json:"saved_at"`
}

// SessionStore persists the session cookie between client invocations.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load returns the cookie saved for server, or nil if there is none.
func (s *SessionStore) Load(server string) (*http.Cookie, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading session file: %w", err)
	}

	var saved savedSession
	if err = json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("error decoding session file: %w", err)
	}
	if saved.Server != server || saved.Value == "" {
		return nil, nil
	}

	return &http.Cookie{Name: saved.Name, Value: saved.Value}, nil
}

// Save writes cookie for server with owner-only permissions. The file is
// replaced atomically, so a pre-existing file never keeps wider permissions.
func (s *SessionStore) Save(server string, cookie *http.Cookie) error {
	if cookie == nil {
		return s.Clear()
	}

	data, err := json.Marshal(savedSession{
		Server:  server,
		Name:    cookie.Name,
		Value:   cookie.Value,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(0o600); err == nil {
		_, err = tmp.Write(data)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("error replacing session file: %w", err)
	}
	return nil
}

// Clear removes the saved session. A missing file is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}
	return nil
}
