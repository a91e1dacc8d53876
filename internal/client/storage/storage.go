// Package storage persists the CLI's local state as JSON files under the
// configured state directory: the schedule draft and the login session.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	scheduleFile = "schedule.json"
	sessionFile  = "session.json"
)

var fileMutex sync.Mutex

// Session is the cached login state written after a successful login or
// registration and removed on logout.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// Store reads and writes state files in a single directory.
type Store struct {
	dir string
}

// NewStore creates the state directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the state directory path.
func (s *Store) Dir() string {
	return s.dir
}

// LoadSchedule returns the raw persisted schedule draft, or nil when no
// draft has been saved yet. The raw form lets the caller migrate legacy
// course records before decoding.
func (s *Store) LoadSchedule() (json.RawMessage, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, scheduleFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read schedule draft: %w", err)
	}
	return json.RawMessage(data), nil
}

// SaveSchedule writes the schedule draft. Called after every editor
// mutation so the draft survives a crash.
func (s *Store) SaveSchedule(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedule draft: %w", err)
	}
	return s.writeFile(scheduleFile, data)
}

// LoadSession returns the cached session, or nil when not logged in.
func (s *Store) LoadSession() (*Session, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

// SaveSession caches the login state.
func (s *Store) SaveSession(session *Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	// 0600: the file holds a bearer token.
	fileMutex.Lock()
	defer fileMutex.Unlock()
	return writeAtomic(filepath.Join(s.dir, sessionFile), data, 0600)
}

// ClearSession removes the cached session. Missing file is not an error.
func (s *Store) ClearSession() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *Store) writeFile(name string, data []byte) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()
	return writeAtomic(filepath.Join(s.dir, name), data, 0644)
}

// writeAtomic writes via a temp file and rename so a crash mid-write never
// leaves a truncated state file.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
