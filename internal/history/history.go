// Package history persists recently selected values per combobox so they can
// be offered first next time.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileVersion = "1"

// DefaultLimit bounds the entries kept per scope.
const DefaultLimit = 10

// Entry is one remembered value.
type Entry struct {
	Value    string    `json:"value"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

type historyFile struct {
	Version string             `json:"version"`
	Scopes  map[string][]Entry `json:"scopes"`
}

// Store keeps the most recent selections of each scope, newest first.
type Store struct {
	path   string
	limit  int
	now    func() time.Time
	mu     sync.RWMutex
	scopes map[string][]Entry
}

// DefaultPath returns the history file under the user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache directory: %w", err)
	}
	return filepath.Join(dir, "tuikit", "history.json"), nil
}

// Open loads the store at path, starting empty when the file does not exist.
// A limit below one uses DefaultLimit.
func Open(path string, limit int) (*Store, error) {
	if limit < 1 {
		limit = DefaultLimit
	}
	s := &Store{
		path:   path,
		limit:  limit,
		now:    time.Now,
		scopes: make(map[string][]Entry),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory state with the file contents.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse history %s: %w", s.path, err)
	}
	if file.Version != "" && file.Version != fileVersion {
		return fmt.Errorf("history %s: unsupported version %q", s.path, file.Version)
	}

	s.scopes = file.Scopes
	if s.scopes == nil {
		s.scopes = make(map[string][]Entry)
	}
	return nil
}

// Save writes the store through a temporary file and a rename.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(historyFile{Version: fileVersion, Scopes: s.scopes}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// Record moves value to the front of scope, bumping its use count. Empty
// values are ignored.
func (s *Store) Record(scope, value string) {
	if value == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.scopes[scope]
	entry := Entry{Value: value}
	for i, e := range entries {
		if e.Value == value {
			entry = e
			entries = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	entry.Count++
	entry.LastUsed = s.now()

	entries = append([]Entry{entry}, entries...)
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.scopes[scope] = entries
}

// Recent returns the values of scope, newest first.
func (s *Store) Recent(scope string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.scopes[scope]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// Entries returns a copy of the entries of scope, newest first.
func (s *Store) Entries(scope string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Entry(nil), s.scopes[scope]...)
}

// Clear forgets scope.
func (s *Store) Clear(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.scopes, scope)
}
