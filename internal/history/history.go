// Package history persists REPL evaluations under XDG_CACHE_HOME as a
// schema-versioned msgpack file with atomic replacement on write.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the payload format changes
const historySchemaVersion uint16 = 1

// Entry is one recorded evaluation. Failed entries keep the error text so
// the REPL can replay what went wrong.
type Entry struct {
	Expression  string
	Value       float64
	ErrMessage  string
	EvaluatedAt time.Time
}

// Failed reports whether the entry recorded an error.
func (e Entry) Failed() bool { return e.ErrMessage != "" }

type payload struct {
	Schema  uint16
	Entries []Entry
}

// Store reads and writes the history file.
// Thread-safe for concurrent access.
type Store struct {
	mu   sync.Mutex
	path string
	max  int // максимум записей; 0 и меньше — без ограничения
}

// Open initializes the history store at the standard cache location.
func Open(app string, maxEntries int) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "history.mp"), max: maxEntries}, nil
}

// Load reads all recorded entries. A missing file or an unknown schema
// yields an empty history, not an error.
func (s *Store) Load() ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var p payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if p.Schema != historySchemaVersion {
		// старый формат инвалидируем молча
		return nil, nil
	}
	return p.Entries, nil
}

// Append records one evaluation, trimming the oldest entries beyond the
// configured cap.
func (s *Store) Append(e Entry) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLocked()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	if s.max > 0 && len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}
	return s.writeLocked(entries)
}

func (s *Store) writeLocked(entries []Entry) error {
	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload{Schema: historySchemaVersion, Entries: entries}); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), s.path)
}

// Drop removes the history file entirely.
func (s *Store) Drop() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
