// Package storage persists small pieces of user-facing state, such as the
// legal consent record and accessibility settings, as a single JSON file of
// string keys and string values.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// FileName is the store file created inside the data directory.
const FileName = "local.json"

// Store is a durable string-to-string store. Values are written back to disk
// on every mutation so state survives restarts and crashes.
type Store struct {
	path   string
	logger *log.Logger

	mu   sync.Mutex
	data map[string]string
}

// Open loads the store at path, creating an empty one when the file does not
// exist. A file that cannot be parsed is treated as lost local data: the
// store starts empty rather than blocking startup.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{
		path:   path,
		logger: logger,
		data:   make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading local store: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		logger.Warn("Local data is unreadable, starting with an empty store", "path", path, "err", err)
		s.data = make(map[string]string)
	}

	return s, nil
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key and writes the store to disk. The in-memory
// value is kept even when the write fails so the caller can retry.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Delete removes key from the store and writes the store to disk.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.save()
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data)
}

// Path returns the file the store is persisted to.
func (s *Store) Path() string {
	return s.path
}

// save writes the whole store through a temp file and rename so a crash
// mid-write cannot leave a truncated file behind. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding local store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".local-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing local store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing local store: %w", err)
	}

	return nil
}
