package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// StorageKey is where the JSON settings record lives in the durable store.
const StorageKey = "neurodemon_accessibility"

// Storage is the durable store the settings record is persisted to.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// ApplyFunc receives the new record after every successful update or reset.
// The presentation layer registers one to re-apply themes, motion and sound
// preferences; the store itself never touches presentation state.
type ApplyFunc func(AccessibilitySettings)

// Store owns the current settings record and keeps it in sync with durable
// storage. Construct one with Open and pass it to whatever needs settings;
// there is no package-global instance.
type Store struct {
	storage Storage
	logger  *log.Logger
	apply   ApplyFunc

	mu      sync.Mutex
	current AccessibilitySettings
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load warnings.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithApplyFunc registers the presentation hook invoked after each
// successful update or reset.
func WithApplyFunc(fn ApplyFunc) Option {
	return func(s *Store) { s.apply = fn }
}

// Open builds a Store over storage, loading any persisted record. A record
// that fails to parse or validate is logged and replaced with the defaults;
// settings are never a reason to refuse startup.
func Open(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  log.Default(),
		current: Defaults(),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok := storage.Get(StorageKey)
	if !ok {
		return s
	}

	var loaded AccessibilitySettings
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Warn("Stored accessibility settings are unreadable, using defaults", "err", err)
		return s
	}
	if err := loaded.Validate(); err != nil {
		s.logger.Warn("Stored accessibility settings are invalid, using defaults", "err", err)
		return s
	}

	s.current = loaded
	return s
}

// Settings returns a copy of the current record.
func (s *Store) Settings() AccessibilitySettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Update validates p, merges it onto the current record, persists the result
// and runs the apply hook. An invalid partial changes nothing. A persistence
// failure keeps the updated record in memory and is returned so the caller
// can warn without losing the user's choice.
func (s *Store) Update(p Partial) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = p.applyTo(s.current)
	updated := s.current
	s.mu.Unlock()

	if s.apply != nil {
		s.apply(updated)
	}
	return s.persist(updated)
}

// Reset restores the default record, persists it and runs the apply hook.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.current = Defaults()
	updated := s.current
	s.mu.Unlock()

	if s.apply != nil {
		s.apply(updated)
	}
	return s.persist(updated)
}

func (s *Store) persist(record AccessibilitySettings) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
