// Package audit appends an activity trail of consent, settings and session
// events to a local JSONL file. The trail is informational; failures to
// write it must never block the interface.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileName is the activity log file created inside the data directory.
const FileName = "activity.jsonl"

// EventType classifies an activity log entry.
type EventType string

// Recorded event types.
const (
	EventAppStart          EventType = "app_start"
	EventConsentAccepted   EventType = "consent_accepted"
	EventConsentRejected   EventType = "consent_rejected"
	EventReconsentRequired EventType = "reconsent_required"
	EventSettingsUpdated   EventType = "settings_updated"
	EventSettingsReset     EventType = "settings_reset"
	EventFocusCompleted    EventType = "focus_completed"
)

// Event is one activity log entry.
type Event struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	Type        EventType         `json:"activity_type"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Log appends events to a JSONL file, one event per line.
type Log struct {
	path    string
	enabled bool
	now     func() time.Time

	mu sync.Mutex
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// Open returns a Log writing to path. A disabled log accepts records and
// drops them.
func Open(path string, enabled bool, opts ...Option) *Log {
	l := &Log{
		path:    path,
		enabled: enabled,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enabled reports whether events are being written.
func (l *Log) Enabled() bool {
	return l.enabled
}

// Path returns the file the log writes to.
func (l *Log) Path() string {
	return l.path
}

// Record appends one event to the log.
func (l *Log) Record(eventType EventType, description string, metadata map[string]string) error {
	if !l.enabled {
		return nil
	}

	event := Event{
		ID:          uuid.NewString(),
		Timestamp:   l.now().UTC(),
		Type:        eventType,
		Description: description,
		Metadata:    metadata,
	}

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding audit event: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("writing audit event: %w", err)
	}
	return nil
}

// Recent returns up to n of the latest events in chronological order.
// Unparsable lines are skipped rather than failing the read.
func (l *Log) Recent(n int) ([]Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	return events, nil
}
