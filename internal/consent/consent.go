// Package consent implements the legal disclaimer gate. Nothing else in the
// application is reachable until the current terms have been accepted, and a
// rejection ends the session without recording anything.
package consent

import (
	"errors"
	"fmt"
	"time"
)

// Storage keys for the persisted acceptance record.
const (
	KeyAccepted   = "neurodemon_legal_accepted"
	KeyVersion    = "neurodemon_legal_version"
	KeyAcceptedAt = "neurodemon_legal_accepted_at"
)

// DefaultVersion is the current revision of the disclaimer text.
const DefaultVersion = "1.0"

// ErrAcknowledgementRequired is returned by Accept when either confirmation
// is missing. Accepting the terms requires both explicit checks.
var ErrAcknowledgementRequired = errors.New("both confirmations are required before accepting")

// State is the gate's position in its decision flow.
type State int

// Gate states. Accepted and Rejected are terminal for a session.
const (
	StateUnknown State = iota
	StatePending
	StateAccepted
	StateRejected
)

// String returns the state name for logs and status output.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Record is a stored acceptance: which disclaimer version was accepted and
// when.
type Record struct {
	Accepted   bool
	Version    string
	AcceptedAt time.Time
}

// Gate decides whether the disclaimer must be shown and records the user's
// decision.
type Gate struct {
	storage Storage
	version string
	now     func() time.Time

	state     State
	record    Record
	hasRecord bool
}

// Storage is the durable store acceptance records are written to.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock overrides the time source used for acceptance timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// New builds a Gate requiring acceptance of the given disclaimer version.
func New(storage Storage, version string, opts ...Option) *Gate {
	g := &Gate{
		storage: storage,
		version: version,
		now:     time.Now,
		state:   StateUnknown,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check reads the stored record and resolves the gate state. A recorded
// acceptance of the current version passes silently; anything else, including
// an acceptance of an older version, leaves the gate pending so the terms are
// shown again.
func (g *Gate) Check() State {
	accepted, ok := g.storage.Get(KeyAccepted)
	if !ok || accepted != "true" {
		g.state = StatePending
		return g.state
	}

	rec := Record{Accepted: true}
	rec.Version, _ = g.storage.Get(KeyVersion)
	if raw, ok := g.storage.Get(KeyAcceptedAt); ok {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			rec.AcceptedAt = ts
		}
	}
	g.record = rec
	g.hasRecord = true

	if rec.Version != g.version {
		g.state = StatePending
		return g.state
	}

	g.state = StateAccepted
	return g.state
}

// Accept records acceptance of the current terms. Both hasRead and
// acknowledged must be true or nothing happens. A failed write leaves the
// gate pending; acceptance only counts once it is durable.
func (g *Gate) Accept(hasRead, acknowledged bool) error {
	if !hasRead || !acknowledged {
		return ErrAcknowledgementRequired
	}

	now := g.now().UTC()

	// The accepted flag is written last so a partial failure can never
	// record an acceptance for the wrong version.
	if err := g.storage.Set(KeyVersion, g.version); err != nil {
		return fmt.Errorf("recording accepted version: %w", err)
	}
	if err := g.storage.Set(KeyAcceptedAt, now.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording acceptance time: %w", err)
	}
	if err := g.storage.Set(KeyAccepted, "true"); err != nil {
		return fmt.Errorf("recording acceptance: %w", err)
	}

	g.record = Record{Accepted: true, Version: g.version, AcceptedAt: now}
	g.hasRecord = true
	g.state = StateAccepted
	return nil
}

// Reject declines the terms. Nothing is persisted: the next start shows the
// gate again. The caller is expected to end the session.
func (g *Gate) Reject() {
	g.state = StateRejected
}

// State returns the gate's current state.
func (g *Gate) State() State {
	return g.state
}

// RequiredVersion returns the disclaimer version this gate enforces.
func (g *Gate) RequiredVersion() string {
	return g.version
}

// PreviousAcceptance returns the stored record from the last Check or
// Accept, if any. When the gate is pending despite a record existing, the
// record's version tells the user which terms they had accepted before.
func (g *Gate) PreviousAcceptance() (Record, bool) {
	return g.record, g.hasRecord
}
