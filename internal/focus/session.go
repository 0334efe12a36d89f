// Package focus implements the focus session: a pomodoro-style timer that
// alternates work rounds with breaks following the accommodation plan.
package focus

import (
	"time"

	"github.com/neurodemon/neurodemon/internal/support"
)

// Phase is the segment of a focus session currently running.
type Phase string

// Session phases.
const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns the phase name for display.
func (p Phase) Label() string {
	switch p {
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	default:
		return "Focus"
	}
}

// Session tracks one sitting's work and break rhythm. It only moves when
// Advance or Skip is called, so the caller owns the clock.
type Session struct {
	plan      support.FocusPlan
	phase     Phase
	round     int
	remaining time.Duration
	completed int
}

// NewSession starts a session at the first work round of plan.
func NewSession(plan support.FocusPlan) *Session {
	s := &Session{plan: plan, phase: PhaseWork, round: 1}
	s.remaining = s.PhaseLength()
	return s
}

// Phase returns the running phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Round returns the current work round, starting at 1. During a break it is
// the round just finished.
func (s *Session) Round() int {
	return s.round
}

// Completed returns how many work rounds have been finished.
func (s *Session) Completed() int {
	return s.completed
}

// Remaining returns the time left in the running phase.
func (s *Session) Remaining() time.Duration {
	return s.remaining
}

// PhaseLength returns the full length of the running phase. Long breaks run
// three times the short break.
func (s *Session) PhaseLength() time.Duration {
	switch s.phase {
	case PhaseShortBreak:
		return time.Duration(s.plan.BreakMinutes) * time.Minute
	case PhaseLongBreak:
		return 3 * time.Duration(s.plan.BreakMinutes) * time.Minute
	default:
		return time.Duration(s.plan.WorkMinutes) * time.Minute
	}
}

// Advance moves the session forward by d and returns any phases that ended,
// in order. A large d can cross more than one boundary.
func (s *Session) Advance(d time.Duration) []Phase {
	var ended []Phase
	for d > 0 {
		if d < s.remaining {
			s.remaining -= d
			break
		}
		d -= s.remaining
		ended = append(ended, s.phase)
		s.next()
	}
	return ended
}

// Skip ends the running phase immediately and returns it.
func (s *Session) Skip() Phase {
	ended := s.phase
	s.next()
	return ended
}

func (s *Session) next() {
	switch s.phase {
	case PhaseWork:
		s.completed++
		if s.plan.LongBreakAfter > 0 && s.completed%s.plan.LongBreakAfter == 0 {
			s.phase = PhaseLongBreak
		} else {
			s.phase = PhaseShortBreak
		}
	default:
		s.phase = PhaseWork
		s.round++
	}
	s.remaining = s.PhaseLength()
}
