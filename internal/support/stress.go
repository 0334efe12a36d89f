package support

import "time"

// StressLevel is the current session stress reading.
type StressLevel string

// Stress levels from calmest to most severe.
const (
	StressLow      StressLevel = "low"
	StressNormal   StressLevel = "normal"
	StressElevated StressLevel = "elevated"
	StressHigh     StressLevel = "high"
	StressCritical StressLevel = "critical"
)

// Recommendations returns the actions suggested at this stress level.
func (s StressLevel) Recommendations() []string {
	switch s {
	case StressLow:
		return []string{"Continue with current pace", "Consider tackling challenging tasks"}
	case StressElevated:
		return []string{"Take a 5-minute break", "Practice deep breathing"}
	case StressHigh:
		return []string{"Step away for 15 minutes", "Consider postponing non-critical tasks"}
	case StressCritical:
		return []string{"Stop current activity", "Seek immediate support", "Consider ending session"}
	default:
		return []string{"Maintain regular breaks", "Stay hydrated"}
	}
}

// BreakSuggestion is a recommended pause. Mandatory breaks are surfaced as
// alerts rather than hints.
type BreakSuggestion struct {
	Duration   time.Duration
	Activities []string
	Mandatory  bool
}

// BreakFor returns the break suggestion for a stress level.
func BreakFor(level StressLevel) BreakSuggestion {
	switch level {
	case StressHigh, StressCritical:
		return BreakSuggestion{
			Duration:   15 * time.Minute,
			Activities: []string{"Walk away from computer", "Deep breathing", "Call support person"},
			Mandatory:  true,
		}
	case StressElevated:
		return BreakSuggestion{
			Duration:   5 * time.Minute,
			Activities: []string{"Stretch", "Drink water", "Look away from screen"},
			Mandatory:  false,
		}
	default:
		return BreakSuggestion{
			Duration:   2 * time.Minute,
			Activities: []string{"Blink exercises", "Shoulder rolls"},
			Mandatory:  false,
		}
	}
}

// Monitor derives a stress level from continuous session time. It stands in
// for the biometric monitoring a desktop build could feed in.
type Monitor struct {
	start time.Time
	now   func() time.Time
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithMonitorClock overrides the monitor's time source.
func WithMonitorClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) { m.now = now }
}

// NewMonitor starts a session stress monitor at the current time.
func NewMonitor(opts ...MonitorOption) *Monitor {
	m := &Monitor{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	m.start = m.now()
	return m
}

// Elapsed returns how long the session has been running.
func (m *Monitor) Elapsed() time.Duration {
	return m.now().Sub(m.start)
}

// Level reads the current stress level. Sessions past two hours read as
// elevated, past three as high.
func (m *Monitor) Level() StressLevel {
	elapsed := m.Elapsed()
	switch {
	case elapsed > 3*time.Hour:
		return StressHigh
	case elapsed > 2*time.Hour:
		return StressElevated
	default:
		return StressNormal
	}
}
