package focus

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neurodemon/neurodemon/internal/support"
	"github.com/neurodemon/neurodemon/internal/ui"
)

// Options configures the focus session screen.
type Options struct {
	Plan      support.FocusPlan
	Reminders bool             // announce phase changes with a banner and bell
	Monitor   *support.Monitor // session stress readings; nil when monitoring is off

	// OnWorkDone is invoked after every finished work round with the total
	// completed so far.
	OnWorkDone func(completed int)
}

type tickMsg time.Time

// Model is the focus session screen.
type Model struct {
	opts    Options
	session *Session

	paused   bool
	lastTick time.Time
	banner   string
	quitting bool

	width  int
	height int
}

// New builds the focus session screen. A zero plan falls back to the
// default rhythm.
func New(opts Options) Model {
	if opts.Plan == (support.FocusPlan{}) {
		opts.Plan = support.DefaultFocusPlan()
	}
	return Model{
		opts:     opts,
		session:  NewSession(opts.Plan),
		lastTick: time.Now(),
	}
}

// tick schedules the next clock update. The countdown has to keep moving
// even with animations off, so that case falls back to a coarse refresh
// instead of stopping.
func tick() tea.Cmd {
	interval, ok := ui.ActiveEffects().TickEvery(time.Second)
	if !ok {
		interval = 5 * time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.paused {
			m.lastTick = now
			return m, tick()
		}
		elapsed := now.Sub(m.lastTick)
		m.lastTick = now
		if elapsed > 0 {
			for _, phase := range m.session.Advance(elapsed) {
				m.phaseEnded(phase)
			}
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused {
				// Paused time never counts against the phase.
				m.lastTick = time.Now()
			}
			return m, nil
		case "s":
			m.phaseEnded(m.session.Skip())
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) phaseEnded(phase Phase) {
	if phase == PhaseWork && m.opts.OnWorkDone != nil {
		m.opts.OnWorkDone(m.session.Completed())
	}

	if !m.opts.Reminders {
		m.banner = ""
		return
	}

	switch phase {
	case PhaseWork:
		minutes := int(m.session.PhaseLength().Minutes())
		m.banner = fmt.Sprintf("Round %d done. Time for a %d minute %s.",
			m.session.Completed(), minutes, strings.ToLower(m.session.Phase().Label()))
		ui.Bell(true)
	default:
		m.banner = fmt.Sprintf("Break over. Round %d starts now.", m.session.Round())
		ui.Bell(false)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	barWidth := min(40, max(10, width-30))

	remaining := m.session.Remaining().Round(time.Second)
	total := int(remaining.Seconds())
	clock := fmt.Sprintf("%02d:%02d", total/60, total%60)

	phaseLine := ui.PrimaryStyle().Render(m.session.Phase().Label()) +
		ui.MutedStyle.Render(fmt.Sprintf("  round %d", m.session.Round()))
	clockLine := ui.Bold.Render(clock)
	if m.paused {
		clockLine += ui.WarningStyle.Render("  paused")
	}

	frac := 0.0
	if length := m.session.PhaseLength(); length > 0 {
		frac = 1 - float64(m.session.Remaining())/float64(length)
	}

	lines := []string{
		phaseLine,
		clockLine,
		progressBar(frac, barWidth),
		ui.MutedStyle.Render(fmt.Sprintf("%d rounds completed", m.session.Completed())),
	}

	if m.banner != "" {
		lines = append(lines, "", ui.SuccessStyle.Render(m.banner))
	}
	lines = append(lines, m.stressSection()...)

	footer := ui.HintStyle.Render("space pause · s skip phase · q close")
	return ui.Frame("FOCUS SESSION", "One round at a time; breaks are part of the work", strings.Join(lines, "\n"), footer)
}

// stressSection surfaces the session stress reading and, past normal, the
// matching break suggestion.
func (m Model) stressSection() []string {
	if m.opts.Monitor == nil {
		return nil
	}

	level := m.opts.Monitor.Level()
	line := ui.MutedStyle.Render("session: " + m.opts.Monitor.Elapsed().Round(time.Minute).String() + " · stress " + string(level))
	if level == support.StressNormal || level == support.StressLow {
		return []string{"", line}
	}

	suggestion := support.BreakFor(level)
	text := fmt.Sprintf("Take a %d minute break: %s",
		int(suggestion.Duration.Minutes()), strings.Join(suggestion.Activities, ", "))
	style := ui.WarningStyle
	if suggestion.Mandatory {
		style = ui.ErrorStyle
	}
	return []string{"", line, style.Render(text)}
}

func progressBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	bar := lipgloss.NewStyle().Foreground(ui.Primary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ui.Border).Render(strings.Repeat("░", width-filled))
	return bar
}

// Run opens the focus session screen and blocks until the user closes it.
func Run(opts Options) error {
	if !ui.IsInteractiveTerminal() {
		return fmt.Errorf("non-interactive terminal")
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("focus session screen: %w", err)
	}
	return nil
}
