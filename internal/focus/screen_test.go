package focus

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickAfter(t *testing.T, m Model, d time.Duration) Model {
	t.Helper()

	updated, cmd := m.Update(tickMsg(m.lastTick.Add(d)))
	require.NotNil(t, cmd, "the clock must keep ticking")
	return updated.(Model)
}

func TestTickAdvancesCountdown(t *testing.T) {
	m := New(Options{Reminders: true})
	m.lastTick = time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	m = tickAfter(t, m, time.Minute)

	assert.Equal(t, 24*time.Minute, m.session.Remaining())
	assert.Empty(t, m.banner)
}

func TestWorkRoundEndReportsAndReminds(t *testing.T) {
	var done []int
	m := New(Options{
		Reminders:  true,
		OnWorkDone: func(completed int) { done = append(done, completed) },
	})
	m.lastTick = time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	m = tickAfter(t, m, 25*time.Minute)

	assert.Equal(t, []int{1}, done)
	assert.Equal(t, PhaseShortBreak, m.session.Phase())
	assert.Contains(t, m.banner, "Round 1 done")
}

func TestRemindersOffStaysSilentButStillReports(t *testing.T) {
	var done []int
	m := New(Options{
		Reminders:  false,
		OnWorkDone: func(completed int) { done = append(done, completed) },
	})
	m.lastTick = time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	m = tickAfter(t, m, 25*time.Minute)

	assert.Equal(t, []int{1}, done)
	assert.Empty(t, m.banner)
}

func TestPauseHoldsTheClock(t *testing.T) {
	m := New(Options{})
	m.lastTick = time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	m = updated.(Model)
	require.True(t, m.paused)

	m = tickAfter(t, m, 10*time.Minute)
	assert.Equal(t, 25*time.Minute, m.session.Remaining(), "paused time must not count")
}

func TestSkipKeyEndsPhase(t *testing.T) {
	var done []int
	m := New(Options{
		Reminders:  true,
		OnWorkDone: func(completed int) { done = append(done, completed) },
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(Model)

	assert.Equal(t, []int{1}, done)
	assert.Equal(t, PhaseShortBreak, m.session.Phase())
}

func TestBreakEndBannerNamesNextRound(t *testing.T) {
	m := New(Options{Reminders: true})
	m.lastTick = time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	m = tickAfter(t, m, 25*time.Minute)
	m = tickAfter(t, m, 5*time.Minute)

	assert.Equal(t, PhaseWork, m.session.Phase())
	assert.Contains(t, m.banner, "Round 2 starts now")
}

func TestQuitKey(t *testing.T) {
	m := New(Options{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestViewShowsClockAndRound(t *testing.T) {
	m := New(Options{})

	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "round 1")
	assert.True(t, strings.Contains(view, "FOCUS SESSION"))
}
