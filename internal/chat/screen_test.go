package chat

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoResponder makes replies predictable in tests.
type echoResponder struct{}

func (echoResponder) Respond(message string) string {
	return "echo: " + message
}

func typeAndSend(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	m = updated.(Model)
	require.Nil(t, cmd)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestSendAppendsUserMessageAndWaits(t *testing.T) {
	m := New(echoResponder{}, time.Millisecond)
	require.Len(t, m.messages, 1, "the greeting is shown first")

	m, cmd := typeAndSend(t, m, "scan")
	require.NotNil(t, cmd, "a reply must be scheduled")

	require.Len(t, m.messages, 2)
	assert.True(t, m.messages[1].fromUser)
	assert.Equal(t, "scan", m.messages[1].text)
	assert.True(t, m.waiting)
	assert.Empty(t, m.input)
}

func TestReplyAppendsAfterDelay(t *testing.T) {
	m := New(echoResponder{}, time.Millisecond)
	m, cmd := typeAndSend(t, m, "scan")
	require.NotNil(t, cmd)

	// Running the command waits out the delay and yields the reply message.
	msg := cmd()
	reply, ok := msg.(replyMsg)
	require.True(t, ok)
	assert.Equal(t, "echo: scan", reply.text)

	updated, _ := m.Update(msg)
	m = updated.(Model)

	require.Len(t, m.messages, 3)
	assert.False(t, m.messages[2].fromUser)
	assert.Equal(t, "echo: scan", m.messages[2].text)
	assert.False(t, m.waiting)
}

func TestClearDropsPendingReply(t *testing.T) {
	m := New(echoResponder{}, time.Millisecond)
	m, cmd := typeAndSend(t, m, "scan")
	require.NotNil(t, cmd)
	pending := cmd()

	// Clearing the conversation starts a new generation.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)
	require.Len(t, m.messages, 1)
	assert.False(t, m.waiting)

	// The old generation's reply arrives late and must not be appended.
	updated, _ = m.Update(pending)
	m = updated.(Model)
	assert.Len(t, m.messages, 1)
	assert.False(t, m.waiting)
}

func TestTeardownCancelsPendingReply(t *testing.T) {
	m := New(echoResponder{}, time.Millisecond)
	m, cmd := typeAndSend(t, m, "scan")
	require.NotNil(t, cmd)
	pending := cmd()

	updated, quit := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.NotNil(t, quit)
	assert.True(t, m.quitting)

	updated, _ = m.Update(pending)
	m = updated.(Model)
	assert.Len(t, m.messages, 2, "a reply must never land after teardown")
}

func TestEnterIgnoredWhileWaitingOrEmpty(t *testing.T) {
	m := New(echoResponder{}, time.Millisecond)

	// Empty input sends nothing.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Len(t, m.messages, 1)

	// While a reply is pending, further sends are held off.
	m, cmd = typeAndSend(t, m, "scan")
	require.NotNil(t, cmd)
	m, cmd = typeAndSend(t, m, "again")
	assert.Nil(t, cmd)
	assert.Len(t, m.messages, 2)
}

func TestInputEditing(t *testing.T) {
	m := New(echoResponder{}, time.Millisecond)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hel")})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = updated.(Model)

	assert.Equal(t, "help", string(m.input))

	// Backspace on empty input is a no-op.
	m.input = nil
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)
	assert.Empty(t, m.input)
}
