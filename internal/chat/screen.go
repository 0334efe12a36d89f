package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neurodemon/neurodemon/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type message struct {
	fromUser bool
	text     string
}

// replyMsg delivers the assistant's answer after the typing delay. It
// carries the conversation generation it was produced for; replies from an
// earlier generation are dropped instead of appended.
type replyMsg struct {
	generation int
	text       string
}

// Model is the assistant chat screen.
type Model struct {
	responder Responder
	delay     time.Duration

	viewport   viewport.Model
	input      []rune
	messages   []message
	waiting    bool
	generation int
	quitting   bool

	width  int
	height int
}

// New builds the chat screen with the assistant greeting already shown.
func New(responder Responder, delay time.Duration) Model {
	vp := viewport.New(defaultWidth-2, defaultHeight-7)

	m := Model{
		responder: responder,
		delay:     delay,
		viewport:  vp,
		messages:  []message{{text: Greeting()}},
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.refreshTranscript()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(5, msg.Height-7)
		m.refreshTranscript()
		return m, nil

	case replyMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.waiting = false
		m.messages = append(m.messages, message{text: msg.text})
		m.refreshTranscript()
		m.viewport.GotoBottom()
		ui.Bell(false)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// Leaving the conversation invalidates any pending reply.
			m.generation++
			m.waiting = false
			m.quitting = true
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.generation++
			m.waiting = false
			m.input = nil
			m.messages = []message{{text: Greeting()}}
			m.refreshTranscript()
			m.viewport.GotoTop()
			return m, nil

		case tea.KeyEnter:
			text := strings.TrimSpace(string(m.input))
			if text == "" || m.waiting {
				return m, nil
			}
			m.input = nil
			m.messages = append(m.messages, message{fromUser: true, text: text})
			m.waiting = true
			m.refreshTranscript()
			m.viewport.GotoBottom()
			return m, m.scheduleReply(text)

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil

		case tea.KeySpace:
			m.input = append(m.input, ' ')
			return m, nil

		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
			return m, nil

		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// scheduleReply produces the assistant's answer after the configured delay.
// The closure captures the current generation so the delivery can be
// recognized as stale if the conversation has been torn down meanwhile.
func (m Model) scheduleReply(text string) tea.Cmd {
	generation := m.generation
	responder := m.responder
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return replyMsg{generation: generation, text: responder.Respond(text)}
	})
}

func (m *Model) refreshTranscript() {
	width := max(20, m.viewport.Width-2)

	youLabel := ui.Bold.Render("You")
	aiLabel := ui.PrimaryStyle().Render("NeuroAI")
	body := lipgloss.NewStyle().Width(width)

	blocks := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		label := aiLabel
		if msg.fromUser {
			label = youLabel
		}
		blocks = append(blocks, label+"\n"+body.Render(msg.text))
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := ""
	if m.waiting {
		status = ui.HintStyle.Render("NeuroAI is typing...")
	}

	inputLine := ui.PrimaryStyle().Render("> ") + string(m.input) + ui.MutedStyle.Render("▌")
	footer := ui.HintStyle.Render("enter send · ctrl+l clear · esc close")

	body := strings.Join([]string{
		m.viewport.View(),
		status,
		inputLine,
	}, "\n")

	return ui.Frame("NeuroAI Assistant", "Playbook guidance, one step at a time", body, footer)
}

// Run opens the assistant screen and blocks until the user closes it.
func Run(responder Responder, delay time.Duration) error {
	if !ui.IsInteractiveTerminal() {
		return fmt.Errorf("non-interactive terminal")
	}
	p := tea.NewProgram(New(responder, delay), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("assistant screen: %w", err)
	}
	return nil
}
