package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

func StartScreen(title string, subtitle string) {
	ClearScreen()
	fmt.Println(Header(title))
	e := ActiveEffects()
	if subtitle != "" && !e.FocusMode {
		fmt.Println(Tagline.Render(subtitle))
	}
	for i := 0; i < e.SectionGap(); i++ {
		fmt.Println()
	}
}

func ClearScreen() {
	if !IsInteractiveTerminal() {
		return
	}
	fmt.Print("\033[2J\033[H")
}

func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

// Frame renders a full-screen TUI layout. Focus mode drops the tagline so
// only the working area and its keys remain.
func Frame(title string, subtitle string, body string, footer string) string {
	e := ActiveEffects()

	parts := make([]string, 0, 7)
	parts = append(parts, Header(title))
	if subtitle != "" && !e.FocusMode {
		parts = append(parts, Tagline.Render(subtitle))
	}
	for i := 0; i < e.SectionGap(); i++ {
		parts = append(parts, "")
	}
	parts = append(parts, body)
	if footer != "" {
		parts = append(parts, footer)
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if pad := e.FramePadding(); pad > 0 {
		frame = lipgloss.NewStyle().PaddingLeft(pad).Render(frame)
	}
	return frame
}
