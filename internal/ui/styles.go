// Package ui provides Charm-based UI components for neurodemon
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Active palette colors. ApplyPalette rebinds them and rebuilds every
// derived style, so render paths always pick up the current theme.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
)

// Styles derived from the active palette.
var (
	Bold lipgloss.Style

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	WarningBox lipgloss.Style
	ErrorBox   lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	StatusRunning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style

	PromptTitle       lipgloss.Style
	PromptDescription lipgloss.Style

	HeaderStyle lipgloss.Style
	AppStyle    lipgloss.Style
)

var activePalette Palette

func init() {
	ApplyPalette(DefaultPalette())
}

// ApplyPalette rebinds the package color set to p and rebuilds the derived
// styles. A disabled palette clears every color for no-color terminals.
func ApplyPalette(p Palette) {
	activePalette = p

	if p.Disabled {
		blank := lipgloss.Color("")
		Primary, Secondary, Accent, Info = blank, blank, blank, blank
		Success, Warning, Error, Muted = blank, blank, blank, blank
		Background, Foreground, Border, Highlight = blank, blank, blank, blank
	} else {
		Primary = p.Primary
		Secondary = p.Secondary
		Accent = p.Accent
		Info = p.Info
		Success = p.Success
		Warning = p.Warning
		Error = p.Error
		Muted = p.Muted
		Background = p.Background
		Foreground = p.Foreground
		Border = p.Border
		Highlight = p.Highlight
	}

	rebuildStyles()
}

// ActivePalette returns the palette currently applied.
func ActivePalette() Palette {
	return activePalette
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	WarningBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Warning).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Muted)

	TableCell = lipgloss.NewStyle().
		Padding(0, 1)

	StatusRunning = lipgloss.NewStyle().
		Foreground(Secondary).
		SetString("●")

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		SetString("✓")

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		SetString("✗")

	StatusPending = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("○")

	PromptTitle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)

	PromptDescription = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true).
		Width(60).
		Align(lipgloss.Center)

	AppStyle = lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
}

// PrimaryStyle returns a bold style in the active primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Header renders the screen header bar for a title.
func Header(title string) string {
	return HeaderStyle.Render(title)
}

// Banner returns the neurodemon ASCII banner
func Banner() string {
	banner := strings.Join([]string{
		" _  _ ___  _   _ ___  ___  ___  ___ __  __  ___  _  _ ",
		"| \\| | __|| | | | _ \\ / _ \\|   \\| __|  \\/  |/ _ \\| \\| |",
		"| .` | _| | |_| |   /| (_) || |) | _|| |\\/| | (_) | .` |",
		"|_|\\_|___| \\___/|_|_\\ \\___/ |___/|___|_|  |_|\\___/|_|\\_|",
	}, "\n")
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render(banner)
}
