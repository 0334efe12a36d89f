package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
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
	Disabled   bool
}

const defaultThemeName = "calm"

// PaletteByName returns a palette by theme name. The calm palette keeps
// saturation low across the board, alerts included; high-contrast uses pure
// black and white with primary colors only.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return Palette{
			Name:       "dark",
			Primary:    lipgloss.Color("#A78BFA"),
			Secondary:  lipgloss.Color("#22D3EE"),
			Accent:     lipgloss.Color("#C084FC"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#6B7280"),
			Background: lipgloss.Color("#030712"),
			Foreground: lipgloss.Color("#F9FAFB"),
			Border:     lipgloss.Color("#374151"),
			Highlight:  lipgloss.Color("#DDD6FE"),
		}
	case "light":
		return Palette{
			Name:       "light",
			Primary:    lipgloss.Color("#2563EB"),
			Secondary:  lipgloss.Color("#0D9488"),
			Accent:     lipgloss.Color("#7C3AED"),
			Info:       lipgloss.Color("#0284C7"),
			Success:    lipgloss.Color("#059669"),
			Warning:    lipgloss.Color("#B45309"),
			Error:      lipgloss.Color("#DC2626"),
			Muted:      lipgloss.Color("#64748B"),
			Background: lipgloss.Color("#F8FAFC"),
			Foreground: lipgloss.Color("#0F172A"),
			Border:     lipgloss.Color("#CBD5E1"),
			Highlight:  lipgloss.Color("#1D4ED8"),
		}
	case "high-contrast":
		return Palette{
			Name:       "high-contrast",
			Primary:    lipgloss.Color("#FFFF00"),
			Secondary:  lipgloss.Color("#00FFFF"),
			Accent:     lipgloss.Color("#FF00FF"),
			Info:       lipgloss.Color("#00BFFF"),
			Success:    lipgloss.Color("#00FF00"),
			Warning:    lipgloss.Color("#FFA500"),
			Error:      lipgloss.Color("#FF4040"),
			Muted:      lipgloss.Color("#C0C0C0"),
			Background: lipgloss.Color("#000000"),
			Foreground: lipgloss.Color("#FFFFFF"),
			Border:     lipgloss.Color("#FFFFFF"),
			Highlight:  lipgloss.Color("#FFFF00"),
		}
	default:
		return Palette{
			Name:       "calm",
			Primary:    lipgloss.Color("#5EEAD4"),
			Secondary:  lipgloss.Color("#99F6E4"),
			Accent:     lipgloss.Color("#7DD3FC"),
			Info:       lipgloss.Color("#93C5FD"),
			Success:    lipgloss.Color("#6EE7B7"),
			Warning:    lipgloss.Color("#FCD34D"),
			Error:      lipgloss.Color("#FCA5A5"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0F172A"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#CFFAFE"),
		}
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}
