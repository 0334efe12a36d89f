package ui

import (
	"fmt"
	"time"

	"github.com/neurodemon/neurodemon/internal/settings"
)

// Density is the layout spacing step the font size preference maps to. A
// terminal cannot scale glyphs, so larger sizes buy room instead.
type Density int

// Density steps from tightest to widest.
const (
	DensityCompact Density = iota
	DensityCozy
	DensityComfortable
	DensitySpacious
)

// Effects is the presentation state derived from an accessibility settings
// record. The settings store stays presentation-free; deriving and applying
// effects is the UI layer's explicit step.
type Effects struct {
	Theme      string
	Density    Density
	Animations settings.Animations
	Sounds     settings.Sounds
	FocusMode  bool
	NoColor    bool
}

var currentEffects = EffectsFor(settings.Defaults())

// EffectsFor derives presentation effects from a settings record. It is
// pure; nothing changes until Apply.
func EffectsFor(rec settings.AccessibilitySettings) Effects {
	return Effects{
		Theme:      string(rec.Theme),
		Density:    densityFor(rec.FontSize),
		Animations: rec.Animations,
		Sounds:     rec.Sounds,
		FocusMode:  rec.FocusMode,
	}
}

// Apply makes e the active presentation state and rebinds the palette.
func Apply(e Effects) {
	currentEffects = e
	palette := PaletteByName(e.Theme)
	palette.Disabled = e.NoColor
	ApplyPalette(palette)
}

// ActiveEffects returns the presentation state currently applied.
func ActiveEffects() Effects {
	return currentEffects
}

func densityFor(size settings.FontSize) Density {
	switch size {
	case settings.FontSizeSmall:
		return DensityCompact
	case settings.FontSizeLarge:
		return DensityComfortable
	case settings.FontSizeExtraLarge:
		return DensitySpacious
	default:
		return DensityCozy
	}
}

// SectionGap returns the number of blank lines between screen sections.
func (e Effects) SectionGap() int {
	switch e.Density {
	case DensityCompact:
		return 0
	case DensitySpacious:
		return 2
	default:
		return 1
	}
}

// FramePadding returns the horizontal padding for framed content.
func (e Effects) FramePadding() int {
	switch e.Density {
	case DensityCompact:
		return 0
	case DensityComfortable:
		return 2
	case DensitySpacious:
		return 3
	default:
		return 1
	}
}

// TickEvery scales a base animation interval to the motion preference. The
// second return is false when animation is off entirely.
func (e Effects) TickEvery(base time.Duration) (time.Duration, bool) {
	switch e.Animations {
	case settings.AnimationsNone:
		return 0, false
	case settings.AnimationsReduced:
		return base * 2, true
	default:
		return base, true
	}
}

// SpinnerEnabled reports whether animated progress indicators may run.
func (e Effects) SpinnerEnabled() bool {
	return e.Animations != settings.AnimationsNone
}

// chimesFor reports whether the bell may ring. Routine notices ring only at
// the enabled sound level; alerts also ring at minimal.
func (e Effects) chimesFor(alert bool) bool {
	switch e.Sounds {
	case settings.SoundsEnabled:
		return true
	case settings.SoundsMinimal:
		return alert
	default:
		return false
	}
}

// Bell rings the terminal bell if the active sound level allows it.
func Bell(alert bool) {
	if currentEffects.chimesFor(alert) {
		fmt.Print("\a")
	}
}
