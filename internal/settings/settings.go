// Package settings manages the accessibility settings record: the typed
// fields, their allowed values, and partial updates merged onto the current
// record.
package settings

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is returned when an update carries a value outside the
// allowed set for an enumerated field. errors.Is against it to detect
// validation failures.
var ErrInvalidOption = errors.New("invalid option")

// Theme selects the color palette.
type Theme string

// Allowed themes.
const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "high-contrast"
	ThemeCalm         Theme = "calm"
)

// FontSize selects the text scale, rendered as layout density in a terminal.
type FontSize string

// Allowed font sizes.
const (
	FontSizeSmall      FontSize = "small"
	FontSizeMedium     FontSize = "medium"
	FontSizeLarge      FontSize = "large"
	FontSizeExtraLarge FontSize = "extra-large"
)

// Animations selects how much motion the interface shows.
type Animations string

// Allowed animation levels.
const (
	AnimationsFull    Animations = "full"
	AnimationsReduced Animations = "reduced"
	AnimationsNone    Animations = "none"
)

// Sounds selects how much audio feedback the interface gives.
type Sounds string

// Allowed sound levels.
const (
	SoundsEnabled  Sounds = "enabled"
	SoundsMinimal  Sounds = "minimal"
	SoundsDisabled Sounds = "disabled"
)

// Themes returns every allowed theme.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeHighContrast, ThemeCalm}
}

// FontSizes returns every allowed font size.
func FontSizes() []FontSize {
	return []FontSize{FontSizeSmall, FontSizeMedium, FontSizeLarge, FontSizeExtraLarge}
}

// AnimationLevels returns every allowed animation level.
func AnimationLevels() []Animations {
	return []Animations{AnimationsFull, AnimationsReduced, AnimationsNone}
}

// SoundLevels returns every allowed sound level.
func SoundLevels() []Sounds {
	return []Sounds{SoundsEnabled, SoundsMinimal, SoundsDisabled}
}

func validateOption[T ~string](field string, value T, allowed []T) error {
	for _, opt := range allowed {
		if value == opt {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", ErrInvalidOption, field, string(value))
}

// SupportFlags are the independent neurodivergent support toggles. Each flag
// unlocks its own set of accommodations in the interface.
type SupportFlags struct {
	ADHD    bool `json:"adhd"`
	Autism  bool `json:"autism"`
	Anxiety bool `json:"anxiety"`
	OCD     bool `json:"ocd"`
	PTSD    bool `json:"ptsd"`
}

// Any reports whether at least one support flag is enabled.
func (f SupportFlags) Any() bool {
	return f.ADHD || f.Autism || f.Anxiety || f.OCD || f.PTSD
}

// AccessibilitySettings is the full settings record as persisted.
type AccessibilitySettings struct {
	Theme            Theme        `json:"theme"`
	FontSize         FontSize     `json:"font_size"`
	Animations       Animations   `json:"animations"`
	Sounds           Sounds       `json:"sounds"`
	FocusMode        bool         `json:"focus_mode"`
	TimerReminders   bool         `json:"timer_reminders"`
	StressMonitoring bool         `json:"stress_monitoring"`
	Support          SupportFlags `json:"neurodivergent_support"`
}

// Defaults returns the record a fresh profile starts from. The calm theme and
// reduced motion are deliberate first-run choices, not placeholders.
func Defaults() AccessibilitySettings {
	return AccessibilitySettings{
		Theme:            ThemeCalm,
		FontSize:         FontSizeMedium,
		Animations:       AnimationsReduced,
		Sounds:           SoundsMinimal,
		FocusMode:        false,
		TimerReminders:   true,
		StressMonitoring: true,
	}
}

// Validate checks every enumerated field against its allowed values.
func (s AccessibilitySettings) Validate() error {
	if err := validateOption("theme", s.Theme, Themes()); err != nil {
		return err
	}
	if err := validateOption("font size", s.FontSize, FontSizes()); err != nil {
		return err
	}
	if err := validateOption("animations", s.Animations, AnimationLevels()); err != nil {
		return err
	}
	if err := validateOption("sounds", s.Sounds, SoundLevels()); err != nil {
		return err
	}
	return nil
}

// SupportPartial updates individual support flags; nil fields keep the
// current value.
type SupportPartial struct {
	ADHD    *bool
	Autism  *bool
	Anxiety *bool
	OCD     *bool
	PTSD    *bool
}

// Partial is a settings update. Nil fields keep the current value, set ones
// overwrite it. Support is merged flag by flag, so setting one flag never
// clears its siblings.
type Partial struct {
	Theme            *Theme
	FontSize         *FontSize
	Animations       *Animations
	Sounds           *Sounds
	FocusMode        *bool
	TimerReminders   *bool
	StressMonitoring *bool
	Support          *SupportPartial
}

// Validate checks the set enumerated fields against their allowed values.
func (p Partial) Validate() error {
	if p.Theme != nil {
		if err := validateOption("theme", *p.Theme, Themes()); err != nil {
			return err
		}
	}
	if p.FontSize != nil {
		if err := validateOption("font size", *p.FontSize, FontSizes()); err != nil {
			return err
		}
	}
	if p.Animations != nil {
		if err := validateOption("animations", *p.Animations, AnimationLevels()); err != nil {
			return err
		}
	}
	if p.Sounds != nil {
		if err := validateOption("sounds", *p.Sounds, SoundLevels()); err != nil {
			return err
		}
	}
	return nil
}

// applyTo returns base with p's set fields overwritten.
func (p Partial) applyTo(base AccessibilitySettings) AccessibilitySettings {
	if p.Theme != nil {
		base.Theme = *p.Theme
	}
	if p.FontSize != nil {
		base.FontSize = *p.FontSize
	}
	if p.Animations != nil {
		base.Animations = *p.Animations
	}
	if p.Sounds != nil {
		base.Sounds = *p.Sounds
	}
	if p.FocusMode != nil {
		base.FocusMode = *p.FocusMode
	}
	if p.TimerReminders != nil {
		base.TimerReminders = *p.TimerReminders
	}
	if p.StressMonitoring != nil {
		base.StressMonitoring = *p.StressMonitoring
	}
	if p.Support != nil {
		if p.Support.ADHD != nil {
			base.Support.ADHD = *p.Support.ADHD
		}
		if p.Support.Autism != nil {
			base.Support.Autism = *p.Support.Autism
		}
		if p.Support.Anxiety != nil {
			base.Support.Anxiety = *p.Support.Anxiety
		}
		if p.Support.OCD != nil {
			base.Support.OCD = *p.Support.OCD
		}
		if p.Support.PTSD != nil {
			base.Support.PTSD = *p.Support.PTSD
		}
	}
	return base
}
