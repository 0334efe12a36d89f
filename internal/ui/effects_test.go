package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neurodemon/neurodemon/internal/settings"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { Apply(EffectsFor(settings.Defaults())) })
}

func TestEffectsForDefaults(t *testing.T) {
	e := EffectsFor(settings.Defaults())

	assert.Equal(t, "calm", e.Theme)
	assert.Equal(t, DensityCozy, e.Density)
	assert.Equal(t, settings.AnimationsReduced, e.Animations)
	assert.Equal(t, settings.SoundsMinimal, e.Sounds)
	assert.False(t, e.FocusMode)
	assert.False(t, e.NoColor)
}

func TestDensityForFontSize(t *testing.T) {
	tests := []struct {
		size settings.FontSize
		want Density
	}{
		{settings.FontSizeSmall, DensityCompact},
		{settings.FontSizeMedium, DensityCozy},
		{settings.FontSizeLarge, DensityComfortable},
		{settings.FontSizeExtraLarge, DensitySpacious},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			rec := settings.Defaults()
			rec.FontSize = tt.size
			assert.Equal(t, tt.want, EffectsFor(rec).Density)
		})
	}
}

func TestTickEvery(t *testing.T) {
	base := 250 * time.Millisecond

	e := Effects{Animations: settings.AnimationsFull}
	interval, ok := e.TickEvery(base)
	assert.True(t, ok)
	assert.Equal(t, base, interval)

	e.Animations = settings.AnimationsReduced
	interval, ok = e.TickEvery(base)
	assert.True(t, ok)
	assert.Equal(t, 2*base, interval)

	e.Animations = settings.AnimationsNone
	_, ok = e.TickEvery(base)
	assert.False(t, ok)
	assert.False(t, e.SpinnerEnabled())
}

func TestChimes(t *testing.T) {
	tests := []struct {
		sounds    settings.Sounds
		alert     bool
		wantChime bool
	}{
		{settings.SoundsEnabled, false, true},
		{settings.SoundsEnabled, true, true},
		{settings.SoundsMinimal, false, false},
		{settings.SoundsMinimal, true, true},
		{settings.SoundsDisabled, false, false},
		{settings.SoundsDisabled, true, false},
	}

	for _, tt := range tests {
		e := Effects{Sounds: tt.sounds}
		assert.Equal(t, tt.wantChime, e.chimesFor(tt.alert), "sounds=%s alert=%v", tt.sounds, tt.alert)
	}
}

func TestApplyPropagatesThemeAndState(t *testing.T) {
	restoreDefaults(t)

	rec := settings.Defaults()
	rec.Theme = settings.ThemeDark
	rec.FontSize = settings.FontSizeExtraLarge
	rec.FocusMode = true

	Apply(EffectsFor(rec))

	assert.Equal(t, "dark", ActivePalette().Name)
	got := ActiveEffects()
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, DensitySpacious, got.Density)
	assert.True(t, got.FocusMode)
}

func TestApplyNoColorDisablesPalette(t *testing.T) {
	restoreDefaults(t)

	e := EffectsFor(settings.Defaults())
	e.NoColor = true
	Apply(e)

	assert.True(t, ActivePalette().Disabled)
	assert.Empty(t, string(Primary))
}

func TestPaletteByNameCoversAllThemes(t *testing.T) {
	for _, theme := range settings.Themes() {
		p := PaletteByName(string(theme))
		assert.Equal(t, string(theme), p.Name)
		assert.NotEmpty(t, string(p.Primary))
	}

	// Unknown names fall back to the calm palette rather than failing.
	assert.Equal(t, "calm", PaletteByName("does-not-exist").Name)
}
