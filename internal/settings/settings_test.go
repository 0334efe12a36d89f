package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, ThemeCalm, d.Theme)
	assert.Equal(t, FontSizeMedium, d.FontSize)
	assert.Equal(t, AnimationsReduced, d.Animations)
	assert.Equal(t, SoundsMinimal, d.Sounds)
	assert.False(t, d.FocusMode)
	assert.True(t, d.TimerReminders)
	assert.True(t, d.StressMonitoring)
	assert.Equal(t, SupportFlags{}, d.Support)
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AccessibilitySettings)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*AccessibilitySettings) {},
		},
		{
			name:   "every allowed theme",
			mutate: func(s *AccessibilitySettings) { s.Theme = ThemeHighContrast },
		},
		{
			name:    "unknown theme",
			mutate:  func(s *AccessibilitySettings) { s.Theme = "neon" },
			wantErr: true,
		},
		{
			name:    "unknown font size",
			mutate:  func(s *AccessibilitySettings) { s.FontSize = "huge" },
			wantErr: true,
		},
		{
			name:    "unknown animations",
			mutate:  func(s *AccessibilitySettings) { s.Animations = "some" },
			wantErr: true,
		},
		{
			name:    "unknown sounds",
			mutate:  func(s *AccessibilitySettings) { s.Sounds = "loud" },
			wantErr: true,
		},
		{
			name:    "empty enum value",
			mutate:  func(s *AccessibilitySettings) { s.Theme = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOption)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPartialValidate(t *testing.T) {
	tests := []struct {
		name    string
		partial Partial
		wantErr bool
	}{
		{
			name:    "empty partial",
			partial: Partial{},
		},
		{
			name:    "valid enum fields",
			partial: Partial{Theme: ptr(ThemeDark), Sounds: ptr(SoundsDisabled)},
		},
		{
			name:    "bool fields are never invalid",
			partial: Partial{FocusMode: ptr(true), Support: &SupportPartial{OCD: ptr(true)}},
		},
		{
			name:    "unknown theme",
			partial: Partial{Theme: ptr(Theme("sepia"))},
			wantErr: true,
		},
		{
			name:    "unknown font size among valid fields",
			partial: Partial{Theme: ptr(ThemeLight), FontSize: ptr(FontSize("xxl"))},
			wantErr: true,
		},
		{
			name:    "unknown animations",
			partial: Partial{Animations: ptr(Animations("fancy"))},
			wantErr: true,
		},
		{
			name:    "unknown sounds",
			partial: Partial{Sounds: ptr(Sounds("max"))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.partial.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOption)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSupportFlagsAny(t *testing.T) {
	assert.False(t, SupportFlags{}.Any())
	assert.True(t, SupportFlags{Anxiety: true}.Any())
	assert.True(t, SupportFlags{ADHD: true, Autism: true, Anxiety: true, OCD: true, PTSD: true}.Any())
}
