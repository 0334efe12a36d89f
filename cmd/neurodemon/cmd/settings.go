package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/audit"
	"github.com/neurodemon/neurodemon/internal/settings"
	"github.com/neurodemon/neurodemon/internal/support"
	"github.com/neurodemon/neurodemon/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit accessibility and support preferences",
	RunE:  runSettings,
}

// runSettings is the sectioned settings editor. Every section applies as
// soon as its form is submitted, so the theme or spacing changes are visible
// by the time the section menu comes back.
func runSettings(cmd *cobra.Command, args []string) error {
	ok, err := ensureConsent()
	if err != nil || !ok {
		return err
	}

	ui.StartScreen("SETTINGS", "Accessibility and support preferences")

	for {
		current := settingsStore.Settings()
		choice, err := ui.RunMenuWithOptions("SETTINGS", "Select a section to edit", []ui.MenuItem{
			{ID: "appearance", TitleText: "Appearance", Details: fmt.Sprintf("Theme %s, font size %s", current.Theme, current.FontSize)},
			{ID: "motion", TitleText: "Motion & Sound", Details: fmt.Sprintf("Animations %s, sounds %s", current.Animations, current.Sounds)},
			{ID: "wellbeing", TitleText: "Focus & Wellbeing", Details: wellbeingSummary(current)},
			{ID: "support", TitleText: "Support Profile", Details: supportSummary(current.Support)},
			{ID: "reset", TitleText: "Reset", Details: "Back to the default preferences"},
			{ID: "exit", TitleText: "Done", Details: "Back to the main menu"},
		}, ui.WithBackNavigation("Done"))
		if err != nil {
			return err
		}

		switch choice {
		case ui.MenuActionBack, ui.MenuActionQuit, "exit", "":
			return nil
		case "appearance":
			err = editAppearance(current)
		case "motion":
			err = editMotion(current)
		case "wellbeing":
			err = editWellbeing(current)
		case "support":
			err = editSupport(current)
		case "reset":
			err = resetSettings()
		}
		if err != nil {
			return err
		}
	}
}

func editAppearance(current settings.AccessibilitySettings) error {
	theme := current.Theme
	fontSize := current.FontSize

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[settings.Theme]().
				Title("Theme").
				Description("Color palette for every screen").
				Options(
					huh.NewOption("Calm (soft teal, low stimulus)", settings.ThemeCalm),
					huh.NewOption("Dark", settings.ThemeDark),
					huh.NewOption("Light", settings.ThemeLight),
					huh.NewOption("High contrast", settings.ThemeHighContrast),
				).
				Value(&theme),
			huh.NewSelect[settings.FontSize]().
				Title("Font Size").
				Description("A terminal cannot scale glyphs, so this adjusts spacing").
				Options(
					huh.NewOption("Small", settings.FontSizeSmall),
					huh.NewOption("Medium", settings.FontSizeMedium),
					huh.NewOption("Large", settings.FontSizeLarge),
					huh.NewOption("Extra large", settings.FontSizeExtraLarge),
				).
				Value(&fontSize),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	return applySettings(settings.Partial{Theme: &theme, FontSize: &fontSize}, "appearance")
}

func editMotion(current settings.AccessibilitySettings) error {
	animations := current.Animations
	sounds := current.Sounds

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[settings.Animations]().
				Title("Animations").
				Description("How much the interface moves on its own").
				Options(
					huh.NewOption("Full", settings.AnimationsFull),
					huh.NewOption("Reduced (slower spinners and ticks)", settings.AnimationsReduced),
					huh.NewOption("Off", settings.AnimationsNone),
				).
				Value(&animations),
			huh.NewSelect[settings.Sounds]().
				Title("Sounds").
				Description("When the terminal bell may ring").
				Options(
					huh.NewOption("On", settings.SoundsEnabled),
					huh.NewOption("Minimal (important alerts only)", settings.SoundsMinimal),
					huh.NewOption("Off", settings.SoundsDisabled),
				).
				Value(&sounds),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	return applySettings(settings.Partial{Animations: &animations, Sounds: &sounds}, "motion and sound")
}

func editWellbeing(current settings.AccessibilitySettings) error {
	focusMode := current.FocusMode
	reminders := current.TimerReminders
	stress := current.StressMonitoring

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Focus Mode").
				Description("Hide nonessential chrome and keep screens to one thing at a time").
				Value(&focusMode),
			huh.NewConfirm().
				Title("Timer Reminders").
				Description("Announce focus session phase changes with a banner and chime").
				Value(&reminders),
			huh.NewConfirm().
				Title("Stress Monitoring").
				Description("Watch session length and suggest breaks before it gets too much").
				Value(&stress),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	return applySettings(settings.Partial{
		FocusMode:        &focusMode,
		TimerReminders:   &reminders,
		StressMonitoring: &stress,
	}, "focus and wellbeing")
}

func editSupport(current settings.AccessibilitySettings) error {
	enabled := map[support.Condition]bool{
		support.ConditionADHD:    current.Support.ADHD,
		support.ConditionAutism:  current.Support.Autism,
		support.ConditionAnxiety: current.Support.Anxiety,
		support.ConditionOCD:     current.Support.OCD,
		support.ConditionPTSD:    current.Support.PTSD,
	}

	options := make([]huh.Option[support.Condition], 0, len(support.Conditions()))
	for _, condition := range support.Conditions() {
		label := fmt.Sprintf("%s · %s", condition.Label(), condition.Summary())
		options = append(options, huh.NewOption(label, condition).Selected(enabled[condition]))
	}

	var selected []support.Condition
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[support.Condition]().
				Title("Support Profile").
				Description("Pick everything that applies; space toggles, enter confirms").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	has := func(condition support.Condition) *bool {
		v := slices.Contains(selected, condition)
		return &v
	}
	return applySettings(settings.Partial{Support: &settings.SupportPartial{
		ADHD:    has(support.ConditionADHD),
		Autism:  has(support.ConditionAutism),
		Anxiety: has(support.ConditionAnxiety),
		OCD:     has(support.ConditionOCD),
		PTSD:    has(support.ConditionPTSD),
	}}, "support profile")
}

func resetSettings() error {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all preferences?").
				Description("Theme, motion, sound, and support profile go back to the defaults").
				Affirmative("Reset").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(ui.HuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	if !confirmed {
		return nil
	}

	if err := settingsStore.Reset(); err != nil {
		logger.Warn("Settings were reset for this session but could not be saved", "err", err)
		fmt.Println(ui.WarningBox.Render("Reset applied, but saving failed: " + err.Error()))
		return nil
	}
	recordActivity(audit.EventSettingsReset, "settings reset to defaults", nil)
	fmt.Println(ui.SuccessStyle.Render("✔ Defaults restored"))
	return nil
}

// applySettings pushes a partial update into the settings store. A failed
// save is a warning, not an error: the store keeps the choice in memory and
// the session goes on with it.
func applySettings(p settings.Partial, section string) error {
	if err := settingsStore.Update(p); err != nil {
		if errors.Is(err, settings.ErrInvalidOption) {
			fmt.Println(ui.ErrorBox.Render("Not applied: " + err.Error()))
			return nil
		}
		logger.Warn("Settings were applied but could not be saved", "err", err)
		fmt.Println(ui.WarningBox.Render("Applied for this session, but saving failed: " + err.Error()))
		return nil
	}
	recordActivity(audit.EventSettingsUpdated, "settings updated", map[string]string{"section": section})
	fmt.Println(ui.SuccessStyle.Render("✔ Saved"))
	return nil
}

func wellbeingSummary(rec settings.AccessibilitySettings) string {
	parts := make([]string, 0, 3)
	if rec.FocusMode {
		parts = append(parts, "focus mode")
	}
	if rec.TimerReminders {
		parts = append(parts, "reminders")
	}
	if rec.StressMonitoring {
		parts = append(parts, "stress monitoring")
	}
	if len(parts) == 0 {
		return "Everything off"
	}
	return strings.Join(parts, ", ") + " on"
}

func supportSummary(flags settings.SupportFlags) string {
	enabled := make([]string, 0, 5)
	for _, condition := range support.Conditions() {
		if supportEnabled(flags, condition) {
			enabled = append(enabled, condition.Label())
		}
	}
	if len(enabled) == 0 {
		return "No profiles enabled"
	}
	return strings.Join(enabled, ", ")
}

func supportEnabled(flags settings.SupportFlags, condition support.Condition) bool {
	switch condition {
	case support.ConditionADHD:
		return flags.ADHD
	case support.ConditionAutism:
		return flags.Autism
	case support.ConditionAnxiety:
		return flags.Anxiety
	case support.ConditionOCD:
		return flags.OCD
	case support.ConditionPTSD:
		return flags.PTSD
	default:
		return false
	}
}
