package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/settings"
	"github.com/neurodemon/neurodemon/internal/support"
	"github.com/neurodemon/neurodemon/internal/ui"
	"github.com/neurodemon/neurodemon/internal/version"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the profile, consent state, and recent activity",
	Long: `Display the current profile status including:
  - Where the config, local store, and activity log live
  - Consent state for the legal disclaimer
  - Accessibility settings and support profile
  - Recent recorded activity

Examples:
  neurodemon status`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Banner())

	fmt.Println(ui.Title.Render("Profile"))
	if cfgPath, err := configPath(); err == nil {
		printKV("Config", cfgPath)
	}
	printKV("Data directory", profileDir)
	printKV("Local store", fmt.Sprintf("%s (%d keys)", localStore.Path(), localStore.Len()))
	if activityLog.Enabled() {
		printKV("Activity log", activityLog.Path())
	} else {
		printKV("Activity log", ui.MutedStyle.Render("disabled"))
	}
	printKV("Version", version.Short())

	fmt.Println()
	fmt.Println(ui.Title.Render("Legal"))
	printKV("Disclaimer", consentStateLabel(gate.Check()))
	printKV("Required", gate.RequiredVersion())
	if record, ok := gate.PreviousAcceptance(); ok {
		printKV("Accepted", fmt.Sprintf("version %s on %s", record.Version, record.AcceptedAt.Format("2006-01-02")))
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Accessibility"))
	rec := settingsStore.Settings()
	printKV("Theme", string(rec.Theme))
	printKV("Font size", string(rec.FontSize))
	printKV("Animations", string(rec.Animations))
	printKV("Sounds", string(rec.Sounds))
	printKV("Focus mode", onOff(rec.FocusMode))
	printKV("Reminders", onOff(rec.TimerReminders))
	printKV("Stress watch", onOff(rec.StressMonitoring))

	fmt.Println()
	fmt.Println(ui.Title.Render("Support profile"))
	printSupportFlags(rec.Support)

	fmt.Println()
	fmt.Println(ui.Title.Render("Recent activity"))
	events, err := activityLog.Recent(5)
	if err != nil {
		fmt.Println(ui.MutedStyle.Render("  Could not read the activity log: " + err.Error()))
		return nil
	}
	if len(events) == 0 {
		fmt.Println(ui.MutedStyle.Render("  No recorded activity"))
		return nil
	}
	for _, event := range events {
		fmt.Printf("  %s %s %s\n",
			ui.MutedStyle.Render(event.Timestamp.Format("Jan 02 15:04")),
			event.Type,
			ui.MutedStyle.Render(event.Description))
	}

	return nil
}

func printSupportFlags(flags settings.SupportFlags) {
	if !flags.Any() {
		fmt.Println(ui.MutedStyle.Render("  No profiles enabled"))
		return
	}
	for _, condition := range support.Conditions() {
		if supportEnabled(flags, condition) {
			fmt.Printf("  %s %s %s\n", ui.StatusSuccess.String(), condition.Label(),
				ui.MutedStyle.Render(condition.Summary()))
		}
	}
}

func onOff(v bool) string {
	if v {
		return ui.SuccessStyle.Render("on")
	}
	return ui.MutedStyle.Render("off")
}

func printKV(key, value string) {
	keyStyle := lipgloss.NewStyle().Width(16).Foreground(ui.Muted)
	fmt.Printf("  %s %s\n", keyStyle.Render(key+":"), value)
}
