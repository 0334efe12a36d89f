package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/consent"
	"github.com/neurodemon/neurodemon/internal/ui"
)

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Show the recorded disclaimer acceptance",
	RunE:  runConsentStatus,
}

var consentReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Read the disclaimer again and renew or withdraw the acceptance",
	RunE:  runConsentReview,
}

func init() {
	consentCmd.AddCommand(consentReviewCmd)
}

func runConsentStatus(cmd *cobra.Command, args []string) error {
	state := gate.Check()

	fmt.Println(ui.Banner())
	fmt.Println(ui.Title.Render("Legal Disclaimer"))
	printKV("State", consentStateLabel(state))
	printKV("Required version", gate.RequiredVersion())

	record, ok := gate.PreviousAcceptance()
	if !ok {
		fmt.Println()
		fmt.Println(ui.MutedStyle.Render("  No acceptance recorded yet. The gate opens on the next start."))
		return nil
	}

	printKV("Accepted version", record.Version)
	printKV("Accepted at", record.AcceptedAt.Format(time.RFC1123))
	if record.Version != gate.RequiredVersion() {
		fmt.Println()
		fmt.Println(ui.WarningBox.Render(
			"The disclaimer changed since this acceptance.\nThe gate will ask again before anything else runs."))
	}
	return nil
}

func runConsentReview(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractiveTerminal() {
		return fmt.Errorf("reviewing the disclaimer needs an interactive terminal")
	}
	_, err := runConsentGate()
	return err
}

func consentStateLabel(state consent.State) string {
	switch state {
	case consent.StateAccepted:
		return ui.SuccessStyle.Render(state.String())
	case consent.StatePending:
		return ui.WarningStyle.Render(state.String())
	case consent.StateRejected:
		return ui.ErrorStyle.Render(state.String())
	default:
		return ui.MutedStyle.Render(state.String())
	}
}
