package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/neurodemon/neurodemon/internal/audit"
	"github.com/neurodemon/neurodemon/internal/consent"
	"github.com/neurodemon/neurodemon/internal/ui"
)

// ensureConsent makes sure the legal disclaimer has been accepted before a
// gated surface opens. It reports whether the session may continue; a false
// with a nil error means the user declined and everything has been said.
func ensureConsent() (bool, error) {
	switch gate.Check() {
	case consent.StateAccepted:
		return true, nil
	case consent.StateRejected:
		return false, nil
	}

	if prior, ok := gate.PreviousAcceptance(); ok {
		recordActivity(audit.EventReconsentRequired, "disclaimer version changed, renewed acceptance required",
			map[string]string{"accepted": prior.Version, "required": gate.RequiredVersion()})
	}

	if !ui.IsInteractiveTerminal() {
		return false, fmt.Errorf("the legal disclaimer (version %s) has not been accepted; run neurodemon in an interactive terminal first", gate.RequiredVersion())
	}

	return runConsentGate()
}

// runConsentGate shows the disclaimer and records the decision. Accepting
// needs both confirmations; declining leaves nothing behind, so the gate
// shows again on the next start.
func runConsentGate() (bool, error) {
	ui.StartScreen("LEGAL DISCLAIMER", "Please read before continuing")
	fmt.Println(renderDisclaimer(gate.RequiredVersion()))

	if prior, ok := gate.PreviousAcceptance(); ok && prior.Version != gate.RequiredVersion() {
		fmt.Println()
		fmt.Println(ui.WarningBox.Render(fmt.Sprintf(
			"The terms changed since you accepted version %s on %s.\nPlease review and accept the current version.",
			prior.Version, prior.AcceptedAt.Format("2006-01-02"))))
	}

	var hasRead, acknowledged bool
	var decision string
	for {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("I have read and understood the terms above").
					Value(&hasRead),
				huh.NewConfirm().
					Title("I acknowledge full responsibility for my actions").
					Value(&acknowledged),
				huh.NewSelect[string]().
					Title("Decision").
					Options(
						huh.NewOption("Accept the terms", "accept"),
						huh.NewOption("Decline and exit", "decline"),
					).
					Value(&decision),
			),
		).WithTheme(ui.HuhTheme())

		if err := form.Run(); err != nil {
			if !errors.Is(err, huh.ErrUserAborted) {
				return false, err
			}
			decision = "decline"
		}

		if decision != "accept" {
			gate.Reject()
			recordActivity(audit.EventConsentRejected, "legal disclaimer declined", nil)
			fmt.Println()
			fmt.Println(ui.MutedStyle.Render("Nothing was recorded. The disclaimer will be shown again next time."))
			return false, nil
		}

		err := gate.Accept(hasRead, acknowledged)
		if err == nil {
			break
		}
		if errors.Is(err, consent.ErrAcknowledgementRequired) {
			fmt.Println(ui.WarningStyle.Render("Both confirmations are required to accept."))
			continue
		}

		// The acceptance could not be persisted; the gate stays in place.
		logger.Warn("Could not record the acceptance", "err", err)
		fmt.Println()
		fmt.Println(ui.ErrorBox.Render(
			"Your acceptance could not be saved: " + err.Error() +
				"\nThe disclaimer will be shown again until it can be recorded."))
		return false, nil
	}

	recordActivity(audit.EventConsentAccepted, "legal disclaimer accepted",
		map[string]string{"version": gate.RequiredVersion()})
	fmt.Println()
	fmt.Println(ui.SuccessBox.Render("Terms accepted (version " + gate.RequiredVersion() + "). Welcome aboard."))
	return true, nil
}

func renderDisclaimer(version string) string {
	var b strings.Builder

	b.WriteString(ui.ErrorBox.Render(consent.Notice))
	b.WriteString("\n\n")
	b.WriteString(consent.Preamble)
	b.WriteString("\n\n")

	b.WriteString(ui.Title.Render("You agree to:"))
	b.WriteString("\n")
	for _, term := range consent.Terms() {
		b.WriteString("  " + ui.StatusPending.String() + " " + term + "\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Title.Render("Violations may result in:"))
	b.WriteString("\n")
	for _, consequence := range consent.Consequences() {
		b.WriteString("  " + ui.StatusError.String() + " " + consequence + "\n")
	}

	b.WriteString("\n")
	b.WriteString(consent.Closing)
	b.WriteString("\n\n")
	b.WriteString(ui.MutedStyle.Render("Disclaimer version " + version))

	return b.String()
}
