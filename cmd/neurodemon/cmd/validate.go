package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/audit"
	"github.com/neurodemon/neurodemon/internal/storage"
	"github.com/neurodemon/neurodemon/internal/ui"
	"github.com/neurodemon/neurodemon/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the profile's files without changing them",
	Long: `Check the files the profile is made of:
  - Configuration (neurodemon.yaml)
  - Local store and the settings and consent records inside it
  - Activity log

Checks only report; nothing is repaired or rewritten.

Examples:
  neurodemon validate`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ui.StartScreen("VALIDATION", "Check the profile without changing it")

	cfgPath, err := configPath()
	if err != nil {
		return err
	}

	// The activity log grows with every session, so the checks run behind a
	// progress indicator before anything is printed.
	var cfgResult, storeResult, logResult validate.Result
	if err := ui.RunWithSpinner("Checking profile files", func() error {
		cfgResult = validate.Config(cfgPath)
		storeResult = validate.LocalStore(filepath.Join(profileDir, storage.FileName))
		logResult = validate.ActivityLog(filepath.Join(profileDir, audit.FileName))
		return nil
	}); err != nil {
		return err
	}

	var combined validate.Result

	fmt.Println()
	fmt.Println(ui.Title.Render("Configuration"))
	combined.Merge(printCheck(cfgResult))

	fmt.Println()
	fmt.Println(ui.Title.Render("Local store"))
	combined.Merge(printCheck(storeResult))

	fmt.Println()
	fmt.Println(ui.Title.Render("Activity log"))
	combined.Merge(printCheck(logResult))

	fmt.Println()
	if combined.HasErrors() {
		fmt.Println(ui.ErrorBox.Render(fmt.Sprintf("Validation failed with %d error(s)", len(combined.Errors))))
		return fmt.Errorf("validation failed")
	}
	if len(combined.Warnings) > 0 {
		fmt.Println(ui.InfoBox.Render(fmt.Sprintf("Validation passed with %d warning(s)", len(combined.Warnings))))
		return nil
	}
	if len(combined.Pending) > 0 {
		fmt.Println(ui.InfoBox.Render("Validation passed; some files are not created yet"))
		return nil
	}
	fmt.Println(ui.SuccessBox.Render("Validation passed!"))
	return nil
}

func printCheck(result validate.Result) validate.Result {
	for _, item := range result.Items {
		line := "  " + statusGlyph(item.Status) + " " + item.Name
		if item.Details != "" {
			line += " " + ui.MutedStyle.Render("("+item.Details+")")
		}
		fmt.Println(line)
	}
	return result
}

func statusGlyph(status validate.Status) string {
	switch status {
	case validate.StatusSuccess:
		return ui.StatusSuccess.String()
	case validate.StatusError:
		return ui.StatusError.String()
	case validate.StatusWarning:
		return ui.WarningStyle.Render("!")
	default:
		return ui.StatusPending.String()
	}
}
