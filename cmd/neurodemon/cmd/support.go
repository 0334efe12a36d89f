package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/support"
	"github.com/neurodemon/neurodemon/internal/ui"
)

var supportCmd = &cobra.Command{
	Use:   "support",
	Short: "Show the support guide for your enabled profiles",
	RunE:  runSupport,
}

func runSupport(cmd *cobra.Command, args []string) error {
	ok, err := ensureConsent()
	if err != nil || !ok {
		return err
	}

	flags := settingsStore.Settings().Support
	ui.StartScreen("SUPPORT GUIDE", "Accommodations for the way you work")

	if !flags.Any() {
		fmt.Println(ui.InfoBox.Render(
			"No support profiles are enabled.\nTurn them on under Settings → Support Profile to fill this guide."))
		return nil
	}

	if flags.ADHD {
		printADHDGuide()
	}
	if flags.Autism {
		printAutismGuide()
	}
	if flags.Anxiety {
		printAnxietyGuide()
	}
	if flags.OCD {
		printOCDGuide()
	}
	if flags.PTSD {
		printPTSDGuide()
	}
	return nil
}

func printADHDGuide() {
	fmt.Println(ui.Title.Render("ADHD · Task Structure"))
	plan := support.DefaultFocusPlan()
	fmt.Println(ui.MutedStyle.Render(fmt.Sprintf(
		"  Work in %d minute rounds with %d minute breaks; a long break every %d rounds.",
		plan.WorkMinutes, plan.BreakMinutes, plan.LongBreakAfter)))
	fmt.Println()

	task := "the next scan"
	fmt.Printf("  Example breakdown for %s %s\n", ui.Bold.Render(task),
		ui.MutedStyle.Render(fmt.Sprintf("(about %d minutes):", support.EstimateMinutes(task))))
	for _, step := range support.BreakDownTask(task) {
		fmt.Printf("  %d. %s %s\n", step.Step, step.Description,
			ui.MutedStyle.Render(fmt.Sprintf("(%d min, %s)", step.EstimatedMinutes, step.Difficulty)))
	}
	fmt.Println()
}

func printAutismGuide() {
	fmt.Println(ui.Title.Render("Autism · Predictable Workflow"))
	for i, stage := range support.Stages() {
		fmt.Printf("  %d. %s\n", i+1, ui.Bold.Render(stageLabel(stage)))
		fmt.Println("     " + ui.MutedStyle.Render(stage.Explanation()))
		if outcomes := stage.ExpectedOutcomes(); len(outcomes) > 0 {
			fmt.Println("     " + ui.MutedStyle.Render("Produces: "+strings.Join(outcomes, ", ")))
		}
	}
	fmt.Println()
}

func printAnxietyGuide() {
	fmt.Println(ui.Title.Render("Anxiety · Safety Indicators"))
	for _, level := range support.RiskLevels() {
		indicator := support.SafetyFor(level)
		fmt.Printf("  %s %-9s %s %s\n", riskGlyph(level), level, indicator.Message,
			ui.MutedStyle.Render(fmt.Sprintf("(%d%% confidence)", indicator.Confidence)))
	}
	fmt.Println()
}

func printOCDGuide() {
	fmt.Println(ui.Title.Render("OCD · Verification Checklists"))
	printChecklist("Before a scan", support.PhasePreScan)
	printChecklist("After a scan", support.PhasePostScan)
	fmt.Println()
}

func printChecklist(heading string, phase support.Phase) {
	fmt.Println("  " + ui.Bold.Render(heading))
	for _, item := range support.Checklist(phase) {
		marker := ui.MutedStyle.Render("optional")
		if item.Required {
			marker = ui.WarningStyle.Render("required")
		}
		fmt.Printf("    %s %s %s\n", ui.StatusPending.String(), item.Item, marker)
	}
}

func printPTSDGuide() {
	fmt.Println(ui.Title.Render("PTSD · Pacing & Breaks"))
	for _, level := range []support.StressLevel{support.StressNormal, support.StressElevated, support.StressHigh} {
		suggestion := support.BreakFor(level)
		label := fmt.Sprintf("%-9s", level)
		if suggestion.Mandatory {
			label = ui.ErrorStyle.Render(label)
		}
		fmt.Printf("  %s %d minute break: %s\n", label,
			int(suggestion.Duration.Minutes()), strings.Join(suggestion.Activities, ", "))
	}
	fmt.Println("  " + ui.MutedStyle.Render("Long sessions raise the reading; the focus timer watches it for you."))
	fmt.Println()
}

func stageLabel(stage support.Stage) string {
	name := string(stage)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func riskGlyph(level support.RiskLevel) string {
	switch level {
	case support.RiskLow:
		return ui.StatusSuccess.String()
	case support.RiskMedium:
		return ui.StatusPending.String()
	default:
		return ui.StatusError.String()
	}
}
