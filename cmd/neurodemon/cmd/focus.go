package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/audit"
	"github.com/neurodemon/neurodemon/internal/focus"
	"github.com/neurodemon/neurodemon/internal/support"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a focus session of timed work and break rounds",
	Long: `Run a focus session: 25 minute work rounds with short breaks and a
longer one every fourth round. Reminders and stress monitoring follow the
wellbeing settings.`,
	RunE: runFocus,
}

func runFocus(cmd *cobra.Command, args []string) error {
	ok, err := ensureConsent()
	if err != nil || !ok {
		return err
	}

	rec := settingsStore.Settings()
	opts := focus.Options{
		Plan:      support.DefaultFocusPlan(),
		Reminders: rec.TimerReminders,
		OnWorkDone: func(completed int) {
			recordActivity(audit.EventFocusCompleted, "focus round completed",
				map[string]string{"rounds": strconv.Itoa(completed)})
		},
	}
	if rec.StressMonitoring {
		opts.Monitor = support.NewMonitor()
	}

	return focus.Run(opts)
}
