package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/neurodemon/neurodemon/internal/audit"
	"github.com/neurodemon/neurodemon/internal/config"
	"github.com/neurodemon/neurodemon/internal/consent"
	"github.com/neurodemon/neurodemon/internal/settings"
	"github.com/neurodemon/neurodemon/internal/storage"
	"github.com/neurodemon/neurodemon/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	dataDir string

	logger     *log.Logger
	cfg        *config.Config
	profileDir string

	localStore    *storage.Store
	settingsStore *settings.Store
	gate          *consent.Gate
	activityLog   *audit.Log
)

var rootCmd = &cobra.Command{
	Use:   "neurodemon",
	Short: "Neurodivergent-friendly penetration testing companion",
	Long: ui.Banner() + `
neurodemon is the terminal companion for the NeuroDemon platform:
an accessibility-first workspace with a guided assistant, focus
sessions, and a legal gate in front of everything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() != "version" && cmd.Name() != "help" {
			if err := openProfile(); err != nil {
				return err
			}
		}

		setupLogger()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}

		recordActivity(audit.EventAppStart, "session started", nil)

		ok, err := ensureConsent()
		if err != nil || !ok {
			return err
		}
		return runRootTUI()
	},
}

// openProfile loads the config and opens the durable pieces every gated
// command needs: the local store, the activity log, the settings store and
// the consent gate.
func openProfile() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	cfg, err = config.Load(path)
	if err != nil {
		logger.Warn("Could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("Config is invalid, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	profileDir, err = cfg.ResolveDataDir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	localStore, err = storage.Open(filepath.Join(profileDir, storage.FileName), logger)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}

	activityLog = audit.Open(filepath.Join(profileDir, audit.FileName), cfg.Audit.Enabled)

	settingsStore = settings.Open(localStore,
		settings.WithLogger(logger),
		settings.WithApplyFunc(applyEffects),
	)
	applyEffects(settingsStore.Settings())

	gate = consent.New(localStore, cfg.Legal.Version)
	return nil
}

// configPath returns the config file location, honoring the --config flag.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// applyEffects projects a settings record onto the terminal presentation.
// It runs once at startup and again on every settings update.
func applyEffects(rec settings.AccessibilitySettings) {
	e := ui.EffectsFor(rec)
	e.NoColor = noColor || os.Getenv("NO_COLOR") != ""
	ui.Apply(e)
}

// recordActivity appends an audit event, warning instead of failing when the
// activity log cannot be written.
func recordActivity(eventType audit.EventType, description string, metadata map[string]string) {
	if activityLog == nil {
		return
	}
	if err := activityLog.Record(eventType, description, metadata); err != nil {
		logger.Warn("Could not write the activity log", "err", err)
	}
}

func runRootTUI() error {
	menuItems := []ui.MenuItem{
		{ID: "chat", TitleText: "Assistant", Details: "Playbook guidance from NeuroAI, one step at a time"},
		{ID: "settings", TitleText: "Settings", Details: "Theme, motion, sound, and support profile"},
		{ID: "focus", TitleText: "Focus Session", Details: "Timed work and break rounds with gentle reminders"},
		{ID: "support", TitleText: "Support Guide", Details: "Accommodations for your enabled support profile"},
		{ID: "status", TitleText: "Status", Details: "Profile locations, consent state, and recent activity"},
		{ID: "terms", TitleText: "Review Terms", Details: "Read the legal disclaimer again"},
		{ID: "exit", TitleText: "Exit", Details: "Close neurodemon"},
	}

	for {
		choice, err := ui.RunMenu("NEURODEMON", "What would you like to do?", menuItems)
		if err != nil {
			return runRootFallback()
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}

		// Withdrawing consent during a review ends the session.
		if gate.State() == consent.StateRejected {
			return nil
		}

		if err := waitForEnter("Press enter to return to the main menu"); err != nil {
			return err
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "chat":
		return chatCmd.RunE(chatCmd, []string{})
	case "settings":
		return settingsCmd.RunE(settingsCmd, []string{})
	case "focus":
		return focusCmd.RunE(focusCmd, []string{})
	case "support":
		return supportCmd.RunE(supportCmd, []string{})
	case "status":
		return statusCmd.RunE(statusCmd, []string{})
	case "terms":
		return consentReviewCmd.RunE(consentReviewCmd, []string{})
	case "exit", ui.MenuActionQuit, ui.MenuActionBack, "":
		return nil
	default:
		return nil
	}
}

func runRootFallback() error {
	ui.StartScreen("MAIN MENU", "What would you like to do?")
	var fallbackChoice string
	fallbackErr := huh.NewSelect[string]().
		Title("NeuroDemon").
		Description("What would you like to do?").
		Options(
			huh.NewOption("Assistant", "chat"),
			huh.NewOption("Settings", "settings"),
			huh.NewOption("Focus Session", "focus"),
			huh.NewOption("Support Guide", "support"),
			huh.NewOption("Status", "status"),
			huh.NewOption("Review Terms", "terms"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&fallbackChoice).
		WithTheme(ui.HuhTheme()).
		Run()
	if fallbackErr != nil {
		if errors.Is(fallbackErr, huh.ErrUserAborted) {
			return nil
		}
		return fallbackErr
	}
	return runRootChoice(fallbackChoice)
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("✗ ")+err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: "+config.FileName+" in the user config directory)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for the local store and activity log")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(supportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(consentCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
