// Package main provides the CLI entrypoint for typerace.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typerace/internal/config"
	"github.com/verte-zerg/typerace/internal/generator"
	"github.com/verte-zerg/typerace/internal/logging"
	"github.com/verte-zerg/typerace/internal/model"
	"github.com/verte-zerg/typerace/internal/round"
	"github.com/verte-zerg/typerace/internal/session"
	"github.com/verte-zerg/typerace/internal/tui"
)

const (
	defaultTickMs   = 16
	defaultBlinkMs  = 500
	defaultMouse    = true
	defaultLogLevel = "info"
)

type practiceFlags struct {
	tickMs   int
	blinkMs  int
	mouse    bool
	seed     int64
	logLevel string
	logFile  string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &practiceFlags{}
	rootCmd := &cobra.Command{
		Use:           "typerace",
		Short:         "Terminal typing speed trainer",
		Long:          "Type the shown sentence as fast as you can. Rounds last 30 seconds.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPractice(cmd, flags)
		},
	}

	rootCmd.Flags().IntVar(&flags.tickMs, "tick-ms", defaultTickMs, "countdown refresh interval in milliseconds")
	rootCmd.Flags().IntVar(&flags.blinkMs, "blink-ms", defaultBlinkMs, "cursor blink interval in milliseconds")
	rootCmd.Flags().BoolVar(&flags.mouse, "mouse", defaultMouse, "enable clicking the start/stop button")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for sentence selection (0 picks a random seed)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error, disabled)")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "log file path (default: XDG state dir)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSentencesCmd())

	return rootCmd
}

func runPractice(cmd *cobra.Command, flags *practiceFlags) error {
	cfg, err := resolveConfig(cmd, flags, config.DefaultConfigPath())
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typerace needs an interactive terminal on stdout")
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	gen := generator.New(generator.Sentences)
	if cfg.Seed != 0 {
		gen = generator.NewWithSeed(generator.Sentences, cfg.Seed)
	}
	clock := clockwork.NewRealClock()
	engine := session.New(gen, clock)
	ctrl := round.New(engine, clock, logger)
	m := tui.NewModel(cfg, ctrl, clock, logger)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	logger.Info().Dur("tick", cfg.TickInterval).Bool("mouse", cfg.Mouse).Msg("starting typerace")
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		logger.Error().Err(err).Msg("TUI exited with error")
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info().Msg("typerace exited")
	return nil
}

// resolveConfig merges the config file with flags; explicit flags win.
func resolveConfig(cmd *cobra.Command, flags *practiceFlags, path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "tick-ms", &flags.tickMs, fileCfg.UI.TickMs)
	applyIntConfig(cmd, "blink-ms", &flags.blinkMs, fileCfg.UI.BlinkMs)
	applyBoolConfig(cmd, "mouse", &flags.mouse, fileCfg.UI.Mouse)
	applyStringConfig(cmd, "log-level", &flags.logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &flags.logFile, fileCfg.Log.File)

	cfg := model.Config{
		TickInterval:  time.Duration(flags.tickMs) * time.Millisecond,
		BlinkInterval: time.Duration(flags.blinkMs) * time.Millisecond,
		Mouse:         flags.mouse,
		Seed:          flags.seed,
		LogLevel:      flags.logLevel,
		LogFile:       flags.logFile,
	}
	if cfg.LogFile == "" {
		cfg.LogFile = config.DefaultLogPath()
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("--tick-ms must be > 0")
	}
	if cfg.TickInterval > time.Second {
		return fmt.Errorf("--tick-ms must be <= 1000 to keep a one-second countdown")
	}
	if cfg.BlinkInterval <= 0 {
		return fmt.Errorf("--blink-ms must be > 0")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless a file exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newSentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences",
		Short: "List the built-in sentence pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeSentences(cmd.OutOrStdout(), generator.Sentences)
		},
	}
}

func writeSentences(w io.Writer, sentences []string) error {
	for i, s := range sentences {
		if _, err := fmt.Fprintf(w, "%2d  %s\n", i+1, s); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typerace configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# tick-ms = %d            # Countdown refresh interval in milliseconds
# blink-ms = %d          # Cursor blink interval in milliseconds
# mouse = %t            # Click the start/stop button with the mouse

[log]
# level = %q          # debug, info, warn, error, disabled
# file = %q
`,
		defaultTickMs,
		defaultBlinkMs,
		defaultMouse,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
