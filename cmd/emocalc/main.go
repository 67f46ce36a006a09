// Package main provides the CLI entrypoint for emocalc.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/emocalc/internal/calc"
	"github.com/verte-zerg/emocalc/internal/config"
	"github.com/verte-zerg/emocalc/internal/format"
	"github.com/verte-zerg/emocalc/internal/model"
	"github.com/verte-zerg/emocalc/internal/tui"
)

const defaultLocale = "ko-KR"

type options struct {
	configPath string
	title      string
	emotion    bool
	locale     string
	debug      bool
	logFile    string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "emocalc",
		Short:         "Terminal calculator with an emotion mode",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalcCmd(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().BoolVar(&opts.emotion, "emotion", false, "start with emotion mode on")
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", defaultLocale, "locale for number grouping (BCP 47)")
	rootCmd.Flags().StringVar(&opts.title, "title", tui.DefaultTitle, "header title")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "debug log path (implies --debug)")

	rootCmd.AddCommand(newPressCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func runCalcCmd(cmd *cobra.Command, opts *options) error {
	cfg, policy, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal; use 'emocalc press' for scripted input")
	}

	logPath := opts.logFile
	if logPath == "" && opts.debug {
		logPath = config.DefaultLogPath()
	}
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := tea.LogToFile(logPath, "emocalc")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}()
	} else {
		log.SetOutput(io.Discard)
	}

	m := tui.NewModel(cfg, policy)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newPressCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "press KEY...",
		Short: "Press calculator keys and print the display",
		Long: "Runs the keys through the calculator starting from a cleared state and prints the display.\n" +
			"Keys: 0-9 . + - * / = C BS (aliases: x × ÷ c bs ⌫).",
		Example: "  emocalc press 5 + 3 =",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPressCmd(cmd, opts, args)
		},
	}
}

func runPressCmd(cmd *cobra.Command, opts *options, args []string) error {
	cfg, policy, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	state := calc.Run(keys, cfg.ShowEmotion)
	out := cmd.OutOrStdout()
	for _, line := range displayLines(state, policy, cfg.ShowEmotion) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func parseKeys(args []string) ([]calc.Key, error) {
	keys := make([]calc.Key, 0, len(args))
	for _, arg := range args {
		// "12+3" style arguments are split into single keys; BS stays whole.
		if strings.EqualFold(arg, "bs") || len([]rune(arg)) == 1 {
			k, err := calc.ParseKey(arg)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			continue
		}
		for _, r := range arg {
			k, err := calc.ParseKey(string(r))
			if err != nil {
				return nil, fmt.Errorf("in %q: %w", arg, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func displayLines(state calc.State, policy format.Policy, emotionOn bool) []string {
	var lines []string
	if emotionOn {
		lines = append(lines, state.Emotion)
	}
	lines = append(lines, policy.Format(state.Current))
	pending := policy.Format(state.Previous)
	if state.Op.IsBinary() {
		pending = strings.TrimSpace(pending + " " + state.Op.Symbol())
	}
	if pending != "" {
		lines = append(lines, pending)
	}
	return lines
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigCmd(opts.configPath)
		},
	}
}

func runConfigCmd(path string) error {
	if err := writeDefaultConfig(path); err != nil {
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

// writeDefaultConfig creates the commented template unless a file already exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// resolveConfig merges the config file with flags. Flags win when set.
func resolveConfig(cmd *cobra.Command, opts *options) (model.Config, format.Policy, error) {
	fileCfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return model.Config{}, format.Policy{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "title", &opts.title, fileCfg.Display.Title)
	applyBoolConfig(cmd, "emotion", &opts.emotion, fileCfg.Display.Emotion)
	applyStringConfig(cmd, "locale", &opts.locale, fileCfg.Display.Locale)

	policy, err := format.ForLocale(opts.locale)
	if err != nil {
		return model.Config{}, format.Policy{}, err
	}
	policy = fileCfg.Format.Apply(policy)
	if err := policy.Validate(); err != nil {
		return model.Config{}, format.Policy{}, fmt.Errorf("invalid format settings: %w", err)
	}

	cfg := model.Config{
		Title:       opts.title,
		ShowEmotion: opts.emotion,
		Locale:      opts.locale,
	}
	return cfg, policy, nil
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
	p := format.DefaultPolicy()
	return fmt.Sprintf(`# emocalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[display]
# title = %q        # Header title
# emotion = false            # Start with emotion mode on
# locale = %q             # Locale for number separators (BCP 47)

[format]
# grouping-separator = %q     # Overrides the locale grouping separator
# decimal-separator = %q      # Overrides the locale decimal separator
# max-fraction-digits = %d      # Digits after the decimal separator
# max-significant-digits = %d  # Significant digits before rounding
# exponential-cutover = %g   # Values at or above use exponential form
`,
		tui.DefaultTitle,
		defaultLocale,
		p.Grouping,
		p.Decimal,
		p.MaxFractionDigits,
		p.MaxSignificantDigits,
		p.ExponentialCutover,
	)
}

func logErrf(msg string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, msg, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
