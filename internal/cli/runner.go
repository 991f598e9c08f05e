package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/session"
	"github.com/idilsaglam/todo/internal/store/linestore"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Execute runs the CLI with the given arguments and streams and returns an exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	ui.New(stdout, stderr, ui.Options{}).Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, "Run 'todo --help' for usage.")
		return ExitUsage
	}
	return ExitError
}

// NewRootCmd builds the todo command with injectable IO.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A tiny todo list kept in a plain text file",
		Long: `todo edits a plain text file holding one item per line:

  [ ] pending item
  [x] completed item

The list is loaded at start, edited through a numbered menu
(or a full-screen browser with --tui) and written back on exit.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unexpected arguments: %v", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg, stdin, stdout, stderr)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	def := config.Default()
	f := cmd.Flags()
	f.StringP("file", "f", def.File, "Path to the todo file")
	f.String("config", "", "Path to a TOML config file (default "+config.DefaultConfigFileName+" if present)")
	f.String("log-level", def.Log.Level, "Minimum log level (debug|info|warn|error)")
	f.String("log-format", def.Log.Format, "Log line format (text|logfmt|json)")
	f.Bool("log-timestamps", def.Log.Timestamps, "Prefix log lines with a timestamp")
	f.String("theme", def.Theme, "Color theme (classic|neon|mono)")
	f.Bool("no-color", def.NoColor, "Disable colored output")
	f.Bool("tui", def.TUI, "Browse the list full-screen instead of the numbered menu")
	return cmd
}

// resolveConfig layers defaults, the config file, then flags the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	if f.Changed("file") {
		if p, _ := f.GetString("file"); p == "" {
			return config.Config{}, linestore.ErrEmptyPath
		}
	}

	path, _ := f.GetString("config")
	required := path != ""
	if !required {
		path = config.DefaultConfigFileName
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	if f.Changed("file") {
		cfg.File, _ = f.GetString("file")
	}
	if f.Changed("log-level") {
		cfg.Log.Level, _ = f.GetString("log-level")
	}
	if f.Changed("log-format") {
		cfg.Log.Format, _ = f.GetString("log-format")
	}
	if f.Changed("log-timestamps") {
		cfg.Log.Timestamps, _ = f.GetBool("log-timestamps")
	}
	if f.Changed("theme") {
		cfg.Theme, _ = f.GetString("theme")
	}
	if f.Changed("no-color") {
		cfg.NoColor, _ = f.GetBool("no-color")
	}
	if f.Changed("tui") {
		cfg.TUI, _ = f.GetBool("tui")
	}

	return cfg, cfg.Validate()
}

func run(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := cfg.Log.NewLogger(stderr)
	con := ui.New(stdout, stderr, ui.Options{Theme: cfg.Theme, NoColor: cfg.NoColor})

	store, err := linestore.New(cfg.File)
	if err != nil {
		return err
	}
	sess := session.New(store, stdin, con, logger)
	if !cfg.TUI {
		return sess.Run()
	}

	if err := sess.Load(); err != nil {
		return err
	}
	items, changed, err := tui.Run(sess.Items(), con.Theme(),
		tea.WithInput(stdin), tea.WithOutput(stdout), tea.WithAltScreen())
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if !changed {
		return nil
	}
	sess.Replace(items)
	if err := sess.Save(); err != nil {
		return err
	}
	con.OK("saved")
	return nil
}
