package cli

import (
	"fmt"
	"os"
	"strings"

	"todo-cli/internal/config"
	"todo-cli/internal/format"
	"todo-cli/internal/todo"
	"todo-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Seed       []string
	Demo       bool
	PrettyJSON bool
	Format     string
	LogFile    string
	Profile    string
	Glyphs     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "To-do list with an onboarding screen and an entry form",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          withErr(cobra.NoArgs),
		Example: strings.TrimSpace(`
  # Start the interactive TUI with the demo rows
  todo --demo

  # Scriptable commands (nothing is saved between runs)
  todo --seed "Buy milk" list
  todo --seed "Buy milk" add "Second"

  # Direct lookup (shortcut for: todo get <index>)
  todo --demo 2
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !format.Valid(app.Format) {
				return writeErr(cmd, fmt.Errorf("unknown format: %s", app.Format))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return runTUI(cmd, app)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return writeErr(c, err)
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODO_CONFIG", ""), "Path to config.json (default ~/.todo/config.json; a missing file is fine)")
	cmd.PersistentFlags().StringArrayVar(&app.Seed, "seed", config.SplitSeedEnv(os.Getenv("TODO_SEED")), "Initial task label (repeatable; env TODO_SEED is comma-separated)")
	cmd.PersistentFlags().BoolVar(&app.Demo, "demo", false, "Start from the demo rows when no --seed is given")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODO_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("TODO_LOG_FILE", ""), "Write TUI debug log to this file")
	cmd.PersistentFlags().StringVar(&app.Profile, "profile", envOr("TODO_TUI_PROFILE", ""), "TUI appearance profile (default|contrast; overrides config)")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "TUI glyph set (unicode|ascii; overrides config)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newGetCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return writeErr(cmd, err)
	}
	sess, err := newSession(app, cfg)
	if err != nil {
		return writeErr(cmd, err)
	}

	tc := cfg.TUIOrDefault()
	if tc.SkipWelcome {
		sess.Welcome.Dismiss()
	}
	opts := tui.Options{
		Profile: firstNonEmpty(app.Profile, tc.Profile),
		Glyphs:  firstNonEmpty(app.Glyphs, tc.Glyphs),
		LogFile: app.LogFile,
	}
	if err := tui.Run(sess, opts); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func loadSession(app *App) (*todo.Session, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return nil, err
	}
	return newSession(app, cfg)
}

// newSession seeds a session. Precedence: --seed/TODO_SEED, then --demo,
// then the config file's seed list.
func newSession(app *App, cfg *config.Config) (*todo.Session, error) {
	var labels []string
	switch {
	case len(app.Seed) > 0:
		labels = app.Seed
	case app.Demo:
		labels = todo.DemoLabels
	case cfg != nil:
		labels = cfg.Seed
	}
	sess, err := todo.NewSession(labels...)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return sess, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), describeErr(err).Error())
	return err
}

// withErr reports argument validation errors the same way RunE errors are reported.
func withErr(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}
}
