package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"calpicker/internal/config"
	"calpicker/internal/format"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath   string
	Date         string
	Min          string
	Max          string
	Marks        []string
	Events       string
	Timezone     string
	FirstWeekday string
	Expanded     bool
	PrettyJSON   bool
	Format       string
	LogFile      string

	cfg     *config.Config
	logFile *os.File
}

// nowFunc is the clock behind "today"; tests pin it.
var nowFunc = time.Now

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "calpicker",
		Short:        "Pick a date from a month grid in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively (prints JSON on enter)
  calpicker

  # Start on a given day, limit navigation to 2025, print plain text
  calpicker 2025-06-15 --min 2025-01 --max 2025-12 --format text

  # Mark days that have events
  calpicker --events ~/calendars/family.ics --mark 2025-06-10

  # Print the month grid without the TUI
  calpicker month --date 2025-06-15 --format yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if len(args) == 0 {
				return runPick(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg

		var w io.Writer = io.Discard
		if app.LogFile != "" {
			f, err := os.OpenFile(expandHome(app.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("open log file: %w", err))
			}
			app.logFile = f
			w = f
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = ctxlog.NewJSONLogger(ctx, w, &slog.HandlerOptions{Level: slog.LevelDebug})
		cmd.SetContext(ctx)
		ctxlog.Logger(ctx).Debug("calpicker start", "command", cmd.CommandPath(), "config", app.ConfigPath)
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "Path to config.json (default: $CALPICKER_CONFIG or ~/.calpicker/config.json)")
	pf.StringVar(&app.Date, "date", "", "Initially selected date (YYYY-MM-DD; default: today)")
	pf.StringVar(&app.Min, "min", "", "Earliest month navigation may reach (YYYY-MM)")
	pf.StringVar(&app.Max, "max", "", "Latest month navigation may reach (YYYY-MM)")
	pf.StringArrayVar(&app.Marks, "mark", nil, "Mark a day as having events (YYYY-MM-DD; repeatable)")
	pf.StringVar(&app.Events, "events", "", "Mark the start day of every event in this .ics file")
	pf.StringVar(&app.Timezone, "tz", envOr("CALPICKER_TZ", ""), "IANA time zone for day boundaries (default: local)")
	pf.StringVar(&app.FirstWeekday, "first-weekday", envOr("CALPICKER_FIRST_WEEKDAY", ""), "First column of the grid (sunday|monday|...|0-6)")
	pf.BoolVar(&app.Expanded, "expanded", false, "Start with the month grid open")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&app.Format, "format", envOr("CALPICKER_FORMAT", "json"), "Output format (json|yaml|text)")
	pf.StringVar(&app.LogFile, "log-file", envOr("CALPICKER_LOG", ""), "Write a JSON debug log to this file")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newMonthCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	// cobra skips PersistentPostRunE when RunE fails, so the log file is
	// closed around every RunE instead.
	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		closeLogAfter(app, c)
	}

	return cmd
}

func closeLogAfter(app *App, c *cobra.Command) {
	run := c.RunE
	if run == nil {
		return
	}
	c.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := app.closeLog(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}

func (app *App) closeLog() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + p[1:]
		}
	}
	return p
}

// envelope is the {"data": ...} wrapper every command prints.
type envelope struct {
	Data any `json:"data"`
}

func (e envelope) Text() string {
	if t, ok := e.Data.(format.Texter); ok {
		return t.Text()
	}
	return fmt.Sprint(e.Data)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
