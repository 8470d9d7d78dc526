package cli

import (
	"errors"
	"time"

	"calpicker/internal/tui"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type pickResult struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Label   string `json:"label"`
}

func (r pickResult) Text() string { return r.Date }

// runTUI is swapped out in tests; it owns the terminal until the user
// confirms or cancels.
var runTUI = tui.Run

func newPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive picker and print the confirmed date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app)
		},
	}
}

func runPick(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	st, err := app.newState(ctx)
	if err != nil {
		return writeErr(cmd, err)
	}

	picked, err := runTUI(ctx, st, tui.Options{
		Glyphs:   app.cfg.Glyphs(),
		Theme:    app.cfg.Theme(),
		Expanded: app.Expanded || app.cfg.Expanded(),
	})
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			ctxlog.Logger(ctx).Info("picker canceled")
		}
		return writeErr(cmd, err)
	}
	ctxlog.Logger(ctx).Info("date picked", "date", picked.Format(time.DateOnly))

	return writeOut(cmd, app, pickResult{
		Date:    picked.Format(time.DateOnly),
		Weekday: picked.Weekday().String(),
		Label:   st.Calendar().FormatDate(picked),
	})
}
