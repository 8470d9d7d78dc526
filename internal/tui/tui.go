package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calpicker/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned by Run when the user leaves without picking.
var ErrCanceled = errors.New("picker canceled")

// Run shows the picker on the terminal and returns the confirmed date.
func Run(ctx context.Context, st *picker.State, opts Options) (time.Time, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := New(ctx, st, opts)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return time.Time{}, fmt.Errorf("run picker: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return time.Time{}, fmt.Errorf("run picker: unexpected model %T", final)
	}
	picked, ok := fm.Result()
	if !ok {
		return time.Time{}, ErrCanceled
	}
	return picked, nil
}
