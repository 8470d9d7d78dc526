package cli

import (
	"fmt"
	"strings"
	"time"

	"calpicker/internal/picker"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type monthDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Event    bool   `json:"event,omitempty"`
	Selected bool   `json:"selected,omitempty"`
	Today    bool   `json:"today,omitempty"`
}

type monthView struct {
	Month      string     `json:"month"`
	Title      string     `json:"title"`
	Selected   string     `json:"selected"`
	Weekdays   []string   `json:"weekdays"`
	Leading    int        `json:"leading"`
	Days       []monthDay `json:"days"`
	AtMinBound bool       `json:"atMinBound"`
	AtMaxBound bool       `json:"atMaxBound"`
	CanGoPrev  bool       `json:"canGoPrevious"`
	CanGoNext  bool       `json:"canGoNext"`
}

func newMonthView(st *picker.State) monthView {
	v := monthView{
		Month:      st.DisplayedMonth().Format("2006-01"),
		Title:      st.MonthTitle(),
		Selected:   st.SelectedDate().Format(time.DateOnly),
		Weekdays:   st.WeekdayLabels(),
		Leading:    st.Leading(),
		AtMinBound: st.AtMinBound(),
		AtMaxBound: st.AtMaxBound(),
		CanGoPrev:  st.CanGoPrevious(),
		CanGoNext:  st.CanGoNext(),
	}
	for _, d := range st.Dates() {
		v.Days = append(v.Days, monthDay{
			Day:      d.Day,
			Date:     d.Date.Format(time.DateOnly),
			Event:    st.HasEvent(d.Date),
			Selected: st.IsSelected(d.Date),
			Today:    st.IsToday(d.Date),
		})
	}
	return v
}

// Text renders a plain grid: "*" after a day marks events, brackets mark
// the selected day.
func (v monthView) Text() string {
	const cell = 5
	var b strings.Builder
	prev, next := "<", ">"
	if !v.CanGoPrev {
		prev = " "
	}
	if !v.CanGoNext {
		next = " "
	}
	title := v.Title
	pad := 7*cell - 2 - len([]rune(title))
	left := max(pad/2, 1)
	right := max(pad-left, 1)
	b.WriteString(prev + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + next)
	b.WriteString("\n")
	for _, w := range v.Weekdays {
		fmt.Fprintf(&b, "%*s  ", cell-2, w)
	}
	b.WriteString("\n")

	col := 0
	for ; col < v.Leading; col++ {
		b.WriteString(strings.Repeat(" ", cell))
	}
	for _, d := range v.Days {
		open, closing, mark := " ", " ", " "
		if d.Selected {
			open, closing = "[", "]"
		}
		if d.Event {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s%2d%s%s", open, d.Day, closing, mark)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func newMonthCmd(app *App) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the month grid around the selected date",
		Long: strings.TrimSpace(`
Print the displayed month without starting the TUI: title, weekday labels,
every day with its event/selected/today flags, and the bound flags.

--offset moves the displayed month forward (positive) or back (negative);
movement stops at --min/--max and never leads further outside them.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.newState(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			moved := stepMonths(st, offset)
			ctxlog.Logger(cmd.Context()).Debug("month view", "offset", offset, "moved", moved, "month", st.DisplayedMonth().Format("2006-01"))
			return writeOut(cmd, app, newMonthView(st))
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Months to move from the selected date's month")

	return cmd
}

// stepMonths navigates like the TUI does: one month at a time, never
// further away from a bound. It returns how many months were actually moved.
func stepMonths(st *picker.State, n int) int {
	moved := 0
	for n > 0 && st.CanGoNext() && st.NextMonth() {
		n--
		moved++
	}
	for n < 0 && st.CanGoPrevious() && st.PreviousMonth() {
		n++
		moved--
	}
	return moved
}
