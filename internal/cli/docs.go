package cli

import (
	"fmt"
	"strings"

	"calpicker/internal/docs"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type topicList struct {
	Topics []string `json:"topics"`
}

func (l topicList) Text() string { return strings.Join(l.Topics, "\n") }

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw   bool
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicList{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `calpicker docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			if style == "" {
				style = docsStyle(termenv.NewOutput(cmd.OutOrStdout()))
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), docs.Render(body, style, width))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().StringVar(&style, "style", envOr("CALPICKER_DOCS_STYLE", ""), "glamour style (dark|light|notty|...; default: from the terminal)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")

	return cmd
}

func docsStyle(out *termenv.Output) string {
	switch {
	case out.Profile == termenv.Ascii:
		return "notty"
	case out.HasDarkBackground():
		return "dark"
	default:
		return "light"
	}
}
