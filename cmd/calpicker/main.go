package main

import (
	"context"
	"os"
	"os/signal"
	"regexp"
	"strings"

	"calpicker/internal/cli"
)

var reDateArg = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func rewriteDirectDateArgs(argv []string) []string {
	// Convenience: `calpicker 2025-06-15` works like `calpicker pick --date 2025-06-15`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
	// before parsing. Persistent flags may come first, so look for the first
	// positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":        true,
		"--date":          true,
		"--min":           true,
		"--max":           true,
		"--mark":          true,
		"--events":        true,
		"--tz":            true,
		"--first-weekday": true,
		"--format":        true,
		"--log-file":      true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if reDateArg.MatchString(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "pick", "--date", a)
			out = append(out, argv[i+1:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectDateArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
