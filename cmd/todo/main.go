package main

import (
	"os"
	"strconv"
	"strings"

	"todo-cli/internal/cli"
)

func isIndex(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func rewriteDirectIndexArgs(argv []string) []string {
	// Convenience: `todo <index>` works like `todo get <index>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first (e.g. `todo --seed a 0`), so find the first positional token.
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--seed":     true,
		"--format":   true,
		"--config":   true,
		"--log-file": true,
		"--profile":  true,
		"--glyphs":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Keep "get" ahead of "--" so cobra still sees the subcommand;
			// this is also how a negative index gets through.
			if i+1 < len(argv) && isIndex(argv[i+1]) {
				return insertGet(argv, i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value
			}
			continue
		}
		if isIndex(a) {
			return insertGet(argv, i)
		}
		return argv
	}
	return argv
}

func insertGet(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "get")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDirectIndexArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
