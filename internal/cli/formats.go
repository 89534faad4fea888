package cli

import (
	"fmt"
	"io"

	"github.com/tsawler/giftcsv/format"
)

// runFormats builds the handler for the formats command.
func runFormats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		for _, f := range format.Outputs() {
			fmt.Fprintf(stdout, "%-6s %s\n", f, f.Extension())
		}
		return ExitOK
	}
}
