// Command gapalign prints the global alignment of two sequences and its score.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/katalvlaran/gapalign/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n%s\n", r, debug.Stack())
			os.Exit(cli.ExitError)
		}
	}()

	os.Exit(cli.Main())
}
