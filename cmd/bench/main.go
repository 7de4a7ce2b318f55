// Command bench runs one of the library's search engines repeatedly over
// generated instances and reports the aggregated bounds, iteration count,
// and wall time to standard error.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var cli CLI

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("bench"),
		kong.Description("Runs a heurigo search engine over generated instances and reports aggregated results."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			if code != 0 {
				os.Exit(2)
			}
			os.Exit(0)
		}),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
