// Command dispatch runs an example notes service on the dispatch stack.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("dispatch"),
		kong.Description("Example HTTP service built on dispatch."),
		kong.UsageOnError(),
		kong.DefaultEnvars("DISPATCH"),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
		kong.Vars{"version": version},
	)

	if err := kctx.Run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
