package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/paperforge/cmd/paperforge/commands"
	"git.home.luguber.info/inful/paperforge/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("paperforge"),
		kong.Description("Generate and verify paperwork document bundles."),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}); err != nil {
		fmt.Fprintf(os.Stderr, "paperforge: %v\n", err)
		os.Exit(commands.ExitCodeFor(err))
	}
}
