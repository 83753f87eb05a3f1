package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/3-lines-studio/lumastay/cmd/lumastay/commands"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("lumastay"),
		kong.Description("Serve, export, and check the LumaStay Concierge microsite."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	global, err := commands.NewGlobal(&cli, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumastay: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(global, &cli); err != nil {
		global.Logger.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
