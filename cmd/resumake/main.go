package main

import (
	"log/slog"

	"git.home.luguber.info/inful/resumake/cmd/resumake/commands"
	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("resumake"),
		kong.Description("Terminal resume builder: parse, analyze, improve and format markdown resumes."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	ctx.FatalIfErrorf(err)
}
