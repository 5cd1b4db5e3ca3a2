package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/patternforge/cmd/patternforge/commands"
	"git.home.luguber.info/inful/patternforge/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("patternforge"),
		kong.Description("Assembles a pattern library from materials, views, layouts and data."),
		kong.Vars{"version": version.Version},
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}, cli))
}
