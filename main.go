package main

import (
	"github.com/alecthomas/kong"

	"github.com/connerohnesorge/qmdscan/cmd"
	"github.com/connerohnesorge/qmdscan/internal/config"
	"github.com/connerohnesorge/qmdscan/internal/theme"
)

func main() {
	// Load config and apply theme before parsing; a --theme flag, applied
	// while parsing, overrides it.
	cfg, err := config.Load()
	if err == nil {
		_ = theme.Load(cfg.Theme)
	}
	// Ignore errors - theme will default to "default" if config not found

	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("qmdscan"),
		kong.Description("Inspect the QMD external scanners over real documents"),
		kong.UsageOnError(),
	)

	err = ctx.Run(cli)
	ctx.FatalIfErrorf(err)
}
