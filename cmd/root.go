// Package cmd provides the command-line interface for qmdscan, a
// developer tool for inspecting the QMD external scanners' token
// streams and state over real documents.
package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/qmdscan/internal/theme"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	// Global flags (apply to all commands)
	Theme string `help:"Color theme (default, dark, light)" predictor:"theme"` //nolint:lll,revive // Kong struct tag
	Plain bool   `help:"Disable styled output"              short:"p"`         //nolint:lll,revive // Kong struct tag

	// Commands
	Tokens     TokensCmd                 `cmd:"" help:"Dump external tokens for a document"`      //nolint:lll,revive // Kong struct tag with alignment
	Watch      WatchCmd                  `cmd:"" help:"Re-scan a document on every change"`       //nolint:lll,revive // Kong struct tag with alignment
	Explore    ExploreCmd                `cmd:"" help:"Step through scanner state interactively"` //nolint:lll,revive // Kong struct tag with alignment
	Version    VersionCmd                `cmd:"" help:"Show version info"`                        //nolint:lll,revive // Kong struct tag with alignment
	Completion kongcompletion.Completion `cmd:"" help:"Generate completions"`                     //nolint:lll,revive // Kong struct tag with alignment
}

// AfterApply is called by Kong after parsing flags but before running
// the command. A --theme flag overrides the configured theme.
func (c *CLI) AfterApply() error {
	if c.Theme == "" {
		return nil
	}

	return theme.Load(c.Theme)
}

// inputFS is the filesystem documents are read through. Tests swap it
// for an in-memory one.
var inputFS afero.Fs = afero.NewOsFs()
