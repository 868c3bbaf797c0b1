package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/qmdscan/internal/harness"
	"github.com/connerohnesorge/qmdscan/internal/scanerrs"
	"github.com/connerohnesorge/qmdscan/internal/watch"
)

// WatchCmd re-runs the token dump whenever the document changes on
// disk, with editor write bursts debounced into a single re-scan.
type WatchCmd struct {
	File       string `arg:""          help:"Document to watch"        predictor:"qmdfile"`                //nolint:lll,revive // Kong struct tag
	Scanner    string `default:"block" enum:"block,inline,doctemplate" help:"Scanner to drive" short:"s"` //nolint:lll,revive // Kong struct tag
	Checkpoint bool   `help:"Serialize and restore scanner state around every scan call"`                 //nolint:lll,revive // Kong struct tag
}

// Run executes the watch command. It scans once immediately, then once
// per change until interrupted.
func (c *WatchCmd) Run(cli *CLI) error {
	if err := c.scanOnce(cli); err != nil {
		return err
	}

	w, err := watch.NewWatcher(c.File)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.File, err)
	}
	defer func() { _ = w.Close() }()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Fprintf(os.Stderr, "watching %s (interrupt to stop)\n", c.File)
	for {
		select {
		case <-interrupt:
			return nil
		case err := <-w.Errors():
			return fmt.Errorf("watch failed: %w", err)
		case <-w.Events():
			fmt.Printf("\n-- %s changed --\n", c.File)
			if err := c.scanOnce(cli); err != nil {
				// Keep watching through transient read errors; the
				// file may be mid-save.
				fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			}
		}
	}
}

func (c *WatchCmd) scanOnce(cli *CLI) error {
	source, err := afero.ReadFile(inputFS, c.File)
	if err != nil {
		return &scanerrs.InputFileError{Path: c.File, Err: err}
	}
	tokens, err := harness.Drive(c.Scanner, source, harness.Options{
		Checkpoint: c.Checkpoint,
	})
	if err != nil {
		return err
	}
	fmt.Print(renderTokens(tokens, source, styledOutput(cli, os.Stdout)))

	return nil
}
