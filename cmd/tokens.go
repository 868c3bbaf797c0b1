package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/qmdscan/internal/harness"
	"github.com/connerohnesorge/qmdscan/internal/scanerrs"
	"github.com/connerohnesorge/qmdscan/internal/tui"
)

// previewWidth bounds the token text preview in the dump.
const previewWidth = 40

// TokensCmd dumps the external token stream a scanner produces for a
// document: one line per token with its name, byte range and a text
// preview.
type TokensCmd struct {
	File       string `arg:""                                                            help:"Document to scan"       predictor:"qmdfile"`       //nolint:lll,revive // Kong struct tag
	Scanner    string `default:"block"                                                   enum:"block,inline,doctemplate" help:"Scanner to drive" short:"s"` //nolint:lll,revive // Kong struct tag
	Checkpoint bool   `help:"Serialize and restore scanner state around every scan call"`                                                                   //nolint:lll,revive // Kong struct tag
	Copy       bool   `help:"Copy the dump to the system clipboard"`                                                                                        //nolint:lll,revive // Kong struct tag
}

// Run executes the tokens command.
func (c *TokensCmd) Run(cli *CLI) error {
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

	plain := renderTokens(tokens, source, false)
	if c.Copy {
		if err := clipboard.WriteAll(plain); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	out := plain
	if styledOutput(cli, os.Stdout) {
		out = renderTokens(tokens, source, true)
	}
	fmt.Print(out)

	return nil
}

// styledOutput reports whether the dump should be colored: only on a
// terminal and not when --plain is set.
func styledOutput(cli *CLI, w io.Writer) bool {
	if cli != nil && cli.Plain {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderTokens formats the stream, one token per line.
func renderTokens(
	tokens []harness.Token,
	source []byte,
	styled bool,
) string {
	var b strings.Builder
	for _, tok := range tokens {
		rangeCol := fmt.Sprintf("%5d..%-5d", tok.Start, tok.End)
		nameCol := fmt.Sprintf("%-38s", tok.Name)
		preview := tokenPreview(source, tok)
		if styled {
			rangeCol = tui.OffsetStyle().Render(rangeCol)
			switch {
			case tok.Name == "ERROR":
				nameCol = tui.ErrorStyle().Render(nameCol)
			case tok.External:
				nameCol = tui.TokenNameStyle().Render(nameCol)
			default:
				nameCol = tui.TextTokenStyle().Render(nameCol)
			}
		}
		b.WriteString(rangeCol)
		b.WriteString("  ")
		b.WriteString(nameCol)
		if preview != "" {
			b.WriteString(" ")
			b.WriteString(preview)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// tokenPreview quotes the token's source text, truncated for display.
// Zero-width tokens have no preview.
func tokenPreview(source []byte, tok harness.Token) string {
	if tok.Start >= tok.End || tok.End > len(source) {
		return ""
	}
	text := string(source[tok.Start:tok.End])
	quoted := strconv.Quote(text)
	if len(quoted) > previewWidth {
		quoted = quoted[:previewWidth-1] + "…"
	}

	return quoted
}
