// This file contains shell completion predictors for the qmdscan CLI.
// Predictors provide context-aware suggestions for tab completion in
// supported shells (bash, zsh, fish).
package cmd

import (
	"github.com/posener/complete"

	"github.com/connerohnesorge/qmdscan/internal/theme"
)

// PredictQMDFiles returns a predictor that suggests Quarto and Markdown
// documents in the current directory tree.
func PredictQMDFiles() complete.Predictor {
	return complete.PredictOr(
		complete.PredictFiles("*.qmd"),
		complete.PredictFiles("*.md"),
		complete.PredictFiles("*.markdown"),
	)
}

// PredictScanners returns a predictor for the scanner selector flag.
func PredictScanners() complete.Predictor {
	return complete.PredictSet("block", "inline", "doctemplate")
}

// PredictThemes returns a predictor that suggests theme names.
func PredictThemes() complete.Predictor {
	return complete.PredictSet(theme.Available()...)
}
