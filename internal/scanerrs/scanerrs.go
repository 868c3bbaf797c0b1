// Package scanerrs defines typed errors for the qmdscan host surfaces.
// The scanners themselves never return Go errors: a soft decline is a
// false return from Scan, a hard error is the reserved ERROR token.
package scanerrs

import "fmt"

// UnknownScannerError indicates a scanner name that is none of block,
// inline or doctemplate.
type UnknownScannerError struct {
	Name string
}

func (e *UnknownScannerError) Error() string {
	return fmt.Sprintf(
		"unknown scanner %q (expected block, inline or doctemplate)",
		e.Name,
	)
}

// InputFileError wraps a failure to read a document.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}
