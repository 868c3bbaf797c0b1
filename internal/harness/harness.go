// Package harness drives the external scanners over whole documents for
// inspection. During a real parse the generated LR parser owns the
// valid-symbol mask at every step; the harness stands in for it with a
// fixed mask schedule that is good enough to surface the scanners'
// behavior to the CLI and the tests. It is explicitly not a grammar:
// content between external tokens is reported as plain text runs.
package harness

import (
	"fmt"

	"github.com/connerohnesorge/qmdscan/internal/doctemplate"
	"github.com/connerohnesorge/qmdscan/internal/qmd"
	"github.com/connerohnesorge/qmdscan/internal/qmdinline"
	"github.com/connerohnesorge/qmdscan/internal/scan"
	"github.com/connerohnesorge/qmdscan/internal/scanerrs"
)

// Token is one entry of the produced stream. Text runs the grammar would
// lex itself carry Name "TEXT" and External false.
type Token struct {
	Name     string
	Start    int
	End      int
	External bool
}

// Options configure a drive.
type Options struct {
	// Checkpoint serializes and restores the scanner state around every
	// scan call, exercising the round-trip contract on real input.
	Checkpoint bool
}

// StackObserver receives the open-block stack after every step. The
// explore TUI uses it to render scanner state over time.
type StackObserver func(tok Token, blocks []qmd.Block, serializedLen int)

// maxStepsPerByte bounds a drive against scheduler bugs; no document
// produces more tokens than a few per byte plus stack churn.
const maxStepsPerByte = 4

// DriveBlock runs the unified block/inline scanner over source and
// returns the token stream.
func DriveBlock(source []byte, opts Options) ([]Token, error) {
	return driveBlock(source, opts, nil)
}

// DriveBlockObserved is DriveBlock with a per-step stack observer.
func DriveBlockObserved(
	source []byte,
	opts Options,
	observe StackObserver,
) ([]Token, error) {
	return driveBlock(source, opts, observe)
}

//nolint:revive // cognitive-complexity: the mask schedule is one loop
func driveBlock(
	source []byte,
	opts Options,
	observe StackObserver,
) ([]Token, error) {
	s := qmd.NewScanner()
	lexer := scan.NewBufferLexer(source)
	buf := make([]byte, scan.MaxSerializedSize)

	contentMask := blockContentMask()
	fenceMask := qmdMask(qmd.TokenFencedCodeBlockEndBacktick)
	matchingMask := qmdMask(qmd.TokenBlockContinuation, qmd.TokenBlockClose)
	lineMask := qmdMask(qmd.TokenLineEnding)

	var out []Token
	budget := maxStepsPerByte * (len(source) + 16)
	committed := 0
	atLineStart := true
	blankPending := false
	for step := 0; ; step++ {
		if step > budget {
			return out, fmt.Errorf(
				"harness stalled after %d steps at offset %d",
				step, committed,
			)
		}
		if opts.Checkpoint {
			n := s.Serialize(buf)
			restored := qmd.NewScanner()
			restored.Deserialize(buf[:n])
			s = restored
		}

		lexer.Seek(committed)
		var masks []qmd.ValidSymbols
		switch {
		case lexer.EOF():
			if len(s.OpenBlocks()) > 0 {
				masks = []qmd.ValidSymbols{qmdMask(qmd.TokenBlockClose)}
			} else if len(out) > 0 &&
				out[len(out)-1].Name == qmd.TokenEOF.String() {
				return out, nil
			} else {
				masks = []qmd.ValidSymbols{qmdMask(qmd.TokenEOF)}
			}
		case s.Matching():
			masks = []qmd.ValidSymbols{matchingMask}
		case lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r':
			if atLineStart && !blankPending {
				masks = []qmd.ValidSymbols{
					qmdMask(qmd.TokenBlankLineStart),
					lineMask,
				}
			} else {
				masks = []qmd.ValidSymbols{lineMask}
			}
		case s.InFencedCodeBlock():
			masks = []qmd.ValidSymbols{fenceMask}
		default:
			masks = []qmd.ValidSymbols{contentMask}
		}

		emitted := false
		for _, m := range masks {
			lexer.Seek(committed)
			if !s.Scan(lexer, m) {
				continue
			}
			tok := Token{
				Name:     s.Result().String(),
				Start:    committed,
				End:      lexer.TokenEnd(),
				External: true,
			}
			committed = tok.End
			blankPending = s.Result() == qmd.TokenBlankLineStart
			switch s.Result() {
			case qmd.TokenLineEnding, qmd.TokenSoftLineEnding,
				qmd.TokenBlankLineStart, qmd.TokenBlockClose,
				qmd.TokenBlockContinuation:
			default:
				atLineStart = false
			}
			if s.Result() == qmd.TokenLineEnding ||
				s.Result() == qmd.TokenSoftLineEnding {
				atLineStart = true
			}
			out = append(out, tok)
			if observe != nil {
				observe(tok, s.OpenBlocks(), s.SerializedLen())
			}
			emitted = true

			break
		}
		if emitted {
			continue
		}

		if lexer.Seek(committed); lexer.EOF() {
			return out, nil
		}

		// Nothing the scanner wants: hand a text run to the pretend
		// grammar, up to the next structurally interesting character.
		blankPending = false
		atLineStart = false
		tok := consumeText(lexer)
		committed = tok.End
		out = append(out, tok)
		if observe != nil {
			observe(tok, s.OpenBlocks(), s.SerializedLen())
		}
	}
}

// consumeText consumes a plain text run the grammar would lex itself.
func consumeText(lexer *scan.BufferLexer) Token {
	start := lexer.Pos()
	for !lexer.EOF() {
		r := lexer.Lookahead()
		if r == '\n' || r == '\r' {
			break
		}
		lexer.Advance(false)
		if interestingText(lexer.Lookahead()) {
			break
		}
	}
	if lexer.Pos() == start {
		// A lone structural character nothing claimed.
		lexer.Advance(false)
	}
	lexer.MarkEnd()

	return Token{Name: "TEXT", Start: start, End: lexer.Pos()}
}

// interestingText marks characters that should end a text run so the
// scanner gets another look at the input.
func interestingText(r rune) bool {
	switch r {
	case '<', '`', '$', '{', '>', '@', '[', '^', '~', '*', '_', '\'', '"':
		return true
	default:
		return false
	}
}

func qmdMask(tokens ...qmd.TokenType) qmd.ValidSymbols {
	v := make(qmd.ValidSymbols, qmd.TokenTypeCount)
	for _, t := range tokens {
		v[t] = true
	}

	return v
}

// blockContentMask admits the block-structure tokens plus the atomic
// inline forms that can appear at content position.
func blockContentMask() qmd.ValidSymbols {
	return qmdMask(
		qmd.TokenBlockQuoteStart,
		qmd.TokenATXH1Marker,
		qmd.TokenThematicBreak,
		qmd.TokenListMarkerMinus,
		qmd.TokenListMarkerPlus,
		qmd.TokenListMarkerStar,
		qmd.TokenListMarkerDot,
		qmd.TokenListMarkerParenthesis,
		qmd.TokenListMarkerExample,
		qmd.TokenFencedCodeBlockStartBacktick,
		qmd.TokenFencedCodeBlockEndBacktick,
		qmd.TokenFencedDivStart,
		qmd.TokenFencedDivEnd,
		qmd.TokenMinusMetadata,
		qmd.TokenPlusMetadata,
		qmd.TokenHTMLComment,
		qmd.TokenAutolink,
		qmd.TokenDisplayMathStateTrackMarker,
		qmd.TokenShortcodeOpen,
		qmd.TokenShortcodeOpenEscaped,
		qmd.TokenRefIDSpecifier,
		qmd.TokenInlineNoteReference,
	)
}

// DriveInline runs the markdown-inline scanner over source.
func DriveInline(source []byte, opts Options) ([]Token, error) {
	s := qmdinline.NewScanner()
	lexer := scan.NewBufferLexer(source)
	buf := make([]byte, scan.MaxSerializedSize)

	valid := make(qmdinline.ValidSymbols, qmdinline.TokenTypeCount)
	for i := range valid {
		valid[i] = true
	}
	valid[qmdinline.TokenTriggerError] = false
	valid[qmdinline.TokenError] = false

	var out []Token
	committed := 0
	for committed < len(source) {
		if opts.Checkpoint {
			n := s.Serialize(buf)
			restored := qmdinline.NewScanner()
			restored.Deserialize(buf[:n])
			s = restored
		}
		lexer.Seek(committed)
		if s.Scan(lexer, valid) {
			out = append(out, Token{
				Name:     s.Result().String(),
				Start:    committed,
				End:      lexer.TokenEnd(),
				External: true,
			})
			committed = lexer.TokenEnd()

			continue
		}
		lexer.Seek(committed)
		tok := consumeText(lexer)
		committed = tok.End
		out = append(out, tok)
	}

	return out, nil
}

// DriveDoctemplate runs the doctemplate scanner over source.
func DriveDoctemplate(source []byte, opts Options) ([]Token, error) {
	s := doctemplate.NewScanner()
	lexer := scan.NewBufferLexer(source)
	buf := make([]byte, scan.MaxSerializedSize)

	valid := make(doctemplate.ValidSymbols, doctemplate.TokenTypeCount)
	for i := range valid {
		valid[i] = true
	}

	var out []Token
	committed := 0
	for committed < len(source) {
		if opts.Checkpoint {
			n := s.Serialize(buf)
			restored := doctemplate.NewScanner()
			restored.Deserialize(buf[:n])
			s = restored
		}
		lexer.Seek(committed)
		if s.Scan(lexer, valid) {
			out = append(out, Token{
				Name:     s.Result().String(),
				Start:    committed,
				End:      lexer.TokenEnd(),
				External: true,
			})
			committed = lexer.TokenEnd()

			continue
		}
		lexer.Seek(committed)
		tok := consumeText(lexer)
		committed = tok.End
		out = append(out, tok)
	}

	return out, nil
}

// Drive dispatches on scanner name: "block", "inline" or "doctemplate".
func Drive(scanner string, source []byte, opts Options) ([]Token, error) {
	switch scanner {
	case "block", "":
		return DriveBlock(source, opts)
	case "inline":
		return DriveInline(source, opts)
	case "doctemplate":
		return DriveDoctemplate(source, opts)
	default:
		return nil, &scanerrs.UnknownScannerError{Name: scanner}
	}
}
