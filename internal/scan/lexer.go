package scan

import "unicode/utf8"

// Serialization limits imposed by the parser runtime.
const (
	// MaxSerializedSize is the hard cap on a serialized scanner state blob.
	MaxSerializedSize = 1024

	// SerializedSizeBudget is the size at which scanners must refuse to
	// grow their state further. Pushing past it risks hitting the hard cap
	// mid-parse, so scanners emit their error token instead.
	SerializedSizeBudget = MaxSerializedSize * 3 / 4
)

// Lexer is the handle the generated parser gives an external scanner.
// It exposes one codepoint of lookahead; a scanner advances through the
// input and commits a token boundary with MarkEnd. If MarkEnd is never
// called, the token ends wherever the scanner stopped advancing;
// advancing past a committed mark only peeks.
type Lexer interface {
	// Lookahead returns the current codepoint, or 0 at end of input.
	Lookahead() rune

	// Advance moves past the current codepoint. When skipWhitespace is
	// true the codepoint is excluded from the token being built.
	Advance(skipWhitespace bool)

	// MarkEnd commits the current position as the end of the token.
	MarkEnd()

	// EOF reports whether the input is exhausted.
	EOF() bool
}

// BufferLexer is a Lexer over an in-memory byte slice. It is what the
// host harness and the tests drive the scanners with; during a real parse
// the generated parser supplies its own handle.
type BufferLexer struct {
	source     []byte
	pos        int // byte offset of the lookahead codepoint
	marked     int // committed token end, set by MarkEnd
	markCalled bool
	start      int // token start, moved forward by Advance(true)
}

// NewBufferLexer creates a lexer positioned at the start of source.
// The source is retained by reference, not copied.
func NewBufferLexer(source []byte) *BufferLexer {
	return &BufferLexer{source: source}
}

// Lookahead returns the codepoint at the current position, or 0 at EOF.
func (l *BufferLexer) Lookahead() rune {
	if l.pos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.source[l.pos:])

	return r
}

// Advance moves past the current codepoint.
func (l *BufferLexer) Advance(skipWhitespace bool) {
	if l.pos >= len(l.source) {
		return
	}
	_, size := utf8.DecodeRune(l.source[l.pos:])
	l.pos += size
	if skipWhitespace && !l.markCalled {
		// nothing committed yet; the skipped prefix is not token content
		l.start = l.pos
	}
}

// MarkEnd commits the current position as the token end.
func (l *BufferLexer) MarkEnd() {
	l.marked = l.pos
	l.markCalled = true
}

// EOF reports whether all input has been consumed.
func (l *BufferLexer) EOF() bool {
	return l.pos >= len(l.source)
}

// Pos returns the current byte offset of the lookahead.
func (l *BufferLexer) Pos() int {
	return l.pos
}

// TokenStart returns the byte offset where the current token begins.
func (l *BufferLexer) TokenStart() int {
	return l.start
}

// TokenEnd returns where the current token ends: the committed mark, or
// the current position when MarkEnd was never called.
func (l *BufferLexer) TokenEnd() int {
	if l.markCalled {
		return l.marked
	}

	return l.pos
}

// ResetToken begins a new token at the previous token's end. The harness
// calls this between scan calls; anything advanced past the committed
// mark was lookahead only and is handed back for the next call.
func (l *BufferLexer) ResetToken() {
	l.pos = l.TokenEnd()
	l.start = l.pos
	l.marked = l.pos
	l.markCalled = false
}

// Seek repositions the lexer and begins a fresh token there. The host
// uses it to re-lex from the last committed offset after an external
// scan declined partway through the input.
func (l *BufferLexer) Seek(offset int) {
	l.pos = offset
	l.start = offset
	l.marked = offset
	l.markCalled = false
}
