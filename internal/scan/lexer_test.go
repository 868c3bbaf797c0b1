package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferLexer_EmptyInput verifies EOF behavior on empty input.
func TestBufferLexer_EmptyInput(t *testing.T) {
	l := NewBufferLexer(nil)

	assert.True(t, l.EOF())
	assert.Equal(t, rune(0), l.Lookahead())

	// Advancing at EOF is a no-op.
	l.Advance(false)
	assert.Equal(t, 0, l.Pos())
}

// TestBufferLexer_AdvanceAndMark verifies token boundary commits.
func TestBufferLexer_AdvanceAndMark(t *testing.T) {
	l := NewBufferLexer([]byte("abc"))

	require.Equal(t, 'a', l.Lookahead())
	l.Advance(false)
	require.Equal(t, 'b', l.Lookahead())
	l.MarkEnd()
	l.Advance(false)

	// The second advance is uncommitted lookahead.
	assert.Equal(t, 2, l.Pos())
	assert.Equal(t, 1, l.TokenEnd())

	l.ResetToken()
	assert.Equal(t, 1, l.Pos())
	assert.Equal(t, 'b', l.Lookahead())
}

// TestBufferLexer_ImplicitEnd verifies that without MarkEnd the token
// ends where the scanner stopped advancing.
func TestBufferLexer_ImplicitEnd(t *testing.T) {
	l := NewBufferLexer([]byte("xyz"))

	l.Advance(false)
	l.Advance(false)
	assert.Equal(t, 2, l.TokenEnd())

	l.ResetToken()
	assert.Equal(t, 2, l.TokenStart())
}

// TestBufferLexer_MultiByte verifies UTF-8 decoding of lookahead.
func TestBufferLexer_MultiByte(t *testing.T) {
	l := NewBufferLexer([]byte("à$"))

	require.Equal(t, 'à', l.Lookahead())
	l.Advance(false)
	assert.Equal(t, '$', l.Lookahead())
	l.Advance(false)
	assert.True(t, l.EOF())
}

// TestBufferLexer_SkipWhitespace verifies that skipped prefixes are
// excluded from the token.
func TestBufferLexer_SkipWhitespace(t *testing.T) {
	l := NewBufferLexer([]byte("  x"))

	l.Advance(true)
	l.Advance(true)
	assert.Equal(t, 2, l.TokenStart())

	l.Advance(false)
	l.MarkEnd()
	assert.Equal(t, 2, l.TokenStart())
	assert.Equal(t, 3, l.TokenEnd())
}
