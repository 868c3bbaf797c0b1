package qmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/qmdscan/internal/scan"
)

func TestMatchLine_BlockQuoteContinues(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("> a\n> b\n"))

	scanOne(t, s, lexer, mask(TokenBlockQuoteStart))
	skipText(lexer, 1)
	scanOne(t, s, lexer, mask(TokenLineEnding))
	require.NotZero(t, s.StateFlags()&stateMatching)

	tok := scanOne(t, s, lexer, mask(TokenBlockContinuation, TokenBlockClose))
	assert.Equal(t, TokenBlockContinuation, tok)
	assert.Zero(t, s.StateFlags()&stateMatching)
	assert.Len(t, s.OpenBlocks(), 1)
}

func TestMatchLine_BlockQuoteCloses(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("> a\nplain\n"))

	scanOne(t, s, lexer, mask(TokenBlockQuoteStart))
	skipText(lexer, 1)
	scanOne(t, s, lexer, mask(TokenLineEnding))

	tok := scanOne(t, s, lexer, mask(TokenBlockContinuation, TokenBlockClose))
	assert.Equal(t, TokenBlockClose, tok)
	assert.Empty(t, s.OpenBlocks())
	assert.Zero(t, s.StateFlags()&stateMatching)
}

// TestMatchLine_PerLineTokenCount drives two open blocks across a line
// boundary: the number of continuation plus close tokens during matching
// equals the stack depth at line start.
func TestMatchLine_PerLineTokenCount(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("> - a\n>   b\n"))

	scanOne(t, s, lexer, mask(TokenBlockQuoteStart))
	scanOne(t, s, lexer, mask(TokenListMarkerMinus))
	skipText(lexer, 1)
	scanOne(t, s, lexer, mask(TokenLineEnding))

	depth := len(s.OpenBlocks())
	require.Equal(t, 2, depth)

	var matched []TokenType
	for s.StateFlags()&stateMatching != 0 {
		matched = append(matched, scanOne(t, s, lexer,
			mask(TokenBlockContinuation, TokenBlockClose)))
	}
	want := []TokenType{TokenBlockContinuation, TokenBlockContinuation}
	if diff := cmp.Diff(want, matched); diff != "" {
		t.Errorf("matching token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchLine_ListItemSurvivesBlankLine(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("- a\n\n  b\n"))

	scanOne(t, s, lexer, mask(TokenListMarkerMinus))
	skipText(lexer, 1)
	scanOne(t, s, lexer, mask(TokenLineEnding))
	require.NotZero(t, s.StateFlags()&stateMatching)

	tok := scanOne(t, s, lexer, mask(TokenBlockContinuation, TokenBlockClose))
	assert.Equal(t, TokenBlockContinuation, tok)
	assert.Len(t, s.OpenBlocks(), 1)
}

func TestMatchLine_IndentedCodeRequiresIndent(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("    a\n  b\n"))

	scanOne(t, s, lexer, mask(TokenIndentedChunkStart))
	skipText(lexer, 1)
	scanOne(t, s, lexer, mask(TokenLineEnding))

	// Two columns are not enough to continue indented code.
	tok := scanOne(t, s, lexer, mask(TokenBlockContinuation, TokenBlockClose))
	assert.Equal(t, TokenBlockClose, tok)
}

func TestCloseBlock_HonoredAtMatchTime(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("> a\n> b\n"))

	scanOne(t, s, lexer, mask(TokenBlockQuoteStart))
	skipText(lexer, 1)
	scanOne(t, s, lexer, mask(TokenCloseBlock))
	scanOne(t, s, lexer, mask(TokenLineEnding))

	// The innermost block is the last one; the close request wins even
	// though the quote marker would re-match.
	tok := scanOne(t, s, lexer, mask(TokenBlockContinuation, TokenBlockClose))
	assert.Equal(t, TokenBlockClose, tok)
	assert.Empty(t, s.OpenBlocks())
}

func TestLineBreak_SoftLineEnding(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("para\ncontinued\n"))

	skipText(lexer, len("para"))
	tok := scanOne(t, s, lexer, mask(TokenLineEnding, TokenSoftLineEnding))
	assert.Equal(t, TokenSoftLineEnding, tok)
	assert.NotZero(t, s.StateFlags()&stateWasSoftLineBreak)
}

func TestLineBreak_ListMarkerInterrupts(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("para\n- item\n"))

	skipText(lexer, len("para"))
	tok := scanOne(t, s, lexer, mask(TokenLineEnding, TokenSoftLineEnding))
	assert.Equal(t, TokenLineEnding, tok)
	assert.Zero(t, s.StateFlags()&stateWasSoftLineBreak)
}

// TestLineBreak_DisplayMathInterruptTable verifies the table switch: in
// display math a list marker does not interrupt the paragraph, so the
// same shape that produced LINE_ENDING above now soft-breaks.
func TestLineBreak_DisplayMathInterruptTable(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("$$a\n- x\n"))

	scanOne(t, s, lexer, mask(TokenDisplayMathStateTrackMarker))
	require.NotZero(t, s.StateFlags()&stateInDisplayMath)
	skipText(lexer, 1)

	tok := scanOne(t, s, lexer, mask(TokenLineEnding, TokenSoftLineEnding))
	assert.Equal(t, TokenSoftLineEnding, tok)
}

func TestLineBreak_CRLF(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("a\r\nb"))

	skipText(lexer, 1)
	tok := scanOne(t, s, lexer, mask(TokenLineEnding))
	assert.Equal(t, TokenLineEnding, tok)
	assert.Equal(t, 'b', lexer.Lookahead())
}

func TestLineBreak_PipeTableLineEnding(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("a\nb\n"))

	skipText(lexer, 1)
	tok := scanOne(t, s, lexer, mask(
		TokenLineEnding,
		TokenPipeTableLineEnding,
	))
	assert.Equal(t, TokenPipeTableLineEnding, tok)
}

func TestParsePipeTable_Start(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("a|b\n-|-\n"))

	tok := scanOne(t, s, lexer, mask(TokenPipeTableStart))
	assert.Equal(t, TokenPipeTableStart, tok)
	// PIPE_TABLE_START is zero width.
	assert.Equal(t, 0, lexer.TokenEnd())
}

func TestParsePipeTable_AlignedDelimiters(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("| x | y |\n|:--|--:|\n"))

	tok := scanOne(t, s, lexer, mask(TokenPipeTableStart))
	assert.Equal(t, TokenPipeTableStart, tok)
}

func TestParsePipeTable_CellCountMismatch(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("a|b\n-\n"))

	expectDecline(t, s, lexer, mask(TokenPipeTableStart))
}

func TestParsePipeTable_EscapedPipeNotACell(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("a\\|b|c\n-|-\n"))

	// The escaped pipe does not split a cell: two header cells, two
	// delimiter cells.
	tok := scanOne(t, s, lexer, mask(TokenPipeTableStart))
	assert.Equal(t, TokenPipeTableStart, tok)
}

func TestParsePipeTable_NoDelimiterRow(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("a|b\ntext\n"))

	expectDecline(t, s, lexer, mask(TokenPipeTableStart))
}

func TestInterruptsParagraph_Tables(t *testing.T) {
	s := NewScanner()

	assert.True(t, s.interruptsParagraph('-'))
	assert.True(t, s.interruptsParagraph('3'))
	assert.True(t, s.interruptsParagraph('>'))
	assert.False(t, s.interruptsParagraph('x'))
	assert.True(t, s.interruptsParagraph(' '))

	s.state |= stateInDisplayMath
	assert.False(t, s.interruptsParagraph('-'))
	assert.False(t, s.interruptsParagraph('3'))
	assert.True(t, s.interruptsParagraph('>'))
	assert.True(t, s.interruptsParagraph('#'))
}
