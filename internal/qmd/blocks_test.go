package qmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/qmdscan/internal/scan"
)

func TestParseStar_ThematicBreak(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("***\n"))

	tok := scanOne(t, s, lexer, mask(TokenThematicBreak, TokenListMarkerStar))
	assert.Equal(t, TokenThematicBreak, tok)
	assert.Equal(t, 3, lexer.TokenEnd())
}

func TestParseStar_ListMarker(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("* item"))

	tok := scanOne(t, s, lexer, mask(TokenListMarkerStar))
	require.Equal(t, TokenListMarkerStar, tok)
	assert.Equal(t, 2, lexer.TokenEnd())
	assert.Equal(t, []Block{BlockListItem}, s.OpenBlocks())
}

func TestParseStar_Emphasis(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("*word*"))

	tok := scanOne(t, s, lexer, mask(TokenEmphasisOpenStar))
	assert.Equal(t, TokenEmphasisOpenStar, tok)
	assert.Equal(t, 1, lexer.TokenEnd())

	// Close wins over open when both are acceptable.
	s2 := NewScanner()
	lexer2 := scan.NewBufferLexer([]byte("*"))
	tok = scanOne(t, s2, lexer2, mask(
		TokenEmphasisOpenStar,
		TokenEmphasisCloseStar,
	))
	assert.Equal(t, TokenEmphasisCloseStar, tok)
}

func TestParseStar_StrongEmphasis(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("**bold"))

	tok := scanOne(t, s, lexer, mask(TokenStrongEmphasisOpenStar))
	assert.Equal(t, TokenStrongEmphasisOpenStar, tok)
	assert.Equal(t, 2, lexer.TokenEnd())
}

func TestParseUnderscore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid ValidSymbols
		want  TokenType
		end   int
	}{
		{
			name:  "thematic break",
			input: "___\n",
			valid: mask(TokenThematicBreak),
			want:  TokenThematicBreak,
			end:   3,
		},
		{
			name:  "emphasis open",
			input: "_x",
			valid: mask(TokenEmphasisOpenUnderscore),
			want:  TokenEmphasisOpenUnderscore,
			end:   1,
		},
		{
			name:  "strong close",
			input: "__",
			valid: mask(TokenStrongEmphasisCloseUnderscore),
			want:  TokenStrongEmphasisCloseUnderscore,
			end:   2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner()
			lexer := scan.NewBufferLexer([]byte(tt.input))
			tok := scanOne(t, s, lexer, tt.valid)
			assert.Equal(t, tt.want, tok)
			assert.Equal(t, tt.end, lexer.TokenEnd())
		})
	}
}

func TestParseOrderedListMarker(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("1. a"))

	tok := scanOne(t, s, lexer, mask(TokenListMarkerDot))
	require.Equal(t, TokenListMarkerDot, tok)
	// Content indent is the marker width: one digit plus dot plus space.
	assert.Equal(t, []Block{BlockListItem1Indentation}, s.OpenBlocks())
}

func TestParseOrderedListMarker_DontInterrupt(t *testing.T) {
	// A start number other than 1 may not interrupt a paragraph; only
	// the dont-interrupt mask entry admits it.
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("2) x"))

	expectDecline(t, s, lexer, mask(TokenListMarkerParenthesis))

	s2 := NewScanner()
	lexer2 := scan.NewBufferLexer([]byte("2) x"))
	tok := scanOne(t, s2, lexer2, mask(
		TokenListMarkerParenthesisDontInterrupt,
	))
	assert.Equal(t, TokenListMarkerParenthesisDontInterrupt, tok)
}

func TestParseExampleListMarker(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("(@) ex"))

	tok := scanOne(t, s, lexer, mask(TokenListMarkerExample))
	require.Equal(t, TokenListMarkerExample, tok)
	// The marker is three characters wide.
	assert.Equal(t, []Block{BlockListItem3Indentation}, s.OpenBlocks())
}

func TestParseATXHeading(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("### h"))

	tok := scanOne(t, s, lexer, mask(TokenATXH1Marker))
	assert.Equal(t, TokenATXH3Marker, tok)
	assert.Equal(t, 3, lexer.TokenEnd())
}

func TestParseATXHeading_RequiresFollowingSpace(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("#tag"))

	expectDecline(t, s, lexer, mask(TokenATXH1Marker))
}

func TestParseATXHeading_MaxSixLevels(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("####### over"))

	expectDecline(t, s, lexer, mask(TokenATXH1Marker))
}

func TestParseMinus_Metadata(t *testing.T) {
	s := NewScanner()
	input := []byte("---\ntitle: x\n---\n")
	lexer := scan.NewBufferLexer(input)

	tok := scanOne(t, s, lexer, mask(TokenMinusMetadata, TokenThematicBreak))
	assert.Equal(t, TokenMinusMetadata, tok)
	// The token covers all three lines including the closing fence.
	assert.Equal(t, len(input), lexer.TokenEnd())
}

func TestParseMinus_MetadataBlankLineIsThematicBreak(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("---\n\nbody"))

	tok := scanOne(t, s, lexer, mask(TokenMinusMetadata, TokenThematicBreak))
	assert.Equal(t, TokenThematicBreak, tok)
	assert.Equal(t, 3, lexer.TokenEnd())
}

func TestParseMinus_SetextUnderline(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("---\n"))

	tok := scanOne(t, s, lexer, mask(
		TokenSetextH2Underline,
		TokenThematicBreak,
	))
	assert.Equal(t, TokenSetextH2Underline, tok)
	assert.Equal(t, 3, lexer.TokenEnd())
}

func TestParseMinus_ListMarker(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("-   deep"))

	tok := scanOne(t, s, lexer, mask(TokenListMarkerMinus))
	require.Equal(t, TokenListMarkerMinus, tok)
	// One marker plus three trailing columns: content indent 2+2.
	assert.Equal(t, []Block{BlockListItem2Indentation}, s.OpenBlocks())
}

func TestParsePlus_ListMarker(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("+ x"))

	tok := scanOne(t, s, lexer, mask(TokenListMarkerPlus))
	require.Equal(t, TokenListMarkerPlus, tok)
	assert.Equal(t, []Block{BlockListItem}, s.OpenBlocks())
}

func TestParsePlus_Metadata(t *testing.T) {
	s := NewScanner()
	input := []byte("+++\ndate = 1\n+++\n")
	lexer := scan.NewBufferLexer(input)

	tok := scanOne(t, s, lexer, mask(TokenPlusMetadata))
	assert.Equal(t, TokenPlusMetadata, tok)
	assert.Equal(t, len(input), lexer.TokenEnd())
}

func TestParseFencedDiv(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte(":::note\n"))

	tok := scanOne(t, s, lexer, mask(TokenFencedDivStart, TokenFencedDivEnd))
	require.Equal(t, TokenFencedDivStart, tok)
	assert.Equal(t, 3, lexer.TokenEnd())
	assert.Equal(t, []Block{BlockFencedDiv}, s.OpenBlocks())
}

func TestParseFencedDiv_End(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte(":::\n"))

	tok := scanOne(t, s, lexer, mask(TokenFencedDivStart, TokenFencedDivEnd))
	assert.Equal(t, TokenFencedDivEnd, tok)
	assert.Equal(t, 3, lexer.TokenEnd())
}

func TestParseFencedDiv_TooShort(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("::x\n"))

	expectDecline(t, s, lexer, mask(TokenFencedDivStart, TokenFencedDivEnd))
}

func TestParseFencedCodeBlock_InfoStringBacktickBlocksOpen(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("``` a`b\n"))

	expectDecline(t, s, lexer, mask(TokenFencedCodeBlockStartBacktick))
	assert.Empty(t, s.OpenBlocks())
}

func TestParseFencedCodeBlock_CloseNeedsFullLength(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("````code\n``\n````\n"))

	tok := scanOne(t, s, lexer, mask(TokenFencedCodeBlockStartBacktick))
	require.Equal(t, TokenFencedCodeBlockStartBacktick, tok)

	skipText(lexer, len("code"))
	scanOne(t, s, lexer, mask(TokenLineEnding))
	scanOne(t, s, lexer, mask(TokenBlockContinuation))

	// A two-backtick run cannot close a four-backtick fence.
	expectDecline(t, s, lexer, mask(TokenFencedCodeBlockEndBacktick))
}

func TestParseBlockQuote_NestedPush(t *testing.T) {
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte("> > deep"))

	tok := scanOne(t, s, lexer, mask(TokenBlockQuoteStart))
	require.Equal(t, TokenBlockQuoteStart, tok)
	tok = scanOne(t, s, lexer, mask(TokenBlockQuoteStart))
	require.Equal(t, TokenBlockQuoteStart, tok)
	assert.Equal(t, []Block{BlockQuote, BlockQuote}, s.OpenBlocks())
}
