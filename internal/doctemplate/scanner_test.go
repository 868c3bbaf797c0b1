package doctemplate

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/connerohnesorge/qmdscan/internal/scan"
)

func scanToken(t *testing.T, input string) (TokenType, bool) {
	t.Helper()
	s := NewScanner()
	lexer := scan.NewBufferLexer([]byte(input))
	valid := make(ValidSymbols, TokenTypeCount)
	for i := range valid {
		valid[i] = true
	}
	ok := s.Scan(lexer, valid)

	return s.Result(), ok
}

func TestScan_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"$for x", TokenKeywordFor1},
		{"${for x}", TokenKeywordFor2},
		{"$endfor", TokenKeywordEndfor1},
		{"${endfor}", TokenKeywordEndfor2},
		{"$if cond", TokenKeywordIf1},
		{"${if cond}", TokenKeywordIf2},
		{"$else", TokenKeywordElse1},
		{"${else}", TokenKeywordElse2},
		{"$elseif c", TokenKeywordElseif1},
		{"${elseif c}", TokenKeywordElseif2},
		{"$endif", TokenKeywordEndif1},
		{"${endif}", TokenKeywordEndif2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, ok := scanToken(t, tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, tok)
		})
	}
}

func TestScan_WhitespaceAfterDollar(t *testing.T) {
	tok, ok := scanToken(t, "${  for x}")
	assert.True(t, ok)
	assert.Equal(t, TokenKeywordFor2, tok)

	tok, ok = scanToken(t, "$ \tif y")
	assert.True(t, ok)
	assert.Equal(t, TokenKeywordIf1, tok)
}

func TestScan_Declines(t *testing.T) {
	tests := []string{
		"",
		"for",     // no dollar
		"$fo",     // truncated keyword
		"$elsf",   // bad continuation
		"$end",    // neither endif nor endfor
		"$x",      // unknown dispatch character
		"${ unkn", // braced, unknown keyword
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, ok := scanToken(t, input)
			assert.False(t, ok)
		})
	}
}

// TestScan_TemplateSequence is the `$for x$ ... $endfor$` scenario.
func TestScan_TemplateSequence(t *testing.T) {
	s := NewScanner()
	input := []byte("$for x$ ... $endfor$")
	lexer := scan.NewBufferLexer(input)
	valid := make(ValidSymbols, TokenTypeCount)
	for i := range valid {
		valid[i] = true
	}

	assert.True(t, s.Scan(lexer, valid))
	assert.Equal(t, TokenKeywordFor1, s.Result())

	// The grammar lexes the loop variable and body; position past them.
	for lexer.Lookahead() != '$' || lexer.Pos() < len("$for x$ ... ") {
		lexer.Advance(false)
	}
	lexer.MarkEnd()
	lexer.ResetToken()

	assert.True(t, s.Scan(lexer, valid))
	assert.Equal(t, TokenKeywordEndfor1, s.Result())
}

func TestSerialize_SizeEcho(t *testing.T) {
	s := NewScanner()
	buf := make([]byte, scan.MaxSerializedSize)

	n := s.Serialize(buf)
	assert.Equal(t, 4, n)

	s.Deserialize(buf[:n])
	n2 := s.Serialize(buf)
	assert.Equal(t, n, n2)
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "KEYWORD_FOR_1", TokenKeywordFor1.String())
	assert.Equal(t, "KEYWORD_ENDIF_2", TokenKeywordEndif2.String())
	assert.Equal(t, "UNKNOWN", TokenType(99).String())
}
