// Package doctemplate implements the external scanner for the document
// template mini-language: `$keyword` and `${keyword}` forms for the six
// reserved keywords for, endfor, if, elseif, else and endif, each in the
// two bracket styles.
package doctemplate

import (
	"github.com/connerohnesorge/qmdscan/internal/scan"
)

// TokenType identifies an external token of the doctemplate scanner.
// The `1` variants are the bare `$keyword` style, the `2` variants the
// braced `${keyword}` style. The order is the wire format.
type TokenType uint8

const (
	TokenKeywordFor1 TokenType = iota
	TokenKeywordFor2
	TokenKeywordEndfor1
	TokenKeywordEndfor2
	TokenKeywordIf1
	TokenKeywordIf2
	TokenKeywordElse1
	TokenKeywordElse2
	TokenKeywordElseif1
	TokenKeywordElseif2
	TokenKeywordEndif1
	TokenKeywordEndif2

	tokenTypeCount
)

// TokenTypeCount is the number of external tokens the scanner declares.
const TokenTypeCount = int(tokenTypeCount)

var tokenNames = [...]string{
	TokenKeywordFor1:    "KEYWORD_FOR_1",
	TokenKeywordFor2:    "KEYWORD_FOR_2",
	TokenKeywordEndfor1: "KEYWORD_ENDFOR_1",
	TokenKeywordEndfor2: "KEYWORD_ENDFOR_2",
	TokenKeywordIf1:     "KEYWORD_IF_1",
	TokenKeywordIf2:     "KEYWORD_IF_2",
	TokenKeywordElse1:   "KEYWORD_ELSE_1",
	TokenKeywordElse2:   "KEYWORD_ELSE_2",
	TokenKeywordElseif1: "KEYWORD_ELSEIF_1",
	TokenKeywordElseif2: "KEYWORD_ELSEIF_2",
	TokenKeywordEndif1:  "KEYWORD_ENDIF_1",
	TokenKeywordEndif2:  "KEYWORD_ENDIF_2",
}

// String returns the wire name of the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}

	return "UNKNOWN"
}

// ValidSymbols is the mask the generated parser passes to Scan.
type ValidSymbols []bool

// Has reports whether the token is acceptable.
func (v ValidSymbols) Has(t TokenType) bool {
	return int(t) < len(v) && v[t]
}

// Scanner is the doctemplate external scanner. It carries no real state;
// the size echo exists only to satisfy the serialization contract.
type Scanner struct {
	ownSize uint32

	result TokenType
}

// NewScanner creates a scanner.
func NewScanner() *Scanner {
	s := &Scanner{}
	s.Deserialize(nil)

	return s
}

// Result returns the token emitted by the last successful Scan call.
func (s *Scanner) Result() TokenType {
	return s.result
}

// Serialize writes the reserved zero prefix and returns its size.
func (s *Scanner) Serialize(buffer []byte) int {
	size := 0
	for i := 0; i < 4; i++ {
		buffer[size] = 0
		size++
	}
	s.ownSize = uint32(size)

	return size
}

// Deserialize echoes the blob length back into the scanner.
func (s *Scanner) Deserialize(buffer []byte) {
	s.ownSize = uint32(len(buffer))
}

func (s *Scanner) emit(t TokenType) bool {
	s.result = t

	return true
}

// lexCharacter consumes exactly the expected character or fails.
func lexCharacter(lexer scan.Lexer, want rune) bool {
	if lexer.Lookahead() != want {
		return false
	}
	lexer.Advance(false)

	return true
}

// lexString consumes the expected string or fails partway through.
func lexString(lexer scan.Lexer, want string) bool {
	for _, r := range want {
		if !lexCharacter(lexer, r) {
			return false
		}
	}

	return true
}

func lexWhitespace(lexer scan.Lexer) {
	for !lexer.EOF() &&
		(lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t') {
		lexer.Advance(false)
	}
}

// pick resolves a keyword to its bare or braced token variant.
func pick(style int, bare, braced TokenType) TokenType {
	if style == 1 {
		return bare
	}

	return braced
}

// Scan expects `$` or `${`, skips ASCII whitespace, then dispatches on
// the first keyword character. Any deviation declines.
func (s *Scanner) Scan(lexer scan.Lexer, valid ValidSymbols) bool {
	_ = valid

	style := 1
	if !lexCharacter(lexer, '$') {
		return false
	}
	if lexer.Lookahead() == '{' {
		style = 2
		lexer.Advance(false)
	}
	lexWhitespace(lexer)

	switch lexer.Lookahead() {
	case 'f':
		if !lexString(lexer, "for") {
			return false
		}

		return s.emit(pick(style, TokenKeywordFor1, TokenKeywordFor2))
	case 'e':
		lexer.Advance(false)
		switch lexer.Lookahead() {
		case 'l':
			if !lexString(lexer, "lse") {
				return false
			}
			if lexer.Lookahead() == 'i' {
				if !lexString(lexer, "if") {
					return false
				}

				return s.emit(pick(style, TokenKeywordElseif1, TokenKeywordElseif2))
			}

			return s.emit(pick(style, TokenKeywordElse1, TokenKeywordElse2))
		case 'n':
			if !lexString(lexer, "nd") {
				return false
			}
			if lexer.Lookahead() == 'i' {
				if !lexString(lexer, "if") {
					return false
				}

				return s.emit(pick(style, TokenKeywordEndif1, TokenKeywordEndif2))
			}
			if lexer.Lookahead() == 'f' {
				if !lexString(lexer, "for") {
					return false
				}

				return s.emit(pick(style, TokenKeywordEndfor1, TokenKeywordEndfor2))
			}
		}

		return false
	case 'i':
		if !lexString(lexer, "if") {
			return false
		}

		return s.emit(pick(style, TokenKeywordIf1, TokenKeywordIf2))
	}

	return false
}
