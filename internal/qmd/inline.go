package qmd

import (
	"github.com/connerohnesorge/qmdscan/internal/scan"
)

// parseCodeSpan lexes backtick delimiters for code spans inside pipe
// table cells. The lookahead for a matching close run is bounded by the
// end of the line.
func (s *Scanner) parseCodeSpan(lexer scan.Lexer, valid ValidSymbols) bool {
	level := uint8(0)
	for lexer.Lookahead() == '`' {
		lexer.Advance(false)
		level++
	}
	s.markEnd(lexer)

	if level == s.codeSpanDelimiterLength && valid.Has(TokenCodeSpanClose) {
		s.codeSpanDelimiterLength = 0
		s.insideCodeSpan = false

		return s.emit(TokenCodeSpanClose)
	}

	if valid.Has(TokenCodeSpanStart) {
		closeLevel := uint8(0)
		for !lexer.EOF() && lexer.Lookahead() != '\n' &&
			lexer.Lookahead() != '\r' {
			if lexer.Lookahead() == '`' {
				closeLevel++
			} else {
				if closeLevel == level {
					break
				}
				closeLevel = 0
			}
			lexer.Advance(false)
		}
		if closeLevel == level {
			s.codeSpanDelimiterLength = level
			s.insideCodeSpan = true

			return s.emit(TokenCodeSpanStart)
		}
		if valid.Has(TokenUnclosedSpan) {
			return s.emit(TokenUnclosedSpan)
		}
	}

	return false
}

// parseLatexSpan lexes dollar delimiters for latex spans inside pipe
// table cells, same shape as parseCodeSpan.
func (s *Scanner) parseLatexSpan(lexer scan.Lexer, valid ValidSymbols) bool {
	level := uint8(0)
	for lexer.Lookahead() == '$' {
		lexer.Advance(false)
		level++
	}
	s.markEnd(lexer)

	if level == s.latexSpanDelimiterLength && valid.Has(TokenLatexSpanClose) {
		s.latexSpanDelimiterLength = 0
		s.insideLatexSpan = false

		return s.emit(TokenLatexSpanClose)
	}

	if valid.Has(TokenLatexSpanStart) {
		closeLevel := uint8(0)
		for !lexer.EOF() && lexer.Lookahead() != '\n' &&
			lexer.Lookahead() != '\r' {
			if lexer.Lookahead() == '$' {
				closeLevel++
			} else {
				if closeLevel == level {
					break
				}
				closeLevel = 0
			}
			lexer.Advance(false)
		}
		if closeLevel == level {
			s.latexSpanDelimiterLength = level
			s.insideLatexSpan = true

			return s.emit(TokenLatexSpanStart)
		}
		if valid.Has(TokenUnclosedSpan) {
			return s.emit(TokenUnclosedSpan)
		}
	}

	return false
}

// parseMathTracker consumes `$$` and toggles the display-math bit, which
// selects the paragraph-interrupt table. A single `$` emits the inline
// companion token instead.
func (s *Scanner) parseMathTracker(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	s.advance(lexer)
	if lexer.Lookahead() == '$' {
		s.advance(lexer)
		s.markEnd(lexer)
		s.state ^= stateInDisplayMath

		return s.emit(TokenDisplayMathStateTrackMarker)
	}
	if valid.Has(TokenInlineMathStateTrackMarker) {
		s.markEnd(lexer)

		return s.emit(TokenInlineMathStateTrackMarker)
	}

	return false
}

// parseSingleQuote prefers closing over opening so that 'word' closes
// after the second quote.
func (s *Scanner) parseSingleQuote(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '\'' {
		return false
	}
	s.advance(lexer)
	if valid.Has(TokenSingleQuoteClose) {
		s.markEnd(lexer)

		return s.emit(TokenSingleQuoteClose)
	}
	if valid.Has(TokenSingleQuoteOpen) {
		s.markEnd(lexer)

		return s.emit(TokenSingleQuoteOpen)
	}

	return false
}

// parseDoubleQuote mirrors parseSingleQuote for '"'.
func (s *Scanner) parseDoubleQuote(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '"' {
		return false
	}
	s.advance(lexer)
	if valid.Has(TokenDoubleQuoteClose) {
		s.markEnd(lexer)

		return s.emit(TokenDoubleQuoteClose)
	}
	if valid.Has(TokenDoubleQuoteOpen) {
		s.markEnd(lexer)

		return s.emit(TokenDoubleQuoteOpen)
	}

	return false
}

// parseShortcodeOpen lexes `{{<` and the triple-braced escaped form.
func (s *Scanner) parseShortcodeOpen(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '{' {
		return false
	}
	s.advance(lexer)
	if (!valid.Has(TokenShortcodeOpen) &&
		!valid.Has(TokenShortcodeOpenEscaped)) ||
		lexer.EOF() || lexer.Lookahead() != '{' {
		return false
	}
	s.advance(lexer)
	if !lexer.EOF() && lexer.Lookahead() == '<' &&
		valid.Has(TokenShortcodeOpen) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenShortcodeOpen)
	}

	if lexer.EOF() || lexer.Lookahead() != '{' ||
		!valid.Has(TokenShortcodeOpenEscaped) {
		return false
	}
	s.advance(lexer)
	if lexer.EOF() || lexer.Lookahead() != '<' {
		return false
	}
	s.advance(lexer)
	s.markEnd(lexer)

	return s.emit(TokenShortcodeOpenEscaped)
}

// parseShortcodeClose lexes `>}}` and the escaped `>}}}` form.
func (s *Scanner) parseShortcodeClose(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '>' {
		return false
	}
	s.advance(lexer)
	if !valid.Has(TokenShortcodeClose) &&
		!valid.Has(TokenShortcodeCloseEscaped) {
		return false
	}
	if lexer.EOF() || lexer.Lookahead() != '}' {
		return false
	}
	s.advance(lexer)
	if lexer.EOF() || lexer.Lookahead() != '}' {
		return false
	}
	s.advance(lexer)
	if !lexer.EOF() && lexer.Lookahead() == '}' &&
		valid.Has(TokenShortcodeCloseEscaped) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenShortcodeCloseEscaped)
	}
	if !valid.Has(TokenShortcodeClose) {
		return false
	}
	s.markEnd(lexer)

	return s.emit(TokenShortcodeClose)
}

// parseKeyNameAndEquals lexes `name =` inside a shortcode, resolving the
// ambiguity between positional and keyword arguments. Only offered when
// the grammar's mask includes the token.
func (s *Scanner) parseKeyNameAndEquals(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if !valid.Has(TokenKeyNameAndEquals) {
		return false
	}
	if !isIdentifierStart(lexer.Lookahead()) {
		return false
	}
	s.advance(lexer)
	for isIdentifierChar(lexer.Lookahead()) {
		s.advance(lexer)
	}
	for lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
		s.advance(lexer)
	}
	if lexer.Lookahead() != '=' {
		return false
	}
	s.advance(lexer)
	s.markEnd(lexer)

	return s.emit(TokenKeyNameAndEquals)
}

// parseCiteAuthorInText lexes `@key`, or the `@{` form that opens a
// braced citation key.
func (s *Scanner) parseCiteAuthorInText(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	s.advance(lexer)
	if lexer.Lookahead() == '{' &&
		valid.Has(TokenCiteAuthorInTextWithOpenBracket) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenCiteAuthorInTextWithOpenBracket)
	}
	if valid.Has(TokenCiteAuthorInText) {
		s.markEnd(lexer)

		return s.emit(TokenCiteAuthorInText)
	}

	return false
}

// parseCiteSuppressAuthor lexes the `@` tail of `-@key` forms. The
// leading minus was consumed by parseMinus.
func (s *Scanner) parseCiteSuppressAuthor(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '@' {
		return false
	}
	s.advance(lexer)
	if lexer.Lookahead() == '{' &&
		valid.Has(TokenCiteSuppressAuthorWithOpenBracket) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenCiteSuppressAuthorWithOpenBracket)
	}
	if valid.Has(TokenCiteSuppressAuthor) {
		s.markEnd(lexer)

		return s.emit(TokenCiteSuppressAuthor)
	}

	return false
}

// parseTilde handles `~~` strikeout pairs and single `~` subscript
// delimiters, close preferred over open.
func (s *Scanner) parseTilde(lexer scan.Lexer, valid ValidSymbols) bool {
	s.advance(lexer)
	if lexer.Lookahead() == '~' && valid.Has(TokenStrikeoutClose) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenStrikeoutClose)
	}
	if lexer.Lookahead() == '~' && valid.Has(TokenStrikeoutOpen) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenStrikeoutOpen)
	}
	if valid.Has(TokenSubscriptClose) {
		s.markEnd(lexer)

		return s.emit(TokenSubscriptClose)
	}
	if valid.Has(TokenSubscriptOpen) {
		s.markEnd(lexer)

		return s.emit(TokenSubscriptOpen)
	}

	return false
}

// parseCaret dispatches between fenced-div note ids, `^[` inline note
// starts and superscript delimiters.
func (s *Scanner) parseCaret(lexer scan.Lexer, valid ValidSymbols) bool {
	if valid.Has(TokenFencedDivNoteID) {
		return s.parseFencedDivNoteID(lexer)
	}
	s.advance(lexer)
	if lexer.Lookahead() == '[' && valid.Has(TokenInlineNoteStart) {
		s.advance(lexer)
		s.markEnd(lexer)

		return s.emit(TokenInlineNoteStart)
	}
	if valid.Has(TokenSuperscriptClose) {
		s.markEnd(lexer)

		return s.emit(TokenSuperscriptClose)
	}
	if valid.Has(TokenSuperscriptOpen) {
		s.markEnd(lexer)

		return s.emit(TokenSuperscriptOpen)
	}

	return false
}

// parseFencedDivNoteID lexes a footnote identifier after '^' at fenced
// div scope. Identifiers may not contain spaces, tabs, newlines, or the
// characters ^, [ and ].
func (s *Scanner) parseFencedDivNoteID(lexer scan.Lexer) bool {
	s.advance(lexer)
	for !lexer.EOF() && lexer.Lookahead() != ' ' &&
		lexer.Lookahead() != '\t' && lexer.Lookahead() != '\n' &&
		lexer.Lookahead() != '^' && lexer.Lookahead() != '[' &&
		lexer.Lookahead() != ']' {
		s.advance(lexer)
	}
	s.markEnd(lexer)

	return s.emit(TokenFencedDivNoteID)
}

// parseOpenSquareBrace dispatches `[^...` footnote forms and the
// editorial span openers `[!!`, `[++`, `[--` and `[>>`. A span opener
// token ends right after its marker; whitespace that follows is only
// looked at and is not part of the token.
func (s *Scanner) parseOpenSquareBrace(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '[' {
		return false
	}
	lexer.Advance(false)

	if (valid.Has(TokenRefIDSpecifier) ||
		valid.Has(TokenInlineNoteReference)) && lexer.Lookahead() == '^' {
		return s.parseRefIDSpecifier(lexer, valid)
	}

	type spanStart struct {
		marker rune
		token  TokenType
	}
	var span spanStart
	switch {
	case valid.Has(TokenHighlightSpanStart) && lexer.Lookahead() == '!':
		span = spanStart{'!', TokenHighlightSpanStart}
	case valid.Has(TokenInsertSpanStart) && lexer.Lookahead() == '+':
		span = spanStart{'+', TokenInsertSpanStart}
	case valid.Has(TokenDeleteSpanStart) && lexer.Lookahead() == '-':
		span = spanStart{'-', TokenDeleteSpanStart}
	case valid.Has(TokenCommentSpanStart) && lexer.Lookahead() == '>':
		span = spanStart{'>', TokenCommentSpanStart}
	default:
		return false
	}
	lexer.Advance(false)
	if lexer.Lookahead() != span.marker {
		return false
	}
	lexer.Advance(false)
	lexer.MarkEnd()
	for !lexer.EOF() &&
		(lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t') {
		lexer.Advance(false)
	}

	return s.emit(span.token)
}

// parseRefIDSpecifier lexes `[^id]:` footnote definitions and `[^id]`
// inline references. The opening '[' has already been consumed.
func (s *Scanner) parseRefIDSpecifier(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '^' {
		return false
	}
	lexer.Advance(false)

	// Footnote identifiers may not contain spaces, tabs, newlines, or
	// the characters ^, [ and ].
	for lexer.Lookahead() != ' ' && lexer.Lookahead() != '\t' &&
		lexer.Lookahead() != '\n' && lexer.Lookahead() != '^' &&
		lexer.Lookahead() != '[' && lexer.Lookahead() != ']' &&
		!lexer.EOF() {
		lexer.Advance(false)
	}
	if lexer.Lookahead() != ']' {
		return false
	}
	lexer.Advance(false)
	if lexer.Lookahead() == ':' && valid.Has(TokenRefIDSpecifier) {
		lexer.Advance(false)
		lexer.MarkEnd()

		return s.emit(TokenRefIDSpecifier)
	}
	if !valid.Has(TokenInlineNoteReference) {
		return false
	}
	lexer.MarkEnd()

	return s.emit(TokenInlineNoteReference)
}

// parseOpenAngleBrace dispatches `<!--` comments, `<scheme:...>`
// autolinks and `<...}` raw specifiers. These are atomic: everything up
// to the terminator is consumed in one token, block markers included.
func (s *Scanner) parseOpenAngleBrace(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if lexer.Lookahead() != '<' {
		return false
	}
	lexer.Advance(false)

	if lexer.Lookahead() == '!' {
		return s.parseHTMLComment(lexer, valid)
	}

	// Consume until one of:
	//   '}'            raw specifier
	//   '>'            autolink (if URL-like content was seen)
	//   space/tab/EOF  bad lex
	couldBeAutolink := lexer.Lookahead() != '/'
	hadURLLikeCharacter := false
	for !lexer.EOF() {
		switch {
		case lexer.Lookahead() == ':' || lexer.Lookahead() == '%':
			hadURLLikeCharacter = true
		case lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t':
			couldBeAutolink = false
		case valid.Has(TokenRawSpecifier) && lexer.Lookahead() == '}':
			lexer.MarkEnd()

			return s.emit(TokenRawSpecifier)
		case valid.Has(TokenAutolink) && couldBeAutolink &&
			hadURLLikeCharacter && lexer.Lookahead() == '>':
			lexer.Advance(false)
			lexer.MarkEnd()

			return s.emit(TokenAutolink)
		case lexer.Lookahead() == '>':
			// Never valid; emitted for error messages only.
			lexer.Advance(false)
			lexer.MarkEnd()

			return s.emit(TokenHTMLElement)
		}
		lexer.Advance(false)
	}

	return false
}

// parseHTMLComment consumes `<!-- ... -->` atomically, newlines and
// block markers included. An unclosed comment runs to EOF. The '<' has
// already been consumed.
func (s *Scanner) parseHTMLComment(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if !valid.Has(TokenHTMLComment) {
		return false
	}
	if lexer.Lookahead() != '!' {
		return false
	}
	lexer.Advance(false)
	if lexer.Lookahead() != '-' {
		return false
	}
	lexer.Advance(false)
	if lexer.Lookahead() != '-' {
		return false
	}
	lexer.Advance(false)

	for !lexer.EOF() {
		if lexer.Lookahead() == '-' {
			lexer.Advance(false)
			if lexer.Lookahead() == '-' {
				lexer.Advance(false)
				if lexer.Lookahead() == '>' {
					lexer.Advance(false)
					lexer.MarkEnd()

					return s.emit(TokenHTMLComment)
				}
			}
		} else {
			lexer.Advance(false)
		}
	}

	lexer.MarkEnd()

	return s.emit(TokenHTMLComment)
}

// parseRawSpecifier lexes `=format}` raw attribute specifiers; the
// leading '=' is at the lookahead.
func (s *Scanner) parseRawSpecifier(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if !valid.Has(TokenRawSpecifier) {
		return false
	}
	if lexer.Lookahead() != '=' {
		return false
	}
	lexer.Advance(false)

	for !lexer.EOF() && lexer.Lookahead() != ' ' &&
		lexer.Lookahead() != '\t' {
		if lexer.Lookahead() == '}' {
			lexer.MarkEnd()

			return s.emit(TokenRawSpecifier)
		}
		lexer.Advance(false)
	}

	return false
}

// parseLanguageSpecifier lexes the identifier-ish runs inside attribute
// lists: a bare language name, the key of a key=value pair, or a naked
// value.
func (s *Scanner) parseLanguageSpecifier(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if !valid.Has(TokenLanguageSpecifier) && !valid.Has(TokenKeySpecifier) &&
		!valid.Has(TokenNakedValueSpecifier) {
		return false
	}
	la := lexer.Lookahead()
	if !isASCIILetter(la) &&
		!(valid.Has(TokenNakedValueSpecifier) && la >= '0' && la <= '9') {
		return false
	}
	lexer.Advance(false)

	// Consume specifier characters until one of:
	//   '}', EOF   language specifier
	//   '='        key of a key=value pair
	//   whitespace peek past it for an '=' to make the call
	for {
		la = lexer.Lookahead()
		if isASCIILetter(la) || (la >= '0' && la <= '9') ||
			la == '_' || la == '%' || la == '-' {
			lexer.Advance(false)

			continue
		}
		if la == '}' {
			lexer.MarkEnd()
			if valid.Has(TokenNakedValueSpecifier) {
				return s.emit(TokenNakedValueSpecifier)
			}

			return s.emit(TokenLanguageSpecifier)
		}
		if la == '=' {
			lexer.MarkEnd()

			return s.emit(TokenKeySpecifier)
		}
		if la == ' ' || la == '\t' {
			lexer.MarkEnd()
			for !lexer.EOF() &&
				(lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t') {
				lexer.Advance(false)
			}
			if lexer.EOF() {
				return s.emit(TokenLanguageSpecifier)
			}
			if lexer.Lookahead() == '=' {
				return s.emit(TokenKeySpecifier)
			}
			if valid.Has(TokenNakedValueSpecifier) {
				return s.emit(TokenNakedValueSpecifier)
			}

			return s.emit(TokenLanguageSpecifier)
		}
		if lexer.EOF() {
			lexer.MarkEnd()

			return s.emit(TokenLanguageSpecifier)
		}

		return false
	}
}
