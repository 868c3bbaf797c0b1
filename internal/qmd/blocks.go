package qmd

import (
	"github.com/connerohnesorge/qmdscan/internal/scan"
)

// parseFencedDivMarker lexes a run of ':' at line start. A run of three
// or more followed by a blank rest-of-line closes a div when
// FENCED_DIV_END is acceptable; otherwise it opens one. The info string
// is left to the grammar.
func (s *Scanner) parseFencedDivMarker(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	level := 0
	for lexer.Lookahead() == ':' {
		s.advance(lexer)
		level++
	}
	s.markEnd(lexer)
	if level < 3 {
		return false
	}

	// Skip any whitespace after the marker. A blank rest of line ends a
	// fenced div when FENCED_DIV_END is acceptable. Anything else before
	// end of input opens a div, including an infostring or attribute
	// written directly after the colons (`:::note`).
	for !lexer.EOF() &&
		(lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t') {
		s.advance(lexer)
	}
	if lexer.EOF() || lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r' {
		if valid.Has(TokenFencedDivEnd) {
			return s.emit(TokenFencedDivEnd)
		}
	}
	if !lexer.EOF() && valid.Has(TokenFencedDivStart) {
		if !s.canPushBlock() {
			return s.errorToken()
		}
		s.pushBlock(BlockFencedDiv)

		return s.emit(TokenFencedDivStart)
	}

	return false
}

// parseFencedCodeBlock lexes a delimiter run for a fenced code block.
// The function is parameterized on the delimiter character; the current
// grammar dispatches only backtick fences here, tildes go to the inline
// path.
func (s *Scanner) parseFencedCodeBlock(
	delimiter rune,
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	level := uint8(0)
	for lexer.Lookahead() == delimiter {
		s.advance(lexer)
		level++
	}
	s.markEnd(lexer)

	// We might need to open a code span at the start of a paragraph.
	if valid.Has(TokenCodeSpanStart) && delimiter == '`' && level < 3 {
		s.codeSpanDelimiterLength = level
		s.insideCodeSpan = true

		return s.emit(TokenCodeSpanStart)
	}

	// If this is able to close a fenced code block then that is the only
	// valid interpretation. It can only close one if the run is at least
	// as long as the opening delimiter and indented less than 4 spaces.
	if delimiter == '`' && valid.Has(TokenFencedCodeBlockEndBacktick) &&
		s.indentation < 4 &&
		level >= s.fencedCodeBlockDelimiterLength {
		for lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
			s.advance(lexer)
		}
		if lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r' {
			s.fencedCodeBlockDelimiterLength = 0

			return s.emit(TokenFencedCodeBlockEndBacktick)
		}
	}

	// If this could start a fenced code block, check that the info
	// string contains no backticks.
	if delimiter == '`' && valid.Has(TokenFencedCodeBlockStartBacktick) &&
		level >= 3 {
		infoStringHasBacktick := false
		for lexer.Lookahead() != '\n' && lexer.Lookahead() != '\r' &&
			!lexer.EOF() {
			if lexer.Lookahead() == '`' {
				infoStringHasBacktick = true

				break
			}
			s.advance(lexer)
		}
		if !infoStringHasBacktick {
			if !s.canPushBlock() {
				return s.errorToken()
			}
			s.pushBlock(BlockFencedCodeBlock)
			// Remember the delimiter length; a closing run must be at
			// least this long.
			s.fencedCodeBlockDelimiterLength = level
			s.indentation = 0

			return s.emit(TokenFencedCodeBlockStartBacktick)
		}
	}

	return false
}

// parseStar decides between thematic breaks, star list markers and star
// emphasis, in that priority order.
func (s *Scanner) parseStar(lexer scan.Lexer, valid ValidSymbols) bool {
	s.advance(lexer)
	s.markEnd(lexer)
	// Count the stars, permitting whitespace between them. Also remember
	// how many spaces follow the first star.
	starCount := 1
	extraIndentation := uint8(0)
	// EMPHASIS_CLOSE_STAR has to win while reading this.
	if valid.Has(TokenEmphasisCloseStar) {
		return s.emit(TokenEmphasisCloseStar)
	}
	couldBeCloseStrongEmphasis := valid.Has(TokenStrongEmphasisCloseStar)
	for {
		if lexer.Lookahead() == '*' {
			if starCount == 1 && extraIndentation >= 1 &&
				valid.Has(TokenListMarkerStar) {
				// The token has to be at least this long; commit here in
				// case this later turns out to be a list item.
				s.markEnd(lexer)
			}
			starCount++
			s.advance(lexer)
			if starCount == 2 && couldBeCloseStrongEmphasis {
				s.markEnd(lexer)

				return s.emit(TokenStrongEmphasisCloseStar)
			}
		} else if lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
			couldBeCloseStrongEmphasis = false
			if starCount == 1 {
				extraIndentation += s.advance(lexer)
			} else {
				s.advance(lexer)
			}
		} else {
			break
		}
	}
	lineEnd := lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r'
	dontInterrupt := false
	if starCount == 1 && lineEnd {
		extraIndentation = 1
		// The line is empty, so a list marker may not interrupt a
		// paragraph.
		dontInterrupt = int(s.matched) == len(s.openBlocks)
	}
	thematicBreak := starCount >= 3 && lineEnd
	listMarkerStar := starCount >= 1 && extraIndentation >= 1
	if valid.Has(TokenThematicBreak) && thematicBreak && s.indentation < 4 {
		// A valid thematic break takes precedence.
		s.markEnd(lexer)
		s.indentation = 0

		return s.emit(TokenThematicBreak)
	}
	wantMarker := valid.Has(TokenListMarkerStar)
	if dontInterrupt {
		wantMarker = valid.Has(TokenListMarkerStarDontInterrupt)
	}
	if wantMarker && listMarkerStar {
		// List markers take precedence over emphasis markers. For
		// starCount > 1 the end was already committed at the right spot.
		if starCount == 1 {
			s.markEnd(lexer)
		}
		extraIndentation--
		if extraIndentation <= 3 {
			// Content indent is marker indent plus trailing spaces.
			extraIndentation += s.indentation
			s.indentation = 0
		} else {
			// The list item begins with an indented code block; keep the
			// trailing indentation for later blocks.
			extraIndentation, s.indentation = s.indentation, extraIndentation
		}
		if !s.canPushBlock() {
			return s.errorToken()
		}
		s.pushBlock(listItemBlock(extraIndentation))
		if dontInterrupt {
			return s.emit(TokenListMarkerStarDontInterrupt)
		}

		return s.emit(TokenListMarkerStar)
	}
	if starCount == 1 && valid.Has(TokenEmphasisCloseStar) {
		s.markEnd(lexer)

		return s.emit(TokenEmphasisCloseStar)
	}
	if starCount == 1 && valid.Has(TokenEmphasisOpenStar) {
		s.markEnd(lexer)

		return s.emit(TokenEmphasisOpenStar)
	}
	if starCount == 2 && valid.Has(TokenStrongEmphasisCloseStar) {
		s.markEnd(lexer)

		return s.emit(TokenStrongEmphasisCloseStar)
	}
	if starCount == 2 && valid.Has(TokenStrongEmphasisOpenStar) {
		s.markEnd(lexer)

		return s.emit(TokenStrongEmphasisOpenStar)
	}

	return false
}

// parseUnderscore handles thematic breaks and underscore emphasis.
// Underscores never mark lists.
func (s *Scanner) parseUnderscore(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	s.advance(lexer)
	s.markEnd(lexer)
	underscoreCount := 1
	for {
		if lexer.Lookahead() == '_' {
			underscoreCount++
			s.advance(lexer)
		} else if lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
			s.advance(lexer)
		} else {
			break
		}
	}
	lineEnd := lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r'
	if underscoreCount >= 3 && lineEnd && valid.Has(TokenThematicBreak) {
		s.markEnd(lexer)
		s.indentation = 0

		return s.emit(TokenThematicBreak)
	}
	if underscoreCount == 1 && valid.Has(TokenEmphasisCloseUnderscore) {
		s.markEnd(lexer)

		return s.emit(TokenEmphasisCloseUnderscore)
	}
	if underscoreCount == 1 && valid.Has(TokenEmphasisOpenUnderscore) {
		s.markEnd(lexer)

		return s.emit(TokenEmphasisOpenUnderscore)
	}
	if underscoreCount == 2 && valid.Has(TokenStrongEmphasisCloseUnderscore) {
		s.markEnd(lexer)

		return s.emit(TokenStrongEmphasisCloseUnderscore)
	}
	if underscoreCount == 2 && valid.Has(TokenStrongEmphasisOpenUnderscore) {
		s.markEnd(lexer)

		return s.emit(TokenStrongEmphasisOpenUnderscore)
	}

	return false
}

// parseBlockQuote consumes a '>' marker and one optional following
// space, then opens a block quote.
func (s *Scanner) parseBlockQuote(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if !valid.Has(TokenBlockQuoteStart) {
		return false
	}
	s.advance(lexer)
	s.indentation = 0
	if lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
		s.indentation += s.advance(lexer) - 1
	}
	if !s.canPushBlock() {
		return s.errorToken()
	}
	s.pushBlock(BlockQuote)
	s.markEnd(lexer)

	return s.emit(TokenBlockQuoteStart)
}

// parseATXHeading lexes between one and six '#' characters followed by
// whitespace or line end. The marker token covers only the '#'s.
func (s *Scanner) parseATXHeading(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if !valid.Has(TokenATXH1Marker) || s.indentation > 3 {
		return false
	}
	s.markEnd(lexer)
	level := 0
	for lexer.Lookahead() == '#' && level <= 6 {
		s.advance(lexer)
		level++
	}
	if level <= 6 &&
		(lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' ||
			lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r') {
		s.indentation = 0
		s.markEnd(lexer)

		return s.emit(TokenATXH1Marker + TokenType(level-1))
	}

	return false
}

// parsePlus handles plus list markers and `+++` TOML metadata fences.
func (s *Scanner) parsePlus(lexer scan.Lexer, valid ValidSymbols) bool {
	if s.indentation > 3 ||
		(!valid.Has(TokenListMarkerPlus) &&
			!valid.Has(TokenListMarkerPlusDontInterrupt) &&
			!valid.Has(TokenPlusMetadata)) {
		return false
	}
	s.markEnd(lexer)
	whitespaceAfterPlus := false
	plusAfterWhitespace := false
	plusCount := 0
	extraIndentation := uint8(0)
	for {
		if lexer.Lookahead() == '+' {
			plusCount++
			s.advance(lexer)
			plusAfterWhitespace = whitespaceAfterPlus
		} else if lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
			if plusCount == 1 {
				extraIndentation += s.advance(lexer)
			} else {
				s.advance(lexer)
			}
			whitespaceAfterPlus = true
		} else {
			break
		}
	}
	lineEnd := lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r'
	dontInterrupt := false
	if plusCount == 1 && lineEnd {
		extraIndentation = 1
		dontInterrupt = true
	}
	dontInterrupt = dontInterrupt && int(s.matched) == len(s.openBlocks)
	wantMarker := valid.Has(TokenListMarkerPlus)
	if dontInterrupt {
		wantMarker = valid.Has(TokenListMarkerPlusDontInterrupt)
	}
	if plusCount == 1 && extraIndentation >= 1 && wantMarker {
		s.markEnd(lexer)
		extraIndentation--
		if extraIndentation <= 3 {
			extraIndentation += s.indentation
			s.indentation = 0
		} else {
			extraIndentation, s.indentation = s.indentation, extraIndentation
		}
		if !s.canPushBlock() {
			return s.errorToken()
		}
		s.pushBlock(listItemBlock(extraIndentation))
		if dontInterrupt {
			return s.emit(TokenListMarkerPlusDontInterrupt)
		}

		return s.emit(TokenListMarkerPlus)
	}
	if plusCount == 3 && !plusAfterWhitespace && lineEnd &&
		valid.Has(TokenPlusMetadata) {
		if ok, handled := s.parseMetadataBody(lexer, '+', TokenPlusMetadata); handled {
			return ok
		}
	}

	return false
}

// parseOrderedListMarker lexes 1-9 digits followed by '.' or ')'. A
// start number other than 1 may not interrupt a paragraph.
func (s *Scanner) parseOrderedListMarker(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if s.indentation > 3 ||
		(!valid.Has(TokenListMarkerParenthesis) &&
			!valid.Has(TokenListMarkerDot) &&
			!valid.Has(TokenListMarkerParenthesisDontInterrupt) &&
			!valid.Has(TokenListMarkerDotDontInterrupt)) {
		return false
	}
	digits := 1
	dontInterrupt := lexer.Lookahead() != '1'
	s.advance(lexer)
	for lexer.Lookahead() >= '0' && lexer.Lookahead() <= '9' {
		dontInterrupt = true
		digits++
		s.advance(lexer)
	}
	if digits < 1 || digits > 9 {
		return false
	}
	dot := false
	switch lexer.Lookahead() {
	case '.':
		s.advance(lexer)
		dot = true
	case ')':
		s.advance(lexer)
	default:
		return false
	}
	extraIndentation := uint8(0)
	for lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
		extraIndentation += s.advance(lexer)
	}
	lineEnd := lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r'
	if lineEnd {
		extraIndentation = 1
		dontInterrupt = true
	}
	dontInterrupt = dontInterrupt && int(s.matched) == len(s.openBlocks)
	var wantMarker bool
	switch {
	case dot && dontInterrupt:
		wantMarker = valid.Has(TokenListMarkerDotDontInterrupt)
	case dot:
		wantMarker = valid.Has(TokenListMarkerDot)
	case dontInterrupt:
		wantMarker = valid.Has(TokenListMarkerParenthesisDontInterrupt)
	default:
		wantMarker = valid.Has(TokenListMarkerParenthesis)
	}
	if extraIndentation >= 1 && wantMarker {
		extraIndentation--
		if extraIndentation <= 3 {
			extraIndentation += s.indentation
			s.indentation = 0
		} else {
			extraIndentation, s.indentation = s.indentation, extraIndentation
		}
		if !s.canPushBlock() {
			return s.errorToken()
		}
		// The marker width includes the digits.
		s.pushBlock(listItemBlock(extraIndentation + uint8(digits)))
		if dot {
			if dontInterrupt {
				return s.emit(TokenListMarkerDotDontInterrupt)
			}

			return s.emit(TokenListMarkerDot)
		}
		if dontInterrupt {
			return s.emit(TokenListMarkerParenthesisDontInterrupt)
		}

		return s.emit(TokenListMarkerParenthesis)
	}

	return false
}

// parseExampleListMarker lexes the literal `(@)` example-list marker.
// The content indentation offset is 3, the width of the marker.
func (s *Scanner) parseExampleListMarker(
	lexer scan.Lexer,
	valid ValidSymbols,
) bool {
	if s.indentation > 3 ||
		(!valid.Has(TokenListMarkerExample) &&
			!valid.Has(TokenListMarkerExampleDontInterrupt)) {
		return false
	}
	if lexer.Lookahead() != '(' {
		return false
	}
	s.advance(lexer)
	if lexer.Lookahead() != '@' {
		return false
	}
	s.advance(lexer)
	if lexer.Lookahead() != ')' {
		return false
	}
	s.advance(lexer)

	extraIndentation := uint8(0)
	for lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
		extraIndentation += s.advance(lexer)
	}
	lineEnd := lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r'
	dontInterrupt := false
	if lineEnd {
		extraIndentation = 1
		dontInterrupt = true
	}
	dontInterrupt = dontInterrupt && int(s.matched) == len(s.openBlocks)
	wantMarker := valid.Has(TokenListMarkerExample)
	if dontInterrupt {
		wantMarker = valid.Has(TokenListMarkerExampleDontInterrupt)
	}
	if extraIndentation >= 1 && wantMarker {
		extraIndentation--
		if extraIndentation <= 3 {
			extraIndentation += s.indentation
			s.indentation = 0
		} else {
			extraIndentation, s.indentation = s.indentation, extraIndentation
		}
		if !s.canPushBlock() {
			return s.errorToken()
		}
		s.pushBlock(listItemBlock(extraIndentation + 3))
		if dontInterrupt {
			return s.emit(TokenListMarkerExampleDontInterrupt)
		}

		return s.emit(TokenListMarkerExample)
	}

	return false
}

// parseMinus is the busiest branch: minus list markers, setext H2
// underlines, thematic breaks, `---` YAML metadata fences and
// `-@` citation suppression all begin with '-'.
func (s *Scanner) parseMinus(lexer scan.Lexer, valid ValidSymbols) bool {
	if s.indentation > 3 ||
		(!valid.Has(TokenListMarkerMinus) &&
			!valid.Has(TokenListMarkerMinusDontInterrupt) &&
			!valid.Has(TokenThematicBreak) &&
			!valid.Has(TokenSetextH2Underline) &&
			!valid.Has(TokenCiteSuppressAuthorWithOpenBracket) &&
			!valid.Has(TokenCiteSuppressAuthor) &&
			!valid.Has(TokenMinusMetadata)) {
		return false
	}
	s.markEnd(lexer)
	whitespaceAfterMinus := false
	minusAfterWhitespace := false
	minusCount := 0
	extraIndentation := uint8(0)

	for {
		if lexer.Lookahead() == '-' {
			if minusCount == 1 && extraIndentation >= 1 {
				s.markEnd(lexer)
			}
			minusCount++
			s.advance(lexer)
			minusAfterWhitespace = whitespaceAfterMinus
		} else if lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
			if minusCount == 1 {
				extraIndentation += s.advance(lexer)
			} else {
				s.advance(lexer)
			}
			whitespaceAfterMinus = true
		} else {
			break
		}
	}
	lineEnd := lexer.Lookahead() == '\n' || lexer.Lookahead() == '\r'
	dontInterrupt := false
	if minusCount == 1 && lineEnd {
		extraIndentation = 1
		dontInterrupt = true
	}
	dontInterrupt = dontInterrupt && int(s.matched) == len(s.openBlocks)
	// A setext underline is a run of minuses with no interior
	// whitespace, only reachable at a paragraph continuation.
	if valid.Has(TokenSetextH2Underline) && minusCount >= 1 &&
		!minusAfterWhitespace && lineEnd {
		s.markEnd(lexer)
		s.indentation = 0

		return s.emit(TokenSetextH2Underline)
	}
	thematicBreak := minusCount >= 3 && lineEnd
	listMarkerMinus := minusCount >= 1 && extraIndentation >= 1
	maybeThematicBreak := false
	wantMarker := valid.Has(TokenListMarkerMinus)
	if dontInterrupt {
		wantMarker = valid.Has(TokenListMarkerMinusDontInterrupt)
	}
	if valid.Has(TokenThematicBreak) && thematicBreak {
		maybeThematicBreak = true
		s.markEnd(lexer)
		s.indentation = 0
	} else if wantMarker && listMarkerMinus {
		if minusCount == 1 {
			s.markEnd(lexer)
		}
		extraIndentation--
		if extraIndentation <= 3 {
			extraIndentation += s.indentation
			s.indentation = 0
		} else {
			extraIndentation, s.indentation = s.indentation, extraIndentation
		}
		if !s.canPushBlock() {
			return s.errorToken()
		}
		s.pushBlock(listItemBlock(extraIndentation))
		if dontInterrupt {
			return s.emit(TokenListMarkerMinusDontInterrupt)
		}

		return s.emit(TokenListMarkerMinus)
	}
	if minusCount == 3 && !minusAfterWhitespace && lineEnd &&
		valid.Has(TokenMinusMetadata) {
		// Peek past the opening fence first: a blank line right after
		// `---` means this is a thematic break, not metadata.
		if ok, handled := s.parseMetadataBody(lexer, '-', TokenMinusMetadata); handled {
			return ok
		}
	} else if minusCount == 1 &&
		valid.Has(TokenCiteSuppressAuthorWithOpenBracket) {
		return s.parseCiteSuppressAuthor(lexer, valid)
	}
	if maybeThematicBreak {
		return s.emit(TokenThematicBreak)
	}

	return false
}

// parseMetadataBody scans the body of a metadata fence after the opening
// `---` or `+++` line has been consumed, up to and including the closing
// fence line. handled is false when the line right after the opening
// fence is blank, which makes the opener a thematic break instead; the
// caller falls back to its other interpretations.
func (s *Scanner) parseMetadataBody(
	lexer scan.Lexer,
	delimiter rune,
	token TokenType,
) (ok, handled bool) {
	// Advance over the newline to peek at the next line.
	if lexer.Lookahead() == '\r' {
		s.advance(lexer)
		if lexer.Lookahead() == '\n' {
			s.advance(lexer)
		}
	} else if lexer.Lookahead() == '\n' {
		s.advance(lexer)
	}

	if lexer.Lookahead() == '\r' || lexer.Lookahead() == '\n' {
		return false, false
	}

	firstIteration := true
	for {
		if !firstIteration {
			if lexer.Lookahead() == '\r' {
				s.advance(lexer)
				if lexer.Lookahead() == '\n' {
					s.advance(lexer)
				}
			} else {
				s.advance(lexer)
			}
		}
		firstIteration = false
		count := 0
		for lexer.Lookahead() == delimiter {
			count++
			s.advance(lexer)
		}
		if count == 3 {
			// Exactly three: the fence closes if only whitespace
			// remains on the line. Consume the line ending too.
			for lexer.Lookahead() == ' ' || lexer.Lookahead() == '\t' {
				s.advance(lexer)
			}
			if lexer.Lookahead() == '\r' || lexer.Lookahead() == '\n' {
				if lexer.Lookahead() == '\r' {
					s.advance(lexer)
					if lexer.Lookahead() == '\n' {
						s.advance(lexer)
					}
				} else {
					s.advance(lexer)
				}
				s.markEnd(lexer)

				return s.emit(token), true
			}
		}
		for lexer.Lookahead() != '\n' && lexer.Lookahead() != '\r' &&
			!lexer.EOF() {
			s.advance(lexer)
		}
		// Reaching end of file means this was never metadata.
		if lexer.EOF() {
			return false, true
		}
	}
}
