package qmd

// TokenType identifies an external token of the unified block/inline
// scanner. The declared order is the wire format: the ordinal of each
// token is the id the generated parser indexes its valid-symbol mask
// with, so the order must stay stable.
type TokenType uint8

const (
	// TokenLineEnding ends a line and (re)enters matching mode.
	TokenLineEnding TokenType = iota
	// TokenSoftLineEnding continues a paragraph across a line break.
	TokenSoftLineEnding
	// TokenBlockClose closes the innermost open block.
	TokenBlockClose
	// TokenBlockContinuation confirms all open blocks re-matched.
	TokenBlockContinuation
	// TokenBlockQuoteStart opens a block quote.
	TokenBlockQuoteStart
	// TokenATXH1Marker through TokenATXH6Marker are ATX heading markers.
	// They are consecutive so a level can be added to TokenATXH1Marker.
	TokenATXH1Marker
	TokenATXH2Marker
	TokenATXH3Marker
	TokenATXH4Marker
	TokenATXH5Marker
	TokenATXH6Marker
	// TokenThematicBreak is a horizontal rule.
	TokenThematicBreak

	// List markers. The DontInterrupt variants are emitted when the
	// marker is not allowed to interrupt an open paragraph.

	TokenListMarkerMinus
	TokenListMarkerPlus
	TokenListMarkerStar
	TokenListMarkerParenthesis
	TokenListMarkerDot
	TokenListMarkerMinusDontInterrupt
	TokenListMarkerPlusDontInterrupt
	TokenListMarkerStarDontInterrupt
	TokenListMarkerParenthesisDontInterrupt
	TokenListMarkerDotDontInterrupt
	TokenListMarkerExample
	TokenListMarkerExampleDontInterrupt

	// TokenFencedCodeBlockStartBacktick opens a backtick code fence.
	TokenFencedCodeBlockStartBacktick
	// TokenBlankLineStart is a zero-width marker at a blank line.
	TokenBlankLineStart
	// TokenFencedCodeBlockEndBacktick closes a backtick code fence.
	TokenFencedCodeBlockEndBacktick
	// TokenCloseBlock requests closing the innermost block at line end.
	TokenCloseBlock
	// TokenError kills the current parse branch.
	TokenError
	// TokenTriggerError is a grammar-requested branch kill.
	TokenTriggerError
	// TokenEOF is the end-of-file token.
	TokenEOF
	// TokenMinusMetadata is a `---` YAML metadata fence block.
	TokenMinusMetadata
	// TokenPipeTableStart is a zero-width pipe table header marker.
	TokenPipeTableStart
	// TokenPipeTableLineEnding is a line ending inside a pipe table.
	TokenPipeTableLineEnding
	// TokenFencedDivStart opens a `:::` fenced div.
	TokenFencedDivStart
	// TokenFencedDivEnd closes a `:::` fenced div.
	TokenFencedDivEnd
	// TokenRefIDSpecifier is a `[^id]:` footnote definition label.
	TokenRefIDSpecifier
	// TokenFencedDivNoteID is a `^id` note id at fenced div scope.
	TokenFencedDivNoteID

	// Code span delimiters for parsing pipe table cells.

	TokenCodeSpanStart
	TokenCodeSpanClose

	// Latex span delimiters for parsing pipe table cells.

	TokenLatexSpanStart
	TokenLatexSpanClose

	// TokenHTMLComment is an atomic `<!-- ... -->` comment.
	TokenHTMLComment
	// TokenRawSpecifier is a `{=format}` raw attribute specifier.
	TokenRawSpecifier
	// TokenAutolink is a `<scheme:...>` autolink.
	TokenAutolink
	// TokenLanguageSpecifier names the language in an attribute list.
	TokenLanguageSpecifier
	// TokenKeySpecifier is the key of a key=value attribute.
	TokenKeySpecifier
	// TokenNakedValueSpecifier is an unquoted attribute value.
	TokenNakedValueSpecifier

	// Editorial span openers.

	TokenHighlightSpanStart
	TokenInsertSpanStart
	TokenDeleteSpanStart
	TokenCommentSpanStart

	// Smart quotes.

	TokenSingleQuoteOpen
	TokenSingleQuoteClose
	TokenDoubleQuoteOpen
	TokenDoubleQuoteClose

	// Shortcode delimiters. The escaped variants use triple braces.

	TokenShortcodeOpenEscaped
	TokenShortcodeCloseEscaped
	TokenShortcodeOpen
	TokenShortcodeClose

	// Citations.

	TokenCiteAuthorInTextWithOpenBracket
	TokenCiteSuppressAuthorWithOpenBracket
	TokenCiteAuthorInText
	TokenCiteSuppressAuthor

	// Inline pair delimiters.

	TokenStrikeoutOpen
	TokenStrikeoutClose
	TokenSubscriptOpen
	TokenSubscriptClose
	TokenSuperscriptOpen
	TokenSuperscriptClose
	// TokenInlineNoteStart is the `^[` opener of an inline footnote.
	TokenInlineNoteStart

	// Emphasis delimiters.

	TokenStrongEmphasisOpenStar
	TokenStrongEmphasisCloseStar
	TokenStrongEmphasisOpenUnderscore
	TokenStrongEmphasisCloseUnderscore
	TokenEmphasisOpenStar
	TokenEmphasisCloseStar
	TokenEmphasisOpenUnderscore
	TokenEmphasisCloseUnderscore

	// TokenInlineNoteReference is a `[^id]` footnote reference.
	TokenInlineNoteReference
	// TokenHTMLElement is a placeholder for `<...>` runs that are neither
	// comments nor autolinks. Never valid; emitted for error reporting.
	TokenHTMLElement

	// TokenIndentedChunkStart opens an indented code block chunk.
	TokenIndentedChunkStart
	// TokenNoIndentedChunk suppresses indented chunk recognition.
	TokenNoIndentedChunk
	// TokenSetextH2Underline is a `---` underline after a paragraph.
	TokenSetextH2Underline
	// TokenPlusMetadata is a `+++` TOML metadata fence block.
	TokenPlusMetadata
	// TokenDisplayMathStateTrackMarker tracks `$$` display math toggles.
	TokenDisplayMathStateTrackMarker
	// TokenInlineMathStateTrackMarker tracks single `$` inline math.
	TokenInlineMathStateTrackMarker
	// TokenKeyNameAndEquals is `name=` inside a shortcode, resolving the
	// ambiguity between positional and keyword arguments.
	TokenKeyNameAndEquals
	// TokenUnclosedSpan is emitted for a span delimiter with no close.
	TokenUnclosedSpan

	// tokenTypeCount is the size of the token alphabet.
	tokenTypeCount
)

// TokenTypeCount is the number of external tokens the scanner declares.
// A valid-symbol mask must have at least this many entries.
const TokenTypeCount = int(tokenTypeCount)

var tokenNames = [...]string{
	TokenLineEnding:                         "LINE_ENDING",
	TokenSoftLineEnding:                     "SOFT_LINE_ENDING",
	TokenBlockClose:                         "BLOCK_CLOSE",
	TokenBlockContinuation:                  "BLOCK_CONTINUATION",
	TokenBlockQuoteStart:                    "BLOCK_QUOTE_START",
	TokenATXH1Marker:                        "ATX_H1_MARKER",
	TokenATXH2Marker:                        "ATX_H2_MARKER",
	TokenATXH3Marker:                        "ATX_H3_MARKER",
	TokenATXH4Marker:                        "ATX_H4_MARKER",
	TokenATXH5Marker:                        "ATX_H5_MARKER",
	TokenATXH6Marker:                        "ATX_H6_MARKER",
	TokenThematicBreak:                      "THEMATIC_BREAK",
	TokenListMarkerMinus:                    "LIST_MARKER_MINUS",
	TokenListMarkerPlus:                     "LIST_MARKER_PLUS",
	TokenListMarkerStar:                     "LIST_MARKER_STAR",
	TokenListMarkerParenthesis:              "LIST_MARKER_PARENTHESIS",
	TokenListMarkerDot:                      "LIST_MARKER_DOT",
	TokenListMarkerMinusDontInterrupt:       "LIST_MARKER_MINUS_DONT_INTERRUPT",
	TokenListMarkerPlusDontInterrupt:        "LIST_MARKER_PLUS_DONT_INTERRUPT",
	TokenListMarkerStarDontInterrupt:        "LIST_MARKER_STAR_DONT_INTERRUPT",
	TokenListMarkerParenthesisDontInterrupt: "LIST_MARKER_PARENTHESIS_DONT_INTERRUPT",
	TokenListMarkerDotDontInterrupt:         "LIST_MARKER_DOT_DONT_INTERRUPT",
	TokenListMarkerExample:                  "LIST_MARKER_EXAMPLE",
	TokenListMarkerExampleDontInterrupt:     "LIST_MARKER_EXAMPLE_DONT_INTERRUPT",
	TokenFencedCodeBlockStartBacktick:       "FENCED_CODE_BLOCK_START_BACKTICK",
	TokenBlankLineStart:                     "BLANK_LINE_START",
	TokenFencedCodeBlockEndBacktick:         "FENCED_CODE_BLOCK_END_BACKTICK",
	TokenCloseBlock:                         "CLOSE_BLOCK",
	TokenError:                              "ERROR",
	TokenTriggerError:                       "TRIGGER_ERROR",
	TokenEOF:                                "TOKEN_EOF",
	TokenMinusMetadata:                      "MINUS_METADATA",
	TokenPipeTableStart:                     "PIPE_TABLE_START",
	TokenPipeTableLineEnding:                "PIPE_TABLE_LINE_ENDING",
	TokenFencedDivStart:                     "FENCED_DIV_START",
	TokenFencedDivEnd:                       "FENCED_DIV_END",
	TokenRefIDSpecifier:                     "REF_ID_SPECIFIER",
	TokenFencedDivNoteID:                    "FENCED_DIV_NOTE_ID",
	TokenCodeSpanStart:                      "CODE_SPAN_START",
	TokenCodeSpanClose:                      "CODE_SPAN_CLOSE",
	TokenLatexSpanStart:                     "LATEX_SPAN_START",
	TokenLatexSpanClose:                     "LATEX_SPAN_CLOSE",
	TokenHTMLComment:                        "HTML_COMMENT",
	TokenRawSpecifier:                       "RAW_SPECIFIER",
	TokenAutolink:                           "AUTOLINK",
	TokenLanguageSpecifier:                  "LANGUAGE_SPECIFIER",
	TokenKeySpecifier:                       "KEY_SPECIFIER",
	TokenNakedValueSpecifier:                "NAKED_VALUE_SPECIFIER",
	TokenHighlightSpanStart:                 "HIGHLIGHT_SPAN_START",
	TokenInsertSpanStart:                    "INSERT_SPAN_START",
	TokenDeleteSpanStart:                    "DELETE_SPAN_START",
	TokenCommentSpanStart:                   "COMMENT_SPAN_START",
	TokenSingleQuoteOpen:                    "SINGLE_QUOTE_OPEN",
	TokenSingleQuoteClose:                   "SINGLE_QUOTE_CLOSE",
	TokenDoubleQuoteOpen:                    "DOUBLE_QUOTE_OPEN",
	TokenDoubleQuoteClose:                   "DOUBLE_QUOTE_CLOSE",
	TokenShortcodeOpenEscaped:               "SHORTCODE_OPEN_ESCAPED",
	TokenShortcodeCloseEscaped:              "SHORTCODE_CLOSE_ESCAPED",
	TokenShortcodeOpen:                      "SHORTCODE_OPEN",
	TokenShortcodeClose:                     "SHORTCODE_CLOSE",
	TokenCiteAuthorInTextWithOpenBracket:    "CITE_AUTHOR_IN_TEXT_WITH_OPEN_BRACKET",
	TokenCiteSuppressAuthorWithOpenBracket:  "CITE_SUPPRESS_AUTHOR_WITH_OPEN_BRACKET",
	TokenCiteAuthorInText:                   "CITE_AUTHOR_IN_TEXT",
	TokenCiteSuppressAuthor:                 "CITE_SUPPRESS_AUTHOR",
	TokenStrikeoutOpen:                      "STRIKEOUT_OPEN",
	TokenStrikeoutClose:                     "STRIKEOUT_CLOSE",
	TokenSubscriptOpen:                      "SUBSCRIPT_OPEN",
	TokenSubscriptClose:                     "SUBSCRIPT_CLOSE",
	TokenSuperscriptOpen:                    "SUPERSCRIPT_OPEN",
	TokenSuperscriptClose:                   "SUPERSCRIPT_CLOSE",
	TokenInlineNoteStart:                    "INLINE_NOTE_START_TOKEN",
	TokenStrongEmphasisOpenStar:             "STRONG_EMPHASIS_OPEN_STAR",
	TokenStrongEmphasisCloseStar:            "STRONG_EMPHASIS_CLOSE_STAR",
	TokenStrongEmphasisOpenUnderscore:       "STRONG_EMPHASIS_OPEN_UNDERSCORE",
	TokenStrongEmphasisCloseUnderscore:      "STRONG_EMPHASIS_CLOSE_UNDERSCORE",
	TokenEmphasisOpenStar:                   "EMPHASIS_OPEN_STAR",
	TokenEmphasisCloseStar:                  "EMPHASIS_CLOSE_STAR",
	TokenEmphasisOpenUnderscore:             "EMPHASIS_OPEN_UNDERSCORE",
	TokenEmphasisCloseUnderscore:            "EMPHASIS_CLOSE_UNDERSCORE",
	TokenInlineNoteReference:                "INLINE_NOTE_REFERENCE",
	TokenHTMLElement:                        "HTML_ELEMENT",
	TokenIndentedChunkStart:                 "INDENTED_CHUNK_START",
	TokenNoIndentedChunk:                    "NO_INDENTED_CHUNK",
	TokenSetextH2Underline:                  "SETEXT_H2_UNDERLINE",
	TokenPlusMetadata:                       "PLUS_METADATA",
	TokenDisplayMathStateTrackMarker:        "DISPLAY_MATH_STATE_TRACK_MARKER",
	TokenInlineMathStateTrackMarker:         "INLINE_MATH_STATE_TRACK_MARKER",
	TokenKeyNameAndEquals:                   "KEY_NAME_AND_EQUALS",
	TokenUnclosedSpan:                       "UNCLOSED_SPAN",
}

// String returns the wire name of the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}

	return "UNKNOWN"
}

// ValidSymbols is the mask the generated parser passes to Scan: one entry
// per token ordinal, true when the token would be acceptable next.
type ValidSymbols []bool

// Has reports whether the token is acceptable. Masks shorter than the
// alphabet treat missing entries as false.
func (v ValidSymbols) Has(t TokenType) bool {
	return int(t) < len(v) && v[t]
}
