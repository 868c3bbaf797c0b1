package qmdinline

// TokenType identifies an external token of the markdown-inline scanner.
// The declared order is the wire format shared with the generated
// parser; it must stay stable.
type TokenType uint8

const (
	// TokenError kills the current parse branch.
	TokenError TokenType = iota
	// TokenTriggerError is a grammar-requested branch kill.
	TokenTriggerError

	// Code spans.

	TokenCodeSpanStart
	TokenCodeSpanClose

	// Emphasis delimiters.

	TokenEmphasisOpenStar
	TokenEmphasisOpenUnderscore
	TokenEmphasisCloseStar
	TokenEmphasisCloseUnderscore

	// TokenLastTokenWhitespace and TokenLastTokenPunctuation are
	// zero-width markers the grammar keeps valid to tell the scanner
	// what preceded the current position. The scanner reads them from
	// the mask and never emits them.
	TokenLastTokenWhitespace
	TokenLastTokenPunctuation

	// Strikeout.

	TokenStrikeoutOpen
	TokenStrikeoutClose

	// Latex spans.

	TokenLatexSpanStart
	TokenLatexSpanClose

	// Smart quotes.

	TokenSingleQuoteOpen
	TokenSingleQuoteClose
	TokenDoubleQuoteOpen
	TokenDoubleQuoteClose

	// Superscript and subscript.

	TokenSuperscriptOpen
	TokenSuperscriptClose
	TokenSubscriptOpen
	TokenSubscriptClose

	// Citations.

	TokenCiteAuthorInTextWithOpenBracket
	TokenCiteSuppressAuthorWithOpenBracket
	TokenCiteAuthorInText
	TokenCiteSuppressAuthor

	// Shortcode delimiters.

	TokenShortcodeOpenEscaped
	TokenShortcodeCloseEscaped
	TokenShortcodeOpen
	TokenShortcodeClose

	// TokenKeyNameAndEquals is `name=` inside a shortcode.
	TokenKeyNameAndEquals
	// TokenUnclosedSpan is emitted for a span delimiter with no close.
	TokenUnclosedSpan

	// Strong emphasis.

	TokenStrongEmphasisOpenStar
	TokenStrongEmphasisCloseStar
	TokenStrongEmphasisOpenUnderscore
	TokenStrongEmphasisCloseUnderscore

	// TokenHTMLComment is an atomic `<!-- ... -->` comment.
	TokenHTMLComment

	// tokenTypeCount is the size of the token alphabet.
	tokenTypeCount
)

// TokenTypeCount is the number of external tokens the scanner declares.
const TokenTypeCount = int(tokenTypeCount)

var tokenNames = [...]string{
	TokenError:                             "ERROR",
	TokenTriggerError:                      "TRIGGER_ERROR",
	TokenCodeSpanStart:                     "CODE_SPAN_START",
	TokenCodeSpanClose:                     "CODE_SPAN_CLOSE",
	TokenEmphasisOpenStar:                  "EMPHASIS_OPEN_STAR",
	TokenEmphasisOpenUnderscore:            "EMPHASIS_OPEN_UNDERSCORE",
	TokenEmphasisCloseStar:                 "EMPHASIS_CLOSE_STAR",
	TokenEmphasisCloseUnderscore:           "EMPHASIS_CLOSE_UNDERSCORE",
	TokenLastTokenWhitespace:               "LAST_TOKEN_WHITESPACE",
	TokenLastTokenPunctuation:              "LAST_TOKEN_PUNCTUATION",
	TokenStrikeoutOpen:                     "STRIKEOUT_OPEN",
	TokenStrikeoutClose:                    "STRIKEOUT_CLOSE",
	TokenLatexSpanStart:                    "LATEX_SPAN_START",
	TokenLatexSpanClose:                    "LATEX_SPAN_CLOSE",
	TokenSingleQuoteOpen:                   "SINGLE_QUOTE_OPEN",
	TokenSingleQuoteClose:                  "SINGLE_QUOTE_CLOSE",
	TokenDoubleQuoteOpen:                   "DOUBLE_QUOTE_OPEN",
	TokenDoubleQuoteClose:                  "DOUBLE_QUOTE_CLOSE",
	TokenSuperscriptOpen:                   "SUPERSCRIPT_OPEN",
	TokenSuperscriptClose:                  "SUPERSCRIPT_CLOSE",
	TokenSubscriptOpen:                     "SUBSCRIPT_OPEN",
	TokenSubscriptClose:                    "SUBSCRIPT_CLOSE",
	TokenCiteAuthorInTextWithOpenBracket:   "CITE_AUTHOR_IN_TEXT_WITH_OPEN_BRACKET",
	TokenCiteSuppressAuthorWithOpenBracket: "CITE_SUPPRESS_AUTHOR_WITH_OPEN_BRACKET",
	TokenCiteAuthorInText:                  "CITE_AUTHOR_IN_TEXT",
	TokenCiteSuppressAuthor:                "CITE_SUPPRESS_AUTHOR",
	TokenShortcodeOpenEscaped:              "SHORTCODE_OPEN_ESCAPED",
	TokenShortcodeCloseEscaped:             "SHORTCODE_CLOSE_ESCAPED",
	TokenShortcodeOpen:                     "SHORTCODE_OPEN",
	TokenShortcodeClose:                    "SHORTCODE_CLOSE",
	TokenKeyNameAndEquals:                  "KEY_NAME_AND_EQUALS",
	TokenUnclosedSpan:                      "UNCLOSED_SPAN",
	TokenStrongEmphasisOpenStar:            "STRONG_EMPHASIS_OPEN_STAR",
	TokenStrongEmphasisCloseStar:           "STRONG_EMPHASIS_CLOSE_STAR",
	TokenStrongEmphasisOpenUnderscore:      "STRONG_EMPHASIS_OPEN_UNDERSCORE",
	TokenStrongEmphasisCloseUnderscore:     "STRONG_EMPHASIS_CLOSE_UNDERSCORE",
	TokenHTMLComment:                       "HTML_COMMENT",
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
