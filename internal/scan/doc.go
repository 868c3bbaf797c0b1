// Package scan defines the contract shared by the QMD external scanners.
//
// An external scanner cooperates with a generated LR-style parser: the
// parser hands the scanner a valid-symbol mask listing which terminal
// tokens would be acceptable next, the scanner peeks at the input through
// a Lexer handle, optionally advances, and reports at most one token it
// chose to emit (or declines, returning control to the generated tables).
//
// The package provides:
//   - Lexer: the handle a scanner reads input through
//     (lookahead / advance / mark-end / eof)
//   - BufferLexer: a concrete Lexer over an in-memory byte slice, used by
//     the host surfaces and tests
//   - the serialization limits every scanner state blob must respect
//
// Scanner state must round-trip byte-exactly through Serialize and
// Deserialize so the parser can checkpoint and speculatively roll back
// between calls.
package scan
