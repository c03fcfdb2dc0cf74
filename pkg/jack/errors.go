package jack

import "fmt"

// LexError reports a failure during tokenization: an unterminated string
// constant, an out-of-range integer constant, or a character outside the
// Jack character set. An unterminated block comment is not reported:
// StripComments drops everything after an unclosed '/*' without an error.
type LexError struct {
	File string
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d: lexical error: %s", e.File, e.Line, e.Msg)
}

// SyntaxError reports a grammar violation: the parser hit a token that
// doesn't belong to the expected set for the production it is in, or ran
// out of tokens mid-production.
type SyntaxError struct {
	File     string
	Line     int
	Expected string
	Got      Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: syntax error: expected %s, got %q (%s)",
		e.File, e.Line, e.Expected, e.Got.Lexeme, e.Got.Category)
}

// ScopeError reports a duplicate declaration within a single Symbol Table
// scope; both occurrences are named so the caller can point at each.
type ScopeError struct {
	File        string
	Line        int
	Name        string
	PriorRecord Identifier
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("%s:%d: identifier %q already declared as %s (index %d) in this scope",
		e.File, e.Line, e.Name, e.PriorRecord.Category, e.PriorRecord.Index)
}
