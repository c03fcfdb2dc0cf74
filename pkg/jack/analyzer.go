package jack

import "strings"

// SplitLines splits raw UTF-8 source text into physical lines, accepting
// both LF and CRLF line endings. The terminating newline of each line is
// not included in the result.
func SplitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return strings.Split(source, "\n")
}

// TokenStream runs the Comment Stripper and Tokenizer over source and
// renders the token-stream artifact (Output format A): '<tokens>', one
// '<CATEGORY> LEXEME </CATEGORY>' line per token, '</tokens>'.
func TokenStream(file, source string) (string, error) {
	stripped := StripComments(SplitLines(source))

	tokens, err := NewTokenizer(file).Tokenize(stripped)
	if err != nil {
		return "", err
	}

	e := NewEmitter()
	e.OpenTokens()
	for _, tok := range tokens {
		e.Token(tok)
	}
	e.CloseTokens()
	return e.String(), nil
}

// ParseTree runs the full front end - Comment Stripper, Tokenizer, then the
// Parser/Identifier Resolver - and renders the annotated parse-tree
// artifact (Output format B). Parsing aborts on the first lexical,
// syntactic, or scope error; no partial output is returned in that case.
func ParseTree(file, source string) (string, error) {
	stripped := StripComments(SplitLines(source))

	tokens, err := NewTokenizer(file).Tokenize(stripped)
	if err != nil {
		return "", err
	}

	p := NewParser(file, tokens)
	if err := p.ParseClass(); err != nil {
		return "", err
	}

	return p.Output(), nil
}
