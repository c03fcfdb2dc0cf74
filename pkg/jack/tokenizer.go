package jack

import (
	"fmt"
)

// maxIntegerConstant is the largest value a Jack integer literal may hold;
// the source grammar itself never bounds this so it has to be checked here.
const maxIntegerConstant = 32767

// Tokenizer converts already-comment-stripped lines into a flat, ordered
// token sequence. It carries no state across lines other than the current
// file name, used purely for error messages.
type Tokenizer struct {
	File string
}

// NewTokenizer returns a Tokenizer that attributes lexical errors to file.
func NewTokenizer(file string) *Tokenizer {
	return &Tokenizer{File: file}
}

// Tokenize scans every stripped line in order and returns the resulting
// token sequence, or the first lexical error encountered.
func (tz *Tokenizer) Tokenize(lines []string) ([]Token, error) {
	var tokens []Token

	for lineNo, line := range lines {
		lineTokens, err := tz.tokenizeLine(line, lineNo+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}

	return tokens, nil
}

// tokenizeLine scans a single stripped line left-to-right: whitespace
// separates runs, '"' opens a string constant extending to the next '"',
// and any symbol character terminates the current run and is itself emitted
// as a standalone token.
func (tz *Tokenizer) tokenizeLine(line string, lineNo int) ([]Token, error) {
	var tokens []Token
	i, n := 0, len(line)

	for i < n {
		c := line[i]

		switch {
		case isSpace(c):
			i++

		case c == '"':
			end := indexByte(line, i+1, '"')
			if end == -1 {
				return nil, &LexError{File: tz.File, Line: lineNo, Msg: "unterminated string constant"}
			}
			tokens = append(tokens, Token{Category: StringConstant, Lexeme: line[i+1 : end], Line: lineNo})
			i = end + 1

		case Symbols[c]:
			tokens = append(tokens, Token{Category: Symbol, Lexeme: string(c), Line: lineNo})
			i++

		default:
			start := i
			for i < n && !isSpace(line[i]) && !Symbols[line[i]] && line[i] != '"' {
				i++
			}
			word := line[start:i]
			tok, err := tz.classifyWord(word, lineNo)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
	}

	return tokens, nil
}

// classifyWord assigns the category of a non-symbol, non-string run: keyword
// (priority 1), integerConstant (priority 3, bounds-checked) or identifier
// (priority 5, fallback). Priority 2 (symbol) and priority 4 (string) never
// reach here since the caller splits off symbols a character at a time and
// string constants at their quotes.
func (tz *Tokenizer) classifyWord(word string, lineNo int) (Token, error) {
	if Keywords[word] {
		return Token{Category: Keyword, Lexeme: word, Line: lineNo}, nil
	}

	if isAllDigits(word) {
		value := 0
		for _, r := range word {
			value = value*10 + int(r-'0')
			if value > maxIntegerConstant {
				return Token{}, &LexError{
					File: tz.File, Line: lineNo,
					Msg: fmt.Sprintf("integer constant %q exceeds %d", word, maxIntegerConstant),
				}
			}
		}
		return Token{Category: IntegerConstant, Lexeme: word, Line: lineNo}, nil
	}

	if !isValidIdentifier(word) {
		return Token{}, &LexError{File: tz.File, Line: lineNo, Msg: fmt.Sprintf("invalid token %q", word)}
	}

	return Token{Category: Identifier, Lexeme: word, Line: lineNo}, nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isValidIdentifier reports whether s is a letter or underscore followed by
// letters, digits, or underscores.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !(first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// indexByte finds the next occurrence of b in s at or after from, or -1.
func indexByte(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
