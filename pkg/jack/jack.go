// Package jack implements the front end of a Jack language compiler: comment
// stripping, tokenization, a two-scope symbol table and a recursive-descent
// parser that emits an annotated parse tree (or, on request, a flat token
// stream) as XML.
//
// The front end never type-checks or generates code; a class name is assumed
// to match its file name and no cross-file linking is performed. Downstream
// translation to stack-machine (VM) instructions is an external concern this
// package only hands resolved identifiers to, never performs itself.
package jack

// ----------------------------------------------------------------------------
// General information

// A Jack program is a set of classes (the only top-level construct); each
// class owns a set of static/field variables and a set of subroutines, each
// subroutine being a sequence of statements operating on those variables and
// on its own locals/arguments.
//
// This package processes one class (one source file) at a time: Tokenize,
// then Parse. Both steps share nothing across files - the Parser's Symbol
// Table is reset at the start of every class.

// Category classifies a lexical token exactly as the Jack grammar requires:
// every token belongs to exactly one of these five families.
type Category string

const (
	Keyword         Category = "keyword"
	Symbol          Category = "symbol"
	IntegerConstant Category = "integerConstant"
	StringConstant  Category = "stringConstant"
	Identifier      Category = "identifier"
)

// IdentifierRole is the semantic role an identifier occurrence is annotated
// with in the parse-tree artifact. 'class' and 'subroutine' are attributed
// at the emission site from syntactic position and are never stored in the
// Symbol Table; the other four come from a declaration or a successful
// lookup.
type IdentifierRole string

const (
	RoleStatic     IdentifierRole = "static"
	RoleField      IdentifierRole = "field"
	RoleArg        IdentifierRole = "arg"
	RoleVar        IdentifierRole = "var"
	RoleClass      IdentifierRole = "class"
	RoleSubroutine IdentifierRole = "subroutine"
)

// Usage records whether an identifier occurrence declares a new binding or
// refers to an existing one.
type Usage string

const (
	Declared Usage = "declared"
	Used     Usage = "used"
)

// Keywords is the fixed vocabulary of the Jack language, in no particular
// order; membership in this set is what makes a lexeme a 'keyword' token
// rather than an 'identifier' one (category priority, spec §4.2 rule 1).
var Keywords = map[string]bool{
	"class": true, "constructor": true, "function": true, "method": true,
	"field": true, "static": true, "var": true, "int": true, "char": true,
	"boolean": true, "void": true, "true": true, "false": true, "null": true,
	"this": true, "let": true, "do": true, "if": true, "else": true,
	"while": true, "return": true,
}

// Symbols is the fixed set of single-character symbol tokens.
var Symbols = map[byte]bool{
	'{': true, '}': true, '(': true, ')': true, '[': true, ']': true,
	'.': true, ',': true, ';': true, '+': true, '-': true, '*': true,
	'/': true, '&': true, '|': true, '<': true, '>': true, '=': true,
	'~': true,
}

// KeywordConstants is the subset of keywords usable as a primary expression
// term (the grammar's 'keywordConstant').
var KeywordConstants = map[string]bool{
	"true": true, "false": true, "null": true, "this": true,
}
