package jack

import "strings"

// Token is a pair (category, lexeme), kept unescaped internally; XML
// escaping is a presentation concern applied exactly once, at Render time.
//
// Line is 1-based and refers to the stripped logical line the token was
// scanned from, used to annotate lexical/syntactic errors.
type Token struct {
	Category Category
	Lexeme   string
	Line     int
}

// Render returns the token's textual form with XML escaping applied, e.g.
// "<keyword> class </keyword>". Internal Lexeme values are never escaped.
func (t Token) Render() string {
	return "<" + string(t.Category) + "> " + escapeXML(t.Lexeme) + " </" + string(t.Category) + ">"
}

// escapeXML applies the four substitutions the token-stream and parse-tree
// artifacts both require: '<', '>', '&', '"'.
func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}

// IsOp reports whether lexeme is one of the binary operator symbols.
func IsOp(lexeme string) bool {
	switch lexeme {
	case "+", "-", "*", "/", "&", "|", "<", ">", "=":
		return true
	}
	return false
}

// IsUnaryOp reports whether lexeme is one of the two unary operator symbols.
func IsUnaryOp(lexeme string) bool {
	return lexeme == "-" || lexeme == "~"
}
