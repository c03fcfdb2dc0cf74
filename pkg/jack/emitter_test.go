package jack_test

import (
	"strings"
	"testing"

	"its-hmny.dev/jack-analyzer/pkg/jack"
)

func TestToken_Render_Escaping(t *testing.T) {
	test := func(lexeme, expected string) {
		tok := jack.Token{Category: jack.StringConstant, Lexeme: lexeme}
		if got := tok.Render(); got != expected {
			t.Errorf("Render(%q): expected %q, got %q", lexeme, expected, got)
		}
	}

	test("<", "<stringConstant> &lt; </stringConstant>")
	test(">", "<stringConstant> &gt; </stringConstant>")
	test("&", "<stringConstant> &amp; </stringConstant>")
	test(`"`, "<stringConstant> &quot; </stringConstant>")
	test("a < b && c", "<stringConstant> a &lt; b &amp;&amp; c </stringConstant>")
}

func TestEmitter_NestingAndTokens(t *testing.T) {
	e := jack.NewEmitter()
	e.OpenTokens()
	e.Token(jack.Token{Category: jack.Keyword, Lexeme: "class"})
	e.Token(jack.Token{Category: jack.Identifier, Lexeme: "Main"})
	e.CloseTokens()

	output := e.String()
	for _, want := range []string{"<tokens>", "<keyword> class </keyword>", "<identifier> Main </identifier>", "</tokens>"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestEmitter_IdentifierAttributes(t *testing.T) {
	e := jack.NewEmitter()
	e.Identifier(jack.Token{Lexeme: "count"}, jack.RoleVar, jack.Declared, 3, true)
	e.Identifier(jack.Token{Lexeme: "Keyboard"}, jack.RoleClass, jack.Used, 0, false)

	output := e.String()
	if !strings.Contains(output, `<identifier category="var" index="3" usage="declared"> count </identifier>`) {
		t.Errorf("missing declared identifier line, got:\n%s", output)
	}
	if !strings.Contains(output, `<identifier category="class"> Keyboard </identifier>`) {
		t.Errorf("missing bare class-reference identifier line, got:\n%s", output)
	}
	if strings.Contains(output, `usage="used"> Keyboard </identifier>`) {
		t.Error("class reference should not carry index/usage attributes")
	}
}
