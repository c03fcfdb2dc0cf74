package jack_test

import (
	"reflect"
	"testing"

	"its-hmny.dev/jack-analyzer/pkg/jack"
)

func TestStripComments(t *testing.T) {
	test := func(name string, lines, expected []string) {
		t.Run(name, func(t *testing.T) {
			got := jack.StripComments(lines)
			if !reflect.DeepEqual(got, expected) {
				t.Errorf("expected %#v, got %#v", expected, got)
			}
		})
	}

	test("single line comment to end of line",
		[]string{"let x = 1; // assign x"},
		[]string{"let x = 1;"})

	test("whole-line single comment is dropped",
		[]string{"// nothing to see here", "let x = 1;"},
		[]string{"let x = 1;"})

	test("block comment opens and closes on one line",
		[]string{"let x /* inline */ = 1;"},
		[]string{"let x  = 1;"})

	test("multiple block comments on one line",
		[]string{"let /*a*/ x /*b*/ = 1;"},
		[]string{"let  x  = 1;"})

	// A block comment spanning lines collapses two lines into one logical
	// line.
	test("block comment spans lines",
		[]string{"/* a", "b */ var int i;"},
		[]string{"var int i;"})

	test("whole line is a block comment and is dropped",
		[]string{"/* entire line */"},
		[]string{})

	test("line emptied by a comment is dropped",
		[]string{"   // just whitespace then a comment"},
		[]string{})

	test("'//' inside a live block comment is inert",
		[]string{"/* still // open", "closes */"},
		[]string{})
}

func TestStripComments_Idempotent(t *testing.T) {
	lines := []string{
		"/* header",
		"   block */ class Main {",
		"  function void main() { // entry point",
		"    do Output.printString(\"hi\");",
		"  }",
		"}",
	}

	once := jack.StripComments(lines)
	twice := jack.StripComments(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("stripping already-stripped lines changed the output:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}
