package jack

import (
	"fmt"
	"strings"

	"its-hmny.dev/jack-analyzer/pkg/utils"
)

// Emitter accumulates output lines in a growable in-memory buffer owned by
// the parser and flushed by the caller only once a whole class has parsed
// successfully, so a failed parse never leaves a partial file behind.
// Indentation is cosmetic only - two spaces per nesting level - and is not
// part of any testable property.
//
// openTags mirrors the parser's own call-stack discipline: every Open
// pushes the tag it started, every Close pops and checks it against the
// tag the caller claims to be closing, catching a mismatched Open/Close
// pair - a programming error in this package, never a user-facing one -
// the moment it happens rather than producing silently malformed XML.
type Emitter struct {
	lines    []string
	indent   int
	openTags utils.Stack[string]
}

// NewEmitter returns an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// OpenTokens / CloseTokens wrap the token-stream artifact in '<tokens>' /
// '</tokens>'.
func (e *Emitter) OpenTokens() { e.Open("tokens") }
func (e *Emitter) CloseTokens() { e.Close("tokens") }

// Token appends one rendered token line, used verbatim by the token-stream
// artifact and for non-identifier leaves of the parse tree.
func (e *Emitter) Token(t Token) {
	e.raw(t.Render())
}

// Open starts a named non-terminal element (e.g. "class", "expression").
func (e *Emitter) Open(tag string) {
	e.raw("<" + tag + ">")
	e.openTags.Push(tag)
	e.indent++
}

// Close ends the most recently opened named non-terminal element. It
// panics if tag doesn't match the top of the open-tag stack or if nothing
// is open - both indicate a bug in this package's own Open/Close pairing,
// not a malformed input program.
func (e *Emitter) Close(tag string) {
	top, err := e.openTags.Pop()
	if err != nil || top != tag {
		panic(fmt.Sprintf("emitter: mismatched Close(%q), expected to close %q (stack error: %v)", tag, top, err))
	}
	e.indent--
	e.raw("</" + tag + ">")
}

// Identifier appends an identifier leaf annotated with its resolved
// semantic role. hasIndex is false for 'class' and 'subroutine' references,
// which never carry an index or usage attribute.
func (e *Emitter) Identifier(t Token, role IdentifierRole, usage Usage, index int, hasIndex bool) {
	var b strings.Builder
	fmt.Fprintf(&b, `<identifier category="%s"`, role)
	if hasIndex {
		fmt.Fprintf(&b, ` index="%d" usage="%s"`, index, usage)
	}
	fmt.Fprintf(&b, `> %s </identifier>`, escapeXML(t.Lexeme))
	e.raw(b.String())
}

func (e *Emitter) raw(line string) {
	e.lines = append(e.lines, strings.Repeat("  ", max(e.indent, 0))+line)
}

// Lines returns the accumulated output lines, one per element, in source
// order, newline-joined by the caller. The returned slice is owned by the
// caller.
func (e *Emitter) Lines() []string {
	out := make([]string, len(e.lines))
	copy(out, e.lines)
	return out
}

// String renders the full buffer as a single newline-terminated blob,
// suitable for writing straight to the output file.
func (e *Emitter) String() string {
	if len(e.lines) == 0 {
		return ""
	}
	return strings.Join(e.lines, "\n") + "\n"
}
