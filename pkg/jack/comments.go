package jack

import "strings"

// Comment delimiters recognized by the source language: single-line, and
// block comments (which may themselves open with an extra leading '*'
// still matched by blockCommentOpen).
const (
	singleLineComment = "//"
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
)

// StripComments consumes raw source lines (no terminating newline) and
// returns the non-empty, trimmed logical lines with every comment removed.
// It is a stateful single pass carrying one flag, insideBlock, that survives
// across lines so a block comment spanning multiple lines is handled
// without look-ahead.
//
// A line that is or becomes empty after comment removal is dropped entirely,
// never emitted as a blank logical line.
func StripComments(lines []string) []string {
	out := make([]string, 0, len(lines))
	insideBlock := false

	for _, line := range lines {
		var stripped string
		stripped, insideBlock = stripLine(line, insideBlock)
		if stripped != "" {
			out = append(out, stripped)
		}
	}

	return out
}

// stripLine removes every comment from a single line, given whether a block
// comment opened on a prior line is still open. It returns the remainder
// (trimmed) and the updated insideBlock flag.
func stripLine(line string, insideBlock bool) (string, bool) {
	if insideBlock {
		end := strings.Index(line, blockCommentClose)
		if end == -1 {
			// The whole line is swallowed by the still-open block comment.
			return "", true
		}
		// Block closes partway through the line; recurse on the remainder
		// with insideBlock now false, since more comments may follow on the
		// same physical line.
		remainder := line[end+len(blockCommentClose):]
		return stripLine(remainder, false)
	}

	// Repeatedly strip the leftmost block comment on this line.
	for {
		start := strings.Index(line, blockCommentOpen)
		if start == -1 {
			break
		}

		rest := line[start+len(blockCommentOpen):]
		end := strings.Index(rest, blockCommentClose)
		if end == -1 {
			// Opens but never closes on this line: drop the rest of the line
			// and remember we're inside a block comment for the next one.
			line = line[:start]
			return strings.TrimSpace(line), true
		}

		// Opens and closes on this same line: delete the whole span and keep
		// scanning in case another comment follows.
		line = line[:start] + rest[end+len(blockCommentClose):]
	}

	// After block comments are resolved, a trailing single-line comment (if
	// any) truncates the rest of the line. '//' that was already inside a
	// block comment never reaches this point since it was deleted above.
	if idx := strings.Index(line, singleLineComment); idx != -1 {
		line = line[:idx]
	}

	return strings.TrimSpace(line), false
}
