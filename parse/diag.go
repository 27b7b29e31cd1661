package parse

import (
	"fmt"
	"strings"

	"dbgexpr/lex"
)

// formatDiagnostics renders a three-line diagnostic:
//
//	<file:line:col>: <message>
//	<source line containing the location>
//	<spaces>^
//
// When the location points past the end of the line (the parser expected
// something but got EOF), the source-line slot is right-padded so the caret
// can sit beyond it. Both trailing lines come out equally wide.
func formatDiagnostics(src, message string, pos lex.FilePos) string {
	off := pos.Off
	if off > len(src) {
		off = len(src)
	}

	lineStart := strings.LastIndexByte(src[:off], '\n') + 1
	lineEnd := strings.IndexByte(src[off:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += off
	}
	line := src[lineStart:lineEnd]

	arrow := pos.Col
	exprRpad := arrow - len(line)
	if exprRpad < 0 {
		exprRpad = 0
	}
	arrowRpad := len(line) - arrow
	if arrowRpad < 0 {
		arrowRpad = 0
	}

	return fmt.Sprintf("%s: %s\n%s%s\n%s^%s",
		pos, message,
		line, strings.Repeat(" ", exprRpad),
		strings.Repeat(" ", arrow-1), strings.Repeat(" ", arrowRpad))
}
