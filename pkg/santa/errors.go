package santa

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ParseError reports a syntax error at a specific source location: a
// highlighted excerpt of the offending line and its immediate context,
// suitable for direct CLI presentation.
type ParseError struct {
	Loc    SourceLocation
	Msg    string
	Source []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Loc.Line, e.Loc.Column, e.Msg)
}

// Unwrap exposes ErrParse so callers can use errors.Is(err, santa.ErrParse)
// without depending on the concrete *ParseError type.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Highlight renders the error message followed by a few lines of
// surrounding source and a caret under the offending column.
func (e *ParseError) Highlight() string {
	lines := strings.Split(string(e.Source), "\n")
	if e.Loc.Line < 1 || e.Loc.Line > len(lines) {
		return e.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Msg)
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Loc.Line, e.Loc.Column)

	start := max(1, e.Loc.Line-2)
	end := min(len(lines), e.Loc.Line+2)
	for i := start; i <= end; i++ {
		fmt.Fprintf(&b, " %s | %s\n", padLeft(fmt.Sprintf("%d", i), 3), lines[i-1])
		if i == e.Loc.Line {
			col := e.Loc.Column
			if col < 1 {
				col = 1
			}
			b.WriteString(strings.Repeat(" ", 1+3+3+col-1))
			b.WriteString("^\n")
		}
	}
	return b.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// ErrParse is the sentinel every *ParseError wraps, so callers can test for
// a parse failure without depending on the concrete error type.
var ErrParse = errors.New("santa: parse error")

// ErrOutOfMemory is the sentinel for the out-of-memory error kind.
// Format and IsFormatted never return it: formatting uses ordinary
// GC-managed heap allocation rather than an explicit arena, and a failed
// allocation ends the process instead of surfacing as an error.
var ErrOutOfMemory = errors.New("out of memory while formatting")
