package santa

import "strings"

// LineWidth and indentSize are the printer's two tunables. Neither is
// exposed as a user-facing configuration option — there is exactly one
// way santa-lang source is formatted.
const (
	LineWidth = 100
	indentSize = 2
)

// blank buffer of spaces reused for indentation; pathological nesting is
// clamped to its length rather than growing without bound.
const maxIndentBuffer = 2048

var indentBlanks = strings.Repeat(" ", maxIndentBuffer)

type renderMode int

const (
	modeBreak renderMode = iota
	modeFlat
)

type workItem struct {
	indent int
	mode   renderMode
	doc    Doc
}

// Print renders a Doc to a string using an iterative work stack carrying
// (indent, mode, doc) triples, with Group the sole point where
// flat-vs-break is decided via a bounded measure_flat walk.
func Print(root Doc) string {
	var out strings.Builder
	column := 0

	stack := []workItem{{indent: 0, mode: modeBreak, doc: root}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch d := item.doc.(type) {
		case nilDoc:
			// nothing

		case textDoc:
			out.WriteString(string(d))
			column += len(d)

		case lineDoc:
			if item.mode == modeFlat {
				out.WriteByte(' ')
				column++
			} else {
				writeNewlineIndent(&out, item.indent)
				column = item.indent
			}

		case hardLineDoc:
			writeNewlineIndent(&out, item.indent)
			column = item.indent

		case blankLineDoc:
			out.WriteByte('\n')
			column = 0

		case *concatDoc:
			for i := len(d.parts) - 1; i >= 0; i-- {
				stack = append(stack, workItem{indent: item.indent, mode: item.mode, doc: d.parts[i]})
			}

		case *nestDoc:
			stack = append(stack, workItem{indent: item.indent + d.indent, mode: item.mode, doc: d.inner})

		case *ifBreakDoc:
			if item.mode == modeFlat {
				stack = append(stack, workItem{indent: item.indent, mode: item.mode, doc: d.flat})
			} else {
				stack = append(stack, workItem{indent: item.indent, mode: item.mode, doc: d.broken})
			}

		case *groupDoc:
			if item.mode == modeFlat {
				stack = append(stack, workItem{indent: item.indent, mode: modeFlat, doc: d.inner})
				continue
			}
			if fits(d.inner, LineWidth-column) {
				stack = append(stack, workItem{indent: item.indent, mode: modeFlat, doc: d.inner})
			} else {
				stack = append(stack, workItem{indent: item.indent, mode: modeBreak, doc: d.inner})
			}
		}
	}

	return out.String()
}

func writeNewlineIndent(out *strings.Builder, indent int) {
	out.WriteByte('\n')
	if indent <= 0 {
		return
	}
	if indent > maxIndentBuffer {
		indent = maxIndentBuffer
	}
	out.WriteString(indentBlanks[:indent])
}

// measureStackCap is a work-stack overflow safety cap for fits on
// pathologically deep documents.
const measureStackCap = 100000

// fits implements measure_flat: walk d as if rendered flat, summing
// widths, and fail (return false) if a HardLine/BlankLine is encountered,
// if the accumulated width exceeds the remaining budget, or if the walk
// itself overflows its safety cap.
func fits(d Doc, remaining int) bool {
	if remaining < 0 {
		return false
	}
	stack := []Doc{d}
	steps := 0
	for len(stack) > 0 {
		steps++
		if steps > measureStackCap {
			return false
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t := cur.(type) {
		case nilDoc:
			// nothing
		case textDoc:
			remaining -= len(t)
			if remaining < 0 {
				return false
			}
		case lineDoc:
			remaining--
			if remaining < 0 {
				return false
			}
		case hardLineDoc:
			return false
		case blankLineDoc:
			return false
		case *concatDoc:
			for i := len(t.parts) - 1; i >= 0; i-- {
				stack = append(stack, t.parts[i])
			}
		case *nestDoc:
			stack = append(stack, t.inner)
		case *ifBreakDoc:
			// Under the hypothetical flat measurement, IfBreak always takes
			// its flat branch — a Group measured flat renders every
			// descendant flat, including nested IfBreaks.
			stack = append(stack, t.flat)
		case *groupDoc:
			// A nested Group is transparent once its enclosing Group has
			// committed to flat mode: measure its inner document directly
			// rather than re-deciding.
			stack = append(stack, t.inner)
		}
	}
	return remaining >= 0
}
