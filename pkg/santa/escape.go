package santa

import "strings"

// escapeString implements the string-escaping policy: a
// string chooses literal-newline mode when it has more than three
// interior newlines or is longer than fifty bytes, and escape mode
// otherwise. Both modes convert the same set of control characters; the
// only difference is whether `\n` is left as a literal newline or written
// as the two-character escape `\n`.
//
// The threshold combination is part of the contract, not an
// approximation: Format and IsFormatted must move together if it ever
// changes, or idempotence breaks.
func escapeString(s string) string {
	newlines := strings.Count(s, "\n")
	literalNewlines := newlines > 3 || len(s) > 50

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			if literalNewlines {
				b.WriteByte('\n')
			} else {
				b.WriteString(`\n`)
			}
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
