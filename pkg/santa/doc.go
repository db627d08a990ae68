package santa

// Doc is the document algebra, adapted from the
// Wadler–Lindig pretty-printing paper (see
// https://homepages.inf.ed.ac.uk/wadler/papers/prettier/prettier.pdf and
// cockroachdb's `pretty` package, which implements the same algebra).
// It is a closed tagged variant, dispatched in the Printer via a type
// switch rather than a virtual method.
type Doc interface {
	isDoc()
}

type nilDoc struct{}

func (nilDoc) isDoc() {}

// Nil is the empty document.
var Nil Doc = nilDoc{}

type textDoc string

func (textDoc) isDoc() {}

// Text wraps a literal string. Its printed width is its byte length —
// callers are responsible for ensuring it is ASCII outside of already-
// escaped string-literal content.
func Text(s string) Doc {
	if s == "" {
		return Nil
	}
	return textDoc(s)
}

type lineDoc struct{}

func (lineDoc) isDoc() {}

// Line is a soft line: a space in flat mode, newline+indent in break mode.
var Line Doc = lineDoc{}

type hardLineDoc struct{}

func (hardLineDoc) isDoc() {}

// HardLine always renders as newline+indent, and forces any enclosing
// Group to break.
var HardLine Doc = hardLineDoc{}

type blankLineDoc struct{}

func (blankLineDoc) isDoc() {}

// BlankLine always renders as a bare newline with no indent — it is how a
// wholly empty separator line is produced without trailing whitespace.
var BlankLine Doc = blankLineDoc{}

type concatDoc struct {
	parts []Doc
}

func (*concatDoc) isDoc() {}

// Concat concatenates documents in order. Nested Concats are spliced and
// Nils dropped at construction time — a pure optimization with no
// semantic effect.
func Concat(ds ...Doc) Doc {
	out := make([]Doc, 0, len(ds))
	for _, d := range ds {
		switch t := d.(type) {
		case nil:
			continue
		case nilDoc:
			continue
		case *concatDoc:
			out = append(out, t.parts...)
		default:
			out = append(out, d)
		}
	}
	switch len(out) {
	case 0:
		return Nil
	case 1:
		return out[0]
	default:
		return &concatDoc{parts: out}
	}
}

type groupDoc struct {
	inner Doc
}

func (*groupDoc) isDoc() {}

// Group attempts to render inner flat; if it doesn't fit in the remaining
// width of the current line, it renders in break mode instead. Group is
// the only place a render-mode decision is made. Group(Group(d)) collapses
// to Group(d) — grouping an already-grouped document changes nothing.
func Group(inner Doc) Doc {
	if g, ok := inner.(*groupDoc); ok {
		return g
	}
	return &groupDoc{inner: inner}
}

type nestDoc struct {
	indent int
	inner  Doc
}

func (*nestDoc) isDoc() {}

// Nest increases the current indent by n while rendering inner.
// Nest(a, Nest(b, d)) collapses to Nest(a+b, d).
func Nest(n int, inner Doc) Doc {
	if n == 0 {
		return inner
	}
	if nd, ok := inner.(*nestDoc); ok {
		return &nestDoc{indent: n + nd.indent, inner: nd.inner}
	}
	return &nestDoc{indent: n, inner: inner}
}

type ifBreakDoc struct {
	broken, flat Doc
}

func (*ifBreakDoc) isDoc() {}

// IfBreak renders broken under break mode and flat under flat mode.
func IfBreak(broken, flat Doc) Doc {
	return &ifBreakDoc{broken: broken, flat: flat}
}

// SoftLine is a Line that disappears entirely in flat mode rather than
// becoming a space: if_break(hard_line, nil).
func SoftLine() Doc {
	return IfBreak(HardLine, Nil)
}

// Join concatenates ds with sep inserted between each pair.
func Join(sep Doc, ds ...Doc) Doc {
	parts := make([]Doc, 0, len(ds)*2)
	for i, d := range ds {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// Bracketed builds `open elems close`, flowing elements one-per-line when
// the group breaks, with a trailing comma after the last element only if
// trailingComma is set:
//
//	group( open · nest(2, soft_line · join(elems, sep) · trailing) · soft_line · close )
func Bracketed(open string, elems []Doc, close string, trailingComma bool) Doc {
	if len(elems) == 0 {
		return Text(open + close)
	}
	sep := IfBreak(Concat(Text(","), HardLine), Text(", "))
	trailing := Doc(Nil)
	if trailingComma {
		trailing = IfBreak(Text(","), Nil)
	}
	return Group(Concat(
		Text(open),
		Nest(indentSize, Concat(SoftLine(), Join(sep, elems...), trailing)),
		SoftLine(),
		Text(close),
	))
}
