package santa

// ListPattern destructures a list: `[p1, p2, ..rest]`. Elements are
// Identifier/Placeholder/nested patterns; Rest, if present, is a
// RestIdent.
type ListPattern struct {
	Elements []Expr
	Rest     Expr // nil if there is no rest binding
	Loc      SourceLocation
}

// DictPattern destructures a dictionary: `#{ident, key: value, ..rest}`.
type DictPattern struct {
	Entries []*DictEntry
	Rest    Expr // nil if there is no rest binding
	Loc     SourceLocation
}
