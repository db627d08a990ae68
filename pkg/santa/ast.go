package santa

// SourceLocation pins an AST node to a place in the original source, used
// only for parse-error reporting — the printer never consults it for
// layout decisions, and trailing comments are attached by token line.
type SourceLocation struct {
	Line   int
	Column int
}

// Program is an ordered list of top-level statements, or the body of a
// Section.
type Program struct {
	Statements []*Stmt
}

// StmtKind enumerates the statement kinds.
type StmtKind int

const (
	StmtExpression StmtKind = iota
	StmtReturn
	StmtBreak
	StmtComment
	StmtSection
	StmtBlock
)

// Stmt is a single statement. Which fields are meaningful depends on Kind:
//
//	StmtExpression, StmtReturn, StmtBreak -> Expr
//	StmtComment                           -> Text
//	StmtSection                           -> Section
//	StmtBlock                             -> Block
type Stmt struct {
	Kind    StmtKind
	Expr    Expr
	Text    string
	Section *Section
	Block   *Program

	PrecededByBlankLine bool
	TrailingComment     string // raw comment text including leading '#', "" if none
	Loc                 SourceLocation
}

// IsBinding reports whether the statement is a let/let-mut/assign
// expression statement — such statements can never be an implicit return
// and never get a semicolon appended ahead of one.
func (s *Stmt) IsBinding() bool {
	if s.Kind != StmtExpression {
		return false
	}
	b, ok := s.Expr.(*BindingExpr)
	return ok && b != nil
}

// Section is a named top-level puzzle block: `name: body`, optionally
// preceded by `@attribute` lines.
type Section struct {
	Name  string
	Attrs []string
	Body  *Program
	Loc   SourceLocation
}

// Expr is the closed set of expression kinds. Dispatch is a
// type switch in the builder and in the handful of predicate helpers —
// there is no virtual "ToDoc" method on the interface itself, matching the
// exhaustive-pattern-match style called out as idiomatic for this sum type.
type Expr interface {
	exprNode()
}

func (*IntegerLit) exprNode()    {}
func (*DecimalLit) exprNode()    {}
func (*StringLit) exprNode()     {}
func (*BoolLit) exprNode()       {}
func (*NilLit) exprNode()        {}
func (*Placeholder) exprNode()   {}
func (*Identifier) exprNode()    {}
func (*RestIdent) exprNode()     {}
func (*OperatorRef) exprNode()   {}
func (*BindingExpr) exprNode()   {}
func (*ListLit) exprNode()       {}
func (*SetLit) exprNode()        {}
func (*DictLit) exprNode()       {}
func (*DictEntry) exprNode()     {}
func (*RangeExpr) exprNode()     {}
func (*FunctionLit) exprNode()   {}
func (*CallExpr) exprNode()      {}
func (*PrefixExpr) exprNode()    {}
func (*InfixExpr) exprNode()     {}
func (*IfExpr) exprNode()        {}
func (*MatchExpr) exprNode()     {}
func (*FunctionThread) exprNode() {}
func (*Composition) exprNode()   {}
func (*IndexExpr) exprNode()     {}
func (*SpreadExpr) exprNode()    {}
func (*ListPattern) exprNode()   {}
func (*DictPattern) exprNode()   {}
