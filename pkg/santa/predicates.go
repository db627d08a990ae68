package santa

// isBlockLambda reports whether fn's body is anything other than a single
// expression statement (several statements, none, or a lone
// return/break/comment) — the form that always keeps its braces and is
// never inlined. A non-empty block embeds a HardLine; an empty one prints
// as `{}`.
func isBlockLambda(fn *FunctionLit) bool {
	return len(fn.Body.Statements) != 1 || fn.Body.Statements[0].Kind != StmtExpression
}

// containsBlockLambda recursively reports whether expr contains a lambda
// for which isBlockLambda holds. Through isSimpleBody it is used to
// forbid inline forms — if/else branches, match arm bodies, section
// bodies — that would otherwise need to embed a newline outside of a
// Group that can legally break.
func containsBlockLambda(e Expr) bool {
	switch n := e.(type) {
	case nil:
		return false
	case *FunctionLit:
		if isBlockLambda(n) {
			return true
		}
		return programContainsBlockLambda(n.Body)
	case *CallExpr:
		if containsBlockLambda(n.Fun) {
			return true
		}
		for _, a := range n.Args {
			if containsBlockLambda(a) {
				return true
			}
		}
		return false
	case *PrefixExpr:
		return containsBlockLambda(n.Right)
	case *InfixExpr:
		return containsBlockLambda(n.Left) || containsBlockLambda(n.Right)
	case *IfExpr:
		return containsBlockLambda(n.Cond) || programContainsBlockLambda(n.Then) || programContainsBlockLambda(n.Else)
	case *MatchExpr:
		if containsBlockLambda(n.Subject) {
			return true
		}
		for _, c := range n.Cases {
			if containsBlockLambda(c.Guard) || programContainsBlockLambda(c.Body) {
				return true
			}
		}
		return false
	case *FunctionThread:
		if containsBlockLambda(n.Initial) {
			return true
		}
		for _, f := range n.Functions {
			if containsBlockLambda(f) {
				return true
			}
		}
		return false
	case *Composition:
		for _, f := range n.Functions {
			if containsBlockLambda(f) {
				return true
			}
		}
		return false
	case *ListLit:
		for _, el := range n.Elements {
			if containsBlockLambda(el) {
				return true
			}
		}
		return false
	case *SetLit:
		for _, el := range n.Elements {
			if containsBlockLambda(el) {
				return true
			}
		}
		return false
	case *DictLit:
		for _, entry := range n.Entries {
			if containsBlockLambda(entry.Key) || containsBlockLambda(entry.Value) {
				return true
			}
		}
		return false
	case *IndexExpr:
		return containsBlockLambda(n.Left) || containsBlockLambda(n.Index)
	case *SpreadExpr:
		return containsBlockLambda(n.Value)
	case *RangeExpr:
		return containsBlockLambda(n.From) || containsBlockLambda(n.To)
	case *BindingExpr:
		return containsBlockLambda(n.Value)
	default:
		return false
	}
}

func programContainsBlockLambda(p *Program) bool {
	if p == nil {
		return false
	}
	for _, s := range p.Statements {
		if s.Expr != nil && containsBlockLambda(s.Expr) {
			return true
		}
	}
	return false
}

// isMultilineExpression reports whether expr is inherently multiline:
// pipe chains and composition chains of length >= 2, match expressions,
// and multi-statement lambdas. It governs whether a
// return/break statement needs a blank separator from what precedes it.
func isMultilineExpression(e Expr) bool {
	switch n := e.(type) {
	case *FunctionThread:
		return len(n.Functions) >= 2
	case *Composition:
		return len(n.Functions) >= 2
	case *MatchExpr:
		return true
	case *FunctionLit:
		return isBlockLambda(n)
	default:
		return false
	}
}

// isSimpleBody reports whether stmt is a plain expression statement (or a
// single-statement block wrapping one) with no block lambda inside — the
// shape that is safe to print inline without embedding a HardLine.
func isSimpleBody(stmt *Stmt) bool {
	if stmt == nil {
		return false
	}
	switch stmt.Kind {
	case StmtExpression:
		return !containsBlockLambda(stmt.Expr)
	case StmtBlock:
		if len(stmt.Block.Statements) != 1 {
			return false
		}
		return isSimpleBody(stmt.Block.Statements[0])
	default:
		return false
	}
}

// isBindingPattern reports whether e is one of the pattern-shaped
// expression forms legal on the left of a binding or as a lambda
// parameter.
func isBindingPattern(e Expr) bool {
	switch e.(type) {
	case *Identifier, *Placeholder, *RestIdent, *ListPattern, *DictPattern:
		return true
	default:
		return false
	}
}
