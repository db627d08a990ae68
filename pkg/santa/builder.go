package santa

// This file is the AST-to-Doc builder: it encodes every santa-lang
// formatting rule as a function from an AST node to a Doc. The printer
// (printer.go) and Doc algebra (doc.go) know nothing about santa-lang;
// all of the language-specific decisions — when a lambda inlines, when a
// pipe chain force-breaks, how dictionary shorthand rewrites — live here.

// BuildProgram is the builder's single entry point: it joins top-level
// statements with an always-blank separator, appends each statement's
// trailing comment, and ends with one trailing HardLine.
func BuildProgram(p *Program) Doc {
	if p == nil || len(p.Statements) == 0 {
		return Nil
	}
	parts := make([]Doc, 0, len(p.Statements)*3)
	for i, stmt := range p.Statements {
		if i > 0 {
			parts = append(parts, HardLine, HardLine)
		}
		parts = append(parts, buildTopLevelStmt(stmt))
	}
	parts = append(parts, HardLine)
	return Concat(parts...)
}

func buildTopLevelStmt(stmt *Stmt) Doc {
	d := buildStmtContent(stmt)
	if stmt.TrailingComment != "" {
		d = Concat(d, Text(" "), Text(stmt.TrailingComment))
	}
	return d
}

// buildStmtContent renders a statement's own content, with no separator
// or trailing-comment logic attached — that is the caller's job
// (buildTopLevelStmt or buildBlock), since the two contexts join
// statements differently.
func buildStmtContent(stmt *Stmt) Doc {
	switch stmt.Kind {
	case StmtExpression:
		return buildExpr(stmt.Expr)
	case StmtReturn:
		if stmt.Expr == nil {
			return Text("return")
		}
		return Concat(Text("return "), buildExpr(stmt.Expr))
	case StmtBreak:
		if stmt.Expr == nil {
			return Text("break")
		}
		return Concat(Text("break "), buildExpr(stmt.Expr))
	case StmtComment:
		return Text(stmt.Text)
	case StmtSection:
		return buildSection(stmt.Section)
	case StmtBlock:
		return braceBlock(stmt.Block)
	default:
		return Nil
	}
}

// buildBlock joins the statements of a lambda body, if/else body, match
// arm, or section body. Within a block, statements are joined by one
// HardLine except where a blank separator must appear: either the source
// had a blank line before the statement, or the statement is a multiline
// return/break that is the block's implicit return. It also performs the
// implicit-return semicolon insertion described below.
func buildBlock(p *Program) Doc {
	if p == nil || len(p.Statements) == 0 {
		return Nil
	}
	stmts := p.Statements
	semiIdx := implicitReturnSemicolonTarget(stmts)
	lastIdx := lastNonCommentIndex(stmts)

	parts := make([]Doc, 0, len(stmts)*2)
	for i, s := range stmts {
		d := buildStmtContent(s)
		if i == semiIdx {
			d = Concat(d, Text(";"))
		}
		if s.TrailingComment != "" {
			d = Concat(d, Text(" "), Text(s.TrailingComment))
		}

		if i > 0 {
			blank := s.PrecededByBlankLine
			if i == lastIdx && (s.Kind == StmtReturn || s.Kind == StmtBreak) && isMultilineExpression(s.Expr) {
				blank = true
			}
			if blank {
				parts = append(parts, BlankLine, HardLine)
			} else {
				parts = append(parts, HardLine)
			}
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// implicitReturnSemicolonTarget finds the index of the statement that
// must have a literal ";" appended to disambiguate the implicit return
// that follows it: the last non-comment statement is an implicit-return
// expression (not a binding), so the builder walks backwards past
// trailing comments to find the statement immediately preceding it.
// Returns -1 if no semicolon is needed.
func implicitReturnSemicolonTarget(stmts []*Stmt) int {
	lastIdx := lastNonCommentIndex(stmts)
	if lastIdx < 0 {
		return -1
	}
	last := stmts[lastIdx]
	if last.Kind != StmtExpression || last.IsBinding() {
		return -1
	}
	j := lastIdx - 1
	for j >= 0 && stmts[j].Kind == StmtComment {
		j--
	}
	if j < 0 {
		return -1
	}
	return j
}

func lastNonCommentIndex(stmts []*Stmt) int {
	for i := len(stmts) - 1; i >= 0; i-- {
		if stmts[i].Kind != StmtComment {
			return i
		}
	}
	return -1
}

// braceBlock renders a `{` on the opening line, the block's statements
// indented two spaces, and a closing `}` on its own line. An empty block
// has no statements to indent, so it collapses to `{}` rather than
// printing a HardLine with nothing after it — indented whitespace with no
// following content on its own line.
func braceBlock(p *Program) Doc {
	if p == nil || len(p.Statements) == 0 {
		return Text("{}")
	}
	return Concat(
		Text("{"),
		Nest(indentSize, Concat(HardLine, buildBlock(p))),
		HardLine,
		Text("}"),
	)
}

// inlineBody renders a single-statement program unwrapped inside braces:
// `{ expr }`. Used where braces are always required regardless of body
// shape (if/else, match arms). Callers are responsible for checking
// isSimpleBody first.
func inlineBody(p *Program) Doc {
	stmt := p.Statements[0]
	d := buildStmtContent(stmt)
	if stmt.TrailingComment != "" {
		d = Concat(d, Text(" "), Text(stmt.TrailingComment))
	}
	return Concat(Text("{ "), d, Text(" }"))
}

// inlineSectionBody renders a single-statement program bare, with no
// surrounding braces: `expr`. Used for ordinary (non part_one/part_two)
// sections, where a simple body never needs braces at all.
func inlineSectionBody(p *Program) Doc {
	stmt := p.Statements[0]
	d := buildStmtContent(stmt)
	if stmt.TrailingComment != "" {
		d = Concat(d, Text(" "), Text(stmt.TrailingComment))
	}
	return d
}

func isSimpleBodyProgram(p *Program) bool {
	return p != nil && len(p.Statements) == 1 && isSimpleBody(p.Statements[0])
}

// buildSection renders a top-level puzzle section: attributes each on
// their own line, then `name: body`. Sections named
// part_one/part_two always keep braces; otherwise a single simple-body
// expression is inlined bare, with no braces at all.
func buildSection(sec *Section) Doc {
	parts := make([]Doc, 0, len(sec.Attrs)+2)
	for _, a := range sec.Attrs {
		parts = append(parts, Text("@"+a), HardLine)
	}
	parts = append(parts, Text(sec.Name+": "))

	forcedBraces := sec.Name == "part_one" || sec.Name == "part_two"
	if !forcedBraces && isSimpleBodyProgram(sec.Body) {
		parts = append(parts, inlineSectionBody(sec.Body))
	} else {
		parts = append(parts, braceBlock(sec.Body))
	}
	return Concat(parts...)
}

// buildExpr dispatches over the closed Expr sum type via an exhaustive
// type switch — the natural representation for a closed variant.
func buildExpr(e Expr) Doc {
	switch n := e.(type) {
	case *IntegerLit:
		return Text(n.Raw)
	case *DecimalLit:
		return Text(n.Raw)
	case *StringLit:
		return Text(escapeString(n.Value))
	case *BoolLit:
		if n.Value {
			return Text("true")
		}
		return Text("false")
	case *NilLit:
		return Text("nil")
	case *Placeholder:
		return Text("_")
	case *Identifier:
		return Text(n.Name)
	case *RestIdent:
		return Concat(Text(".."), Text(n.Name))
	case *OperatorRef:
		return Text(n.Op)
	case *BindingExpr:
		return buildBindingExpr(n)
	case *ListLit:
		return Bracketed("[", buildExprs(n.Elements), "]", false)
	case *SetLit:
		return Bracketed("{", buildExprs(n.Elements), "}", false)
	case *DictLit:
		entries := make([]Doc, len(n.Entries))
		for i, entry := range n.Entries {
			entries[i] = buildDictLitEntry(entry)
		}
		return Bracketed("#{", entries, "}", false)
	case *DictEntry:
		return buildDictLitEntry(n)
	case *RangeExpr:
		return buildRangeExpr(n)
	case *FunctionLit:
		return buildFunctionLit(n)
	case *CallExpr:
		return buildCallExpr(n)
	case *PrefixExpr:
		return buildPrefixExpr(n)
	case *InfixExpr:
		return buildInfixExpr(n)
	case *IfExpr:
		return buildIfExpr(n)
	case *MatchExpr:
		return buildMatchExpr(n)
	case *FunctionThread:
		return buildFunctionThread(n)
	case *Composition:
		return buildComposition(n)
	case *IndexExpr:
		return Concat(buildExpr(n.Left), Text("["), buildExpr(n.Index), Text("]"))
	case *SpreadExpr:
		return Concat(Text(".."), buildExpr(n.Value))
	case *ListPattern:
		return buildListPattern(n)
	case *DictPattern:
		return buildDictPattern(n)
	default:
		return Nil
	}
}

func buildExprs(es []Expr) []Doc {
	ds := make([]Doc, len(es))
	for i, e := range es {
		ds[i] = buildExpr(e)
	}
	return ds
}

func buildBindingExpr(n *BindingExpr) Doc {
	var prefix string
	switch n.Kind {
	case BindLet:
		prefix = "let "
	case BindLetMut:
		prefix = "let mut "
	case BindAssign:
		prefix = ""
	}
	return Concat(Text(prefix), buildExpr(n.Pattern), Text(" = "), buildExpr(n.Value))
}

// buildDictLitEntry applies the always-on shorthand rewrite: a string
// key byte-equal to the value's identifier name prints as the bare
// identifier.
func buildDictLitEntry(entry *DictEntry) Doc {
	if strKey, ok := entry.Key.(*StringLit); ok {
		if ident, ok2 := entry.Value.(*Identifier); ok2 && strKey.Value == ident.Name {
			return Text(ident.Name)
		}
	}
	return Concat(buildExpr(entry.Key), Text(": "), buildExpr(entry.Value))
}

// buildDictPatternEntry applies the pattern-position shorthand rule:
// triggered when an identifier stands alone as both key and value.
func buildDictPatternEntry(entry *DictEntry) Doc {
	if keyIdent, ok := entry.Key.(*Identifier); ok {
		if valIdent, ok2 := entry.Value.(*Identifier); ok2 && keyIdent.Name == valIdent.Name {
			return Text(valIdent.Name)
		}
	}
	return Concat(buildExpr(entry.Key), Text(": "), buildExpr(entry.Value))
}

func buildRangeExpr(n *RangeExpr) Doc {
	from := buildExpr(n.From)
	switch n.Kind {
	case RangeInclusive:
		return Concat(from, Text("..="), buildExpr(n.To))
	case RangeUnbounded:
		return Concat(from, Text(".."))
	default:
		return Concat(from, Text(".."), buildExpr(n.To))
	}
}

// buildFunctionLit renders a lambda: `|params| body`. A single-expression
// body unwraps to the inline form unless it's a set/dictionary literal or
// has a pipe/composition at its head — those keep braces to avoid
// ambiguity and keep multi-line chains readable.
func buildFunctionLit(fn *FunctionLit) Doc {
	header := Concat(Text("|"), Join(Text(", "), buildExprs(fn.Params)...), Text("| "))

	if !isBlockLambda(fn) {
		stmt := fn.Body.Statements[0]
		if !keepsLambdaBraces(stmt.Expr) {
			body := buildExpr(stmt.Expr)
			if stmt.TrailingComment != "" {
				body = Concat(body, Text(" "), Text(stmt.TrailingComment))
			}
			return Concat(header, body)
		}
	}
	return Concat(header, braceBlock(fn.Body))
}

func keepsLambdaBraces(e Expr) bool {
	switch e.(type) {
	case *SetLit, *DictLit, *FunctionThread, *Composition:
		return true
	default:
		return false
	}
}

// forceBlockLambda renders a lambda unconditionally in block form,
// ignoring the single-expression inline rule — used for non-last pipe
// elements and for the trailing-closure layout's block candidate.
func forceBlockLambda(fn *FunctionLit) Doc {
	header := Concat(Text("|"), Join(Text(", "), buildExprs(fn.Params)...), Text("| "))
	return Concat(header, braceBlock(fn.Body))
}

// buildCallExpr renders `f(a1, ..., an)`, special-casing a trailing
// lambda argument via the trailing-closure layout below.
func buildCallExpr(n *CallExpr) Doc {
	if len(n.Args) > 0 {
		if fnLit, ok := n.Args[len(n.Args)-1].(*FunctionLit); ok {
			return buildTrailingClosureCall(n, fnLit)
		}
	}
	return Concat(buildExpr(n.Fun), Bracketed("(", buildExprs(n.Args), ")", false))
}

func buildTrailingClosureCall(n *CallExpr, fnLit *FunctionLit) Doc {
	otherArgs := n.Args[:len(n.Args)-1]

	inline := Concat(buildExpr(n.Fun), Bracketed("(", buildExprs(n.Args), ")", false))

	var trailing Doc
	lambdaBlock := forceBlockLambda(fnLit)
	if len(otherArgs) == 0 {
		trailing = Concat(buildExpr(n.Fun), Text(" "), lambdaBlock)
	} else {
		trailing = Concat(
			buildExpr(n.Fun), Text("("),
			Join(Text(", "), buildExprs(otherArgs)...),
			Text(") "), lambdaBlock,
		)
	}

	if isBlockLambda(fnLit) {
		// Multi-statement lambda: trailing block form unconditionally, no group.
		return trailing
	}
	return Group(IfBreak(trailing, inline))
}

func buildPrefixExpr(n *PrefixExpr) Doc {
	right := buildExpr(n.Right)
	if needsPrefixParens(n.Right) {
		right = Concat(Text("("), right, Text(")"))
	}
	return Concat(Text(n.Op), right)
}

func buildInfixExpr(n *InfixExpr) Doc {
	if n.Backtick {
		left := wrapIfNeeded(n.Left, needsLeftParens(n.Left, precProduct))
		right := wrapIfNeeded(n.Right, needsRightParens(n.Right, precProduct))
		return Group(Concat(left, Text(" `"), Text(n.Op), Text("` "), right))
	}
	prec := infixPrecedence[n.Op]
	left := wrapIfNeeded(n.Left, needsLeftParens(n.Left, prec))
	right := wrapIfNeeded(n.Right, needsRightParens(n.Right, prec))
	return Group(Concat(left, Text(" "), Text(n.Op), Text(" "), right))
}

func wrapIfNeeded(e Expr, wrap bool) Doc {
	d := buildExpr(e)
	if wrap {
		return Concat(Text("("), d, Text(")"))
	}
	return d
}

// buildIfExpr produces two candidates — inline and multiline — combined
// via group(if_break(multiline, inline)). The inline
// candidate is automatically rejected by the printer whenever it embeds a
// HardLine (e.g. from a block lambda in the condition or body), because
// the Group's flat-fit measurement fails on any HardLine it encounters.
func buildIfExpr(n *IfExpr) Doc {
	condDoc := buildExpr(n.Cond)

	inlineThen := inlineOrBlock(n.Then, inlineBody)
	multilineThen := braceBlock(n.Then)

	inline := Concat(Text("if "), condDoc, Text(" "), inlineThen)
	multiline := Concat(Text("if "), condDoc, Text(" "), multilineThen)

	if n.Else != nil {
		inline = Concat(inline, Text(" else "), inlineOrBlock(n.Else, inlineBody))
		multiline = Concat(multiline, Text(" else "), braceBlock(n.Else))
	}

	return Group(IfBreak(multiline, inline))
}

// inlineOrBlock renders p inline when it is a simple single-statement
// body, else falls back to the full brace block — used for the "inline"
// candidate of if/else, where a complex branch can't be inlined at all.
func inlineOrBlock(p *Program, inliner func(*Program) Doc) Doc {
	if isSimpleBodyProgram(p) {
		return inliner(p)
	}
	return braceBlock(p)
}

func buildMatchExpr(n *MatchExpr) Doc {
	cases := make([]Doc, len(n.Cases))
	for i, c := range n.Cases {
		cases[i] = buildMatchCase(c)
	}
	return Concat(
		Text("match "), buildExpr(n.Subject), Text(" {"),
		Nest(indentSize, Concat(HardLine, Join(HardLine, cases...))),
		HardLine, Text("}"),
	)
}

func buildMatchCase(c *MatchCase) Doc {
	parts := []Doc{buildExpr(c.Pattern)}
	if c.Guard != nil {
		parts = append(parts, Text(" if "), buildExpr(c.Guard))
	}
	parts = append(parts, Text(" "))
	if isSimpleBodyProgram(c.Body) {
		parts = append(parts, inlineBody(c.Body))
	} else {
		parts = append(parts, braceBlock(c.Body))
	}
	if c.TrailingComment != "" {
		parts = append(parts, Text(" "), Text(c.TrailingComment))
	}
	return Concat(parts...)
}

// buildFunctionThread renders a pipe chain. A single-element
// chain defers to a trailing-closure call if that's what the element is;
// otherwise it's a soft group that inlines when it fits. A chain of two
// or more elements always force-breaks, one `|> f` per line.
func buildFunctionThread(n *FunctionThread) Doc {
	initial := buildExpr(n.Initial)

	if len(n.Functions) == 1 {
		f := n.Functions[0]
		if call, ok := f.(*CallExpr); ok && len(call.Args) > 0 {
			if fnLit, ok2 := call.Args[len(call.Args)-1].(*FunctionLit); ok2 {
				callDoc := buildTrailingClosureCall(call, fnLit)
				return Group(Concat(initial, Nest(indentSize, Concat(Line, Text("|> "), callDoc))))
			}
		}
		return Group(Concat(initial, Nest(indentSize, Concat(Line, Text("|> "), buildExpr(f)))))
	}

	parts := make([]Doc, 0, len(n.Functions)*3)
	for i, f := range n.Functions {
		isLast := i == len(n.Functions)-1
		parts = append(parts, HardLine, Text("|> "), buildPipeElement(f, isLast))
	}
	return Concat(initial, Nest(indentSize, Concat(parts...)))
}

func buildPipeElement(f Expr, isLast bool) Doc {
	if fnLit, ok := f.(*FunctionLit); ok && !isLast {
		return forceBlockLambda(fnLit)
	}
	return buildExpr(f)
}

// buildComposition renders a function-composition chain, a single soft
// group that inlines when the whole chain fits.
func buildComposition(n *Composition) Doc {
	if len(n.Functions) == 0 {
		return Nil
	}
	first := buildExpr(n.Functions[0])
	if len(n.Functions) == 1 {
		return first
	}
	rest := make([]Doc, 0, (len(n.Functions)-1)*3)
	for _, f := range n.Functions[1:] {
		rest = append(rest, Line, Text(">> "), buildExpr(f))
	}
	return Group(Concat(first, Nest(indentSize, Concat(rest...))))
}

// buildListPattern and buildDictPattern print inline without the
// Bracketed break logic, since destructuring positions are assumed short.
func buildListPattern(n *ListPattern) Doc {
	elems := buildExprs(n.Elements)
	if n.Rest != nil {
		elems = append(elems, buildExpr(n.Rest))
	}
	return Concat(Text("["), Join(Text(", "), elems...), Text("]"))
}

func buildDictPattern(n *DictPattern) Doc {
	elems := make([]Doc, len(n.Entries))
	for i, entry := range n.Entries {
		elems[i] = buildDictPatternEntry(entry)
	}
	if n.Rest != nil {
		elems = append(elems, buildExpr(n.Rest))
	}
	return Concat(Text("#{"), Join(Text(", "), elems...), Text("}"))
}
