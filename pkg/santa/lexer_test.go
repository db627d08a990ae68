package santa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lexAll(src string) []Token {
	lex := NewLexer([]byte(src))
	var toks []Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexerDistinguishesRangeFromDecimal(t *testing.T) {
	require.Equal(t, []Kind{INT, DOT_DOT, INT, EOF}, kinds(lexAll("1..2")))
	require.Equal(t, []Kind{DECIMAL, EOF}, kinds(lexAll("1.5")))
}

func TestLexerInclusiveRange(t *testing.T) {
	require.Equal(t, []Kind{INT, DOT_DOT_EQ, INT, EOF}, kinds(lexAll("1..=2")))
}

func TestLexerPipeAndComposeOperators(t *testing.T) {
	toks := lexAll("a |> b >> c")
	require.Equal(t, []Kind{IDENT, PIPE_OP, IDENT, COMPOSE_OP, IDENT, EOF}, kinds(toks))
}

func TestLexerBarAloneIsNotPipeOrCompose(t *testing.T) {
	toks := lexAll("|x| x")
	require.Equal(t, []Kind{BAR, IDENT, BAR, IDENT, EOF}, kinds(toks))
}

func TestLexerKeywords(t *testing.T) {
	toks := lexAll("let mut if else match return break true false nil")
	require.Equal(t, []Kind{LET, MUT, IF, ELSE, MATCH, RETURN, BREAK, TRUE, FALSE, NIL_KW, EOF}, kinds(toks))
}

func TestLexerUnderscoreIsItsOwnKind(t *testing.T) {
	toks := lexAll("_")
	require.Equal(t, UNDERSCORE, toks[0].Kind)
}

func TestLexerIdentifierSuffixes(t *testing.T) {
	toks := lexAll("is_nice? panic!")
	require.Equal(t, []Kind{IDENT, IDENT, EOF}, kinds(toks))
	require.Equal(t, "is_nice?", toks[0].Literal)
	require.Equal(t, "panic!", toks[1].Literal)
}

func TestLexerHashLBrace(t *testing.T) {
	toks := lexAll("#{a: 1}")
	require.Equal(t, []Kind{HASH_LBRACE, IDENT, COLON, INT, RBRACE, EOF}, kinds(toks))
}

func TestLexerStringEscapes(t *testing.T) {
	toks := lexAll(`"a\nb\tc\"d"`)
	require.Equal(t, STRING, toks[0].Kind)
	require.Equal(t, "a\nb\tc\"d", toks[0].Literal)
}

func TestLexerCommentRunsToEndOfLine(t *testing.T) {
	toks := lexAll("let x = 1 # trailing\nlet y = 2")
	var comment Token
	for _, tok := range toks {
		if tok.Kind == COMMENT {
			comment = tok
		}
	}
	require.Equal(t, "# trailing", comment.Literal)
}

func TestLexerBlankLineIsDetectedOnTheFollowingToken(t *testing.T) {
	// positions: LET IDENT ASSIGN INT LET IDENT ASSIGN INT EOF
	toks := lexAll("let a = 1\n\nlet b = 2")
	require.False(t, toks[0].PrecededByBlankLine)
	require.Equal(t, LET, toks[4].Kind)
	require.True(t, toks[4].PrecededByBlankLine)
}

func TestLexerSingleNewlineIsNotABlankLine(t *testing.T) {
	toks := lexAll("let a = 1\nlet b = 2")
	require.False(t, toks[4].PrecededByBlankLine)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lex := NewLexer([]byte("a b"))
	p1 := lex.Peek()
	p2 := lex.Peek()
	require.Equal(t, p1, p2)
	n := lex.Next()
	require.Equal(t, p1, n)
	require.Equal(t, "b", lex.Next().Literal)
}
