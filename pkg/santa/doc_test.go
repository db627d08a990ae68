package santa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatFlattensNestedConcatsAndDropsNils(t *testing.T) {
	d := Concat(Text("a"), Nil, Concat(Text("b"), Text("c")), Nil)
	c, ok := d.(*concatDoc)
	require.True(t, ok)
	require.Len(t, c.parts, 3)
}

func TestConcatOfSingleNonNilCollapses(t *testing.T) {
	require.Equal(t, Text("a"), Concat(Text("a")))
}

func TestConcatOfOnlyNilsIsNil(t *testing.T) {
	require.Equal(t, Nil, Concat(Nil, Nil))
}

func TestTextOfEmptyStringIsNil(t *testing.T) {
	require.Equal(t, Nil, Text(""))
}

func TestGroupOfGroupCollapses(t *testing.T) {
	inner := Text("x")
	g := Group(inner)
	require.Same(t, g, Group(g))
}

func TestNestMerges(t *testing.T) {
	d := Nest(2, Nest(3, Text("x")))
	n, ok := d.(*nestDoc)
	require.True(t, ok)
	require.Equal(t, 5, n.indent)
}

func TestNestOfZeroIsIdentity(t *testing.T) {
	require.Equal(t, Text("x"), Nest(0, Text("x")))
}

func TestJoinInsertsSeparatorBetweenEveryPair(t *testing.T) {
	d := Join(Text(", "), Text("a"), Text("b"), Text("c"))
	require.Equal(t, "a, b, c", Print(d))
}

func TestBracketedEmptyCollapsesToOpenClose(t *testing.T) {
	d := Bracketed("[", nil, "]", false)
	require.Equal(t, "[]", Print(d))
}

func TestBracketedFlatJoinsWithCommaSpace(t *testing.T) {
	d := Bracketed("[", []Doc{Text("1"), Text("2"), Text("3")}, "]", false)
	require.Equal(t, "[1, 2, 3]", Print(d))
}

func TestSoftLineDisappearsFlatAndBreaksUnderPressure(t *testing.T) {
	flat := Group(Concat(Text("a"), SoftLine(), Text("b")))
	require.Equal(t, "ab", Print(flat))

	wide := strings.Repeat("x", LineWidth)
	broken := Group(Concat(Text(wide), SoftLine(), Text("b")))
	require.Equal(t, wide+"\nb", Print(broken))
}
