package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/pmezard/go-difflib/difflib"
)

// The color palette for added, removed and hunk-header diff lines.
var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// colorEnabled auto-disables styling when stdout isn't a terminal, since
// piping a colored diff into another tool is a classic footgun.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// writeUnifiedDiff prints a unified diff: a `diff` line,
// `---`/`+++` headers, and difflib's `@@ -a,b +c,d @@` hunks with three
// lines of context. Hunks group neighbouring changed lines; it does not
// print one `@@ -n +n @@` hunk per changed line.
func writeUnifiedDiff(w io.Writer, path string, before, after []byte) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "diff %s\n", path)
	color := colorEnabled(w)
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if !color {
			fmt.Fprint(w, line)
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			fmt.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(w, addedStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(w, removedStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(w, hunkStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		default:
			fmt.Fprint(w, line)
		}
	}
	return nil
}
