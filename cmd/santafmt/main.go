package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/santa-lang/santafmt/pkg/ioctx"
	"github.com/santa-lang/santafmt/pkg/santa"
	"golang.org/x/sync/errgroup"
)

const version = "0.1.0"

// maxFileSize enforces the per-file cap: files larger than this are
// reported as an io-error rather than read into memory.
const maxFileSize = 10 << 20

func main() {
	var (
		write    bool
		list     bool
		diffMode bool
	)

	rootCmd := &cobra.Command{
		Use:   "santafmt [flags] [path...]",
		Short: "Format santa-lang source files",
		Long: `santafmt formats santa-lang source according to the canonical style.

With no paths, it reads a single program from stdin and writes the
formatted result to stdout. With paths, it formats each file; directory
arguments are walked recursively for *.santa files.`,
		Example: `  # Format a file and print to stdout
  santafmt script.santa

  # Format a file in place
  santafmt -w script.santa

  # List files that would be reformatted
  santafmt -l ./solutions

  # Show what would change
  santafmt -d script.santa`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(runMain(cmd.Context(), args, write, list, diffMode))
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source file instead of stdout")
	rootCmd.Flags().BoolVarP(&list, "list", "l", false, "list files whose formatting differs")
	rootCmd.Flags().BoolVarP(&diffMode, "diff", "d", false, "print a diff instead of rewriting")

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)

	// runMain always exits the process itself (RunE never returns a
	// non-nil error), so any error fang.Execute surfaces here came from
	// cobra's own flag/argument parsing -- i.e. misuse.
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(2)
	}
}

func runMain(ctx context.Context, args []string, write, list, diffMode bool) int {
	stdout := ioctx.StdoutFromContext(ctx)
	stderr := ioctx.StderrFromContext(ctx)

	if len(args) == 0 {
		if write {
			fmt.Fprintln(stderr, "santafmt: -w cannot be used when reading from stdin")
			return 2
		}
		return formatStdin(stdout, stderr, list, diffMode)
	}

	files, err := collectFiles(args)
	if err != nil {
		fmt.Fprintln(stderr, "santafmt:", err)
		return 1
	}

	return formatFiles(ctx, files, write, list, diffMode, stdout, stderr)
}

func formatStdin(stdout, stderr io.Writer, list, diffMode bool) int {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(stderr, "santafmt: reading stdin:", err)
		return 1
	}

	formatted, err := santa.Format(source)
	if err != nil {
		fmt.Fprintln(stderr, "<stdin>: parse-error")
		return 1
	}

	changed := string(formatted) != string(source)

	if list {
		if changed {
			fmt.Fprintln(stdout, "<stdin>")
			return 1
		}
		return 0
	}

	if diffMode {
		if changed {
			if err := writeUnifiedDiff(stdout, "<stdin>", source, formatted); err != nil {
				fmt.Fprintln(stderr, "santafmt:", err)
				return 1
			}
		}
		return 0
	}

	stdout.Write(formatted) //nolint:errcheck
	return 0
}

// isSantaFile gates directory-recursion discovery only; files named
// explicitly on the command line are always processed.
func isSantaFile(name string) bool {
	return strings.HasSuffix(name, ".santa") && !strings.HasPrefix(name, ".")
}

func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "accessing %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if isSantaFile(d.Name()) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", path)
		}
	}
	return files, nil
}

type fileResult struct {
	path      string
	original  []byte
	formatted []byte
	changed   bool
	err       error
	errKind   string
}

func processFile(path string) fileResult {
	info, err := os.Stat(path)
	if err != nil {
		return fileResult{path: path, err: errors.WithStack(err), errKind: "io-error"}
	}
	if info.Size() > maxFileSize {
		return fileResult{path: path, err: errors.Errorf("file exceeds %d byte cap", maxFileSize), errKind: "io-error"}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: errors.WithStack(err), errKind: "io-error"}
	}

	formatted, err := santa.Format(source)
	if err != nil {
		return fileResult{path: path, err: err, errKind: "parse-error"}
	}

	return fileResult{
		path:      path,
		original:  source,
		formatted: formatted,
		changed:   string(formatted) != string(source),
	}
}

// formatFiles runs one goroutine per file (bounded by GOMAXPROCS) and
// then reports results in the caller's original order, so that -l/-d
// output is deterministic regardless of scheduling.
func formatFiles(ctx context.Context, files []string, write, list, diffMode bool, stdout, stderr io.Writer) int {
	results := make([]fileResult, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = processFile(path)
			return nil
		})
	}
	_ = g.Wait()

	exitCode := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", r.path, r.errKind)
			exitCode = 1
			continue
		}

		if !list && !diffMode && !write {
			stdout.Write(r.formatted) //nolint:errcheck
			continue
		}

		if list && r.changed {
			fmt.Fprintln(stdout, r.path)
			exitCode = 1
		}
		if diffMode && r.changed {
			if err := writeUnifiedDiff(stdout, r.path, r.original, r.formatted); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", r.path, err)
				exitCode = 1
			}
		}
		if write && r.changed {
			if err := os.WriteFile(r.path, r.formatted, 0o644); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", r.path, err)
				exitCode = 1
			}
		}
	}
	return exitCode
}
