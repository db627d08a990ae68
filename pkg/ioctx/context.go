// Package ioctx threads the CLI's output streams through a
// context.Context, so formatting code never reaches for the package-level
// os.Stdout/os.Stderr directly and tests can swap in buffers.
package ioctx

import (
	"context"
	"io"
)

type streamKey int

const (
	stdoutKey streamKey = iota
	stderrKey
)

func streamFromContext(ctx context.Context, key streamKey) io.Writer {
	if w, ok := ctx.Value(key).(io.Writer); ok {
		return w
	}
	return io.Discard
}

// StdoutToContext attaches w as the stream StdoutFromContext returns.
func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey, w)
}

// StdoutFromContext retrieves the writer attached by StdoutToContext, or
// io.Discard if none was attached.
func StdoutFromContext(ctx context.Context) io.Writer {
	return streamFromContext(ctx, stdoutKey)
}

// StderrToContext attaches w as the stream StderrFromContext returns.
func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey, w)
}

// StderrFromContext retrieves the writer attached by StderrToContext, or
// io.Discard if none was attached.
func StderrFromContext(ctx context.Context) io.Writer {
	return streamFromContext(ctx, stderrKey)
}
