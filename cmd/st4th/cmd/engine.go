package cmd

import (
	"context"
	"io"

	"github.com/sforth/st4th/forth"
)

// withTimeout wraps ctx with the --timeout flag's deadline, when set,
// mirroring the teacher's own `if timeout != 0 { ctx, cancel =
// context.WithTimeout(ctx, timeout) }` guard in main.go.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout == 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// engineOptions turns the current flag/config state into forth.EngineOptions
// shared by every subcommand that spins up an Engine.
func engineOptions(in io.Reader, out io.Writer, logf func(string, ...interface{})) []forth.EngineOption {
	opts := []forth.EngineOption{
		forth.WithInput(in),
		forth.WithOutput(out),
	}
	if memLimit > 0 {
		opts = append(opts, forth.WithArenaSize(memLimit))
	}
	if dataDepth > 0 {
		opts = append(opts, forth.WithDataStackDepth(dataDepth))
	}
	if returnDepth > 0 {
		opts = append(opts, forth.WithReturnStackDepth(returnDepth))
	}
	if traceEnabled && logf != nil {
		opts = append(opts, forth.WithLogf(logf))
	}
	if showStack {
		opts = append(opts, forth.WithShowStack(true))
	}
	if dumpEnabled {
		opts = append(opts, forth.WithDebugWords())
	}
	if welcomeBanner != "" {
		opts = append(opts, forth.WithWelcomeBanner(welcomeBanner))
	}
	return opts
}
