package forth

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sforth/st4th/internal/fileinput"
	"github.com/sforth/st4th/internal/flushio"
	"github.com/sforth/st4th/internal/panicerr"
)

// ipSentinel marks the bottom of a colon-body call chain: EXIT popping this
// value off the return stack ends the dispatch loop started by execColon,
// rather than resuming some enclosing body. No real arena address is ever
// negative, so it can never collide with a live IP.
const ipSentinel Cell = -1

// Engine bundles every piece of mutable session state named in spec.md
// section 9's "Global mutable state" design note: arena, both stacks, the
// dictionary head, the mode flag, the input cursor and showstack flag all
// live on one value, so independent sessions (tests, or cmd/st4th running
// several scripts at once) can run in parallel without sharing anything.
type Engine struct {
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
	logfn   func(mess string, args ...interface{})

	arena *arena
	dict  *dictionary
	data  *stack
	ret   *stack
	tok   tokenizer

	modeAddr   Addr
	wordBuf    Addr
	parseBuf   Addr
	showStack  bool
	banner     string
	debugWords bool
}

// New builds an Engine with the primitive word table installed and ready
// to Evaluate lines; see options.go for the available EngineOptions.
func New(opts ...EngineOption) *Engine {
	var e Engine
	defaultOptions.apply(&e)
	EngineOptions(opts...).apply(&e)

	if e.arena == nil {
		e.arena = newArena(DefaultArenaSize)
	}
	if e.dict == nil {
		e.dict = newDictionary()
	}
	if e.data == nil {
		e.data = newStack("data", 16)
	}
	if e.ret == nil {
		e.ret = newStack("return", 64)
	}
	if e.banner == "" {
		e.banner = "welcome to st4th"
	}

	modeAddr, err := e.arena.Comma(0)
	if err != nil {
		panic(fmt.Errorf("forth: cannot reserve MODE cell: %w", err))
	}
	e.modeAddr = modeAddr

	wordBuf, err := e.arena.Allot(maxNameLen + 1)
	if err != nil {
		panic(fmt.Errorf("forth: cannot reserve WORD buffer: %w", err))
	}
	e.wordBuf = wordBuf

	parseBuf, err := e.arena.Allot(maxRawLen + 1)
	if err != nil {
		panic(fmt.Errorf("forth: cannot reserve PARSE buffer: %w", err))
	}
	e.parseBuf = parseBuf

	installPrimitives(&e)
	if e.debugWords {
		installDebugWords(&e)
	}
	return &e
}

// Close flushes buffered output, then releases any resources attached by
// input/output options, in reverse order of attachment.
func (e *Engine) Close() (err error) {
	if e.out != nil {
		err = e.out.Flush()
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		if cerr := e.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (e *Engine) logf(mess string, args ...interface{}) {
	if e.logfn != nil {
		e.logfn(mess, args...)
	}
}

func (e *Engine) mode() Cell {
	v, err := e.arena.Load(e.modeAddr)
	if err != nil {
		e.halt(err)
	}
	return v
}

func (e *Engine) setMode(v Cell) {
	if err := e.arena.Store(e.modeAddr, v); err != nil {
		e.halt(err)
	}
}

func (e *Engine) compiling() bool { return e.mode() != 0 }

// halt turns any fatal (spec error classes 3/4) condition into a panic
// carrying haltError, recovered by Run at the top of the per-line loop --
// mirroring the teacher's Core.halt.
func (e *Engine) halt(err error) {
	func() {
		defer func() { recover() }()
		if e.out != nil {
			e.out.Flush()
		}
	}()
	func() {
		defer func() { recover() }()
		e.logf("halt error: %v", err)
	}()
	panic(haltError{err})
}

func (e *Engine) print(s string) {
	if _, err := io.WriteString(e.out, s); err != nil {
		e.halt(err)
	}
}

func (e *Engine) printf(format string, args ...interface{}) {
	e.print(fmt.Sprintf(format, args...))
}

// Run feeds successive lines from the Engine's configured input through
// Evaluate until EOF, printing the startup banner first. It is the
// Go-native analogue of st4th.c's main(): refill/evaluate loop.
func (e *Engine) Run(ctx context.Context) error {
	return panicerr.Recover("forth", func() error {
		return e.run(ctx)
	})
}

func (e *Engine) run(ctx context.Context) error {
	e.print(e.banner + "\n")
	for {
		// flush the banner / previous line's output before blocking on input
		if err := e.out.Flush(); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := e.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		e.Evaluate(line)
	}
}

// readLine reads one line (up to a newline or EOF) from the Engine's
// queued input sources, returning io.EOF once every source is exhausted.
func (e *Engine) readLine() (string, error) {
	var b strings.Builder
	any := false
	for {
		r, _, err := e.Input.ReadRune()
		if err != nil {
			if any {
				return b.String(), nil
			}
			return "", err
		}
		any = true
		if r == '\n' {
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// Evaluate tokenizes and runs one line of source, exactly as spec.md
// section 4.6 describes: look up each token, execute-or-compile it, fall
// back to a numeric literal, abort on the first unrecognized token. The
// tokenizer source is saved and restored so nested EVALUATE (invoked by a
// primitive) composes safely.
func (e *Engine) Evaluate(line string) {
	save := e.tok.source(line)
	defer e.tok.restore(save)
	e.setMode(0)

	for {
		token, ok := e.tok.parse()
		if !ok {
			e.print("ok\n")
			break
		}

		if e.showStack {
			e.printf("-> %s\n", token)
		}

		w := e.dict.findWord(token)
		if w != 0 {
			wd := e.dict.get(w)
			if e.mode() == 0 || wd.flags&flagImmediate != 0 {
				e.execute(w)
			} else {
				e.compileXT(w)
			}
		} else if value, perr := strconv.ParseInt(token, 10, 64); perr == nil {
			if e.mode() == 0 {
				e.data.Push(value)
			} else {
				e.compileLiteral(value)
			}
		} else {
			e.printf("%s?\n", token)
			return
		}

		if e.showStack {
			e.dumpStack(4)
		}
	}

	if err := e.data.checkHealth(); err != nil {
		e.print(err.Error() + "\n")
	} else if err := e.ret.checkHealth(); err != nil {
		e.print(err.Error() + "\n")
	}
}

func (e *Engine) dumpStack(depth int) {
	for i, v := range e.data.Top(depth) {
		e.printf("[%02d] %d\n", i, v)
	}
}
