package forth

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/sforth/st4th/internal/flushio"
)

// EngineOption configures an Engine at construction time, following the
// same closed functional-options shape as the teacher's VMOption.
type EngineOption interface{ apply(e *Engine) }

var defaultOptions = EngineOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
)

// EngineOptions flattens a list of options (including nested EngineOptions
// results) into a single applyable option.
func EngineOptions(opts ...EngineOption) EngineOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Engine) {}

type options []EngineOption

func (opts options) apply(e *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(e *Engine) { e.logfn = logfn }

// WithLogf attaches an optional printf-style trace sink, e.g. for
// cmd/st4th's --trace flag.
func WithLogf(logfn func(mess string, args ...interface{})) EngineOption {
	return withLogfn(logfn)
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

// WithInput queues an additional input source; multiple sources are
// consumed in the order given, then EOF.
func WithInput(r io.Reader) EngineOption { return withInput(r) }

// WithOutput replaces the Engine's output sink.
func WithOutput(w io.Writer) EngineOption { return withOutput(w) }

// WithTee additionally mirrors output to w, alongside whatever
// WithOutput already set.
func WithTee(w io.Writer) EngineOption { return withTee(w) }

func (i inputOption) apply(e *Engine) {
	e.Input.Queue = append(e.Input.Queue, i.Reader)
}

func (o outputOption) apply(e *Engine) {
	if e.out != nil {
		e.out.Flush()
	}
	e.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		e.closers = append(e.closers, cl)
	}
}

func (o teeOption) apply(e *Engine) {
	e.out = flushio.WriteFlushers(e.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		e.closers = append(e.closers, cl)
	}
}

type arenaSizeOption int

func (n arenaSizeOption) apply(e *Engine) { e.arena = newArena(int(n)) }

// WithArenaSize overrides the default 64 KiB arena size.
func WithArenaSize(n int) EngineOption { return arenaSizeOption(n) }

type dataDepthOption int

func (n dataDepthOption) apply(e *Engine) { e.data = newStack("data", int(n)) }

// WithDataStackDepth overrides the default data stack depth of 16.
func WithDataStackDepth(n int) EngineOption { return dataDepthOption(n) }

type returnDepthOption int

func (n returnDepthOption) apply(e *Engine) { e.ret = newStack("return", int(n)) }

// WithReturnStackDepth overrides the default return stack depth of 64.
func WithReturnStackDepth(n int) EngineOption { return returnDepthOption(n) }

type showStackOption bool

func (b showStackOption) apply(e *Engine) { e.showStack = bool(b) }

// WithShowStack starts the Engine with the per-token trace (spec.md
// section 4.6/4.8's SHOWSTACK) already toggled on.
func WithShowStack(b bool) EngineOption { return showStackOption(b) }

type bannerOption string

func (s bannerOption) apply(e *Engine) { e.banner = string(s) }

// WithWelcomeBanner overrides the line Run prints before reading its first
// line of input (default "welcome to st4th").
func WithWelcomeBanner(s string) EngineOption { return bannerOption(s) }

type debugWordsOption bool

func (b debugWordsOption) apply(e *Engine) { e.debugWords = bool(b) }

// WithDebugWords installs the non-standard DUMP word alongside the usual
// primitive table. Off by default, so a fixture relying on WORDS' count
// matching the plain primitive table isn't thrown off by an extra entry.
func WithDebugWords() EngineOption { return debugWordsOption(true) }

type pipeInput struct {
	*io.PipeReader
	name string
}

func (pi pipeInput) Name() string { return pi.name }

func (pi pipeInput) apply(e *Engine) {
	e.Input.Queue = append(e.Input.Queue, pi)
	e.closers = append(e.closers, pi)
}

// WithInputWriter queues an io.WriterTo as an input source, piping its
// output through an in-memory pipe -- handy for feeding a generated
// script without buffering it all up front first.
func WithInputWriter(wto io.WriterTo) EngineOption {
	r, w := io.Pipe()
	go func() {
		defer w.Close()
		wto.WriteTo(w) //nolint:errcheck
	}()
	return pipeInput{r, nameOf(wto)}
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return "<unnamed input>"
}
