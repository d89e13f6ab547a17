package forth

import (
	"fmt"
	"io"
)

// Dump writes a human-readable snapshot of the Engine's dictionary and
// stacks to w: every word newest-first with its flags and value, then
// both stacks top-first. Grounded on the teacher's vmDumper, scaled down
// to this engine's flat word-table/byte-arena layout (no per-cell
// threaded-code disassembly, since a colon body is just xt references
// best read back through WORDS/EXECUTE rather than a raw memory walk).
func (e *Engine) Dump(w io.Writer) error {
	bw := &dumpWriter{w: w}

	fmt.Fprintf(bw, "# st4th engine dump\n")
	fmt.Fprintf(bw, "  here: %d / %d\n", e.arena.Here(), e.arena.Size())
	fmt.Fprintf(bw, "  mode: %d\n", e.mode())

	fmt.Fprintf(bw, "  dictionary:\n")
	for id := e.dict.last; id != 0; id = e.dict.get(id).prev {
		wd := e.dict.get(id)
		flags := ""
		if wd.flags&flagImmediate != 0 {
			flags += " immediate"
		}
		if wd.flags&flagHidden != 0 {
			flags += " hidden"
		}
		fmt.Fprintf(bw, "    [%d] %-16s value=%d%s\n", id, wd.name, wd.value, flags)
	}

	fmt.Fprintf(bw, "  data stack (top-first): %v\n", e.data.All())
	fmt.Fprintf(bw, "  return stack (top-first): %v\n", e.ret.All())

	return bw.err
}

// installDebugWords adds the DUMP primitive, writing an Engine's own
// Dump to its configured output, so a running program can inspect its own
// dictionary and stacks the same way cmd/st4th's --dump flag does.
// Grounded on gothird's main.go wiring its vmDumper through a DUMP-style
// debug path rather than exposing it as a VM primitive; st4th goes one
// step further and surfaces it in-language, gated behind WithDebugWords
// so it never shows up in WORDS' count by default.
func installDebugWords(e *Engine) {
	id := e.dict.makeWord("DUMP")
	wd := e.dict.get(id)
	wd.fn = wrap(fnDump)
}

func fnDump(e *Engine, w xt) {
	if err := e.Dump(e.out); err != nil {
		e.halt(err)
	}
}

// dumpWriter collapses per-call io errors into one sticky field so Dump's
// body can stay a flat sequence of Fprintf calls.
type dumpWriter struct {
	w   io.Writer
	err error
}

func (d *dumpWriter) Write(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	n, err := d.w.Write(p)
	if err != nil {
		d.err = err
	}
	return n, err
}
