package forth

// This file is the inner interpreter: the primitive function set spec.md
// section 4.5 calls "small and closed" (DOCOLON, EXIT, BRANCH, DOLITERAL,
// DOCONSTANT, DOVARIABLE), plus the one dispatch loop that walks a colon
// body's instruction pointer. Every other word in primitives.go is a
// "primitive-user" func: it runs to completion without touching ip.

// innerFunc is a dictionary entry's dispatch action. Most primitives
// ignore ip; only doColon, doExit, doBranch and doLiteral below read or
// write it.
type innerFunc func(e *Engine, w xt, ip *Cell)

// wrap adapts an ip-oblivious primitive (the overwhelming majority of the
// word table) to innerFunc.
func wrap(fn func(e *Engine, w xt)) innerFunc {
	return func(e *Engine, w xt, _ *Cell) { fn(e, w) }
}

func doColon(e *Engine, w xt, ip *Cell) {
	e.ret.Push(*ip)
	*ip = Cell(e.dict.get(w).value)
}

func doExit(e *Engine, w xt, ip *Cell) {
	*ip = e.ret.Pop()
}

func doBranch(e *Engine, w xt, ip *Cell) {
	target, err := e.arena.Load(Addr(*ip))
	if err != nil {
		e.halt(err)
	}
	*ip = target
}

func doLiteral(e *Engine, w xt, ip *Cell) {
	val, err := e.arena.Load(Addr(*ip))
	if err != nil {
		e.halt(err)
	}
	*ip += CellSize
	e.data.Push(val)
}

func doConstant(e *Engine, w xt, ip *Cell) {
	e.data.Push(e.dict.get(w).value)
}

func doVariable(e *Engine, w xt, ip *Cell) {
	e.data.Push(e.dict.get(w).value)
}

// execute dispatches w's primitive directly. For a colon word this enters
// execColon, running the body to completion before returning -- satisfying
// spec.md section 4.5's EXECUTE/EVALUATE re-entrancy contract via ordinary
// Go call recursion instead of a manual re-entrancy flag: a primitive that
// calls e.execute on a colon xt (EXECUTE, EVALUATE's word lookups, ...)
// simply nests another execColon loop on the Go stack.
func (e *Engine) execute(w xt) {
	if !e.dict.valid(w) {
		e.halt(errBadXT)
	}
	wd := e.dict.get(w)
	e.logf("dispatch %q", wd.name)
	if wd.isColon {
		e.execColon(w)
		return
	}
	if wd.fn == nil {
		e.halt(errBadXT)
	}
	wd.fn(e, w, nil)
}

// execColon runs a fresh dispatch loop over w's body: push the sentinel,
// set ip to the body start, and step cell by cell until EXIT pops the
// sentinel back off, per spec.md section 4.5's pseudocode. Nested colon
// calls inside the body are handled in place by doColon redirecting ip,
// not by recursing into execColon again -- exactly one loop per top-level
// call, with the return stack carrying every nested resume point.
func (e *Engine) execColon(w xt) {
	ip := Cell(e.dict.get(w).value)
	e.ret.Push(ipSentinel)
	for {
		cell, err := e.arena.Load(Addr(ip))
		if err != nil {
			e.halt(err)
		}
		next := xt(cell)
		ip += CellSize
		if !e.dict.valid(next) {
			e.halt(errBadXT)
		}
		wd := e.dict.get(next)
		e.logf("dispatch %q", wd.name)
		if wd.isColon {
			doColon(e, next, &ip)
		} else {
			wd.fn(e, next, &ip)
		}
		if ip == ipSentinel {
			return
		}
	}
}
