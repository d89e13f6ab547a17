package forth

// compiler.go implements the word-defining words of spec.md section 4.7:
// :, ;, CONSTANT, VARIABLE, CREATE, :NONAME, IMMEDIATE, RECURSE, [, ], and
// the string/literal back-patch idiom shared by ." and C".

// compileByName looks up name and comma-emits a reference to it, halting
// (spec error class 3) if the word doesn't exist -- the Go analogue of
// st4th.c's compile(), which exit()s the whole process on a miss.
func (e *Engine) compileByName(name string) xt {
	w := e.dict.findWord(name)
	if w == 0 {
		e.halt(ErrCompileUnknown{Name: name})
	}
	e.compileXT(w)
	return w
}

func (e *Engine) compileXT(w xt) {
	if _, err := e.arena.Comma(Cell(w)); err != nil {
		e.halt(err)
	}
}

func (e *Engine) compileLiteral(v Cell) {
	e.compileByName("DOLITERAL")
	if _, err := e.arena.Comma(v); err != nil {
		e.halt(err)
	}
}

// compileString lays down the back-patch idiom spec.md section 4.7
// prescribes:
//
//	DOLITERAL, <addr1>
//	BRANCH,    <addr2>
//	<bytes>, NUL
//
// addr1 is patched to point at the string bytes and addr2 to the first
// byte past them, so executing it pushes the string's address and
// branches around the inline data.
func (e *Engine) compileString(s string) {
	e.compileByName("DOLITERAL")
	litAddr, err := e.arena.Comma(0)
	if err != nil {
		e.halt(err)
	}
	e.compileByName("BRANCH")
	branchAddr, err := e.arena.Comma(0)
	if err != nil {
		e.halt(err)
	}
	strAddr, err := e.arena.AllotString(s)
	if err != nil {
		e.halt(err)
	}
	if err := e.arena.Store(litAddr, Cell(strAddr)); err != nil {
		e.halt(err)
	}
	if err := e.arena.Store(branchAddr, Cell(e.arena.Here())); err != nil {
		e.halt(err)
	}
}

func (e *Engine) parseNameOrHalt(word string) string {
	name, ok := e.tok.parse()
	if !ok {
		e.halt(ErrNoName{Word: word})
	}
	return name
}

func fnColon(e *Engine, w xt) {
	name := e.parseNameOrHalt(":")
	id := e.dict.makeWord(name)
	wd := e.dict.get(id)
	wd.isColon = true
	wd.flags |= flagHidden
	wd.value = Cell(e.arena.Here())
	e.setMode(1)
}

func fnSemicolon(e *Engine, w xt) {
	e.compileByName("EXIT")
	e.dict.get(e.dict.last).flags &^= flagHidden
	e.setMode(0)
}

func fnConstant(e *Engine, w xt) {
	name := e.parseNameOrHalt("CONSTANT")
	id := e.dict.makeWord(name)
	wd := e.dict.get(id)
	wd.fn = doConstant
	wd.value = e.data.Pop()
}

func fnVariable(e *Engine, w xt) {
	name := e.parseNameOrHalt("VARIABLE")
	id := e.dict.makeWord(name)
	wd := e.dict.get(id)
	addr, err := e.arena.Comma(0)
	if err != nil {
		e.halt(err)
	}
	wd.fn = doVariable
	wd.value = Cell(addr)
}

func fnCreate(e *Engine, w xt) {
	name := e.parseNameOrHalt("CREATE")
	id := e.dict.makeWord(name)
	wd := e.dict.get(id)
	wd.fn = doConstant
	wd.value = Cell(e.arena.Here())
}

func fnNoname(e *Engine, w xt) {
	id := e.dict.makeAnonymous()
	wd := e.dict.get(id)
	wd.isColon = true
	wd.value = Cell(e.arena.Here())
	e.setMode(1)
	e.data.Push(Cell(id))
}

func fnImmediate(e *Engine, w xt) {
	e.dict.get(e.dict.last).flags |= flagImmediate
}

func fnRecurse(e *Engine, w xt) {
	e.dict.get(e.dict.last).flags &^= flagHidden
}

func fnLBracket(e *Engine, w xt) { e.setMode(0) }
func fnRBracket(e *Engine, w xt) { e.setMode(1) }
