package forth

// primitives.go is the ~90-word primitive table's bodies, each grounded
// 1:1 on the matching f-prefixed function in the C reference. None of
// these touch ip; they are all installed through wrap() in words.go.

// -- stack & return-stack shuffling --------------------------------------

func fnDrop(e *Engine, w xt) { e.data.Pop() }
func fnDup(e *Engine, w xt) {
	x := e.data.Pop()
	e.data.Push(x)
	e.data.Push(x)
}
func fnQDup(e *Engine, w xt) {
	x := e.data.Pop()
	if x != 0 {
		e.data.Push(x)
		e.data.Push(x)
	} else {
		e.data.Push(0)
	}
}
func fnSwap(e *Engine, w xt) {
	b, a := e.data.Pop(), e.data.Pop()
	e.data.Push(b)
	e.data.Push(a)
}
func fnOver(e *Engine, w xt) {
	b, a := e.data.Pop(), e.data.Pop()
	e.data.Push(a)
	e.data.Push(b)
	e.data.Push(a)
}
func fnRot(e *Engine, w xt) {
	c, b, a := e.data.Pop(), e.data.Pop(), e.data.Pop()
	e.data.Push(b)
	e.data.Push(c)
	e.data.Push(a)
}
func fnDepth(e *Engine, w xt) { e.data.Push(Cell(e.data.Depth())) }
func fnClear(e *Engine, w xt) { e.data.Clear() }

func fnToR(e *Engine, w xt) { e.ret.Push(e.data.Pop()) }
func fnRFrom(e *Engine, w xt) { e.data.Push(e.ret.Pop()) }
func fnRFetch(e *Engine, w xt) {
	x := e.ret.Pop()
	e.ret.Push(x)
	e.data.Push(x)
}

// -- arithmetic & logic ---------------------------------------------------

func fnAdd(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a + b) }
func fnSub(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a - b) }
func fnMul(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a * b) }
func fnDiv(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a / b) }
func fnMod(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a % b) }
func fnNegate(e *Engine, w xt) { e.data.Push(-e.data.Pop()) }
func fnAbs(e *Engine, w xt) {
	x := e.data.Pop()
	if x < 0 {
		x = -x
	}
	e.data.Push(x)
}
func fnMax(e *Engine, w xt) {
	b, a := e.data.Pop(), e.data.Pop()
	if a > b {
		e.data.Push(a)
	} else {
		e.data.Push(b)
	}
}
func fnMin(e *Engine, w xt) {
	b, a := e.data.Pop(), e.data.Pop()
	if a < b {
		e.data.Push(a)
	} else {
		e.data.Push(b)
	}
}

func fnAnd(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a & b) }
func fnOr(e *Engine, w xt)     { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a | b) }
func fnXor(e *Engine, w xt)    { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a ^ b) }
func fnLshift(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a << uint(b)) }
func fnRshift(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(a >> uint(b)) }
func fnInvert(e *Engine, w xt) { e.data.Push(^e.data.Pop()) }

func fnEq(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(boolCell(a == b)) }
func fnNe(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(boolCell(a != b)) }
func fnLt(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(boolCell(a < b)) }
func fnLe(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(boolCell(a <= b)) }
func fnGt(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(boolCell(a > b)) }
func fnGe(e *Engine, w xt) { b, a := e.data.Pop(), e.data.Pop(); e.data.Push(boolCell(a >= b)) }
func fnEq0(e *Engine, w xt) { e.data.Push(boolCell(e.data.Pop() == 0)) }

// -- memory ----------------------------------------------------------------

func fnFetch(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	v, err := e.arena.Load(addr)
	if err != nil {
		e.halt(err)
	}
	e.data.Push(v)
}
func fnStore(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	v := e.data.Pop()
	if err := e.arena.Store(addr, v); err != nil {
		e.halt(err)
	}
}
func fnCFetch(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	v, err := e.arena.LoadByte(addr)
	if err != nil {
		e.halt(err)
	}
	e.data.Push(v)
}
func fnCStore(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	v := e.data.Pop()
	if err := e.arena.StoreByte(addr, v); err != nil {
		e.halt(err)
	}
}
func fnPlusStore(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	v := e.data.Pop()
	cur, err := e.arena.Load(addr)
	if err != nil {
		e.halt(err)
	}
	if err := e.arena.Store(addr, cur+v); err != nil {
		e.halt(err)
	}
}
func fnHere(e *Engine, w xt) { e.data.Push(Cell(e.arena.Here())) }
func fnAllot(e *Engine, w xt) {
	if _, err := e.arena.Allot(int(e.data.Pop())); err != nil {
		e.halt(err)
	}
}
func fnComma(e *Engine, w xt) {
	if _, err := e.arena.Comma(e.data.Pop()); err != nil {
		e.halt(err)
	}
}
func fnChars(e *Engine, w xt)  { e.data.Push(e.data.Pop() * 1) }
func fnCells(e *Engine, w xt)  { e.data.Push(e.data.Pop() * CellSize) }
func fnCharPlus(e *Engine, w xt) { e.data.Push(e.data.Pop() + 1) }
func fnCellPlus(e *Engine, w xt) { e.data.Push(e.data.Pop() + CellSize) }

func fnFill(e *Engine, w xt) {
	c := byte(e.data.Pop())
	u := int(e.data.Pop())
	addr := Addr(e.data.Pop())
	if err := e.arena.Fill(addr, u, c); err != nil {
		e.halt(err)
	}
}
func fnErase(e *Engine, w xt) {
	u := int(e.data.Pop())
	addr := Addr(e.data.Pop())
	if err := e.arena.Fill(addr, u, 0); err != nil {
		e.halt(err)
	}
}
func fnCount(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	s, err := e.arena.ReadCString(addr)
	if err != nil {
		e.halt(err)
	}
	e.data.Push(Cell(addr))
	e.data.Push(Cell(len(s)))
}
func fnType(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	s, err := e.arena.ReadCString(addr)
	if err != nil {
		e.halt(err)
	}
	e.print(s)
}

// -- parsing, strings, comments --------------------------------------------

func fnWord(e *Engine, w xt) {
	token, ok := e.tok.parse()
	if !ok {
		token = ""
	}
	if _, err := e.arena.WriteString(e.wordBuf, token); err != nil {
		e.halt(err)
	}
	e.data.Push(Cell(e.wordBuf))
}

func fnParse(e *Engine, w xt) {
	delim := byte(e.data.Pop())
	raw := e.tok.parseRaw(delim)
	if _, err := e.arena.WriteString(e.parseBuf, raw); err != nil {
		e.halt(err)
	}
	e.data.Push(Cell(e.parseBuf))
}

func fnFind(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	name, err := e.arena.ReadCString(addr)
	if err != nil {
		e.halt(err)
	}
	e.data.Push(Cell(e.dict.findWord(name)))
}

func fnEvaluate(e *Engine, w xt) {
	addr := Addr(e.data.Pop())
	s, err := e.arena.ReadCString(addr)
	if err != nil {
		e.halt(err)
	}
	e.Evaluate(s)
}

func fnExecute(e *Engine, w xt) {
	e.execute(xt(e.data.Pop()))
}

func fnChar(e *Engine, w xt) {
	token, ok := e.tok.parse()
	if !ok || len(token) == 0 {
		e.data.Push(0)
		return
	}
	e.data.Push(Cell(token[0]))
}

func fnBracketChar(e *Engine, w xt) {
	token, ok := e.tok.parse()
	var c Cell
	if ok && len(token) > 0 {
		c = Cell(token[0])
	}
	e.compileLiteral(c)
}

func fnDotQuote(e *Engine, w xt) {
	s := e.tok.parseRaw('"')
	if e.compiling() {
		e.compileString(s)
		e.compileByName("TYPE")
	} else {
		e.print(s)
	}
}

func fnCQuote(e *Engine, w xt) {
	s := e.tok.parseRaw('"')
	e.compileString(s)
}

func fnParenComment(e *Engine, w xt) { e.tok.parseRaw(')') }
func fnLineComment(e *Engine, w xt)  { e.tok.parseRaw('\n') }

// fnDotParenComment preserves the documented source quirk: ".(" only
// echoes the comment body while compiling; outside compile mode it
// silently swallows it. See SPEC_FULL.md's Design Notes.
func fnDotParenComment(e *Engine, w xt) {
	s := e.tok.parseRaw(')')
	if e.compiling() {
		e.print(s)
	}
}

// -- output -----------------------------------------------------------------

func fnDot(e *Engine, w xt)    { e.printf("%d ", e.data.Pop()) }
func fnEmit(e *Engine, w xt)   { e.print(string(rune(e.data.Pop()))) }
func fnSpace(e *Engine, w xt)  { e.print(" ") }
func fnSpaces(e *Engine, w xt) {
	n := e.data.Pop()
	for i := Cell(0); i < n; i++ {
		e.print(" ")
	}
}
func fnCR(e *Engine, w xt)  { e.print("\n") }
func fnKey(e *Engine, w xt) { e.data.Push(e.key()) }

func (e *Engine) key() Cell {
	r, _, err := e.Input.ReadRune()
	if err != nil {
		return -1
	}
	return Cell(r)
}

// -- introspection & meta -----------------------------------------------

func fnWords(e *Engine, w xt) {
	n := 0
	for id := e.dict.last; id != 0; id = e.dict.get(id).prev {
		wd := e.dict.get(id)
		if wd.flags&flagHidden == 0 {
			e.printf("%s ", wd.name)
			n++
		}
	}
	e.printf("(%d total)\n", n)
}

func fnDotS(e *Engine, w xt) { e.dumpStack(e.data.depth) }
func fnShowstack(e *Engine, w xt) { e.showStack = !e.showStack }
