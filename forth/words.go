package forth

// words.go is the static install table, the Go analogue of st4th.c's
// dictionary[] array and makedictionary(): every primitive word the
// engine must expose per spec.md section 6.2, installed newest-last so
// the usual prev-chain search order (and WORDS' newest-first listing)
// falls out naturally.

type wordSpec struct {
	name      string
	fn        innerFunc
	value     Cell
	immediate bool
}

func installPrimitives(e *Engine) {
	specs := []wordSpec{
		{"DOLITERAL", doLiteral, 0, false},
		{"EXIT", doExit, 0, false},
		{"BRANCH", doBranch, 0, false},

		{":", wrap(fnColon), 0, false},
		{";", wrap(fnSemicolon), 0, true},
		{"CONSTANT", wrap(fnConstant), 0, false},
		{"VARIABLE", wrap(fnVariable), 0, false},
		{"CREATE", wrap(fnCreate), 0, false},
		{":NONAME", wrap(fnNoname), 0, false},
		{"IMMEDIATE", wrap(fnImmediate), 0, false},
		{"RECURSE", wrap(fnRecurse), 0, true},

		{"DROP", wrap(fnDrop), 0, false},
		{"DUP", wrap(fnDup), 0, false},
		{"?DUP", wrap(fnQDup), 0, false},
		{"SWAP", wrap(fnSwap), 0, false},
		{"OVER", wrap(fnOver), 0, false},
		{"ROT", wrap(fnRot), 0, false},
		{"DEPTH", wrap(fnDepth), 0, false},
		{"CLEAR", wrap(fnClear), 0, false},
		{">R", wrap(fnToR), 0, false},
		{"R>", wrap(fnRFrom), 0, false},
		{"@R", wrap(fnRFetch), 0, false},

		{"+", wrap(fnAdd), 0, false},
		{"-", wrap(fnSub), 0, false},
		{"*", wrap(fnMul), 0, false},
		{"/", wrap(fnDiv), 0, false},
		{"MOD", wrap(fnMod), 0, false},
		{"NEGATE", wrap(fnNegate), 0, false},
		{"ABS", wrap(fnAbs), 0, false},
		{"MAX", wrap(fnMax), 0, false},
		{"MIN", wrap(fnMin), 0, false},

		{"AND", wrap(fnAnd), 0, false},
		{"OR", wrap(fnOr), 0, false},
		{"XOR", wrap(fnXor), 0, false},
		{"<<", wrap(fnLshift), 0, false},
		{">>", wrap(fnRshift), 0, false},
		{"INVERT", wrap(fnInvert), 0, false},

		{"=", wrap(fnEq), 0, false},
		{"<>", wrap(fnNe), 0, false},
		{"<", wrap(fnLt), 0, false},
		{"<=", wrap(fnLe), 0, false},
		{">", wrap(fnGt), 0, false},
		{">=", wrap(fnGe), 0, false},
		{"0=", wrap(fnEq0), 0, false},

		{"@", wrap(fnFetch), 0, false},
		{"!", wrap(fnStore), 0, false},
		{"C@", wrap(fnCFetch), 0, false},
		{"C!", wrap(fnCStore), 0, false},
		{"+!", wrap(fnPlusStore), 0, false},
		{"HERE", wrap(fnHere), 0, false},
		{"ALLOT", wrap(fnAllot), 0, false},
		{",", wrap(fnComma), 0, false},
		{"CHARS", wrap(fnChars), 0, false},
		{"CELLS", wrap(fnCells), 0, false},
		{"CHAR+", wrap(fnCharPlus), 0, false},
		{"CELL+", wrap(fnCellPlus), 0, false},
		{"FILL", wrap(fnFill), 0, false},
		{"ERASE", wrap(fnErase), 0, false},
		{"COUNT", wrap(fnCount), 0, false},
		{"TYPE", wrap(fnType), 0, false},

		{".\"", wrap(fnDotQuote), 0, true},
		{"C\"", wrap(fnCQuote), 0, true},
		{"(", wrap(fnParenComment), 0, true},
		{"\\", wrap(fnLineComment), 0, true},
		{".(", wrap(fnDotParenComment), 0, true},

		{"WORD", wrap(fnWord), 0, false},
		{"PARSE", wrap(fnParse), 0, false},
		{"FIND", wrap(fnFind), 0, false},
		{"EVALUATE", wrap(fnEvaluate), 0, false},
		{"EXECUTE", wrap(fnExecute), 0, false},
		{"[", wrap(fnLBracket), 0, true},
		{"]", wrap(fnRBracket), 0, true},
		{"CHAR", wrap(fnChar), 0, false},
		{"[CHAR]", wrap(fnBracketChar), 0, true},

		{".", wrap(fnDot), 0, false},
		{"EMIT", wrap(fnEmit), 0, false},
		{"SPACE", wrap(fnSpace), 0, false},
		{"SPACES", wrap(fnSpaces), 0, false},
		{"CR", wrap(fnCR), 0, false},
		{"KEY", wrap(fnKey), 0, false},

		{"WORDS", wrap(fnWords), 0, false},
		{".S", wrap(fnDotS), 0, false},
		{"SHOWSTACK", wrap(fnShowstack), 0, false},

		{"FALSE", doConstant, 0, false},
		{"TRUE", doConstant, ^Cell(0), false},
		{"BL", doConstant, ' ', false},
		{"0", doConstant, 0, false},
		{"1", doConstant, 1, false},
		{"-1", doConstant, -1, false},
	}

	for _, s := range specs {
		id := e.dict.makeWord(s.name)
		wd := e.dict.get(id)
		wd.fn = s.fn
		wd.value = s.value
		if s.immediate {
			wd.flags |= flagImmediate
		}
	}

	// MODE is installed separately: its value is the address reserved by
	// New() before installPrimitives runs, not a literal known up front.
	modeID := e.dict.makeWord("MODE")
	modeWd := e.dict.get(modeID)
	modeWd.fn = doConstant
	modeWd.value = Cell(e.modeAddr)
}
