package forth

import "encoding/binary"

// DefaultArenaSize is the default size, in bytes, of a new Engine's arena.
const DefaultArenaSize = 64 * 1024

// arena is the single linear byte region backing the dictionary's data
// area, variable and CREATEd storage, string literals, and compiled
// threaded code. A bump pointer (here) only ever advances; nothing is ever
// freed during a session.
type arena struct {
	bytes []byte
	here  Addr
}

func newArena(size int) *arena {
	if size <= 0 {
		size = DefaultArenaSize
	}
	return &arena{bytes: make([]byte, size)}
}

func (a *arena) Here() Addr { return a.here }

// Allot advances the bump pointer by n bytes and returns the address it
// advanced from. Returns errOutOfMemory if that would run past the arena.
func (a *arena) Allot(n int) (Addr, error) {
	if n < 0 {
		// a negative ALLOT simply rewinds HERE; st4th.c's allot() is
		// `mp += length` with a signed CELL, so this is legal and is how
		// user code can reclaim trailing space it just examined.
		addr := a.here
		if int64(addr)+int64(n) < 0 {
			return 0, errOutOfMemory
		}
		a.here = Addr(int64(addr) + int64(n))
		return addr, nil
	}
	addr := a.here
	end := int64(addr) + int64(n)
	if end > int64(len(a.bytes)) {
		return 0, errOutOfMemory
	}
	a.here = Addr(end)
	return addr, nil
}

// Comma allots one cell and stores value there.
func (a *arena) Comma(value Cell) (Addr, error) {
	addr, err := a.Allot(CellSize)
	if err != nil {
		return 0, err
	}
	a.storeAt(addr, value)
	return addr, nil
}

func (a *arena) inBounds(addr Addr, n int) bool {
	return int64(addr)+int64(n) <= int64(len(a.bytes)) && n >= 0
}

// Load reads one cell at addr.
func (a *arena) Load(addr Addr) (Cell, error) {
	if !a.inBounds(addr, CellSize) {
		return 0, errOutOfBounds
	}
	return a.loadAt(addr), nil
}

// Store writes one cell at addr without moving HERE; writes past the end
// of the arena are out of bounds.
func (a *arena) Store(addr Addr, value Cell) error {
	if !a.inBounds(addr, CellSize) {
		return errOutOfBounds
	}
	a.storeAt(addr, value)
	return nil
}

func (a *arena) loadAt(addr Addr) Cell {
	return int64(binary.LittleEndian.Uint64(a.bytes[addr : addr+CellSize]))
}

func (a *arena) storeAt(addr Addr, value Cell) {
	binary.LittleEndian.PutUint64(a.bytes[addr:addr+CellSize], uint64(value))
}

// LoadByte reads one byte at addr, zero-extended.
func (a *arena) LoadByte(addr Addr) (Cell, error) {
	if !a.inBounds(addr, 1) {
		return 0, errOutOfBounds
	}
	return Cell(a.bytes[addr]), nil
}

// StoreByte writes the low 8 bits of value at addr.
func (a *arena) StoreByte(addr Addr, value Cell) error {
	if !a.inBounds(addr, 1) {
		return errOutOfBounds
	}
	a.bytes[addr] = byte(value)
	return nil
}

// Fill writes u copies of byte c starting at addr.
func (a *arena) Fill(addr Addr, u int, c byte) error {
	if !a.inBounds(addr, u) {
		return errOutOfBounds
	}
	for i := 0; i < u; i++ {
		a.bytes[int(addr)+i] = c
	}
	return nil
}

// WriteString copies s followed by a NUL terminator starting at addr,
// returning the address just past the terminator.
func (a *arena) WriteString(addr Addr, s string) (Addr, error) {
	if !a.inBounds(addr, len(s)+1) {
		return 0, errOutOfBounds
	}
	copy(a.bytes[addr:], s)
	a.bytes[int(addr)+len(s)] = 0
	return addr + Addr(len(s)) + 1, nil
}

// AllotString bumps HERE past len(s)+1 bytes and writes s followed by a
// NUL terminator there, returning the start address. Used to lay down
// inline string literals inside a colon body (see compiler.go's
// compileString), where the bytes must live contiguously just past HERE.
func (a *arena) AllotString(s string) (Addr, error) {
	addr, err := a.Allot(len(s) + 1)
	if err != nil {
		return 0, err
	}
	copy(a.bytes[addr:], s)
	a.bytes[int(addr)+len(s)] = 0
	return addr, nil
}

// ReadCString reads a NUL-terminated byte string starting at addr.
func (a *arena) ReadCString(addr Addr) (string, error) {
	if !a.inBounds(addr, 0) {
		return "", errOutOfBounds
	}
	end := int(addr)
	for end < len(a.bytes) && a.bytes[end] != 0 {
		end++
	}
	return string(a.bytes[addr:end]), nil
}

func (a *arena) Size() int { return len(a.bytes) }
