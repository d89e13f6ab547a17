package forth

const maxNameLen = 31

const (
	flagImmediate byte = 1 << iota
	flagHidden
)

// word is a dictionary entry. Per spec.md section 4.2 it carries a name, a
// primitive function, a value whose meaning depends on that function, flags,
// and a link to the previously installed word -- but here "prev" links
// dense table indices (xt-s) rather than raw pointers, so headers can live
// in an ordinary Go slice instead of needing stable addresses carved out of
// the byte arena (see SPEC_FULL.md section 3, Design Notes Option (b)).
//
// isColon marks entries whose fn is doColon: Go func values aren't
// comparable, so this bool stands in for "func == fDOCOLON" in the C
// original, letting execColon dispatch nested calls without an equality
// check on fn itself.
type word struct {
	name    string
	fn      innerFunc
	value   Cell
	flags   byte
	prev    xt
	isColon bool
}

// dictionary is the singly linked list of word headers, dense-indexed.
// Index 0 is never a real word, so xt(0) serves as the "no word" sentinel.
type dictionary struct {
	words []word
	last  xt
}

func newDictionary() *dictionary {
	return &dictionary{words: make([]word, 1)} // words[0] unused
}

// makeWord appends a zeroed header linked in front of the current head, and
// makes it the new head.
func (d *dictionary) makeWord(name string) xt {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	d.words = append(d.words, word{name: name, prev: d.last})
	id := xt(len(d.words) - 1)
	d.last = id
	return id
}

// makeAnonymous appends a header that is reachable only by the xt returned
// -- it is never linked into the prev chain, so findWord can never return
// it. This is exactly what :NONAME needs (spec.md section 4.7 / Design
// Notes "source quirks"): the header exists, it is just invisible to name
// lookup.
func (d *dictionary) makeAnonymous() xt {
	d.words = append(d.words, word{})
	return xt(len(d.words) - 1)
}

// findWord walks the head backward for the first non-hidden exact match.
func (d *dictionary) findWord(name string) xt {
	for w := d.last; w != 0; w = d.words[w].prev {
		e := &d.words[w]
		if e.flags&flagHidden == 0 && e.name == name {
			return w
		}
	}
	return 0
}

func (d *dictionary) get(w xt) *word { return &d.words[w] }

func (d *dictionary) valid(w xt) bool { return w != 0 && int(w) < len(d.words) }

// count returns the number of non-hidden words: the same total that WORDS
// tallies and prints on its own.
func (d *dictionary) count() int {
	n := 0
	for w := d.last; w != 0; w = d.words[w].prev {
		if d.words[w].flags&flagHidden == 0 {
			n++
		}
	}
	return n
}
