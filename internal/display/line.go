package display

import "github.com/prismline/hlcore/internal/units"

// bufferRange is the smallest [begin,end) buffer range enclosing a set of
// atoms. The sentinelRange starting value (used before any atom is seen) mirrors
// the original's {INT_MAX,INT_MAX},{INT_MIN,INT_MIN}: Begin starts "as far
// right as possible" and End "as far left as possible" so the first real
// atom always narrows both ends.
type bufferRange struct {
	Begin units.ByteCoord
	End   units.ByteCoord
}

var sentinelRange = bufferRange{
	Begin: units.ByteCoord{Line: units.LineCount(1<<31 - 1), Column: units.ByteCount(1<<31 - 1)},
	End:   units.ByteCoord{Line: units.LineCount(-(1 << 31)), Column: units.ByteCount(-(1 << 31))},
}

// Line is an ordered run of atoms making up one visible row.
type Line struct {
	atoms []Atom
	rng   bufferRange
}

// NewLine creates a line from a fixed atom slice, computing its range.
func NewLine(atoms []Atom) *Line {
	l := &Line{atoms: atoms, rng: sentinelRange}
	l.computeRange()
	return l
}

// Atoms returns the line's atoms in order.
func (l *Line) Atoms() []Atom { return l.atoms }

// Range returns the smallest buffer range enclosing every BufferRange/
// ReplacedBufferRange atom on this line.
func (l *Line) Range() (begin, end units.ByteCoord) { return l.rng.Begin, l.rng.End }

// Length returns the total codepoint length of the line's atoms.
func (l *Line) Length() units.CharCount {
	var total units.CharCount
	for _, a := range l.atoms {
		total += a.Length()
	}
	return total
}

// PushBack appends an atom, extending the cached range.
func (l *Line) PushBack(a Atom) {
	l.atoms = append(l.atoms, a)
	l.extendRange(a)
}

// Insert inserts atom before index i, returning the index it was inserted
// at (always i).
func (l *Line) Insert(i int, a Atom) int {
	l.atoms = append(l.atoms, Atom{})
	copy(l.atoms[i+1:], l.atoms[i:])
	l.atoms[i] = a
	l.extendRange(a)
	return i
}

// Erase removes atoms in [begin,end), recomputing the range from scratch
// since shrinking can't be done incrementally.
func (l *Line) Erase(begin, end int) {
	l.atoms = append(l.atoms[:begin], l.atoms[end:]...)
	l.computeRange()
}

// Split divides the atom spanning pos into two atoms at pos, returning the
// index of the first resulting atom (the one ending at pos). pos must fall
// strictly inside a BufferRange/ReplacedBufferRange atom's span; if it
// doesn't, Split returns the index of the atom whose Begin/End already
// equals pos without modifying anything (split is then a no-op).
func (l *Line) Split(i int, pos units.ByteCoord) int {
	a := l.atoms[i]
	if !a.HasBufferRange() {
		return i
	}
	if pos == a.begin || pos == a.end {
		return i
	}
	first := a
	first.end = pos
	second := a
	second.begin = pos
	if a.typ == ReplacedBufferRange {
		// A replaced atom's displayed text can't be half-attributed to a
		// sub-range of the original buffer span; splitting a replaced atom
		// only makes sense along the original boundary, so the line is left
		// unchanged and i is returned.
		return i
	}
	l.atoms = append(l.atoms, Atom{})
	copy(l.atoms[i+2:], l.atoms[i+1:])
	l.atoms[i] = first
	l.atoms[i+1] = second
	return i
}

// Trim removes firstChar codepoints from the start of the line and
// truncates it to at most charCount codepoints thereafter, discarding or
// shrinking atoms as needed. Mirrors DisplayLine::trim.
func (l *Line) Trim(firstChar units.CharCount, charCount units.CharCount) {
	remaining := firstChar
	for len(l.atoms) > 0 && remaining > 0 {
		n := l.atoms[0].Length()
		if n <= remaining {
			l.atoms = l.atoms[1:]
			remaining -= n
			continue
		}
		l.atoms[0].TrimBegin(remaining)
		remaining = 0
	}

	kept := units.CharCount(0)
	cut := len(l.atoms)
	for i, a := range l.atoms {
		n := a.Length()
		if kept+n <= charCount {
			kept += n
			continue
		}
		overflow := kept + n - charCount
		l.atoms[i].TrimEnd(overflow)
		cut = i + 1
		break
	}
	l.atoms = l.atoms[:cut]
	l.computeRange()
}

// Optimize merges adjacent atoms that are contiguous in the buffer and
// share a face, reducing atom count without changing displayed content.
func (l *Line) Optimize() {
	if len(l.atoms) < 2 {
		return
	}
	out := l.atoms[:1]
	for _, next := range l.atoms[1:] {
		last := &out[len(out)-1]
		if canMerge(*last, next) {
			last.end = next.end
			if last.typ == ReplacedBufferRange {
				last.text += next.text
			}
			continue
		}
		out = append(out, next)
	}
	l.atoms = out
}

func canMerge(a, b Atom) bool {
	if a.typ != b.typ || a.typ == Text {
		return false
	}
	if !a.Face.Equal(b.Face) {
		return false
	}
	return a.end == b.begin
}

func (l *Line) computeRange() {
	l.rng = sentinelRange
	for _, a := range l.atoms {
		l.extendRange(a)
	}
}

func (l *Line) extendRange(a Atom) {
	if !a.HasBufferRange() {
		return
	}
	if a.begin.Compare(l.rng.Begin) < 0 {
		l.rng.Begin = a.begin
	}
	if a.end.Compare(l.rng.End) > 0 {
		l.rng.End = a.end
	}
}
