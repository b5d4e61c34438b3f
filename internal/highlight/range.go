// Package highlight implements C3 through C8 of the highlighting core: the
// highlight_range/apply_highlighter primitives, the regex match cache, the
// catalog of simple highlighters, the regions resolver, and the highlighter
// group/registry/factory machinery. Grounded throughout on
// original_source/src/highlighters.cc, with ambient conventions (errors,
// registry shape) from internal/renderer/highlight/*.go and
// internal/config/registry/*.go.
package highlight

import (
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/units"
)

// Flags gates whether a highlighter pass is allowed to change atom faces or
// must only affect layout (used while computing cursor/scroll positions
// without a real redraw).
type Flags uint8

const (
	// Highlight permits both face changes and layout changes.
	Highlight Flags = iota
	// MoveOnly permits layout changes (splitting/trimming atoms) but must
	// not alter any face.
	MoveOnly
)

// ApplyFunc mutates one atom already known to overlap the target range.
type ApplyFunc func(atom *display.Atom)

// HighlightRange visits every atom in db that overlaps [begin,end),
// splitting atoms at the range boundary so func is only ever called on
// atoms fully inside [begin,end). If skipReplaced is true,
// ReplacedBufferRange atoms are left untouched (their text no longer
// corresponds 1:1 with the buffer, so a regex match against buffer content
// wouldn't apply to them meaningfully). Grounded verbatim on the
// highlight_range template in highlighters.cc.
func HighlightRange(db *display.Buffer, begin, end units.ByteCoord, skipReplaced bool, fn ApplyFunc) {
	rbegin, rend := db.Range()
	if begin == end || end.Compare(rbegin) <= 0 || begin.Compare(rend) >= 0 {
		return
	}

	for _, line := range db.Lines() {
		lbegin, lend := line.Range()
		if lend.Compare(begin) <= 0 || end.Compare(lbegin) < 0 {
			continue
		}

		atoms := line.Atoms()
		for i := 0; i < len(atoms); i++ {
			atom := atoms[i]
			isReplaced := atom.Type() == display.ReplacedBufferRange

			if !atom.HasBufferRange() || (skipReplaced && isReplaced) {
				continue
			}
			if end.Compare(atom.Begin()) <= 0 || begin.Compare(atom.End()) >= 0 {
				continue
			}

			if !isReplaced && begin.Compare(atom.Begin()) > 0 {
				i = line.Split(i, begin) + 1
				atoms = line.Atoms()
			}

			atom = atoms[i]
			if !isReplaced && end.Compare(atom.End()) < 0 {
				i = line.Split(i, end)
				atoms = line.Atoms()
				a := atoms[i]
				fn(&a)
				atoms[i] = a
			} else {
				a := atoms[i]
				fn(&a)
				atoms[i] = a
			}
		}
	}
}
