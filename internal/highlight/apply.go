package highlight

import (
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

// Func is a highlighter pass: given a context, the current flags, and the
// display buffer to mutate in place.
type Func func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error

// Apply extracts the sub-view of db covering [begin,end), runs inner on
// that sub-view, and splices the (possibly atom-split, possibly
// face-mutated) result back into db. Grounded verbatim on the
// apply_highlighter template in highlighters.cc: region lines falling
// entirely inside [begin,end) are moved wholesale; lines only partially
// overlapping are split at the boundary first, with only the overlapping
// atom slice moved out and the rest left behind in db.
func Apply(ctx *editorctx.Context, flags Flags, db *display.Buffer, begin, end units.ByteCoord, inner Func) error {
	var regionLines []*display.Line
	var firstLineIdx = -1
	var insertPos []int

	lines := db.Lines()
	for idx, line := range lines {
		lbegin, lend := line.Range()
		if lend.Compare(begin) <= 0 || end.Compare(lbegin) <= 0 {
			continue
		}
		if firstLineIdx == -1 {
			firstLineIdx = idx
		}

		if lbegin.Compare(begin) < 0 || lend.Compare(end) > 0 {
			atoms := line.Atoms()
			beginIdx, endIdx := 0, len(atoms)
			for i := 0; i < len(atoms); i++ {
				a := atoms[i]
				if !a.HasBufferRange() || end.Compare(a.Begin()) <= 0 || begin.Compare(a.End()) >= 0 {
					continue
				}
				isReplaced := a.Type() == display.ReplacedBufferRange

				if a.Begin().Compare(begin) <= 0 {
					if isReplaced || a.Begin() == begin {
						beginIdx = i
					} else {
						i = line.Split(i, begin) + 1
						atoms = line.Atoms()
						beginIdx = i
						endIdx++
					}
				}

				a = atoms[i]
				if a.End().Compare(end) >= 0 {
					if isReplaced || a.End() == end {
						endIdx = i + 1
					} else {
						i = line.Split(i, end) + 1
						atoms = line.Atoms()
						endIdx = i
					}
				}
			}
			moved := append([]display.Atom(nil), atoms[beginIdx:endIdx]...)
			line.Erase(beginIdx, endIdx)
			regionLines = append(regionLines, display.NewLine(moved))
			insertPos = append(insertPos, beginIdx)
		} else {
			moved := append([]display.Atom(nil), line.Atoms()...)
			line.Erase(0, len(moved))
			regionLines = append(regionLines, display.NewLine(moved))
			insertPos = append(insertPos, 0)
		}
	}

	region := display.NewBuffer()
	region.SetLines(regionLines)
	region.ComputeRange()

	if err := inner(ctx, flags, region); err != nil {
		return err
	}

	for i, rline := range region.Lines() {
		target := lines[firstLineIdx+i]
		pos := insertPos[i]
		for _, atom := range rline.Atoms() {
			pos = target.Insert(pos, atom) + 1
		}
	}
	db.ComputeRange()
	return nil
}

// SideCache attaches one value of type T to a buffer's ValueStore, lazily
// initializing it on first access. Grounded on BufferSideCache<T> in
// highlighters.cc: a process-unique slot id is allocated once per
// SideCache, and the cached value lives in the buffer's own value store so
// it is destroyed along with the buffer.
type SideCache[T any] struct {
	id textbuf.SlotID
}

// NewSideCache allocates a fresh cache slot.
func NewSideCache[T any]() *SideCache[T] {
	return &SideCache[T]{id: textbuf.NewSlotID()}
}

// Get returns the cached value for buf, creating a zero value on first
// access.
func (c *SideCache[T]) Get(buf textbuf.Buffer) *T {
	store := buf.Values()
	if v, ok := store.Get(c.id); ok {
		return v.(*T)
	}
	var zero T
	store.Set(c.id, &zero)
	return &zero
}
