// Package display implements the DisplayAtom/DisplayLine/DisplayBuffer
// model highlighters operate on. It is grounded directly on
// original_source/src/display_buffer.hh, adapted to Go's interface-free
// tagged-union idiom and to the teacher's Cell/width conventions in
// internal/renderer/cell.go.
package display

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

// AtomType distinguishes what content an atom draws from.
type AtomType uint8

const (
	// BufferRange atoms draw buffer content directly and can still be
	// located back in the buffer via Begin/End.
	BufferRange AtomType = iota
	// ReplacedBufferRange atoms originated from a buffer range but have had
	// their displayed text substituted; Begin/End remain valid for
	// highlight_range's boundary splitting, but the text shown is not the
	// buffer's.
	ReplacedBufferRange
	// Text atoms have no buffer origin at all (e.g. a line-number gutter
	// atom, or a one-off fill atom).
	Text
)

// Atom is one contiguous run of styled content within a DisplayLine.
type Atom struct {
	Face coreface.Face

	typ   AtomType
	buf   textbuf.Buffer
	begin units.ByteCoord
	end   units.ByteCoord
	text  string
}

// NewBufferAtom creates an atom that draws buf's content in [begin,end).
// The invariant begin.Line==end.Line, or begin.Line+1==end.Line with
// end.Column==0 (a full line through its newline), must hold.
func NewBufferAtom(buf textbuf.Buffer, begin, end units.ByteCoord) Atom {
	a := Atom{typ: BufferRange, buf: buf, begin: begin, end: end}
	a.checkInvariant()
	return a
}

// NewTextAtom creates a standalone text atom with no buffer origin.
func NewTextAtom(text string, face coreface.Face) Atom {
	return Atom{typ: Text, text: text, Face: face}
}

func (a Atom) checkInvariant() {
	if a.typ != BufferRange {
		return
	}
	sameLine := a.begin.Line == a.end.Line
	wrapsOnce := a.begin.Line+1 == a.end.Line && a.end.Column == 0
	if !sameLine && !wrapsOnce {
		panic(fmt.Sprintf("display: invalid buffer atom range %v..%v", a.begin, a.end))
	}
}

// Type reports whether this atom is a BufferRange, ReplacedBufferRange, or
// Text atom.
func (a Atom) Type() AtomType { return a.typ }

// HasBufferRange reports whether Begin/End are valid, i.e. the atom is a
// BufferRange or ReplacedBufferRange.
func (a Atom) HasBufferRange() bool {
	return a.typ == BufferRange || a.typ == ReplacedBufferRange
}

// Begin returns the atom's buffer start coordinate. Only valid when
// HasBufferRange is true.
func (a Atom) Begin() units.ByteCoord { return a.begin }

// End returns the atom's buffer end coordinate. Only valid when
// HasBufferRange is true.
func (a Atom) End() units.ByteCoord { return a.end }

// Content returns the text this atom displays.
func (a Atom) Content() string {
	switch a.typ {
	case BufferRange:
		line := a.buf.Line(a.begin.Line)
		if a.begin.Line == a.end.Line {
			return sliceBytes(line, a.begin.Column, a.end.Column)
		}
		// begin.Line+1==end.Line && end.Column==0: rest of the line.
		return sliceBytes(line, a.begin.Column, units.ByteCount(len(line)))
	default:
		return a.text
	}
}

func sliceBytes(s string, start, end units.ByteCount) string {
	if int(start) < 0 {
		start = 0
	}
	if int(end) > len(s) {
		end = units.ByteCount(len(s))
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

// Length returns the atom's content length in codepoints.
func (a Atom) Length() units.CharCount { return units.CharCountOf(a.Content()) }

// Width returns the atom's display width in terminal columns, using
// East-Asian-width-aware rune widths (github.com/mattn/go-runewidth),
// replacing the teacher's hand-rolled isWideRune table per the teacher's
// own "use a proper Unicode width library" comment on RuneWidth.
func (a Atom) Width() int { return runewidth.StringWidth(a.Content()) }

// Replace turns a BufferRange atom into a ReplacedBufferRange one,
// substituting its displayed text while preserving Begin/End for
// highlight_range's boundary logic. Panics if called on a Text atom or an
// already-replaced atom, matching the original's assert.
func (a *Atom) Replace(text string) {
	if a.typ != BufferRange {
		panic("display: Replace called on non-BufferRange atom")
	}
	a.typ = ReplacedBufferRange
	a.text = text
}

// TrimBegin removes count codepoints from the front of the atom's content.
func (a *Atom) TrimBegin(count units.CharCount) {
	if count <= 0 {
		return
	}
	content := a.Content()
	trimmed, consumedBytes := trimLeadingRunes(content, count)
	switch a.typ {
	case BufferRange:
		a.begin.Column += consumedBytes
		a.checkInvariant()
	default:
		a.text = trimmed
	}
}

// TrimEnd removes count codepoints from the back of the atom's content.
func (a *Atom) TrimEnd(count units.CharCount) {
	if count <= 0 {
		return
	}
	content := a.Content()
	trimmed, consumedBytes := trimTrailingRunes(content, count)
	switch a.typ {
	case BufferRange:
		if a.end.Line != a.begin.Line {
			// A full-line atom: trim back from the end of its content.
			a.end = units.ByteCoord{Line: a.begin.Line, Column: a.begin.Column + units.ByteCount(len(content))}
		}
		a.end.Column -= consumedBytes
		a.checkInvariant()
	default:
		a.text = trimmed
	}
}

func trimLeadingRunes(s string, count units.CharCount) (rest string, consumedBytes units.ByteCount) {
	n := 0
	for i := range s {
		if units.CharCount(n) == count {
			return s[i:], units.ByteCount(i)
		}
		n++
	}
	return "", units.ByteCount(len(s))
}

func trimTrailingRunes(s string, count units.CharCount) (rest string, consumedBytes units.ByteCount) {
	var idxs []int
	for i := range s {
		idxs = append(idxs, i)
	}
	idxs = append(idxs, len(s))
	total := len(idxs) - 1
	if int(count) >= total {
		return "", units.ByteCount(len(s))
	}
	cut := idxs[total-int(count)]
	return s[:cut], units.ByteCount(len(s) - cut)
}

// Equal compares two atoms by face and content, matching
// DisplayAtom::operator== in the original.
func (a Atom) Equal(other Atom) bool {
	return a.Face.Equal(other.Face) && a.Content() == other.Content()
}
