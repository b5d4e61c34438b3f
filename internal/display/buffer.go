package display

import "github.com/prismline/hlcore/internal/units"

// Buffer is an ordered collection of display lines, plus the cached buffer
// range they cover overall. Grounded on DisplayBuffer in
// original_source/src/display_buffer.hh.
type Buffer struct {
	lines []*Line
	rng   bufferRange
}

// NewBuffer creates an empty display buffer.
func NewBuffer() *Buffer { return &Buffer{rng: sentinelRange} }

// Lines returns the buffer's display lines in order.
func (b *Buffer) Lines() []*Line { return b.lines }

// SetLines replaces the buffer's lines outright.
func (b *Buffer) SetLines(lines []*Line) {
	b.lines = lines
	b.ComputeRange()
}

// Range returns the smallest buffer range spanning every atom in every
// line.
func (b *Buffer) Range() (begin, end units.ByteCoord) { return b.rng.Begin, b.rng.End }

// Optimize calls Line.Optimize on every line.
func (b *Buffer) Optimize() {
	for _, l := range b.lines {
		l.Optimize()
	}
}

// ComputeRange recomputes the overall range from the current lines.
func (b *Buffer) ComputeRange() {
	b.rng = sentinelRange
	for _, l := range b.lines {
		if lb, le := l.Range(); lb.Compare(b.rng.Begin) < 0 || le.Compare(b.rng.End) > 0 {
			if lb.Compare(b.rng.Begin) < 0 {
				b.rng.Begin = lb
			}
			if le.Compare(b.rng.End) > 0 {
				b.rng.End = le
			}
		}
	}
}
