package display

import (
	"testing"

	"github.com/prismline/hlcore/internal/textbuf"
)

func TestBufferSetLinesComputesRange(t *testing.T) {
	buf := textbuf.NewText("hello\nworld")
	db := NewBuffer()
	l0 := NewLine([]Atom{NewBufferAtom(buf, coord(0, 0), coord(1, 0))})
	l1 := NewLine([]Atom{NewBufferAtom(buf, coord(1, 0), coord(1, 5))})
	db.SetLines([]*Line{l0, l1})

	begin, end := db.Range()
	if begin != coord(0, 0) || end != coord(1, 5) {
		t.Errorf("Range() = %v, %v; want (0,0), (1,5)", begin, end)
	}
	if len(db.Lines()) != 2 {
		t.Fatalf("Lines() len = %d, want 2", len(db.Lines()))
	}
}

func TestBufferOptimizeDelegatesToLines(t *testing.T) {
	buf := textbuf.NewText("hello world")
	a := NewBufferAtom(buf, coord(0, 0), coord(0, 5))
	b := NewBufferAtom(buf, coord(0, 5), coord(0, 11))
	line := NewLine([]Atom{a, b})
	db := NewBuffer()
	db.SetLines([]*Line{line})

	db.Optimize()
	if len(line.Atoms()) != 1 {
		t.Fatalf("expected line's atoms to merge via Buffer.Optimize, got %d", len(line.Atoms()))
	}
}

func TestEmptyBufferRangeIsSentinel(t *testing.T) {
	db := NewBuffer()
	begin, end := db.Range()
	if begin != sentinelRange.Begin || end != sentinelRange.End {
		t.Errorf("empty buffer Range() = %v, %v; want sentinel", begin, end)
	}
}
