package display

import (
	"testing"

	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/textbuf"
)

func TestNewLineRange(t *testing.T) {
	buf := textbuf.NewText("hello world")
	a := NewBufferAtom(buf, coord(0, 0), coord(0, 5))
	b := NewBufferAtom(buf, coord(0, 5), coord(0, 11))
	line := NewLine([]Atom{a, b})

	begin, end := line.Range()
	if begin != coord(0, 0) || end != coord(0, 11) {
		t.Errorf("Range() = %v, %v; want (0,0), (0,11)", begin, end)
	}
}

func TestLineLength(t *testing.T) {
	line := NewLine([]Atom{
		NewTextAtom("foo", coreface.DefaultFace),
		NewTextAtom("bar", coreface.DefaultFace),
	})
	if got := line.Length(); got != 6 {
		t.Errorf("Length() = %d, want 6", got)
	}
}

func TestLinePushBackExtendsRange(t *testing.T) {
	buf := textbuf.NewText("hello world")
	line := NewLine(nil)
	line.PushBack(NewBufferAtom(buf, coord(0, 0), coord(0, 5)))
	line.PushBack(NewBufferAtom(buf, coord(0, 5), coord(0, 11)))

	begin, end := line.Range()
	if begin != coord(0, 0) || end != coord(0, 11) {
		t.Errorf("Range() after PushBack = %v, %v; want (0,0), (0,11)", begin, end)
	}
}

func TestLineInsert(t *testing.T) {
	line := NewLine([]Atom{
		NewTextAtom("a", coreface.DefaultFace),
		NewTextAtom("c", coreface.DefaultFace),
	})
	line.Insert(1, NewTextAtom("b", coreface.DefaultFace))

	atoms := line.Atoms()
	if len(atoms) != 3 || atoms[0].Content() != "a" || atoms[1].Content() != "b" || atoms[2].Content() != "c" {
		t.Fatalf("unexpected atoms after Insert: %+v", atoms)
	}
}

func TestLineErase(t *testing.T) {
	line := NewLine([]Atom{
		NewTextAtom("a", coreface.DefaultFace),
		NewTextAtom("b", coreface.DefaultFace),
		NewTextAtom("c", coreface.DefaultFace),
	})
	line.Erase(1, 2)
	atoms := line.Atoms()
	if len(atoms) != 2 || atoms[0].Content() != "a" || atoms[1].Content() != "c" {
		t.Fatalf("unexpected atoms after Erase: %+v", atoms)
	}
}

func TestLineSplitInsideAtom(t *testing.T) {
	buf := textbuf.NewText("hello world")
	line := NewLine([]Atom{NewBufferAtom(buf, coord(0, 0), coord(0, 11))})

	idx := line.Split(0, coord(0, 5))
	atoms := line.Atoms()
	if len(atoms) != 2 {
		t.Fatalf("expected 2 atoms after Split, got %d", len(atoms))
	}
	if idx != 0 {
		t.Errorf("Split returned %d, want 0", idx)
	}
	if got := atoms[0].Content(); got != "hello" {
		t.Errorf("atoms[0].Content() = %q, want hello", got)
	}
	if got := atoms[1].Content(); got != " world" {
		t.Errorf("atoms[1].Content() = %q, want ' world'", got)
	}
}

func TestLineSplitAtBoundaryIsNoop(t *testing.T) {
	buf := textbuf.NewText("hello world")
	line := NewLine([]Atom{NewBufferAtom(buf, coord(0, 0), coord(0, 11))})

	idx := line.Split(0, coord(0, 0))
	if idx != 0 || len(line.Atoms()) != 1 {
		t.Fatalf("Split at boundary should be a no-op, got idx=%d atoms=%d", idx, len(line.Atoms()))
	}
}

func TestLineSplitOnTextAtomIsNoop(t *testing.T) {
	line := NewLine([]Atom{NewTextAtom("x", coreface.DefaultFace)})
	idx := line.Split(0, coord(0, 0))
	if idx != 0 || len(line.Atoms()) != 1 {
		t.Fatalf("Split on Text atom should be a no-op, got idx=%d atoms=%d", idx, len(line.Atoms()))
	}
}

func TestLineTrim(t *testing.T) {
	buf := textbuf.NewText("hello world")
	line := NewLine([]Atom{NewBufferAtom(buf, coord(0, 0), coord(0, 11))})

	line.Trim(2, 5)
	atoms := line.Atoms()
	if len(atoms) != 1 {
		t.Fatalf("expected 1 atom after Trim, got %d", len(atoms))
	}
	if got := atoms[0].Content(); got != "llo w" {
		t.Errorf("Content() after Trim(2,5) = %q, want 'llo w'", got)
	}
}

func TestLineOptimizeMergesAdjacentSameFace(t *testing.T) {
	buf := textbuf.NewText("hello world")
	face := coreface.Face{FG: coreface.NamedColor("red")}
	a := NewBufferAtom(buf, coord(0, 0), coord(0, 5))
	a.Face = face
	b := NewBufferAtom(buf, coord(0, 5), coord(0, 11))
	b.Face = face
	line := NewLine([]Atom{a, b})

	line.Optimize()
	atoms := line.Atoms()
	if len(atoms) != 1 {
		t.Fatalf("expected atoms to merge, got %d: %+v", len(atoms), atoms)
	}
	if got := atoms[0].Content(); got != "hello world" {
		t.Errorf("merged Content() = %q, want 'hello world'", got)
	}
}

func TestLineOptimizeDoesNotMergeDifferentFaces(t *testing.T) {
	buf := textbuf.NewText("hello world")
	a := NewBufferAtom(buf, coord(0, 0), coord(0, 5))
	a.Face = coreface.Face{FG: coreface.NamedColor("red")}
	b := NewBufferAtom(buf, coord(0, 5), coord(0, 11))
	b.Face = coreface.Face{FG: coreface.NamedColor("blue")}
	line := NewLine([]Atom{a, b})

	line.Optimize()
	if len(line.Atoms()) != 2 {
		t.Fatalf("expected atoms to stay distinct, got %d", len(line.Atoms()))
	}
}
