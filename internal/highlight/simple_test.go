package highlight

import (
	"testing"

	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/options"
)

func TestFillUnknownFaceErrors(t *testing.T) {
	if _, err := Fill("NoSuchFace"); err == nil {
		t.Fatal("expected error for unknown face")
	}
}

func TestFillAppliesFaceAcrossRange(t *testing.T) {
	Faces.Set("TestFillFace", coreface.Face{FG: coreface.NamedColor("green")})
	fn, err := Fill("TestFillFace")
	if err != nil {
		t.Fatalf("Fill returned error: %v", err)
	}
	buf := newTestText("hello")
	db := oneLineDB(buf)
	ctx := newCtx(buf)

	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("fn returned error: %v", err)
	}
	atoms := db.Lines()[0].Atoms()
	if len(atoms) != 1 || atoms[0].Face.FG.Name != "green" {
		t.Fatalf("expected filled face, got %+v", atoms)
	}
}

func TestLineOptionHighlightsNamedLine(t *testing.T) {
	fn, err := LineOption("cursorline", "Search")
	if err != nil {
		t.Fatalf("LineOption returned error: %v", err)
	}
	buf := newTestText("a\nb\nc")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	ctx.Options().Set("cursorline", 2)

	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("fn returned error: %v", err)
	}
	line2 := db.Lines()[1]
	found := false
	for _, a := range line2.Atoms() {
		if !a.Face.IsDefault() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected line 2 (index 1) to be highlighted")
	}
	line1 := db.Lines()[0]
	for _, a := range line1.Atoms() {
		if !a.Face.IsDefault() {
			t.Errorf("did not expect line 1 to be highlighted")
		}
	}
}

func TestLineOptionMissingOptionIsNoop(t *testing.T) {
	fn, err := LineOption("missing", "Search")
	if err != nil {
		t.Fatalf("LineOption returned error: %v", err)
	}
	buf := newTestText("a")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("fn returned error: %v", err)
	}
}

func TestSearchHighlightsRegisterPattern(t *testing.T) {
	buf := newTestText("foo bar foo")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	ctx2 := ctxWithSearch(ctx, "foo")

	fn := Search()
	if err := fn(ctx2, Highlight, db); err != nil {
		t.Fatalf("Search fn returned error: %v", err)
	}
	var hits int
	for _, a := range db.Lines()[0].Atoms() {
		if a.Content() == "foo" && !a.Face.IsDefault() {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("expected 2 highlighted 'foo' occurrences, got %d", hits)
	}
}

func TestSearchEmptyRegisterIsNoop(t *testing.T) {
	buf := newTestText("foo bar")
	db := oneLineDB(buf)
	ctx := newCtx(buf)

	fn := Search()
	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("Search fn returned error: %v", err)
	}
	for _, a := range db.Lines()[0].Atoms() {
		if !a.Face.IsDefault() {
			t.Errorf("did not expect any highlighting with empty search register")
		}
	}
}

func TestRegexOptionUnknownFaceErrors(t *testing.T) {
	if _, err := RegexOption("pat", "NoSuchFace"); err == nil {
		t.Fatal("expected error for unknown face")
	}
}

func TestRegexOptionHighlightsFromOption(t *testing.T) {
	fn, err := RegexOption("pat", "Error")
	if err != nil {
		t.Fatalf("RegexOption returned error: %v", err)
	}
	buf := newTestText("todo: fix this")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	ropts := options.NewRegistry()
	ropts.Register("pat", "todo")
	ctx = ctxWithOptions(buf, ropts)

	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("fn returned error: %v", err)
	}
	found := false
	for _, a := range db.Lines()[0].Atoms() {
		if a.Content() == "todo" && !a.Face.IsDefault() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'todo' to be highlighted via option-driven regex")
	}
}
