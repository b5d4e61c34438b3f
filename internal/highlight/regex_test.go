package highlight

import (
	"testing"

	"github.com/prismline/hlcore/internal/units"
)

func TestRangeTextToCoord(t *testing.T) {
	buf := newTestText("aaa\nbbb\nccc")
	text, toCoord := rangeText(buf, 0, 2)
	if text != "aaa\nbbb\nccc" {
		t.Fatalf("rangeText = %q", text)
	}
	cases := []struct {
		offset int
		want   units.ByteCoord
	}{
		{0, units.ByteCoord{Line: 0, Column: 0}},
		{3, units.ByteCoord{Line: 0, Column: 3}},
		{4, units.ByteCoord{Line: 1, Column: 0}},
		{8, units.ByteCoord{Line: 2, Column: 0}},
	}
	for _, c := range cases {
		if got := toCoord(c.offset); got != c.want {
			t.Errorf("toCoord(%d) = %v, want %v", c.offset, got, c.want)
		}
	}
}

func TestRegexHighlighterMatchesAndFaces(t *testing.T) {
	buf := newTestText("see foo and foo again")
	db := oneLineDB(buf)
	ctx := newCtx(buf)

	p, err := Compile("foo")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	Faces.Set("TestRegexFace", Faces.Resolve("Error"))
	h := NewRegexHighlighter(p, map[int]string{0: "TestRegexFace"})

	if err := h.Run(ctx, Highlight, db); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var hits int
	for _, a := range db.Lines()[0].Atoms() {
		if a.Content() == "foo" && !a.Face.IsDefault() {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("expected 2 highlighted matches, got %d", hits)
	}
}

func TestRegexHighlighterMoveOnlySkipsHighlighting(t *testing.T) {
	buf := newTestText("foo")
	db := oneLineDB(buf)
	ctx := newCtx(buf)

	p, _ := Compile("foo")
	h := NewRegexHighlighter(p, map[int]string{0: "Error"})

	if err := h.Run(ctx, MoveOnly, db); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, a := range db.Lines()[0].Atoms() {
		if !a.Face.IsDefault() {
			t.Errorf("expected no highlighting during a MoveOnly pass")
		}
	}
}

func TestRegexHighlighterCacheRefreshesAfterEdit(t *testing.T) {
	buf := newTestText("foo")
	db := oneLineDB(buf)
	ctx := newCtx(buf)

	p, _ := Compile("bar")
	h := NewRegexHighlighter(p, map[int]string{0: "Error"})
	if err := h.Run(ctx, Highlight, db); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, a := range db.Lines()[0].Atoms() {
		if !a.Face.IsDefault() {
			t.Fatalf("did not expect a match before buffer contains 'bar'")
		}
	}

	buf.ReplaceLines(0, 1, []string{"bar"})
	db2 := oneLineDB(buf)
	if err := h.Run(ctx, Highlight, db2); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	found := false
	for _, a := range db2.Lines()[0].Atoms() {
		if a.Content() == "bar" && !a.Face.IsDefault() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected cache to refresh and highlight 'bar' after the edit")
	}
}
