package highlight

import (
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
)

// Selections highlights every selection range with Primary/Secondary
// Selection, then overlays Primary/Secondary Cursor on each selection's
// cursor character. Grounded on highlight_selections in highlighters.cc:
// two passes, ranges first then cursors, so a cursor always wins over the
// selection face underneath it.
func Selections() Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		sels := ctx.Selections()
		if sels == nil {
			return nil
		}
		all := sels.All()
		buf := ctx.Buffer()

		for i, r := range all {
			face := "SecondarySelection"
			if i == 0 {
				face = "PrimarySelection"
			}
			begin, end := r.Normalize()
			end = buf.NextCoord(end)
			if begin != end {
				HighlightRange(db, begin, end, false, applyFace(Faces.Resolve(face)))
			}
		}
		for i, r := range all {
			face := "SecondaryCursor"
			if i == 0 {
				face = "PrimaryCursor"
			}
			cursorEnd := buf.NextCoord(r.Cursor)
			HighlightRange(db, r.Cursor, cursorEnd, false, applyFace(Faces.Resolve(face)))
		}
		return nil
	}
}
