package highlight

import (
	"fmt"
	"unicode"

	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/units"
)

var unprintableFace = coreface.Face{FG: coreface.NamedColor("red"), BG: coreface.NamedColor("black")}

// ExpandUnprintable substitutes a "U+XXXX" hex placeholder, in a
// red-on-black face, for any codepoint unicode.IsPrint rejects. Grounded on
// expand_unprintable in highlighters.cc.
func ExpandUnprintable() Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		for _, line := range db.Lines() {
			for i := 0; i < len(line.Atoms()); i++ {
				atoms := line.Atoms()
				a := atoms[i]
				if a.Type() != display.BufferRange {
					continue
				}
				content := a.Content()
				for bi, r := range content {
					if unicode.IsPrint(r) {
						continue
					}
					pos := units.ByteCoord{Line: a.Begin().Line, Column: a.Begin().Column + units.ByteCount(bi)}
					if pos != a.Begin() {
						i = line.Split(i, pos) + 1
					}
					atoms = line.Atoms()
					a = atoms[i]
					width := units.ByteCount(len(string(r)))
					end := units.ByteCoord{Line: pos.Line, Column: pos.Column + width}
					if end != a.End() {
						line.Split(i, end)
						atoms = line.Atoms()
						a = atoms[i]
					}
					a.Replace(fmt.Sprintf("U+%04X", r))
					a.Face = a.Face.Overlay(unprintableFace)
					atoms[i] = a
					break
				}
			}
		}
		db.ComputeRange()
		return nil
	}
}
