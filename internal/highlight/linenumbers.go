package highlight

import (
	"fmt"
	"strconv"

	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/units"
)

// ShowLineNumbers prepends a right-aligned line-number gutter atom to each
// display line. Width is sized to the buffer's current line count so every
// number lines up; the cursor's own line gets LineNumberCursor instead of
// LineNumbers. Grounded on show_line_numbers in highlighters.cc.
func ShowLineNumbers() Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		buf := ctx.Buffer()
		digits := len(strconv.Itoa(int(buf.LineCount())))
		if digits < 2 {
			digits = 2
		}

		cursorLine := units.LineCount(-1)
		if sels := ctx.Selections(); sels != nil {
			cursorLine = sels.Primary().Cursor.Line
		}

		for _, line := range db.Lines() {
			begin, _ := line.Range()
			lineNo := begin.Line
			face := "LineNumbers"
			if lineNo == cursorLine {
				face = "LineNumberCursor"
			}
			text := fmt.Sprintf("%*d│", digits, int(lineNo)+1)
			atom := display.NewTextAtom(text, Faces.Resolve(face))
			line.Insert(0, atom)
		}
		db.ComputeRange()
		return nil
	}
}

// FlagLines shows a per-line flag string, looked up by explicit 1-based line
// number from a (line, face, text) triple option, in a fixed-width left
// gutter; lines with no matching entry get a blank pad. bgFace names the
// face whose background is shared across every atom this highlighter
// inserts - each entry's own face supplies only the foreground, falling
// back to the default foreground on unmatched lines. Grounded on
// flag_lines_factory in highlighters.cc, whose vector<LineAndFlag> gives
// each flagged line its own color looked up by line number rather than by
// position in the option value.
func FlagLines(optionName string, bgFace string) Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		entries, err := ctx.Options().GetLineFlags(optionName)
		if err != nil {
			return nil
		}
		bg := Faces.Resolve(bgFace).BG

		width := 0
		byLine := make(map[units.LineCount]int, len(entries))
		for i, e := range entries {
			if n := len([]rune(e.Text)); n > width {
				width = n
			}
			byLine[units.LineCount(e.Line-1)] = i
		}

		for _, line := range db.Lines() {
			begin, _ := line.Range()
			face := coreface.Face{FG: coreface.ColorDefault, BG: bg}
			text := ""
			if i, ok := byLine[begin.Line]; ok {
				e := entries[i]
				text = e.Text
				face = coreface.Face{FG: Faces.Resolve(e.Face).FG, BG: bg}
			}
			for len([]rune(text)) < width {
				text += " "
			}
			atom := display.NewTextAtom(text, face)
			line.Insert(0, atom)
		}
		db.ComputeRange()
		return nil
	}
}
