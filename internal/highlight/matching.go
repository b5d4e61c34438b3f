package highlight

import (
	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}', '<': '>',
}
var bracketPairsRev = map[rune]rune{
	')': '(', ']': '[', '}': '{', '>': '<',
}

// ShowMatching highlights the bracket at the primary cursor and its
// matching partner, when the cursor sits on a bracket character. Grounded
// on show_matching_char in highlighters.cc, including its forward/backward
// nesting-level scan and its `pos > range.first` guard: when the cursor is
// on a closing bracket that sits exactly at the start of the visible
// range, no backward scan is made and nothing is highlighted (see
// DESIGN.md Open Question 1). A partner found anywhere, including at the
// start of the visible range, is highlighted.
func ShowMatching() Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		sels := ctx.Selections()
		if sels == nil {
			return nil
		}
		cursor := sels.Primary().Cursor
		buf := ctx.Buffer()
		line := buf.Line(cursor.Line)
		if int(cursor.Column) >= len(line) {
			return nil
		}
		ch := rune(line[cursor.Column])

		face := Faces.Resolve("MatchingChar")
		rbegin, _ := db.Range()

		if closing, ok := bracketPairs[ch]; ok {
			if pos, found := scanForward(buf, cursor, ch, closing); found {
				end := buf.NextCoord(pos)
				HighlightRange(db, pos, end, false, applyFace(face))
				selfEnd := buf.NextCoord(cursor)
				HighlightRange(db, cursor, selfEnd, false, applyFace(face))
			}
			return nil
		}
		if opening, ok := bracketPairsRev[ch]; ok && cursor.Compare(rbegin) > 0 {
			if pos, found := scanBackward(buf, cursor, ch, opening); found {
				end := buf.NextCoord(pos)
				HighlightRange(db, pos, end, false, applyFace(face))
				selfEnd := buf.NextCoord(cursor)
				HighlightRange(db, cursor, selfEnd, false, applyFace(face))
			}
			return nil
		}
		return nil
	}
}

func scanForward(buf textbuf.Buffer, from units.ByteCoord, open, close rune) (units.ByteCoord, bool) {
	level := 0
	pos := buf.NextCoord(from)
	end := buf.EndCoord()
	for pos.Compare(end) < 0 {
		line := buf.Line(pos.Line)
		if int(pos.Column) < len(line) {
			ch := rune(line[pos.Column])
			if ch == open {
				level++
			} else if ch == close {
				if level == 0 {
					return pos, true
				}
				level--
			}
		}
		pos = buf.NextCoord(pos)
	}
	return units.ByteCoord{}, false
}

func scanBackward(buf textbuf.Buffer, from units.ByteCoord, close, open rune) (units.ByteCoord, bool) {
	level := 0
	pos := from
	for {
		if pos.Line == 0 && pos.Column == 0 {
			return units.ByteCoord{}, false
		}
		pos = prevCoord(buf, pos)
		line := buf.Line(pos.Line)
		if int(pos.Column) < len(line) {
			ch := rune(line[pos.Column])
			if ch == close {
				level++
			} else if ch == open {
				if level == 0 {
					return pos, true
				}
				level--
			}
		}
	}
}

func prevCoord(buf textbuf.Buffer, c units.ByteCoord) units.ByteCoord {
	if c.Column > 0 {
		return units.ByteCoord{Line: c.Line, Column: c.Column - 1}
	}
	if c.Line > 0 {
		prevLine := buf.Line(c.Line - 1)
		return units.ByteCoord{Line: c.Line - 1, Column: units.ByteCount(len(prevLine))}
	}
	return c
}
