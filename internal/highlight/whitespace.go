package highlight

import (
	"strings"

	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/units"
)

// columnForTabstop computes the display column reached after expanding
// tabs up to byte offset col on a line, given tabstop. Grounded on
// get_column in highlighters.cc.
func columnForTabstop(line string, tabstop int, col units.ByteCount) int {
	column := 0
	for i := 0; i < int(col) && i < len(line); i++ {
		if line[i] == '\t' {
			column += tabstop - column%tabstop
		} else {
			column++
		}
	}
	return column
}

// ExpandTabulations replaces each literal tab in a BufferRange atom with
// enough spaces to reach the next tabstop column, splitting the atom
// around the tab as needed. Grounded on expand_tabulations.
func ExpandTabulations() Func {
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		tabstop, err := ctx.Options().GetInt("tabstop")
		if err != nil || tabstop <= 0 {
			tabstop = 8
		}
		for _, line := range db.Lines() {
			expandTabsInLine(line, ctx.Buffer(), tabstop)
		}
		db.ComputeRange()
		return nil
	}
}

func expandTabsInLine(line *display.Line, buf interface {
	Line(units.LineCount) string
}, tabstop int) {
	for i := 0; i < len(line.Atoms()); i++ {
		atoms := line.Atoms()
		a := atoms[i]
		if a.Type() != display.BufferRange {
			continue
		}
		content := a.Content()
		tabIdx := strings.IndexByte(content, '\t')
		if tabIdx < 0 {
			continue
		}
		tabPos := units.ByteCoord{Line: a.Begin().Line, Column: a.Begin().Column + units.ByteCount(tabIdx)}
		if tabPos != a.Begin() {
			i = line.Split(i, tabPos) + 1
		}
		atoms = line.Atoms()
		a = atoms[i]
		tabEnd := units.ByteCoord{Line: tabPos.Line, Column: tabPos.Column + 1}
		if tabEnd != a.End() {
			line.Split(i, tabEnd)
			atoms = line.Atoms()
			a = atoms[i]
		}
		lineText := buf.Line(tabPos.Line)
		column := columnForTabstop(lineText, tabstop, tabPos.Column)
		count := tabstop - column%tabstop
		a.Replace(strings.Repeat(" ", count))
		atoms[i] = a
	}
}

// ShowWhitespaces replaces space, tab, and trailing-newline atoms with
// visible glyphs (·, →, ¬ by default) in the Whitespace face. Grounded on
// show_whitespaces.
func ShowWhitespaces(spaceGlyph, tabGlyph, tabPadGlyph, nlGlyph rune) Func {
	if spaceGlyph == 0 {
		spaceGlyph = '·'
	}
	if tabGlyph == 0 {
		tabGlyph = '→'
	}
	if tabPadGlyph == 0 {
		tabPadGlyph = ' '
	}
	if nlGlyph == 0 {
		nlGlyph = '¬'
	}
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		tabstop, err := ctx.Options().GetInt("tabstop")
		if err != nil || tabstop <= 0 {
			tabstop = 8
		}
		face := Faces.Resolve("Whitespace")
		for _, line := range db.Lines() {
			for i := 0; i < len(line.Atoms()); i++ {
				atoms := line.Atoms()
				a := atoms[i]
				if a.Type() != display.BufferRange {
					continue
				}
				content := a.Content()
				if a.End().Line != a.Begin().Line {
					// A full-line atom runs through the line's newline,
					// which Content does not include.
					content += "\n"
				}
				for bi, r := range content {
					switch r {
					case ' ', '\t', '\n':
					default:
						continue
					}
					pos := units.ByteCoord{Line: a.Begin().Line, Column: a.Begin().Column + units.ByteCount(bi)}
					if pos != a.Begin() {
						i = line.Split(i, pos) + 1
					}
					atoms = line.Atoms()
					a = atoms[i]
					end := units.ByteCoord{Line: pos.Line, Column: pos.Column + 1}
					if r == '\n' {
						end = a.End()
					}
					if end != a.End() {
						line.Split(i, end)
						atoms = line.Atoms()
						a = atoms[i]
					}
					var repl string
					switch r {
					case ' ':
						repl = string(spaceGlyph)
					case '\t':
						col := columnForTabstop(ctx.Buffer().Line(pos.Line), tabstop, pos.Column)
						count := tabstop - col%tabstop
						repl = string(tabGlyph) + strings.Repeat(string(tabPadGlyph), count-1)
					case '\n':
						repl = string(nlGlyph)
					}
					a.Replace(repl)
					a.Face = a.Face.Overlay(face)
					atoms[i] = a
					break
				}
			}
		}
		db.ComputeRange()
		return nil
	}
}
