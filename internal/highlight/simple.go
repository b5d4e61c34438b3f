package highlight

import (
	"fmt"

	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/units"
)

// Fill paints facespec over the entire visible range. Grounded on
// fill_factory in highlighters.cc.
func Fill(facespec string) (Func, error) {
	if !Faces.Has(facespec) {
		return nil, fmt.Errorf("%w: unknown face %q", ErrFactory, facespec)
	}
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		begin, end := db.Range()
		HighlightRange(db, begin, end, true, applyFace(Faces.Resolve(facespec)))
		return nil
	}, nil
}

// LineOption highlights the single line named by an int option with
// facespec, re-reading the option value on every pass. Grounded on
// highlight_line_option_factory.
func LineOption(optionName, facespec string) (Func, error) {
	if !Faces.Has(facespec) {
		return nil, fmt.Errorf("%w: unknown face %q", ErrFactory, facespec)
	}
	return func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		if flags != Highlight {
			return nil
		}
		line, err := ctx.Options().GetInt(optionName)
		if err != nil {
			return nil
		}
		begin := units.ByteCoord{Line: units.LineCount(line - 1), Column: 0}
		end := units.ByteCoord{Line: units.LineCount(line), Column: 0}
		HighlightRange(db, begin, end, false, applyFace(Faces.Resolve(facespec)))
		return nil
	}, nil
}

// dynamicRegex re-resolves its pattern and face on every pass (the regex
// text, or the face spec, may depend on mutable state such as the search
// register or an option value). Grounded on DynamicRegexHighlighter in
// highlighters.cc: a cached RegexHighlighter is only rebuilt when the
// resolved pattern/face text actually changed since the last pass.
type dynamicRegex struct {
	getPattern func(ctx *editorctx.Context) (string, error)
	getFaces   func(ctx *editorctx.Context) map[int]string

	lastPattern string
	lastFaces   map[int]string
	inner       *RegexHighlighter
}

func (d *dynamicRegex) run(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
	if flags != Highlight {
		return nil
	}
	src, err := d.getPattern(ctx)
	if err != nil {
		src = ""
	}
	faces := d.getFaces(ctx)

	if src != d.lastPattern || !facesEqual(faces, d.lastFaces) {
		d.lastPattern = src
		d.lastFaces = faces
		if src != "" {
			if p, err := Compile(src); err == nil {
				d.inner = NewRegexHighlighter(p, faces)
			} else {
				d.inner = nil
			}
		} else {
			d.inner = nil
		}
	}
	if d.inner == nil {
		return nil
	}
	return d.inner.Run(ctx, flags, db)
}

func facesEqual(a, b map[int]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// Search highlights the last pattern stored in the "/" register with the
// Search face. Grounded on highlight_search_factory: the pattern source is
// the "/" register of the Context passed to each pass (its register store,
// not a process-wide one), read fresh every pass, and a compile failure
// yields no highlighting for that frame rather than an error.
func Search() Func {
	d := &dynamicRegex{
		getPattern: func(ctx *editorctx.Context) (string, error) {
			return ctx.MainSelRegisterValue('/'), nil
		},
		getFaces: func(ctx *editorctx.Context) map[int]string {
			return map[int]string{0: "Search"}
		},
	}
	return d.run
}

// RegexOption highlights matches of a regex-valued option with facespec.
// Grounded on highlight_regex_option_factory.
func RegexOption(optionName, facespec string) (Func, error) {
	if !Faces.Has(facespec) {
		return nil, fmt.Errorf("%w: unknown face %q", ErrFactory, facespec)
	}
	d := &dynamicRegex{
		getPattern: func(ctx *editorctx.Context) (string, error) {
			return ctx.Options().GetString(optionName)
		},
		getFaces: func(ctx *editorctx.Context) map[int]string {
			return map[int]string{0: facespec}
		},
	}
	return d.run, nil
}
