package highlight

import (
	"fmt"
	"strconv"
	"strings"
)

// Factory builds a named highlighter from string parameters, the way a
// definition line in a config file would invoke it. Grounded on
// HighlighterFactory / HighlighterAndId in original_source/src/highlighter.hh.
type Factory func(params []string) (id string, fn Func, err error)

// Factories is the process-wide table of recognized highlighter factory
// names, matching register_highlighters in highlighters.cc, supplemented
// with expand_tabulations/expand_unprintable as named factories per
// SPEC_FULL.md §6.
var Factories = map[string]Factory{
	"fill":                fillFactory,
	"regex":               regexFactory,
	"regex_option":        regexOptionFactory,
	"line_option":         lineOptionFactory,
	"search":              searchFactory,
	"show_matching":       showMatchingFactory,
	"number_lines":        showLineNumbersFactory,
	"flag_lines":          flagLinesFactory,
	"show_whitespaces":    showWhitespacesFactory,
	"expand_tabulations":  expandTabulationsFactory,
	"expand_unprintable":  expandUnprintableFactory,
}

func fillFactory(params []string) (string, Func, error) {
	if len(params) != 1 {
		return "", nil, fmt.Errorf("%w: fill wants exactly 1 parameter", ErrFactory)
	}
	fn, err := Fill(params[0])
	if err != nil {
		return "", nil, err
	}
	return "fill_" + params[0], fn, nil
}

var faceSpecRe = "^([0-9]+):(.*)$"

func regexFactory(params []string) (string, Func, error) {
	if len(params) < 2 {
		return "", nil, fmt.Errorf("%w: regex wants a pattern and at least one face spec", ErrFactory)
	}
	faces := make(map[int]string)
	for _, spec := range params[1:] {
		idx := strings.IndexByte(spec, ':')
		if idx < 0 {
			return "", nil, fmt.Errorf("%w: bad face spec %q, expected <capture>:<facespec>", ErrFactory, spec)
		}
		n, err := strconv.Atoi(spec[:idx])
		if err != nil {
			return "", nil, fmt.Errorf("%w: bad capture index in %q", ErrFactory, spec)
		}
		facespec := spec[idx+1:]
		if !Faces.Has(facespec) {
			return "", nil, fmt.Errorf("%w: unknown face %q", ErrFactory, facespec)
		}
		faces[n] = facespec
	}
	pattern, err := Compile(params[0])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFactory, err)
	}
	h := NewRegexHighlighter(pattern, faces)
	return "hlregex'" + params[0] + "'", h.Run, nil
}

func regexOptionFactory(params []string) (string, Func, error) {
	if len(params) != 2 {
		return "", nil, fmt.Errorf("%w: regex_option wants exactly 2 parameters", ErrFactory)
	}
	fn, err := RegexOption(params[0], params[1])
	if err != nil {
		return "", nil, err
	}
	return "hloption_" + params[0], fn, nil
}

func lineOptionFactory(params []string) (string, Func, error) {
	if len(params) != 2 {
		return "", nil, fmt.Errorf("%w: line_option wants exactly 2 parameters", ErrFactory)
	}
	fn, err := LineOption(params[0], params[1])
	if err != nil {
		return "", nil, err
	}
	return "hlline_" + params[0], fn, nil
}

func searchFactory(params []string) (string, Func, error) {
	if len(params) != 0 {
		return "", nil, fmt.Errorf("%w: search takes no parameters", ErrFactory)
	}
	return "hlsearch", Search(), nil
}

func showMatchingFactory(params []string) (string, Func, error) {
	if len(params) != 0 {
		return "", nil, fmt.Errorf("%w: show_matching takes no parameters", ErrFactory)
	}
	return "show_matching", ShowMatching(), nil
}

func showLineNumbersFactory(params []string) (string, Func, error) {
	if len(params) != 0 {
		return "", nil, fmt.Errorf("%w: number_lines takes no parameters", ErrFactory)
	}
	return "number_lines", ShowLineNumbers(), nil
}

func flagLinesFactory(params []string) (string, Func, error) {
	if len(params) != 2 {
		return "", nil, fmt.Errorf("%w: flag_lines wants exactly 2 parameters", ErrFactory)
	}
	if !Faces.Has(params[0]) {
		return "", nil, fmt.Errorf("%w: unknown face %q", ErrFactory, params[0])
	}
	return "hlflags_" + params[1], FlagLines(params[1], params[0]), nil
}

func showWhitespacesFactory(params []string) (string, Func, error) {
	return "show_whitespaces", ShowWhitespaces(0, 0, 0, 0), nil
}

func expandTabulationsFactory(params []string) (string, Func, error) {
	return "expand_tabulations", ExpandTabulations(), nil
}

func expandUnprintableFactory(params []string) (string, Func, error) {
	return "expand_unprintable", ExpandUnprintable(), nil
}

// BuildGroup builds an anonymous "group" highlighter, matching
// highlighter_group_factory: params are ignored, an empty Group is
// returned for the caller to Add members to by name.
func BuildGroup() (string, *Group) {
	return "group", NewGroup()
}
