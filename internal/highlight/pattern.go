package highlight

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Pattern wraps a compiled regexp2.Regexp. regexp2 (rather than stdlib
// regexp) is used throughout this package because region begin/end/recurse
// patterns and some face-spec regexes rely on lookaround and backreference
// constructs that Go's RE2-based regexp cannot express; see SPEC_FULL.md
// §4.10.
type Pattern struct {
	re *regexp2.Regexp
	src string
}

// Compile compiles src. An empty pattern compiles successfully to a
// Pattern that never matches, mirroring Kakoune's empty-Regex-on-error
// behavior for the search/regex_option highlighters.
func Compile(src string) (*Pattern, error) {
	if src == "" {
		return &Pattern{src: src}, nil
	}
	re, err := regexp2.Compile(src, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("regex error: %w", err)
	}
	return &Pattern{re: re, src: src}, nil
}

// Empty reports whether this is the zero/unset pattern.
func (p *Pattern) Empty() bool { return p == nil || p.re == nil }

// Source returns the original pattern text.
func (p *Pattern) Source() string { return p.src }

// FindAllInText finds all non-overlapping matches in text, byte-indexed.
// Callers are responsible for mapping byte offsets back to ByteCoord via
// the line/column scan appropriate for their buffer representation.
func (p *Pattern) FindAllInText(text string) ([][]Span, error) {
	if p.Empty() {
		return nil, nil
	}
	// regexp2 reports capture positions in runes; byteAt maps a rune index
	// to its byte offset in text.
	byteAt := make([]int, 0, len(text)+1)
	for i := range text {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(text))
	var results [][]Span
	m, err := p.re.FindStringMatch(text)
	for m != nil {
		if err != nil {
			return results, err
		}
		groups := m.Groups()
		spans := make([]Span, len(groups))
		for i, g := range groups {
			if len(g.Captures) == 0 {
				spans[i] = Span{Start: -1, End: -1}
				continue
			}
			c := g.Captures[0]
			spans[i] = Span{Start: byteAt[c.Index], End: byteAt[c.Index+c.Length]}
		}
		results = append(results, spans)
		m, err = p.re.FindNextMatch(m)
	}
	return results, err
}

// Span is a [Start,End) byte range within the text a pattern was run
// against; Start==-1 marks an unmatched optional group.
type Span struct {
	Start, End int
}

// Matched reports whether the span represents a participating group.
func (s Span) Matched() bool { return s.Start >= 0 }
