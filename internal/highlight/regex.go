package highlight

import (
	"strings"

	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

// rangeText concatenates buf's lines [first,last] (inclusive) with '\n'
// separators and returns a function mapping a byte offset in that
// concatenation back to a ByteCoord, so a regex run against the
// concatenated text can locate its matches in the buffer.
func rangeText(buf textbuf.Buffer, first, last units.LineCount) (string, func(int) units.ByteCoord) {
	var b strings.Builder
	starts := make([]int, 0, int(last-first)+1)
	for l := first; l <= last; l++ {
		starts = append(starts, b.Len())
		b.WriteString(buf.Line(l))
		if l != last {
			b.WriteByte('\n')
		}
	}
	text := b.String()
	toCoord := func(offset int) units.ByteCoord {
		// Binary search for the last start <= offset.
		lo, hi := 0, len(starts)-1
		idx := 0
		for lo <= hi {
			mid := (lo + hi) / 2
			if starts[mid] <= offset {
				idx = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		return units.ByteCoord{Line: first + units.LineCount(idx), Column: units.ByteCount(offset - starts[idx])}
	}
	return text, toCoord
}

// regexMatch is one match's per-capture-group [begin,end) buffer spans.
type regexMatch struct {
	groups []span2
}

type span2 struct {
	begin, end units.ByteCoord
	ok         bool
}

// regexCache holds the match results for a regex highlighter, the buffer
// line range they cover, and the timestamp they were computed at.
// Grounded on RegexHighlighter::Cache in highlighters.cc.
type regexCache struct {
	// built is false until the first scan; a zero timestamp and an empty
	// 0..0 line range would otherwise look like a valid, covering cache.
	built               bool
	firstLine, lastLine units.LineCount
	timestamp           uint64
	matches             []regexMatch
}

// updateRegexCache refreshes cache in place if the requested [first,last]
// range isn't already covered at the buffer's current timestamp, using a
// 10-line margin on each side exactly as the original does (so small
// viewport scrolls don't force a full rescan).
func updateRegexCache(cache *regexCache, buf textbuf.Buffer, pattern *Pattern, first, last units.LineCount) {
	lastLine := buf.LineCount() - 1
	if last > lastLine {
		last = lastLine
	}

	if cache.built && buf.Timestamp() == cache.timestamp && first >= cache.firstLine && last <= cache.lastLine {
		return
	}

	cache.firstLine = first - 10
	if cache.firstLine < 0 {
		cache.firstLine = 0
	}
	cache.lastLine = last + 10
	if cache.lastLine > lastLine {
		cache.lastLine = lastLine
	}
	cache.timestamp = buf.Timestamp()
	cache.built = true
	cache.matches = nil

	if pattern.Empty() || cache.firstLine > cache.lastLine {
		return
	}

	text, toCoord := rangeText(buf, cache.firstLine, cache.lastLine)
	spansPerMatch, _ := pattern.FindAllInText(text)
	for _, spans := range spansPerMatch {
		m := regexMatch{groups: make([]span2, len(spans))}
		for i, s := range spans {
			if !s.Matched() {
				continue
			}
			m.groups[i] = span2{begin: toCoord(s.Start), end: toCoord(s.End), ok: true}
		}
		cache.matches = append(cache.matches, m)
	}
}

// RegexHighlighter applies a face to each capture group of every match of
// a fixed pattern in the visible buffer range. Grounded on RegexHighlighter
// in highlighters.cc.
type RegexHighlighter struct {
	pattern *Pattern
	faces   map[int]string
	cache   *SideCache[regexCache]
}

// NewRegexHighlighter builds a highlighter for pattern, applying faces[n]
// to capture group n (group 0 is the whole match).
func NewRegexHighlighter(pattern *Pattern, faces map[int]string) *RegexHighlighter {
	return &RegexHighlighter{pattern: pattern, faces: faces, cache: NewSideCache[regexCache]()}
}

// Run applies the highlighter, doing nothing outside Highlight passes
// (matching the original's `if (flags != Highlight) return;`… a MoveOnly
// pass must never introduce a face change).
func (h *RegexHighlighter) Run(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
	if flags != Highlight {
		return nil
	}
	buf := ctx.Buffer()
	rbegin, rend := db.Range()
	cache := h.cache.Get(buf)
	updateRegexCache(cache, buf, h.pattern, rbegin.Line, rend.Line)

	for _, match := range cache.matches {
		for n, g := range match.groups {
			if !g.ok {
				continue
			}
			name, ok := h.faces[n]
			if !ok {
				continue
			}
			face := Faces.Resolve(name)
			HighlightRange(db, g.begin, g.end, true, applyFace(face))
		}
	}
	return nil
}
