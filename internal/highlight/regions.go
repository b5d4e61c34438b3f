package highlight

import (
	"sort"

	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

// regionMatch is one begin/end/recurse pattern hit, confined to a single
// buffer line. Grounded on Kakoune::find_matches (highlighters.cc), which
// runs each region pattern with a per-line regex_iterator rather than
// across line boundaries; keeping matches single-line is what lets
// updateMatches shift a surviving match by adjusting only its line number.
type regionMatch struct {
	line  units.LineCount
	begin units.ByteCount
	end   units.ByteCount
}

func (m regionMatch) beginCoord() units.ByteCoord { return units.ByteCoord{Line: m.line, Column: m.begin} }
func (m regionMatch) endCoord() units.ByteCoord   { return units.ByteCoord{Line: m.line, Column: m.end} }

// regionMatches holds the sorted begin/end/recurse match lists for one
// region definition. Grounded on RegionMatches in highlighters.cc.
type regionMatches struct {
	begins, ends, recurses []regionMatch
}

// findMatches scans lines [first,last] for pattern, one line at a time.
// Grounded on Kakoune::find_matches in highlighters.cc.
func findMatches(buf textbuf.Buffer, pattern *Pattern, first, last units.LineCount) []regionMatch {
	if pattern.Empty() || first > last {
		return nil
	}
	var matches []regionMatch
	for l := first; l <= last; l++ {
		spansPerMatch, _ := pattern.FindAllInText(buf.Line(l))
		for _, spans := range spansPerMatch {
			if len(spans) == 0 || !spans[0].Matched() {
				continue
			}
			matches = append(matches, regionMatch{
				line:  l,
				begin: units.ByteCount(spans[0].Start),
				end:   units.ByteCount(spans[0].End),
			})
		}
	}
	return matches
}

// updateMatches ports Kakoune::update_matches (highlighters.cc): existing
// matches are dropped if they fall inside a removed line range, otherwise
// shifted by the diff of the modification immediately preceding them; only
// the line ranges the modifications actually touched are then rescanned,
// and the result is merged back in begin-order. This is what lets a region
// highlighter avoid a full-buffer rescan on every edit.
//
// The erase check here tests containment in [OldLine, OldLine+NumRemoved)
// rather than the original's "line equals some modification's anchor"
// test: this module's textbuf.LineModification reports NumRemoved/NumAdded
// as total removed/added line counts rather than Kakoune's
// counted-after-the-anchor-line convention (see internal/worddb.updateLocked
// and DESIGN.md's open question decision 4), so a pure insertion
// (NumRemoved == 0) must shift the anchor line rather than drop it -
// treating OldLine itself as always-removed, as the original's equality
// test does, would wrongly discard matches on a line that only moved.
func updateMatches(buf textbuf.Buffer, mods []textbuf.LineModification, matches []regionMatch, pattern *Pattern) []regionMatch {
	kept := matches[:0]
	for _, m := range matches {
		idx := sort.Search(len(mods), func(i int) bool { return mods[i].OldLine > m.line })
		erase := false
		if idx > 0 {
			prev := mods[idx-1]
			if m.line < prev.OldLine+prev.NumRemoved {
				erase = true
			} else {
				m.line += prev.Diff()
			}
		}
		if !erase && m.line >= buf.LineCount() {
			erase = true
		}
		if !erase {
			kept = append(kept, m)
		}
	}
	matches = kept
	pivot := len(matches)

	for _, mod := range mods {
		end := mod.NewLine + mod.NumAdded
		if end > buf.LineCount() {
			end = buf.LineCount()
		}
		for l := mod.NewLine; l < end; l++ {
			spansPerMatch, _ := pattern.FindAllInText(buf.Line(l))
			for _, spans := range spansPerMatch {
				if len(spans) == 0 || !spans[0].Matched() {
					continue
				}
				matches = append(matches, regionMatch{
					line:  l,
					begin: units.ByteCount(spans[0].Start),
					end:   units.ByteCount(spans[0].End),
				})
			}
		}
	}

	sort.SliceStable(matches[pivot:], func(i, j int) bool {
		return matches[pivot+i].beginCoord().Compare(matches[pivot+j].beginCoord()) < 0
	})

	merged := make([]regionMatch, 0, len(matches))
	i, j := 0, pivot
	for i < pivot && j < len(matches) {
		if matches[i].beginCoord().Compare(matches[j].beginCoord()) <= 0 {
			merged = append(merged, matches[i])
			i++
		} else {
			merged = append(merged, matches[j])
			j++
		}
	}
	merged = append(merged, matches[i:pivot]...)
	merged = append(merged, matches[j:]...)
	return merged
}

// findNextBegin returns the first begin match at or after pos, or false if
// none exists. Grounded on RegionMatches::find_next_begin's lower_bound.
func findNextBegin(matches []regionMatch, pos units.ByteCoord) (regionMatch, bool) {
	idx := sort.Search(len(matches), func(i int) bool {
		return matches[i].beginCoord().Compare(pos) >= 0
	})
	if idx >= len(matches) {
		return regionMatch{}, false
	}
	return matches[idx], true
}

// findMatchingEnd walks end and recurse matches after begin's end,
// counting recurse-level nesting, to find the end match that actually
// closes this region. Grounded on RegionMatches::find_matching_end.
func findMatchingEnd(ends, recurses []regionMatch, after units.ByteCoord) (regionMatch, bool) {
	level := 0
	ei := sort.Search(len(ends), func(i int) bool { return ends[i].beginCoord().Compare(after) >= 0 })
	ri := sort.Search(len(recurses), func(i int) bool { return recurses[i].beginCoord().Compare(after) >= 0 })

	for ei < len(ends) {
		for ri < len(recurses) && recurses[ri].beginCoord().Compare(ends[ei].beginCoord()) < 0 {
			level++
			ri++
		}
		if level == 0 {
			return ends[ei], true
		}
		level--
		ei++
	}
	return regionMatch{}, false
}

// RegionDesc names one named sub-region of a regions highlighter: the
// highlighter to run inside it, plus its begin/end/recurse patterns.
type RegionDesc struct {
	Name    string
	Begin   *Pattern
	End     *Pattern
	Recurse *Pattern
	Inner   Func
}

type resolvedRegion struct {
	name  string
	begin units.ByteCoord
	end   units.ByteCoord
}

// regionsCache holds, per region description, the raw pattern match lists
// plus the resolved region list derived from them. built distinguishes "no
// buffer edit has happened yet" from "never populated": a fresh Text
// buffer's timestamp starts at 0, so the timestamp alone can't serve as the
// sentinel the way it does in original_source's Cache.
type regionsCache struct {
	built     bool
	timestamp uint64
	matches   []regionMatches
	regions   []resolvedRegion
}

// RegionsHighlighter splits the buffer into named sub-regions delimited by
// begin/end/recurse pattern triples, running each named child highlighter
// only within its own region and a default child on the gaps between
// regions. Grounded on RegionsHighlighter in highlighters.cc.
type RegionsHighlighter struct {
	descs       []RegionDesc
	defaultName string
	children    map[string]Func
	cache       *SideCache[regionsCache]
}

// NewRegionsHighlighter builds a regions highlighter. defaultName names the
// child (already present among descs, or registered separately via
// children) applied to buffer spans outside every resolved region.
func NewRegionsHighlighter(descs []RegionDesc, defaultName string) *RegionsHighlighter {
	children := make(map[string]Func, len(descs))
	for _, d := range descs {
		children[d.Name] = d.Inner
	}
	return &RegionsHighlighter{descs: descs, defaultName: defaultName, children: children, cache: NewSideCache[regionsCache]()}
}

// updateCache rebuilds the region list, doing a full find_matches only the
// first time it runs for a given buffer; every later call diffs against the
// buffer's line modifications since the cached timestamp and only rescans
// what changed. Grounded on RegionsHighlighter::update_cache_ifn.
func (h *RegionsHighlighter) updateCache(buf textbuf.Buffer) []resolvedRegion {
	cache := h.cache.Get(buf)
	bufTimestamp := buf.Timestamp()
	if cache.built && cache.timestamp == bufTimestamp {
		return cache.regions
	}

	lastLine := buf.LineCount() - 1
	if !cache.built {
		cache.matches = make([]regionMatches, len(h.descs))
		for i, d := range h.descs {
			cache.matches[i] = regionMatches{
				begins: findMatches(buf, d.Begin, 0, lastLine),
				ends:   findMatches(buf, d.End, 0, lastLine),
			}
			if !d.Recurse.Empty() {
				cache.matches[i].recurses = findMatches(buf, d.Recurse, 0, lastLine)
			}
		}
		cache.built = true
	} else {
		mods := buf.ComputeLineModifications(cache.timestamp)
		for i, d := range h.descs {
			m := &cache.matches[i]
			m.begins = updateMatches(buf, mods, m.begins, d.Begin)
			m.ends = updateMatches(buf, mods, m.ends, d.End)
			if !d.Recurse.Empty() {
				m.recurses = updateMatches(buf, mods, m.recurses, d.Recurse)
			}
		}
	}
	cache.timestamp = bufTimestamp

	endCoord := buf.EndCoord()
	var regions []resolvedRegion
	pos := units.ByteCoord{}
	for pos.Compare(endCoord) < 0 {
		bestIdx := -1
		var best regionMatch
		for i, rm := range cache.matches {
			m, ok := findNextBegin(rm.begins, pos)
			if !ok {
				continue
			}
			if bestIdx == -1 || m.beginCoord().Compare(best.beginCoord()) < 0 {
				bestIdx = i
				best = m
			}
		}
		if bestIdx == -1 {
			break
		}
		rm := cache.matches[bestIdx]
		end, found := findMatchingEnd(rm.ends, rm.recurses, best.endCoord())
		var regionEnd units.ByteCoord
		if found {
			regionEnd = end.endCoord()
			if regionEnd == best.beginCoord() {
				regionEnd = units.ByteCoord{Line: regionEnd.Line, Column: regionEnd.Column + 1}
			}
		} else {
			regionEnd = endCoord
		}
		regions = append(regions, resolvedRegion{name: h.descs[bestIdx].Name, begin: best.beginCoord(), end: regionEnd})
		pos = regionEnd
	}

	cache.regions = regions
	return regions
}

// Run dispatches to the default child on gaps and the matching named child
// on resolved regions.
func (h *RegionsHighlighter) Run(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
	buf := ctx.Buffer()
	rbegin, rend := db.Range()
	regions := h.updateCache(buf)

	pos := rbegin
	defaultChild := h.children[h.defaultName]

	idx := sort.Search(len(regions), func(i int) bool { return regions[i].end.Compare(rbegin) > 0 })
	for _, r := range regions[idxClamp(idx, len(regions)):] {
		if r.begin.Compare(rend) >= 0 {
			break
		}
		if pos.Compare(r.begin) < 0 && defaultChild != nil {
			if err := Apply(ctx, flags, db, pos, r.begin, defaultChild); err != nil {
				return err
			}
		}
		childBegin, childEnd := correctCoord(r.begin, buf), correctCoord(r.end, buf)
		if child := h.children[r.name]; child != nil {
			if err := Apply(ctx, flags, db, childBegin, childEnd, child); err != nil {
				return err
			}
		}
		if r.end.Compare(pos) > 0 {
			pos = r.end
		}
	}
	if pos.Compare(rend) < 0 && defaultChild != nil {
		if err := Apply(ctx, flags, db, pos, rend, defaultChild); err != nil {
			return err
		}
	}
	return nil
}

func idxClamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// correctCoord applies the original's boundary-correction rule: a
// coordinate whose column equals its line's length is moved to the start
// of the next line, so region boundaries land on a real character position
// rather than a line's trailing end-of-line slot.
func correctCoord(c units.ByteCoord, buf textbuf.Buffer) units.ByteCoord {
	line := buf.Line(c.Line)
	if int(c.Column) == len(line) {
		return units.ByteCoord{Line: c.Line + 1, Column: 0}
	}
	return c
}
