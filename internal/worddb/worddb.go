// Package worddb implements the incremental word database (C9): a
// per-buffer index of the words it contains, updated incrementally from
// line modifications and queried by prefix or subsequence match for
// completion. Grounded verbatim on original_source/src/word_db.cc.
package worddb

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/prismline/hlcore/internal/textbuf"
	"github.com/prismline/hlcore/internal/units"
)

// isWord reports whether r can be part of a word: letters, digits, and
// underscore. Grounded on Kakoune's default is_word predicate.
func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// getWords extracts the maximal word runs from content, in order.
func getWords(content string) []string {
	var words []string
	inWord := false
	start := 0
	for i, r := range content {
		w := isWord(r)
		switch {
		case !inWord && w:
			start = i
			inWord = true
		case inWord && !w:
			words = append(words, content[start:i])
			inWord = false
		}
	}
	if inWord {
		words = append(words, content[start:])
	}
	return words
}

// DB is a per-buffer word index with occurrence counts, kept current via
// incremental line-modification updates rather than a full rescan.
type DB struct {
	mu          sync.Mutex
	buf         textbuf.Buffer
	timestamp   uint64
	lineToWords [][]string
	words       map[string]int
}

// New builds a word database from buf's current content.
func New(buf textbuf.Buffer) *DB {
	db := &DB{buf: buf, timestamp: buf.Timestamp(), words: make(map[string]int)}
	n := int(buf.LineCount())
	db.lineToWords = make([][]string, n)
	for i := 0; i < n; i++ {
		ws := getWords(buf.Line(units.LineCount(i)))
		db.lineToWords[i] = ws
		addWords(db.words, ws)
	}
	return db
}

func addWords(words map[string]int, ws []string) {
	for _, w := range ws {
		words[w]++
	}
}

func removeWords(words map[string]int, ws []string) {
	for _, w := range ws {
		if n, ok := words[w]; ok {
			if n <= 1 {
				delete(words, w)
			} else {
				words[w] = n - 1
			}
		}
	}
}

// updateLocked refreshes the index against the buffer's current content,
// applying only the line ranges that actually changed since the last
// update. Grounded on WordDB::update_db's unchanged-prefix copy /
// removed-word-subtraction / new-line-rescan / remainder-copy structure;
// the removed/added loop bounds are exclusive of NumRemoved/NumAdded here
// rather than inclusive, since this package's ComputeLineModifications
// reports total removed/added counts rather than Kakoune's
// counted-after-the-anchor-line convention.
func (db *DB) updateLocked() {
	mods := db.buf.ComputeLineModifications(db.timestamp)
	db.timestamp = db.buf.Timestamp()
	if len(mods) == 0 {
		return
	}

	newLines := make([][]string, 0, int(db.buf.LineCount()))
	oldLine := units.LineCount(0)

	for _, m := range mods {
		for oldLine < m.OldLine {
			newLines = append(newLines, db.lineToWords[int(oldLine)])
			oldLine++
		}

		for oldLine < m.OldLine+m.NumRemoved {
			if int(oldLine) < len(db.lineToWords) {
				removeWords(db.words, db.lineToWords[int(oldLine)])
			}
			oldLine++
		}

		for l := units.LineCount(0); l < m.NumAdded; l++ {
			line := m.NewLine + l
			if line >= db.buf.LineCount() {
				break
			}
			ws := getWords(db.buf.Line(line))
			newLines = append(newLines, ws)
			addWords(db.words, ws)
		}
	}
	for int(oldLine) < len(db.lineToWords) {
		newLines = append(newLines, db.lineToWords[int(oldLine)])
		oldLine++
	}
	db.lineToWords = newLines
}

// FindPrefix returns every word starting with prefix, sorted.
func (db *DB) FindPrefix(prefix string) []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.updateLocked()

	all := make([]string, 0, len(db.words))
	for w := range db.words {
		all = append(all, w)
	}
	sort.Strings(all)

	idx := sort.SearchStrings(all, prefix)
	var res []string
	for ; idx < len(all); idx++ {
		if !strings.HasPrefix(all[idx], prefix) {
			break
		}
		res = append(res, all[idx])
	}
	return res
}

// FindSubsequence returns every word containing subsequence's characters
// in order (not necessarily contiguous), letters compared without regard
// to case, e.g. "fb" matches "fooBar".
func (db *DB) FindSubsequence(subsequence string) []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.updateLocked()

	var res []string
	for w := range db.words {
		if subsequenceMatch(w, subsequence) {
			res = append(res, w)
		}
	}
	sort.Strings(res)
	return res
}

func subsequenceMatch(word, subsequence string) bool {
	wi := 0
	wr := []rune(word)
	for _, r := range subsequence {
		found := false
		for wi < len(wr) {
			if unicode.ToLower(wr[wi]) == unicode.ToLower(r) {
				found = true
				wi++
				break
			}
			wi++
		}
		if !found {
			return false
		}
	}
	return true
}

// Occurrences returns how many times word appears in the buffer.
func (db *DB) Occurrences(word string) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.updateLocked()
	return db.words[word]
}
