// Package units defines the strongly-typed coordinate and count types used
// throughout the display and highlighting core. Line, byte, and character
// quantities are distinct types on purpose: a ByteCount and a CharCount are
// never implicitly interchangeable, since a multi-byte rune makes them
// diverge.
package units

import "unicode/utf8"

// LineCount is a zero-based line index or a count of lines.
type LineCount int

// ByteCount is a byte offset within a line, or a count of bytes.
type ByteCount int

// CharCount is a codepoint offset within a line, or a count of codepoints.
type CharCount int

// ByteCoord identifies a position in a buffer by line and byte offset within
// that line. Coordinates are ordered lexicographically: line first, then
// column.
type ByteCoord struct {
	Line   LineCount
	Column ByteCount
}

// Compare returns -1, 0, or 1 as c is less than, equal to, or greater than
// other.
func (c ByteCoord) Compare(other ByteCoord) int {
	if c.Line != other.Line {
		if c.Line < other.Line {
			return -1
		}
		return 1
	}
	if c.Column != other.Column {
		if c.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c sorts before other.
func (c ByteCoord) Less(other ByteCoord) bool { return c.Compare(other) < 0 }

// Equal reports whether c and other name the same position.
func (c ByteCoord) Equal(other ByteCoord) bool { return c == other }

// CharCountOf returns the number of codepoints in s.
func CharCountOf(s string) CharCount {
	return CharCount(utf8.RuneCountInString(s))
}

// ByteCountOf returns the byte length of s.
func ByteCountOf(s string) ByteCount { return ByteCount(len(s)) }

// Max returns the greater of a and b.
func (l LineCount) Max(b LineCount) LineCount {
	if l > b {
		return l
	}
	return b
}

// Min returns the lesser of a and b.
func (l LineCount) Min(b LineCount) LineCount {
	if l < b {
		return l
	}
	return b
}
