// Package span implements the positioned input abstraction that every
// recognizer in this module consumes and produces: an immutable view over
// the original source text carrying its byte offset and 1-based line/column,
// alongside the remaining fragment still to be parsed.
package span

import "strings"

// Span is a value-typed, cheap-to-copy view over a suffix of some original
// source text. Offset is the byte offset from the start of that original
// text; Line and Column are 1-based, with Column advanced by bytes (see
// Slice), so on a line holding multibyte characters it is a byte column,
// not a count of Unicode scalar values. Fragment is the remaining slice
// starting at Offset.
//
// Two Spans are equal (via ==) iff Offset, Line, Column and Fragment all
// match; position history prior to reaching that state is not part of
// equality.
type Span struct {
	Offset   int
	Line     int32
	Column   int
	Fragment string
}

// New creates a Span over text at offset 0, line 1, column 1.
func New(text string) Span {
	return Span{Offset: 0, Line: 1, Column: 1, Fragment: text}
}

// NewAt constructs a Span at an arbitrary position, bypassing the usual
// slicing arithmetic. Intended for tests that need to assert behavior at a
// specific line/column without parsing up to it first.
func NewAt(text string, offset int, line int32, column int) Span {
	return Span{Offset: offset, Line: line, Column: column, Fragment: text}
}

// Length reports the number of bytes remaining in the fragment.
func (s Span) Length() int {
	return len(s.Fragment)
}

// AtEnd reports whether the fragment is empty.
func (s Span) AtEnd() bool {
	return len(s.Fragment) == 0
}

// Take returns the Span covering the first n bytes of the fragment.
func (s Span) Take(n int) Span {
	return s.Slice(0, n)
}

// TakeSplit splits the fragment at byte n, returning the remainder (bytes
// [n:]) and the consumed prefix (bytes [:n]) as two Spans positioned
// relative to the original source.
func (s Span) TakeSplit(n int) (rest, prefix Span) {
	return s.Slice(n, len(s.Fragment)), s.Slice(0, n)
}

// Index pairs a byte offset (relative to the fragment) with the codepoint
// starting there, as produced by IterateIndices.
type Index struct {
	Offset int
	Rune   rune
}

// IterateIndices returns every (byte offset, codepoint) pair in the
// fragment, in order. Unlike a push/pull iterator, the result is a plain
// slice, which is trivially "restartable" by calling it again. Position and
// the identifier scanner do not use it; they range over the fragment
// directly.
func (s Span) IterateIndices() []Index {
	indices := make([]Index, 0, len(s.Fragment))
	for i, r := range s.Fragment {
		indices = append(indices, Index{Offset: i, Rune: r})
	}
	return indices
}

// Position returns the byte offset of the first codepoint satisfying
// predicate, or ok=false if none does.
func (s Span) Position(predicate func(rune) bool) (offset int, ok bool) {
	for i, r := range s.Fragment {
		if predicate(r) {
			return i, true
		}
	}
	return 0, false
}

// FindSubstring returns the first byte offset at which needle occurs in the
// fragment. By contract an empty needle never matches (ok=false), which
// differs from strings.Index's "" always matches at 0" behavior.
func (s Span) FindSubstring(needle string) (offset int, ok bool) {
	if needle == "" {
		return 0, false
	}
	idx := strings.Index(s.Fragment, needle)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// CompareResult is the tri-state outcome of Compare/CompareNoCase.
type CompareResult int

const (
	// CompareOk means the fragment starts with the needle.
	CompareOk CompareResult = iota
	// CompareIncomplete means the fragment is a strict prefix of the
	// needle: more input could still make it match.
	CompareIncomplete
	// CompareError means the fragment cannot possibly start with the
	// needle, regardless of further input.
	CompareError
)

// Compare reports whether the fragment starts with needle, byte-for-byte.
func (s Span) Compare(needle string) CompareResult {
	return compare(s.Fragment, needle, func(a, b string) bool { return a == b })
}

// CompareNoCase is Compare with case folding.
func (s Span) CompareNoCase(needle string) CompareResult {
	return compare(s.Fragment, needle, strings.EqualFold)
}

func compare(fragment, needle string, equal func(string, string) bool) CompareResult {
	if len(fragment) >= len(needle) {
		if equal(fragment[:len(needle)], needle) {
			return CompareOk
		}
		return CompareError
	}
	if equal(fragment, needle[:len(fragment)]) {
		return CompareIncomplete
	}
	return CompareError
}

// Slice returns the Span covering fragment bytes [start:end), with Offset,
// Line and Column recomputed relative to s. The algorithm scans the
// consumed prefix (s.Fragment[:start]) once for newlines: each one
// advances Line by one, and Column becomes the byte distance from the last
// newline to start; absent any newline in the prefix, Column simply
// advances by start.
//
// Slicing out of bounds (start < 0, end > len(s.Fragment), or start > end)
// is a programmer error, not a parse failure, and panics.
func (s Span) Slice(start, end int) Span {
	if start < 0 || end > len(s.Fragment) || start > end {
		panic("span: slice out of bounds")
	}
	consumed := s.Fragment[:start]
	line := s.Line
	column := s.Column
	if idx := strings.LastIndexByte(consumed, '\n'); idx >= 0 {
		line += int32(strings.Count(consumed, "\n"))
		column = start - idx
	} else {
		column = s.Column + start
	}
	return Span{
		Offset:   s.Offset + start,
		Line:     line,
		Column:   column,
		Fragment: s.Fragment[start:end],
	}
}
