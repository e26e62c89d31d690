package input

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text is a cursor over a string. Tokens are runes, so a token count
// does not map to a fixed number of bytes: OffsetAt reports Unknown
// when the buffered text is too short, because the byte width of the
// missing runes cannot be predicted.
type Text struct {
	data string
	mode Mode
}

// NewText returns a cursor over s.
func NewText(s string, mode Mode) Text {
	return Text{data: s, mode: mode}
}

// String returns the remaining text.
func (t Text) String() string { return t.data }

func (t Text) NextToken() (Text, rune, bool) {
	if len(t.data) == 0 {
		return t, 0, false
	}
	r, size := utf8.DecodeRuneInString(t.data)
	return Text{data: t.data[size:], mode: t.mode}, r, true
}

func (t Text) NextSlice(n int) (Text, Text) {
	rest := Text{data: t.data[n:], mode: t.mode}
	span := Text{data: t.data[:n], mode: t.mode}
	return rest, span
}

// Len is the remaining length in bytes, not runes.
func (t Text) Len() int { return len(t.data) }

func (t Text) OffsetFor(pred func(rune) bool) (int, bool) {
	i := 0
	for _, r := range t.data {
		if !pred(r) {
			return i, true
		}
		i++
	}
	return 0, false
}

func (t Text) OffsetAt(tokens int) (int, Needed, bool) {
	count := 0
	for i := range t.data {
		if count == tokens {
			return i, 0, true
		}
		count++
	}
	if count == tokens {
		return len(t.data), 0, true
	}
	return 0, Unknown, false
}

func (t Text) Partial() bool { return t.mode == Streaming }

// Compare matches the cursor's prefix against pattern.
func (t Text) Compare(pattern string) CompareResult {
	n := min(len(t.data), len(pattern))
	if t.data[:n] != pattern[:n] {
		return CompareError
	}
	if n < len(pattern) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareFold is Compare with simple Unicode case folding, rune by
// rune. Folding is positional and width-preserving: the n-th rune of
// the cursor is compared against the n-th rune of the pattern, and two
// runes whose UTF-8 widths differ (such as İ and i) never match. A
// matched prefix therefore always spans exactly the pattern's byte
// length, so callers can slice it back out of the input.
func (t Text) CompareFold(pattern string) CompareResult {
	s := t.data
	p := pattern
	for len(p) > 0 {
		if len(s) == 0 {
			return CompareIncomplete
		}
		sr, ssize := utf8.DecodeRuneInString(s)
		pr, psize := utf8.DecodeRuneInString(p)
		if ssize != psize || unicode.ToLower(sr) != unicode.ToLower(pr) {
			return CompareError
		}
		s = s[ssize:]
		p = p[psize:]
	}
	return CompareOK
}

// FindSlice returns the byte offset of the leftmost occurrence of
// pattern, or false when pattern does not occur in the buffered
// remainder.
func (t Text) FindSlice(pattern string) (int, bool) {
	idx := strings.Index(t.data, pattern)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
