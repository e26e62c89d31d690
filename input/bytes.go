package input

import "bytes"

// Bytes is a cursor over a byte slice. Tokens are single bytes, so
// storage units and token counts coincide. The zero value is an empty
// complete cursor.
type Bytes struct {
	data []byte
	mode Mode
}

// NewBytes returns a cursor over data. The slice is not copied; callers
// must not mutate it while the cursor is in use.
func NewBytes(data []byte, mode Mode) Bytes {
	return Bytes{data: data, mode: mode}
}

// Bytes returns the remaining bytes without copying.
func (b Bytes) Bytes() []byte { return b.data }

func (b Bytes) String() string { return string(b.data) }

func (b Bytes) NextToken() (Bytes, byte, bool) {
	if len(b.data) == 0 {
		return b, 0, false
	}
	return Bytes{data: b.data[1:], mode: b.mode}, b.data[0], true
}

func (b Bytes) NextSlice(n int) (Bytes, Bytes) {
	rest := Bytes{data: b.data[n:], mode: b.mode}
	span := Bytes{data: b.data[:n], mode: b.mode}
	return rest, span
}

func (b Bytes) Len() int { return len(b.data) }

func (b Bytes) OffsetFor(pred func(byte) bool) (int, bool) {
	for i, c := range b.data {
		if !pred(c) {
			return i, true
		}
	}
	return 0, false
}

func (b Bytes) OffsetAt(tokens int) (int, Needed, bool) {
	if tokens > len(b.data) {
		return 0, Needed(tokens - len(b.data)), false
	}
	return tokens, 0, true
}

func (b Bytes) Partial() bool { return b.mode == Streaming }

// Compare matches the cursor's prefix against pattern byte by byte.
func (b Bytes) Compare(pattern []byte) CompareResult {
	n := min(len(b.data), len(pattern))
	if !bytes.Equal(b.data[:n], pattern[:n]) {
		return CompareError
	}
	if n < len(pattern) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareFold is Compare with ASCII case folding.
func (b Bytes) CompareFold(pattern []byte) CompareResult {
	n := min(len(b.data), len(pattern))
	for i := 0; i < n; i++ {
		if asciiLower(b.data[i]) != asciiLower(pattern[i]) {
			return CompareError
		}
	}
	if n < len(pattern) {
		return CompareIncomplete
	}
	return CompareOK
}

// FindSlice returns the storage-unit offset of the leftmost occurrence
// of pattern, or false when pattern does not occur in the buffered
// remainder.
func (b Bytes) FindSlice(pattern []byte) (int, bool) {
	idx := bytes.Index(b.data, pattern)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
