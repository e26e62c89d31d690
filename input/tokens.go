package input

// Tokens is a cursor over a slice of user-defined tokens. Each element
// is one token, so storage units and token counts coincide.
type Tokens[T comparable] struct {
	data []T
	mode Mode
}

// NewTokens returns a cursor over items. The slice is not copied;
// callers must not mutate it while the cursor is in use.
func NewTokens[T comparable](items []T, mode Mode) Tokens[T] {
	return Tokens[T]{data: items, mode: mode}
}

// Items returns the remaining tokens without copying.
func (t Tokens[T]) Items() []T { return t.data }

func (t Tokens[T]) NextToken() (Tokens[T], T, bool) {
	if len(t.data) == 0 {
		var zero T
		return t, zero, false
	}
	return Tokens[T]{data: t.data[1:], mode: t.mode}, t.data[0], true
}

func (t Tokens[T]) NextSlice(n int) (Tokens[T], Tokens[T]) {
	rest := Tokens[T]{data: t.data[n:], mode: t.mode}
	span := Tokens[T]{data: t.data[:n], mode: t.mode}
	return rest, span
}

func (t Tokens[T]) Len() int { return len(t.data) }

func (t Tokens[T]) OffsetFor(pred func(T) bool) (int, bool) {
	for i, tok := range t.data {
		if !pred(tok) {
			return i, true
		}
	}
	return 0, false
}

func (t Tokens[T]) OffsetAt(tokens int) (int, Needed, bool) {
	if tokens > len(t.data) {
		return 0, Needed(tokens - len(t.data)), false
	}
	return tokens, 0, true
}

func (t Tokens[T]) Partial() bool { return t.mode == Streaming }

// Compare matches the cursor's prefix against pattern element by
// element using ==.
func (t Tokens[T]) Compare(pattern []T) CompareResult {
	n := min(len(t.data), len(pattern))
	for i := 0; i < n; i++ {
		if t.data[i] != pattern[i] {
			return CompareError
		}
	}
	if n < len(pattern) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareFold is Compare; user-defined tokens have no case.
func (t Tokens[T]) CompareFold(pattern []T) CompareResult {
	return t.Compare(pattern)
}

// FindSlice returns the offset of the leftmost occurrence of pattern,
// or false when pattern does not occur in the buffered remainder.
func (t Tokens[T]) FindSlice(pattern []T) (int, bool) {
	if len(pattern) == 0 {
		return 0, true
	}
	for i := 0; i+len(pattern) <= len(t.data); i++ {
		match := true
		for j, p := range pattern {
			if t.data[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}
	return 0, false
}
