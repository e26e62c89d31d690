package parse

import "github.com/dhamidi/nibble/input"

// Any matches any single token.
func Any[C input.Cursor[C, T], T any]() Parser[C, T] {
	return func(c C) (C, T, error) {
		rest, tok, ok := c.NextToken()
		if !ok {
			if c.Partial() {
				return incomplete[C, T](c, 1)
			}
			return fail[C, T](c, KindToken)
		}
		return rest, tok, nil
	}
}

// Tag matches the literal pattern exactly, producing the matched span.
// A streaming cursor holding a strict prefix of the pattern yields an
// incomplete outcome with the exact remaining amount; a cursor that
// disagrees with the pattern at any position fails regardless of
// length.
func Tag[C Comparable[C, P], P ~string | ~[]byte](pattern P) Parser[C, C] {
	return func(c C) (C, C, error) {
		return matchTag(c, len(pattern), c.Compare(pattern))
	}
}

// TagNoCase is Tag with case-insensitive comparison.
func TagNoCase[C Comparable[C, P], P ~string | ~[]byte](pattern P) Parser[C, C] {
	return func(c C) (C, C, error) {
		return matchTag(c, len(pattern), c.CompareFold(pattern))
	}
}

// TagTokens is Tag for cursors over user-defined token slices.
func TagTokens[C Comparable[C, []T], T comparable](pattern []T) Parser[C, C] {
	return func(c C) (C, C, error) {
		return matchTag(c, len(pattern), c.Compare(pattern))
	}
}

func matchTag[C Sliceable[C]](c C, patternLen int, cmp input.CompareResult) (C, C, error) {
	switch cmp {
	case input.CompareOK:
		rest, span := c.NextSlice(patternLen)
		return rest, span, nil
	case input.CompareIncomplete:
		if c.Partial() {
			return incomplete[C, C](c, input.Needed(patternLen-c.Len()))
		}
		return fail[C, C](c, KindTag)
	default:
		return fail[C, C](c, KindTag)
	}
}

// OneOf matches a single token contained in set.
func OneOf[C input.Cursor[C, T], T comparable](set ...T) Parser[C, T] {
	return func(c C) (C, T, error) {
		rest, tok, ok := c.NextToken()
		if !ok {
			if c.Partial() {
				return incomplete[C, T](c, 1)
			}
			return fail[C, T](c, KindOneOf)
		}
		for _, want := range set {
			if tok == want {
				return rest, tok, nil
			}
		}
		return fail[C, T](c, KindOneOf)
	}
}

// NoneOf matches a single token not contained in set.
func NoneOf[C input.Cursor[C, T], T comparable](set ...T) Parser[C, T] {
	return func(c C) (C, T, error) {
		rest, tok, ok := c.NextToken()
		if !ok {
			if c.Partial() {
				return incomplete[C, T](c, 1)
			}
			return fail[C, T](c, KindNoneOf)
		}
		for _, banned := range set {
			if tok == banned {
				return fail[C, T](c, KindNoneOf)
			}
		}
		return rest, tok, nil
	}
}
