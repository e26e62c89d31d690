package parse

import "github.com/dhamidi/nibble/input"

// TakeWhile matches the longest (possibly empty) prefix whose tokens
// all satisfy pred. On a streaming cursor a prefix that reaches the end
// of the buffer is never a verdict: more input could extend the match,
// so the outcome is incomplete.
func TakeWhile[C input.Cursor[C, T], T any](pred func(T) bool) Parser[C, C] {
	return func(c C) (C, C, error) {
		return splitWhile(c, pred)
	}
}

// TakeWhile1 is TakeWhile with a minimum of one token.
func TakeWhile1[C input.Cursor[C, T], T any](pred func(T) bool) Parser[C, C] {
	return func(c C) (C, C, error) {
		return splitWhile1(c, pred, KindTakeWhile)
	}
}

// TakeWhileMinMax matches between m and n tokens satisfying pred. When
// the satisfying run is longer than n it is truncated to exactly n
// without waiting to see where the run ends.
func TakeWhileMinMax[C input.Cursor[C, T], T any](m, n int, pred func(T) bool) Parser[C, C] {
	return func(c C) (C, C, error) {
		idx, found := c.OffsetFor(pred)
		if found {
			if idx < m {
				return fail[C, C](c, KindTakeWhileBounded)
			}
			off, _, _ := c.OffsetAt(min(idx, n))
			rest, span := c.NextSlice(off)
			return rest, span, nil
		}
		// pred holds for the entire buffered remainder
		if off, _, ok := c.OffsetAt(n); ok {
			rest, span := c.NextSlice(off)
			return rest, span, nil
		}
		if _, needed, ok := c.OffsetAt(m); !ok {
			if c.Partial() {
				return incomplete[C, C](c, needed)
			}
			return fail[C, C](c, KindTakeWhileBounded)
		}
		if c.Partial() {
			return incomplete[C, C](c, 1)
		}
		rest, span := c.NextSlice(c.Len())
		return rest, span, nil
	}
}

// TakeTill matches the longest (possibly empty) prefix whose tokens all
// fail pred, stopping at the first token that satisfies it.
func TakeTill[C input.Cursor[C, T], T any](pred func(T) bool) Parser[C, C] {
	return func(c C) (C, C, error) {
		return splitWhile(c, func(t T) bool { return !pred(t) })
	}
}

// TakeTill1 is TakeTill with a minimum of one token.
func TakeTill1[C input.Cursor[C, T], T any](pred func(T) bool) Parser[C, C] {
	return func(c C) (C, C, error) {
		return splitWhile1(c, func(t T) bool { return !pred(t) }, KindTakeTill)
	}
}

// Take matches exactly n tokens.
func Take[C Sliceable[C]](n int) Parser[C, C] {
	return func(c C) (C, C, error) {
		off, needed, ok := c.OffsetAt(n)
		if !ok {
			if c.Partial() {
				return incomplete[C, C](c, needed)
			}
			return fail[C, C](c, KindTake)
		}
		rest, span := c.NextSlice(off)
		return rest, span, nil
	}
}

// TakeUntil matches the (possibly empty) prefix before the first
// occurrence of pattern; the pattern itself is not consumed. On a
// streaming cursor an absent pattern means the verdict is undecidable:
// the pattern could still arrive, in an amount that cannot be
// predicted.
func TakeUntil[C Searchable[C, P], P any](pattern P) Parser[C, C] {
	return func(c C) (C, C, error) {
		off, found := c.FindSlice(pattern)
		if !found {
			if c.Partial() {
				return incomplete[C, C](c, input.Unknown)
			}
			return fail[C, C](c, KindTakeUntil)
		}
		rest, span := c.NextSlice(off)
		return rest, span, nil
	}
}

// TakeUntil1 is TakeUntil with a minimum of one token before the
// pattern.
func TakeUntil1[C Searchable[C, P], P any](pattern P) Parser[C, C] {
	return func(c C) (C, C, error) {
		off, found := c.FindSlice(pattern)
		if !found {
			if c.Partial() {
				return incomplete[C, C](c, input.Unknown)
			}
			return fail[C, C](c, KindTakeUntil)
		}
		if off == 0 {
			return fail[C, C](c, KindTakeUntil)
		}
		rest, span := c.NextSlice(off)
		return rest, span, nil
	}
}

// splitWhile scans for the first token failing pred and splits there.
// Reaching the end of a streaming buffer without a failing token is
// incomplete, never a premature match.
func splitWhile[C input.Cursor[C, T], T any](c C, pred func(T) bool) (C, C, error) {
	idx, found := c.OffsetFor(pred)
	if !found {
		if c.Partial() {
			return incomplete[C, C](c, 1)
		}
		rest, span := c.NextSlice(c.Len())
		return rest, span, nil
	}
	off, _, _ := c.OffsetAt(idx)
	rest, span := c.NextSlice(off)
	return rest, span, nil
}

func splitWhile1[C input.Cursor[C, T], T any](c C, pred func(T) bool, kind Kind) (C, C, error) {
	idx, found := c.OffsetFor(pred)
	if !found {
		if c.Partial() {
			return incomplete[C, C](c, 1)
		}
		if c.Len() == 0 {
			return fail[C, C](c, kind)
		}
		rest, span := c.NextSlice(c.Len())
		return rest, span, nil
	}
	if idx == 0 {
		return fail[C, C](c, kind)
	}
	off, _, _ := c.OffsetAt(idx)
	rest, span := c.NextSlice(off)
	return rest, span, nil
}
