package parse

import "github.com/dhamidi/nibble/input"

// Escaped matches a span built by alternating normal spans and escape
// sequences. It repeatedly runs normal; when normal stops matching at a
// control token, the token after the control is handed to escapable,
// and the scan continues after it. The matched span is returned
// verbatim, escape sequences included.
//
// On a streaming cursor, reaching the end of the buffer is never a
// clean match: the scan cannot know whether the final normal span has
// been fully seen.
func Escaped[C input.Cursor[C, T], T comparable, V1, V2 any](normal Parser[C, V1], control T, escapable Parser[C, V2]) Parser[C, C] {
	return func(c C) (C, C, error) {
		i := c
		for i.Len() > 0 {
			currentLen := i.Len()
			rest, _, err := normal(i)
			if err == nil {
				if rest.Len() == 0 {
					if c.Partial() {
						return incomplete[C, C](c, input.Unknown)
					}
					r, span := c.NextSlice(c.Len())
					return r, span, nil
				}
				if rest.Len() == currentLen {
					// zero-width normal match: the scan is done
					r, span := c.NextSlice(c.Len() - rest.Len())
					return r, span, nil
				}
				i = rest
				continue
			}
			if !IsBacktrack(err) {
				var zero C
				return c, zero, err
			}
			next, tok, _ := i.NextToken()
			if tok != control {
				r, span := c.NextSlice(c.Len() - i.Len())
				return r, span, nil
			}
			if next.Len() == 0 {
				if c.Partial() {
					return incomplete[C, C](c, 1)
				}
				return fail[C, C](c, KindEscaped)
			}
			rest, _, err = escapable(next)
			if err != nil {
				// escapable failures are not retried
				var zero C
				return c, zero, err
			}
			if rest.Len() == 0 {
				if c.Partial() {
					return incomplete[C, C](c, input.Unknown)
				}
				r, span := c.NextSlice(c.Len())
				return r, span, nil
			}
			i = rest
		}
		if c.Partial() {
			return incomplete[C, C](c, input.Unknown)
		}
		r, span := c.NextSlice(c.Len())
		return r, span, nil
	}
}

// EscapedTransform is Escaped with output rewriting: each normal span
// and each escapable result is folded into an accumulator, so escape
// sequences are replaced by the escapable parser's produced value. The
// zero value of A is the initial accumulator.
func EscapedTransform[C input.Cursor[C, T], T comparable, O, A any](
	normal Parser[C, O],
	control T,
	escapable Parser[C, O],
	fold func(acc A, piece O) A,
) Parser[C, A] {
	return func(c C) (C, A, error) {
		var acc A
		i := c
		for i.Len() > 0 {
			currentLen := i.Len()
			rest, piece, err := normal(i)
			if err == nil {
				acc = fold(acc, piece)
				if rest.Len() == 0 {
					if c.Partial() {
						return incomplete[C, A](c, input.Unknown)
					}
					return rest, acc, nil
				}
				if rest.Len() == currentLen {
					return i, acc, nil
				}
				i = rest
				continue
			}
			if !IsBacktrack(err) {
				var zero A
				return c, zero, err
			}
			next, tok, _ := i.NextToken()
			if tok != control {
				return i, acc, nil
			}
			if next.Len() == 0 {
				if c.Partial() {
					return incomplete[C, A](c, input.Unknown)
				}
				return fail[C, A](c, KindEscaped)
			}
			rest, piece, err = escapable(next)
			if err != nil {
				var zero A
				return c, zero, err
			}
			acc = fold(acc, piece)
			if rest.Len() == 0 {
				if c.Partial() {
					return incomplete[C, A](c, input.Unknown)
				}
				return rest, acc, nil
			}
			i = rest
		}
		if c.Partial() {
			return incomplete[C, A](c, input.Unknown)
		}
		return i, acc, nil
	}
}
