package parse

import "errors"

// Map transforms the value of a successful parse.
func Map[C, V, W any](p Parser[C, V], f func(V) W) Parser[C, W] {
	return func(c C) (C, W, error) {
		rest, v, err := p(c)
		if err != nil {
			var zero W
			return c, zero, err
		}
		return rest, f(v), nil
	}
}

// Value replaces the value of a successful parse.
func Value[C, V, W any](p Parser[C, V], w W) Parser[C, W] {
	return func(c C) (C, W, error) {
		rest, _, err := p(c)
		if err != nil {
			var zero W
			return c, zero, err
		}
		return rest, w, nil
	}
}

// Opt makes p optional: a recoverable failure becomes a nil-valued
// match that consumes nothing. Incomplete outcomes still propagate; a
// streaming cursor cannot tell an absent optional from one that has not
// fully arrived.
func Opt[C, V any](p Parser[C, V]) Parser[C, *V] {
	return func(c C) (C, *V, error) {
		rest, v, err := p(c)
		if err == nil {
			return rest, &v, nil
		}
		if IsBacktrack(err) {
			return c, nil, nil
		}
		return c, nil, err
	}
}

// Recognize discards p's value and produces the consumed span instead.
func Recognize[C Sliceable[C], V any](p Parser[C, V]) Parser[C, C] {
	return func(c C) (C, C, error) {
		rest, _, err := p(c)
		if err != nil {
			var zero C
			return c, zero, err
		}
		_, span := c.NextSlice(c.Len() - rest.Len())
		return rest, span, nil
	}
}

// Verify fails with KindVerify when the produced value does not satisfy
// pred.
func Verify[C, V any](p Parser[C, V], pred func(V) bool) Parser[C, V] {
	return func(c C) (C, V, error) {
		rest, v, err := p(c)
		if err != nil {
			var zero V
			return c, zero, err
		}
		if !pred(v) {
			return fail[C, V](c, KindVerify)
		}
		return rest, v, nil
	}
}

// Cut upgrades recoverable failures of p to fatal ones: the surrounding
// Alt must not try other branches once p has failed, because p failing
// means the right branch was already chosen and its content is
// malformed.
func Cut[C, V any](p Parser[C, V]) Parser[C, V] {
	return func(c C) (C, V, error) {
		rest, v, err := p(c)
		if err == nil {
			return rest, v, nil
		}
		var f *Failure[C]
		if errors.As(err, &f) && !f.Fatal {
			var zero V
			return c, zero, &Failure[C]{Kind: f.Kind, At: f.At, Fatal: true}
		}
		return c, v, err
	}
}

// Alt tries each parser at the same position, returning the first
// match. Fatal failures and incomplete outcomes stop the search
// immediately; if every branch backtracks, Alt fails with KindAlt.
func Alt[C, V any](parsers ...Parser[C, V]) Parser[C, V] {
	return func(c C) (C, V, error) {
		for _, p := range parsers {
			rest, v, err := p(c)
			if err == nil {
				return rest, v, nil
			}
			if !IsBacktrack(err) {
				var zero V
				return c, zero, err
			}
		}
		return fail[C, V](c, KindAlt)
	}
}

// Many0 applies p repeatedly until it backtracks, collecting the
// values. A parser that matches without consuming anything would loop
// forever and is reported as a failure instead.
func Many0[C Sliceable[C], V any](p Parser[C, V]) Parser[C, []V] {
	return func(c C) (C, []V, error) {
		var values []V
		cur := c
		for {
			rest, v, err := p(cur)
			if err != nil {
				if IsBacktrack(err) {
					return cur, values, nil
				}
				return c, nil, err
			}
			if rest.Len() == cur.Len() {
				return fail[C, []V](cur, KindMany)
			}
			values = append(values, v)
			cur = rest
		}
	}
}

// Many1 is Many0 with a minimum of one match.
func Many1[C Sliceable[C], V any](p Parser[C, V]) Parser[C, []V] {
	many := Many0(p)
	return func(c C) (C, []V, error) {
		rest, v, err := p(c)
		if err != nil {
			return c, nil, err
		}
		rest, values, err := many(rest)
		if err != nil {
			return c, nil, err
		}
		return rest, append([]V{v}, values...), nil
	}
}

// SeparatedList0 parses zero or more items separated by sep, keeping
// only the item values. A trailing separator is not consumed.
func SeparatedList0[C Sliceable[C], V, S any](item Parser[C, V], sep Parser[C, S]) Parser[C, []V] {
	return func(c C) (C, []V, error) {
		var values []V
		cur, v, err := item(c)
		if err != nil {
			if IsBacktrack(err) {
				return c, nil, nil
			}
			return c, nil, err
		}
		values = append(values, v)
		for {
			afterSep, _, err := sep(cur)
			if err != nil {
				if IsBacktrack(err) {
					return cur, values, nil
				}
				return c, nil, err
			}
			if afterSep.Len() == cur.Len() {
				return fail[C, []V](cur, KindMany)
			}
			rest, v, err := item(afterSep)
			if err != nil {
				if IsBacktrack(err) {
					return cur, values, nil
				}
				return c, nil, err
			}
			values = append(values, v)
			cur = rest
		}
	}
}
