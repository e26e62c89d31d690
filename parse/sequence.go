package parse

// Pair runs first then second, producing both values. The second parser
// starts where the first one stopped; any failure or incomplete outcome
// of either side is propagated unchanged, with the cursor reset to the
// original position.
func Pair[C, A, B any](first Parser[C, A], second Parser[C, B]) Parser[C, PairOf[A, B]] {
	return func(c C) (C, PairOf[A, B], error) {
		var pair PairOf[A, B]
		rest, a, err := first(c)
		if err != nil {
			return c, pair, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return c, pair, err
		}
		pair.First = a
		pair.Second = b
		return rest, pair, nil
	}
}

// SeparatedPair runs first, sep and second, discarding sep's value.
func SeparatedPair[C, A, S, B any](first Parser[C, A], sep Parser[C, S], second Parser[C, B]) Parser[C, PairOf[A, B]] {
	return func(c C) (C, PairOf[A, B], error) {
		var pair PairOf[A, B]
		rest, a, err := first(c)
		if err != nil {
			return c, pair, err
		}
		rest, _, err = sep(rest)
		if err != nil {
			return c, pair, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return c, pair, err
		}
		pair.First = a
		pair.Second = b
		return rest, pair, nil
	}
}

// Preceded runs prefix then main, keeping only main's value.
func Preceded[C, P, V any](prefix Parser[C, P], main Parser[C, V]) Parser[C, V] {
	return func(c C) (C, V, error) {
		var zero V
		rest, _, err := prefix(c)
		if err != nil {
			return c, zero, err
		}
		rest, v, err := main(rest)
		if err != nil {
			return c, zero, err
		}
		return rest, v, nil
	}
}

// Terminated runs main then suffix, keeping only main's value.
func Terminated[C, V, S any](main Parser[C, V], suffix Parser[C, S]) Parser[C, V] {
	return func(c C) (C, V, error) {
		var zero V
		rest, v, err := main(c)
		if err != nil {
			return c, zero, err
		}
		rest, _, err = suffix(rest)
		if err != nil {
			return c, zero, err
		}
		return rest, v, nil
	}
}

// Delimited runs open, main and end, keeping only main's value.
func Delimited[C, O, V, E any](open Parser[C, O], main Parser[C, V], end Parser[C, E]) Parser[C, V] {
	return func(c C) (C, V, error) {
		var zero V
		rest, _, err := open(c)
		if err != nil {
			return c, zero, err
		}
		rest, v, err := main(rest)
		if err != nil {
			return c, zero, err
		}
		rest, _, err = end(rest)
		if err != nil {
			return c, zero, err
		}
		return rest, v, nil
	}
}

// Seq chains parsers left to right, collecting their values. The arity
// is fixed when the parser is composed; heterogeneous chains nest Pair
// instead.
func Seq[C, V any](parsers ...Parser[C, V]) Parser[C, []V] {
	return func(c C) (C, []V, error) {
		values := make([]V, 0, len(parsers))
		rest := c
		for _, p := range parsers {
			var (
				v   V
				err error
			)
			rest, v, err = p(rest)
			if err != nil {
				return c, nil, err
			}
			values = append(values, v)
		}
		return rest, values, nil
	}
}
