// Package parse implements streaming-aware parser combinators over the
// cursors of package input. A parser consumes a cursor and produces a
// three-way outcome: a match (advanced cursor plus value), a failure
// (*Failure, recoverable unless marked fatal), or a request for more
// input (*Incomplete, streaming cursors only).
//
// Parsers are pure function values; they hold no mutable state across
// calls, so the same parser may be invoked concurrently on independent
// cursors. A caller that receives *Incomplete is expected to obtain
// more input and re-run the parser from the original position; package
// feed implements that loop over an io.Reader.
package parse

import "github.com/dhamidi/nibble/input"

// Parser turns a cursor into an outcome. On success err is nil, rest is
// the cursor past the consumed prefix and value the produced result. On
// any error the original cursor is returned as rest so callers can
// retry or try alternatives without rollback.
type Parser[C any, V any] func(c C) (rest C, value V, err error)

// PairOf holds the two results of Pair and SeparatedPair.
type PairOf[A, B any] struct {
	First  A
	Second B
}

// Sliceable is the minimal cursor capability for matchers that operate
// on physical lengths only.
type Sliceable[C any] interface {
	NextSlice(n int) (rest C, span C)
	Len() int
	OffsetAt(tokens int) (offset int, needed input.Needed, ok bool)
	Partial() bool
}

// Comparable is the cursor capability required by literal matchers: a
// prefix comparison against a pattern of type P.
type Comparable[C any, P any] interface {
	Sliceable[C]
	Compare(pattern P) input.CompareResult
	CompareFold(pattern P) input.CompareResult
}

// Searchable is the cursor capability required by the until-style
// matchers: substring search for a pattern of type P.
type Searchable[C any, P any] interface {
	Sliceable[C]
	FindSlice(pattern P) (offset int, ok bool)
}

func fail[C, V any](c C, kind Kind) (C, V, error) {
	var zero V
	return c, zero, &Failure[C]{Kind: kind, At: c}
}

func incomplete[C, V any](c C, needed input.Needed) (C, V, error) {
	var zero V
	return c, zero, &Incomplete{Needed: needed}
}
