// Package input provides the cursor abstraction parsers consume: an
// immutable, cheaply copied view over a token sequence. A cursor knows
// whether its end is final (Complete) or whether more tokens may still
// arrive (Streaming); primitives consult this mode when they run out of
// buffered input.
//
// Three concrete cursors are provided: Bytes over a byte slice, Text
// over a string with rune tokens, and Tokens over a slice of
// user-defined tokens. All of them advance in O(1) without copying
// token data, and two copies of the same cursor never affect each
// other.
package input

import "fmt"

// Mode selects the completion policy of a cursor.
type Mode int

const (
	// Complete means the end of the buffer is the end of the input.
	Complete Mode = iota
	// Streaming means more tokens may later be appended to the
	// underlying source; running out of buffered input yields an
	// incomplete outcome instead of a failure.
	Streaming
)

func (m Mode) String() string {
	switch m {
	case Complete:
		return "complete"
	case Streaming:
		return "streaming"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Needed reports how much more input a streaming parse requires before
// it can reach a verdict. Zero is Unknown: the amount cannot be
// predicted from what is buffered. Positive values are exact token
// counts.
type Needed int

// Unknown means more input is needed but the amount is undetermined.
const Unknown Needed = 0

// Known reports whether the amount is an exact token count.
func (n Needed) Known() bool { return n > 0 }

// Count returns the exact token count, or zero when the amount is
// unknown.
func (n Needed) Count() int { return int(n) }

func (n Needed) String() string {
	if n > 0 {
		return fmt.Sprintf("%d more", int(n))
	}
	return "unknown amount"
}

// CompareResult is the outcome of comparing a cursor's prefix against a
// literal pattern.
type CompareResult int

const (
	// CompareOK: the cursor starts with the pattern.
	CompareOK CompareResult = iota
	// CompareIncomplete: the cursor is shorter than the pattern but
	// every buffered token agrees with it. A short prefix that agrees
	// must never be reported as a mismatch.
	CompareIncomplete
	// CompareError: some buffered token disagrees with the pattern.
	CompareError
)

func (r CompareResult) String() string {
	switch r {
	case CompareOK:
		return "ok"
	case CompareIncomplete:
		return "incomplete"
	case CompareError:
		return "error"
	default:
		return fmt.Sprintf("compare(%d)", int(r))
	}
}

// Cursor is the capability a token sequence must provide to the
// matchers in package parse. C is the concrete cursor type itself and T
// its token type; the interface is used as a compile-time constraint,
// so there is no dynamic dispatch on the hot path.
//
// Lengths and offsets come in two units. Len, NextSlice and the offset
// returned by OffsetAt are in storage units (bytes for Bytes and Text,
// elements for Tokens); OffsetFor and the argument of OffsetAt count
// logical tokens. For fixed-width cursors the two coincide.
type Cursor[C any, T any] interface {
	// NextToken returns the cursor advanced past one token, the token,
	// and false when no token is buffered.
	NextToken() (C, T, bool)

	// NextSlice splits the cursor at a storage-unit offset, returning
	// the remainder and the consumed span. The span is itself a cursor
	// over the consumed tokens. Callers must ensure n <= Len();
	// violating this is a programming error, not a parse outcome.
	NextSlice(n int) (rest C, span C)

	// Len is the remaining length in storage units.
	Len() int

	// OffsetFor returns the token index of the first buffered token
	// for which pred is false, or false when pred holds for every
	// buffered token.
	OffsetFor(pred func(T) bool) (int, bool)

	// OffsetAt converts a token count into a storage-unit offset. When
	// fewer tokens are buffered it returns ok=false and how many more
	// are needed: exact for fixed-width cursors, Unknown when the
	// token width is variable.
	OffsetAt(tokens int) (offset int, needed Needed, ok bool)

	// Partial reports whether the cursor is in streaming mode.
	Partial() bool
}
