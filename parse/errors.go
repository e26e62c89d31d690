package parse

import (
	"errors"
	"fmt"

	"github.com/dhamidi/nibble/input"
)

// Kind identifies which matcher a failure originated from.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindToken
	KindTag
	KindOneOf
	KindNoneOf
	KindTakeWhile
	KindTakeWhileBounded
	KindTakeTill
	KindTakeUntil
	KindTake
	KindEscaped
	KindAlt
	KindMany
	KindLength
	KindVerify
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindTag:
		return "tag"
	case KindOneOf:
		return "one-of"
	case KindNoneOf:
		return "none-of"
	case KindTakeWhile:
		return "take-while"
	case KindTakeWhileBounded:
		return "take-while-bounded"
	case KindTakeTill:
		return "take-till"
	case KindTakeUntil:
		return "take-until"
	case KindTake:
		return "take"
	case KindEscaped:
		return "escaped"
	case KindAlt:
		return "alt"
	case KindMany:
		return "many"
	case KindLength:
		return "length"
	case KindVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// Failure is a recoverable parse failure: the parser does not match at
// the retained cursor position. Fatal failures additionally forbid
// outer combinators from trying alternatives; Alt stops on them.
type Failure[C any] struct {
	Kind  Kind
	At    C
	Fatal bool
}

func (f *Failure[C]) Error() string {
	if f.Fatal {
		return fmt.Sprintf("%s: no match (unrecoverable) at %.40v", f.Kind, f.At)
	}
	return fmt.Sprintf("%s: no match at %.40v", f.Kind, f.At)
}

func (f *Failure[C]) failure() (Kind, bool) { return f.Kind, f.Fatal }

// Incomplete means the input ran out before the parser could reach a
// verdict. It is a control signal, not a domain error: every buffered
// token is still consistent with eventual success. It never occurs with
// complete-mode cursors.
type Incomplete struct {
	Needed input.Needed
}

func (e *Incomplete) Error() string {
	return "incomplete input: need " + e.Needed.String()
}

// failer is satisfied by Failure of any cursor type, so callers can
// classify errors without knowing C.
type failer interface {
	error
	failure() (Kind, bool)
}

// IsIncomplete reports whether err asks for more input and how much.
func IsIncomplete(err error) (input.Needed, bool) {
	var inc *Incomplete
	if errors.As(err, &inc) {
		return inc.Needed, true
	}
	return 0, false
}

// IsBacktrack reports whether err is a recoverable failure, meaning an
// outer combinator may try an alternative at the same position.
func IsBacktrack(err error) bool {
	var f failer
	if errors.As(err, &f) {
		_, fatal := f.failure()
		return !fatal
	}
	return false
}

// IsFatal reports whether err is a failure that forbids alternatives.
func IsFatal(err error) bool {
	var f failer
	if errors.As(err, &f) {
		_, fatal := f.failure()
		return fatal
	}
	return false
}

// FailureKind returns the matcher kind of a failure, if err is one.
func FailureKind(err error) (Kind, bool) {
	var f failer
	if errors.As(err, &f) {
		kind, _ := f.failure()
		return kind, true
	}
	return KindUnknown, false
}
