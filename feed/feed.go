// Package feed runs parsers over an io.Reader, refilling the buffer
// whenever a parser reports that it needs more input. It turns the
// pull-based cursor model of package parse into a push-based loop
// suitable for sockets, pipes and large files.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tliron/commonlog"
	"golang.org/x/time/rate"

	"github.com/dhamidi/nibble/input"
	"github.com/dhamidi/nibble/parse"
)

var log = commonlog.GetLogger("nibble.feed")

// ErrNoProgress is returned by Each when a parser matches without
// consuming any input, which would otherwise loop forever.
var ErrNoProgress = errors.New("feed: parser matched without consuming input")

const defaultChunkSize = 4096

// Source buffers bytes from an io.Reader and hands out cursors over
// the unconsumed remainder. It is not safe for concurrent use.
type Source struct {
	r       io.Reader
	buf     []byte
	eof     bool
	chunk   int
	limiter *rate.Limiter
}

// Option configures a Source.
type Option func(*Source)

// WithChunkSize sets the minimum number of bytes read per refill when
// the parser gives no size hint.
func WithChunkSize(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.chunk = n
		}
	}
}

// WithLimiter paces refills with the given rate limiter. Each refill
// waits for one token before reading.
func WithLimiter(l *rate.Limiter) Option {
	return func(s *Source) { s.limiter = l }
}

// NewSource returns a Source reading from r.
func NewSource(r io.Reader, opts ...Option) *Source {
	s := &Source{r: r, chunk: defaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cursor returns a cursor over the buffered remainder. After the
// reader is exhausted the cursor is complete, so parsers resolve
// end-of-input instead of asking for more.
func (s *Source) cursor() input.Bytes {
	mode := input.Streaming
	if s.eof {
		mode = input.Complete
	}
	return input.NewBytes(s.buf, mode)
}

// refill reads at least min more bytes, or up to the next chunk when
// min is zero. It returns io.EOF once the reader is exhausted.
func (s *Source) refill(ctx context.Context, min int) error {
	if s.eof {
		return io.EOF
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	want := min
	if want < s.chunk {
		want = s.chunk
	}
	off := len(s.buf)
	s.buf = append(s.buf, make([]byte, want)...)
	n, err := io.ReadAtLeast(s.r, s.buf[off:], minNonZero(min))
	s.buf = s.buf[:off+n]
	log.Debugf("refill: wanted %d, read %d", min, n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			s.eof = true
			return io.EOF
		}
		return fmt.Errorf("feed: refill: %w", err)
	}
	return nil
}

func minNonZero(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// consume drops the prefix of the buffer covered by advancing from
// the full cursor to rest.
func (s *Source) consume(rest input.Bytes) {
	used := len(s.buf) - rest.Len()
	s.buf = s.buf[used:]
}

// Parse runs parser against src, refilling until the parser either
// matches or fails. On a match the consumed bytes are dropped from the
// buffer, so a subsequent Parse continues where this one stopped.
func Parse[V any](ctx context.Context, src *Source, parser parse.Parser[input.Bytes, V]) (V, error) {
	value, _, err := parseConsumed(ctx, src, parser)
	return value, err
}

// parseConsumed additionally reports how many bytes the match
// consumed. Zero-width matches are only observable here, before the
// consumed prefix is dropped; buffer lengths across a Parse call say
// nothing, since refills and consumption can cancel out.
func parseConsumed[V any](ctx context.Context, src *Source, parser parse.Parser[input.Bytes, V]) (V, int, error) {
	for {
		c := src.cursor()
		rest, value, err := parser(c)
		if err == nil {
			consumed := c.Len() - rest.Len()
			src.consume(rest)
			return value, consumed, nil
		}
		needed, retry := parse.IsIncomplete(err)
		if !retry || !c.Partial() {
			var zero V
			return zero, 0, err
		}
		if rerr := src.refill(ctx, needed.Count()); rerr != nil {
			if errors.Is(rerr, io.EOF) {
				// Re-run against a complete cursor so the
				// parser resolves end-of-input.
				continue
			}
			var zero V
			return zero, 0, rerr
		}
	}
}

// Each repeatedly applies parser to src, calling fn for every match,
// until the input is exhausted or an error occurs. A clean end, where
// the reader is drained and no partial match remains buffered, returns
// nil.
func Each[V any](ctx context.Context, src *Source, parser parse.Parser[input.Bytes, V], fn func(V) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(src.buf) == 0 {
			if src.eof {
				return nil
			}
			if err := src.refill(ctx, 0); err != nil {
				if errors.Is(err, io.EOF) {
					continue
				}
				return err
			}
		}
		value, consumed, err := parseConsumed(ctx, src, parser)
		if err != nil {
			return err
		}
		if consumed == 0 {
			return ErrNoProgress
		}
		if err := fn(value); err != nil {
			return err
		}
	}
}
