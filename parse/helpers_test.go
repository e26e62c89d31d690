package parse

import (
	"testing"

	"github.com/dhamidi/nibble/input"
)

func partial(s string) input.Bytes  { return input.NewBytes([]byte(s), input.Streaming) }
func complete(s string) input.Bytes { return input.NewBytes([]byte(s), input.Complete) }

func partialText(s string) input.Text  { return input.NewText(s, input.Streaming) }
func completeText(s string) input.Text { return input.NewText(s, input.Complete) }

func wantIncomplete(t *testing.T, err error, needed input.Needed) {
	t.Helper()
	got, ok := IsIncomplete(err)
	if !ok {
		t.Fatalf("err = %v, want incomplete", err)
	}
	if got != needed {
		t.Errorf("needed = %v, want %v", got, needed)
	}
}

func wantBacktrack(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("err = nil, want failure")
	}
	if !IsBacktrack(err) {
		t.Fatalf("err = %v, want recoverable failure", err)
	}
}

func wantSpan(t *testing.T, err error, span, rest input.Bytes, wantSpan, wantRest string) {
	t.Helper()
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if span.String() != wantSpan {
		t.Errorf("span = %q, want %q", span.String(), wantSpan)
	}
	if rest.String() != wantRest {
		t.Errorf("rest = %q, want %q", rest.String(), wantRest)
	}
}

func wantTextSpan(t *testing.T, err error, span, rest input.Text, wantSpan, wantRest string) {
	t.Helper()
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if span.String() != wantSpan {
		t.Errorf("span = %q, want %q", span.String(), wantSpan)
	}
	if rest.String() != wantRest {
		t.Errorf("rest = %q, want %q", rest.String(), wantRest)
	}
}
