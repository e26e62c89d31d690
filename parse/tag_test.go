package parse

import (
	"testing"

	"github.com/dhamidi/nibble/input"
)

func TestTagStreaming(t *testing.T) {
	p := Tag[input.Bytes]([]byte("Hello"))

	rest, span, err := p(partial("Hello, World!"))
	wantSpan(t, err, span, rest, "Hello", ", World!")

	_, _, err = p(partial("Something"))
	wantBacktrack(t, err)

	_, _, err = p(partial("H"))
	wantIncomplete(t, err, 4)

	_, _, err = p(partial("Hel"))
	wantIncomplete(t, err, 2)

	_, _, err = p(partial(""))
	wantIncomplete(t, err, 5)
}

func TestTagComplete(t *testing.T) {
	p := Tag[input.Bytes]([]byte("Hello"))

	rest, span, err := p(complete("HelloHello"))
	wantSpan(t, err, span, rest, "Hello", "Hello")

	// A short buffer is final in complete mode.
	_, _, err = p(complete("Hel"))
	wantBacktrack(t, err)
}

func TestTagText(t *testing.T) {
	p := Tag[input.Text]("點心")

	rest, span, err := p(completeText("點心是好"))
	wantTextSpan(t, err, span, rest, "點心", "是好")

	// One rune short: three more bytes of the pattern are missing.
	_, _, err = p(partialText("點"))
	wantIncomplete(t, err, 3)
}

func TestTagNoCase(t *testing.T) {
	p := TagNoCase[input.Bytes]([]byte("ABcd"))

	tests := []struct {
		input    string
		wantSpan string
		wantRest string
	}{
		{"aBCdefgh", "aBCd", "efgh"},
		{"abcdefgh", "abcd", "efgh"},
		{"ABCDefgh", "ABCD", "efgh"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rest, span, err := p(partial(tt.input))
			wantSpan(t, err, span, rest, tt.wantSpan, tt.wantRest)
		})
	}

	_, _, err := p(partial("aB"))
	wantIncomplete(t, err, 2)

	_, _, err = p(partial("Hello"))
	wantBacktrack(t, err)
}

func TestTagNoCaseText(t *testing.T) {
	p := TagNoCase[input.Text]("über")

	rest, span, err := p(completeText("ÜBERmut"))
	wantTextSpan(t, err, span, rest, "ÜBER", "mut")

	// İ folds to i but is wider; slicing the pattern's byte length out
	// of "i..." would split the next rune, so this must fail cleanly.
	short := TagNoCase[input.Text]("İ")
	_, _, err = short(completeText("istanbul"))
	wantBacktrack(t, err)

	wide := TagNoCase[input.Text]("i")
	_, _, err = wide(completeText("İstanbul"))
	wantBacktrack(t, err)
}

func TestAny(t *testing.T) {
	p := Any[input.Bytes, byte]()

	rest, v, err := p(partial("abc"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v != 'a' || rest.String() != "bc" {
		t.Errorf("got (%q, %q), want ('a', \"bc\")", v, rest.String())
	}

	_, _, err = p(partial(""))
	wantIncomplete(t, err, 1)

	_, _, err = p(complete(""))
	wantBacktrack(t, err)
}

func TestOneOf(t *testing.T) {
	p := OneOf[input.Bytes]('a', 'b', 'c')

	rest, v, err := p(partial("b and a"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v != 'b' || rest.String() != " and a" {
		t.Errorf("got (%q, %q), want ('b', \" and a\")", v, rest.String())
	}

	_, _, err = p(partial("z"))
	wantBacktrack(t, err)

	_, _, err = p(partial(""))
	wantIncomplete(t, err, 1)
}

func TestNoneOf(t *testing.T) {
	p := NoneOf[input.Bytes]('a', 'b', 'c')

	_, v, err := p(partial("z"))
	if err != nil || v != 'z' {
		t.Fatalf("got (%q, %v), want ('z', nil)", v, err)
	}

	_, _, err = p(partial("a"))
	wantBacktrack(t, err)

	_, _, err = p(complete(""))
	wantBacktrack(t, err)
}

func TestTagTokens(t *testing.T) {
	p := TagTokens[input.Tokens[int]]([]int{1, 2})

	c := input.NewTokens([]int{1, 2, 3}, input.Complete)
	rest, span, err := p(c)
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if got := span.Items(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("span = %v, want [1 2]", got)
	}
	if got := rest.Items(); len(got) != 1 || got[0] != 3 {
		t.Errorf("rest = %v, want [3]", got)
	}

	short := input.NewTokens([]int{1}, input.Streaming)
	_, _, err = p(short)
	wantIncomplete(t, err, 1)

	wrong := input.NewTokens([]int{9, 9}, input.Streaming)
	_, _, err = p(wrong)
	wantBacktrack(t, err)
}
