package parse

import (
	"testing"

	"github.com/dhamidi/nibble/input"
)

func TestPair(t *testing.T) {
	p := Pair(Tag[input.Bytes]([]byte("abc")), Tag[input.Bytes]([]byte("def")))

	rest, v, err := p(partial("abcdefghijkl"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v.First.String() != "abc" || v.Second.String() != "def" {
		t.Errorf("pair = (%q, %q), want (abc, def)", v.First.String(), v.Second.String())
	}
	if rest.String() != "ghijkl" {
		t.Errorf("rest = %q, want %q", rest.String(), "ghijkl")
	}

	_, _, err = p(partial("ab"))
	wantIncomplete(t, err, 1)

	_, _, err = p(partial("abcd"))
	wantIncomplete(t, err, 2)

	_, _, err = p(partial("xxx"))
	wantBacktrack(t, err)

	// The second failure still reports from the start of the pair.
	rest, _, err = p(partial("abcxxx"))
	wantBacktrack(t, err)
	if rest.String() != "abcxxx" {
		t.Errorf("rest = %q, want original input back", rest.String())
	}
}

func TestSeparatedPair(t *testing.T) {
	p := SeparatedPair(
		Tag[input.Bytes]([]byte("abc")),
		Tag[input.Bytes]([]byte(",")),
		Tag[input.Bytes]([]byte("def")),
	)

	rest, v, err := p(partial("abc,defghijkl"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v.First.String() != "abc" || v.Second.String() != "def" {
		t.Errorf("pair = (%q, %q), want (abc, def)", v.First.String(), v.Second.String())
	}
	if rest.String() != "ghijkl" {
		t.Errorf("rest = %q, want %q", rest.String(), "ghijkl")
	}

	_, _, err = p(partial("abc,d"))
	wantIncomplete(t, err, 2)

	_, _, err = p(partial("abc;def"))
	wantBacktrack(t, err)
}

func TestPreceded(t *testing.T) {
	p := Preceded(Tag[input.Bytes]([]byte("abcd")), Tag[input.Bytes]([]byte("efgh")))

	rest, v, err := p(partial("abcdefghijkl"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v.String() != "efgh" || rest.String() != "ijkl" {
		t.Errorf("got (%q, %q), want (efgh, ijkl)", v.String(), rest.String())
	}

	_, _, err = p(partial("ab"))
	wantIncomplete(t, err, 2)

	_, _, err = p(partial("abcde"))
	wantIncomplete(t, err, 3)

	_, _, err = p(partial("xxxxxxxx"))
	wantBacktrack(t, err)
}

func TestTerminated(t *testing.T) {
	p := Terminated(Tag[input.Bytes]([]byte("abcd")), Tag[input.Bytes]([]byte("efgh")))

	rest, v, err := p(partial("abcdefghijkl"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v.String() != "abcd" || rest.String() != "ijkl" {
		t.Errorf("got (%q, %q), want (abcd, ijkl)", v.String(), rest.String())
	}

	_, _, err = p(partial("abcdef"))
	wantIncomplete(t, err, 2)
}

func TestDelimited(t *testing.T) {
	p := Delimited(
		Tag[input.Bytes]([]byte("abc")),
		Tag[input.Bytes]([]byte("def")),
		Tag[input.Bytes]([]byte("ghi")),
	)

	rest, v, err := p(partial("abcdefghijkl"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if v.String() != "def" || rest.String() != "jkl" {
		t.Errorf("got (%q, %q), want (def, jkl)", v.String(), rest.String())
	}

	_, _, err = p(partial("abcdefgh"))
	wantIncomplete(t, err, 1)

	_, _, err = p(partial("abcxxxghi"))
	wantBacktrack(t, err)
}

func TestSeq(t *testing.T) {
	p := Seq(
		Tag[input.Bytes]([]byte("ab")),
		Tag[input.Bytes]([]byte("cd")),
		Tag[input.Bytes]([]byte("ef")),
	)

	rest, vs, err := p(complete("abcdefgh"))
	if err != nil {
		t.Fatalf("err = %v, want match", err)
	}
	if len(vs) != 3 || vs[0].String() != "ab" || vs[1].String() != "cd" || vs[2].String() != "ef" {
		t.Errorf("values = %v, want [ab cd ef]", vs)
	}
	if rest.String() != "gh" {
		t.Errorf("rest = %q, want %q", rest.String(), "gh")
	}

	_, _, err = p(partial("abcde"))
	wantIncomplete(t, err, 1)

	_, _, err = p(complete("abxxef"))
	wantBacktrack(t, err)
}
