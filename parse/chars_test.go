package parse

import (
	"testing"

	"github.com/dhamidi/nibble/input"
)

func TestCharClasses(t *testing.T) {
	tests := []struct {
		name string
		pred func(byte) bool
		in   byte
		want bool
	}{
		{"alpha yes", IsAlpha[byte], 'q', true},
		{"alpha no", IsAlpha[byte], '4', false},
		{"digit yes", IsDigit[byte], '7', true},
		{"digit no", IsDigit[byte], 'a', false},
		{"hex lower", IsHexDigit[byte], 'f', true},
		{"hex upper", IsHexDigit[byte], 'F', true},
		{"hex no", IsHexDigit[byte], 'g', false},
		{"oct yes", IsOctDigit[byte], '7', true},
		{"oct no", IsOctDigit[byte], '8', false},
		{"alnum", IsAlphanumeric[byte], '9', true},
		{"space tab", IsSpace[byte], '\t', true},
		{"space newline", IsSpace[byte], '\n', false},
		{"multispace newline", IsMultispace[byte], '\n', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.in); got != tt.want {
				t.Errorf("pred(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDigit1(t *testing.T) {
	p := Digit1[input.Bytes, byte]()

	rest, span, err := p(partial("123abc"))
	wantSpan(t, err, span, rest, "123", "abc")

	_, _, err = p(partial("abc"))
	wantBacktrack(t, err)

	_, _, err = p(partial("123"))
	wantIncomplete(t, err, 1)
}

func TestAlpha0(t *testing.T) {
	p := Alpha0[input.Text, rune]()

	rest, span, err := p(completeText("abc123"))
	wantTextSpan(t, err, span, rest, "abc", "123")

	rest, span, err = p(completeText("123"))
	wantTextSpan(t, err, span, rest, "", "123")
}

func TestMultispace0(t *testing.T) {
	p := Multispace0[input.Bytes, byte]()

	rest, span, err := p(complete(" \t\r\nx"))
	wantSpan(t, err, span, rest, " \t\r\n", "x")
}
