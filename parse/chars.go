package parse

import "github.com/dhamidi/nibble/input"

// Char constrains the token types the character-class recognizers work
// on. Classification is ASCII; bytes and runes outside the ASCII range
// never belong to a class.
type Char interface{ ~byte | ~rune }

func IsAlpha[T Char](t T) bool {
	return (t >= 'a' && t <= 'z') || (t >= 'A' && t <= 'Z')
}

func IsDigit[T Char](t T) bool { return t >= '0' && t <= '9' }

func IsHexDigit[T Char](t T) bool {
	return (t >= '0' && t <= '9') || (t >= 'a' && t <= 'f') || (t >= 'A' && t <= 'F')
}

func IsOctDigit[T Char](t T) bool { return t >= '0' && t <= '7' }

func IsAlphanumeric[T Char](t T) bool { return IsAlpha(t) || IsDigit(t) }

// IsSpace matches space and tab.
func IsSpace[T Char](t T) bool { return t == ' ' || t == '\t' }

// IsMultispace additionally matches carriage return and newline.
func IsMultispace[T Char](t T) bool {
	return t == ' ' || t == '\t' || t == '\r' || t == '\n'
}

func Alpha0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsAlpha[T])
}

func Alpha1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsAlpha[T])
}

func Digit0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsDigit[T])
}

func Digit1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsDigit[T])
}

func HexDigit0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsHexDigit[T])
}

func HexDigit1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsHexDigit[T])
}

func OctDigit0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsOctDigit[T])
}

func OctDigit1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsOctDigit[T])
}

func Alphanumeric0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsAlphanumeric[T])
}

func Alphanumeric1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsAlphanumeric[T])
}

func Space0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsSpace[T])
}

func Space1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsSpace[T])
}

func Multispace0[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile[C, T](IsMultispace[T])
}

func Multispace1[C input.Cursor[C, T], T Char]() Parser[C, C] {
	return TakeWhile1[C, T](IsMultispace[T])
}
