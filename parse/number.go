package parse

import "github.com/dhamidi/nibble/input"

// Uint8 matches one byte as an unsigned integer.
func Uint8[C input.Cursor[C, byte]]() Parser[C, uint8] {
	return func(c C) (C, uint8, error) {
		rest, b, ok := c.NextToken()
		if !ok {
			if c.Partial() {
				return incomplete[C, uint8](c, 1)
			}
			return fail[C, uint8](c, KindTake)
		}
		return rest, b, nil
	}
}

// BeUint16 matches a big-endian 16-bit unsigned integer.
func BeUint16[C input.Cursor[C, byte]]() Parser[C, uint16] {
	return func(c C) (C, uint16, error) {
		rest, v, err := takeUint(c, 2, false)
		return rest, uint16(v), err
	}
}

// BeUint32 matches a big-endian 32-bit unsigned integer.
func BeUint32[C input.Cursor[C, byte]]() Parser[C, uint32] {
	return func(c C) (C, uint32, error) {
		rest, v, err := takeUint(c, 4, false)
		return rest, uint32(v), err
	}
}

// LeUint16 matches a little-endian 16-bit unsigned integer.
func LeUint16[C input.Cursor[C, byte]]() Parser[C, uint16] {
	return func(c C) (C, uint16, error) {
		rest, v, err := takeUint(c, 2, true)
		return rest, uint16(v), err
	}
}

// LeUint32 matches a little-endian 32-bit unsigned integer.
func LeUint32[C input.Cursor[C, byte]]() Parser[C, uint32] {
	return func(c C) (C, uint32, error) {
		rest, v, err := takeUint(c, 4, true)
		return rest, uint32(v), err
	}
}

func takeUint[C input.Cursor[C, byte]](c C, size int, littleEndian bool) (C, uint64, error) {
	if _, needed, ok := c.OffsetAt(size); !ok {
		if c.Partial() {
			return incomplete[C, uint64](c, needed)
		}
		return fail[C, uint64](c, KindTake)
	}
	var v uint64
	cur := c
	for i := 0; i < size; i++ {
		var b byte
		cur, b, _ = cur.NextToken()
		if littleEndian {
			v |= uint64(b) << (8 * i)
		} else {
			v = v<<8 | uint64(b)
		}
	}
	return cur, v, nil
}

// LengthData matches a count followed by exactly count tokens of
// payload, producing the payload span.
func LengthData[C Sliceable[C], N ~uint8 | ~uint16 | ~uint32 | ~int](count Parser[C, N]) Parser[C, C] {
	return func(c C) (C, C, error) {
		rest, n, err := count(c)
		if err != nil {
			var zero C
			return c, zero, err
		}
		rest, span, err := Take[C](int(n))(rest)
		if err != nil {
			var zero C
			return c, zero, err
		}
		return rest, span, nil
	}
}
