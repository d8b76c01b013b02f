package buffer

import "github.com/iamNilotpal/octet/pkg/errors"

// WriteDecimalLong writes the base-10 representation of v, with a leading
// '-' for negatives. Width is counted by repeated division by ten, and
// digits are produced back-to-front into a scratch slice of that width
// which is then appended, matching the teacher's "size it, then fill it
// backwards" numeric formatting style.
func (b *Buffer) WriteDecimalLong(v int64) {
	if v == 0 {
		b.write([]byte{'0'})
		return
	}

	negative := v < 0
	// Math.MinInt64 has no positive counterpart; work in the negative
	// domain throughout, which also matches how readDecimalLong
	// accumulates (see below) to admit that same special case.
	var n int64
	if negative {
		n = v
	} else {
		n = -v
	}

	width := decimalWidth(n)
	if negative {
		width++
	}

	buf := make([]byte, width)
	pos := width
	for n <= -10 {
		pos--
		buf[pos] = byte('0' - (n % 10))
		n /= 10
	}
	pos--
	buf[pos] = byte('0' - n)
	if negative {
		pos--
		buf[pos] = '-'
	}

	b.write(buf)
}

// decimalWidth returns the number of decimal digits needed for the
// negative value n (n <= 0), including math.MinInt64 which has no
// positive counterpart to size against directly.
func decimalWidth(n int64) int {
	width := 1
	for n <= -10 {
		n /= 10
		width++
	}
	return width
}

// ReadDecimalLong parses a greedy run of ASCII digits (with an optional
// leading '-') from the head of the buffer, accumulating into a negative
// value throughout so that math.MinInt64 is representable, and fails
// NumberFormat on overflow or when no digit is present.
func (b *Buffer) ReadDecimalLong() (int64, error) {
	if b.size == 0 {
		return 0, errors.NewEOFError("ReadDecimalLong: buffer is empty")
	}

	first, err := b.PeekByte(0)
	if err != nil {
		return 0, err
	}

	negative := false
	consumed := int64(0)
	if first == '-' {
		negative = true
		consumed = 1
	}

	var value int64 // accumulated as a negative number
	digits := 0
	for {
		idx := consumed + int64(digits)
		if idx >= b.size {
			break
		}
		c, _ := b.PeekByte(idx)
		if c < '0' || c > '9' {
			break
		}

		digit := int64(c - '0')
		const overflowZone = (-1 << 63) / 10
		if value < overflowZone {
			return 0, errors.NewNumberFormatError("ReadDecimalLong", "numeric overflow")
		}
		value = value*10 - digit
		if value > 0 {
			return 0, errors.NewNumberFormatError("ReadDecimalLong", "numeric overflow")
		}
		digits++
	}

	if digits == 0 {
		return 0, errors.NewNumberFormatError("ReadDecimalLong", "expected a leading digit")
	}

	// A positive literal whose magnitude is exactly math.MinInt64
	// (accumulated here as the negative value -1<<63, since there is no
	// positive int64 representation of it) overflows; this must be caught
	// before Skip consumes the digits, so the buffer still holds the
	// unconsumed input on failure, per spec §8's named boundary scenario.
	if !negative && value == -1<<63 {
		return 0, errors.NewNumberFormatError("ReadDecimalLong", "numeric overflow")
	}

	if err := b.Skip(consumed + int64(digits)); err != nil {
		return 0, err
	}

	if negative {
		return value, nil
	}
	return -value, nil
}

const hexDigits = "0123456789abcdef"

// WriteHexadecimalUnsignedLong writes v as lowercase unsigned hex, with a
// width of ceil(bits-used / 4), never padding beyond what v actually
// needs.
func (b *Buffer) WriteHexadecimalUnsignedLong(v uint64) {
	if v == 0 {
		b.write([]byte{'0'})
		return
	}

	width := 0
	for n := v; n != 0; n >>= 4 {
		width++
	}

	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	b.write(buf)
}

// ReadHexadecimalUnsignedLong parses a greedy run of case-insensitive hex
// digits from the head of the buffer.
func (b *Buffer) ReadHexadecimalUnsignedLong() (uint64, error) {
	if b.size == 0 {
		return 0, errors.NewEOFError("ReadHexadecimalUnsignedLong: buffer is empty")
	}

	var value uint64
	digits := int64(0)
	for digits < b.size {
		c, _ := b.PeekByte(digits)
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			goto done
		}
		if digits >= 16 {
			return 0, errors.NewNumberFormatError("ReadHexadecimalUnsignedLong", "numeric overflow")
		}
		value = value<<4 | d
		digits++
	}
done:
	if digits == 0 {
		return 0, errors.NewNumberFormatError("ReadHexadecimalUnsignedLong", "expected a leading hex digit")
	}
	if err := b.Skip(digits); err != nil {
		return 0, err
	}
	return value, nil
}
