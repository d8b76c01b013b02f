// Package hex implements the lowercase hex codec from spec §4.2. Encoding
// always emits lowercase digits; decoding accepts either case, matching
// ByteString's hex()/decodeHex() pairing.
package hex

import "github.com/iamNilotpal/octet/pkg/errors"

const digits = "0123456789abcdef"

// Encode returns the lowercase hex encoding of src, two characters per
// byte.
func Encode(src []byte) string {
	out := make([]byte, len(src)*2)
	for i, b := range src {
		out[i*2] = digits[b>>4]
		out[i*2+1] = digits[b&0x0f]
	}
	return string(out)
}

// Decode parses a hex string, case-insensitively, into bytes. An odd
// number of digits or a non-hex character is an error.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.NewProtocolError("hex.Decode", "odd-length hex string").
			WithDetail("length", len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok := value(s[i*2])
		if !ok {
			return nil, errors.NewProtocolError("hex.Decode", "invalid hex digit").
				WithByteOffset(int64(i * 2))
		}
		lo, ok := value(s[i*2+1])
		if !ok {
			return nil, errors.NewProtocolError("hex.Decode", "invalid hex digit").
				WithByteOffset(int64(i*2 + 1))
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func value(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
