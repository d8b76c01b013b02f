// Package base64 implements the lenient Base64 codec from spec §4.2:
// standard and URL-safe alphabets both accept on decode, padding is
// optional on decode but always emitted on encode, and embedded ASCII
// whitespace is tolerated. Go's standard encoding/base64 already offers
// per-alphabet encoders, but it refuses to decode a mixed or
// whitespace-bearing stream without a manual Encoding.Strict()/WithPadding
// dance per call site; ByteString needs that leniency baked into a single
// entry point, so this package owns the decode table itself.
package base64

import "github.com/iamNilotpal/octet/pkg/errors"

const (
	standardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	padChar          = '='
)

var decodeTable = buildDecodeTable()

// buildDecodeTable maps every byte that can appear in either alphabet to
// its 6-bit value, and everything else to -1.
func buildDecodeTable() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(standardAlphabet); i++ {
		t[standardAlphabet[i]] = int8(i)
	}
	for i := 0; i < len(urlAlphabet); i++ {
		t[urlAlphabet[i]] = int8(i)
	}
	return t
}

// Encode returns the standard-alphabet, '='-padded Base64 encoding of src.
func Encode(src []byte) string {
	return encode(src, standardAlphabet)
}

// EncodeURL returns the URL-safe-alphabet, '='-padded Base64 encoding of
// src.
func EncodeURL(src []byte) string {
	return encode(src, urlAlphabet)
}

func encode(src []byte, alphabet string) string {
	if len(src) == 0 {
		return ""
	}

	out := make([]byte, ((len(src)+2)/3)*4)
	oi := 0
	i := 0
	for ; i+3 <= len(src); i += 3 {
		n := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		out[oi] = alphabet[n>>18&0x3f]
		out[oi+1] = alphabet[n>>12&0x3f]
		out[oi+2] = alphabet[n>>6&0x3f]
		out[oi+3] = alphabet[n&0x3f]
		oi += 4
	}

	switch len(src) - i {
	case 1:
		n := uint32(src[i]) << 16
		out[oi] = alphabet[n>>18&0x3f]
		out[oi+1] = alphabet[n>>12&0x3f]
		out[oi+2] = padChar
		out[oi+3] = padChar
		oi += 4
	case 2:
		n := uint32(src[i])<<16 | uint32(src[i+1])<<8
		out[oi] = alphabet[n>>18&0x3f]
		out[oi+1] = alphabet[n>>12&0x3f]
		out[oi+2] = alphabet[n>>6&0x3f]
		out[oi+3] = padChar
		oi += 4
	}

	return string(out[:oi])
}

// Decode accepts a Base64 string in either the standard or URL-safe
// alphabet, with or without '=' padding, tolerating embedded ASCII
// whitespace (space, tab, CR, LF). It rejects strings whose stripped
// length leaves exactly one dangling 6-bit group, since that can never
// represent a whole byte.
func Decode(s string) ([]byte, error) {
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\r', '\n', padChar:
			continue
		default:
			if decodeTable[c] < 0 {
				return nil, errors.NewProtocolError("base64.Decode", "invalid character in input").
					WithDetail("byte", c).WithByteOffset(int64(i))
			}
			cleaned = append(cleaned, c)
		}
	}

	if len(cleaned)%4 == 1 {
		return nil, errors.NewProtocolError("base64.Decode", "dangling final character")
	}

	out := make([]byte, 0, len(cleaned)*6/8+1)
	var acc uint32
	var bits int
	for _, c := range cleaned {
		acc = acc<<6 | uint32(decodeTable[c])
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>uint(bits)))
		}
	}

	return out, nil
}
