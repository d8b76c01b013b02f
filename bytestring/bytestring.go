// Package bytestring implements the immutable ByteString value and its
// directory-addressed SegmentedByteString variant from spec §4.2. Both
// satisfy the same ByteString interface; SegmentedByteString additionally
// walks a directory of cumulative page sizes instead of materializing a
// contiguous array for the operations the spec calls out (At, RangeEquals).
//
// Grounded on the teacher's internal/index RecordPointer: that type also
// maps a logical position to a (page, offset-within-page) pair via a small
// lookup structure rather than storing data contiguously. Here the lookup
// is a binary search over cumulative counts instead of a hash index, but
// the "don't copy, locate" discipline is the same one the teacher applies
// to on-disk records.
package bytestring

import (
	"strings"
	"sync"

	"github.com/iamNilotpal/octet/codec/base64"
	"github.com/iamNilotpal/octet/codec/hex"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// ByteString is an immutable byte sequence with value equality,
// lexicographic ordering, and a handful of codec views over its content.
type ByteString interface {
	// Size returns the number of bytes in the string.
	Size() int
	// Bytes returns a defensive copy of the full contents.
	Bytes() []byte
	// At returns the byte at logical offset i.
	At(i int) byte

	Utf8() string
	Hex() string
	Base64() string
	Base64Url() string

	// ToAsciiLowercase returns self when no ASCII uppercase letter is
	// present, otherwise a new ByteString with them lowered.
	ToAsciiLowercase() ByteString
	// ToAsciiUppercase returns self when no ASCII lowercase letter is
	// present, otherwise a new ByteString with them raised.
	ToAsciiUppercase() ByteString

	// Substring returns the byte range [begin, end). A negative end means
	// "through Size()".
	Substring(begin, end int) ByteString

	StartsWith(prefix []byte) bool
	StartsWithByteString(prefix ByteString) bool
	EndsWith(suffix []byte) bool
	EndsWithByteString(suffix ByteString) bool

	// IndexOf returns the first index at or after fromIndex where target
	// occurs, or -1.
	IndexOf(target []byte, fromIndex int) int
	// LastIndexOf returns the last index at or before fromIndex where
	// target occurs, or -1.
	LastIndexOf(target []byte, fromIndex int) int

	// RangeEquals reports whether byteCount bytes starting at offset equal
	// the bytes of other starting at otherOffset.
	RangeEquals(offset int, other []byte, otherOffset, byteCount int) bool

	// CompareTo orders two byte strings lexicographically by unsigned byte
	// value, shorter-is-smaller on a common prefix.
	CompareTo(other ByteString) int
	Equal(other ByteString) bool
	HashCode() int32

	// String renders a debug form: "[text=...]" when the leading bytes
	// decode as clean printable UTF-8, otherwise "[hex=...]", truncated at
	// 64 units with "…".
	String() string

	// ToIndex projects the byte string into [0, n) using its leading bytes
	// as a big-endian unsigned integer.
	ToIndex(n int) int
	// ToFraction projects the byte string into [0.0, 1.0) the same way.
	ToFraction() float64
}

// simple is the contiguous-array-backed ByteString, used for anything
// short enough not to warrant the segmented form (spec §9: under the
// 4096-byte snapshot threshold).
type simple struct {
	data []byte

	hashOnce sync.Once
	hashVal  int32
}

// Of returns a ByteString holding a private copy of data.
func Of(data []byte) ByteString {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &simple{data: cp}
}

// FromString returns a ByteString holding the UTF-8 bytes of s.
func FromString(s string) ByteString {
	return Of([]byte(s))
}

func (s *simple) Size() int { return len(s.data) }

func (s *simple) Bytes() []byte {
	cp := make([]byte, len(s.data))
	copy(cp, s.data)
	return cp
}

func (s *simple) At(i int) byte {
	if i < 0 || i >= len(s.data) {
		panic(errors.NewIndexOutOfBoundsError("i", i, len(s.data)))
	}
	return s.data[i]
}

func (s *simple) Utf8() string        { return string(s.data) }
func (s *simple) Hex() string         { return hex.Encode(s.data) }
func (s *simple) Base64() string      { return base64.Encode(s.data) }
func (s *simple) Base64Url() string   { return base64.EncodeURL(s.data) }

func (s *simple) ToAsciiLowercase() ByteString { return mapAsciiCase(s, false) }
func (s *simple) ToAsciiUppercase() ByteString { return mapAsciiCase(s, true) }

func (s *simple) Substring(begin, end int) ByteString {
	begin, end = normalizeRange(len(s.data), begin, end)
	return Of(s.data[begin:end])
}

func (s *simple) StartsWith(prefix []byte) bool { return startsWith(s.data, prefix) }
func (s *simple) StartsWithByteString(prefix ByteString) bool {
	return startsWith(s.data, prefix.Bytes())
}
func (s *simple) EndsWith(suffix []byte) bool { return endsWith(s.data, suffix) }
func (s *simple) EndsWithByteString(suffix ByteString) bool {
	return endsWith(s.data, suffix.Bytes())
}

func (s *simple) IndexOf(target []byte, fromIndex int) int {
	return indexOf(s.data, target, fromIndex)
}
func (s *simple) LastIndexOf(target []byte, fromIndex int) int {
	return lastIndexOf(s.data, target, fromIndex)
}

func (s *simple) RangeEquals(offset int, other []byte, otherOffset, byteCount int) bool {
	return rangeEquals(s.data, offset, other, otherOffset, byteCount)
}

func (s *simple) CompareTo(other ByteString) int { return compareUnsigned(s.data, other.Bytes()) }
func (s *simple) Equal(other ByteString) bool {
	return other != nil && other.Size() == len(s.data) && s.CompareTo(other) == 0
}

func (s *simple) HashCode() int32 {
	s.hashOnce.Do(func() { s.hashVal = hashCode(s.data) })
	return s.hashVal
}

func (s *simple) String() string { return describe(s.data) }

func (s *simple) ToIndex(n int) int      { return toIndex(s.data, n) }
func (s *simple) ToFraction() float64    { return toFraction(s.data) }

// --- shared helpers used by both simple and segmented ---

func normalizeRange(size, begin, end int) (int, int) {
	if end < 0 {
		end = size
	}
	if begin < 0 || end > size || begin > end {
		panic(errors.NewInvalidArgumentError("range", "substring range out of bounds", [2]int{begin, end}))
	}
	return begin, end
}

func mapAsciiCase(bs ByteString, upper bool) ByteString {
	data := bs.Bytes()
	changed := false
	for i, b := range data {
		if upper && b >= 'a' && b <= 'z' {
			data[i] = b - ('a' - 'A')
			changed = true
		} else if !upper && b >= 'A' && b <= 'Z' {
			data[i] = b + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return bs
	}
	return &simple{data: data}
}

func startsWith(data, prefix []byte) bool {
	if len(prefix) > len(data) {
		return false
	}
	return rangeEquals(data, 0, prefix, 0, len(prefix))
}

func endsWith(data, suffix []byte) bool {
	if len(suffix) > len(data) {
		return false
	}
	return rangeEquals(data, len(data)-len(suffix), suffix, 0, len(suffix))
}

func rangeEquals(data []byte, offset int, other []byte, otherOffset, byteCount int) bool {
	if offset < 0 || offset+byteCount > len(data) {
		return false
	}
	if otherOffset < 0 || otherOffset+byteCount > len(other) {
		return false
	}
	for i := 0; i < byteCount; i++ {
		if data[offset+i] != other[otherOffset+i] {
			return false
		}
	}
	return true
}

func indexOf(data, target []byte, fromIndex int) int {
	if fromIndex < 0 {
		fromIndex = 0
	}
	if len(target) == 0 {
		if fromIndex > len(data) {
			return -1
		}
		return fromIndex
	}
	for i := fromIndex; i+len(target) <= len(data); i++ {
		if rangeEquals(data, i, target, 0, len(target)) {
			return i
		}
	}
	return -1
}

func lastIndexOf(data, target []byte, fromIndex int) int {
	if len(target) == 0 {
		if fromIndex > len(data) {
			return len(data)
		}
		return fromIndex
	}
	upper := fromIndex
	if upper > len(data)-len(target) {
		upper = len(data) - len(target)
	}
	for i := upper; i >= 0; i-- {
		if rangeEquals(data, i, target, 0, len(target)) {
			return i
		}
	}
	return -1
}

func compareUnsigned(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// hashCode mirrors the classic cumulative string hash (h = h*31 + b) used
// by the teacher's cache-key hashing in internal/index, applied byte-wise
// instead of rune-wise.
func hashCode(data []byte) int32 {
	var h int32
	for _, b := range data {
		h = h*31 + int32(b)
	}
	return h
}

// toIndex projects data into [0, n) using its leading 4 bytes as a
// big-endian unsigned integer, zero-padding short input on the right.
func toIndex(data []byte, n int) int {
	if n <= 0 {
		panic(errors.NewInvalidArgumentError("n", "toIndex bucket count must be positive", n))
	}
	var buf [4]byte
	copy(buf[:], data)
	v := uint64(buf[0])<<24 | uint64(buf[1])<<16 | uint64(buf[2])<<8 | uint64(buf[3])
	return int((v * uint64(n)) >> 32)
}

// toFraction projects data into [0.0, 1.0) using its leading 7 bytes as a
// big-endian unsigned integer (56 bits, safely within a float64 mantissa).
func toFraction(data []byte) float64 {
	var buf [7]byte
	copy(buf[:], data)
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return float64(v) / float64(uint64(1)<<56)
}

// describe implements the toString() rule: prefer "[text=...]" when the
// leading 64 code points decode as printable UTF-8 with no disallowed
// control characters, otherwise "[hex=...]", truncating with "…" past 64
// units and escaping backslash/CR/LF in the text form.
func describe(data []byte) string {
	const limit = 64

	truncated := false
	text := string(data)
	runes := []rune(text)
	if len(runes) > limit {
		runes = runes[:limit]
		truncated = true
	}

	if isCleanText(runes) && !strings.ContainsRune(string(runes), 0xFFFD) {
		var b strings.Builder
		b.WriteString("[text=")
		for _, r := range runes {
			switch r {
			case '\\':
				b.WriteString(`\\`)
			case '\r':
				b.WriteString(`\r`)
			case '\n':
				b.WriteString(`\n`)
			default:
				b.WriteRune(r)
			}
		}
		if truncated {
			b.WriteString("…")
		}
		b.WriteString("]")
		return b.String()
	}

	hexLimit := limit
	hexData := data
	hexTruncated := false
	if len(hexData) > hexLimit {
		hexData = hexData[:hexLimit]
		hexTruncated = true
	}
	out := "[hex=" + hex.Encode(hexData)
	if hexTruncated {
		out += "…"
	}
	return out + "]"
}

func isCleanText(runes []rune) bool {
	for _, r := range runes {
		if r == 0xFFFD {
			return false
		}
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return false
		}
	}
	return true
}
