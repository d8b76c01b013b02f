package buffer

import (
	"strings"

	codecutf8 "github.com/iamNilotpal/octet/codec/utf8"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// WriteUtf8 appends the UTF-8 bytes of s (already valid UTF-8, as all Go
// strings are) to the buffer.
func (b *Buffer) WriteUtf8(s string) {
	b.write([]byte(s))
}

// WriteUtf16 transcodes UTF-16 code units to UTF-8 via codec/utf8 and
// appends the result, for callers bridging from a UTF-16-native source.
func (b *Buffer) WriteUtf16(units []uint16) {
	b.write(codecutf8.AppendUTF16(nil, units))
}

// ReadUtf8 decodes the next byteCount bytes as UTF-8 and consumes them.
func (b *Buffer) ReadUtf8(byteCount int64) (string, error) {
	if byteCount < 0 || byteCount > b.size {
		return "", errors.NewInvalidArgumentError("byteCount", "exceeds buffered size", byteCount)
	}
	out := make([]byte, byteCount)
	n, err := b.Read(out)
	if err != nil {
		return "", err
	}
	return string(out[:n]), nil
}

// ReadUtf8All decodes and consumes every buffered byte as UTF-8.
func (b *Buffer) ReadUtf8All() string {
	return string(b.ReadAll())
}

// ReadUtf8CodePoint decodes and consumes a single UTF-8 code point from
// the head of the buffer, per the strict rejection table in codec/utf8.
// Unlike DecodeRune operating on a flat slice, this must tell a malformed
// sequence (replaced with U+FFFD, but still present) apart from a
// sequence truncated by the buffer itself running out of bytes (a hard
// EOF), since the latter means the caller should retry once more data has
// arrived rather than treat it as a decoded replacement character.
func (b *Buffer) ReadUtf8CodePoint() (rune, error) {
	if b.size == 0 {
		return 0, errors.NewEOFError("ReadUtf8CodePoint: buffer is empty")
	}

	lead, _ := b.PeekByte(0)
	need := int64(codecutf8.RequiredContinuationBytes(lead)) + 1
	if need > b.size {
		return 0, errors.NewEOFError("ReadUtf8CodePoint: incomplete sequence at end of stream")
	}

	peek := make([]byte, need)
	for i := int64(0); i < need; i++ {
		peek[i], _ = b.PeekByte(i)
	}

	r, size := codecutf8.DecodeRune(peek)
	if err := b.Skip(int64(size)); err != nil {
		return 0, err
	}
	return r, nil
}

// ReadUtf8Line reads and consumes a line terminated by "\n" or "\r\n",
// stripping the terminator, or returns the remainder of the buffer (with
// no error) if no terminator is found before the buffer is exhausted. It
// returns (_, false) when the buffer is empty and has no line to return.
func (b *Buffer) ReadUtf8Line() (string, bool, error) {
	newline := b.IndexOfByte('\n', 0)
	if newline == -1 {
		if b.size == 0 {
			return "", false, nil
		}
		return b.ReadUtf8All(), true, nil
	}

	lineEnd := newline
	if newline > 0 {
		if prev, err := b.PeekByte(newline - 1); err == nil && prev == '\r' {
			lineEnd = newline - 1
		}
	}

	line, err := b.ReadUtf8(lineEnd)
	if err != nil {
		return "", false, err
	}
	if err := b.Skip(newline - lineEnd + 1); err != nil {
		return "", false, err
	}
	return line, true, nil
}

// ReadUtf8LineStrict behaves like ReadUtf8Line but fails EOF if no "\n" is
// found within limit+1 scanned bytes, tolerating a trailing "\r\n" that
// would otherwise exceed the limit by exactly one byte.
func (b *Buffer) ReadUtf8LineStrict(limit int64) (string, error) {
	if limit < 0 {
		limit = b.size
	}

	newline := b.IndexOfByte('\n', 0)
	withinLimit := newline != -1 && newline <= limit
	if newline == limit+1 {
		if prev, err := b.PeekByte(limit); err == nil && prev == '\r' {
			withinLimit = true
		}
	}
	if !withinLimit {
		snippet := b.size
		if snippet > 32 {
			snippet = 32
		}
		preview, _ := b.ReadUtf8(snippet)
		return "", errors.NewEOFError("ReadUtf8LineStrict: no newline within limit").
			WithDetail("preview", escapeForLog(preview))
	}

	lineEnd := newline
	if newline > 0 {
		if prev, err := b.PeekByte(newline - 1); err == nil && prev == '\r' {
			lineEnd = newline - 1
		}
	}

	line, err := b.ReadUtf8(lineEnd)
	if err != nil {
		return "", err
	}
	if err := b.Skip(newline - lineEnd + 1); err != nil {
		return "", err
	}
	return line, nil
}

// Utf8ByteCount returns EncodedLenUTF16(units) worth of planning helper
// exposed for callers sizing a write ahead of time; trivial for ordinary
// Go strings (already UTF-8) but meaningful for UTF-16 sources.
func Utf8ByteCount(units []uint16) int {
	return codecutf8.EncodedLenUTF16(units)
}

// escapeForLog is a small helper some higher layers (error details, debug
// dumps) use to keep a preview single-line.
func escapeForLog(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\\", `\\`), "\n", `\n`)
}
