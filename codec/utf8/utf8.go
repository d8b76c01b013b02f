// Package utf8 implements the strict UTF-8 encode/decode semantics from
// spec §4.4: malformed input is replaced with U+FFFD according to a precise
// rejection table rather than delegating to a generic decoder, and
// surrogate-pair encoding is handled explicitly for callers bridging from
// UTF-16 code units (the representation the spec's source language uses
// natively; Go strings are already UTF-8, so EncodedLen/AppendString are
// thin, but AppendUTF16 carries the interesting surrogate-combining logic).
//
// Nothing here depends on buffer or bytestring: this package operates on
// plain []byte and []uint16, and the buffer package builds its
// segment-aware ReadUtf8/WriteUtf8 on top of it.
package utf8

// ReplacementCharacter is emitted in place of any code point this package
// rejects during decode.
const ReplacementCharacter rune = 0xFFFD

// replacementByte is what gets written, during encode, for an unpaired or
// reversed UTF-16 surrogate — spec §4.4 calls for a literal '?' there
// rather than the 3-byte U+FFFD encoding used on the decode side.
const replacementByte = '?'

// EncodedLen returns the number of UTF-8 bytes required to encode s, where
// s is already a valid Go string (i.e. already UTF-8). This is a simple
// byte count since no re-encoding occurs, but is provided so callers never
// need to special-case the "already UTF-8" source the way they must for
// AppendUTF16.
func EncodedLen(s string) int {
	return len(s)
}

// AppendString appends the UTF-8 bytes of s (already valid UTF-8, as all
// Go strings are assumed to be on this path) to dst.
func AppendString(dst []byte, s string) []byte {
	return append(dst, s...)
}

// EncodedLenUTF16 computes the number of UTF-8 bytes needed to encode the
// given UTF-16 code units, accounting for surrogate pairs (which combine
// two 16-bit units into one 4-byte UTF-8 sequence) and unpaired surrogates
// (which the spec says count as, and encode as, a single byte).
func EncodedLenUTF16(units []uint16) int {
	n := 0
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0x80:
			n++
		case u < 0x800:
			n += 2
		case isHighSurrogate(u):
			if i+1 < len(units) && isLowSurrogate(units[i+1]) {
				n += 4
				i++
			} else {
				n++ // unpaired: emits a single '?' byte.
			}
		case isLowSurrogate(u):
			n++ // reversed/unpaired low surrogate on its own.
		default:
			n += 3
		}
	}
	return n
}

// AppendUTF16 transcodes UTF-16 code units to UTF-8 bytes, appending the
// result to dst. Surrogate pairs combine via the conventional formula
// 0x10000 + ((hi&0x3ff)<<10 | (lo&0x3ff)); an unpaired or reversed
// surrogate degrades to a single '?' byte rather than a decode error,
// matching spec §4.4's encode-side leniency (decode is the strict side).
func AppendUTF16(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			cp := 0x10000 + (rune(u&0x3ff)<<10 | rune(units[i+1]&0x3ff))
			dst = appendRune(dst, cp)
			i++
		case isHighSurrogate(u), isLowSurrogate(u):
			dst = append(dst, replacementByte)
		default:
			dst = appendRune(dst, rune(u))
		}
	}
	return dst
}

func isHighSurrogate(u uint16) bool { return u >= 0xd800 && u <= 0xdbff }
func isLowSurrogate(u uint16) bool  { return u >= 0xdc00 && u <= 0xdfff }

// appendRune appends the UTF-8 encoding of a single already-validated code
// point (never itself a surrogate value once called from AppendUTF16,
// since surrogate halves are intercepted above).
func appendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, byte(0xc0|r>>6), byte(0x80|r&0x3f))
	case r < 0x10000:
		return append(dst, byte(0xe0|r>>12), byte(0x80|(r>>6)&0x3f), byte(0x80|r&0x3f))
	default:
		return append(dst,
			byte(0xf0|r>>18),
			byte(0x80|(r>>12)&0x3f),
			byte(0x80|(r>>6)&0x3f),
			byte(0x80|r&0x3f),
		)
	}
}

// DecodeRune decodes the leading UTF-8 code point of p, applying the
// rejection table from spec §4.4: overlong encodings, surrogate-range code
// points, code points beyond U+10FFFF, and broken continuation sequences
// all yield ReplacementCharacter. size reports how many bytes were
// consumed — callers advance by size regardless of whether decode
// succeeded, since even a malformed sequence must make forward progress.
// size is 0 only when p is empty.
func DecodeRune(p []byte) (r rune, size int) {
	if len(p) == 0 {
		return 0, 0
	}

	b0 := p[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 == 0xc0 || b0 == 0xc1:
		// These two lead bytes can only ever introduce an overlong 2-byte
		// sequence (codepoints < 0x80), so the overlong rejection applies
		// to the lead byte alone: reject it without reading a continuation
		// byte, so "C0 80" yields two U+FFFD (spec §8 scenario 4), not one.
		return ReplacementCharacter, 1
	case b0&0xe0 == 0xc0:
		return decodeContinuation(p, 2, rune(b0&0x1f), 0x80)
	case b0&0xf0 == 0xe0:
		return decodeContinuation(p, 3, rune(b0&0x0f), 0x800)
	case b0&0xf8 == 0xf0:
		return decodeContinuation(p, 4, rune(b0&0x07), 0x10000)
	default:
		// A stray continuation byte (0x80-0xbf) or an invalid leading byte
		// (0xf8-0xff, obsolete 5/6-byte lead bytes): reject outright,
		// consuming just the one offending byte.
		return ReplacementCharacter, 1
	}
}

// decodeContinuation reads the remaining total-1 continuation bytes of a
// multi-byte sequence whose leading byte contributed acc so far (already
// masked to its payload bits) and whose minimum valid code point is min
// (used to reject overlong encodings).
func decodeContinuation(p []byte, total int, acc rune, min rune) (rune, int) {
	consumed := 1
	for i := 1; i < total; i++ {
		if i >= len(p) {
			// Stream ended before the sequence completed.
			return ReplacementCharacter, consumed
		}
		b := p[i]
		if b&0xc0 != 0x80 {
			// Not a continuation byte: stop before it, per spec §4.4.
			return ReplacementCharacter, consumed
		}
		acc = acc<<6 | rune(b&0x3f)
		consumed++
	}

	if acc < min {
		return ReplacementCharacter, consumed
	}
	if acc >= 0xd800 && acc <= 0xdfff {
		return ReplacementCharacter, consumed
	}
	if acc > 0x10ffff {
		return ReplacementCharacter, consumed
	}
	return acc, consumed
}

// RequiredContinuationBytes reports how many continuation bytes a leading
// byte commits a caller to reading, used by the buffer-level
// ReadUtf8CodePoint to detect "fewer bytes available than the leading byte
// promised" as EOF rather than as a replacement character — the one case
// spec §4.4 treats as a hard failure instead of a silent substitution.
func RequiredContinuationBytes(leadByte byte) int {
	switch {
	case leadByte < 0x80:
		return 0
	case leadByte == 0xc0 || leadByte == 0xc1:
		// Always overlong regardless of what follows (see DecodeRune):
		// rejected on the lead byte alone, so no continuation byte is
		// ever read for it and none should be waited on at stream end.
		return 0
	case leadByte&0xe0 == 0xc0:
		return 1
	case leadByte&0xf0 == 0xe0:
		return 2
	case leadByte&0xf8 == 0xf0:
		return 3
	default:
		return 0
	}
}

// Size computes the number of UTF-8 bytes required to encode the given
// Unicode code points, treating any code point outside the valid range (or
// a surrogate half passed directly as a rune, which cannot occur from a
// valid Go string but can from caller-constructed rune slices) as a single
// byte, matching how an unpaired surrogate counts during UTF-16 transcode.
func Size(runes []rune) int {
	n := 0
	for _, r := range runes {
		switch {
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r >= 0xd800 && r <= 0xdfff:
			n++
		case r < 0x10000:
			n += 3
		case r <= 0x10ffff:
			n += 4
		default:
			n++
		}
	}
	return n
}
