package iostream

import (
	"github.com/iamNilotpal/octet/buffer"
	"github.com/iamNilotpal/octet/pkg/config"
	"github.com/iamNilotpal/octet/pkg/errors"
	"github.com/iamNilotpal/octet/selector"
)

// BufferedSource wraps a raw Source with a private buffer.Buffer, pulling
// upstream bytes in segment-sized chunks only when a typed read actually
// needs more than is already staged.
type BufferedSource struct {
	source  Source
	buf     *buffer.Buffer
	closed  bool
	segment int64 // segment size used for each upstream pull

	peek *peekCursor // the most recently issued, still-valid peek
}

// NewBufferedSource wraps source with a buffer sized from the default
// config; cfg.SegmentSize governs how many bytes each upstream pull
// requests.
func NewBufferedSource(source Source, cfg config.Config) *BufferedSource {
	return &BufferedSource{source: source, buf: buffer.New(), segment: int64(cfg.SegmentSize)}
}

// Buffer exposes the internal staging buffer, e.g. for callers that want to
// inspect already-buffered bytes without consuming them.
func (s *BufferedSource) Buffer() *buffer.Buffer { return s.buf }

// require pulls from upstream until the internal buffer holds at least n
// bytes or upstream is exhausted, failing EOF in the latter case.
func (s *BufferedSource) require(n int64) error {
	if s.closed {
		return errors.NewIllegalStateError("BufferedSource: read from closed source")
	}
	for s.buf.Size() < n {
		read, err := s.source.Read(s.buf, s.segment)
		if err != nil {
			return err
		}
		if read == -1 {
			return errors.NewEOFError("BufferedSource: upstream exhausted before satisfying request")
		}
	}
	return nil
}

// request pulls upstream chunks until the buffer holds at least minBytes,
// returning false if upstream is exhausted before that point. Used by
// operations that want "as much as is available" rather than an exact n.
func (s *BufferedSource) request(minBytes int64) (bool, error) {
	if s.closed {
		return false, errors.NewIllegalStateError("BufferedSource: read from closed source")
	}
	for s.buf.Size() < minBytes {
		read, err := s.source.Read(s.buf, s.segment)
		if err != nil {
			return false, err
		}
		if read == -1 {
			return s.buf.Size() >= minBytes, nil
		}
	}
	return true, nil
}

// invalidatePeek marks any outstanding peek cursor invalid, per spec §4.3:
// a peek is invalidated as soon as the parent is read from or closed.
func (s *BufferedSource) invalidatePeek() {
	if s.peek != nil {
		s.peek.valid = false
		s.peek = nil
	}
}

// ReadByte reads a single byte, pulling from upstream if the buffer is
// empty.
func (s *BufferedSource) ReadByte() (byte, error) {
	s.invalidatePeek()
	if err := s.require(1); err != nil {
		return 0, err
	}
	return s.buf.ReadByte()
}

// ReadFully reads exactly len(p) bytes into p.
func (s *BufferedSource) ReadFully(p []byte) error {
	s.invalidatePeek()
	if err := s.require(int64(len(p))); err != nil {
		return err
	}
	_, err := s.buf.Read(p)
	return err
}

// Read implements io.Reader over whatever is already buffered, pulling one
// more upstream chunk only if the buffer is currently empty.
func (s *BufferedSource) Read(p []byte) (int, error) {
	s.invalidatePeek()
	if s.buf.IsEmpty() {
		ok, err := s.request(1)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, errors.NewEOFError("BufferedSource: Read on exhausted source")
		}
	}
	return s.buf.Read(p)
}

// Exhausted reports whether both the internal buffer is empty and
// upstream has no more bytes to offer.
func (s *BufferedSource) Exhausted() (bool, error) {
	if !s.buf.IsEmpty() {
		return false, nil
	}
	ok, err := s.request(1)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Skip discards byteCount bytes, pulling from upstream as needed.
func (s *BufferedSource) Skip(byteCount int64) error {
	s.invalidatePeek()
	for byteCount > 0 {
		if s.buf.IsEmpty() {
			ok, err := s.request(1)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewEOFError("BufferedSource: Skip ran out of bytes")
			}
		}
		chunk := s.buf.Size()
		if chunk > byteCount {
			chunk = byteCount
		}
		if err := s.buf.Skip(chunk); err != nil {
			return err
		}
		byteCount -= chunk
	}
	return nil
}

// ReadDecimalLong requires enough buffered digits and delegates to Buffer.
func (s *BufferedSource) ReadDecimalLong() (int64, error) {
	s.invalidatePeek()
	// A decimal long is at most 20 bytes (sign + 19 digits); request that
	// much eagerly so Buffer's greedy parse sees the whole number in one
	// pass when it's available, but tolerate less at EOF.
	_, _ = s.request(20)
	return s.buf.ReadDecimalLong()
}

// ReadHexadecimalUnsignedLong mirrors ReadDecimalLong for the hex form (at
// most 16 hex digits).
func (s *BufferedSource) ReadHexadecimalUnsignedLong() (uint64, error) {
	s.invalidatePeek()
	_, _ = s.request(16)
	return s.buf.ReadHexadecimalUnsignedLong()
}

// ReadUtf8Line reads one line per spec §4.1's line-splitting rule, pulling
// upstream chunks until a newline is found or the source is exhausted.
func (s *BufferedSource) ReadUtf8Line() (string, bool, error) {
	s.invalidatePeek()
	for {
		if idx := s.buf.IndexOfByte('\n', 0); idx != -1 {
			return s.buf.ReadUtf8Line()
		}
		ok, err := s.request(s.buf.Size() + 1)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return s.buf.ReadUtf8Line()
		}
	}
}

// ReadUtf8LineStrict mirrors ReadUtf8Line but fails EOF instead of
// returning a final partial line, per spec §4.1.
func (s *BufferedSource) ReadUtf8LineStrict(limit int64) (string, error) {
	s.invalidatePeek()
	for {
		if idx := s.buf.IndexOfByte('\n', 0); idx != -1 {
			return s.buf.ReadUtf8LineStrict(limit)
		}
		if s.buf.Size() > limit {
			return s.buf.ReadUtf8LineStrict(limit)
		}
		ok, err := s.request(s.buf.Size() + 1)
		if err != nil {
			return "", err
		}
		if !ok {
			return s.buf.ReadUtf8LineStrict(limit)
		}
	}
}

// ReadUtf8CodePoint reads one decoded code point, expanding the buffer as
// needed for multi-byte sequences.
func (s *BufferedSource) ReadUtf8CodePoint() (rune, error) {
	s.invalidatePeek()
	if err := s.require(1); err != nil {
		return 0, err
	}
	// The leading byte determines how many continuation bytes are needed;
	// request generously (4 is the max UTF-8 sequence length) and let
	// Buffer's decoder handle whatever is actually present.
	_, _ = s.request(4)
	return s.buf.ReadUtf8CodePoint()
}

// Select walks opts against the buffered bytes, expanding the buffer one
// upstream chunk at a time on truncation, per spec §4.6. On a match it
// consumes the matched bytes and returns the caller's index; on a
// definitive mismatch it returns -1 without consuming anything.
func (s *BufferedSource) Select(opts *selector.Options) (int, error) {
	s.invalidatePeek()
	for {
		idx := opts.SelectPrefix(s.buf, true)
		if idx == -2 {
			ok, err := s.request(s.buf.Size() + 1)
			if err != nil {
				return -1, err
			}
			if !ok {
				idx = opts.SelectPrefix(s.buf, false)
				break
			}
			continue
		}
		break
	}
	idx := opts.SelectPrefix(s.buf, false)
	if idx < 0 {
		return -1, nil
	}
	matched := opts.ByteStringAt(idx)
	if matched == nil {
		return -1, nil
	}
	if err := s.buf.Skip(int64(matched.Size())); err != nil {
		return -1, err
	}
	return idx, nil
}

// SelectTyped mirrors Select for a TypedOptions, returning the caller's
// value directly.
func SelectTyped[T any](s *BufferedSource, opts *selector.TypedOptions[T]) (T, bool, error) {
	idx, err := s.Select(opts.Options())
	var zero T
	if err != nil || idx < 0 {
		return zero, false, err
	}
	v, ok := opts.Select(idx)
	return v, ok, nil
}

// Peek returns an independent read cursor backed by this source's buffer:
// it never pulls more from upstream than a plain Read would, and is
// invalidated the moment this BufferedSource is read from or closed.
func (s *BufferedSource) Peek() *peekCursor {
	p := &peekCursor{parent: s, valid: true}
	s.peek = p
	return p
}

// peekCursor is a read-only view into a BufferedSource's buffer, per spec
// §9: it captures nothing but a back-reference and a relative offset,
// since the buffer itself is not copied.
type peekCursor struct {
	parent *BufferedSource
	offset int64
	valid  bool
}

// Read copies bytes starting at the cursor's current offset without
// consuming them from the parent, pulling more from upstream as needed and
// failing IllegalState if the parent has since invalidated this cursor.
func (p *peekCursor) Read(dst []byte) (int, error) {
	if !p.valid {
		return 0, errors.NewIllegalStateError("peek cursor invalidated by a read on its parent")
	}
	s := p.parent
	need := p.offset + int64(len(dst))
	for s.buf.Size() < need {
		ok, err := s.request(need)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
	}
	n := 0
	for n < len(dst) {
		b, err := s.buf.PeekByte(p.offset + int64(n))
		if err != nil {
			break
		}
		dst[n] = b
		n++
	}
	p.offset += int64(n)
	if n == 0 && len(dst) > 0 {
		return 0, errors.NewEOFError("peek cursor exhausted")
	}
	return n, nil
}

// Close releases the cursor; per spec it is not strictly required since
// the parent invalidates it automatically, but it is provided for explicit
// resource-scoping symmetry with other cursor types.
func (p *peekCursor) Close() error {
	p.valid = false
	return nil
}

// Close closes the underlying source. Any outstanding peek becomes
// invalid.
func (s *BufferedSource) Close() error {
	s.invalidatePeek()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.source.Close()
}
