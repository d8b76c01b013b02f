// Package buffer implements the segment-pooled, growable byte buffer from
// spec §4.1: a Buffer is a circular doubly-linked list of fixed-capacity
// segments borrowed from a segment.Pool, read from the head and written at
// the tail, so that moving bytes between two buffers can often transplant
// whole pages instead of copying them.
//
// Grounded on the teacher's internal/storage active-segment-file pattern:
// Storage tracks a current file plus an offset it writes new records at
// and rotates when it fills; Buffer tracks a current tail segment plus the
// limit it writes new bytes at and allocates a new one when it fills. The
// difference is that Buffer keeps the whole chain in memory and reads back
// out of the head instead of flushing records to disk.
package buffer

import (
	"io"

	"github.com/iamNilotpal/octet/internal/segment"
	"github.com/iamNilotpal/octet/pkg/config"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// defaultPool backs every Buffer created with New, mirroring Okio's
// process-wide segment pool; tests and advanced callers that want
// isolation use NewWithPool.
var defaultPool = segment.NewPool(int(config.DefaultSegmentSize), int(config.DefaultPoolMaxSize))

// Buffer is an in-memory staging area that implements both the Source and
// Sink capability sets from spec §4.3 when used directly.
type Buffer struct {
	head *segment.Segment // nil when empty
	size int64
	pool *segment.Pool
}

// New returns an empty Buffer backed by the shared default segment pool.
func New() *Buffer {
	return &Buffer{pool: defaultPool}
}

// NewWithPool returns an empty Buffer backed by a caller-supplied segment
// pool, used when tests or embedders want a pool isolated from the shared
// default (e.g. to assert on its byte accounting without cross-test
// interference).
func NewWithPool(p *segment.Pool) *Buffer {
	return &Buffer{pool: p}
}

// Size returns the number of readable bytes currently buffered.
func (b *Buffer) Size() int64 { return b.size }

// IsEmpty reports whether the buffer holds no readable bytes.
func (b *Buffer) IsEmpty() bool { return b.size == 0 }

// Pool returns the segment pool backing this buffer.
func (b *Buffer) Pool() *segment.Pool { return b.pool }

// writableTail returns a tail segment with room for at least
// minimumCapacity more bytes, allocating a fresh page from the pool and
// linking it in if the current tail lacks that room, is absent, or is not
// owned by this buffer (e.g. because
// it is aliased by a shared copyTo snapshot).
func (b *Buffer) writableTail(minimumCapacity int) *segment.Segment {
	tail := b.tail()
	if tail == nil || !tail.Owner || tail.WritableBytes() < minimumCapacity {
		fresh := b.pool.Take()
		if tail == nil {
			fresh.Next = fresh
			fresh.Prev = fresh
			b.head = fresh
		} else {
			tail.Push(fresh)
		}
		return fresh
	}
	return tail
}

func (b *Buffer) tail() *segment.Segment {
	if b.head == nil {
		return nil
	}
	return b.head.Prev
}

// Write implements io.Writer: it appends all of p to the tail of the
// buffer and never returns an error.
func (b *Buffer) Write(p []byte) (int, error) {
	b.write(p)
	return len(p), nil
}

// write is the internal, error-free append used by every typed write
// operation: copy bytes into data[limit...], advancing limit and size, and
// push a new segment whenever the tail's remaining capacity runs out.
func (b *Buffer) write(p []byte) {
	for len(p) > 0 {
		tail := b.writableTail(1)
		n := copy(tail.Data[tail.Limit:], p)
		tail.Limit += n
		b.size += int64(n)
		p = p[n:]
	}
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	tail := b.writableTail(1)
	tail.Data[tail.Limit] = c
	tail.Limit++
	b.size++
	return nil
}

// WriteString appends the UTF-8 bytes of s.
func (b *Buffer) WriteString(s string) (int, error) {
	b.write([]byte(s))
	return len(s), nil
}

// Read implements io.Reader: it drains from the head segment(s) into p,
// returning io.EOF once the buffer is empty.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.size == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && b.size > 0 {
		head := b.head
		chunk := copy(p[n:], head.Data[head.Pos:head.Limit])
		head.Pos += chunk
		b.size -= int64(chunk)
		n += chunk
		if head.Pos == head.Limit {
			b.popHead()
		}
	}
	return n, nil
}

// popHead removes the exhausted head segment from the ring and returns it
// to the pool, leaving the buffer empty if it was the only segment.
func (b *Buffer) popHead() {
	old := b.head
	next := old.Pop()
	b.head = next
	if old.Owner {
		b.pool.Recycle(old)
	}
}

// ReadByte implements io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	if b.size == 0 {
		return 0, errors.NewEOFError("ReadByte: buffer is empty")
	}
	head := b.head
	c := head.Data[head.Pos]
	head.Pos++
	b.size--
	if head.Pos == head.Limit {
		b.popHead()
	}
	return c, nil
}

// ReadAll drains the entire buffer into a single contiguous slice.
func (b *Buffer) ReadAll() []byte {
	out := make([]byte, b.size)
	_, _ = b.Read(out)
	return out
}

// Skip discards byteCount bytes from the head of the buffer without
// copying them anywhere, failing EOF if the buffer runs out first.
func (b *Buffer) Skip(byteCount int64) error {
	if byteCount < 0 {
		return errors.NewInvalidArgumentError("byteCount", "must not be negative", byteCount)
	}
	for byteCount > 0 {
		if b.head == nil {
			return errors.NewEOFError("Skip: ran out of buffered bytes")
		}
		head := b.head
		available := int64(head.Limit - head.Pos)
		toSkip := byteCount
		if toSkip > available {
			toSkip = available
		}
		head.Pos += int(toSkip)
		b.size -= toSkip
		byteCount -= toSkip
		if head.Pos == head.Limit {
			b.popHead()
		}
	}
	return nil
}

// Clear discards all buffered bytes.
func (b *Buffer) Clear() error {
	return b.Skip(b.size)
}

// PeekByte returns the byte at logical offset i without consuming it.
func (b *Buffer) PeekByte(i int64) (byte, error) {
	if i < 0 || i >= b.size {
		return 0, errors.NewIndexOutOfBoundsError("i", int(i), int(b.size))
	}
	seg := b.head
	remaining := i
	for {
		segLen := int64(seg.Limit - seg.Pos)
		if remaining < segLen {
			return seg.Data[seg.Pos+int(remaining)], nil
		}
		remaining -= segLen
		seg = seg.Next
	}
}

// CopyTo produces shared segments pointing at this buffer's pages, without
// mutating the source, and appends them to dst. It is spec §4.1's
// copyTo: a deep-logical copy whose pages are aliased, not duplicated.
func (b *Buffer) CopyTo(dst *Buffer, offset, byteCount int64) error {
	if offset < 0 || byteCount < 0 || offset+byteCount > b.size {
		return errors.NewInvalidArgumentError("byteCount", "copy range out of bounds", [2]int64{offset, byteCount})
	}
	if byteCount == 0 {
		return nil
	}

	seg := b.head
	pos := int64(0)
	for pos+int64(seg.Len()) <= offset {
		pos += int64(seg.Len())
		seg = seg.Next
	}

	remaining := byteCount
	segOffset := offset - pos
	for remaining > 0 {
		copySeg := seg.SharedCopy()
		start := copySeg.Pos + int(segOffset)
		available := int64(copySeg.Limit - start)
		take := remaining
		if take > available {
			take = available
		}

		copySeg.Pos = start
		copySeg.Limit = start + int(take)
		dst.appendSegment(copySeg)

		remaining -= take
		segOffset = 0
		seg = seg.Next
	}
	dst.size += byteCount
	return nil
}

// appendSegment links an already-constructed segment onto the tail of the
// ring directly, used by CopyTo/Snapshot/write(source) to transplant pages
// in O(1) without going through the byte-copying write path.
func (b *Buffer) appendSegment(seg *segment.Segment) {
	tail := b.tail()
	if tail == nil {
		seg.Next = seg
		seg.Prev = seg
		b.head = seg
		return
	}
	tail.Push(seg)
}

// Copy returns a full logical duplicate of the buffer: identical bytes,
// shared pages.
func (b *Buffer) Copy() *Buffer {
	dup := &Buffer{pool: b.pool}
	if b.size > 0 {
		_ = b.CopyTo(dup, 0, b.size)
	}
	return dup
}
