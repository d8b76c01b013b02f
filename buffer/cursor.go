package buffer

import (
	"github.com/iamNilotpal/octet/internal/segment"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// UnsafeCursor exposes the raw (Data, Start, End) of each segment in a
// buffer to privileged zero-copy readers and writers, per spec §4.1. A
// cursor is invalid until Next or Seek has been called at least once, and
// must be closed before the owning buffer is used again from elsewhere.
type UnsafeCursor struct {
	buffer    *Buffer
	readWrite bool

	seg    *segment.Segment
	offset int64 // logical offset of seg.Pos within the buffer

	// Data, Start and End describe the window of seg currently exposed:
	// Data[Start:End] is readable (and, in read-write mode, writable).
	Data  []byte
	Start int
	End   int
}

// ReadUnsafeCursor returns a cursor over b valid for reading only.
func (b *Buffer) ReadUnsafeCursor() *UnsafeCursor {
	return &UnsafeCursor{buffer: b}
}

// ReadWriteUnsafeCursor returns a cursor over b valid for reading and
// in-place mutation of already-written bytes.
func (b *Buffer) ReadWriteUnsafeCursor() *UnsafeCursor {
	return &UnsafeCursor{buffer: b, readWrite: true}
}

// Next advances the cursor to the next segment (or the first, if the
// cursor has not yet been positioned) and returns the number of bytes
// exposed, or -1 once the end of the buffer has been reached.
func (c *UnsafeCursor) Next() int {
	if c.seg == nil {
		if c.buffer.head == nil {
			return -1
		}
		c.seg = c.buffer.head
		c.offset = 0
	} else {
		c.offset += int64(c.seg.Len())
		c.seg = c.seg.Next
		if c.seg == c.buffer.head {
			c.seg = nil
			c.Data, c.Start, c.End = nil, 0, 0
			return -1
		}
	}

	c.Data = c.seg.Data
	c.Start = c.seg.Pos
	c.End = c.seg.Limit
	return c.End - c.Start
}

// Seek positions the cursor over the segment containing logical offset,
// searching forward or backward from wherever the cursor currently sits,
// whichever is closer, and returns the offset within that segment.
func (c *UnsafeCursor) Seek(offset int64) (int, error) {
	if offset < 0 || offset > c.buffer.size {
		return 0, errors.NewIndexOutOfBoundsError("offset", int(offset), int(c.buffer.size))
	}
	if c.buffer.head == nil {
		return 0, errors.NewIndexOutOfBoundsError("offset", int(offset), 0)
	}

	if c.seg == nil {
		c.seg = c.buffer.head
		c.offset = 0
	}

	for c.offset > offset {
		c.seg = c.seg.Prev
		c.offset -= int64(c.seg.Len())
	}
	for c.offset+int64(c.seg.Len()) <= offset && c.offset+int64(c.seg.Len()) < c.buffer.size {
		c.offset += int64(c.seg.Len())
		c.seg = c.seg.Next
	}

	c.Data = c.seg.Data
	c.Start = c.seg.Pos
	c.End = c.seg.Limit
	return int(offset - c.offset), nil
}

// ResizeBuffer grows or shrinks the buffer by adding or removing segment
// capacity at the tail, returning the previous size. Callers must
// overwrite any newly exposed capacity themselves; no zero-fill is
// performed, matching spec §4.1's contract.
func (c *UnsafeCursor) ResizeBuffer(newSize int64) (int64, error) {
	if !c.readWrite {
		return 0, errors.NewInvalidArgumentError("cursor", "resize requires a read-write cursor", nil)
	}
	if newSize < 0 {
		return 0, errors.NewInvalidArgumentError("newSize", "must not be negative", newSize)
	}

	oldSize := c.buffer.size
	switch {
	case newSize > oldSize:
		for c.buffer.size < newSize {
			c.ExpandBuffer(int(newSize - c.buffer.size))
		}
	case newSize < oldSize:
		if err := c.shrinkTo(newSize); err != nil {
			return 0, err
		}
	}

	c.seg = nil
	c.Data, c.Start, c.End = nil, 0, 0
	return oldSize, nil
}

func (c *UnsafeCursor) shrinkTo(newSize int64) error {
	drop := c.buffer.size - newSize
	return c.buffer.dropFromTail(drop)
}

// dropFromTail discards byteCount bytes from the tail of the buffer,
// walking backward segment by segment — the mirror image of Skip, which
// discards from the head.
func (b *Buffer) dropFromTail(byteCount int64) error {
	for byteCount > 0 {
		tail := b.tail()
		if tail == nil {
			return errors.NewEOFError("dropFromTail: ran out of buffered bytes")
		}
		available := int64(tail.Len())
		take := byteCount
		if take > available {
			take = available
		}
		tail.Limit -= int(take)
		b.size -= take
		byteCount -= take
		if tail.Len() == 0 {
			b.popTail()
		}
	}
	return nil
}

func (b *Buffer) popTail() {
	old := b.tail()
	if old.Next == old {
		b.head = nil
	} else if old == b.head {
		b.head = old.Next
	}
	old.Pop()
	if old.Owner {
		b.pool.Recycle(old)
	}
}

// ExpandBuffer grows the buffer by at least minByteCount bytes of fresh,
// uninitialized tail capacity and positions the cursor over the first
// newly added segment, returning how many bytes were actually added to
// that segment.
func (c *UnsafeCursor) ExpandBuffer(minByteCount int) int {
	tail := c.buffer.writableTail(minByteCount)
	added := tail.WritableBytes()
	if added > minByteCount {
		added = minByteCount
	}

	tail.Limit += added
	c.buffer.size += int64(added)

	c.seg = tail
	c.offset = c.buffer.size - int64(tail.Len())
	c.Data = tail.Data
	c.Start = tail.Limit - added
	c.End = tail.Limit
	return added
}

// Close invalidates the cursor. Per spec §4.3, peek/cursor validity is
// tied to the owning buffer not being mutated elsewhere in the meantime;
// Close just drops the cursor's own references so it cannot be reused.
func (c *UnsafeCursor) Close() error {
	c.buffer = nil
	c.seg = nil
	c.Data, c.Start, c.End = nil, 0, 0
	return nil
}
