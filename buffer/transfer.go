package buffer

import (
	"github.com/iamNilotpal/octet/internal/segment"
	"github.com/iamNilotpal/octet/pkg/config"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// WriteFrom moves byteCount bytes from the head of source to the tail of
// b, transplanting whole pages where possible instead of copying bytes.
// This is spec §4.1's zero-copy write(source, byteCount):
//
//  1. If byteCount is less than the source's head segment size and b has
//     an owner tail with room, copy the prefix directly into the tail.
//  2. Otherwise, if byteCount is less than the head segment's size, split
//     the head at byteCount and move the resulting prefix segment.
//  3. Otherwise, transplant whole head segments in O(1), then attempt to
//     compact the newly joined pair.
func (b *Buffer) WriteFrom(source *Buffer, byteCount int64) error {
	if source == b {
		return errors.NewInvalidArgumentError("source", "cannot write a buffer into itself", nil)
	}
	if byteCount < 0 || byteCount > source.size {
		return errors.NewInvalidArgumentError("byteCount", "exceeds source size", byteCount)
	}

	for byteCount > 0 {
		head := source.head
		headLen := int64(head.Len())

		switch {
		case byteCount < headLen && b.hasRoomFor(int(byteCount)):
			tail := b.writableTail(int(byteCount))
			copy(tail.Data[tail.Limit:], head.Data[head.Pos:head.Pos+int(byteCount)])
			tail.Limit += int(byteCount)
			head.Pos += int(byteCount)
			b.size += byteCount
			source.size -= byteCount
			byteCount = 0

		case byteCount < headLen:
			prefix := head.Split(int(byteCount), int(config.DefaultShareMinimum))
			prefix.Pop() // detach from source's ring before relinking onto b's
			source.size -= byteCount
			b.moveSegment(prefix)
			b.size += byteCount
			byteCount = 0

		default:
			source.head = head.Pop()
			moved := headLen
			source.size -= moved
			b.moveSegment(head)
			b.size += moved
			byteCount -= moved
		}
	}

	return nil
}

// hasRoomFor reports whether b's current tail is an owner with enough
// writable capacity to absorb n more bytes without allocating.
func (b *Buffer) hasRoomFor(n int) bool {
	tail := b.tail()
	return tail != nil && tail.Owner && tail.WritableBytes() >= n
}

// moveSegment appends a segment detached from another buffer's ring onto
// b's tail, then tries to coalesce it into the predecessor to avoid
// leaving a chain of small fragments behind after many small transfers.
func (b *Buffer) moveSegment(seg *segment.Segment) {
	b.appendSegment(seg)
	if seg.Prev != seg {
		seg.Compact(b.pool.SegmentSize())
	}
}

// Compact walks the buffer's segment ring once, coalescing any adjacent
// owner pair that fits in a single page and recycling the emptied
// segment. Exposed so BufferedSink.emitCompleteSegments and similar
// callers can defragment after a burst of small writes.
func (b *Buffer) Compact() {
	if b.head == nil {
		return
	}
	seg := b.head.Next
	for seg != b.head {
		next := seg.Next
		if seg.Compact(b.pool.SegmentSize()) {
			b.pool.Recycle(seg)
		}
		seg = next
	}
	// The head itself can only be compacted into its predecessor, which
	// would change b.head; skip it to keep the head pointer stable.
}
