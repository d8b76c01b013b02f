package buffer

import (
	"github.com/iamNilotpal/octet/bytestring"
	"github.com/iamNilotpal/octet/pkg/config"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// Snapshot freezes the leading byteCount bytes of the buffer into an
// immutable ByteString without copying them: each covered segment is
// marked shared and its page reference kept, not its bytes. Below the
// configured snapshot threshold a contiguous ByteString is cheaper to hand
// back (spec §9 open question, resolved in favor of a size cutover); at or
// above it, a SegmentedByteString walking the original pages is returned.
func (b *Buffer) Snapshot(byteCount int64) (bytestring.ByteString, error) {
	if byteCount < 0 || byteCount > b.size {
		return nil, errors.NewInvalidArgumentError("byteCount", "exceeds buffered size", byteCount)
	}
	if byteCount == 0 {
		return bytestring.Of(nil), nil
	}

	if byteCount < int64(config.DefaultSnapshotThreshold) {
		out := make([]byte, byteCount)
		seg := b.head
		pos := 0
		remaining := byteCount
		for remaining > 0 {
			chunk := int64(seg.Len())
			if chunk > remaining {
				chunk = remaining
			}
			copy(out[pos:], seg.Data[seg.Pos:seg.Pos+int(chunk)])
			pos += int(chunk)
			remaining -= chunk
			seg = seg.Next
		}
		return bytestring.Of(out), nil
	}

	var pages [][]byte
	var offsets []int
	var lengths []int

	seg := b.head
	remaining := byteCount
	for remaining > 0 {
		segLen := int64(seg.Len())
		take := segLen
		if take > remaining {
			take = remaining
		}

		shared := seg.SharedCopy()
		pages = append(pages, shared.Data)
		offsets = append(offsets, shared.Pos)
		lengths = append(lengths, int(take))

		remaining -= take
		seg = seg.Next
	}

	return bytestring.NewSegmented(pages, offsets, lengths), nil
}
