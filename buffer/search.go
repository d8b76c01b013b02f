package buffer

import "github.com/iamNilotpal/octet/bytestring"

// IndexOfByte returns the first offset at or after fromIndex holding b, or
// -1. The scan is two-level per spec §4.1: byte-wise within each segment,
// following next across segment boundaries.
func (buf *Buffer) IndexOfByte(b byte, fromIndex int64) int64 {
	if fromIndex < 0 {
		fromIndex = 0
	}
	if fromIndex >= buf.size {
		return -1
	}

	seg := buf.head
	offset := int64(0)
	for offset+int64(seg.Len()) <= fromIndex {
		offset += int64(seg.Len())
		seg = seg.Next
	}

	skip := int(fromIndex - offset)
	for {
		data := seg.Data[seg.Pos+skip : seg.Limit]
		for i, c := range data {
			if c == b {
				return offset + int64(skip+i)
			}
		}
		offset += int64(seg.Len())
		skip = 0
		if offset >= buf.size {
			return -1
		}
		seg = seg.Next
	}
}

// IndexOfElement returns the first offset at or after fromIndex holding
// any byte present in targetBytes. The two-byte case (the common
// tokenizer delimiter set) is the one spec §4.1 calls out as worth a
// specialized loop, but a 256-entry membership table serves any set size
// at the same cost.
func (buf *Buffer) IndexOfElement(targetBytes []byte, fromIndex int64) int64 {
	var present [256]bool
	for _, c := range targetBytes {
		present[c] = true
	}

	if fromIndex < 0 {
		fromIndex = 0
	}
	if fromIndex >= buf.size {
		return -1
	}

	seg := buf.head
	offset := int64(0)
	for offset+int64(seg.Len()) <= fromIndex {
		offset += int64(seg.Len())
		seg = seg.Next
	}

	skip := int(fromIndex - offset)
	for {
		data := seg.Data[seg.Pos+skip : seg.Limit]
		for i, c := range data {
			if present[c] {
				return offset + int64(skip+i)
			}
		}
		offset += int64(seg.Len())
		skip = 0
		if offset >= buf.size {
			return -1
		}
		seg = seg.Next
	}
}

// IndexOfByteString returns the first offset at or after fromIndex where
// target occurs as a contiguous run, or -1. It materializes target's
// bytes once and then checks each candidate starting offset with a
// segment-crossing byte comparison rather than building a contiguous copy
// of the whole buffer.
func (buf *Buffer) IndexOfByteString(target bytestring.ByteString, fromIndex int64) int64 {
	n := int64(target.Size())
	if n == 0 {
		if fromIndex < 0 {
			fromIndex = 0
		}
		if fromIndex > buf.size {
			return -1
		}
		return fromIndex
	}

	first := target.At(0)
	for candidate := buf.IndexOfByte(first, fromIndex); candidate != -1 && candidate+n <= buf.size; candidate = buf.IndexOfByte(first, candidate+1) {
		if buf.rangeEqualsByteString(candidate, target) {
			return candidate
		}
	}
	return -1
}

func (buf *Buffer) rangeEqualsByteString(offset int64, target bytestring.ByteString) bool {
	n := target.Size()
	for i := 0; i < n; i++ {
		b, err := buf.PeekByte(offset + int64(i))
		if err != nil || b != target.At(i) {
			return false
		}
	}
	return true
}
