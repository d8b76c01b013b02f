// Package segment implements the fixed-capacity pages that back every
// Buffer in octet, plus the process-wide pool that recycles them. It is the
// lowest layer in the module's dependency order: nothing here imports
// bytestring, buffer, or anything above it.
//
// The design is grounded in the teacher's internal/storage package: the
// same "a mutable resource is owned by exactly one of {this struct, a
// shared copy}, tracked by a flag" shape the teacher uses for its active
// segment file reappears here at the page level, just in memory instead of
// on disk.
package segment

// Segment is a fixed-capacity contiguous page of bytes plus the bookkeeping
// a Buffer needs to treat it as a ring-buffer node: pos is the first
// readable byte, limit is the first writable byte, and next/prev make it a
// member of a circular doubly-linked list within one Buffer.
//
// owner is true when this handle is allowed to advance limit (append to the
// page). shared is true when another Segment value aliases the same Data
// backing array; an owner that becomes shared must stop mutating bytes
// before pos, since a shared copy may be reading them concurrently with a
// different pos/limit view.
type Segment struct {
	Data   []byte
	Pos    int
	Limit  int
	Owner  bool
	Shared bool

	Next *Segment
	Prev *Segment
}

// newSegment allocates a fresh, empty, owning Segment with its own backing
// array. Only the pool calls this; everyone else calls pool.Take.
func newSegment(size int) *Segment {
	return &Segment{Data: make([]byte, size), Owner: true}
}

// SharedCopy returns a new Segment header that aliases this one's backing
// array (same Data slice, same Pos/Limit) and marks both the original and
// the copy as shared. The copy is never an owner, regardless of s's own
// Owner flag: two independent Segment structs aliasing the same backing
// array must never both be able to advance Limit and append into it, or
// whichever write happens last would silently overwrite the other's bytes
// in place. s itself keeps its existing Owner flag unchanged — only the
// new alias is forced read-only. Exported since buffer.CopyTo/Snapshot/
// write(source) need it to transplant pages across buffers without
// copying bytes.
func (s *Segment) SharedCopy() *Segment {
	s.Shared = true
	return &Segment{
		Data:   s.Data,
		Pos:    s.Pos,
		Limit:  s.Limit,
		Owner:  false,
		Shared: true,
	}
}

// UnsharedCopy returns a new Segment with its own private copy of this
// segment's readable bytes (Pos..Limit), used when a split falls below
// SHARE_MINIMUM and cheap aliasing isn't worth the contention it would add.
func (s *Segment) UnsharedCopy() *Segment {
	cp := make([]byte, len(s.Data))
	copy(cp, s.Data)
	return &Segment{Data: cp, Pos: s.Pos, Limit: s.Limit, Owner: true}
}

// Len returns the number of readable bytes currently in the segment.
func (s *Segment) Len() int { return s.Limit - s.Pos }

// WritableBytes returns how many more bytes can be appended before the
// page is full.
func (s *Segment) WritableBytes() int { return len(s.Data) - s.Limit }

// Push inserts newSeg immediately after s in the circular list and returns
// newSeg, mirroring the teacher's convention of returning the thing just
// constructed/inserted so call sites can chain.
func (s *Segment) Push(newSeg *Segment) *Segment {
	newSeg.Prev = s
	newSeg.Next = s.Next
	s.Next.Prev = newSeg
	s.Next = newSeg
	return newSeg
}

// Pop removes s from its circular list and returns the segment that was
// after it (the new head, if s was the head). If s was the only segment in
// the list, Pop returns nil.
func (s *Segment) Pop() *Segment {
	var result *Segment
	if s.Next != s {
		result = s.Next
	}
	s.Prev.Next = s.Next
	s.Next.Prev = s.Prev
	s.Next = nil
	s.Prev = nil
	return result
}

// Split divides s so that the first byteCount readable bytes end up in a
// new segment inserted before s, leaving the remainder in s. Per spec
// §4.1, the prefix is a cheap shared alias when byteCount is at least
// shareMinimum; otherwise it is privately copied, since aliasing a tiny
// slice isn't worth the extra indirection and contention on the shared
// flag.
func (s *Segment) Split(byteCount int, shareMinimum int) *Segment {
	if byteCount <= 0 || byteCount > s.Len() {
		panic("segment: split byteCount out of range")
	}

	var prefix *Segment
	if byteCount >= shareMinimum {
		prefix = s.SharedCopy()
	} else {
		prefix = s.UnsharedCopy()
	}

	prefix.Limit = prefix.Pos + byteCount
	s.Pos += byteCount

	s.Prev.Push(prefix)
	return prefix
}

// Compact attempts to coalesce a segment into its predecessor when both are
// owners and s's readable bytes fit in the space after the predecessor's
// Limit (space before the predecessor's Pos is not reclaimed). A shared
// predecessor can still absorb an append: Shared only forbids mutating
// bytes a copy has already observed, and appending past the current Limit
// never touches those. It returns true if it performed the coalesce (in
// which case s has been unlinked from the list and should be recycled by
// the caller).
func (s *Segment) Compact(pageSize int) bool {
	if s.Prev == s {
		return false
	}
	prev := s.Prev
	if !prev.Owner || !s.Owner {
		return false
	}

	byteCount := s.Len()
	if byteCount > pageSize-prev.Limit {
		return false
	}

	copy(prev.Data[prev.Limit:], s.Data[s.Pos:s.Limit])
	prev.Limit += byteCount
	s.Pop()
	return true
}
