package bytestring

import (
	"sort"
	"sync"
)

// segmented is the directory-addressed ByteString produced by snapshotting
// a large buffer (spec §9: at or above the 4096-byte threshold). Each page
// is a shared alias into a buffer segment's backing array; nothing is
// copied until an operation genuinely needs contiguous bytes.
//
// directory holds 2*N ints: directory[0:N] are cumulative byte counts
// (directory[i] is the total size through page i inclusive), and
// directory[N:2N] are the starting offset within page i's backing array at
// which this byte string's view of that page begins.
type segmented struct {
	pages     [][]byte
	directory []int

	bytesOnce sync.Once
	bytesVal  []byte

	hashOnce sync.Once
	hashVal  int32
}

// NewSegmented builds a SegmentedByteString from a list of backing pages,
// the starting offset into each page where this view's bytes begin, and
// how many bytes of that page belong to the view. Pages are kept as-is
// (the way buffer.Snapshot aliases live segment backing arrays rather than
// copying them) — offsets/lengths let a view start mid-page or stop short
// of it without slicing the shared array itself.
func NewSegmented(pages [][]byte, offsets []int, lengths []int) ByteString {
	if len(pages) != len(offsets) || len(pages) != len(lengths) {
		panic("bytestring: pages, offsets and lengths length mismatch")
	}

	dir := make([]int, len(pages)*2)
	total := 0
	for i := range pages {
		total += lengths[i]
		dir[i] = total
		dir[len(pages)+i] = offsets[i]
	}

	return &segmented{pages: pages, directory: dir}
}

func (s *segmented) n() int { return len(s.pages) }

func (s *segmented) Size() int {
	if s.n() == 0 {
		return 0
	}
	return s.directory[s.n()-1]
}

// locate finds the page index containing logical offset o, and the offset
// within that page's backing slice, via binary search over the cumulative
// counts in the first half of the directory — the walk spec §4.2 calls
// for instead of materializing a contiguous copy.
func (s *segmented) locate(o int) (pageIndex, withinPage int) {
	n := s.n()
	i := sort.Search(n, func(i int) bool { return s.directory[i] > o })
	prevCumulative := 0
	if i > 0 {
		prevCumulative = s.directory[i-1]
	}
	withinSegment := o - prevCumulative
	return i, s.directory[n+i] + withinSegment
}

func (s *segmented) At(i int) byte {
	if i < 0 || i >= s.Size() {
		panic("bytestring: index out of range")
	}
	page, within := s.locate(i)
	return s.pages[page][within]
}

func (s *segmented) Bytes() []byte {
	s.bytesOnce.Do(func() {
		out := make([]byte, 0, s.Size())
		n := s.n()
		for i := 0; i < n; i++ {
			start := s.directory[n+i]
			cumulative := s.directory[i]
			prevCumulative := 0
			if i > 0 {
				prevCumulative = s.directory[i-1]
			}
			length := cumulative - prevCumulative
			out = append(out, s.pages[i][start:start+length]...)
		}
		s.bytesVal = out
	})
	cp := make([]byte, len(s.bytesVal))
	copy(cp, s.bytesVal)
	return cp
}

func (s *segmented) Utf8() string      { return string(s.Bytes()) }
func (s *segmented) Hex() string       { return Of(s.Bytes()).Hex() }
func (s *segmented) Base64() string    { return Of(s.Bytes()).Base64() }
func (s *segmented) Base64Url() string { return Of(s.Bytes()).Base64Url() }

func (s *segmented) ToAsciiLowercase() ByteString { return mapAsciiCase(s, false) }
func (s *segmented) ToAsciiUppercase() ByteString { return mapAsciiCase(s, true) }

func (s *segmented) Substring(begin, end int) ByteString {
	begin, end = normalizeRange(s.Size(), begin, end)
	return Of(s.Bytes()[begin:end])
}

func (s *segmented) StartsWith(prefix []byte) bool { return startsWith(s.Bytes(), prefix) }
func (s *segmented) StartsWithByteString(prefix ByteString) bool {
	return startsWith(s.Bytes(), prefix.Bytes())
}
func (s *segmented) EndsWith(suffix []byte) bool { return endsWith(s.Bytes(), suffix) }
func (s *segmented) EndsWithByteString(suffix ByteString) bool {
	return endsWith(s.Bytes(), suffix.Bytes())
}

func (s *segmented) IndexOf(target []byte, fromIndex int) int {
	return indexOf(s.Bytes(), target, fromIndex)
}
func (s *segmented) LastIndexOf(target []byte, fromIndex int) int {
	return lastIndexOf(s.Bytes(), target, fromIndex)
}

// RangeEquals walks the directory page by page instead of materializing,
// so a mismatch on the first page never pays to copy the rest — the other
// operation spec §4.2 singles out as directory-driven.
func (s *segmented) RangeEquals(offset int, other []byte, otherOffset, byteCount int) bool {
	if offset < 0 || offset+byteCount > s.Size() {
		return false
	}
	if otherOffset < 0 || otherOffset+byteCount > len(other) {
		return false
	}

	remaining := byteCount
	pos := offset
	otherPos := otherOffset
	for remaining > 0 {
		page, within := s.locate(pos)
		pageEnd := s.directory[s.n()+page] + (pageLen(s, page))
		avail := pageEnd - within
		chunk := remaining
		if chunk > avail {
			chunk = avail
		}
		for i := 0; i < chunk; i++ {
			if s.pages[page][within+i] != other[otherPos+i] {
				return false
			}
		}
		remaining -= chunk
		pos += chunk
		otherPos += chunk
	}
	return true
}

func pageLen(s *segmented, page int) int {
	cumulative := s.directory[page]
	prev := 0
	if page > 0 {
		prev = s.directory[page-1]
	}
	return cumulative - prev
}

func (s *segmented) CompareTo(other ByteString) int { return compareUnsigned(s.Bytes(), other.Bytes()) }
func (s *segmented) Equal(other ByteString) bool {
	return other != nil && other.Size() == s.Size() && s.CompareTo(other) == 0
}

func (s *segmented) HashCode() int32 {
	s.hashOnce.Do(func() { s.hashVal = hashCode(s.Bytes()) })
	return s.hashVal
}

func (s *segmented) String() string { return describe(s.Bytes()) }

func (s *segmented) ToIndex(n int) int   { return toIndex(s.Bytes(), n) }
func (s *segmented) ToFraction() float64 { return toFraction(s.Bytes()) }
