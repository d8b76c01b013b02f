package bytestring

import "testing"

func buildSegmented(t *testing.T, parts ...string) ByteString {
	t.Helper()
	pages := make([][]byte, len(parts))
	offsets := make([]int, len(parts))
	lengths := make([]int, len(parts))
	for i, p := range parts {
		pages[i] = []byte(p)
		offsets[i] = 0
		lengths[i] = len(p)
	}
	return NewSegmented(pages, offsets, lengths)
}

func TestSegmentedSize(t *testing.T) {
	bs := buildSegmented(t, "hello", " ", "world")
	if bs.Size() != 11 {
		t.Fatalf("Size() = %d, want 11", bs.Size())
	}
}

func TestSegmentedAtWalksDirectory(t *testing.T) {
	bs := buildSegmented(t, "abc", "def", "ghi")
	for i, want := range []byte("abcdefghi") {
		if got := bs.At(i); got != want {
			t.Fatalf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestSegmentedBytesConcatenates(t *testing.T) {
	bs := buildSegmented(t, "foo", "bar")
	if got := string(bs.Bytes()); got != "foobar" {
		t.Fatalf("Bytes() = %q, want foobar", got)
	}
}

func TestSegmentedRangeEqualsAcrossPages(t *testing.T) {
	bs := buildSegmented(t, "abc", "def", "ghi")
	if !bs.RangeEquals(1, []byte("bcdefg"), 0, 6) {
		t.Fatalf("expected range spanning three pages to match")
	}
	if bs.RangeEquals(1, []byte("xxxxxx"), 0, 6) {
		t.Fatalf("did not expect mismatched range to match")
	}
}

func TestSegmentedEqualsSimple(t *testing.T) {
	seg := buildSegmented(t, "foo", "bar")
	flat := FromString("foobar")
	if !seg.Equal(flat) {
		t.Fatalf("expected segmented and simple byte strings to compare equal")
	}
	if seg.HashCode() != flat.HashCode() {
		t.Fatalf("expected matching hash codes")
	}
}

func TestSegmentedOffsetIntoSharedPage(t *testing.T) {
	shared := []byte("xxxhelloyyy")
	bs := NewSegmented([][]byte{shared}, []int{3}, []int{5}) // view is "hello" within the shared page
	if bs.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", bs.Size())
	}
	if string(bs.Bytes()) != "hello" {
		t.Fatalf("Bytes() = %q, want hello", bs.Bytes())
	}
}
