package segment

import "testing"

func TestTakeAllocatesWhenEmpty(t *testing.T) {
	p := NewPool(8192, 64*1024)
	seg := p.Take()
	if len(seg.Data) != 8192 || seg.Pos != 0 || seg.Limit != 0 || !seg.Owner || seg.Shared {
		t.Fatalf("unexpected fresh segment: %+v", seg)
	}
}

func TestRecycleThenTakeReusesPage(t *testing.T) {
	p := NewPool(8192, 64*1024)
	seg := p.Take()
	data := seg.Data
	p.Recycle(seg)

	reused := p.Take()
	if &reused.Data[0] != &data[0] {
		t.Fatalf("expected Take to return the recycled page")
	}
	if reused.Pos != 0 || reused.Limit != 0 {
		t.Fatalf("recycled segment must reset pos/limit")
	}
}

func TestRecycleDropsSharedSegments(t *testing.T) {
	p := NewPool(8192, 64*1024)
	seg := p.Take()
	seg.Shared = true
	p.Recycle(seg)

	if p.byteCount != 0 {
		t.Fatalf("shared segment should not be pooled")
	}
}

func TestRecycleDropsNonOwnerSegments(t *testing.T) {
	p := NewPool(8192, 64*1024)
	seg := p.Take()
	seg.Owner = false
	p.Recycle(seg)

	if p.byteCount != 0 {
		t.Fatalf("non-owner segment should not be pooled")
	}
}

func TestRecycleRespectsMaxSize(t *testing.T) {
	p := NewPool(8192, 8192) // room for exactly one segment
	first := p.Take()
	second := p.Take()

	p.Recycle(first)
	p.Recycle(second) // pool is already full; this should be dropped silently

	if p.byteCount != 8192 {
		t.Fatalf("byteCount = %d, want 8192", p.byteCount)
	}
}
