package buffer

import (
	"testing"

	"github.com/iamNilotpal/octet/internal/segment"
)

func TestWriteFromSmallCopy(t *testing.T) {
	src := New()
	src.WriteString("hello world")
	dst := New()
	dst.WriteString("prefix:")

	if err := dst.WriteFrom(src, 5); err != nil {
		t.Fatalf("WriteFrom error: %v", err)
	}
	if dst.ReadUtf8All() != "prefix:hello" {
		t.Fatalf("dst content wrong")
	}
	if src.ReadUtf8All() != " world" {
		t.Fatalf("src remainder wrong")
	}
}

func TestWriteFromTransplantsWholeSegments(t *testing.T) {
	pool := segment.NewPool(8192, 64*1024)
	src := NewWithPool(pool)
	payload := make([]byte, 8192*2)
	for i := range payload {
		payload[i] = byte(i)
	}
	src.Write(payload)

	dst := NewWithPool(pool)
	if err := dst.WriteFrom(src, int64(len(payload))); err != nil {
		t.Fatalf("WriteFrom error: %v", err)
	}
	if dst.Size() != int64(len(payload)) {
		t.Fatalf("dst size = %d, want %d", dst.Size(), len(payload))
	}
	if src.Size() != 0 {
		t.Fatalf("src should be drained, size = %d", src.Size())
	}
	got := dst.ReadAll()
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("mismatch at %d", i)
		}
	}
}

func TestCompactCoalescesSmallFragments(t *testing.T) {
	pool := segment.NewPool(8192, 64*1024)
	b := NewWithPool(pool)
	b.WriteString("a")
	src := NewWithPool(pool)
	src.WriteString("b")
	if err := b.WriteFrom(src, 1); err != nil {
		t.Fatalf("WriteFrom error: %v", err)
	}
	b.Compact()
	if b.ReadUtf8All() != "ab" {
		t.Fatalf("content wrong after compact")
	}
}
