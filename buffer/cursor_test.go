package buffer

import (
	"testing"

	"github.com/iamNilotpal/octet/internal/segment"
)

func TestReadCursorWalksSegments(t *testing.T) {
	pool := segment.NewPool(8, 64*1024) // tiny pages to force multiple segments
	b := NewWithPool(pool)
	b.Write([]byte("0123456789abcdef"))

	cur := b.ReadUnsafeCursor()
	defer cur.Close()

	total := 0
	for {
		n := cur.Next()
		if n == -1 {
			break
		}
		total += n
	}
	if total != 16 {
		t.Fatalf("cursor walked %d bytes, want 16", total)
	}
}

func TestCursorSeek(t *testing.T) {
	pool := segment.NewPool(8, 64*1024)
	b := NewWithPool(pool)
	b.Write([]byte("0123456789abcdef"))

	cur := b.ReadUnsafeCursor()
	defer cur.Close()

	within, err := cur.Seek(10)
	if err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	if cur.Data[cur.Start+within] != 'a' {
		t.Fatalf("Seek(10) landed on %q, want 'a'", cur.Data[cur.Start+within])
	}
}

func TestExpandBufferGrowsTail(t *testing.T) {
	b := New()
	b.WriteString("abc")

	cur := b.ReadWriteUnsafeCursor()
	added := cur.ExpandBuffer(10)
	if added < 10 {
		t.Fatalf("ExpandBuffer added %d, want at least 10", added)
	}
	for i := cur.Start; i < cur.End; i++ {
		cur.Data[i] = 'x'
	}
	cur.Close()

	if b.Size() != int64(3+added) {
		t.Fatalf("Size() = %d, want %d", b.Size(), 3+added)
	}
}

func TestResizeBufferShrinks(t *testing.T) {
	b := New()
	b.WriteString("hello world")
	cur := b.ReadWriteUnsafeCursor()
	old, err := cur.ResizeBuffer(5)
	if err != nil {
		t.Fatalf("ResizeBuffer error: %v", err)
	}
	if old != 11 {
		t.Fatalf("ResizeBuffer returned old size %d, want 11", old)
	}
	cur.Close()
	if b.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", b.Size())
	}
	if b.ReadUtf8All() != "hello" {
		t.Fatalf("content wrong after shrink")
	}
}
