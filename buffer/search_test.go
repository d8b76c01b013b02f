package buffer

import (
	"testing"

	"github.com/iamNilotpal/octet/bytestring"
)

func TestIndexOfByte(t *testing.T) {
	b := New()
	b.WriteString("hello world")
	if got := b.IndexOfByte('o', 0); got != 4 {
		t.Fatalf("IndexOfByte('o',0) = %d, want 4", got)
	}
	if got := b.IndexOfByte('o', 5); got != 7 {
		t.Fatalf("IndexOfByte('o',5) = %d, want 7", got)
	}
	if got := b.IndexOfByte('z', 0); got != -1 {
		t.Fatalf("IndexOfByte('z',0) = %d, want -1", got)
	}
}

func TestIndexOfElement(t *testing.T) {
	b := New()
	b.WriteString("hello, world")
	if got := b.IndexOfElement([]byte(",;"), 0); got != 5 {
		t.Fatalf("IndexOfElement = %d, want 5", got)
	}
}

func TestIndexOfByteString(t *testing.T) {
	b := New()
	b.WriteString("the quick brown fox")
	target := bytestring.FromString("brown")
	if got := b.IndexOfByteString(target, 0); got != 10 {
		t.Fatalf("IndexOfByteString = %d, want 10", got)
	}
	if got := b.IndexOfByteString(bytestring.FromString("missing"), 0); got != -1 {
		t.Fatalf("IndexOfByteString(missing) = %d, want -1", got)
	}
}
