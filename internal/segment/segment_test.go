package segment

import "testing"

func ring(n, size int) *Segment {
	head := newSegment(size)
	head.Next = head
	head.Prev = head
	for i := 1; i < n; i++ {
		seg := newSegment(size)
		head.Prev.Push(seg)
	}
	return head
}

func TestPushPop(t *testing.T) {
	head := ring(1, 8192)
	second := newSegment(8192)
	head.Push(second)

	if head.Next != second || second.Prev != head {
		t.Fatalf("push did not link correctly")
	}
	if second.Next != head || head.Prev != second {
		t.Fatalf("push did not close the ring")
	}

	newHead := head.Pop()
	if newHead != second {
		t.Fatalf("pop should return the next segment, got %v", newHead)
	}
	if second.Next != second || second.Prev != second {
		t.Fatalf("pop should leave a singleton ring")
	}
}

func TestPopSingletonReturnsNil(t *testing.T) {
	head := ring(1, 8192)
	if got := head.Pop(); got != nil {
		t.Fatalf("popping the only segment should return nil, got %v", got)
	}
}

func TestSplitShared(t *testing.T) {
	head := ring(1, 8192)
	copy(head.Data, []byte("hello world"))
	head.Limit = 11

	prefix := head.Split(5, 1024)
	if string(prefix.Data[prefix.Pos:prefix.Limit]) != "hello" {
		t.Fatalf("prefix = %q, want hello", prefix.Data[prefix.Pos:prefix.Limit])
	}
	if string(head.Data[head.Pos:head.Limit]) != " world" {
		t.Fatalf("suffix = %q, want ' world'", head.Data[head.Pos:head.Limit])
	}
	if !prefix.Shared || !head.Shared {
		t.Fatalf("split above SHARE_MINIMUM should mark both halves shared")
	}
	if &prefix.Data[0] != &head.Data[0] {
		t.Fatalf("shared split should alias the same backing array")
	}
}

func TestSharedCopyIsNeverOwner(t *testing.T) {
	head := ring(1, 8192)
	head.Limit = 4
	head.Owner = true

	dup := head.SharedCopy()
	if dup.Owner {
		t.Fatalf("a shared alias must never be an owner, even when the original is")
	}
	if !head.Owner {
		t.Fatalf("taking a shared copy must not clear the original's own Owner flag")
	}
}

func TestSplitPrefixIsNeverOwner(t *testing.T) {
	head := ring(1, 8192)
	copy(head.Data, []byte("hello world"))
	head.Limit = 11
	head.Owner = true

	prefix := head.Split(5, 4)
	if prefix.Owner {
		t.Fatalf("a split-off shared prefix must not be an owner: two owners aliasing the same page can corrupt each other's writes")
	}
}

func TestSplitUnshared(t *testing.T) {
	head := ring(1, 8192)
	copy(head.Data, []byte("hi"))
	head.Limit = 2

	prefix := head.Split(1, 1024)
	if prefix.Shared {
		t.Fatalf("split below SHARE_MINIMUM must not be shared")
	}
	if &prefix.Data[0] == &head.Data[0] {
		t.Fatalf("unshared split must copy, not alias")
	}
}

func TestCompactCoalescesIntoPredecessor(t *testing.T) {
	head := ring(1, 8192)
	copy(head.Data, []byte("abc"))
	head.Limit = 3

	tail := newSegment(8192)
	copy(tail.Data, []byte("def"))
	tail.Limit = 3
	head.Push(tail)

	ok := tail.Compact(8192)
	if !ok {
		t.Fatalf("expected compact to coalesce")
	}
	if string(head.Data[head.Pos:head.Limit]) != "abcdef" {
		t.Fatalf("head = %q, want abcdef", head.Data[head.Pos:head.Limit])
	}
	if head.Next != head {
		t.Fatalf("tail should have been unlinked")
	}
}

func TestCompactRefusesWhenTooLarge(t *testing.T) {
	head := ring(1, 8)
	head.Limit = 6

	tail := newSegment(8)
	tail.Limit = 4
	head.Push(tail)

	if tail.Compact(8) {
		t.Fatalf("compact should refuse when combined bytes exceed one page")
	}
}

func TestCompactRefusesWhenNotOwner(t *testing.T) {
	head := ring(1, 8192)
	head.Limit = 3
	head.Owner = false

	tail := newSegment(8192)
	tail.Limit = 3
	head.Push(tail)

	if tail.Compact(8192) {
		t.Fatalf("compact should refuse against a non-owner predecessor")
	}
}
