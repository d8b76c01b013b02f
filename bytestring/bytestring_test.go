package bytestring

import "testing"

func TestFromStringRoundTrip(t *testing.T) {
	bs := FromString("hello")
	if bs.Size() != 5 || bs.Utf8() != "hello" {
		t.Fatalf("got size=%d utf8=%q", bs.Size(), bs.Utf8())
	}
}

func TestHexAndBase64(t *testing.T) {
	bs := Of([]byte("foobar"))
	if got := bs.Hex(); got != "666f6f626172" {
		t.Fatalf("Hex() = %q", got)
	}
	if got := bs.Base64(); got != "Zm9vYmFy" {
		t.Fatalf("Base64() = %q", got)
	}
}

func TestToAsciiCase(t *testing.T) {
	bs := FromString("Hello World")
	lower := bs.ToAsciiLowercase()
	if lower.Utf8() != "hello world" {
		t.Fatalf("ToAsciiLowercase = %q", lower.Utf8())
	}
	if already := lower.ToAsciiLowercase(); already != lower {
		t.Fatalf("ToAsciiLowercase on an already-lower string must return self")
	}
}

func TestSubstring(t *testing.T) {
	bs := FromString("hello world")
	sub := bs.Substring(6, -1)
	if sub.Utf8() != "world" {
		t.Fatalf("Substring(6,-1) = %q", sub.Utf8())
	}
	sub2 := bs.Substring(0, 5)
	if sub2.Utf8() != "hello" {
		t.Fatalf("Substring(0,5) = %q", sub2.Utf8())
	}
}

func TestStartsEndsWith(t *testing.T) {
	bs := FromString("hello world")
	if !bs.StartsWith([]byte("hello")) {
		t.Fatalf("expected StartsWith(hello)")
	}
	if !bs.EndsWith([]byte("world")) {
		t.Fatalf("expected EndsWith(world)")
	}
	if bs.StartsWith([]byte("world")) {
		t.Fatalf("did not expect StartsWith(world)")
	}
}

func TestIndexOfLastIndexOf(t *testing.T) {
	bs := FromString("abcabcabc")
	if got := bs.IndexOf([]byte("bc"), 0); got != 1 {
		t.Fatalf("IndexOf = %d, want 1", got)
	}
	if got := bs.IndexOf([]byte("bc"), 2); got != 4 {
		t.Fatalf("IndexOf from 2 = %d, want 4", got)
	}
	if got := bs.LastIndexOf([]byte("bc"), len(bs.Bytes())); got != 7 {
		t.Fatalf("LastIndexOf = %d, want 7", got)
	}
}

func TestRangeEquals(t *testing.T) {
	a := FromString("hello world")
	if !a.RangeEquals(6, []byte("xxworldxx"), 2, 5) {
		t.Fatalf("expected range match")
	}
	if a.RangeEquals(6, []byte("xxworldxx"), 2, 6) {
		t.Fatalf("did not expect range match past bounds")
	}
}

func TestCompareToAndEqual(t *testing.T) {
	a := FromString("abc")
	b := FromString("abd")
	c := FromString("abc")
	if a.CompareTo(b) >= 0 {
		t.Fatalf("expected abc < abd")
	}
	if !a.Equal(c) {
		t.Fatalf("expected abc == abc")
	}
	if a.HashCode() != c.HashCode() {
		t.Fatalf("expected equal hash codes for equal strings")
	}
}

func TestUnsignedOrdering(t *testing.T) {
	a := Of([]byte{0x00})
	b := Of([]byte{0xff})
	if a.CompareTo(b) >= 0 {
		t.Fatalf("expected 0x00 < 0xff under unsigned ordering")
	}
}

func TestToIndexMonotonic(t *testing.T) {
	a := Of([]byte{0x10, 0x00, 0x00, 0x00})
	b := Of([]byte{0x20, 0x00, 0x00, 0x00})
	if a.ToIndex(100) > b.ToIndex(100) {
		t.Fatalf("expected toIndex to preserve ordering")
	}
	if a.ToFraction() > b.ToFraction() {
		t.Fatalf("expected toFraction to preserve ordering")
	}
}

func TestStringTextForm(t *testing.T) {
	bs := FromString("hello")
	if got := bs.String(); got != "[text=hello]" {
		t.Fatalf("String() = %q, want [text=hello]", got)
	}
}

func TestStringHexFormForBinary(t *testing.T) {
	bs := Of([]byte{0x00, 0x01, 0x02, 0xff})
	got := bs.String()
	if got != "[hex=000102ff]" {
		t.Fatalf("String() = %q, want [hex=000102ff]", got)
	}
}
