package vpath

import "testing"

func TestParseUnixAbsolute(t *testing.T) {
	p, err := Parse("/home/jesse")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !p.IsAbsolute() {
		t.Fatal("expected absolute path")
	}
	if got := p.String(); got != "/home/jesse" {
		t.Fatalf("String() = %q, want /home/jesse", got)
	}
	if got := p.Name(); got != "jesse" {
		t.Fatalf("Name() = %q, want jesse", got)
	}
}

func TestResolveWithoutNormalize(t *testing.T) {
	base, err := Parse("/home/jesse")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	joined, err := base.Div("../ada")
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if got := joined.String(); got != "/home/jesse/../ada" {
		t.Fatalf("Div() = %q, want /home/jesse/../ada", got)
	}
}

func TestResolveWithNormalize(t *testing.T) {
	base, err := Parse("/home/jesse")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	joined, err := base.Resolve("../ada", true)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got := joined.String(); got != "/home/ada" {
		t.Fatalf("Resolve(normalize=true) = %q, want /home/ada", got)
	}
}

func TestDotDotBeyondAbsoluteRootDropped(t *testing.T) {
	p, err := Parse("/../../etc")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := p.String(); got != "/etc" {
		t.Fatalf("String() = %q, want /etc", got)
	}
}

func TestDotDotBeyondRelativeRootRetained(t *testing.T) {
	p, err := Parse("../../etc")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := p.String(); got != "../../etc" {
		t.Fatalf("String() = %q, want ../../etc", got)
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	inputs := []string{"/a/./b/../c", "a/b/../../c", "/../x", "C:\\a\\..\\b"}
	for _, in := range inputs {
		p1, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		p2, err := Parse(p1.String())
		if err != nil {
			t.Fatalf("Parse(%q) (second pass) error: %v", p1.String(), err)
		}
		if p1.String() != p2.String() {
			t.Fatalf("normalization not idempotent: %q -> %q -> %q", in, p1.String(), p2.String())
		}
	}
}

func TestWindowsVolumeAbsolute(t *testing.T) {
	p, err := Parse("C:\\Users\\jesse")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !p.IsAbsolute() {
		t.Fatal("expected absolute path")
	}
	if p.VolumeLetter() != 'C' {
		t.Fatalf("VolumeLetter() = %q, want C", p.VolumeLetter())
	}
	if got := p.String(); got != "C:\\Users\\jesse" {
		t.Fatalf("String() = %q, want C:\\Users\\jesse", got)
	}
}

func TestWindowsVolumeRelative(t *testing.T) {
	p, err := Parse("C:Users\\jesse")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.IsAbsolute() {
		t.Fatal("expected volume-relative (not absolute) path")
	}
	if got := p.Name(); got != "jesse" {
		t.Fatalf("Name() = %q, want jesse", got)
	}
}

func TestUNCRoot(t *testing.T) {
	p, err := Parse("\\\\host\\share\\file.txt")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !p.IsAbsolute() {
		t.Fatal("expected absolute UNC path")
	}
	if got := p.Root(); got != "\\\\host\\" {
		t.Fatalf("Root() = %q, want \\\\host\\", got)
	}
}

func TestBareRootParentIsNil(t *testing.T) {
	p, err := Parse("/")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.Parent() != nil {
		t.Fatal("expected nil parent for /")
	}
	if !p.IsRoot() {
		t.Fatal("expected / to report IsRoot")
	}
}

func TestDotIdentityPath(t *testing.T) {
	p, err := Parse(".")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := p.String(); got != "." {
		t.Fatalf("String() = %q, want .", got)
	}
	if p.IsAbsolute() {
		t.Fatal("'.' must not be absolute")
	}
}

func TestParentDivNameRoundTrip(t *testing.T) {
	p, err := Parse("/home/jesse/notes.txt")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	parent := p.Parent()
	if parent == nil {
		t.Fatal("expected non-nil parent")
	}
	rejoined, err := parent.Div(p.Name())
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if rejoined.String() != p.String() {
		t.Fatalf("(parent / name) = %q, want %q", rejoined.String(), p.String())
	}
}

func TestRelativeTo(t *testing.T) {
	a, err := Parse("/a/b/c")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	b, err := Parse("/a/x/y")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	rel, err := a.RelativeTo(b)
	if err != nil {
		t.Fatalf("RelativeTo error: %v", err)
	}
	if got := rel.String(); got != "../../b/c" {
		t.Fatalf("RelativeTo() = %q, want ../../b/c", got)
	}
}

func TestRelativeToRequiresSameRoot(t *testing.T) {
	a, err := Parse("/a/b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	b, err := Parse("a/b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := a.RelativeTo(b); err == nil {
		t.Fatal("expected error for mismatched roots")
	}
}
