// Package vpath implements the hierarchical Path type from spec §4.7: an
// immutable, byte-string-backed identifier whose separator is detected
// from the input rather than fixed to the host platform, so a UNIX path
// and a Windows path can coexist in the same process (e.g. a cross-platform
// archive reader).
//
// Grounded on the teacher's internal/index key-parsing conventions (split
// on a delimiter, validate each component, rebuild a canonical form) and
// on the avogabo-EDRmount fusefs package's use of filepath.Separator-driven
// splitting/joining for a virtual, in-memory directory tree — the closest
// analogue in the pack to a library-owned path model instead of direct
// os.PathSeparator use.
package vpath

import (
	"runtime"
	"strings"

	"github.com/iamNilotpal/octet/pkg/errors"
)

// Slash identifies which separator byte a Path uses.
type Slash byte

const (
	// Unknown means no separator has been chosen yet (only valid as a
	// transient parse state).
	Unknown Slash = 0
	// ForwardSlash is '/'.
	ForwardSlash Slash = '/'
	// Backslash is '\\'.
	Backslash Slash = '\\'
)

// platformDefault returns the separator used when the input contains no
// separator character to detect from, per spec §4.7.
func platformDefault() Slash {
	if runtime.GOOS == "windows" {
		return Backslash
	}
	return ForwardSlash
}

// rootKind distinguishes the three root shapes spec §4.7 describes.
type rootKind int

const (
	rootNone rootKind = iota
	rootUnix
	rootWindowsAbsolute // X:\ (a bare leading separator is rootUnix)
	rootUNC
)

// Path is an immutable hierarchical identifier: an optional root, zero or
// more non-empty segments, and an optional volume letter, serialized to a
// single canonical byte sequence.
type Path struct {
	slash   Slash
	root    rootKind
	volume  byte // 'A'-'Z' (stored uppercase), or 0 if none
	uncHost string
	segs    []string
	// canonical is the fully serialized string form, computed once at
	// construction.
	canonical string
}

// Separator returns the byte this path uses to join segments.
func (p *Path) Separator() byte { return byte(p.slash) }

// String returns the canonical serialized form.
func (p *Path) String() string { return p.canonical }

// IsAbsolute reports whether the path carries a root (spec §4.7).
func (p *Path) IsAbsolute() bool { return p.root != rootNone }

// Root returns the root prefix of the path (e.g. "/", "C:\\", "\\\\host\\"),
// or "" if the path is relative.
func (p *Path) Root() string {
	switch p.root {
	case rootUnix:
		return string(p.slash)
	case rootWindowsAbsolute:
		if p.volume != 0 {
			return string(p.volume) + ":" + string(p.slash)
		}
		return string(p.slash)
	case rootUNC:
		return string(p.slash) + string(p.slash) + p.uncHost + string(p.slash)
	default:
		if p.volume != 0 {
			return string(p.volume) + ":"
		}
		return ""
	}
}

// Segments returns the path's segments in order, excluding the root.
func (p *Path) Segments() []string {
	out := make([]string, len(p.segs))
	copy(out, p.segs)
	return out
}

// VolumeLetter returns the drive letter ('A'-'Z') for a Windows volume
// path, or 0 if none.
func (p *Path) VolumeLetter() byte { return p.volume }

// Name returns the bytes after the last separator: the empty string for a
// bare volume ("C:") or a pure root.
func (p *Path) Name() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// IsRoot reports whether the path is exactly its own root with no
// segments (e.g. "/", "C:\\", "\\\\host\\share" is not a root — only the
// bare UNC host prefix and drive/unix roots are).
func (p *Path) IsRoot() bool {
	return p.root != rootNone && len(p.segs) == 0
}

// Parent returns the parent of p, or nil for a path spec §4.7 calls
// terminal: "/", ".", "C:\\", "\\\\host", "C:", and any path ending in
// "..".
func (p *Path) Parent() *Path {
	if len(p.segs) == 0 {
		return nil
	}
	if p.segs[len(p.segs)-1] == ".." {
		return nil
	}
	parentSegs := p.segs[:len(p.segs)-1]
	return p.rebuild(parentSegs)
}

func (p *Path) rebuild(segs []string) *Path {
	np := &Path{slash: p.slash, root: p.root, volume: p.volume, uncHost: p.uncHost, segs: segs}
	np.canonical = np.serialize()
	return np
}

// serialize renders the canonical byte sequence for p.
func (p *Path) serialize() string {
	var b strings.Builder
	b.WriteString(p.Root())
	for i, s := range p.segs {
		if i > 0 {
			b.WriteByte(byte(p.slash))
		}
		b.WriteString(s)
	}
	out := b.String()
	if out == "" {
		return "."
	}
	return out
}

// Div joins child onto p as a single new segment path (no normalization of
// "." / ".." beyond what Parse already enforces on child itself), mirroring
// spec §4.7's div/resolve with normalize=false.
func (p *Path) Div(child string) (*Path, error) {
	return p.Resolve(child, false)
}

// Resolve joins child onto p. If child parses as absolute or
// volume-rooted, it short-circuits and is returned as-is (spec §4.7).
// normalize controls whether ".."/"." collapsing runs on the joined
// result.
func (p *Path) Resolve(child string, normalize bool) (*Path, error) {
	cp, err := ParseWithSlash(child, p.slash, normalize)
	if err != nil {
		return nil, err
	}
	if cp.IsAbsolute() || cp.volume != 0 {
		return cp, nil
	}

	combined := make([]string, 0, len(p.segs)+len(cp.segs))
	combined = append(combined, p.segs...)
	combined = append(combined, cp.segs...)
	if normalize {
		combined = collapseDotDot(combined, p.root != rootNone)
	}
	return p.rebuild(combined), nil
}

// RelativeTo computes the relative path from other to p: it requires a
// matching root, emits one ".." per remaining segment of other beyond
// their common prefix, then the remaining segments of p.
func (p *Path) RelativeTo(other *Path) (*Path, error) {
	if p.root != other.root || p.volume != other.volume || p.uncHost != other.uncHost {
		return nil, errors.NewPathError(nil, errors.ErrorCodeInvalidArgument, "relativeTo requires the same root").
			WithField("root").WithProvided(other.Root()).WithExpected(p.Root())
	}

	common := 0
	for common < len(p.segs) && common < len(other.segs) && p.segs[common] == other.segs[common] {
		common++
	}

	for _, s := range other.segs[common:] {
		if s == ".." {
			return nil, errors.NewPathError(nil, errors.ErrorCodeInvalidArgument,
				"relativeTo: other contains an unresolvable .. beyond the common prefix").WithField("other")
		}
	}

	out := make([]string, 0, (len(other.segs)-common)+(len(p.segs)-common))
	for range other.segs[common:] {
		out = append(out, "..")
	}
	out = append(out, p.segs[common:]...)

	rel := &Path{slash: p.slash, root: rootNone, segs: out}
	rel.canonical = rel.serialize()
	return rel, nil
}

// collapseDotDot pops ".." against the preceding segment unless absolute
// drops below root (those are silently discarded) or the path is relative,
// in which case a leading ".." is kept, per spec §4.7 / §8.
func collapseDotDot(segs []string, absolute bool) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch {
		case s == ".":
			continue
		case s == "":
			continue
		case s == "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
				continue
			}
			if absolute {
				continue // beyond an absolute root: silently dropped
			}
			out = append(out, "..") // beyond a relative root: retained
		default:
			out = append(out, s)
		}
	}
	return out
}
