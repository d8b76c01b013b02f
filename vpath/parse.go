package vpath

import "strings"

// Parse parses s as a path, normalizing it (collapsing "." and ".."
// subject to the root rules in spec §4.7). The separator is detected from
// the first occurrence of '/' or '\\' in s; if neither appears, the host
// platform's default is used.
func Parse(s string) (*Path, error) {
	return ParseWithSlash(s, Unknown, true)
}

// ParseRaw parses s without normalization: ".." segments are kept
// verbatim, per spec §4.7's description of the non-normalized parse mode.
// "." and empty segments are still dropped.
func ParseRaw(s string) (*Path, error) {
	return ParseWithSlash(s, Unknown, false)
}

// ParseWithSlash parses s, using override as the separator if it is not
// Unknown (instead of auto-detecting or falling back to the platform
// default). "." segments are always dropped; ".." collapsing runs only
// when normalize is true.
func ParseWithSlash(s string, override Slash, normalize bool) (*Path, error) {
	slash := override
	if slash == Unknown {
		slash = detectSlash(s)
	}
	sep := byte(slash)

	rest := s
	root := rootNone
	var volume byte
	var uncHost string

	// Windows volume prefix: X:\ or X: , recognized only when the chosen
	// slash is backslash.
	if sep == '\\' && len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' {
		volume = upper(rest[0])
		rest = rest[2:]
		if len(rest) > 0 && (rest[0] == '/' || rest[0] == '\\') {
			root = rootWindowsAbsolute
			rest = strings.TrimLeft(rest, "/\\")
		}
		// else: volume-relative, root stays rootNone
	} else {
		leading := 0
		for leading < len(rest) && (rest[leading] == '/' || rest[leading] == '\\') {
			leading++
		}
		if leading >= 2 && sep == '\\' {
			// UNC: \\host\rest...
			withoutSlashes := rest[leading:]
			hostEnd := strings.IndexAny(withoutSlashes, "/\\")
			if hostEnd == -1 {
				uncHost = withoutSlashes
				rest = ""
			} else {
				uncHost = withoutSlashes[:hostEnd]
				rest = withoutSlashes[hostEnd:]
			}
			root = rootUNC
			rest = strings.TrimLeft(rest, "/\\")
		} else if leading >= 1 {
			root = rootUnix
			rest = rest[leading:]
		}
	}

	var rawSegs []string
	if rest != "" {
		rawSegs = strings.FieldsFunc(rest, func(r rune) bool { return r == '/' || r == '\\' })
	}

	segs := make([]string, 0, len(rawSegs))
	for _, seg := range rawSegs {
		if seg == "" {
			continue
		}
		if seg == "." {
			continue
		}
		if seg == ".." {
			if !normalize {
				segs = append(segs, seg)
				continue
			}
			if len(segs) > 0 && segs[len(segs)-1] != ".." {
				segs = segs[:len(segs)-1]
				continue
			}
			if root != rootNone {
				continue // beyond an absolute/UNC root: silently dropped
			}
			segs = append(segs, seg) // beyond a relative root: retained
		} else {
			segs = append(segs, seg)
		}
	}

	p := &Path{slash: slash, root: root, volume: volume, uncHost: uncHost, segs: segs}
	p.canonical = p.serialize()
	return p, nil
}

// detectSlash inspects s for the first '/' or '\\' and returns that as the
// path's separator; if neither appears, the platform default is used, per
// spec §4.7.
func detectSlash(s string) Slash {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			return ForwardSlash
		case '\\':
			return Backslash
		}
	}
	return platformDefault()
}

func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
