package vfs

import (
	"sort"

	"go.uber.org/multierr"

	"github.com/iamNilotpal/octet/pkg/errors"
	"github.com/iamNilotpal/octet/vpath"
)

// Metadata returns metadata for path, failing FileNotFound if it does not
// exist (spec §6: a non-abstract helper over MetadataOrNull).
func Metadata(fs FileSystem, path *vpath.Path) (*FileMetadata, error) {
	m, err := fs.MetadataOrNull(path)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.NewIOError(nil, errors.ErrorCodeFileNotFound, "no such file or directory").
			WithPath(path.String())
	}
	return m, nil
}

// Exists reports whether path resolves to anything.
func Exists(fs FileSystem, path *vpath.Path) (bool, error) {
	m, err := fs.MetadataOrNull(path)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// CreateDirectories creates path and any missing ancestors, tolerating an
// already-existing directory at any level (mustCreate=false throughout).
func CreateDirectories(fs FileSystem, path *vpath.Path) error {
	var chain []*vpath.Path
	for cur := path; cur != nil && !cur.IsRoot(); cur = cur.Parent() {
		chain = append(chain, cur)
		if cur.Parent() == nil {
			break
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		dir := chain[i]
		exists, err := Exists(fs, dir)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := fs.CreateDirectory(dir, false); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRecursively removes path (file or directory) and everything under
// it, post-order: children before the directory that contains them. It
// detects symlink cycles by tracking canonical paths already visited on
// the current descent.
func DeleteRecursively(fs FileSystem, path *vpath.Path) error {
	return deleteRecursively(fs, path, map[string]bool{})
}

func deleteRecursively(fs FileSystem, path *vpath.Path, visited map[string]bool) error {
	meta, err := fs.MetadataOrNull(path)
	if err != nil {
		return err
	}
	if meta == nil {
		return nil
	}

	if meta.IsDirectory && meta.SymlinkTarget == nil {
		canon, err := fs.Canonicalize(path)
		if err == nil {
			if visited[canon.String()] {
				return errors.NewIOError(nil, errors.ErrorCodeIO, "symlink cycle detected").
					WithPath(path.String())
			}
			visited[canon.String()] = true
		}

		children, err := fs.List(path)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := deleteRecursively(fs, child, visited); err != nil {
				return err
			}
		}
	}

	return fs.Delete(path, false)
}

// Copy streams src's content to dst via fs's Source/Sink primitives.
func Copy(fs FileSystem, src, dst *vpath.Path) error {
	source, err := fs.Source(src)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	sink, err := fs.Sink(dst, false)
	if err != nil {
		return err
	}

	copyErr := streamCopy(source, sink)
	closeErr := sink.Close()
	if copyErr != nil {
		return multierr.Append(copyErr, closeErr)
	}
	return closeErr
}

// ListRecursively performs a depth-first walk of path and returns every
// entry in one slice, parents before children. When followSymlinks is true
// it records the canonical form of each symlinked directory it follows and
// does not descend into one whose canonical form it already recorded
// earlier in the walk.
func ListRecursively(fs FileSystem, path *vpath.Path, followSymlinks bool) ([]*vpath.Path, error) {
	var out []*vpath.Path
	visited := map[string]bool{}
	var walk func(p *vpath.Path) error
	walk = func(p *vpath.Path) error {
		meta, err := fs.MetadataOrNull(p)
		if err != nil {
			return err
		}
		if meta == nil {
			return nil
		}
		out = append(out, p)

		isSymlink := meta.SymlinkTarget != nil
		if !meta.IsDirectory || (isSymlink && !followSymlinks) {
			return nil
		}

		if isSymlink {
			canon, err := fs.Canonicalize(p)
			if err == nil {
				if visited[canon.String()] {
					return nil
				}
				visited[canon.String()] = true
			}
		}

		children, err := fs.List(p)
		if err != nil {
			return err
		}
		sort.Slice(children, func(i, j int) bool { return children[i].String() < children[j].String() })
		for _, child := range children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(path); err != nil {
		return nil, err
	}
	return out, nil
}
