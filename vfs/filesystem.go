// Package vfs implements the boundary described in spec §6: the abstract
// FileSystem contract the core consumes, its ForwardingFileSystem
// decorator, FileMetadata, and the random-access FileHandle built on top
// of it (spec §4.8). The only concrete implementation shipped here is an
// os-package-backed LocalFileSystem; spec §1 treats "platform file-system
// bindings that actually touch the host OS" as an external collaborator,
// so LocalFileSystem is a thin adapter rather than where the interesting
// logic lives.
//
// Grounded on the teacher's pkg/filesys package (CreateDir/DeleteDir/
// CopyDir/ReadDir/Exists and friends): that package already draws the line
// this spec wants — a handful of os/filepath calls wrapped with the
// project's own error and force/mustCreate semantics — just against
// concrete paths instead of vpath.Path and without the FileSystem
// interface boundary. LocalFileSystem keeps that shape and generalizes it.
package vfs

import (
	"reflect"

	"github.com/iamNilotpal/octet/iostream"
	"github.com/iamNilotpal/octet/vpath"
)

// FileMetadata is spec §3's record of what a FileSystem knows about a
// path: regular-file/directory flags, an optional symlink target, size,
// and timestamps, plus an open-ended extras map keyed by the concrete
// extra-data type (the idiomatic analogue of an "extension class" key).
type FileMetadata struct {
	IsRegularFile bool
	IsDirectory   bool
	SymlinkTarget *vpath.Path

	// Size is nil when unknown (e.g. a directory on some platforms).
	Size *int64

	// CreatedAt, LastModifiedAt, LastAccessedAt are millisecond Unix
	// timestamps, nil when the platform doesn't report them.
	CreatedAt      *int64
	LastModifiedAt *int64
	LastAccessedAt *int64

	extras map[reflect.Type]any
}

// Extra retrieves a typed extension value previously stored with SetExtra,
// the idiomatic Go analogue of querying an "extension class" from a Java
// record.
func Extra[T any](m *FileMetadata) (T, bool) {
	var zero T
	if m == nil || m.extras == nil {
		return zero, false
	}
	v, ok := m.extras[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// SetExtra stores an extension value keyed by its own concrete type.
func SetExtra[T any](m *FileMetadata, value T) {
	if m.extras == nil {
		m.extras = make(map[reflect.Type]any)
	}
	m.extras[reflect.TypeOf(value)] = value
}

// FileSystem is spec §6's abstract boundary: every operation the core
// consumes from the host's storage layer. Implementations are expected to
// be thin; the non-abstract helpers below (Metadata, Exists,
// CreateDirectories, DeleteRecursively, Copy, ListRecursively) are provided
// once, in terms of the abstract operations, rather than duplicated per
// backend.
type FileSystem interface {
	// Canonicalize resolves path to its canonical, symlink-free absolute
	// form.
	Canonicalize(path *vpath.Path) (*vpath.Path, error)

	// MetadataOrNull returns metadata for path, or nil if it does not
	// exist.
	MetadataOrNull(path *vpath.Path) (*FileMetadata, error)

	// List returns path's children, sorted by natural byte order, per
	// spec §6.
	List(path *vpath.Path) ([]*vpath.Path, error)

	// OpenReadOnly opens path for random access, read-only.
	OpenReadOnly(path *vpath.Path) (*FileHandle, error)

	// OpenReadWrite opens path for random access, read-write.
	// mustCreate requires the file not already exist; mustExist requires
	// that it does. Both false means "open or create".
	OpenReadWrite(path *vpath.Path, mustCreate, mustExist bool) (*FileHandle, error)

	// Source opens a streaming read-only Source over path.
	Source(path *vpath.Path) (iostream.Source, error)

	// Sink opens a streaming write-only Sink over path, truncating any
	// existing content. mustCreate requires the file not already exist.
	Sink(path *vpath.Path, mustCreate bool) (iostream.Sink, error)

	// AppendingSink opens a streaming write-only Sink positioned at the
	// end of path's existing content. mustExist requires that path already
	// exists.
	AppendingSink(path *vpath.Path, mustExist bool) (iostream.Sink, error)

	// CreateDirectory creates path as a directory. mustCreate requires
	// that it not already exist.
	CreateDirectory(path *vpath.Path, mustCreate bool) error

	// AtomicMove renames source to target with the atomicity guarantees
	// from spec §4.8's design notes.
	AtomicMove(source, target *vpath.Path) error

	// Delete removes path. mustExist requires that it already existed.
	Delete(path *vpath.Path, mustExist bool) error

	// CreateSymlink creates a symlink at target pointing at source.
	CreateSymlink(source, target *vpath.Path) error
}
