package vfs

import (
	"github.com/iamNilotpal/octet/iostream"
	"github.com/iamNilotpal/octet/vpath"
)

// ForwardingFileSystem is spec §2's decorator sitting at the boundary: it
// implements FileSystem by delegating every call to an embedded
// FileSystem, letting a caller override a handful of methods (quota
// enforcement, audit logging, a read-only jail) without reimplementing the
// rest. Grounded on the same embed-and-override shape the teacher's
// pkg/ignite.DB uses to layer convenience methods over internal/storage
// and internal/index.
type ForwardingFileSystem struct {
	Delegate FileSystem
}

// NewForwardingFileSystem returns a ForwardingFileSystem delegating every
// call to delegate. Embedders typically wrap this in their own struct and
// override selected methods.
func NewForwardingFileSystem(delegate FileSystem) *ForwardingFileSystem {
	return &ForwardingFileSystem{Delegate: delegate}
}

func (f *ForwardingFileSystem) Canonicalize(path *vpath.Path) (*vpath.Path, error) {
	return f.Delegate.Canonicalize(path)
}

func (f *ForwardingFileSystem) MetadataOrNull(path *vpath.Path) (*FileMetadata, error) {
	return f.Delegate.MetadataOrNull(path)
}

func (f *ForwardingFileSystem) List(path *vpath.Path) ([]*vpath.Path, error) {
	return f.Delegate.List(path)
}

func (f *ForwardingFileSystem) OpenReadOnly(path *vpath.Path) (*FileHandle, error) {
	return f.Delegate.OpenReadOnly(path)
}

func (f *ForwardingFileSystem) OpenReadWrite(path *vpath.Path, mustCreate, mustExist bool) (*FileHandle, error) {
	return f.Delegate.OpenReadWrite(path, mustCreate, mustExist)
}

func (f *ForwardingFileSystem) Source(path *vpath.Path) (iostream.Source, error) {
	return f.Delegate.Source(path)
}

func (f *ForwardingFileSystem) Sink(path *vpath.Path, mustCreate bool) (iostream.Sink, error) {
	return f.Delegate.Sink(path, mustCreate)
}

func (f *ForwardingFileSystem) AppendingSink(path *vpath.Path, mustExist bool) (iostream.Sink, error) {
	return f.Delegate.AppendingSink(path, mustExist)
}

func (f *ForwardingFileSystem) CreateDirectory(path *vpath.Path, mustCreate bool) error {
	return f.Delegate.CreateDirectory(path, mustCreate)
}

func (f *ForwardingFileSystem) AtomicMove(source, target *vpath.Path) error {
	return f.Delegate.AtomicMove(source, target)
}

func (f *ForwardingFileSystem) Delete(path *vpath.Path, mustExist bool) error {
	return f.Delegate.Delete(path, mustExist)
}

func (f *ForwardingFileSystem) CreateSymlink(source, target *vpath.Path) error {
	return f.Delegate.CreateSymlink(source, target)
}

var _ FileSystem = (*ForwardingFileSystem)(nil)
