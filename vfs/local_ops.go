package vfs

import (
	"os"
	"path/filepath"

	"github.com/iamNilotpal/octet/iostream"
	"github.com/iamNilotpal/octet/pkg/errors"
	"github.com/iamNilotpal/octet/vpath"
)

func (l *LocalFileSystem) Source(path *vpath.Path) (iostream.Source, error) {
	native := nativePath(path)
	f, err := os.Open(native)
	if err != nil {
		return nil, errors.ClassifyOpenError(err, native, filepath.Base(native))
	}
	return newOSSource(f), nil
}

func (l *LocalFileSystem) Sink(path *vpath.Path, mustCreate bool) (iostream.Sink, error) {
	native := nativePath(path)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if mustCreate {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(native, flags, 0644)
	if err != nil {
		return nil, errors.ClassifyOpenError(err, native, filepath.Base(native))
	}
	return newOSSink(f), nil
}

func (l *LocalFileSystem) AppendingSink(path *vpath.Path, mustExist bool) (iostream.Sink, error) {
	native := nativePath(path)
	flags := os.O_WRONLY | os.O_APPEND
	if mustExist {
		// O_EXCL has no meaning combined with an existence requirement on
		// append; verify explicitly instead.
		if _, err := os.Stat(native); err != nil {
			return nil, errors.ClassifyOpenError(err, native, filepath.Base(native))
		}
	} else {
		flags |= os.O_CREATE
	}
	f, err := os.OpenFile(native, flags, 0644)
	if err != nil {
		return nil, errors.ClassifyOpenError(err, native, filepath.Base(native))
	}
	return newOSSink(f), nil
}

func (l *LocalFileSystem) CreateDirectory(path *vpath.Path, mustCreate bool) error {
	native := nativePath(path)
	if mustCreate {
		if err := os.Mkdir(native, 0755); err != nil {
			return errors.ClassifyDirectoryError(err, native)
		}
		return nil
	}
	if info, err := os.Stat(native); err == nil {
		if !info.IsDir() {
			return errors.NewIOError(nil, errors.ErrorCodeIO, "path exists and is not a directory").WithPath(native)
		}
		return nil
	}
	if err := os.Mkdir(native, 0755); err != nil {
		return errors.ClassifyDirectoryError(err, native)
	}
	return nil
}

func (l *LocalFileSystem) Delete(path *vpath.Path, mustExist bool) error {
	native := nativePath(path)
	err := os.Remove(native)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return errors.ClassifyOpenError(err, native, filepath.Base(native))
	}
	return nil
}

func (l *LocalFileSystem) CreateSymlink(source, target *vpath.Path) error {
	nativeSrc := nativePath(source)
	nativeTarget := nativePath(target)
	if err := os.Symlink(nativeSrc, nativeTarget); err != nil {
		return errors.NewIOError(err, errors.ErrorCodeIO, "failed to create symlink").
			WithPath(nativeTarget).WithDetail("target", nativeSrc)
	}
	return nil
}

var _ FileSystem = (*LocalFileSystem)(nil)
