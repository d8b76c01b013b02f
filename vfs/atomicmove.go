package vfs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/iamNilotpal/octet/pkg/errors"
	"github.com/iamNilotpal/octet/vpath"
)

// AtomicMove implements spec §4.8's design-notes guarantee: either source
// is gone and target holds source's prior bytes, or an error is returned
// and the file system is left exactly as it was (this implementation never
// takes the third, degraded "target deleted, source intact" branch the
// spec permits for filesystems that can't replace atomically — it only
// ever returns the first two outcomes, which are strictly safer). One
// error leaves the file system changed: when the cross-device fallback has
// already put source's bytes at target but cannot remove source, the error
// is returned with both files present.
func (l *LocalFileSystem) AtomicMove(source, target *vpath.Path) error {
	srcNative := nativePath(source)
	dstNative := nativePath(target)

	if err := platformRename(srcNative, dstNative); err == nil {
		return nil
	} else if !isCrossDeviceError(err) {
		return errors.NewIOError(err, errors.ErrorCodeIO, "atomic move failed").
			WithPath(srcNative).WithDetail("target", dstNative)
	}

	return l.crossDeviceMove(srcNative, dstNative)
}

// crossDeviceMove handles the case where source and target live on
// different filesystems and a single rename syscall can't move the file:
// it copies source into a uuid-named temporary sibling of target (avoiding
// collisions with any other concurrent mover, the way the teacher's
// seginfo filename scheme avoids collisions across segment rotations),
// then renames the temporary file into place with the same atomic
// primitive. If that final rename fails, the temporary file is removed and
// both source and target are left exactly as they were.
func (l *LocalFileSystem) crossDeviceMove(srcNative, dstNative string) error {
	tmp := filepath.Join(filepath.Dir(dstNative), ".octet-move-"+uuid.NewString())

	if err := copyFileContents(srcNative, tmp); err != nil {
		_ = os.Remove(tmp)
		return errors.NewIOError(err, errors.ErrorCodeIO, "atomic move: cross-device copy failed").
			WithPath(srcNative).WithDetail("target", dstNative)
	}

	if err := platformRename(tmp, dstNative); err != nil {
		_ = os.Remove(tmp)
		return errors.NewIOError(err, errors.ErrorCodeIO, "atomic move: final rename failed").
			WithPath(srcNative).WithDetail("target", dstNative)
	}

	if err := os.Remove(srcNative); err != nil {
		// The move itself already succeeded (target holds source's
		// bytes); failing to unlink the now-redundant source is reported
		// but does not roll back the move.
		return errors.NewIOError(err, errors.ErrorCodeIO, "atomic move: succeeded but failed to remove source").
			WithPath(srcNative)
	}
	return nil
}

func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
