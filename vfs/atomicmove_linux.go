//go:build linux

package vfs

import (
	"errors"

	"golang.org/x/sys/unix"
)

// platformRename performs an atomic rename-and-replace using
// unix.Renameat2 instead of os.Rename, so octet depends on the one
// syscall-level guarantee spec §4.8's design notes call for (atomic
// replace) through a real platform package rather than assuming os.Rename
// is atomic everywhere it runs.
func platformRename(src, dst string) error {
	return unix.Renameat2(unix.AT_FDCWD, src, unix.AT_FDCWD, dst, 0)
}

// isCrossDeviceError reports whether err indicates the rename failed
// because src and dst live on different filesystems, the one case
// AtomicMove falls back to a non-atomic copy-then-delete for.
func isCrossDeviceError(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
