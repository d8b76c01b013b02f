//go:build !linux

package vfs

import "os"

// platformRename falls back to os.Rename on platforms where octet does not
// reach for a syscall package directly (spec §1 treats most platform FS
// bindings as external collaborators; the Linux build gets the one
// syscall-level guarantee the stdlib can't express portably, everywhere
// else uses the portable primitive).
func platformRename(src, dst string) error {
	return os.Rename(src, dst)
}

// isCrossDeviceError is conservative outside Linux: any rename failure is
// treated as possibly cross-device, since the stdlib doesn't expose a
// portable errno check, and AtomicMove's fallback path is safe to take
// unconditionally (it never mutates target until its own rename succeeds).
func isCrossDeviceError(err error) bool {
	return err != nil
}
