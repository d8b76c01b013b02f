package vfs

import (
	"os"
	"testing"

	"github.com/iamNilotpal/octet/vpath"
)

func mustPath(t *testing.T, s string) *vpath.Path {
	t.Helper()
	p, err := vpath.Parse(s)
	if err != nil {
		t.Fatalf("vpath.Parse(%q): %v", s, err)
	}
	return p
}

func TestLocalFileSystemRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()

	file := mustPath(t, dir+"/note.txt")

	sink, err := fs.Sink(file, true)
	if err != nil {
		t.Fatalf("Sink: %v", err)
	}
	handle, err := fs.OpenReadWrite(file, false, false)
	if err != nil {
		t.Fatalf("OpenReadWrite: %v", err)
	}
	if err := handle.WriteAt(0, []byte("hello world")); err != nil {
		t.Fatalf("WriteAt: %v", err)
	}
	if err := handle.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_ = sink.Close()

	meta, err := fs.MetadataOrNull(file)
	if err != nil {
		t.Fatalf("MetadataOrNull: %v", err)
	}
	if meta == nil {
		t.Fatal("expected metadata, got nil")
	}
	if !meta.IsRegularFile {
		t.Fatal("expected IsRegularFile")
	}
	if meta.Size == nil || *meta.Size != int64(len("hello world")) {
		t.Fatalf("Size = %v, want %d", meta.Size, len("hello world"))
	}

	readHandle, err := fs.OpenReadOnly(file)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer readHandle.Close()

	buf := make([]byte, 5)
	n, err := readHandle.ReadAt(6, buf)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if string(buf[:n]) != "world" {
		t.Fatalf("ReadAt content = %q, want world", buf[:n])
	}
}

func TestLocalFileSystemMetadataOrNullMissing(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()
	missing := mustPath(t, dir+"/does-not-exist")

	meta, err := fs.MetadataOrNull(missing)
	if err != nil {
		t.Fatalf("MetadataOrNull: %v", err)
	}
	if meta != nil {
		t.Fatal("expected nil metadata for missing path")
	}
}

func TestLocalFileSystemListSorted(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if err := os.WriteFile(dir+"/"+name, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	entries, err := fs.List(mustPath(t, dir))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
	want := []string{"alpha", "bravo", "charlie"}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Fatalf("entries[%d].Name() = %q, want %q", i, e.Name(), want[i])
		}
	}
}

func TestLocalFileSystemCreateDirectoryAndDelete(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()
	sub := mustPath(t, dir+"/sub")

	if err := fs.CreateDirectory(sub, true); err != nil {
		t.Fatalf("CreateDirectory: %v", err)
	}
	meta, err := fs.MetadataOrNull(sub)
	if err != nil {
		t.Fatalf("MetadataOrNull: %v", err)
	}
	if meta == nil || !meta.IsDirectory {
		t.Fatal("expected directory metadata")
	}

	if err := fs.CreateDirectory(sub, true); err == nil {
		t.Fatal("expected error creating existing directory with mustCreate=true")
	}

	if err := fs.Delete(sub, true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	meta, err = fs.MetadataOrNull(sub)
	if err != nil {
		t.Fatalf("MetadataOrNull after delete: %v", err)
	}
	if meta != nil {
		t.Fatal("expected nil metadata after delete")
	}
}

func TestLocalFileSystemAtomicMove(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()
	src := mustPath(t, dir+"/src.txt")
	dst := mustPath(t, dir+"/dst.txt")

	if err := os.WriteFile(dir+"/src.txt", []byte("payload"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fs.AtomicMove(src, dst); err != nil {
		t.Fatalf("AtomicMove: %v", err)
	}

	if _, err := os.Stat(dir + "/src.txt"); !os.IsNotExist(err) {
		t.Fatal("expected source to be gone after move")
	}
	content, err := os.ReadFile(dir + "/dst.txt")
	if err != nil {
		t.Fatalf("ReadFile(dst): %v", err)
	}
	if string(content) != "payload" {
		t.Fatalf("dst content = %q, want payload", content)
	}
}

func TestFileHandleResizeAndFlush(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()
	file := mustPath(t, dir+"/sized.bin")

	handle, err := fs.OpenReadWrite(file, true, false)
	if err != nil {
		t.Fatalf("OpenReadWrite: %v", err)
	}
	defer handle.Close()

	if err := handle.Resize(100); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	size, err := handle.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 100 {
		t.Fatalf("Size = %d, want 100", size)
	}
	if err := handle.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
}

func TestFileHandleReadOnlyRejectsWrite(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()
	file := mustPath(t, dir+"/ro.txt")
	if err := os.WriteFile(dir+"/ro.txt", []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	handle, err := fs.OpenReadOnly(file)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer handle.Close()

	if err := handle.WriteAt(0, []byte("x")); err == nil {
		t.Fatal("expected error writing to read-only handle")
	}
}

func TestFileHandleCloseDeferredUntilStreamsReleased(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalFileSystem()
	file := mustPath(t, dir+"/streamed.bin")
	if err := os.WriteFile(dir+"/streamed.bin", []byte("abcdef"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	handle, err := fs.OpenReadOnly(file)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}

	source := handle.Source(0)
	if err := handle.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := handle.Size(); err == nil {
		t.Fatal("expected operations on handle to fail once closed, even with an open stream")
	}
	if err := source.Close(); err != nil {
		t.Fatalf("source.Close: %v", err)
	}
}
