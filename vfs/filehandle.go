package vfs

import (
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/iamNilotpal/octet/buffer"
	"github.com/iamNilotpal/octet/iostream"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// FileHandle is spec §4.8's random-access handle: a read-only/read-write
// flag, a closed flag, and a reference count of open streaming cursors
// derived from it. Resources are released only once both closed is true
// and the open-stream count reaches zero.
//
// Grounded on the teacher's internal/storage.Storage: both types guard a
// single underlying *os.File behind a mutex and expose read/write/size
// operations that check an open/closed flag before touching it; FileHandle
// generalizes that to support multiple independent cursors instead of one
// fixed append-only writer.
type FileHandle struct {
	mu        sync.Mutex
	file      *os.File
	readOnly  bool
	closed    bool
	streams   int
	log       *zap.SugaredLogger
}

func newFileHandle(f *os.File, readOnly bool, log *zap.SugaredLogger) *FileHandle {
	return &FileHandle{file: f, readOnly: readOnly, log: log}
}

// ReadOnly reports whether this handle permits only reads.
func (h *FileHandle) ReadOnly() bool { return h.readOnly }

// checkOpen must be called with h.mu held.
func (h *FileHandle) checkOpenLocked() error {
	if h.closed {
		return errors.NewIllegalStateError("FileHandle: operation on closed handle")
	}
	return nil
}

func (h *FileHandle) checkWritableLocked() error {
	if err := h.checkOpenLocked(); err != nil {
		return err
	}
	if h.readOnly {
		return errors.NewIllegalStateError("FileHandle: write attempted on read-only handle")
	}
	return nil
}

// Size returns the current size of the underlying file.
func (h *FileHandle) Size() (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpenLocked(); err != nil {
		return 0, err
	}
	return h.protectedSize()
}

// Resize truncates or extends the underlying file to newSize.
func (h *FileHandle) Resize(newSize int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkWritableLocked(); err != nil {
		return err
	}
	return h.protectedResize(newSize)
}

// Flush forces any OS-level buffering of writes to the file out to disk.
func (h *FileHandle) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkWritableLocked(); err != nil {
		return err
	}
	return h.protectedFlush()
}

// ReadAt reads up to len(p) bytes starting at fileOffset, delegating to
// protectedRead. It returns a short count without an error when the file
// ends first, and fails with an I/O error when no byte can be read.
func (h *FileHandle) ReadAt(fileOffset int64, p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpenLocked(); err != nil {
		return 0, err
	}
	return h.protectedRead(fileOffset, p)
}

// WriteAt writes p at fileOffset.
func (h *FileHandle) WriteAt(fileOffset int64, p []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkWritableLocked(); err != nil {
		return err
	}
	return h.protectedWrite(fileOffset, p)
}

// --- protected hooks: the only methods that touch h.file directly ---

func (h *FileHandle) protectedSize() (int64, error) {
	info, err := h.file.Stat()
	if err != nil {
		return 0, errors.NewIOError(err, errors.ErrorCodeIO, "stat failed")
	}
	return info.Size(), nil
}

func (h *FileHandle) protectedResize(newSize int64) error {
	if err := h.file.Truncate(newSize); err != nil {
		return errors.NewIOError(err, errors.ErrorCodeIO, "resize failed")
	}
	return nil
}

func (h *FileHandle) protectedFlush() error {
	if err := h.file.Sync(); err != nil {
		return errors.NewIOError(err, errors.ErrorCodeIO, "flush failed")
	}
	return nil
}

func (h *FileHandle) protectedRead(fileOffset int64, p []byte) (int, error) {
	n, err := h.file.ReadAt(p, fileOffset)
	if err != nil && n == 0 {
		return 0, errors.NewIOError(err, errors.ErrorCodeIO, "pread failed")
	}
	return n, nil
}

func (h *FileHandle) protectedWrite(fileOffset int64, p []byte) error {
	if _, err := h.file.WriteAt(p, fileOffset); err != nil {
		return errors.NewIOError(err, errors.ErrorCodeIO, "pwrite failed")
	}
	return nil
}

func (h *FileHandle) protectedClose() error {
	if err := h.file.Close(); err != nil {
		return errors.NewIOError(err, errors.ErrorCodeIO, "close failed")
	}
	return nil
}

// Close marks the handle closed; the underlying file descriptor is
// released once the open-stream count also reaches zero, per spec §4.8.
// Idempotent.
func (h *FileHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if h.streams > 0 {
		if h.log != nil {
			h.log.Debugw("FileHandle.Close deferred: streams still open", "count", h.streams)
		}
		return nil
	}
	return h.protectedClose()
}

func (h *FileHandle) acquireStream() {
	h.mu.Lock()
	h.streams++
	h.mu.Unlock()
}

func (h *FileHandle) releaseStream() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.streams--
	if h.streams == 0 && h.closed {
		return h.protectedClose()
	}
	return nil
}

// fileHandleSource is a streaming cursor reading sequentially from a fixed
// starting fileOffset, per spec §4.8's Source(fileOffset).
type fileHandleSource struct {
	handle   *FileHandle
	position int64
	closed   bool
}

// Source returns a streaming read cursor starting at fileOffset. It holds
// a strong reference to h and increments its open-stream count until the
// cursor is closed.
func (h *FileHandle) Source(fileOffset int64) iostream.Source {
	h.acquireStream()
	return &fileHandleSource{handle: h, position: fileOffset}
}

func (c *fileHandleSource) Read(sink *buffer.Buffer, byteCount int64) (int64, error) {
	if c.closed {
		return 0, errors.NewIllegalStateError("fileHandleSource: read on closed cursor")
	}
	if byteCount <= 0 {
		return 0, errors.NewInvalidArgumentError("byteCount", "must be positive", byteCount)
	}
	buf := make([]byte, byteCount)
	n, err := c.handle.ReadAt(c.position, buf)
	if n == 0 {
		if err != nil {
			if size, serr := c.handle.Size(); serr == nil && c.position >= size {
				return -1, nil
			}
			return 0, err
		}
		return -1, nil
	}
	if _, werr := sink.Write(buf[:n]); werr != nil {
		return 0, werr
	}
	c.position += int64(n)
	return int64(n), nil
}

func (c *fileHandleSource) Timeout() iostream.Timeout { return iostream.NoTimeout }

func (c *fileHandleSource) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.handle.releaseStream()
}

// fileHandleSink is a streaming write cursor starting at a fixed fileOffset
// (or, for an appending sink, wherever the file's length was when opened).
type fileHandleSink struct {
	handle   *FileHandle
	position int64
	closed   bool
}

// Sink returns a streaming write cursor starting at fileOffset.
func (h *FileHandle) Sink(fileOffset int64) iostream.Sink {
	h.acquireStream()
	return &fileHandleSink{handle: h, position: fileOffset}
}

// AppendingSink returns a streaming write cursor positioned at the
// handle's current end-of-file.
func (h *FileHandle) AppendingSink() (iostream.Sink, error) {
	size, err := h.Size()
	if err != nil {
		return nil, err
	}
	return h.Sink(size), nil
}

func (c *fileHandleSink) Write(source *buffer.Buffer, byteCount int64) error {
	if c.closed {
		return errors.NewIllegalStateError("fileHandleSink: write on closed cursor")
	}
	buf := make([]byte, byteCount)
	n, err := source.Read(buf)
	if err != nil {
		return err
	}
	if err := c.handle.WriteAt(c.position, buf[:n]); err != nil {
		return err
	}
	c.position += int64(n)
	return nil
}

func (c *fileHandleSink) Flush() error {
	if c.closed {
		return errors.NewIllegalStateError("fileHandleSink: flush on closed cursor")
	}
	return c.handle.Flush()
}

func (c *fileHandleSink) Timeout() iostream.Timeout { return iostream.NoTimeout }

func (c *fileHandleSink) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.handle.releaseStream()
}

// Position returns cursor's current file offset. When cursor is wrapped in
// a BufferedSource, the caller must pass the buffered source's staged size
// so it can be subtracted, per spec §4.8.
func Position(cursor *fileHandleSource, bufferedAhead int64) int64 {
	return cursor.position - bufferedAhead
}

// Reposition seeks a streaming source cursor to newPos, adjusting a
// wrapping BufferedSource's internal buffer: bytes already staged that
// cover newPos are skipped-to rather than re-read, otherwise the buffer is
// cleared so the next read starts exactly at newPos.
func Reposition(cursor *fileHandleSource, src *iostream.BufferedSource, newPos int64) error {
	current := Position(cursor, src.Buffer().Size())
	if newPos >= current && newPos <= cursor.position {
		return src.Skip(newPos - current)
	}
	if err := src.Buffer().Clear(); err != nil {
		return err
	}
	cursor.position = newPos
	return nil
}

// RepositionSink seeks a streaming sink cursor to newPos, emitting any
// buffered writes first so wrapped bytes are never silently dropped.
func RepositionSink(cursor *fileHandleSink, sink *iostream.BufferedSink, newPos int64) error {
	if err := sink.Emit(); err != nil {
		return err
	}
	cursor.position = newPos
	return nil
}
