package vfs

import (
	"io"
	"os"
	"sync"

	"github.com/iamNilotpal/octet/buffer"
	"github.com/iamNilotpal/octet/iostream"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// osSource is a streaming, sequential iostream.Source reading from an
// *os.File; it backs LocalFileSystem.Source.
type osSource struct {
	file      *os.File
	mu        sync.Mutex
	closed    bool
	cancelled bool
}

func newOSSource(f *os.File) *osSource { return &osSource{file: f} }

func (s *osSource) Read(sink *buffer.Buffer, byteCount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errors.NewIOError(nil, errors.ErrorCodeIO, "read from closed source")
	}
	if s.cancelled {
		return 0, errors.NewIOError(nil, errors.ErrorCodeIO, "source cancelled")
	}
	if byteCount <= 0 {
		return 0, errors.NewInvalidArgumentError("byteCount", "must be positive", byteCount)
	}
	buf := make([]byte, byteCount)
	n, err := s.file.Read(buf)
	if n > 0 {
		if _, werr := sink.Write(buf[:n]); werr != nil {
			return 0, werr
		}
	}
	if err == io.EOF {
		if n == 0 {
			return -1, nil
		}
		return int64(n), nil
	}
	if err != nil {
		return 0, errors.NewIOError(err, errors.ErrorCodeIO, "file read failed")
	}
	return int64(n), nil
}

func (s *osSource) Timeout() iostream.Timeout { return iostream.NoTimeout }

// Cancel makes reads that start after it returns fail. It waits for a Read
// already in progress to finish and does not interrupt it.
func (s *osSource) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
}

func (s *osSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}

// osSink is a streaming, sequential iostream.Sink writing to an *os.File;
// it backs LocalFileSystem.Sink and AppendingSink.
type osSink struct {
	file      *os.File
	mu        sync.Mutex
	closed    bool
	cancelled bool
}

func newOSSink(f *os.File) *osSink { return &osSink{file: f} }

func (s *osSink) Write(source *buffer.Buffer, byteCount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.NewIOError(nil, errors.ErrorCodeIO, "write to closed sink")
	}
	if s.cancelled {
		return errors.NewIOError(nil, errors.ErrorCodeIO, "sink cancelled")
	}
	remaining := byteCount
	for remaining > 0 {
		chunk := remaining
		if chunk > 65536 {
			chunk = 65536
		}
		buf := make([]byte, chunk)
		n, err := source.Read(buf)
		if err != nil && n == 0 {
			return err
		}
		if _, werr := s.file.Write(buf[:n]); werr != nil {
			return errors.NewIOError(werr, errors.ErrorCodeIO, "file write failed")
		}
		remaining -= int64(n)
	}
	return nil
}

func (s *osSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.NewIOError(nil, errors.ErrorCodeIO, "flush on closed sink")
	}
	if s.cancelled {
		return errors.NewIOError(nil, errors.ErrorCodeIO, "sink cancelled")
	}
	return s.file.Sync()
}

func (s *osSink) Timeout() iostream.Timeout { return iostream.NoTimeout }

// Cancel makes writes and flushes that start after it returns fail. It
// waits for a Write or Flush already in progress to finish and does not
// interrupt it.
func (s *osSink) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
}

func (s *osSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}
