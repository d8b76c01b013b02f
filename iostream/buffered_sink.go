package iostream

import (
	"go.uber.org/multierr"

	"github.com/iamNilotpal/octet/buffer"
	"github.com/iamNilotpal/octet/pkg/config"
	"github.com/iamNilotpal/octet/pkg/errors"
)

// BufferedSink wraps a raw Sink with a private buffer.Buffer: writes
// accumulate in memory and only cross the Sink boundary on Emit,
// EmitCompleteSegments, Flush, or Close, per spec §4.3.
type BufferedSink struct {
	sink        Sink
	buf         *buffer.Buffer
	closed      bool
	segmentSize int64
}

// NewBufferedSink wraps sink with a buffer sized from cfg.
func NewBufferedSink(sink Sink, cfg config.Config) *BufferedSink {
	return &BufferedSink{sink: sink, buf: buffer.New(), segmentSize: int64(cfg.SegmentSize)}
}

// Buffer exposes the internal staging buffer for typed writers (e.g.
// buffer.WriteUtf8, buffer.WriteDecimalLong) to target directly.
func (s *BufferedSink) Buffer() *buffer.Buffer { return s.buf }

func (s *BufferedSink) checkOpen() error {
	if s.closed {
		return errors.NewIllegalStateError("BufferedSink: write to closed sink")
	}
	return nil
}

// Write implements io.Writer by staging p in the internal buffer.
func (s *BufferedSink) Write(p []byte) (int, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	return s.buf.Write(p)
}

// WriteString stages s's UTF-8 bytes.
func (s *BufferedSink) WriteString(str string) (int, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	s.buf.WriteUtf8(str)
	return len(str), nil
}

// WriteAll pulls source segment-by-segment, emitting completed segments
// along the way to cap buffered memory at roughly one segment, per spec
// §4.3.
func (s *BufferedSink) WriteAll(source Source) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	var total int64
	for {
		n, err := source.Read(s.buf, s.segmentSize)
		if err != nil {
			return total, err
		}
		if n == -1 {
			break
		}
		total += n
		if err := s.EmitCompleteSegments(); err != nil {
			return total, err
		}
	}
	return total, nil
}

// Emit flushes all buffered bytes one hop downstream without flushing the
// rest of the chain.
func (s *BufferedSink) Emit() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	size := s.buf.Size()
	if size == 0 {
		return nil
	}
	return s.sink.Write(s.buf, size)
}

// EmitCompleteSegments flushes only the non-tail segments, keeping at most
// one segment's worth of bytes staged in memory.
func (s *BufferedSink) EmitCompleteSegments() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	size := s.buf.Size()
	if size <= s.segmentSize {
		return nil
	}
	toEmit := size - (size % s.segmentSize)
	if toEmit == size {
		toEmit -= s.segmentSize
	}
	if toEmit <= 0 {
		return nil
	}
	return s.sink.Write(s.buf, toEmit)
}

// Flush emits all buffered bytes then forces the whole downstream chain to
// its destination.
func (s *BufferedSink) Flush() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.Emit(); err != nil {
		return err
	}
	return s.sink.Flush()
}

// Close emits any buffered bytes and closes the underlying sink. If Emit
// fails, Close on the underlying sink is still attempted; the first error
// is returned with any second error recorded via multierr so neither is
// silently lost, per spec §7.
func (s *BufferedSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	emitErr := func() error {
		size := s.buf.Size()
		if size == 0 {
			return nil
		}
		return s.sink.Write(s.buf, size)
	}()
	closeErr := s.sink.Close()

	if emitErr != nil {
		return multierr.Append(emitErr, closeErr)
	}
	return closeErr
}
