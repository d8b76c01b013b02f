package iostream

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/iamNilotpal/octet/buffer"
	"github.com/iamNilotpal/octet/pkg/config"
)

// memSource is an in-memory Source over a fixed byte slice, the simplest
// possible upstream for exercising BufferedSource without touching the
// filesystem.
type memSource struct {
	data   []byte
	pos    int
	closed bool
}

func newMemSource(data []byte) *memSource { return &memSource{data: data} }

func (m *memSource) Read(sink *buffer.Buffer, byteCount int64) (int64, error) {
	if m.pos >= len(m.data) {
		return -1, nil
	}
	end := m.pos + int(byteCount)
	if end > len(m.data) {
		end = len(m.data)
	}
	chunk := m.data[m.pos:end]
	n, err := sink.Write(chunk)
	if err != nil {
		return 0, err
	}
	m.pos += n
	return int64(n), nil
}

func (m *memSource) Timeout() Timeout { return NoTimeout }
func (m *memSource) Close() error     { m.closed = true; return nil }

// memSink is an in-memory Sink collecting everything written to it.
type memSink struct {
	data    []byte
	closed  bool
	flushed int
}

func newMemSink() *memSink { return &memSink{} }

func (m *memSink) Write(source *buffer.Buffer, byteCount int64) error {
	buf := make([]byte, byteCount)
	n, err := source.Read(buf)
	if err != nil {
		return err
	}
	m.data = append(m.data, buf[:n]...)
	return nil
}

func (m *memSink) Flush() error    { m.flushed++; return nil }
func (m *memSink) Timeout() Timeout { return NoTimeout }
func (m *memSink) Close() error    { m.closed = true; return nil }

func TestBufferedSourceReadFully(t *testing.T) {
	src := NewBufferedSource(newMemSource([]byte("hello, world")), config.NewDefault())
	defer src.Close()

	buf := make([]byte, 5)
	if err := src.ReadFully(buf); err != nil {
		t.Fatalf("ReadFully: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("ReadFully = %q, want hello", buf)
	}
}

func TestBufferedSourceReadUtf8Line(t *testing.T) {
	src := NewBufferedSource(newMemSource([]byte("line one\nline two")), config.NewDefault())
	defer src.Close()

	line, ok, err := src.ReadUtf8Line()
	if err != nil {
		t.Fatalf("ReadUtf8Line: %v", err)
	}
	if !ok || line != "line one" {
		t.Fatalf("ReadUtf8Line = (%q, %v), want (line one, true)", line, ok)
	}

	line, ok, err = src.ReadUtf8Line()
	if err != nil {
		t.Fatalf("ReadUtf8Line (final): %v", err)
	}
	if !ok || line != "line two" {
		t.Fatalf("ReadUtf8Line (final) = (%q, %v), want (line two, true)", line, ok)
	}
}

func TestBufferedSourceExhausted(t *testing.T) {
	src := NewBufferedSource(newMemSource([]byte("x")), config.NewDefault())
	defer src.Close()

	if _, err := src.ReadByte(); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	done, err := src.Exhausted()
	if err != nil {
		t.Fatalf("Exhausted: %v", err)
	}
	if !done {
		t.Fatal("expected source to report exhausted")
	}
}

func TestPeekCursorDoesNotConsume(t *testing.T) {
	src := NewBufferedSource(newMemSource([]byte("abcdef")), config.NewDefault())
	defer src.Close()

	peek := src.Peek()
	buf := make([]byte, 3)
	n, err := peek.Read(buf)
	if err != nil {
		t.Fatalf("peek.Read: %v", err)
	}
	if n != 3 || string(buf) != "abc" {
		t.Fatalf("peek.Read = (%d, %q), want (3, abc)", n, buf)
	}

	real := make([]byte, 3)
	if err := src.ReadFully(real); err != nil {
		t.Fatalf("ReadFully: %v", err)
	}
	if string(real) != "abc" {
		t.Fatalf("ReadFully after peek = %q, want abc (peek must not consume)", real)
	}
}

func TestPeekCursorInvalidatedByParentRead(t *testing.T) {
	src := NewBufferedSource(newMemSource([]byte("abcdef")), config.NewDefault())
	defer src.Close()

	peek := src.Peek()
	if _, err := src.ReadByte(); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}

	buf := make([]byte, 1)
	if _, err := peek.Read(buf); err == nil {
		t.Fatal("expected error reading from a peek cursor invalidated by a parent read")
	}
}

func TestBufferedSinkEmitAndClose(t *testing.T) {
	underlying := newMemSink()
	sink := NewBufferedSink(underlying, config.NewDefault())

	if _, err := sink.WriteString("payload"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if len(underlying.data) != 0 {
		t.Fatal("expected no bytes to reach the underlying sink before Emit/Close")
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if string(underlying.data) != "payload" {
		t.Fatalf("underlying.data = %q, want payload", underlying.data)
	}
	if !underlying.closed {
		t.Fatal("expected underlying sink to be closed")
	}
}

func TestBufferedSinkWriteAll(t *testing.T) {
	underlying := newMemSink()
	sink := NewBufferedSink(underlying, config.NewDefault())
	source := newMemSource([]byte("streamed through WriteAll"))

	n, err := sink.WriteAll(source)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if n != int64(len("streamed through WriteAll")) {
		t.Fatalf("WriteAll returned %d, want %d", n, len("streamed through WriteAll"))
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if string(underlying.data) != "streamed through WriteAll" {
		t.Fatalf("underlying.data = %q", underlying.data)
	}
}

func TestBlackholeSinkDiscards(t *testing.T) {
	sink := NewBlackholeSink()
	buf := buffer.New()
	buf.WriteString("discard me")
	if err := sink.Write(buf, int64(buf.Size())); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !buf.IsEmpty() {
		t.Fatal("expected source buffer to be drained")
	}
}

func TestHashingSinkComputesDigest(t *testing.T) {
	underlying := newMemSink()
	hasher := sha256.New()
	sink := NewHashingSink(underlying, hasher)

	buf := buffer.New()
	buf.WriteString("hash this")
	if err := sink.Write(buf, int64(buf.Size())); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := sha256.Sum256([]byte("hash this"))
	got := sink.Sum(nil)
	if string(got) != string(want[:]) {
		t.Fatal("HashingSink digest does not match expected sha256")
	}
	if string(underlying.data) != "hash this" {
		t.Fatalf("underlying.data = %q, want hash this", underlying.data)
	}
}

func TestRateLimitedSinkForwardsBytes(t *testing.T) {
	underlying := newMemSink()
	limiter := rate.NewLimiter(rate.Inf, 1<<20)
	sink := NewRateLimitedSink(underlying, limiter, context.Background())

	buf := buffer.New()
	buf.WriteString("throttled payload")
	if err := sink.Write(buf, int64(buf.Size())); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if string(underlying.data) != "throttled payload" {
		t.Fatalf("underlying.data = %q, want throttled payload", underlying.data)
	}
}

func TestTimeoutCheckDeadline(t *testing.T) {
	past := NoTimeout.WithDeadline(time.Now().Add(-time.Second))
	if err := past.CheckDeadline(); err == nil {
		t.Fatal("expected CheckDeadline to fail for an elapsed deadline")
	}

	future := NoTimeout.WithDeadline(time.Now().Add(time.Hour))
	if err := future.CheckDeadline(); err != nil {
		t.Fatalf("CheckDeadline: %v", err)
	}
}
