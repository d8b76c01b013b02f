package iostream

import "github.com/iamNilotpal/octet/buffer"

// BlackholeSink implements spec §4.3's discard sink: it accepts any write
// by draining the source buffer without looking at the bytes, and treats
// flush/close as no-ops.
type BlackholeSink struct{}

// NewBlackholeSink returns a Sink that discards everything written to it.
func NewBlackholeSink() *BlackholeSink { return &BlackholeSink{} }

// Write advances source past byteCount bytes, discarding them.
func (BlackholeSink) Write(source *buffer.Buffer, byteCount int64) error {
	return source.Skip(byteCount)
}

// Flush is a no-op.
func (BlackholeSink) Flush() error { return nil }

// Timeout reports NoTimeout: a blackhole never blocks.
func (BlackholeSink) Timeout() Timeout { return NoTimeout }

// Close is a no-op.
func (BlackholeSink) Close() error { return nil }
