// Package config provides the functional-options configuration surface for
// octet's tunable constants: segment size, pool capacity, the sharing
// threshold used by Buffer's zero-copy transfer, and the snapshot threshold
// used to decide between a contiguous and segmented ByteString. It follows
// the same OptionFunc/With*/NewDefault pattern the teacher uses for its own
// database-wide Options.
package config

import "os"

// Config holds octet's tunable constants. A zero-value Config is never used
// directly; callers get one from NewDefault and apply OptionFuncs over it.
// Only SegmentSize is read elsewhere in the module, as the chunk size of
// BufferedSource, BufferedSink and vfs stream copies. Buffer, its default
// SegmentPool and Buffer.Snapshot use the Default* constants directly, so
// PoolMaxSize, ShareMinimum, SnapshotThreshold and TempDir do not change
// their behaviour.
type Config struct {
	// SegmentSize is the fixed capacity of every Segment page.
	SegmentSize uint32

	// PoolMaxSize is the ceiling, in bytes, on what the process-wide
	// SegmentPool free list will hold before recycle() becomes a no-op.
	PoolMaxSize uint32

	// ShareMinimum is the SHARE_MINIMUM threshold gating whether a split
	// page is shared (>=) or privately copied (<).
	ShareMinimum uint32

	// SnapshotThreshold is the size, in bytes, at or above which
	// Buffer.Snapshot produces a SegmentedByteString instead of copying
	// into a contiguous ByteString.
	SnapshotThreshold uint32

	// TempDir is a scratch directory location. No FileSystem in this module
	// reads it; LocalFileSystem.AtomicMove's cross-device fallback writes
	// its temporary file beside the target instead.
	TempDir string
}

// OptionFunc mutates a Config in place; it is the same shape as the
// teacher's options.OptionFunc.
type OptionFunc func(*Config)

// NewDefault returns a Config populated with octet's default constants,
// with any OptionFuncs applied on top.
func NewDefault(opts ...OptionFunc) Config {
	cfg := Config{
		SegmentSize:       DefaultSegmentSize,
		PoolMaxSize:       DefaultPoolMaxSize,
		ShareMinimum:      DefaultShareMinimum,
		SnapshotThreshold: DefaultSnapshotThreshold,
		TempDir:           resolveTempDir(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// resolveTempDir consults the OCTET_TMPDIR override before falling back to
// the host's platform temporary directory.
func resolveTempDir() string {
	if dir := os.Getenv(DefaultTempDirEnv); dir != "" {
		return dir
	}
	return os.TempDir()
}

// WithSegmentSize overrides the segment page capacity. Intended for tests;
// production code should use the default of 8192 bytes.
func WithSegmentSize(size uint32) OptionFunc {
	return func(c *Config) {
		if size > 0 {
			c.SegmentSize = size
		}
	}
}

// WithPoolMaxSize overrides the SegmentPool's free-list byte ceiling.
func WithPoolMaxSize(size uint32) OptionFunc {
	return func(c *Config) {
		c.PoolMaxSize = size
	}
}

// WithShareMinimum overrides the split-sharing threshold.
func WithShareMinimum(size uint32) OptionFunc {
	return func(c *Config) {
		c.ShareMinimum = size
	}
}

// WithSnapshotThreshold overrides the contiguous-vs-segmented snapshot
// threshold.
func WithSnapshotThreshold(size uint32) OptionFunc {
	return func(c *Config) {
		c.SnapshotThreshold = size
	}
}

// WithTempDir overrides TempDir.
func WithTempDir(dir string) OptionFunc {
	return func(c *Config) {
		if dir != "" {
			c.TempDir = dir
		}
	}
}
