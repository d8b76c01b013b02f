package config

const (
	// DefaultSegmentSize is the fixed capacity of a single Segment page, in
	// bytes. The spec calls this out as an exact constant (8192); it is
	// still exposed as a tunable default rather than an untyped package
	// constant so tests can build a SegmentPool with tiny segments without
	// touching production code.
	DefaultSegmentSize uint32 = 8192

	// DefaultPoolMaxSize is the process-wide ceiling on bytes held by the
	// SegmentPool free list. The spec gives 64 KiB as the example figure;
	// this is 8 idle segments at the default segment size.
	DefaultPoolMaxSize uint32 = 64 * 1024

	// DefaultShareMinimum is the SHARE_MINIMUM threshold from spec §4.1:
	// Buffer.write(source, byteCount) shares a split page instead of
	// copying it only when the split keeps at least this many bytes.
	DefaultShareMinimum uint32 = 1024

	// DefaultSnapshotThreshold resolves spec §9's first Open Question:
	// Buffer.Snapshot returns a contiguous ByteString below this size and a
	// SegmentedByteString at or above it.
	DefaultSnapshotThreshold uint32 = 4096

	// DefaultTempDirEnv names the environment variable consulted before
	// falling back to os.TempDir() when resolving the platform temporary
	// directory (spec §1 treats SYSTEM_TEMPORARY_DIRECTORY as an external
	// collaborator; this is the seam the core exposes for it).
	DefaultTempDirEnv = "OCTET_TMPDIR"
)
