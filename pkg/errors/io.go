package errors

// IOError is the specialized error type for failures crossing a Source,
// Sink, or file-descriptor boundary. It embeds baseError to inherit the
// standard error machinery, then adds the location context (which segment,
// which byte offset, which file) that makes a storage failure actionable.
type IOError struct {
	*baseError
	segmentId int    // Which in-memory segment was being accessed, if any (-1 when not applicable).
	offset    int64  // Byte offset within the file or segment where the failure happened.
	fileName  string // Name of the file involved, if any.
	path      string // Path of the file involved, if any.
}

// NewIOError creates a new I/O-specific error wrapping the underlying cause.
func NewIOError(err error, code ErrorCode, msg string) *IOError {
	return &IOError{baseError: NewBaseError(err, code, msg), segmentId: -1}
}

// NewEOFError creates the distinguished EOF error: an IOError whose code is
// always ErrorCodeEOF regardless of what's passed, since EOF is never
// anything else.
func NewEOFError(msg string) *IOError {
	if msg == "" {
		msg = "EOF"
	}
	return &IOError{baseError: NewBaseError(nil, ErrorCodeEOF, msg), segmentId: -1}
}

// IsEOF reports whether err is (or wraps) an EOF IOError.
func IsEOF(err error) bool {
	ioErr, ok := AsIOError(err)
	return ok && ioErr.Code() == ErrorCodeEOF
}

// WithSegmentID records which in-memory segment was involved in the error.
func (e *IOError) WithSegmentID(id int) *IOError {
	e.segmentId = id
	return e
}

// WithOffset records the byte position where the error occurred.
func (e *IOError) WithOffset(offset int64) *IOError {
	e.offset = offset
	return e
}

// WithFileName records which file was being processed when the error occurred.
func (e *IOError) WithFileName(fileName string) *IOError {
	e.fileName = fileName
	return e
}

// WithPath records which path was being processed when the error occurred.
func (e *IOError) WithPath(path string) *IOError {
	e.path = path
	e.baseError.WithDetail("path", path)
	return e
}

// WithDetail adds contextual information while preserving the IOError type.
func (e *IOError) WithDetail(key string, value any) *IOError {
	e.baseError.WithDetail(key, value)
	return e
}

// WithRetryable overrides whether retrying the operation that produced
// this IOError could succeed, while preserving the IOError type.
func (e *IOError) WithRetryable(retryable bool) *IOError {
	e.baseError.WithRetryable(retryable)
	return e
}

// SegmentID returns the segment identifier where the error occurred, or -1
// if the failure wasn't attributable to a specific segment.
func (e *IOError) SegmentID() int { return e.segmentId }

// Offset returns the byte offset within the file or segment where the
// failure happened.
func (e *IOError) Offset() int64 { return e.offset }

// FileName returns the name of the file that was being processed.
func (e *IOError) FileName() string { return e.fileName }

// Path returns the path that was being processed.
func (e *IOError) Path() string { return e.path }
