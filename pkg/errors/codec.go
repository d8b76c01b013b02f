package errors

// CodecError is the specialized error type for protocol/codec-level
// failures: invalid Base64 or hex input, decimal overflow, malformed
// UTF-8 where the caller asked for a strict decode. It mirrors the
// teacher's IndexError shape (operation + byte offset + size context)
// applied to the codec domain instead of key lookups.
type CodecError struct {
	*baseError

	// operation names the codec call that failed, e.g. "DecodeBase64",
	// "ReadDecimalLong", "ReadUtf8CodePoint".
	operation string

	// byteOffset is the position within the input where decoding stopped.
	byteOffset int64

	// inputSize is the total size of the input being decoded, for context.
	inputSize int64
}

// NewCodecError creates a new codec-specific error.
func NewCodecError(err error, code ErrorCode, msg string) *CodecError {
	return &CodecError{baseError: NewBaseError(err, code, msg)}
}

// WithOperation records which codec operation was being performed.
func (e *CodecError) WithOperation(operation string) *CodecError {
	e.operation = operation
	return e
}

// WithByteOffset records where in the input decoding stopped.
func (e *CodecError) WithByteOffset(offset int64) *CodecError {
	e.byteOffset = offset
	return e
}

// WithInputSize records the total size of the input being decoded.
func (e *CodecError) WithInputSize(size int64) *CodecError {
	e.inputSize = size
	return e
}

// WithDetail adds contextual information while preserving the CodecError type.
func (e *CodecError) WithDetail(key string, value any) *CodecError {
	e.baseError.WithDetail(key, value)
	return e
}

// WithRetryable overrides whether retrying the operation that produced
// this CodecError could succeed, while preserving the CodecError type.
// Codec errors default to non-retryable (see defaultRetryable): malformed
// input stays malformed on a second attempt.
func (e *CodecError) WithRetryable(retryable bool) *CodecError {
	e.baseError.WithRetryable(retryable)
	return e
}

// Operation returns the codec operation that failed.
func (e *CodecError) Operation() string { return e.operation }

// ByteOffset returns the position within the input where decoding stopped.
func (e *CodecError) ByteOffset() int64 { return e.byteOffset }

// InputSize returns the total size of the input being decoded.
func (e *CodecError) InputSize() int64 { return e.inputSize }

// NewNumberFormatError builds the standard decimal/hex parse failure,
// always carrying the offending operation name so the message doesn't need
// to be parsed to recover it.
func NewNumberFormatError(operation, msg string) *CodecError {
	return NewCodecError(nil, ErrorCodeNumberFormat, msg).WithOperation(operation)
}

// NewProtocolError builds the standard malformed-wire-input failure.
func NewProtocolError(operation, msg string) *CodecError {
	return NewCodecError(nil, ErrorCodeProtocol, msg).WithOperation(operation)
}
