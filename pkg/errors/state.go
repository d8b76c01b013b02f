package errors

import stdErrors "errors"

// IllegalStateError is the specialized error type for spec §7's
// IllegalState case: an operation attempted against a stream or cursor
// that can no longer support it (a closed BufferedSource, a peek cursor
// read after its parent has moved on, a write to a closed FileHandle).
type IllegalStateError struct {
	*baseError
}

// NewIllegalStateError builds an IllegalStateError with the given message.
func NewIllegalStateError(msg string) *IllegalStateError {
	return &IllegalStateError{baseError: NewBaseError(nil, ErrorCodeIllegalState, msg)}
}

// IsIllegalState reports whether err is (or wraps) an IllegalStateError.
func IsIllegalState(err error) bool {
	var e *IllegalStateError
	return stdErrors.As(err, &e)
}
