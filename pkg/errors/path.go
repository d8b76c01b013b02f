package errors

// PathError is the specialized error type for invalid arguments: bad path
// strings, out-of-range offsets, malformed Options construction. It embeds
// baseError and, despite the name, doubles as the general "invalid
// argument"/"index out of bounds" error for the whole module — path parsing
// is simply the most frequent source of these failures, the way field
// validation was for the teacher's equivalent type.
type PathError struct {
	*baseError

	// field identifies which argument or component failed validation, e.g.
	// "segment", "volumeLetter", "byteCount".
	field string

	// rule names the constraint that was violated, e.g. "non_empty",
	// "range", "same_root".
	rule string

	// provided captures the value that was supplied and rejected.
	provided any

	// expected describes what would have been accepted.
	expected any
}

// NewPathError creates a new path/argument validation error.
func NewPathError(err error, code ErrorCode, msg string) *PathError {
	return &PathError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while preserving the PathError type.
func (e *PathError) WithMessage(msg string) *PathError {
	e.baseError.WithMessage(msg)
	return e
}

// WithDetail adds contextual information while preserving the PathError type.
func (e *PathError) WithDetail(key string, value any) *PathError {
	e.baseError.WithDetail(key, value)
	return e
}

// WithRetryable overrides whether retrying the operation that produced
// this PathError could succeed, while preserving the PathError type.
func (e *PathError) WithRetryable(retryable bool) *PathError {
	e.baseError.WithRetryable(retryable)
	return e
}

// WithField sets which argument or field failed validation.
func (e *PathError) WithField(field string) *PathError {
	e.field = field
	return e
}

// WithRule sets which constraint was violated.
func (e *PathError) WithRule(rule string) *PathError {
	e.rule = rule
	return e
}

// WithProvided records the rejected value.
func (e *PathError) WithProvided(value any) *PathError {
	e.provided = value
	return e
}

// WithExpected records what would have been accepted.
func (e *PathError) WithExpected(value any) *PathError {
	e.expected = value
	return e
}

// Field returns the argument or field name that failed validation.
func (e *PathError) Field() string { return e.field }

// Rule returns the constraint that was violated.
func (e *PathError) Rule() string { return e.rule }

// Provided returns the value that was supplied and rejected.
func (e *PathError) Provided() any { return e.provided }

// Expected returns what would have been accepted.
func (e *PathError) Expected() any { return e.expected }

// NewIndexOutOfBoundsError builds the standard "offset/count out of range"
// error shared by ByteString, Buffer, and Path range checks.
func NewIndexOutOfBoundsError(field string, provided, size int) *PathError {
	return NewPathError(nil, ErrorCodeIndexOutOfBounds, "index out of bounds").
		WithField(field).
		WithRule("range").
		WithProvided(provided).
		WithExpected(size)
}

// NewInvalidArgumentError builds a generic invalid-argument error with a
// custom message, used for things like negative byte counts.
func NewInvalidArgumentError(field, msg string, provided any) *PathError {
	return NewPathError(nil, ErrorCodeInvalidArgument, msg).
		WithField(field).
		WithProvided(provided)
}
