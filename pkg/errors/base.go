package errors

// baseError is the shared error representation every domain error in this
// taxonomy embeds: a message, a code, an optional cause, a lazily
// allocated detail bag, and a retryability hint a caller can use to decide
// whether failing the same operation again is ever worth attempting (spec
// §5's cancellation/timeout model draws exactly this distinction — a
// cancelled or closed stream never recovers, while a generic I/O hiccup
// crossing the Source/Sink boundary sometimes does).
type baseError struct {
	cause     error          // The original error that caused this one, if any.
	message   string         // Human-readable description surfaced by Error().
	code      ErrorCode      // Programmatic category from the taxonomy in codes.go.
	details   map[string]any // Lazily allocated structured context (path, offset, field, ...).
	retryable bool           // Whether retrying the same operation could succeed.
}

// NewBaseError constructs a baseError wrapping err (nil for a fresh
// failure) under the given code and message. retryable defaults per code:
// see defaultRetryable.
func NewBaseError(err error, code ErrorCode, msg string) *baseError {
	return &baseError{cause: err, code: code, message: msg, retryable: defaultRetryable(code)}
}

// defaultRetryable reports whether a freshly constructed error of the
// given code should start out retryable before a caller overrides it with
// WithRetryable. A generic, unclassified I/O failure crossing the
// Source/Sink boundary is often a transient hiccup worth retrying; every
// other code in the taxonomy names a condition that retrying cannot fix on
// its own (EOF and a closed stream are terminal, a bad argument stays bad,
// a path that resolved to nothing stays gone).
func defaultRetryable(code ErrorCode) bool {
	return code == ErrorCodeIO
}

// WithMessage replaces the error message, used when a caller wants to
// refine the description after the error has already been constructed
// (e.g. once more context becomes available partway through a call).
func (be *baseError) WithMessage(msg string) *baseError {
	be.message = msg
	return be
}

// WithCode overrides the error's category. Useful when a helper builds an
// error speculatively and only learns the precise code once it has
// inspected the underlying cause (see ClassifyOpenError).
func (be *baseError) WithCode(code ErrorCode) *baseError {
	be.code = code
	return be
}

// WithRetryable overrides whether retrying the same operation could ever
// succeed, superseding the code-based default from defaultRetryable.
func (be *baseError) WithRetryable(retryable bool) *baseError {
	be.retryable = retryable
	return be
}

// WithDetail attaches one piece of structured context (a path, a byte
// offset, a field name) to the error, allocating the detail map on first
// use so an error with no details costs nothing beyond the struct itself.
func (be *baseError) WithDetail(key string, value any) *baseError {
	if be.details == nil {
		be.details = make(map[string]any)
	}
	be.details[key] = value
	return be
}

// Error implements the error interface with the human-readable message.
func (b *baseError) Error() string {
	return b.message
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As can see through
// this error to whatever underlying failure produced it.
func (b *baseError) Unwrap() error {
	return b.cause
}

// Code returns the error's taxonomy category for programmatic branching,
// the preferred alternative to matching against Error()'s message text.
func (b *baseError) Code() ErrorCode {
	return b.code
}

// Retryable reports whether the operation that produced this error might
// succeed if attempted again unchanged. Callers driving retry loops around
// a raw Source/Sink (spec §5) should check this before looping.
func (b *baseError) Retryable() bool {
	return b.retryable
}

// Details returns the structured context attached via WithDetail. The
// returned map is the error's own backing map, not a copy.
func (b *baseError) Details() map[string]any {
	return b.details
}

// Fields flattens code, retryability, cause, and every detail into the
// flat key-value sequence go.uber.org/zap's SugaredLogger methods expect,
// so any error in this taxonomy can be logged structurally with a single
// call (log.Errorw(err.Error(), err.Fields()...)) instead of a caller
// re-deriving the same pairs from Code()/Details() at each call site.
func (b *baseError) Fields() []any {
	fields := make([]any, 0, 4+2*len(b.details))
	fields = append(fields, "code", string(b.code), "retryable", b.retryable)
	for k, v := range b.details {
		fields = append(fields, k, v)
	}
	if b.cause != nil {
		fields = append(fields, "cause", b.cause.Error())
	}
	return fields
}
