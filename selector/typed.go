package selector

import "github.com/iamNilotpal/octet/bytestring"

// TypedOptions pairs an Options trie with a parallel list of caller
// values, so a successful match returns the caller's value directly
// instead of an index to look up themselves.
type TypedOptions[T any] struct {
	options *Options
	values  []T
}

// TypedOf builds a TypedOptions from a value-to-byte-string mapping,
// preserving the pairing between each value and its encoded form.
func TypedOf[T comparable](pairs map[T]bytestring.ByteString) (*TypedOptions[T], error) {
	values := make([]T, 0, len(pairs))
	byteStrings := make([]bytestring.ByteString, 0, len(pairs))
	for v, bs := range pairs {
		values = append(values, v)
		byteStrings = append(byteStrings, bs)
	}

	opts, err := New(byteStrings...)
	if err != nil {
		return nil, err
	}
	return &TypedOptions[T]{options: opts, values: values}, nil
}

// Select returns the value associated with the matched option, or the
// zero value and false if SelectPrefix did not find a match.
func (t *TypedOptions[T]) Select(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(t.values) {
		return zero, false
	}
	return t.values[idx], true
}

// Options exposes the underlying untyped trie, e.g. for BufferedSource.Select.
func (t *TypedOptions[T]) Options() *Options { return t.options }
