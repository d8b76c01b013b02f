package errors

import "testing"

func TestBaseErrorDefaultRetryable(t *testing.T) {
	if !NewIOError(nil, ErrorCodeIO, "transient").Retryable() {
		t.Fatalf("a generic IO error should default to retryable")
	}
	if NewCodecError(nil, ErrorCodeProtocol, "bad base64").Retryable() {
		t.Fatalf("a codec error should default to non-retryable")
	}
	if NewIOError(nil, ErrorCodeFileNotFound, "gone").Retryable() {
		t.Fatalf("a file-not-found error should default to non-retryable")
	}
}

func TestBaseErrorWithRetryableOverride(t *testing.T) {
	err := NewIOError(nil, ErrorCodeIO, "flaky mount").WithRetryable(false)
	if err.Retryable() {
		t.Fatalf("WithRetryable(false) should stick")
	}
}

func TestBaseErrorFields(t *testing.T) {
	err := NewIOError(nil, ErrorCodePermissionDenied, "denied").
		WithPath("/tmp/x").
		WithFileName("x")

	fields := err.Fields()
	got := map[string]any{}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			t.Fatalf("field key at %d is not a string: %v", i, fields[i])
		}
		got[key] = fields[i+1]
	}

	if got["code"] != string(ErrorCodePermissionDenied) {
		t.Fatalf("fields missing code, got %v", got)
	}
	if got["retryable"] != false {
		t.Fatalf("fields missing retryable=false, got %v", got)
	}
	if got["path"] != "/tmp/x" {
		t.Fatalf("fields missing detail path, got %v", got)
	}
}
