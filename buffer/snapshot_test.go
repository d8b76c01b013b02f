package buffer

import (
	"strings"
	"testing"

	"github.com/iamNilotpal/octet/pkg/config"
)

func TestSnapshotBelowThresholdIsContiguous(t *testing.T) {
	b := New()
	b.WriteString("hello world")
	bs, err := b.Snapshot(5)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if bs.Utf8() != "hello" {
		t.Fatalf("Snapshot content = %q, want hello", bs.Utf8())
	}
	if b.Size() != 11 {
		t.Fatalf("Snapshot must not consume the buffer, size = %d", b.Size())
	}
}

func TestSnapshotAboveThresholdIsSegmented(t *testing.T) {
	b := New()
	payload := strings.Repeat("x", int(config.DefaultSnapshotThreshold)+100)
	b.WriteString(payload)

	bs, err := b.Snapshot(int64(len(payload)))
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if bs.Size() != len(payload) {
		t.Fatalf("Snapshot size = %d, want %d", bs.Size(), len(payload))
	}
	if bs.Utf8() != payload {
		t.Fatalf("Snapshot content mismatch")
	}
}
