package vfs

import (
	"github.com/iamNilotpal/octet/buffer"
	"github.com/iamNilotpal/octet/iostream"
	"github.com/iamNilotpal/octet/pkg/config"
)

// streamCopy pulls segment-sized chunks from source and commits them to
// sink, the same staging discipline BufferedSink.WriteAll uses, without
// requiring callers to stand up a full BufferedSink for a one-shot copy.
func streamCopy(source iostream.Source, sink iostream.Sink) error {
	cfg := config.NewDefault()
	staging := buffer.New()
	chunk := int64(cfg.SegmentSize)
	for {
		n, err := source.Read(staging, chunk)
		if err != nil {
			return err
		}
		if n == -1 {
			break
		}
		if err := sink.Write(staging, n); err != nil {
			return err
		}
	}
	return nil
}
