package radarcore

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/golang/glog"

	"github.com/wxradar/radarcore/internal"
	"github.com/wxradar/radarcore/raster"
)

var fieldPool = internal.NewFloatBufferPool()

// Process is the pipeline's single entry point: gzip-decompress a single
// MRMS RALA GRIB2 message, parse it, unpack its reflectivity field, render
// it to a north-up PNG, and emit alignment metadata.
//
// Failures at any step propagate as one of the tagged error types in
// errors.go. Process owns no state between calls and is safe to invoke
// concurrently; it reuses a process-wide float buffer pool for the decoded
// field, which callers do not need to manage.
func Process(compressedBytes []byte) ([]byte, Metadata, error) {
	glog.V(1).Infof("radarcore: decompressing %d bytes", len(compressedBytes))
	raw, err := decompress(compressedBytes)
	if err != nil {
		glog.Errorf("radarcore: decompression failed: %v", err)
		return nil, Metadata{}, wrapDecompressionFailed("gzip decompression failed", err)
	}

	glog.V(1).Infof("radarcore: parsing %d bytes of GRIB2 message", len(raw))
	msg, err := ParseMessage(raw)
	if err != nil {
		glog.Errorf("radarcore: failed to parse GRIB2 message: %v", err)
		return nil, Metadata{}, err
	}

	if msg.Section5.Representation.TemplateNumber() == 40 {
		glog.Warningf("radarcore: message uses Template 5.40 (JPEG 2000 approximation); rendered values are not quantitatively correct")
	}

	decoded, err := msg.DecodeData()
	if err != nil {
		glog.Errorf("radarcore: failed to decode data: %v", err)
		return nil, Metadata{}, err
	}

	field := fieldPool.Get(len(decoded))
	copy(field, decoded)
	defer fieldPool.Put(field)

	g := msg.Section3.Grid
	glog.V(1).Infof("radarcore: rendering %dx%d raster", g.Width(), g.Height())
	pngBytes, err := raster.Render(field, g.Width(), g.Height(), g.ScanningMode())
	if err != nil {
		glog.Errorf("radarcore: render failed: %v", err)
		return nil, Metadata{}, wrapRenderFailed("PNG encode failed", err)
	}

	meta := Metadata{
		Timestamp: msg.Section1.ReferenceTime,
		Bounds:    g.Bounds(),
		Width:     g.Width(),
		Height:    g.Height(),
	}

	return pngBytes, meta, nil
}

// UsesApproximatePacking reports whether msg's Section 5 uses Template 5.40
// (JPEG 2000), the one packing path whose rendered values are always an
// approximation rather than a faithful decode. Exposed for callers (the CLI's
// -warn-approximate flag) that want to fail a run on a degraded product
// rather than silently emit approximated values.
func UsesApproximatePacking(msg *Message) bool {
	return msg.Section5 != nil && msg.Section5.Representation != nil && msg.Section5.Representation.TemplateNumber() == 40
}

// decompress gzip-decompresses a single-member gzip stream.
func decompress(compressed []byte) ([]byte, error) {
	return Decompress(compressed)
}

// Decompress gzip-decompresses a single-member gzip stream, exposed so
// callers that need to inspect a message before committing to a full
// Process call (the CLI's -warn-approximate check) don't have to
// reimplement it.
func Decompress(compressed []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
