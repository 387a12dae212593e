package sceneasset

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/flate"
)

// ZipHandle is a shared, reference-counted handle onto a zip archive held
// entirely in memory. It builds a filename-to-entry index once, eagerly,
// so Read never pays archive/zip's linear Open scan. The index is not
// modified after construction until the last Release drops it, so Read is
// safe to call concurrently from any goroutine while the handle is held.
type ZipHandle struct {
	reader *zip.Reader
	index  map[string]*zip.File
	refs   atomic.Int64
}

// newZipHandle opens data as a zip archive and indexes its entries. The
// deflate decompressor is swapped for klauspost/compress/flate's, which is
// a drop-in replacement that decodes substantially faster than the
// standard library's.
func newZipHandle(data []byte) (*ZipHandle, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("sceneasset: opening zip archive: %w", err)
	}
	reader.RegisterDecompressor(zip.Deflate, flate.NewReader)

	index := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		index[f.Name] = f
		index["/"+f.Name] = f
	}

	h := &ZipHandle{reader: reader, index: index}
	h.refs.Store(1)
	return h, nil
}

// Read extracts the named entry's contents. path may be given with or
// without a leading slash; both forms are indexed.
func (h *ZipHandle) Read(path string) ([]byte, error) {
	f, ok := h.index[path]
	if !ok {
		f, ok = h.index[strings.TrimPrefix(path, "/")]
	}
	if !ok {
		return nil, fmt.Errorf("sceneasset: %q not found in archive", path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("sceneasset: opening %q: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("sceneasset: reading %q: %w", path, err)
	}
	return data, nil
}

// Retain increments the reference count and returns h, for sharing the
// handle with another Asset drawn from the same bundle.
func (h *ZipHandle) Retain() *ZipHandle {
	h.refs.Add(1)
	return h
}

// Release decrements the reference count. When it reaches zero the handle
// drops its reference to the underlying archive.
func (h *ZipHandle) Release() {
	if h.refs.Add(-1) == 0 {
		h.reader = nil
		h.index = nil
	}
}
