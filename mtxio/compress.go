// SPDX-License-Identifier: MIT

package mtxio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// NewReader wraps r, transparently decompressing gzip or zstd content.
// Plain text passes through unchanged. Close releases the decompressor but
// never closes r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mtxio: sniff compression: %w", err)
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("mtxio: gzip: %w", err)
		}
		return zr, nil
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("mtxio: zstd: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(br), nil
	}
}

// fileReader closes the decompressor and then the file.
type fileReader struct {
	io.ReadCloser
	f *os.File
}

// Close implements io.Closer.
func (r *fileReader) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.f.Close())
}

// OpenFile opens path for reading with transparent decompression.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mtxio: open %s: %w", path, err)
	}
	rc, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &fileReader{ReadCloser: rc, f: f}, nil
}

// fileWriter flushes the compressor and then closes the file.
type fileWriter struct {
	io.Writer
	closeFn func() error
	f       *os.File
}

// Close implements io.Closer.
func (w *fileWriter) Close() error {
	var err error
	if w.closeFn != nil {
		err = w.closeFn()
	}

	return errors.Join(err, w.f.Close())
}

// CreateFile creates path for writing. Names ending in ".gz" are gzip
// compressed and names ending in ".zst" are zstd compressed.
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("mtxio: create %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".gz":
		zw := gzip.NewWriter(f)
		return &fileWriter{Writer: zw, closeFn: zw.Close, f: f}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("mtxio: zstd: %w", err)
		}
		return &fileWriter{Writer: zw, closeFn: zw.Close, f: f}, nil
	default:
		return &fileWriter{Writer: f, f: f}, nil
	}
}
