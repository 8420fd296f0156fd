// Package compression detects and unwraps compressed image data.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/UserUnknownFactor/colorthief/internal/security"
)

// DefaultMaxSize bounds the decompressed size of a single input.
const DefaultMaxSize = 256 * 1024 * 1024

// Format identifies a compression container.
type Format string

// Supported formats.
const (
	FormatNone  Format = ""
	FormatGzip  Format = "gzip"
	FormatBzip2 Format = "bzip2"
	FormatXz    Format = "xz"
	FormatZstd  Format = "zstd"
)

var magic = []struct {
	format Format
	prefix []byte
}{
	{FormatGzip, []byte{0x1f, 0x8b}},
	{FormatBzip2, []byte("BZh")},
	{FormatXz, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
	{FormatZstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
}

// Detect returns the compression format of data from its magic bytes.
func Detect(data []byte) Format {
	for _, m := range magic {
		if bytes.HasPrefix(data, m.prefix) {
			return m.format
		}
	}
	return FormatNone
}

// Decompress unwraps data if it starts with a known magic number and returns
// it unchanged otherwise. Output larger than maxSize is an error; maxSize <= 0
// means DefaultMaxSize.
func Decompress(data []byte, maxSize int64) ([]byte, Format, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	format := Detect(data)
	var r io.Reader
	switch format {
	case FormatNone:
		return data, format, nil
	case FormatGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, format, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case FormatBzip2:
		r = bzip2.NewReader(bytes.NewReader(data))
	case FormatXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, format, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case FormatZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, format, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, maxSize))
	if err != nil {
		return nil, format, fmt.Errorf("failed to decompress %s data: %w", format, err)
	}
	return out, format, nil
}
