// Package image provides utilities for loading and preparing images.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/UserUnknownFactor/colorthief/internal/compression"
	"github.com/UserUnknownFactor/colorthief/internal/security"
	httputil "github.com/UserUnknownFactor/colorthief/internal/util/http"
)

// StdinSource is the source name that reads the image from standard input.
const StdinSource = "-"

// DefaultMaxBytes caps raw and decompressed image input.
const DefaultMaxBytes = 256 * 1024 * 1024

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given source.
	Load(ctx context.Context, source string) (image.Image, error)
}

// Decode decodes an image held in memory, transparently unwrapping gzip,
// bzip2, xz and zstd containers first.
func Decode(data []byte, maxBytes int64, logger hclog.Logger) (image.Image, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	raw, compressed, err := compression.Decompress(data, maxBytes)
	if err != nil {
		return nil, err
	}
	if compressed != compression.FormatNone {
		logger.Debug("decompressed input", "format", compressed, "in", len(data), "out", len(raw))
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	logger.Debug("decoded image", "format", format, "bounds", img.Bounds().String())

	return img, nil
}

// FileLoader loads images from the local filesystem.
type FileLoader struct {
	MaxBytes int64
	Logger   hclog.Logger
}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader(logger hclog.Logger) *FileLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FileLoader{MaxBytes: DefaultMaxBytes, Logger: logger}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, optionally compressed.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !IsImageFile(path) && l.Logger != nil {
		l.Logger.Debug("unrecognised extension, detecting format from content", "path", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return readAndDecode(file, l.MaxBytes, l.Logger)
}

func readAndDecode(r io.Reader, maxBytes int64, logger hclog.Logger) (image.Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := io.ReadAll(security.NewLimitedReader(r, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return Decode(data, maxBytes, logger)
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// IsImageFile checks if a file has a supported image extension, ignoring a
// trailing compression suffix.
func IsImageFile(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range []string{".gz", ".bz2", ".xz", ".zst"} {
		lower = strings.TrimSuffix(lower, suffix)
	}
	return slices.Contains(SupportedImageExtensions(), filepath.Ext(lower))
}

// SmartLoader loads images from local files, standard input and HTTPS URLs.
type SmartLoader struct {
	fileLoader  *FileLoader
	stdin       io.Reader
	fetch       httputil.FetchOptions
	validateURL func(string) error
	logger      hclog.Logger
}

// NewSmartLoader creates a new SmartLoader instance reading "-" from stdin.
func NewSmartLoader(stdin io.Reader, logger hclog.Logger) *SmartLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SmartLoader{
		fileLoader:  NewFileLoader(logger),
		stdin:       stdin,
		validateURL: security.ValidateHTTPURL,
		logger:      logger,
	}
}

// Load loads an image from a local path, "-" for stdin, or an HTTPS URL.
func (l *SmartLoader) Load(ctx context.Context, source string) (image.Image, error) {
	switch {
	case source == StdinSource:
		if l.stdin == nil {
			return nil, fmt.Errorf("no standard input available")
		}
		l.logger.Debug("reading image from stdin")
		return readAndDecode(l.stdin, l.fileLoader.MaxBytes, l.logger)
	case security.IsURL(source):
		return l.loadFromURL(ctx, source)
	default:
		l.logger.Debug("reading image file", "path", source)
		return l.fileLoader.Load(ctx, source)
	}
}

// loadFromURL fetches and decodes an image from an HTTPS URL.
func (l *SmartLoader) loadFromURL(ctx context.Context, url string) (image.Image, error) {
	if err := l.validateURL(url); err != nil {
		return nil, err
	}

	l.logger.Debug("fetching image", "url", url)
	data, err := httputil.Fetch(ctx, url, l.fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	return Decode(data, l.fileLoader.MaxBytes, l.logger)
}
