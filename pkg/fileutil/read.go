// Package fileutil provides safe file reading and atomic write helpers.
package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/sklint/internal/errors"
)

// MaxFileSize is the maximum file size for skill and config files (1MB).
// Skill definitions are prose plus a small header; anything larger is
// almost certainly a mistake.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates a file exceeds the size limit.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file with a size limit to prevent memory issues.
// Returns ErrFileTooLarge if the file exceeds maxSize.
func ReadFileWithLimit(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stating %s", path)
	}
	if info.Size() > maxSize {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes", path, info.Size())
	}

	// LimitReader guards against the file growing between Stat and Read.
	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if int64(len(data)) > maxSize {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s", path)
	}

	return data, nil
}

// ReadFile reads a file with the default size limit.
func ReadFile(path string) ([]byte, error) {
	return ReadFileWithLimit(path, MaxFileSize)
}
