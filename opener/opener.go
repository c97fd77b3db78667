package opener

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Opener is a named, lazily-opened byte source. RegularFileOpenerFactory,
// registered for schemeFile by regular_file_opener_factory.go's init,
// produces File values;
// InMemorySource (in_memory_source_opener.go) is the test-oriented
// alternative used by reader's own tests to avoid touching the filesystem.
type Opener interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// File is an Opener implementation that provides read access to a regular
// filesystem file. It stores the filesystem path and opens the file lazily:
// File does not check for existence or file type at construction time.
//
// The identity of the data source is the cleaned file path returned by Name().
type File struct {
	Path string
}

// NewFile constructs a File opener for a given filesystem path. The path is
// cleaned using filepath.Clean, but no existence or permission checks are
// performed; those occur when Open is called.
func NewFile(path string) File {
	return File{Path: filepath.Clean(path)}
}

// Open attempts to open the underlying file and returns an io.ReadCloser.
// The context is checked before opening; it does not interrupt the
// filesystem call once begun, since os.Open itself is not cancellable.
func (f File) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return os.Open(f.Path)
}

// Name returns the cleaned filesystem path, used as this source's stable
// identity (e.g. in error messages from connector.SequentialReader).
func (f File) Name() string {
	return f.Path
}
