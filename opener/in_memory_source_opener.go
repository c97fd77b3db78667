package opener

import (
	"bytes"
	"context"
	"io"
)

// InMemorySource implements Opener using an in-memory byte slice, letting
// tests and fixture-driven callers feed reader.Reader fixed-width lines
// directly instead of writing them to the filesystem first.
//
// Example usage, mirroring how reader.NewFromSources consumes a multi-file
// spec:
//
//	srcs := []opener.Opener{
//	    opener.InMemorySource{SourceName: "partA", Data: []byte("0001John      Doe\n")},
//	    opener.InMemorySource{SourceName: "partB", Data: []byte("0002Jane      Roe\n")},
//	}
//
//	r := reader.NewFromSources(srcs, l)
//	defer r.Close()
//
//	for r.Next() {
//	    rec := r.Record()
//	    fmt.Println(rec.Name, rec.Value())
//	}
//
// Production code should prefer real filesystem openers (File, via
// RegularFileOpenerFactory). InMemorySource exists to simplify tests and is
// not optimized for very large datasets.
type InMemorySource struct {
	// Data contains the bytes to be returned by Open().
	Data []byte
	// SourceName identifies the synthetic source, returned by Name().
	SourceName string
}

// Open returns an io.ReadCloser that streams the in-memory data. The
// returned reader is independent of the InMemorySource's buffer and may be
// safely closed by the caller.
//
// Always returns a non-nil ReadCloser and a nil error.
func (s InMemorySource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// Name returns the source identifier associated with this in-memory stream,
// satisfying the Opener interface.
func (s InMemorySource) Name() string {
	return s.SourceName
}
