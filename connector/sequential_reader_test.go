package connector

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dandyvica/rbf/opener"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll err = %v", err)
	}
	return string(b)
}

func TestSequentialReaderConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	ops := []opener.Opener{
		opener.InMemorySource{SourceName: "a", Data: []byte("ABCDEF\n")},
		opener.InMemorySource{SourceName: "b", Data: []byte("GHIJKL\n")},
	}
	r := NewSequentialReader(context.Background(), ops)
	defer r.Close()

	if got, want := readAll(t, r), "ABCDEF\nGHIJKL\n"; got != want {
		t.Fatalf("readAll = %q, want %q", got, want)
	}
}

func TestSequentialReaderEmptySourcesYieldsEOF(t *testing.T) {
	t.Parallel()

	r := NewSequentialReader(context.Background(), nil)
	defer r.Close()

	buf := make([]byte, 4)
	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("Read err = %v, want io.EOF", err)
	}
}

type failingOpener struct{ err error }

func (f failingOpener) Open(context.Context) (io.ReadCloser, error) { return nil, f.err }
func (f failingOpener) Name() string                                { return "failing" }

func TestSequentialReaderPropagatesOpenError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	ops := []opener.Opener{failingOpener{err: wantErr}}
	r := NewSequentialReader(context.Background(), ops)
	defer r.Close()

	buf := make([]byte, 4)
	if _, err := r.Read(buf); !errors.Is(err, wantErr) {
		t.Fatalf("Read err = %v, want wrapping %v", err, wantErr)
	}
}

func TestSequentialReaderCloseIsIdempotentWithoutOpen(t *testing.T) {
	t.Parallel()

	r := NewSequentialReader(context.Background(), nil)
	if err := r.Close(); err != nil {
		t.Fatalf("Close err = %v, want nil", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close err = %v, want nil", err)
	}
}
