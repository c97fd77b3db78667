// Package reader streams a record-based flat file one line at a time,
// dispatching each line to a record template and yielding a populated
// clone. Its Next/Record/Err/Close shape and sticky-error-then-done
// bookkeeping are grounded on transform/transform_impl.go's
// mappedIterator[T] — the teacher's generic decode-then-map iterator,
// generalized here to a fixed (stats, record) pair instead of a
// type-parameterized mapper result.
//
// A reader's input spec may match more than one file (a glob, e.g.
// "data/*.psv"): opener.RegularFileOpenerFactory resolves it to an ordered
// list of openers, and connector.NewSequentialReader concatenates them into
// one byte stream, opening each in turn rather than handing the scanner an
// *os.File directly.
package reader

import (
	"bufio"
	"context"
	"io"
	"os"
	"regexp"

	"github.com/dandyvica/rbf/connector"
	"github.com/dandyvica/rbf/layout"
	"github.com/dandyvica/rbf/opener"
	"github.com/dandyvica/rbf/rbferr"
	"github.com/dandyvica/rbf/record"
	"github.com/sirupsen/logrus"
)

// Lazyness selects the reader's behavior when a dispatched record-kind
// identifier has no matching template in the layout.
type Lazyness int

const (
	// Lazy skips the line, counting it in Stats.LinesSkipped.
	Lazy Lazyness = iota
	// Strict terminates iteration with an *rbferr.UnknownRecordError.
	Strict
)

// Stats tracks a reader's progress through its input, refreshed before
// every yielded record.
type Stats struct {
	LinesRead    int
	LinesSkipped int
	LinesIgnored int
	BytesRead    int64
	BytesTotal   int64
}

// ignoreNothing is the default ignore-line pattern: it matches nothing, so
// every line is a candidate for dispatch.
var ignoreNothing = regexp.MustCompile(`$.`)

// Reader is a one-shot forward cursor over an input spec's lines. It is
// not restartable without re-resolving the spec; dropping it (Close)
// releases the underlying source(s). There is no shared mutable state
// beyond the reader itself — the layout it reads against is immutable
// after load.
type Reader struct {
	src    *connector.SequentialReader
	scan   *bufio.Scanner
	layout *layout.Layout
	log    *logrus.Logger

	lazyness   Lazyness
	ignoreLine *regexp.Regexp

	stats Stats
	cur   *record.Record
	err   error
	done  bool
}

// Option configures a Reader during New.
type Option func(*Reader)

// WithLogger installs a logrus logger the reader emits Debug-level
// per-line diagnostics to (see SPEC_FULL.md §2's ambient logging policy).
func WithLogger(log *logrus.Logger) Option {
	return func(r *Reader) { r.log = log }
}

// WithLazyness overrides the reader's default lazyness mode. Without this
// option, New defaults to Strict, unless the layout has been pruned via
// Layout.Retain, in which case it defaults to Lazy — a dispatched record id
// outside the retained set is then expected, not exceptional.
func WithLazyness(mode Lazyness) Option {
	return func(r *Reader) { r.lazyness = mode }
}

// WithIgnoreLine installs the regex used to skip input lines entirely
// before dispatch.
func WithIgnoreLine(re *regexp.Regexp) Option {
	return func(r *Reader) { r.ignoreLine = re }
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// New resolves spec (a plain path or a glob such as "data/*.psv") to one or
// more openers via opener.OpenerFromSpec, concatenates them into a single
// byte stream, and prepares a Reader against l. The total-size snapshot
// (Stats.BytesTotal) sums every resolved file's size at open time, before
// any bytes are read. Specs with an explicit non-file scheme (e.g.
// "s3://...") are rejected by opener.OpenerFromSpec with an error.
func New(spec string, l *layout.Layout, opts ...Option) (*Reader, error) {
	ops, err := opener.OpenerFromSpec(spec)
	if err != nil {
		return nil, err
	}

	// BytesTotal is a best-effort snapshot: only regular-file openers have a
	// filesystem size to report. Non-file schemes (e.g. a future s3://
	// opener) simply leave their contribution at zero.
	var total int64
	for _, op := range ops {
		f, ok := op.(opener.File)
		if !ok {
			continue
		}
		info, err := os.Stat(f.Path)
		if err != nil {
			return nil, err
		}
		total += info.Size()
	}

	ctx := context.Background()
	src := connector.NewSequentialReader(ctx, ops)

	r := &Reader{
		src:        src,
		scan:       bufio.NewScanner(src),
		layout:     l,
		log:        discardLogger(),
		lazyness:   Strict,
		ignoreLine: ignoreNothing,
		stats:      Stats{BytesTotal: total},
	}
	if l.Pruned() {
		r.lazyness = Lazy
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewFromSources prepares a Reader directly from a list of openers,
// bypassing filesystem glob resolution. Used by tests and by callers
// feeding non-file sources (e.g. opener.InMemorySource); BytesTotal is left
// at zero since in-memory sources have no filesystem size to snapshot.
func NewFromSources(ops []opener.Opener, l *layout.Layout, opts ...Option) *Reader {
	ctx := context.Background()
	src := connector.NewSequentialReader(ctx, ops)

	r := &Reader{
		src:        src,
		scan:       bufio.NewScanner(src),
		layout:     l,
		log:        discardLogger(),
		lazyness:   Strict,
		ignoreLine: ignoreNothing,
	}
	if l.Pruned() {
		r.lazyness = Lazy
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLazyness changes the reader's unknown-record policy between lines.
func (r *Reader) SetLazyness(mode Lazyness) { r.lazyness = mode }

// IgnoreLine installs a new ignore-line pattern between lines.
func (r *Reader) IgnoreLine(re *regexp.Regexp) { r.ignoreLine = re }

// FileSize returns the input file's size in bytes, snapshotted at open.
func (r *Reader) FileSize() int64 { return r.stats.BytesTotal }

// Stats returns a snapshot of the reader's running counters.
func (r *Reader) Stats() Stats { return r.stats }

// Next advances to the next matching record, returning false at
// end-of-file or once an error has occurred — callers must check Err()
// after a false return to distinguish the two. Strict-mode dispatch misses
// surface through Err(); they do not panic.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}

	for r.scan.Scan() {
		line := r.scan.Text()
		r.stats.LinesRead++
		r.stats.BytesRead += int64(len(line))

		if r.ignoreLine.MatchString(line) {
			r.stats.LinesIgnored++
			continue
		}

		id, err := r.layout.Mapper.Dispatch(line)
		if err != nil {
			r.err = err
			r.done = true
			return false
		}

		template := r.layout.Get(id)
		if template == nil {
			if r.lazyness == Lazy {
				r.stats.LinesSkipped++
				continue
			}
			r.err = &rbferr.UnknownRecordError{LineNo: r.stats.LinesRead, DispatchedID: id}
			r.done = true
			return false
		}

		rec := template.Clone()
		rec.SetValue(line)
		r.cur = rec
		r.log.WithField("record", rec.Name).Debug("reader: yielded record")
		return true
	}

	if err := r.scan.Err(); err != nil {
		r.err = err
	}
	r.done = true
	return false
}

// Record returns the record populated by the most recent successful Next.
func (r *Reader) Record() *record.Record { return r.cur }

// Err returns the first error encountered, or nil if none. A nil Err()
// after Next returns false means the input was exhausted normally.
func (r *Reader) Err() error { return r.err }

// Close releases the underlying source(s).
func (r *Reader) Close() error {
	r.done = true
	return r.src.Close()
}
