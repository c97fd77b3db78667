package opener

import (
	"fmt"
	"strings"
	"sync"
)

// OpenerFactory resolves a source specification string into one or more
// Openers. A single spec can resolve to more than one Opener: a glob such
// as "data/*.psv" expands to one File opener per matching path, read by
// reader.Reader as a single concatenated stream (connector.SequentialReader).
//
// OpenerFactory is registered by scheme via RegisterOpener.
type OpenerFactory func(spec string) ([]Opener, error)

// RegisterOpener associates a scheme with an OpenerFactory.
//
// This should typically be called from init() within the package that
// implements the opener — regular_file_opener_factory.go does exactly this
// for schemeFile.
//
// Registration is global for the lifetime of the process. Attempting to
// register the same scheme twice returns an error.
func RegisterOpener(scheme schemeType, f OpenerFactory) error {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := openerRegistry[scheme]; ok {
		return fmt.Errorf("opener for scheme %q already registered", scheme)
	}
	openerRegistry[scheme] = f
	return nil
}

// OpenerFromSpec resolves a reader's input spec (as given to reader.New)
// into an ordered list of Openers by inferring its scheme.
//
// Behavior:
//
//   - "file://..." URIs → schemeFile
//   - bare paths and globs (e.g. "data/*.psv") → schemeFile (default
//     fall-through)
//   - any other "scheme://..." prefix → unknown, returns an error
func OpenerFromSpec(spec string) ([]Opener, error) {
	scheme := detectScheme(spec)
	if scheme == schemeUnknown {
		return nil, fmt.Errorf("unknown scheme for %q", spec)
	}
	regMu.RLock()
	f, ok := openerRegistry[scheme]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no opener registered for scheme %q (spec %q)", scheme, spec)
	}
	return f(spec)
}

// schemeType identifies the access mechanism used to retrieve data from a
// source specification.
type schemeType string

const (
	// schemeUnknown indicates that no supported access scheme was detected.
	// OpenerFromSpec treats this as an error.
	schemeUnknown schemeType = "unknown"
	// schemeFile indicates that data should be accessed via local filesystem
	// operations. This applies to both "file://..." URIs and bare paths,
	// including glob patterns.
	schemeFile schemeType = "file"
)

var (
	openerRegistry = map[schemeType]OpenerFactory{}
	regMu          sync.RWMutex
)

func detectScheme(spec string) schemeType {
	spec = strings.ToLower(strings.TrimSpace(spec))
	switch {
	case strings.HasPrefix(spec, "file://"):
		return schemeFile
	case !strings.Contains(spec, "://"):
		return schemeFile
	default:
		return schemeUnknown
	}
}
