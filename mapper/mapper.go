// Package mapper dispatches an input line to the name of the record kind
// that should parse it, via a small registry of pluggable strategies keyed
// by strategy name. The registry shape is grounded on opener/registry.go's
// scheme-keyed factory map (sync.RWMutex + plain map, duplicate
// registration rejected); the two built-in strategies ("constant" and
// "range") are grounded on the original source's mapper.rs.
package mapper

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/dandyvica/rbf/rbferr"
)

// Dispatcher extracts a record-kind identifier from a raw input line.
type Dispatcher interface {
	Dispatch(line string) (string, error)
}

// Factory builds a Dispatcher from a strategy-specific argument string (the
// schema's <map domain="..."> attribute).
type Factory func(arg string) (Dispatcher, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register associates a strategy name with a Factory. Call from init() in
// the package implementing the strategy. Returns an error if strategy is
// already registered.
func Register(strategy string, f Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[strategy]; ok {
		return fmt.Errorf("mapper: strategy %q already registered", strategy)
	}
	registry[strategy] = f
	return nil
}

// New builds the Dispatcher for strategy, passing it arg. Returns
// *rbferr.UnknownDispatchStrategyError if strategy was never registered.
func New(strategy, arg string) (Dispatcher, error) {
	registryMu.RLock()
	f, ok := registry[strategy]
	registryMu.RUnlock()
	if !ok {
		return nil, &rbferr.UnknownDispatchStrategyError{Strategy: strategy}
	}
	return f(arg)
}

func init() {
	_ = Register("constant", newConstantDispatcher)
	_ = Register("range", newRangeDispatcher)
}

// constantDispatcher always returns the same record-kind name, regardless
// of line content — used when a schema describes a single record kind with
// no per-line discrimination.
type constantDispatcher struct {
	name string
}

func newConstantDispatcher(arg string) (Dispatcher, error) {
	return &constantDispatcher{name: arg}, nil
}

func (d *constantDispatcher) Dispatch(string) (string, error) {
	return d.name, nil
}

// rangeArgGrammar parses "lower..upper" range arguments, mirroring the
// original's `(?P<r_inf>\d+)\.\.(?P<r_sup>\d+)`.
var rangeArgGrammar = regexp.MustCompile(`^(?P<lower>\d+)\.\.(?P<upper>\d+)$`)

// rangeDispatcher returns the byte slice of the line at [lower, upper) as
// the record-kind name — typically a prefix code identifying the record
// kind, such as columns 0..3 of a mainframe extract.
type rangeDispatcher struct {
	lower, upper int
}

func newRangeDispatcher(arg string) (Dispatcher, error) {
	m := rangeArgGrammar.FindStringSubmatch(arg)
	if m == nil {
		return nil, fmt.Errorf("mapper: malformed range argument %q, want \"lower..upper\"", arg)
	}
	lower, _ := strconv.Atoi(m[1])
	upper, _ := strconv.Atoi(m[2])
	return &rangeDispatcher{lower: lower, upper: upper}, nil
}

func (d *rangeDispatcher) Dispatch(line string) (string, error) {
	if d.upper > len(line) {
		return "", &rbferr.DispatchRangeError{Line: line, Lower: d.lower, Upper: d.upper}
	}
	return line[d.lower:d.upper], nil
}
