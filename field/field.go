// Package field implements a record's named, typed, fixed-width slices:
// construction by length or by 1-based offset, value assignment from a
// slicing boundary chosen by the containing record, pattern validation and
// filter evaluation.
package field

import (
	"strings"

	"github.com/dandyvica/rbf/filter"
	"github.com/dandyvica/rbf/types"
)

// CreationKind records whether a Field's bounds were computed from a single
// length (contiguous with its neighbours) or given as explicit offsets.
type CreationKind int

const (
	ByLength CreationKind = iota
	ByOffset
)

// Field is a named slice-with-metadata inside a Record. Its bounds
// (LowerOffset/UpperOffset/Length) are assigned by Record.Push when the
// field is appended to a record, not at construction time for
// ByLength fields — see record.Record.Push.
type Field struct {
	Name        string
	Description string
	Length      int
	Type        *types.FieldType

	RawValue string
	StrValue string

	OriginOffset int
	Index        int
	LowerOffset  int
	UpperOffset  int
	Multiplicity int
	CellSize     int
	Creation     CreationKind
	ID           string
}

// NewByLength creates a field defined by a single length; its offsets are
// filled in positionally when it is appended to a record. Panics if name is
// empty or length is zero — construction-time invariant violations.
func NewByLength(name, description string, ft *types.FieldType, length int) *Field {
	if name == "" {
		panic("field: cannot create a field with an empty name")
	}
	if length == 0 {
		panic("field: cannot create a field with a zero length")
	}
	return &Field{
		Name:        name,
		Description: description,
		Length:      length,
		Type:        ft,
		CellSize:    max(length, len(name)),
		Creation:    ByLength,
	}
}

// NewByOffset creates a field defined by explicit 1-based, inclusive lower
// and upper bounds, stored internally 0-based. Panics if name is empty or
// lower > upper.
func NewByOffset(name, description string, ft *types.FieldType, lower1, upper1 int) *Field {
	if name == "" {
		panic("field: cannot create a field with an empty name")
	}
	if lower1 > upper1 {
		panic("field: lower offset greater than upper offset")
	}
	length := upper1 - lower1 + 1
	return &Field{
		Name:        name,
		Description: description,
		Length:      length,
		Type:        ft,
		LowerOffset: lower1 - 1,
		UpperOffset: upper1 - 1,
		CellSize:    max(length, len(name)),
		Creation:    ByOffset,
	}
}

// SetValue sets the raw value verbatim and the trimmed value derived from
// it. The slicing boundary that produced val is chosen by the containing
// record's slicing mode, not by the field itself.
func (f *Field) SetValue(val string) {
	f.RawValue = val
	f.StrValue = strings.TrimSpace(val)
}

// Value returns the whitespace-trimmed value.
func (f *Field) Value() string { return f.StrValue }

// Len returns the field's length in its slicing mode's unit.
func (f *Field) Len() int { return f.Length }

// IsPatternMatched reports whether the raw value matches the field type's
// validation pattern. A field type with no explicit pattern always matches.
func (f *Field) IsPatternMatched() bool {
	return f.Type.Pattern.MatchString(f.RawValue)
}

// IsFilterMatched evaluates a single field-level predicate using this
// field's type as the comparator for ordering/equality operators, or a
// regex match/non-match for the similarity operators.
func (f *Field) IsFilterMatched(ff *filter.FieldFilter) (bool, error) {
	switch ff.Op {
	case filter.OpEqual:
		return f.Type.Comparator.Equal(f.Value(), ff.RHS)
	case filter.OpNotEqual:
		eq, err := f.Type.Comparator.Equal(f.Value(), ff.RHS)
		return !eq, err
	case filter.OpLessThan:
		return f.Type.Comparator.Less(f.Value(), ff.RHS)
	case filter.OpGreaterThan:
		return f.Type.Comparator.Greater(f.Value(), ff.RHS)
	case filter.OpSimilar:
		re, err := ff.Regexp()
		if err != nil {
			return false, err
		}
		return re.MatchString(f.Value()), nil
	case filter.OpNotSimilar:
		re, err := ff.Regexp()
		if err != nil {
			return false, err
		}
		return !re.MatchString(f.Value()), nil
	default:
		panic("field: unhandled filter operator")
	}
}

// Clone returns a deep copy safe to mutate independently of f: it is used
// to turn a layout's record templates into one live populated record per
// reader yield.
func (f *Field) Clone() *Field {
	cp := *f
	return &cp
}
