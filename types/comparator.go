// Package types implements the small closed family of base datatypes a
// field can hold — string, signed int, unsigned int, decimal, date, time —
// each exposing equality/less-than/greater-than over string-encoded
// operands, plus the field-type registry that wraps a base datatype with an
// id, an optional validation pattern and an optional format string.
package types

import (
	"regexp"

	"github.com/dandyvica/rbf/rbferr"
)

// Comparator compares two string-encoded operands of a single base
// datatype. Equal/Less/Greater parse both operands to the comparator's
// native representation before comparing; a parse failure is reported as a
// *rbferr.TypedCompareError rather than panicking, since it can be driven by
// arbitrary filter input at run time (see rbferr's doc comment on the
// load-time/run-time error split).
type Comparator interface {
	// Name is the base datatype name as it appears in a schema's
	// <fieldtype type=...> attribute.
	Name() string

	// SetFormat configures the layout used to parse date/time operands.
	// It is a no-op for comparators that do not need one.
	SetFormat(format string)

	// Format returns the configured format, or "" if none was set.
	Format() string

	Equal(lhs, rhs string) (bool, error)
	Less(lhs, rhs string) (bool, error)
	Greater(lhs, rhs string) (bool, error)
}

// NewComparator builds the Comparator for a base datatype name. Unknown
// names are a configuration error, reported to the caller rather than
// panicking since this is invoked from schema load (§4.1/§4.2 of the
// layout engine's design).
func NewComparator(baseType string) (Comparator, error) {
	switch baseType {
	case "string":
		return &stringComparator{}, nil
	case "int":
		return &signedIntComparator{}, nil
	case "uint":
		return &unsignedIntComparator{}, nil
	case "decimal":
		return &decimalComparator{}, nil
	case "date":
		return &dateComparator{}, nil
	case "time":
		return &timeComparator{}, nil
	default:
		return nil, &rbferr.UnknownBaseTypeError{BaseType: baseType}
	}
}

// FieldType is a named wrapper around a base datatype: an id fields refer
// back to, the base datatype's comparator, and an optional validation
// pattern. FieldType is immutable once built except for SetPattern and
// SetFormat during schema load; many fields share one FieldType by pointer.
type FieldType struct {
	ID         string
	TypeName   string
	Comparator Comparator
	Pattern    *regexp.Regexp
}

// NewFieldType creates a FieldType with an id and base datatype name.
// Panics if id is empty — a construction-time invariant violation, not a
// recoverable error.
func NewFieldType(id, typeName string) (*FieldType, error) {
	if id == "" {
		panic("types: cannot create a FieldType with an empty id")
	}
	cmp, err := NewComparator(typeName)
	if err != nil {
		return nil, err
	}
	return &FieldType{
		ID:         id,
		TypeName:   typeName,
		Comparator: cmp,
		Pattern:    matchAnything,
	}, nil
}

// matchAnything is the default pattern: an empty regex matches any string,
// mirroring the original's Regex::new("").
var matchAnything = regexp.MustCompile("")

// SetPattern compiles and installs the validation pattern for this field
// type. An unparseable regex is a configuration error from schema load.
func (ft *FieldType) SetPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	ft.Pattern = re
	return nil
}

// SetFormat configures the date/time format string used by this field
// type's comparator.
func (ft *FieldType) SetFormat(format string) {
	ft.Comparator.SetFormat(format)
}
