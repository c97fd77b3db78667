// Package record implements a record-kind template: an ordered list of
// fields sharing a name, the bookkeeping Record.Push performs to compute
// each field's bounds as it is appended, and the two interchangeable
// slicing modes that turn a raw input line into per-field values.
package record

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dandyvica/rbf/field"
	"github.com/dandyvica/rbf/filter"
)

// SlicingMode selects the unit (byte or codepoint) in which a record's
// field offsets are interpreted. The original Rust source expresses this
// as a type-parameter marker (AsciiMode/UTF8Mode); a runtime flag is the
// idiomatic Go equivalent in a garbage-collected target with no
// monomorphization to exploit (see SPEC_FULL.md design notes).
type SlicingMode int

const (
	// ModeASCII slices by byte range: line[lower:upper+1], upper inclusive. O(1) per field,
	// correct only when every byte is a single codepoint.
	ModeASCII SlicingMode = iota
	// ModeUTF8 slices by codepoint range: skip lower codepoints, take
	// length codepoints. O(n) per field.
	ModeUTF8
)

// Record is a record-kind template: a name, an ordered field list, and the
// bookkeeping needed to slice a raw line into those fields. A Record used
// as a layout's template is never mutated by SetValue directly — Clone it
// first (see (*Record).Clone), matching the "one live populated record per
// yield" lifecycle from the layout engine's design.
type Record struct {
	Name             string
	Description      string
	DeclaredLength   int
	Fields           []*field.Field
	CalculatedLength int
	Mode             SlicingMode
}

// New creates an empty Record. Panics if name is empty.
func New(name, description string, declaredLength int, mode SlicingMode) *Record {
	if name == "" {
		panic("record: cannot create a record with an empty name")
	}
	return &Record{
		Name:           name,
		Description:    description,
		DeclaredLength: declaredLength,
		Mode:           mode,
	}
}

// Push appends f to the record, assigning its index, its origin offset
// (the record's calculated length before this push), and recomputing its
// bounds:
//
//   - ByLength fields get bounds contiguous with the previous field, and
//     extend the calculated length by f.Length.
//   - ByOffset fields set the calculated length to their own upper bound
//     plus one, if that exceeds the current length.
//
// If a field with the same name was already present, the new field's
// Multiplicity is one past the highest existing multiplicity for that
// name, and its ID becomes "name+multiplicity".
func (r *Record) Push(f *field.Field) {
	f.Index = len(r.Fields)
	f.OriginOffset = r.CalculatedLength

	switch f.Creation {
	case field.ByLength:
		f.LowerOffset = f.OriginOffset
		f.UpperOffset = f.OriginOffset + f.Length - 1
		r.CalculatedLength += f.Length
	case field.ByOffset:
		if f.UpperOffset+1 > r.CalculatedLength {
			r.CalculatedLength = f.UpperOffset + 1
		}
	}

	maxMultiplicity := -1
	for _, existing := range r.Fields {
		if existing.Name == f.Name && existing.Multiplicity > maxMultiplicity {
			maxMultiplicity = existing.Multiplicity
		}
	}
	f.Multiplicity = maxMultiplicity + 1
	f.ID = fmt.Sprintf("%s%d", f.Name, f.Multiplicity)

	r.Fields = append(r.Fields, f)
}

// ContainsField reports whether any field in the record carries name.
func (r *Record) ContainsField(name string) bool {
	for _, f := range r.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Count returns the number of fields in the record.
func (r *Record) Count() int { return len(r.Fields) }

// Filter returns all fields matching pred, in append order, or nil if none
// match.
func (r *Record) Filter(pred func(*field.Field) bool) []*field.Field {
	var result []*field.Field
	for _, f := range r.Fields {
		if pred(f) {
			result = append(result, f)
		}
	}
	return result
}

// Get returns all fields named name, in append order, or nil if absent —
// a record may legitimately carry duplicated field names (e.g. arrays of
// occurrences), so the return value is always a slice rather than a single
// field.
func (r *Record) Get(name string) []*field.Field {
	return r.Filter(func(f *field.Field) bool { return f.Name == name })
}

// Retain keeps only fields matching pred, in place.
func (r *Record) Retain(pred func(*field.Field) bool) {
	kept := r.Fields[:0]
	for _, f := range r.Fields {
		if pred(f) {
			kept = append(kept, f)
		}
	}
	r.Fields = kept
}

// Remove drops fields matching pred, in place.
func (r *Record) Remove(pred func(*field.Field) bool) {
	r.Retain(func(f *field.Field) bool { return !pred(f) })
}

// Value concatenates the raw values of every field in order. It is the
// inverse of SetValue for a line whose length matches the record's
// calculated length exactly.
func (r *Record) Value() string {
	var b strings.Builder
	for _, f := range r.Fields {
		b.WriteString(f.RawValue)
	}
	return b.String()
}

// GetValue returns the trimmed value of the first field named name. Panics
// if no field has that name — mirrors the original's fail-fast behaviour
// for a programming-level lookup error.
func (r *Record) GetValue(name string) string {
	fields := r.Get(name)
	if fields == nil {
		panic(fmt.Sprintf("record: field %q not found in record %q", name, r.Name))
	}
	return fields[0].Value()
}

// GetValueWithIndex returns the trimmed value of the k-th occurrence of
// fields named name (0-based). Panics if the name is absent or k is out of
// range.
func (r *Record) GetValueWithIndex(name string, k int) string {
	fields := r.Get(name)
	if fields == nil {
		panic(fmt.Sprintf("record: field %q not found in record %q", name, r.Name))
	}
	if k < 0 || k >= len(fields) {
		panic(fmt.Sprintf("record: index %d out of bounds for field %q in record %q", k, name, r.Name))
	}
	return fields[k].Value()
}

// adjustValue right-pads value with spaces up to the record's calculated
// length if it is shorter; otherwise value is used as-is and any excess is
// ignored by the per-field slicing that follows. CalculatedLength and the
// padding count are both expressed in the same unit SetValue slices in:
// codepoints under ModeUTF8, bytes otherwise. Padding in the wrong unit
// would under-pad multi-byte UTF-8 lines, since a string's byte length
// exceeds its codepoint count whenever it contains non-ASCII runes.
func (r *Record) adjustValue(value string) string {
	length := len(value)
	if r.Mode == ModeUTF8 {
		length = utf8.RuneCountInString(value)
	}
	if length >= r.CalculatedLength {
		return value
	}
	return value + strings.Repeat(" ", r.CalculatedLength-length)
}

// SetValue slices value into this record's fields, first adjusting it to
// the record's calculated length (§4.4's central slicing operation). The
// slicing unit is chosen by r.Mode: ModeASCII takes a byte range per field,
// ModeUTF8 takes a codepoint range.
func (r *Record) SetValue(value string) {
	adjusted := r.adjustValue(value)

	switch r.Mode {
	case ModeUTF8:
		runes := []rune(adjusted)
		for _, f := range r.Fields {
			upper := f.LowerOffset + f.Length
			if upper > len(runes) {
				upper = len(runes)
			}
			lower := f.LowerOffset
			if lower > len(runes) {
				lower = len(runes)
			}
			f.SetValue(string(runes[lower:upper]))
		}
	default:
		for _, f := range r.Fields {
			upper := f.UpperOffset + 1
			if upper > len(adjusted) {
				upper = len(adjusted)
			}
			lower := f.LowerOffset
			if lower > len(adjusted) {
				lower = len(adjusted)
			}
			f.SetValue(adjusted[lower:upper])
		}
	}
}

// IsFilterMatched evaluates rf as a conjunction of field-level predicates.
// A conjunct naming a field absent from this record is vacuously true; a
// conjunct naming a field with duplicate occurrences holds if any
// occurrence matches (see SPEC_FULL.md §4, "Open question — filter field
// absence").
func (r *Record) IsFilterMatched(rf *filter.RecordFilter) (bool, error) {
	for _, ff := range rf.Exprs {
		fields := r.Get(ff.FieldName)
		if fields == nil {
			continue
		}
		any := false
		for _, f := range fields {
			matched, err := f.IsFilterMatched(ff)
			if err != nil {
				return false, err
			}
			if matched {
				any = true
				break
			}
		}
		if !any {
			return false, nil
		}
	}
	return true, nil
}

// Clone returns a deep copy of the record — a fresh field list of cloned
// fields — safe to populate via SetValue independently of r. The layout
// engine clones a template record once per input line it dispatches.
func (r *Record) Clone() *Record {
	cp := *r
	cp.Fields = make([]*field.Field, len(r.Fields))
	for i, f := range r.Fields {
		cp.Fields[i] = f.Clone()
	}
	return &cp
}

// String renders the record as "(NAME='value',...)", matching the
// original's Display impl.
func (r *Record) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = fmt.Sprintf("%s='%s'", f.Name, f.Value())
	}
	return "(" + strings.Join(parts, ",") + ")"
}
