// Package rbferr defines the error taxonomy surfaced by the layout engine:
// one type per failure kind a caller needs to distinguish with errors.As.
// The types that carry an underlying cause expose it through Unwrap, so
// errors.Is also works across package boundaries.
//
// Construction-time invariant violations (empty name, zero length, inverted
// offsets) are programming errors and panic instead of returning one of
// these types — they are not expected during normal operation.
package rbferr

import "fmt"

// SchemaOpenError reports that the schema document could not be opened.
type SchemaOpenError struct {
	File string
	Err  error
}

func (e *SchemaOpenError) Error() string {
	return fmt.Sprintf("schema file %q could not be opened: %v", e.File, e.Err)
}

func (e *SchemaOpenError) Unwrap() error { return e.Err }

// SchemaSyntaxError reports that the schema document is malformed.
type SchemaSyntaxError struct {
	File string
	Err  error
}

func (e *SchemaSyntaxError) Error() string {
	return fmt.Sprintf("schema file %q is malformed: %v", e.File, e.Err)
}

func (e *SchemaSyntaxError) Unwrap() error { return e.Err }

// UnknownFieldTypeError reports a <field> referencing a type id that was
// never declared by a <fieldtype> element.
type UnknownFieldTypeError struct {
	File  string
	Field string
	Type  string
}

func (e *UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("no field type %q for field %q found in schema file %q", e.Type, e.Field, e.File)
}

// UnknownBaseTypeError reports a <fieldtype type=...> naming a base
// datatype outside the closed family {string, int, uint, decimal, date,
// time}.
type UnknownBaseTypeError struct {
	BaseType string
}

func (e *UnknownBaseTypeError) Error() string {
	return fmt.Sprintf("%q is not allowed as a field base type", e.BaseType)
}

// UnknownRecordError reports that, in Strict reader mode, a dispatched
// record-kind identifier has no matching record template in the layout.
type UnknownRecordError struct {
	LineNo       int
	DispatchedID string
}

func (e *UnknownRecordError) Error() string {
	return fmt.Sprintf("line %d: dispatched record id %q is not present in layout", e.LineNo, e.DispatchedID)
}

// InvalidFilterError reports a filter expression that does not match the
// `NAME WS OP WS RHS` grammar, or that names an unknown operator.
type InvalidFilterError struct {
	Expr string
	Err  error
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter expression %q: %v", e.Expr, e.Err)
}

func (e *InvalidFilterError) Unwrap() error { return e.Err }

// TypedCompareError reports that a typed comparator could not parse one of
// its string operands into the comparator's native representation.
type TypedCompareError struct {
	Value string
	Type  string
	Err   error
}

func (e *TypedCompareError) Error() string {
	return fmt.Sprintf("cannot compare value %q as type %q: %v", e.Value, e.Type, e.Err)
}

func (e *TypedCompareError) Unwrap() error { return e.Err }

// LayoutInvalidError reports that the post-load integrity check
// (Layout.IsValid) failed for one record.
type LayoutInvalidError struct {
	Record   string
	Expected int
	Actual   int
}

func (e *LayoutInvalidError) Error() string {
	return fmt.Sprintf("record %q: expected length %d, calculated length %d", e.Record, e.Expected, e.Actual)
}

// UnknownDispatchStrategyError reports a <map type=...> naming a strategy
// no Factory was registered for.
type UnknownDispatchStrategyError struct {
	Strategy string
}

func (e *UnknownDispatchStrategyError) Error() string {
	return fmt.Sprintf("unknown dispatcher strategy %q", e.Strategy)
}

// DispatchRangeError reports that a range dispatcher's configured bounds
// exceed the length of an input line.
type DispatchRangeError struct {
	Line  string
	Lower int
	Upper int
}

func (e *DispatchRangeError) Error() string {
	return fmt.Sprintf("dispatch range [%d:%d) exceeds line of length %d", e.Lower, e.Upper, len([]rune(e.Line)))
}
