package filter

import "strings"

// fieldFilterDelimiter separates field filters within one record filter.
const fieldFilterDelimiter = ";"

// RecordFilter is a conjunction of FieldFilters. Evaluation against a
// Record (package record's Record.IsFilterMatched) treats a conjunct
// naming a field absent from the record as vacuously true; Check performs
// the complementary up-front validation that every named field actually
// exists somewhere in a given layout, so a typo is caught at setup instead
// of silently passing every record.
type RecordFilter struct {
	Exprs []*FieldFilter
}

// ParseRecordFilter splits expr on ';' and parses each part as a
// FieldFilter.
func ParseRecordFilter(expr string) (*RecordFilter, error) {
	parts := strings.Split(expr, fieldFilterDelimiter)
	exprs := make([]*FieldFilter, 0, len(parts))
	for _, part := range parts {
		ff, err := ParseFieldFilter(part)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, ff)
	}
	return &RecordFilter{Exprs: exprs}, nil
}

// FieldNameChecker is satisfied by anything that can report whether a
// field name exists somewhere within it — layout.Layout, in practice.
// RecordFilter depends on this interface rather than on package layout
// directly to avoid an import cycle (layout already depends on record,
// which depends on filter).
type FieldNameChecker interface {
	ContainsField(name string) bool
}

// Check rejects a RecordFilter whose field names are not all present in
// checker. Call it once after parsing and before constructing a reader;
// it is not invoked automatically during evaluation, since a filter has no
// opinion on when (or whether) its consumer wants that validation.
func (rf *RecordFilter) Check(checker FieldNameChecker) error {
	for _, ff := range rf.Exprs {
		if !checker.ContainsField(ff.FieldName) {
			return &fieldNotFoundError{FieldName: ff.FieldName}
		}
	}
	return nil
}

type fieldNotFoundError struct {
	FieldName string
}

func (e *fieldNotFoundError) Error() string {
	return "field name " + e.FieldName + " is not found in the layout"
}
