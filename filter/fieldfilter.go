// Package filter implements the FieldFilter/RecordFilter predicate
// language: NAME WS OP WS RHS, OP in {=, !=, ~, !~, <, >}, joined into a
// RecordFilter by ';'. Evaluation against a field's typed value lives in
// package field (it needs the field's comparator); this package owns
// parsing and the operator/RHS representation only.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dandyvica/rbf/rbferr"
)

// Op is a field-filter operator.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpSimilar
	OpNotSimilar
	OpLessThan
	OpGreaterThan
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpSimilar:
		return "~"
	case OpNotSimilar:
		return "!~"
	case OpLessThan:
		return "<"
	case OpGreaterThan:
		return ">"
	default:
		return "?"
	}
}

func opFromString(s string) (Op, error) {
	switch s {
	case "=":
		return OpEqual, nil
	case "!=":
		return OpNotEqual, nil
	case "~":
		return OpSimilar, nil
	case "!~":
		return OpNotSimilar, nil
	case "<":
		return OpLessThan, nil
	case ">":
		return OpGreaterThan, nil
	default:
		return 0, fmt.Errorf("%q is not allowed as a field filter operator", s)
	}
}

// fieldFilterGrammar matches `NAME WS OP WS RHS`, RHS extending to the end
// of the expression.
var fieldFilterGrammar = regexp.MustCompile(`^(?P<field>\w+)\s+(?P<op>!=|!~|=|~|<|>)\s+(?P<rhs>.+)$`)

// FieldFilter is a single parsed predicate: a field name, an operator, and
// a right-hand side. For OpSimilar/OpNotSimilar, RHS is compiled as a regex
// lazily on first use via Regexp; for the other operators RHS is compared
// via the field's typed comparator and is never compiled as a regex.
type FieldFilter struct {
	FieldName string
	Op        Op
	RHS       string

	regex *regexp.Regexp
}

// NewFieldFilter builds a FieldFilter from already-split components,
// trimming whitespace around the field name and operator (RHS is trimmed
// too, matching the grammar's WS separators).
func NewFieldFilter(fieldName, opStr, rhs string) (*FieldFilter, error) {
	op, err := opFromString(strings.TrimSpace(opStr))
	if err != nil {
		return nil, &rbferr.InvalidFilterError{Expr: fmt.Sprintf("%s %s %s", fieldName, opStr, rhs), Err: err}
	}
	return &FieldFilter{
		FieldName: strings.TrimSpace(fieldName),
		Op:        op,
		RHS:       strings.TrimSpace(rhs),
	}, nil
}

// ParseFieldFilter parses a single "NAME OP RHS" expression. Whitespace
// surrounding the expression is ignored.
func ParseFieldFilter(expr string) (*FieldFilter, error) {
	expr = strings.TrimSpace(expr)
	m := fieldFilterGrammar.FindStringSubmatch(expr)
	if m == nil {
		return nil, &rbferr.InvalidFilterError{Expr: expr, Err: fmt.Errorf("does not match NAME WS OP WS RHS grammar")}
	}
	names := fieldFilterGrammar.SubexpNames()
	group := make(map[string]string, len(names))
	for i, name := range names {
		if name != "" {
			group[name] = m[i]
		}
	}
	return NewFieldFilter(group["field"], group["op"], group["rhs"])
}

// Regexp lazily compiles RHS as a regex. Only meaningful for
// OpSimilar/OpNotSimilar; calling it for other operators still compiles RHS
// (some callers may want to pre-validate it), but field.Field.IsFilterMatched
// only invokes it for the similarity operators.
func (f *FieldFilter) Regexp() (*regexp.Regexp, error) {
	if f.regex != nil {
		return f.regex, nil
	}
	re, err := regexp.Compile(f.RHS)
	if err != nil {
		return nil, &rbferr.InvalidFilterError{Expr: f.String(), Err: err}
	}
	f.regex = re
	return re, nil
}

// String renders the filter back to its canonical "NAME<OP><RHS>" form.
func (f *FieldFilter) String() string {
	return fmt.Sprintf("%s%s%s", f.FieldName, f.Op, f.RHS)
}
