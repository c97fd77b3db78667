package types

import (
	"github.com/shopspring/decimal"

	"github.com/dandyvica/rbf/rbferr"
)

// decimalComparator parses both operands as an arbitrary-precision decimal
// before comparing, via github.com/shopspring/decimal. A hand-rolled
// float64 parse would silently lose precision on the currency-style
// fixed-point fields this base type exists for; shopspring/decimal is the
// de facto ecosystem choice for exact decimal arithmetic in Go.
type decimalComparator struct{}

func (c *decimalComparator) Name() string { return "decimal" }

func (c *decimalComparator) SetFormat(string) {}

func (c *decimalComparator) Format() string { return "" }

func (c *decimalComparator) toDecimal(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &rbferr.TypedCompareError{Value: value, Type: c.Name(), Err: err}
	}
	return d, nil
}

func (c *decimalComparator) Equal(lhs, rhs string) (bool, error) {
	l, err := c.toDecimal(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toDecimal(rhs)
	if err != nil {
		return false, err
	}
	return l.Equal(r), nil
}

func (c *decimalComparator) Less(lhs, rhs string) (bool, error) {
	l, err := c.toDecimal(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toDecimal(rhs)
	if err != nil {
		return false, err
	}
	return l.LessThan(r), nil
}

func (c *decimalComparator) Greater(lhs, rhs string) (bool, error) {
	l, err := c.toDecimal(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toDecimal(rhs)
	if err != nil {
		return false, err
	}
	return l.GreaterThan(r), nil
}
