package types

import (
	"strconv"

	"github.com/dandyvica/rbf/rbferr"
)

// signedIntComparator parses both operands as a 64-bit signed integer
// before comparing.
type signedIntComparator struct{}

func (c *signedIntComparator) Name() string { return "int" }

func (c *signedIntComparator) SetFormat(string) {}

func (c *signedIntComparator) Format() string { return "" }

func (c *signedIntComparator) toInt(value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &rbferr.TypedCompareError{Value: value, Type: c.Name(), Err: err}
	}
	return v, nil
}

func (c *signedIntComparator) Equal(lhs, rhs string) (bool, error) {
	l, err := c.toInt(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toInt(rhs)
	if err != nil {
		return false, err
	}
	return l == r, nil
}

func (c *signedIntComparator) Less(lhs, rhs string) (bool, error) {
	l, err := c.toInt(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toInt(rhs)
	if err != nil {
		return false, err
	}
	return l < r, nil
}

func (c *signedIntComparator) Greater(lhs, rhs string) (bool, error) {
	l, err := c.toInt(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toInt(rhs)
	if err != nil {
		return false, err
	}
	return l > r, nil
}
