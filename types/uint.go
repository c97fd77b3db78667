package types

import (
	"strconv"

	"github.com/dandyvica/rbf/rbferr"
)

// unsignedIntComparator parses both operands as a 64-bit unsigned integer
// before comparing.
type unsignedIntComparator struct{}

func (c *unsignedIntComparator) Name() string { return "uint" }

func (c *unsignedIntComparator) SetFormat(string) {}

func (c *unsignedIntComparator) Format() string { return "" }

func (c *unsignedIntComparator) toUint(value string) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, &rbferr.TypedCompareError{Value: value, Type: c.Name(), Err: err}
	}
	return v, nil
}

func (c *unsignedIntComparator) Equal(lhs, rhs string) (bool, error) {
	l, err := c.toUint(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toUint(rhs)
	if err != nil {
		return false, err
	}
	return l == r, nil
}

func (c *unsignedIntComparator) Less(lhs, rhs string) (bool, error) {
	l, err := c.toUint(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toUint(rhs)
	if err != nil {
		return false, err
	}
	return l < r, nil
}

func (c *unsignedIntComparator) Greater(lhs, rhs string) (bool, error) {
	l, err := c.toUint(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.toUint(rhs)
	if err != nil {
		return false, err
	}
	return l > r, nil
}
