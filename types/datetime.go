package types

import (
	"time"

	"github.com/dandyvica/rbf/rbferr"
)

// dateComparator and timeComparator both parse their operand with
// time.Parse against a configured format string, then compare the
// resulting time.Time values. The format string uses Go's reference-time
// layout ("20060102", "15:04:05", …) rather than strptime-style codes —
// this is the native calling convention of time.Parse, and schema authors
// supply it directly in <fieldtype format=...> with no translation layer.

type dateComparator struct {
	format string
}

func (c *dateComparator) Name() string { return "date" }

func (c *dateComparator) SetFormat(format string) { c.format = format }

func (c *dateComparator) Format() string { return c.format }

func (c *dateComparator) parse(value string) (time.Time, error) {
	t, err := time.Parse(c.format, value)
	if err != nil {
		return time.Time{}, &rbferr.TypedCompareError{Value: value, Type: c.Name(), Err: err}
	}
	return t, nil
}

func (c *dateComparator) Equal(lhs, rhs string) (bool, error) {
	l, err := c.parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.parse(rhs)
	if err != nil {
		return false, err
	}
	return l.Equal(r), nil
}

func (c *dateComparator) Less(lhs, rhs string) (bool, error) {
	l, err := c.parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.parse(rhs)
	if err != nil {
		return false, err
	}
	return l.Before(r), nil
}

func (c *dateComparator) Greater(lhs, rhs string) (bool, error) {
	l, err := c.parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.parse(rhs)
	if err != nil {
		return false, err
	}
	return l.After(r), nil
}

type timeComparator struct {
	format string
}

func (c *timeComparator) Name() string { return "time" }

func (c *timeComparator) SetFormat(format string) { c.format = format }

func (c *timeComparator) Format() string { return c.format }

func (c *timeComparator) parse(value string) (time.Time, error) {
	t, err := time.Parse(c.format, value)
	if err != nil {
		return time.Time{}, &rbferr.TypedCompareError{Value: value, Type: c.Name(), Err: err}
	}
	return t, nil
}

func (c *timeComparator) Equal(lhs, rhs string) (bool, error) {
	l, err := c.parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.parse(rhs)
	if err != nil {
		return false, err
	}
	return l.Equal(r), nil
}

func (c *timeComparator) Less(lhs, rhs string) (bool, error) {
	l, err := c.parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.parse(rhs)
	if err != nil {
		return false, err
	}
	return l.Before(r), nil
}

func (c *timeComparator) Greater(lhs, rhs string) (bool, error) {
	l, err := c.parse(lhs)
	if err != nil {
		return false, err
	}
	r, err := c.parse(rhs)
	if err != nil {
		return false, err
	}
	return l.After(r), nil
}
