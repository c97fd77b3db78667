package types

// stringComparator compares raw operands lexicographically; no conversion
// is needed before comparing.
type stringComparator struct{}

func (c *stringComparator) Name() string { return "string" }

func (c *stringComparator) SetFormat(string) {}

func (c *stringComparator) Format() string { return "" }

func (c *stringComparator) Equal(lhs, rhs string) (bool, error) { return lhs == rhs, nil }

func (c *stringComparator) Less(lhs, rhs string) (bool, error) { return lhs < rhs, nil }

func (c *stringComparator) Greater(lhs, rhs string) (bool, error) { return lhs > rhs, nil }
