package types

import "testing"

func TestNewComparatorUnknownType(t *testing.T) {
	t.Parallel()

	if _, err := NewComparator("complex"); err == nil {
		t.Fatalf("NewComparator(%q) err = nil, want error", "complex")
	}
}

func TestComparatorsAllTypes(t *testing.T) {
	t.Parallel()

	target := []string{"FOO", "3.14", "-100", "100", "20170101", "120000"}
	behind := []string{"FOM", "3.13", "-101", "99", "20161231", "115959"}
	over := []string{"FOP", "3.15", "-99", "101", "20170102", "120001"}

	cases := []struct {
		baseType string
		format   string
		idx      int
	}{
		{"string", "", 0},
		{"decimal", "", 1},
		{"int", "", 2},
		{"uint", "", 3},
		{"date", "20060102", 4},
		{"time", "150405", 5},
	}

	for _, tc := range cases {
		t.Run(tc.baseType, func(t *testing.T) {
			t.Parallel()

			cmp, err := NewComparator(tc.baseType)
			if err != nil {
				t.Fatalf("NewComparator(%q) err = %v", tc.baseType, err)
			}
			if tc.format != "" {
				cmp.SetFormat(tc.format)
			}

			eq, err := cmp.Equal(target[tc.idx], target[tc.idx])
			if err != nil || !eq {
				t.Fatalf("Equal(%q, %q) = %v, %v, want true, nil", target[tc.idx], target[tc.idx], eq, err)
			}

			lt, err := cmp.Less(behind[tc.idx], target[tc.idx])
			if err != nil || !lt {
				t.Fatalf("Less(%q, %q) = %v, %v, want true, nil", behind[tc.idx], target[tc.idx], lt, err)
			}

			gt, err := cmp.Greater(over[tc.idx], target[tc.idx])
			if err != nil || !gt {
				t.Fatalf("Greater(%q, %q) = %v, %v, want true, nil", over[tc.idx], target[tc.idx], gt, err)
			}
		})
	}
}

func TestSignedIntComparatorParseFailure(t *testing.T) {
	t.Parallel()

	cmp, err := NewComparator("int")
	if err != nil {
		t.Fatalf("NewComparator(int) err = %v", err)
	}
	if _, err := cmp.Equal("not-a-number", "10"); err == nil {
		t.Fatalf("Equal with unparseable operand: err = nil, want error")
	}
}

func TestFieldTypeDefaultPatternMatchesAnything(t *testing.T) {
	t.Parallel()

	ft, err := NewFieldType("I", "int")
	if err != nil {
		t.Fatalf("NewFieldType err = %v", err)
	}
	if !ft.Pattern.MatchString("anything at all") {
		t.Fatalf("default pattern did not match arbitrary input")
	}
}

func TestFieldTypeSetPattern(t *testing.T) {
	t.Parallel()

	ft, err := NewFieldType("I", "int")
	if err != nil {
		t.Fatalf("NewFieldType err = %v", err)
	}
	if err := ft.SetPattern(`\d+`); err != nil {
		t.Fatalf("SetPattern err = %v", err)
	}
	if !ft.Pattern.MatchString("123") {
		t.Fatalf("pattern did not match %q", "123")
	}
	if ft.Pattern.MatchString("ABC") {
		t.Fatalf("pattern unexpectedly matched %q", "ABC")
	}
}

func TestNewFieldTypeEmptyIDPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("NewFieldType with empty id did not panic")
		}
	}()
	_, _ = NewFieldType("", "string")
}
