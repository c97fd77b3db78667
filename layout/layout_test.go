package layout

import (
	"strings"
	"testing"
)

const sampleSchema = `<?xml version="1.0"?>
<layout>
  <meta reclength="0" version="1.0" description="sample" schema="test"/>
  <map type="constant" domain="REC"/>
  <fieldtype name="S" type="string"/>
  <fieldtype name="I" type="int"/>
  <record name="REC" description="a record" length="0">
    <field name="F1" description="first" type="S" length="3"/>
    <field name="F2" description="second" type="I" length="4"/>
  </record>
</layout>
`

func mustLoad(t *testing.T, doc string) *Layout {
	t.Helper()
	l, err := LoadFromReader(strings.NewReader(doc), "test.xml")
	if err != nil {
		t.Fatalf("LoadFromReader err = %v", err)
	}
	return l
}

func TestLoadParsesMetaAndTypes(t *testing.T) {
	t.Parallel()

	l := mustLoad(t, sampleSchema)

	if l.Version != "1.0" || l.Description != "sample" || l.Schema != "test" {
		t.Fatalf("metadata = %+v, unexpected", l)
	}
	if l.GetType("S") == nil || l.GetType("I") == nil {
		t.Fatalf("expected field types S and I to be registered")
	}
}

func TestLoadBuildsRecordTemplate(t *testing.T) {
	t.Parallel()

	l := mustLoad(t, sampleSchema)

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	rec := l.Get("REC")
	if rec == nil {
		t.Fatalf("Get(REC) = nil")
	}
	if rec.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", rec.Count())
	}
	if rec.CalculatedLength != 7 {
		t.Fatalf("CalculatedLength = %d, want 7", rec.CalculatedLength)
	}
}

func TestLoadBuildsDispatcher(t *testing.T) {
	t.Parallel()

	l := mustLoad(t, sampleSchema)

	id, err := l.Mapper.Dispatch("anything")
	if err != nil || id != "REC" {
		t.Fatalf("Dispatch() = %q, %v, want REC, nil", id, err)
	}
}

func TestLoadUnknownFieldType(t *testing.T) {
	t.Parallel()

	doc := `<layout>
  <map type="constant" domain="REC"/>
  <record name="REC" description="d">
    <field name="F1" description="d" type="NOPE" length="3"/>
  </record>
</layout>`

	if _, err := LoadFromReader(strings.NewReader(doc), "bad.xml"); err == nil {
		t.Fatalf("expected error for unknown field type reference")
	}
}

func TestLoadByOffsetField(t *testing.T) {
	t.Parallel()

	doc := `<layout>
  <map type="constant" domain="REC"/>
  <fieldtype name="S" type="string"/>
  <record name="REC" description="d">
    <field name="F1" description="d" type="S" start="1" end="5"/>
  </record>
</layout>`

	l := mustLoad(t, doc)
	rec := l.Get("REC")
	f := rec.Get("F1")[0]
	if f.LowerOffset != 0 || f.UpperOffset != 4 {
		t.Fatalf("bounds = %d/%d, want 0/4", f.LowerOffset, f.UpperOffset)
	}
}

func TestContainsFieldAndContainsRecord(t *testing.T) {
	t.Parallel()

	l := mustLoad(t, sampleSchema)

	if !l.ContainsRecord("REC") || l.ContainsRecord("NOPE") {
		t.Fatalf("ContainsRecord behaves unexpectedly")
	}
	if !l.ContainsField("F1") || l.ContainsField("NOPE") {
		t.Fatalf("ContainsField behaves unexpectedly")
	}
}

func TestRemoveDropsFieldFromEveryRecord(t *testing.T) {
	t.Parallel()

	l := mustLoad(t, sampleSchema)
	l.Remove("F2")

	rec := l.Get("REC")
	if rec.ContainsField("F2") {
		t.Fatalf("F2 still present after Remove")
	}
	if !rec.ContainsField("F1") {
		t.Fatalf("Remove dropped unrelated field F1")
	}
}

func TestRetainPrunesRecordsAndFields(t *testing.T) {
	t.Parallel()

	l := mustLoad(t, sampleSchema)
	l.Retain(map[string][]string{"REC": {"F1"}})

	if l.Pruned() != true {
		t.Fatalf("Pruned() = false, want true after Retain")
	}
	rec := l.Get("REC")
	if rec.Count() != 1 || !rec.ContainsField("F1") {
		t.Fatalf("Retain did not prune to just F1")
	}
}

func TestIsValidWithUniformRecLength(t *testing.T) {
	t.Parallel()

	doc := `<layout>
  <meta reclength="7"/>
  <map type="constant" domain="REC"/>
  <fieldtype name="S" type="string"/>
  <record name="REC" description="d">
    <field name="F1" description="d" type="S" length="3"/>
    <field name="F2" description="d" type="S" length="4"/>
  </record>
</layout>`

	l := mustLoad(t, doc)
	if err := l.IsValid(); err != nil {
		t.Fatalf("IsValid() err = %v, want nil", err)
	}
}

func TestIsValidDetectsMismatch(t *testing.T) {
	t.Parallel()

	doc := `<layout>
  <meta reclength="99"/>
  <map type="constant" domain="REC"/>
  <fieldtype name="S" type="string"/>
  <record name="REC" description="d">
    <field name="F1" description="d" type="S" length="3"/>
  </record>
</layout>`

	l := mustLoad(t, doc)
	if err := l.IsValid(); err == nil {
		t.Fatalf("IsValid() err = nil, want mismatch error")
	}
}

func TestIsValidDeclaredLengthZeroPassesUnconditionally(t *testing.T) {
	t.Parallel()

	doc := `<layout>
  <map type="constant" domain="REC"/>
  <fieldtype name="S" type="string"/>
  <record name="REC" description="d" length="0">
    <field name="F1" description="d" type="S" length="3"/>
  </record>
</layout>`

	l := mustLoad(t, doc)
	if err := l.IsValid(); err != nil {
		t.Fatalf("IsValid() err = %v, want nil for declared length 0", err)
	}
}
