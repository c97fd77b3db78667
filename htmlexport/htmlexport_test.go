package htmlexport

import (
	"strings"
	"testing"

	"github.com/dandyvica/rbf/layout"
)

const sampleSchema = `<layout>
  <meta reclength="0" version="1.0" description="sample" schema="test"/>
  <map type="constant" domain="REC"/>
  <fieldtype name="S" type="string"/>
  <record name="REC" description="a record">
    <field name="F1" description="first" type="S" length="3"/>
    <field name="F2" description="second" type="S" length="4"/>
  </record>
</layout>`

func mustLoad(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.LoadFromReader(strings.NewReader(sampleSchema), "test.xml")
	if err != nil {
		t.Fatalf("LoadFromReader err = %v", err)
	}
	return l
}

func TestRenderIncludesMetaAndRecords(t *testing.T) {
	t.Parallel()

	l := mustLoad(t)
	html, err := Render(l)
	if err != nil {
		t.Fatalf("Render err = %v", err)
	}

	for _, want := range []string{"sample", "REC", "F1", "F2", "<table"} {
		if !strings.Contains(html, want) {
			t.Fatalf("Render() missing %q\n%s", want, html)
		}
	}
}

func TestRenderIsWellFormedDocument(t *testing.T) {
	t.Parallel()

	l := mustLoad(t)
	html, err := Render(l)
	if err != nil {
		t.Fatalf("Render err = %v", err)
	}
	if !strings.HasPrefix(html, "<!doctype html>") || !strings.HasSuffix(html, "</html>") {
		t.Fatalf("Render() not a well-formed document: %s", html)
	}
}

func TestRecordAndLayoutSatisfyExportable(t *testing.T) {
	t.Parallel()

	l := mustLoad(t)

	var exportables []Exportable = []Exportable{
		layoutExportable{l},
		recordExportable{l.Records["REC"]},
	}
	for _, e := range exportables {
		html, err := e.HTML()
		if err != nil {
			t.Fatalf("HTML err = %v", err)
		}
		if html == "" {
			t.Fatalf("HTML() = empty fragment")
		}
	}
}
