// Package htmlexport renders a layout's metadata, field-type table, and
// each record's field table as static Bootstrap-styled HTML — a read-only
// view with no role in parsing (§4.10). Per-record-kind tables render
// concurrently via golang.org/x/sync/errgroup, the same fan-out-then-join
// shape the teacher's connector/opener_multiplexer.go used for concurrent
// opener resolution, then are assembled back into record-name order — the
// only place this package imposes a deterministic order, since errgroup
// itself makes no ordering guarantee across goroutines.
//
// Exportable mirrors the original Rust implementation's Exportable trait
// (original_source/rust/src/exportable.rs), which is implemented only for
// Record and Layout — field types are rendered inline by the composing
// Layout, not through the interface. recordExportable and layoutExportable
// are the local adapters that let *record.Record and *layout.Layout satisfy
// Exportable without pulling html/template into those packages.
package htmlexport

import (
	"html/template"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dandyvica/rbf/layout"
	"github.com/dandyvica/rbf/record"
)

// Exportable renders its receiver as an HTML fragment.
type Exportable interface {
	HTML() (template.HTML, error)
}

var fieldTypeTmpl = template.Must(template.New("fieldtype").Parse(`
<tr><td>{{.ID}}</td><td>{{.TypeName}}</td></tr>`))

var recordTmpl = template.Must(template.New("record").Parse(`
<div class="card mb-3">
  <div class="card-header">{{.Name}} &mdash; {{.Description}}</div>
  <table class="table table-sm mb-0">
    <thead><tr><th>name</th><th>description</th><th>type</th><th>length</th><th>start</th><th>end</th></tr></thead>
    <tbody>
      {{range .Fields}}
      <tr><td>{{.Name}}</td><td>{{.Description}}</td><td>{{.Type.ID}}</td><td>{{.Length}}</td><td>{{.LowerOffset}}</td><td>{{.UpperOffset}}</td></tr>
      {{end}}
    </tbody>
  </table>
</div>`))

var metaTmpl = template.Must(template.New("meta").Parse(`
<div class="mb-3">
  <p><strong>source:</strong> {{.SourceFile}}</p>
  <p><strong>version:</strong> {{.Version}}</p>
  <p><strong>description:</strong> {{.Description}}</p>
  <p><strong>schema:</strong> {{.Schema}}</p>
</div>`))

const pageHeader = `<!doctype html>
<html><head>
  <meta charset="utf-8">
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css">
  <title>layout export</title>
</head><body class="container py-4">`

const pageFooter = `</body></html>`

// recordExportable adapts a *record.Record to Exportable.
type recordExportable struct{ rec *record.Record }

// HTML renders the record's field table.
func (re recordExportable) HTML() (template.HTML, error) {
	var b strings.Builder
	if err := recordTmpl.Execute(&b, re.rec); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// layoutExportable adapts a *layout.Layout to Exportable, composing its own
// metadata and field-type table with every record's HTML (via
// recordExportable), in the same order Render assembles a full document —
// the direct analog of the original's Layout::to_html composing
// Record::to_html per record.
type layoutExportable struct{ l *layout.Layout }

// HTML renders l's metadata, field-type table, and every record kind's
// field table (concurrently rendered, then joined in record-name order)
// into one HTML fragment.
func (le layoutExportable) HTML() (template.HTML, error) {
	var b strings.Builder

	metaHTML, err := renderMeta(le.l)
	if err != nil {
		return "", err
	}
	b.WriteString(string(metaHTML))

	typesHTML, err := renderFieldTypes(le.l)
	if err != nil {
		return "", err
	}
	b.WriteString(string(typesHTML))

	recordsHTML, err := renderRecords(le.l)
	if err != nil {
		return "", err
	}
	b.WriteString(recordsHTML)

	return template.HTML(b.String()), nil
}

// Render produces a full HTML document describing l: its metadata, field
// types, and every record kind's field table in record-name order.
func Render(l *layout.Layout) (string, error) {
	body, err := (layoutExportable{l}).HTML()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(pageHeader)
	b.WriteString(string(body))
	b.WriteString(pageFooter)
	return b.String(), nil
}

func renderMeta(l *layout.Layout) (template.HTML, error) {
	var b strings.Builder
	if err := metaTmpl.Execute(&b, l); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func renderFieldTypes(l *layout.Layout) (template.HTML, error) {
	ids := make([]string, 0, len(l.Types))
	for id := range l.Types {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(`<table class="table table-sm"><thead><tr><th>id</th><th>base type</th></tr></thead><tbody>`)
	for _, id := range ids {
		if err := fieldTypeTmpl.Execute(&b, l.Types[id]); err != nil {
			return "", err
		}
	}
	b.WriteString(`</tbody></table>`)
	return template.HTML(b.String()), nil
}

// renderRecords renders every record kind's field table concurrently, via
// recordExportable.HTML, then assembles the results in record-name order.
func renderRecords(l *layout.Layout) (string, error) {
	names := make([]string, 0, len(l.Records))
	for name := range l.Records {
		names = append(names, name)
	}
	sort.Strings(names)

	rendered := make([]string, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			html, err := (recordExportable{l.Records[name]}).HTML()
			if err != nil {
				return err
			}
			rendered[i] = string(html)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(rendered, ""), nil
}
