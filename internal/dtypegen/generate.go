package dtypegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// Header marks generated files so tools and reviewers skip them.
const Header = "// Code generated by dtypegen from datatypes.yaml. DO NOT EDIT."

var kindConst = map[string]string{
	KindSigned:   "kindSigned",
	KindUnsigned: "kindUnsigned",
	KindFloat:    "kindFloat",
}

var funcs = template.FuncMap{
	"kind":  func(k string) string { return kindConst[k] },
	"typed": typed,
}

// typed converts expr to goType unless expr is already a conversion to it.
func typed(goType, expr string) string {
	if strings.HasPrefix(expr, goType+"(") && strings.HasSuffix(expr, ")") {
		return expr
	}
	return goType + "(" + expr + ")"
}

// splitImports separates standard library paths, whose first element has no
// dot, from third-party paths.
func splitImports(paths []string) (std, third []string) {
	for _, p := range paths {
		first, _, _ := strings.Cut(p, "/")
		if strings.Contains(first, ".") {
			third = append(third, p)
		} else {
			std = append(std, p)
		}
	}
	return std, third
}

var source = template.Must(template.New("datatypes").Funcs(funcs).Parse(`{{.Header}}

package {{.Package}}

import (
	"reflect"
{{- range .StdImports}}
	"{{.}}"
{{- end}}
{{- if .ThirdImports}}
{{range .ThirdImports}}
	"{{.}}"
{{- end}}
{{- end}}
)

// Registered datatype tags. The values are part of the serialized model format.
const (
{{- range .Table.Datatypes}}
	{{.Const}} DataType = {{.Value}}
{{- end}}
)

// Native storage type of each tag.
type (
{{- range .Table.Datatypes}}
	{{.Const}}Type = {{.GoType}}
{{- end}}
)

// Native is the set of Go types that have a datatype tag.
type Native interface {
	{{range $i, $e := .Table.Datatypes}}{{if $i}} | {{end}}{{$e.GoType}}{{end}}
}

// Narrow is the subset of Native whose values fit in a scalar.
type Narrow interface {
	{{range $i, $e := .Table.Narrow}}{{if $i}} | {{end}}{{$e.GoType}}{{end}}
}

var registry = [...]info{
{{- range .Table.Datatypes}}
	{{.Const}}: {
		id:      "{{.ID}}",
		short:   "{{.Short}}",
		size:    {{.Size}},
		kind:    {{kind .Kind}},
		native:  reflect.TypeFor[{{.GoType}}](),
		lowest:  {{typed .GoType .Lowest}},
		highest: {{typed .GoType .Highest}},
{{- if .IsFloat}}
		negInf:  {{typed .GoType .NegInf}},
		posInf:  {{typed .GoType .PosInf}},
{{- end}}
	},
{{- end}}
}

// Of returns the tag of v's dynamic type.
// It reports false when the type has no tag.
func Of(v any) (DataType, bool) {
	switch v.(type) {
{{- range .Table.Datatypes}}
	case {{.GoType}}:
		return {{.Const}}, true
{{- end}}
	}
	return 0, false
}
`))

// Generate renders the registry source for package pkg and gofmts it.
func Generate(t *Table, pkg string) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	std, third := splitImports(t.Imports)

	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Header       string
		Package      string
		StdImports   []string
		ThirdImports []string
		Table        *Table
	}{Header, pkg, std, third, t})
	if err != nil {
		return nil, fmt.Errorf("render datatype table: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}
