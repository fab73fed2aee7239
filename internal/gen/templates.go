package gen

import (
	"strconv"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"comment": comment,
	"quote":   strconv.Quote,
}

// comment renders text as a // comment block, one line per input line.
func comment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(l), " ")
	}

	return strings.Join(lines, "\n")
}

const header = `// Code generated by proxy-lattice. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.PackageName}}

{{if or .StdImports .ModImports}}import (
{{- range .StdImports}}
	"{{.}}"
{{- end}}
{{- if and .StdImports .ModImports}}
{{end}}
{{- range .ModImports}}
	"{{.}}"
{{- end}}
)
{{end}}`

var typeTemplate = template.Must(template.New("type").Funcs(funcs).Parse(header + `
{{with .Type -}}
// {{.Name}} proxies {{.External}}.
{{- if .Doc}}
//
{{comment .Doc}}
{{- end}}
type {{.Name}} struct {
	p *proxy.Proxy
}

// Wrap{{.Name}} types p as {{.Name}}. A nil p yields nil.
func Wrap{{.Name}}(p *proxy.Proxy) *{{.Name}} {
	if p == nil {
		return nil
	}

	return &{{.Name}}{p: p}
}

// Proxy returns the untyped proxy, nil for a nil {{.Name}}.
func (t *{{.Name}}) Proxy() *proxy.Proxy {
	if t == nil {
		return nil
	}

	return t.p
}
{{- $type := .Name}}
{{range .Properties}}
// {{.Name}} reads the {{.Name}} property{{if .Inherited}} inherited from {{.Owner}}{{end}}.
{{- if .Doc}}
{{comment .Doc}}
{{- end}}
func (t *{{$type}}) {{.Name}}() {{.GoType}} {
	return {{.Expr}}
}
{{end}}
{{- if .Casts}}
// {{.Name}}CastTo is the cast helper of {{.Name}}.
type {{.Name}}CastTo struct {
	p *proxy.Proxy
}

// CastTo returns the cast helper of t.
func (t *{{.Name}}) CastTo() {{.Name}}CastTo {
	return {{.Name}}CastTo{p: t.Proxy()}
}
{{range .Casts}}
// {{.}} views the handle as {{.}}.
func (c {{$type}}CastTo) {{.}}() (*{{.}}, error) {
	p, err := c.p.Cast().To({{quote .}})
	if err != nil {
		return nil, err
	}

	return Wrap{{.}}(p), nil
}
{{end}}
{{- end}}
{{- end}}
`))

var registryTemplate = template.Must(template.New("registry").Funcs(funcs).Parse(header + `
// Specs returns the type table the package lattice is built from.
func Specs() []lattice.TypeSpec {
	return []lattice.TypeSpec{
{{- range .Types}}
		{
			Name:      {{quote .Name}},
			Namespace: {{quote .Namespace}},
			{{- if .Parent}}
			Parent: {{quote .Parent}},
			{{- end}}
			{{- if .Abstract}}
			Abstract: true,
			{{- end}}
			{{- if .Doc}}
			Doc: {{quote .Doc}},
			{{- end}}
			{{- if .SpecCasts}}
			Casts: []string{ {{- range $i, $c := .SpecCasts}}{{if $i}}, {{end}}{{quote $c}}{{end -}} },
			{{- end}}
			{{- if .OwnProperties}}
			Properties: []lattice.Property{
			{{- range .OwnProperties}}
				{{.Spec}},
			{{- end}}
			},
			{{- end}}
		},
{{- end}}
	}
}

var (
	latticeOnce sync.Once
	latticeVal  *lattice.Lattice
)

// Lattice returns the package lattice, built on first use.
func Lattice() *lattice.Lattice {
	latticeOnce.Do(func() {
		latticeVal = lattice.MustBuild(Specs())
	})

	return latticeVal
}

// Wrap views h as its runtime type in the package lattice.
func Wrap(h handle.Handle) (*proxy.Proxy, error) {
	return proxy.Wrap(Lattice(), h)
}
`))
