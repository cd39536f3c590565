package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"firstLower": firstLower,
	"hex":        func(v uint32) string { return fmt.Sprintf("0x%x", v) },
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	blockTmpl +
		enumTmpl +
		fieldTmpl +
		lutTmpl +
		indexTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// blockData holds pre-computed data for one block file.
type blockData struct {
	Source      string
	Package     string
	Prefix      string
	Name        string
	Description string
	Base        uint32
	Size        uint32
	Fields      []fieldData
	LUTs        []lutData
}

type fieldData struct {
	Var         string
	Name        string
	Macro       string
	Description string
	Offset      uint32
	Shift       uint8
	Width       uint8
	Default     uint32
	Access      string
	EnumType    string
	Enum        []enumData
}

type enumData struct {
	Const       string
	Name        string
	Value       uint32
	Description string
}

type lutData struct {
	Var         string
	Name        string
	Macro       string
	Description string
	Offset      uint32
	EntryWidth  uint8
	Entries     uint32
	AddressBits uint8
	Layout      string
}

// indexData holds data for the block index file.
type indexData struct {
	Package string
	Blocks  []string
}

// --- Template definitions ---

const blockTmpl = `{{define "block"}}// Code generated by isp-reggen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
)

// {{.Prefix}} register window{{if .Description}}: {{firstLower .Description}}{{end}}.
const (
	{{.Prefix}}Base uint32 = {{hex .Base}}
	{{.Prefix}}Size uint32 = {{hex .Size}}
)
{{range .Fields}}{{template "enum" .}}{{end}}
// {{.Prefix}} field values after reset.
const (
{{- range .Fields}}
	{{.Var}}Default uint32 = {{hex .Default}} // {{.Macro}}_DEFAULT
{{- end}}
)
{{range .Fields}}{{template "field" .}}{{end}}
{{- range .LUTs}}{{template "lut" .}}{{end}}
// {{.Prefix}}Block lists every field and table of {{.Name}}.
var {{.Prefix}}Block = &Block{
	Name:        {{quote .Name}},
	Description: {{quote .Description}},
	Base:        {{.Prefix}}Base,
	Size:        {{.Prefix}}Size,
	Fields: []*field.Descriptor{
{{- range .Fields}}
		{{.Var}},
{{- end}}
	},
{{- if .LUTs}}
	LUTs: []*lut.Descriptor{
{{- range .LUTs}}
		{{.Var}},
{{- end}}
	},
{{- end}}
}
{{end}}`

const enumTmpl = `{{define "enum"}}{{if .Enum}}{{$t := .EnumType}}
// {{$t}} enumerates the values of {{.Name}}.
type {{$t}} uint32

const (
{{- range .Enum}}
	{{.Const}} {{$t}} = {{.Value}}
{{- end}}
)

// String returns the register-map name of the value.
func (v {{$t}}) String() string {
	switch v {
{{- range .Enum}}
	case {{.Const}}:
		return {{quote .Name}}
{{- end}}
	default:
		return fmt.Sprintf("{{$t}}(%d)", uint32(v))
	}
}
{{end}}{{end}}`

const fieldTmpl = `{{define "field"}}
// {{.Var}} is {{.Macro}}{{if .Description}}: {{firstLower .Description}}{{end}}.
var {{.Var}} = &field.Descriptor{
	Name:    {{quote .Name}},
	Offset:  {{hex .Offset}},
	Shift:   {{.Shift}},
	Width:   {{.Width}},
	Default: {{.Var}}Default,
	Access:  {{.Access}},
{{- if .Enum}}
	Enum: []field.EnumValue{
{{- range .Enum}}
		{Name: {{quote .Name}}, Value: {{.Value}}},
{{- end}}
	},
{{- end}}
}
{{end}}`

const lutTmpl = `{{define "lut"}}
// {{.Var}} is {{.Macro}}{{if .Description}}: {{firstLower .Description}}{{end}}.
var {{.Var}} = &lut.Descriptor{
	Name:        {{quote .Name}},
	Offset:      {{hex .Offset}},
	EntryWidth:  {{.EntryWidth}},
	Entries:     {{.Entries}},
	AddressBits: {{.AddressBits}},
	Layout:      {{.Layout}},
}
{{end}}`

const indexTmpl = `{{define "index"}}// Code generated by isp-reggen. DO NOT EDIT.

package {{.Package}}

// Blocks lists every generated block in ascending base address order.
var Blocks = []*Block{
{{- range .Blocks}}
	{{.}}Block,
{{- end}}
}
{{end}}`
