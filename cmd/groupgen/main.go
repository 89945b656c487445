// Command groupgen writes the fixed-arity typed group wrappers (Group1..GroupN)
// for package ecs.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

type arity struct {
	N   int
	Idx []int
}

func newArity(n int) arity {
	a := arity{N: n}
	for i := 1; i <= n; i++ {
		a.Idx = append(a.Idx, i)
	}
	return a
}

func (a arity) join(format, sep string) string {
	parts := make([]string, len(a.Idx))
	for i, idx := range a.Idx {
		parts[i] = strings.ReplaceAll(format, "#", fmt.Sprint(idx))
	}
	return strings.Join(parts, sep)
}

// TypeParams renders "T1 any, T2 any".
func (a arity) TypeParams() string { return a.join("T# any", ", ") }

// TypeArgs renders "T1, T2".
func (a arity) TypeArgs() string { return a.join("T#", ", ") }

// Params renders "c1 T1, c2 T2".
func (a arity) Params() string { return a.join("c# T#", ", ") }

// Ptrs renders "*T1, *T2".
func (a arity) Ptrs() string { return a.join("*T#", ", ") }

// Nils renders "nil, nil".
func (a arity) Nils() string { return a.join("nil", ", ") }

// Items renders "&g.c1.items[idx], &g.c2.items[idx]" for the given receiver prefix.
func (a arity) Items(prefix, index string) string {
	return a.join("&"+prefix+".c#.items["+index+"]", ", ")
}

func main() {
	out := flag.String("out", "group_generated.go", "output file")
	maxArity := flag.Int("max", 4, "largest component count to generate")
	flag.Parse()

	src, err := generate(*out, *maxArity)
	if err != nil {
		log.Fatalf("groupgen: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("groupgen: write %s: %v", *out, err)
	}
}

// generate renders and formats the typed groups for arities 1..maxArity.
func generate(filename string, maxArity int) ([]byte, error) {
	if maxArity < 1 {
		return nil, fmt.Errorf("-max must be at least 1, got %d", maxArity)
	}

	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	tmpl, err := template.New("groups").Funcs(template.FuncMap{
		"dec": func(i int) int { return i - 1 },
	}).Parse(groupsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format output: %w\n%s", err, buf.String())
	}
	return src, nil
}

const groupsTemplate = `// Code generated by groupgen. DO NOT EDIT.

package ecs

import "iter"
{{range .}}
// Group{{.N}} is a Group whose component types ({{.TypeArgs}}) are fixed at
// compile time, so rows can only be copied between groups of the same type set.
type Group{{.N}}[{{.TypeParams}}] struct {
	group *Group
{{- range .Idx}}
	c{{.}} *column[T{{.}}]
{{- end}}
}

// NewGroup{{.N}} creates an empty group for {{.TypeArgs}}.
// It panics if a component type is repeated.
func NewGroup{{.N}}[{{.TypeParams}}](opts ...Option) *Group{{.N}}[{{.TypeArgs}}] {
	schema, err := buildSchema([]func() iColumn{
{{- range .Idx}}
		columnFactory[T{{.}}](),
{{- end}}
	})
	if err != nil {
		panic("ecs: NewGroup{{.N}}: " + err.Error())
	}
	return wrapGroup{{.N}}[{{.TypeArgs}}](NewGroup(schema, opts...))
}

func wrapGroup{{.N}}[{{.TypeParams}}](g *Group) *Group{{.N}}[{{.TypeArgs}}] {
	return &Group{{.N}}[{{.TypeArgs}}]{
		group: g,
{{- range .Idx}}
		c{{.}}: g.columns[{{dec .}}].(*column[T{{.}}]),
{{- end}}
	}
}

// Untyped returns the underlying runtime-typed group.
func (g *Group{{.N}}[{{.TypeArgs}}]) Untyped() *Group {
	return g.group
}

// Size returns the current row count.
func (g *Group{{.N}}[{{.TypeArgs}}]) Size() int {
	return g.group.size
}

// Add appends one row and returns its index.
func (g *Group{{.N}}[{{.TypeArgs}}]) Add({{.Params}}) int {
{{- range .Idx}}
	g.c{{.}}.items = append(g.c{{.}}.items, c{{.}})
{{- end}}
	g.group.size++
	return g.group.size - 1
}

// AddZero appends a row of zero values and returns its index.
func (g *Group{{.N}}[{{.TypeArgs}}]) AddZero() int {
	return g.group.AddEntity()
}

// AddFrom appends copies of the values v currently references.
func (g *Group{{.N}}[{{.TypeArgs}}]) AddFrom(v View{{.N}}[{{.TypeArgs}}]) (int, error) {
	return g.group.AddEntityFrom(v.Entity)
}

// Get returns pointers to the components of row idx. It panics if idx is out of range.
func (g *Group{{.N}}[{{.TypeArgs}}]) Get(idx int) ({{.Ptrs}}) {
	return {{.Items "g" "idx"}}
}

// Row returns a view of row idx.
func (g *Group{{.N}}[{{.TypeArgs}}]) Row(idx int) (View{{.N}}[{{.TypeArgs}}], error) {
	e, err := g.group.Entity(idx)
	if err != nil {
		return View{{.N}}[{{.TypeArgs}}]{}, err
	}
	return View{{.N}}[{{.TypeArgs}}]{Entity: e, g: g}, nil
}

// Remove erases row idx, shifting later rows down.
func (g *Group{{.N}}[{{.TypeArgs}}]) Remove(idx int) error {
	return g.group.RemoveEntity(idx)
}

// RemoveSubset erases count rows starting at idx.
func (g *Group{{.N}}[{{.TypeArgs}}]) RemoveSubset(idx, count int) error {
	return g.group.RemoveSubset(idx, count)
}

// Subset returns a new group holding copies of rows [idx, idx+count).
func (g *Group{{.N}}[{{.TypeArgs}}]) Subset(idx, count int) (*Group{{.N}}[{{.TypeArgs}}], error) {
	subset, err := g.group.GetSubset(idx, count)
	if err != nil {
		return nil, err
	}
	return wrapGroup{{.N}}[{{.TypeArgs}}](subset), nil
}

// AddSet appends copies of other's rows [idx, idx+count).
func (g *Group{{.N}}[{{.TypeArgs}}]) AddSet(other *Group{{.N}}[{{.TypeArgs}}], idx, count int) error {
	return g.group.AddSet(other.group, idx, count)
}

// AddAll appends copies of every row of other.
func (g *Group{{.N}}[{{.TypeArgs}}]) AddAll(other *Group{{.N}}[{{.TypeArgs}}]) error {
	return g.group.AddAll(other.group)
}

// Begin returns a cursor at the first row.
func (g *Group{{.N}}[{{.TypeArgs}}]) Begin() Cursor {
	return g.group.Begin()
}

// End returns the off-the-end cursor.
func (g *Group{{.N}}[{{.TypeArgs}}]) End() Cursor {
	return g.group.End()
}

// All returns an iterator over every row in index order.
func (g *Group{{.N}}[{{.TypeArgs}}]) All() iter.Seq2[int, View{{.N}}[{{.TypeArgs}}]] {
	return func(yield func(int, View{{.N}}[{{.TypeArgs}}]) bool) {
		for idx, e := range g.group.All() {
			if !yield(idx, View{{.N}}[{{.TypeArgs}}]{Entity: e, g: g}) {
				return
			}
		}
	}
}

// View{{.N}} is an Entity of a Group{{.N}} with typed component access.
type View{{.N}}[{{.TypeParams}}] struct {
	Entity
	g *Group{{.N}}[{{.TypeArgs}}]
}

// Get returns live pointers to the row's components.
func (v View{{.N}}[{{.TypeArgs}}]) Get() ({{.Ptrs}}, error) {
	if err := v.check(); err != nil {
		return {{.Nils}}, err
	}
	return {{.Items "v.g" "v.row"}}, nil
}
{{end}}`
