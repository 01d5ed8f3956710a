package seeder

import (
	"slices"

	"github.com/Rana718/fakegraph/internal/schema"
)

// Edge is a required relation from one type to another.
type Edge struct {
	From  string
	Field string
	To    string
}

// DependencyGraph holds the required relations between the types of a model.
type DependencyGraph struct {
	types  []string
	deps   map[string][]Edge
	cycles []Edge
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]Edge),
	}
}

// BuildDependencyGraph collects the required relation fields of every type.
func BuildDependencyGraph(m *schema.Model) *DependencyGraph {
	g := NewDependencyGraph()
	for _, t := range m.Types {
		g.AddType(t.Name)
		for _, f := range t.Fields {
			named := schema.NamedType(f)
			if _, ok := m.FindType(named); ok && schema.IsRequired(f) {
				g.AddEdge(Edge{From: t.Name, Field: f.Name, To: named})
			}
		}
	}
	return g
}

func (g *DependencyGraph) AddType(name string) {
	if _, ok := g.deps[name]; ok {
		return
	}
	g.types = append(g.types, name)
	g.deps[name] = nil
}

func (g *DependencyGraph) AddEdge(e Edge) {
	g.AddType(e.From)
	g.AddType(e.To)
	g.deps[e.From] = append(g.deps[e.From], e)
}

// BuildOrder returns the types so that every type comes after the types it
// requires. Self and mutual requirements cannot be ordered; the edges closing
// such cycles are skipped and reported by Cycles.
func (g *DependencyGraph) BuildOrder() []string {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string
	var cycles []Edge

	var visit func(string)
	visit = func(name string) {
		if visited[name] {
			return
		}

		temp[name] = true
		for _, e := range g.deps[name] {
			if temp[e.To] {
				cycles = append(cycles, e)
				continue
			}
			visit(e.To)
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
	}

	for _, name := range g.types {
		visit(name)
	}

	g.cycles = cycles
	return order
}

// Cycles returns the edges skipped by the last BuildOrder.
func (g *DependencyGraph) Cycles() []Edge {
	return slices.Clone(g.cycles)
}

// Dependencies returns the required relations declared on a type.
func (g *DependencyGraph) Dependencies(name string) []Edge {
	return slices.Clone(g.deps[name])
}
