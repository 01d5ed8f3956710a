package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrder(t *testing.T) {
	m := mustModel(t, `
type Comment { body: String! post: Post! author: User! }
type Post { title: String! author: User! editor: User }
type User { name: String! }
`)
	g := BuildDependencyGraph(m)
	order := g.BuildOrder()

	assert.Equal(t, []string{"User", "Post", "Comment"}, order)
	assert.Empty(t, g.Cycles())
	assert.Equal(t, []Edge{{From: "Post", Field: "author", To: "User"}}, g.Dependencies("Post"),
		"optional relations are not dependencies")
}

func TestBuildOrderCycles(t *testing.T) {
	m := mustModel(t, `
type A { label: String! b: B! }
type B { label: String! a: A! }
type Node { label: String! parent: Node! }
`)
	g := BuildDependencyGraph(m)
	order := g.BuildOrder()

	assert.ElementsMatch(t, []string{"A", "B", "Node"}, order)
	assert.ElementsMatch(t, []Edge{
		{From: "B", Field: "a", To: "A"},
		{From: "Node", Field: "parent", To: "Node"},
	}, g.Cycles())
}
