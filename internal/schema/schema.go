// Package schema turns a parsed GraphQL datamodel into the lookup-friendly
// model the seeder walks: types, enums and their fields, each field carrying
// its flattened type chain and directives.
package schema

import "strings"

// Type chain wrapper markers. Any element of Field.TypeChain other than the
// last one is one of these.
const (
	ListMarker    = "ListType"
	NonNullMarker = "NonNullType"
)

// Recognized directive kinds. Anything else is kept on the field but ignored
// during generation.
const (
	DirectiveUnique   = "unique"
	DirectiveRelation = "relation"
	DirectiveDefault  = "default"
)

// ArgKind tags an ArgValue.
type ArgKind string

const (
	ArgString   ArgKind = "string"
	ArgInt      ArgKind = "int"
	ArgFloat    ArgKind = "float"
	ArgBoolean  ArgKind = "boolean"
	ArgEnum     ArgKind = "enum"
	ArgNull     ArgKind = "null"
	ArgList     ArgKind = "list"
	ArgObject   ArgKind = "object"
	ArgVariable ArgKind = "variable"
)

// ArgValue is a directive argument value resolved at normalization time.
// Raw holds the literal without surrounding quotes for strings; lists and
// objects keep their SDL rendering.
type ArgValue struct {
	Kind ArgKind
	Raw  string
}

type Argument struct {
	Name  string
	Value ArgValue
}

type Directive struct {
	Kind      string
	Arguments []Argument
}

// Arg returns the argument with the given name. Names match case-insensitively
// the way the datamodel tooling reads `@default(value: ...)`.
func (d Directive) Arg(name string) (ArgValue, bool) {
	for _, a := range d.Arguments {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return ArgValue{}, false
}

type Field struct {
	Name       string
	TypeChain  []string // outer-to-inner, named type last
	Directives []Directive
}

type Type struct {
	Name   string
	Fields []Field
}

type Enum struct {
	Name   string
	Values []string
}

// Model is the normalized datamodel. It is built once by Normalize and is
// read-only afterwards.
type Model struct {
	Types []*Type
	Enums []*Enum

	typeIndex map[string]*Type
	enumIndex map[string]*Enum
}

// FindType looks up a type by exact name.
func (m *Model) FindType(name string) (*Type, bool) {
	t, ok := m.typeIndex[name]
	return t, ok
}

// FindEnum looks up an enum by exact name.
func (m *Model) FindEnum(name string) (*Enum, bool) {
	e, ok := m.enumIndex[name]
	return e, ok
}
