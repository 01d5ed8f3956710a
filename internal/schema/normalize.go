package schema

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Normalize builds a Model from a parsed schema document. Object types
// without fields and definitions other than objects and enums are skipped.
func Normalize(doc *ast.SchemaDocument) (*Model, error) {
	m := &Model{
		typeIndex: make(map[string]*Type),
		enumIndex: make(map[string]*Enum),
	}
	if doc == nil {
		return m, nil
	}

	for _, def := range doc.Definitions {
		switch def.Kind {
		case ast.Object:
			if len(def.Fields) == 0 {
				continue
			}
			t, err := normalizeType(def)
			if err != nil {
				return nil, err
			}
			if _, dup := m.typeIndex[t.Name]; dup {
				return nil, newSchemaError(t.Name, "type declared more than once")
			}
			m.Types = append(m.Types, t)
			m.typeIndex[t.Name] = t
		case ast.Enum:
			e, err := normalizeEnum(def)
			if err != nil {
				return nil, err
			}
			if _, dup := m.enumIndex[e.Name]; dup {
				return nil, newSchemaError(e.Name, "enum declared more than once")
			}
			m.Enums = append(m.Enums, e)
			m.enumIndex[e.Name] = e
		}
	}

	return m, nil
}

func normalizeType(def *ast.Definition) (*Type, error) {
	t := &Type{Name: def.Name, Fields: make([]Field, 0, len(def.Fields))}
	seen := make(map[string]bool, len(def.Fields))
	for _, fd := range def.Fields {
		if seen[fd.Name] {
			return nil, newSchemaError(def.Name, "field %q declared more than once", fd.Name)
		}
		seen[fd.Name] = true
		t.Fields = append(t.Fields, normalizeField(fd))
	}
	return t, nil
}

func normalizeField(fd *ast.FieldDefinition) Field {
	f := Field{
		Name:      fd.Name,
		TypeChain: flattenType(fd.Type, nil),
	}
	for _, d := range fd.Directives {
		f.Directives = append(f.Directives, normalizeDirective(d))
	}
	return f
}

// flattenType walks the wrapper structure outer-to-inner. gqlparser folds
// non-null into a flag on each level, so a `[Post!]!` becomes
// NonNull, List, NonNull, Post.
func flattenType(t *ast.Type, chain []string) []string {
	if t == nil {
		return append(chain, "")
	}
	if t.NonNull {
		chain = append(chain, NonNullMarker)
	}
	if t.Elem != nil {
		chain = append(chain, ListMarker)
		return flattenType(t.Elem, chain)
	}
	return append(chain, t.NamedType)
}

func normalizeDirective(d *ast.Directive) Directive {
	out := Directive{Kind: d.Name}
	for _, a := range d.Arguments {
		out.Arguments = append(out.Arguments, Argument{
			Name:  a.Name,
			Value: resolveValue(a.Value),
		})
	}
	return out
}

func resolveValue(v *ast.Value) ArgValue {
	if v == nil {
		return ArgValue{Kind: ArgNull}
	}
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return ArgValue{Kind: ArgString, Raw: v.Raw}
	case ast.IntValue:
		return ArgValue{Kind: ArgInt, Raw: v.Raw}
	case ast.FloatValue:
		return ArgValue{Kind: ArgFloat, Raw: v.Raw}
	case ast.BooleanValue:
		return ArgValue{Kind: ArgBoolean, Raw: v.Raw}
	case ast.EnumValue:
		return ArgValue{Kind: ArgEnum, Raw: v.Raw}
	case ast.NullValue:
		return ArgValue{Kind: ArgNull, Raw: "null"}
	case ast.ListValue:
		return ArgValue{Kind: ArgList, Raw: v.String()}
	case ast.ObjectValue:
		return ArgValue{Kind: ArgObject, Raw: v.String()}
	case ast.Variable:
		return ArgValue{Kind: ArgVariable, Raw: v.Raw}
	default:
		return ArgValue{Kind: ArgString, Raw: strings.TrimSpace(v.String())}
	}
}

func normalizeEnum(def *ast.Definition) (*Enum, error) {
	if len(def.EnumValues) == 0 {
		return nil, newSchemaError(def.Name, "enum has no values")
	}
	e := &Enum{Name: def.Name, Values: make([]string, 0, len(def.EnumValues))}
	seen := make(map[string]bool, len(def.EnumValues))
	for _, v := range def.EnumValues {
		if seen[v.Name] {
			return nil, newSchemaError(def.Name, "enum value %q declared more than once", v.Name)
		}
		seen[v.Name] = true
		e.Values = append(e.Values, v.Name)
	}
	return e, nil
}
