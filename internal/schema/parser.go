package schema

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseDocument parses datamodel SDL without validating it against the
// GraphQL type system, so Prisma directives like @unique need no
// declarations.
func ParseDocument(name, input string) (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to parse datamodel %s: %w", name, err)
	}
	return doc, nil
}

// Parse parses and normalizes datamodel SDL.
func Parse(name, input string) (*Model, error) {
	doc, err := ParseDocument(name, input)
	if err != nil {
		return nil, err
	}
	return Normalize(doc)
}

// LoadFile reads and normalizes the datamodel at path.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read datamodel: %w", err)
	}
	return Parse(path, string(data))
}
