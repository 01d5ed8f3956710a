// Package writer renders generated records into seed files. Every format
// implements seeder.Sink.
package writer

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Rana718/fakegraph/internal/seeder"
)

const (
	FormatGraphQL = "graphql"
	FormatSQL     = "sql"
	FormatYAML    = "yaml"
	FormatGo      = "go"
)

// Formats lists the supported output formats.
var Formats = []string{FormatGraphQL, FormatSQL, FormatYAML, FormatGo}

const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

var Dialects = []string{DialectPostgres, DialectMySQL, DialectSQLite}

type Options struct {
	Dialect string        // sql only, default postgres
	Package string        // go only, default "fixtures"
	NewID   func() string // sql only, default uuid.NewString
}

// New returns the sink for format writing to w.
func New(format string, w io.Writer, opts Options) (seeder.Sink, error) {
	switch format {
	case FormatGraphQL, "":
		return NewGraphQLWriter(w), nil
	case FormatSQL:
		if opts.Dialect == "" {
			opts.Dialect = DialectPostgres
		}
		if !slices.Contains(Dialects, opts.Dialect) {
			return nil, fmt.Errorf("unsupported SQL dialect: %s. Supported dialects: %v", opts.Dialect, Dialects)
		}
		if opts.NewID == nil {
			opts.NewID = uuid.NewString
		}
		return NewSQLWriter(w, opts.Dialect, opts.NewID), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	case FormatGo:
		if opts.Package == "" {
			opts.Package = "fixtures"
		}
		return NewGoWriter(w, opts.Package), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s. Supported formats: %v", format, Formats)
	}
}

// FormatFromPath infers the format from an output file extension, returning
// "" when the extension says nothing.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphql", ".gql":
		return FormatGraphQL
	case ".sql":
		return FormatSQL
	case ".yaml", ".yml":
		return FormatYAML
	case ".go":
		return FormatGo
	default:
		return ""
	}
}

// Label is the name a root record is published under.
func Label(typeName string, index int) string {
	return fmt.Sprintf("%s%d", typeName, index)
}
