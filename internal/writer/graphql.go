package writer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Rana718/fakegraph/internal/gencommon"
	"github.com/Rana718/fakegraph/internal/seeder"
)

// GraphQLWriter writes a single mutation document with one aliased create
// call per root record:
//
//	mutation {
//	  Post1: createPost(data: { title: "...", author: { create: { name: "..." } } }) { id }
//	}
type GraphQLWriter struct {
	w *bufio.Writer
}

func NewGraphQLWriter(w io.Writer) *GraphQLWriter {
	return &GraphQLWriter{w: bufio.NewWriter(w)}
}

func (g *GraphQLWriter) Begin() error {
	_, err := g.w.WriteString("mutation {\n")
	return err
}

func (g *GraphQLWriter) WriteRecord(typeName string, index int, rec seeder.Record) error {
	b := gencommon.GetBuilder()
	defer gencommon.PutBuilder(b)

	fmt.Fprintf(b, "  %s: create%s(data: ", Label(typeName, index), typeName)
	if err := writeGraphQLObject(b, rec); err != nil {
		return err
	}
	b.WriteString(") { id }\n")
	_, err := g.w.WriteString(b.String())
	return err
}

func (g *GraphQLWriter) End() error {
	if _, err := g.w.WriteString("}\n"); err != nil {
		return err
	}
	return g.w.Flush()
}

func writeGraphQLObject(b *strings.Builder, rec seeder.Record) error {
	if len(rec.Fields) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteString("{ ")
	for i, f := range rec.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		if err := writeGraphQLValue(b, f.Value); err != nil {
			return fmt.Errorf("%s.%s: %w", rec.Type, f.Name, err)
		}
	}
	b.WriteString(" }")
	return nil
}

func writeGraphQLValue(b *strings.Builder, v any) error {
	switch v := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		// JSON string escapes are a subset of GraphQL's
		quoted, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b.Write(quoted)
	case int:
		b.WriteString(strconv.Itoa(v))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case seeder.EnumValue:
		b.WriteString(string(v))
	case seeder.ScalarList:
		b.WriteString("{ set: [")
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeGraphQLValue(b, item); err != nil {
				return err
			}
		}
		b.WriteString("] }")
	case seeder.NestedCreate:
		b.WriteString("{ create: ")
		if v.List {
			b.WriteString("[")
		}
		for i, rec := range v.Records {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeGraphQLObject(b, rec); err != nil {
				return err
			}
		}
		if v.List {
			b.WriteString("]")
		}
		b.WriteString(" }")
	default:
		return fmt.Errorf("cannot render %T as GraphQL", v)
	}
	return nil
}
