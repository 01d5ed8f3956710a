package writer

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/Rana718/fakegraph/internal/seeder"
)

// GoWriter renders records as a Go source file exposing a Fixtures slice.
// Nested creates become map[string]any{"create": ...} so the data mirrors the
// other formats.
type GoWriter struct {
	w        io.Writer
	pkg      string
	fixtures []jen.Code
}

func NewGoWriter(w io.Writer, pkg string) *GoWriter {
	return &GoWriter{w: w, pkg: pkg}
}

func (g *GoWriter) Begin() error {
	g.fixtures = g.fixtures[:0]
	return nil
}

func (g *GoWriter) WriteRecord(typeName string, index int, rec seeder.Record) error {
	data, err := goRecord(rec)
	if err != nil {
		return err
	}
	g.fixtures = append(g.fixtures, jen.Values(jen.Dict{
		jen.Id("Label"): jen.Lit(Label(typeName, index)),
		jen.Id("Type"):  jen.Lit(typeName),
		jen.Id("Data"):  data,
	}))
	return nil
}

func (g *GoWriter) End() error {
	f := jen.NewFile(g.pkg)
	f.HeaderComment("Code generated by fakegraph. DO NOT EDIT.")

	f.Comment("Fixture is one generated root record.")
	f.Type().Id("Fixture").Struct(
		jen.Id("Label").String(),
		jen.Id("Type").String(),
		jen.Id("Data").Map(jen.String()).Any(),
	)

	f.Comment("Fixtures lists the generated records in generation order.")
	f.Var().Id("Fixtures").Op("=").Index().Id("Fixture").ValuesFunc(func(grp *jen.Group) {
		for _, c := range g.fixtures {
			grp.Add(jen.Line().Add(c))
		}
		if len(g.fixtures) > 0 {
			grp.Line()
		}
	})

	if err := f.Render(g.w); err != nil {
		return fmt.Errorf("failed to render Go fixtures: %w", err)
	}
	return nil
}

func goRecord(rec seeder.Record) (jen.Code, error) {
	items := make([]jen.Code, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		v, err := goValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rec.Type, f.Name, err)
		}
		items = append(items, jen.Lit(f.Name).Op(":").Add(v))
	}
	return jen.Map(jen.String()).Any().Values(items...), nil
}

func goValue(v any) (jen.Code, error) {
	switch v := v.(type) {
	case nil:
		return jen.Nil(), nil
	case string, int, float64, bool:
		return jen.Lit(v), nil
	case seeder.EnumValue:
		return jen.Lit(string(v)), nil
	case seeder.ScalarList:
		items := make([]jen.Code, 0, len(v))
		for _, item := range v {
			c, err := goValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, c)
		}
		return jen.Index().Any().Values(items...), nil
	case seeder.NestedCreate:
		var created jen.Code
		if v.List {
			items := make([]jen.Code, 0, len(v.Records))
			for _, rec := range v.Records {
				c, err := goRecord(rec)
				if err != nil {
					return nil, err
				}
				items = append(items, c)
			}
			created = jen.Index().Map(jen.String()).Any().Values(items...)
		} else if len(v.Records) > 0 {
			c, err := goRecord(v.Records[0])
			if err != nil {
				return nil, err
			}
			created = c
		} else {
			created = jen.Map(jen.String()).Any().Values()
		}
		return jen.Map(jen.String()).Any().Values(jen.Lit("create").Op(":").Add(created)), nil
	default:
		return nil, fmt.Errorf("cannot render %T as Go", v)
	}
}
