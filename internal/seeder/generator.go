package seeder

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/Rana718/fakegraph/internal/schema"
)

// idType fields are assigned by the backend, never synthesized.
const idType = "ID"

// reservedFields are managed by the backend regardless of their type.
var reservedFields = map[string]bool{
	"id":        true,
	"createdAt": true,
	"updatedAt": true,
}

// IsReservedField reports whether f is left to the backend: ID typed fields
// and the id/createdAt/updatedAt bookkeeping fields.
func IsReservedField(f schema.Field) bool {
	return schema.NamedType(f) == idType || reservedFields[f.Name]
}

type uniqueKey struct {
	typeName  string
	fieldName string
}

// Generator builds record graphs for the types of one model. It owns its
// counters and unique-value bookkeeping; a Generator is not safe for
// concurrent use.
type Generator struct {
	model *schema.Model
	opts  Options
	rand  *rand.Rand
	data  *DataGenerator

	created map[string]int
	roots   map[string]int
	unique  map[uniqueKey]map[string]struct{}
}

func NewGenerator(model *schema.Model, opts Options) *Generator {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Generator{
		model:   model,
		opts:    opts,
		rand:    rng,
		data:    NewDataGenerator(rng, opts.Now),
		created: make(map[string]int),
		roots:   make(map[string]int),
		unique:  make(map[uniqueKey]map[string]struct{}),
	}
}

// Model returns the model the generator walks.
func (g *Generator) Model() *schema.Model {
	return g.model
}

// RecordCount is the number of completed records of the type, nested creates
// included.
func (g *Generator) RecordCount(typeName string) int {
	return g.created[typeName]
}

// RootCount is the number of completed root records of the type.
func (g *Generator) RootCount(typeName string) int {
	return g.roots[typeName]
}

// GenerateType builds one root record of t.
func (g *Generator) GenerateType(t *schema.Type) (Record, error) {
	rec, err := g.generateType(t, []string{t.Name})
	if err != nil {
		return Record{}, err
	}
	g.roots[t.Name]++
	return rec, nil
}

func (g *Generator) generateType(t *schema.Type, ancestry []string) (Record, error) {
	rec := Record{Type: t.Name, Fields: make([]FieldValue, 0, len(t.Fields))}
	for _, f := range t.Fields {
		v, ok, err := g.GenerateField(t.Name, f, ancestry)
		if err != nil {
			return Record{}, err
		}
		if ok {
			rec.Fields = append(rec.Fields, FieldValue{Name: f.Name, Value: v})
		}
	}
	g.created[t.Name]++
	return rec, nil
}

// GenerateField decides and produces the value of one field of owner. The
// boolean is false when the field is left out of the record. ancestry lists
// the types being generated on the current path, root first.
func (g *Generator) GenerateField(owner string, f schema.Field, ancestry []string) (any, bool, error) {
	if IsReservedField(f) {
		return nil, false, nil
	}

	named := schema.NamedType(f)
	if named == "" {
		return nil, false, fieldError(owner, f.Name, ErrUnnamedType)
	}

	// never re-enter a type that is already being generated on this path
	if slices.Contains(ancestry, named) {
		return nil, false, nil
	}

	if related, ok := g.model.FindType(named); ok {
		if !schema.IsRequired(f) || len(ancestry) > g.opts.MaxDepth {
			return nil, false, nil
		}
		return g.generateRelation(related, f, ancestry)
	}

	if e, ok := g.model.FindEnum(named); ok {
		return g.enumValue(e, f), true, nil
	}

	if !schema.IsRequired(f) && !g.data.Flip() {
		return nil, false, nil
	}

	v, err := g.generateScalar(owner, f, named)
	if err != nil {
		return nil, false, fieldError(owner, f.Name, err)
	}
	return v, true, nil
}

func (g *Generator) generateRelation(related *schema.Type, f schema.Field, ancestry []string) (any, bool, error) {
	path := append(slices.Clip(ancestry), related.Name)

	n := 1
	if schema.IsList(f) {
		n = g.opts.ListLength
	}

	nested := NestedCreate{Type: related.Name, List: schema.IsList(f), Records: make([]Record, 0, n)}
	for i := 0; i < n; i++ {
		rec, err := g.generateType(related, path)
		if err != nil {
			return nil, false, err
		}
		nested.Records = append(nested.Records, rec)
	}
	return nested, true, nil
}

// enumValue always picks the first declared value, repeated for lists.
func (g *Generator) enumValue(e *schema.Enum, f schema.Field) any {
	v := EnumValue(e.Values[0])
	if !schema.IsList(f) {
		return v
	}
	list := make(ScalarList, g.opts.ListLength)
	for i := range list {
		list[i] = v
	}
	return list
}

func (g *Generator) generateScalar(owner string, f schema.Field, kind string) (any, error) {
	if !schema.IsList(f) {
		return g.generateLeaf(owner, f, kind)
	}

	list := make(ScalarList, 0, g.opts.ListLength)
	for i := 0; i < g.opts.ListLength; i++ {
		v, err := g.generateLeaf(owner, f, kind)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func (g *Generator) generateLeaf(owner string, f schema.Field, kind string) (any, error) {
	if !g.opts.EnforceUnique || !schema.IsUnique(f) {
		return g.data.GenerateForField(f.Name, kind)
	}

	for attempt := 0; attempt < g.opts.UniqueRetries; attempt++ {
		v, err := g.data.GenerateForField(f.Name, kind)
		if err != nil {
			return nil, err
		}
		if !g.IsUniqueValueUsed(owner, f.Name, v) {
			g.AddUniqueValue(owner, f.Name, v)
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrUniqueExhausted, g.opts.UniqueRetries)
}

// GenerateValue synthesizes a standalone value of a scalar kind.
func (g *Generator) GenerateValue(kind string) (any, error) {
	v, err := g.data.Generate(kind)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return v, nil
}

// AddUniqueValue records value as used for typeName.fieldName.
func (g *Generator) AddUniqueValue(typeName, fieldName string, value any) {
	key := uniqueKey{typeName, fieldName}
	used, ok := g.unique[key]
	if !ok {
		used = make(map[string]struct{})
		g.unique[key] = used
	}
	used[uniqueToken(value)] = struct{}{}
}

// IsUniqueValueUsed reports whether value was already recorded for
// typeName.fieldName.
func (g *Generator) IsUniqueValueUsed(typeName, fieldName string, value any) bool {
	_, ok := g.unique[uniqueKey{typeName, fieldName}][uniqueToken(value)]
	return ok
}

// uniqueToken keys values by type and content so 1 and "1" stay distinct.
func uniqueToken(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}
