package seeder

import "time"

// Options tunes a Generator. The zero value is usable.
type Options struct {
	Seed          int64            // 0 seeds from the clock
	MaxDepth      int              // required-relation nesting levels below the root, default 1
	ListLength    int              // items generated for list fields, default 1
	EnforceUnique bool             // re-sample @unique scalars until unused
	UniqueRetries int              // attempts before giving up on a unique value, default 100
	Now           func() time.Time // clock for DateTime values, default time.Now
}

func (o Options) withDefaults() Options {
	if o.MaxDepth < 1 {
		o.MaxDepth = 1
	}
	if o.ListLength < 1 {
		o.ListLength = 1
	}
	if o.UniqueRetries < 1 {
		o.UniqueRetries = 100
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Record is one generated record graph. Fields keep the declaration order of
// the type; omitted fields are absent.
type Record struct {
	Type   string
	Fields []FieldValue
}

type FieldValue struct {
	Name  string
	Value any
}

// Get returns the value generated for the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// NestedCreate wraps records created inline to satisfy a required relation.
// List is set when the relation field is a list, in which case Records may
// hold more than one entry.
type NestedCreate struct {
	Type    string
	List    bool
	Records []Record
}

// EnumValue is an enum member. Sinks render it unquoted where the format
// distinguishes enums from strings.
type EnumValue string

// ScalarList holds the values generated for a list-of-scalars field.
type ScalarList []any

// Sink receives generated root records in order. Implementations own any
// stream they write to.
type Sink interface {
	Begin() error
	WriteRecord(typeName string, index int, rec Record) error
	End() error
}
