package schema

// NamedType returns the scalar, object or enum name the field refers to.
func NamedType(f Field) string {
	if len(f.TypeChain) == 0 {
		return ""
	}
	return f.TypeChain[len(f.TypeChain)-1]
}

// IsRequired reports whether a non-null marker appears anywhere in the chain.
// `[String!]` and `[String]!` are both required for generation purposes.
func IsRequired(f Field) bool {
	return hasMarker(f, NonNullMarker)
}

func IsList(f Field) bool {
	return hasMarker(f, ListMarker)
}

func IsUnique(f Field) bool {
	_, ok := FindDirective(f, DirectiveUnique)
	return ok
}

// DefaultValue returns the value argument of @default.
func DefaultValue(f Field) (ArgValue, bool) {
	d, ok := FindDirective(f, DirectiveDefault)
	if !ok {
		return ArgValue{}, false
	}
	return d.Arg("value")
}

// RelationAlias returns the value argument of @relation, falling back to the
// name argument used by Prisma datamodels.
func RelationAlias(f Field) (ArgValue, bool) {
	d, ok := FindDirective(f, DirectiveRelation)
	if !ok {
		return ArgValue{}, false
	}
	if v, ok := d.Arg("value"); ok {
		return v, true
	}
	return d.Arg("name")
}

// FindDirective returns the first directive of the given kind.
func FindDirective(f Field, kind string) (Directive, bool) {
	for _, d := range f.Directives {
		if d.Kind == kind {
			return d, true
		}
	}
	return Directive{}, false
}

func hasMarker(f Field, marker string) bool {
	// the last element is the named type, never a marker
	for i := 0; i < len(f.TypeChain)-1; i++ {
		if f.TypeChain[i] == marker {
			return true
		}
	}
	return false
}

// TypeString renders the field type back in SDL form, e.g. [Post!]!.
func TypeString(f Field) string {
	return renderChain(f.TypeChain)
}

func renderChain(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	switch chain[0] {
	case NonNullMarker:
		return renderChain(chain[1:]) + "!"
	case ListMarker:
		return "[" + renderChain(chain[1:]) + "]"
	default:
		return chain[0]
	}
}
