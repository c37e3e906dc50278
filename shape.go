package fieldcast

///////////////////////////////////////////////////////////////////////////////
// Shape
///////////////////////////////////////////////////////////////////////////////

// Field binds one input key to its cast.
type Field struct {
	Name string
	Cast FieldCast
}

// F is shorthand for declaring a Field in a Shape literal.
func F(name string, cast FieldCast) Field {
	return Field{Name: name, Cast: cast}
}

// Shape is the ordered set of known fields for a validator, fixed at
// construction. Declaration order is the evaluation order, which makes the
// fail-fast "first error reported" behavior a deterministic contract rather
// than an accident of map iteration.
type Shape []Field

// Names returns the known field names in declaration order.
func (s Shape) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Has reports whether name is a known field of the shape.
func (s Shape) Has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}
