package directive

import "go/ast"

// PlaceholderShape classifies the type declaration a directive is
// attached to. Only ShapeStruct qualifies for generation.
type PlaceholderShape int

const (
	ShapeStruct    PlaceholderShape = iota // struct placeholder
	ShapeAlias                             // type X = Y
	ShapeInterface                         // interface declaration
	ShapeOther                             // named type over map, slice, chan, func, pointer, or another name
)

func (s PlaceholderShape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeAlias:
		return "type alias"
	case ShapeInterface:
		return "interface"
	default:
		return "non-struct type"
	}
}

// Classify reports the shape of an annotated type declaration.
//
// The struct's field list is not inspected; the placeholder is
// conventionally empty but a stray field does not disqualify it.
func Classify(ts *ast.TypeSpec) PlaceholderShape {
	if ts.Assign.IsValid() {
		return ShapeAlias
	}
	switch ts.Type.(type) {
	case *ast.StructType:
		return ShapeStruct
	case *ast.InterfaceType:
		return ShapeInterface
	default:
		return ShapeOther
	}
}
