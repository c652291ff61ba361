package directive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want PlaceholderShape
	}{
		{"empty struct", "type X struct{}", ShapeStruct},
		{"struct with fields", "type X struct{ n int }", ShapeStruct},
		{"alias", "type X = string", ShapeAlias},
		{"interface", "type X interface{ M() }", ShapeInterface},
		{"map", "type X map[string]int", ShapeOther},
		{"slice", "type X []byte", ShapeOther},
		{"chan", "type X chan int", ShapeOther},
		{"func", "type X func()", ShapeOther},
		{"pointer", "type X *int", ShapeOther},
		{"defined over name", "type X string", ShapeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := parseTypeSpec(t, tt.decl)
			if got := Classify(ts); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.decl, got, tt.want)
			}
		})
	}
}

func TestPlaceholderShapeString(t *testing.T) {
	tests := []struct {
		shape PlaceholderShape
		want  string
	}{
		{ShapeStruct, "struct"},
		{ShapeAlias, "type alias"},
		{ShapeInterface, "interface"},
		{ShapeOther, "non-struct type"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.shape), got, tt.want)
		}
	}
}

func parseTypeSpec(t *testing.T, decl string) *ast.TypeSpec {
	t.Helper()
	src := "package p\n\n" + decl + "\n"
	f, err := parser.ParseFile(token.NewFileSet(), "test.go", src, 0)
	if err != nil {
		t.Fatalf("parse %q: %v", decl, err)
	}
	return f.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
}
