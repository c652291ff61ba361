// Package directive parses typedid directives from Go source files.
//
// Directives are line comments in the form:
//
//	//typedid:id [kind=<selector>]
//
// attached to a type declaration, either standalone or on an individual
// spec inside a type ( ... ) block.
//
// The optional kind argument selects the backing primitive by name
// (opaque, int32, int64, text) or by integer selector (0..3). A value
// that resolves to nothing falls back to the default kind; callers
// surface that as a warning rather than an error.
package directive

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/broady/typedid/ir"
)

// Prefix is the comment prefix shared by all typedid directives.
const Prefix = "//typedid:"

// ParseError is a malformed directive: an unknown verb, a bad argument,
// or a directive not attached to a type declaration.
type ParseError struct {
	Pos token.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Directive represents a parsed typedid directive attached to a type
// declaration.
type Directive struct {
	Kind     ir.BackingKind // resolved backing kind, after defaulting
	KindArg  string         // raw kind= value as written (empty if omitted)
	KindOK   bool           // false when KindArg could not be resolved and Kind is the default
	TypeSpec *ast.TypeSpec  // the annotated declaration
	GenDecl  *ast.GenDecl   // the declaration block containing TypeSpec
	Pos      token.Position // directive source location
}

// Parse extracts typedid directives from a single parsed file.
//
// Returns an error if:
//   - A directive uses an unknown verb or argument key
//   - A directive argument is not in key=value form
//   - A directive is not attached to a type declaration
func Parse(fset *token.FileSet, f *ast.File) ([]Directive, error) {
	// Build a map of comment end positions to directives
	// so we can match them to the declarations they document.
	type pending struct {
		kind    ir.BackingKind
		kindArg string
		kindOK  bool
		pos     token.Position
	}
	commentToDirective := make(map[token.Pos]pending)

	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if !strings.HasPrefix(c.Text, Prefix) {
				continue
			}

			text := strings.TrimPrefix(c.Text, Prefix)
			parts := strings.Fields(text)
			if len(parts) == 0 {
				continue
			}

			pos := fset.Position(c.Pos())
			if parts[0] != "id" {
				return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("unknown directive //typedid:%s", parts[0])}
			}

			p := pending{kind: ir.DefaultKind, kindOK: true, pos: pos}
			for _, arg := range parts[1:] {
				key, value, found := strings.Cut(arg, "=")
				if !found {
					return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("malformed directive argument %q (want key=value)", arg)}
				}
				switch key {
				case "kind":
					p.kindArg = value
					p.kind, p.kindOK = ir.ParseKind(value)
				default:
					return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("unknown directive argument %q", key)}
				}
			}

			commentToDirective[cg.End()] = p
		}
	}

	if len(commentToDirective) == 0 {
		return nil, nil
	}

	// Match directives to type declarations. A doc comment on a
	// standalone declaration attaches to the GenDecl; inside a
	// type ( ... ) block it attaches to the individual TypeSpec.
	var directives []Directive
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		if gd.Doc != nil {
			if p, ok := commentToDirective[gd.Doc.End()]; ok {
				if len(gd.Specs) != 1 {
					return nil, &ParseError{Pos: p.pos, Msg: "//typedid:id directive on a type group; attach it to a declaration inside the block"}
				}
				directives = append(directives, Directive{
					Kind:     p.kind,
					KindArg:  p.kindArg,
					KindOK:   p.kindOK,
					TypeSpec: gd.Specs[0].(*ast.TypeSpec),
					GenDecl:  gd,
					Pos:      p.pos,
				})
				delete(commentToDirective, gd.Doc.End())
			}
		}

		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if ts.Doc == nil {
				continue
			}
			if p, ok := commentToDirective[ts.Doc.End()]; ok {
				directives = append(directives, Directive{
					Kind:     p.kind,
					KindArg:  p.kindArg,
					KindOK:   p.kindOK,
					TypeSpec: ts,
					GenDecl:  gd,
					Pos:      p.pos,
				})
				delete(commentToDirective, ts.Doc.End())
			}
		}
	}

	// Check for unmatched directives
	for _, p := range commentToDirective {
		return nil, &ParseError{Pos: p.pos, Msg: "//typedid:id directive must be attached to a type declaration"}
	}

	return directives, nil
}

// CleanDoc returns the lines of a doc comment with directive lines
// removed and comment markers stripped, for carrying the user's own
// documentation over to generated output. Returns nil when nothing but
// directives is present.
func CleanDoc(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var lines []string
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, Prefix) {
			continue
		}
		text := c.Text
		switch {
		case strings.HasPrefix(text, "//"):
			lines = append(lines, strings.TrimPrefix(strings.TrimPrefix(text, "//"), " "))
		case strings.HasPrefix(text, "/*"):
			text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
			for _, l := range strings.Split(text, "\n") {
				lines = append(lines, strings.TrimSpace(l))
			}
		}
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
