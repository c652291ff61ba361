// Package extract discovers annotated placeholder declarations in Go
// packages and lowers them to descriptors.
//
// Loading is syntax-only: placeholder declarations and previously
// generated declarations never reach the type checker, so regenerating
// over existing output is not a redeclaration conflict.
package extract

import (
	"context"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/broady/typedid/internal/directive"
	"github.com/broady/typedid/ir"
)

// Tag is the build constraint expected on placeholder files. Loading
// always enables it so the guarded files are part of the scan.
const Tag = "typedid"

// Options configures a package scan.
type Options struct {
	// Dir is the working directory for package loading.
	// Empty means the process working directory.
	Dir string

	// BuildTags are the build constraints enabled during loading.
	// Tag is included whether or not it is listed.
	BuildTags []string
}

// Result contains the descriptors and advisory warnings from a scan.
type Result struct {
	Descriptors []ir.Descriptor
	Warnings    []ir.Warning
}

// Packages loads the packages matching patterns and extracts a
// descriptor for every annotated placeholder declaration.
//
// The patterns follow go command semantics: ".", "./...", an import
// path, or a directory path. Warnings cover declarations that were
// skipped or normalized; they never fail the scan.
func Packages(ctx context.Context, patterns []string, opts Options) (*Result, error) {
	tags := opts.BuildTags
	if !slices.Contains(tags, Tag) {
		tags = append([]string{Tag}, tags...)
	}
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedModule,
		Dir:        opts.Dir,
		BuildFlags: []string{"-tags=" + strings.Join(tags, ",")},
		Tests:      false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %q", strings.Join(patterns, " "))
	}

	result := &Result{}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		if err := scanPackage(pkg, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// scanPackage extracts descriptors from one loaded package into result.
func scanPackage(pkg *packages.Package, result *Result) error {
	seen := make(map[string]bool) // type names already extracted in this package

	for _, f := range pkg.Syntax {
		directives, err := directive.Parse(pkg.Fset, f)
		if err != nil {
			return err
		}
		if len(directives) == 0 {
			continue
		}

		if !hasBuildTag(f, Tag) {
			src := position(pkg.Fset, f.Package)
			result.Warnings = append(result.Warnings, ir.Warning{
				Code:    ir.WarnMissingBuildTag,
				Message: fmt.Sprintf("placeholder file is not guarded by the %s build tag; generated declarations will conflict with it in normal builds", Tag),
				Source:  &src,
			})
		}

		for _, d := range directives {
			name := d.TypeSpec.Name.Name
			src := position(pkg.Fset, d.TypeSpec.Pos())

			if shape := directive.Classify(d.TypeSpec); shape != directive.ShapeStruct {
				result.Warnings = append(result.Warnings, ir.Warning{
					Code:     ir.WarnSkippedNonStruct,
					Message:  fmt.Sprintf("%s is declared as %s; only struct placeholders generate code", name, shape),
					Source:   &src,
					TypeName: name,
				})
				continue
			}

			if seen[name] {
				result.Warnings = append(result.Warnings, ir.Warning{
					Code:     ir.WarnDuplicateType,
					Message:  fmt.Sprintf("duplicate placeholder declaration of %s; keeping the first", name),
					Source:   &src,
					TypeName: name,
				})
				continue
			}
			seen[name] = true

			if !d.KindOK {
				result.Warnings = append(result.Warnings, ir.Warning{
					Code:     kindWarningCode(d.KindArg),
					Message:  fmt.Sprintf("kind %q does not select a backing kind; using %s", d.KindArg, ir.DefaultKind),
					Source:   &src,
					TypeName: name,
				})
			}

			doc := directive.CleanDoc(d.TypeSpec.Doc)
			if doc == nil {
				doc = directive.CleanDoc(d.GenDecl.Doc)
			}

			result.Descriptors = append(result.Descriptors, ir.Descriptor{
				PkgPath:  pkg.PkgPath,
				PkgName:  pkg.Name,
				TypeName: name,
				Kind:     d.Kind,
				Exported: token.IsExported(name),
				Doc:      doc,
				Src:      src,
			})
		}
	}

	return nil
}

// kindWarningCode distinguishes a numeric selector outside 0..3 from a
// name that matches no kind.
func kindWarningCode(arg string) string {
	if _, err := strconv.Atoi(arg); err == nil {
		return ir.WarnSelectorOutOfRange
	}
	return ir.WarnUnknownKind
}

// hasBuildTag reports whether the file's build constraints mention tag.
// Advisory check only: it does not evaluate the constraint expression.
func hasBuildTag(f *ast.File, tag string) bool {
	for _, cg := range f.Comments {
		if cg.Pos() >= f.Package {
			break
		}
		for _, c := range cg.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				continue
			}
			if mentionsTag(expr, tag) {
				return true
			}
		}
	}
	return false
}

func mentionsTag(expr constraint.Expr, tag string) bool {
	switch x := expr.(type) {
	case *constraint.TagExpr:
		return x.Tag == tag
	case *constraint.NotExpr:
		return mentionsTag(x.X, tag)
	case *constraint.AndExpr:
		return mentionsTag(x.X, tag) || mentionsTag(x.Y, tag)
	case *constraint.OrExpr:
		return mentionsTag(x.X, tag) || mentionsTag(x.Y, tag)
	}
	return false
}

func position(fset *token.FileSet, pos token.Pos) ir.Source {
	p := fset.Position(pos)
	return ir.Source{File: p.Filename, Line: p.Line, Column: p.Column}
}
