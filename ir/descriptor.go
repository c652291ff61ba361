// Package ir defines the intermediate representation for typed identifier
// declarations. A Descriptor is the normalized form of one annotated
// placeholder declaration; the golang package renders Descriptors into
// generated source and never looks back at the syntax tree.
package ir

import (
	"go/token"
	"strconv"
	"unicode"
)

// Descriptor is the immutable record of one annotated declaration.
//
// Extraction builds exactly one Descriptor per qualifying declaration per
// run; the emitter consumes it once. Descriptors carry no cross-declaration
// state: two declarations never merge, and rendering one never observes
// another.
type Descriptor struct {
	// PkgPath is the import path of the declaring package.
	// Used verbatim in the artifact key; may be empty for
	// hand-built descriptors outside any package.
	PkgPath string

	// PkgName is the package identifier for the generated file's
	// package clause.
	PkgName string

	// TypeName is the simple name of the wrapper type. Always a valid
	// Go identifier when produced by extraction.
	TypeName string

	// Kind selects the backing primitive and therefore the full member
	// set of the generated type.
	Kind BackingKind

	// Exported records whether TypeName is exported. It propagates to
	// every generated package-level name: an unexported type gets
	// emptyX/newX/xFrom/parseX/tryParseX instead of the exported forms.
	Exported bool

	// Doc is the placeholder declaration's doc comment with directive
	// lines stripped, one element per line. Carried onto the generated
	// type declaration when non-empty.
	Doc []string

	// Src is the placeholder's source location, for diagnostics.
	Src Source
}

// QualifiedName returns the artifact key for this descriptor:
// "pkgpath.TypeName", or the bare type name when PkgPath is empty.
// The key is never interpreted structurally.
func (d Descriptor) QualifiedName() string {
	if d.PkgPath == "" {
		return d.TypeName
	}
	return d.PkgPath + "." + d.TypeName
}

// ValidationError describes a structural problem with a hand-built
// Descriptor.
type ValidationError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// Validate checks the descriptor for structural issues.
// Returns all problems found, not just the first. Descriptors produced
// by extraction are always valid; this exists for drivers that build
// descriptors by hand.
func (d Descriptor) Validate() []error {
	var errs []error

	if d.TypeName == "" {
		errs = append(errs, &ValidationError{
			Code:    "missing_type_name",
			Message: "descriptor has no type name",
		})
	} else if !isIdentifier(d.TypeName) {
		errs = append(errs, &ValidationError{
			Code:    "invalid_type_name",
			Message: "type name " + strconv.Quote(d.TypeName) + " is not a valid Go identifier",
		})
	}

	if d.PkgName == "" {
		errs = append(errs, &ValidationError{
			Code:    "missing_package_name",
			Message: "descriptor for " + d.TypeName + " has no package name",
		})
	} else if !isIdentifier(d.PkgName) {
		errs = append(errs, &ValidationError{
			Code:    "invalid_package_name",
			Message: "package name " + strconv.Quote(d.PkgName) + " is not a valid Go identifier",
		})
	}

	if !d.Kind.Valid() {
		errs = append(errs, &ValidationError{
			Code:    "invalid_kind",
			Message: "descriptor for " + d.TypeName + " has out-of-range kind " + strconv.Itoa(int(d.Kind)),
		})
	}

	if d.TypeName != "" && d.Exported != token.IsExported(d.TypeName) {
		errs = append(errs, &ValidationError{
			Code:    "visibility_mismatch",
			Message: "Exported flag disagrees with the case of " + d.TypeName,
		})
	}

	return errs
}

// isIdentifier reports whether s is a valid Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
