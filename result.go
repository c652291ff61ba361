package typedid

import "github.com/broady/typedid/ir"

// Result contains generation output metadata.
type Result struct {
	// Artifacts lists the generated files, in the order written.
	Artifacts []Artifact

	// Warnings contains non-fatal issues encountered: skipped
	// declarations, normalized kind selectors, missing build tags,
	// duplicates.
	Warnings []ir.Warning
}

// Artifact describes a generated file.
type Artifact struct {
	// Type is the qualified name of the identifier type,
	// e.g. "example.com/shop.OrderID".
	Type string

	// Path is the sink-relative, slash-separated path of the file.
	Path string

	// Size is the number of bytes written.
	Size int
}

// Artifact returns the artifact generated for the qualified type name.
func (r *Result) Artifact(qualifiedName string) (Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Type == qualifiedName {
			return a, true
		}
	}
	return Artifact{}, false
}
