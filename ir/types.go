package ir

import "strconv"

// Source represents source code location information.
type Source struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

// String returns file:line:column, or "-" for an empty location.
func (s Source) String() string {
	if s.IsZero() {
		return "-"
	}
	out := s.File
	if s.Line > 0 {
		out += ":" + strconv.Itoa(s.Line)
		if s.Column > 0 {
			out += ":" + strconv.Itoa(s.Column)
		}
	}
	return out
}

// Warning codes recorded during extraction and generation.
const (
	// WarnSkippedNonStruct marks an annotated declaration that is not a
	// struct type and therefore produced no output.
	WarnSkippedNonStruct = "skipped_non_struct"

	// WarnUnknownKind marks a kind selector that resolved to neither a
	// name nor an integer and was normalized to the default kind.
	WarnUnknownKind = "unknown_kind"

	// WarnSelectorOutOfRange marks an integer kind selector outside 0..3
	// that was normalized to the default kind.
	WarnSelectorOutOfRange = "selector_out_of_range"

	// WarnMissingBuildTag marks a placeholder file that lacks the typedid
	// build constraint, so the generated declaration will collide with it
	// in ordinary builds.
	WarnMissingBuildTag = "missing_build_tag"

	// WarnDuplicateType marks a second annotated declaration with an
	// already-seen qualified name; the first declaration wins.
	WarnDuplicateType = "duplicate_type"
)

// Warning represents a non-fatal issue encountered during extraction or
// generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Source is the location that triggered the warning, if applicable.
	Source *Source

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}
