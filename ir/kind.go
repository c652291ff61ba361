package ir

import "strconv"

// BackingKind identifies the primitive a generated identifier type wraps.
//
// The set is closed: the emitter has exactly one rendering strategy per
// kind, and a new kind means a new strategy, not configuration. The
// integer values are the wire form used by directive selectors
// (//typedid:id kind=2) and are stable.
type BackingKind int

const (
	KindOpaque BackingKind = iota // 128-bit unique identifier (uuid.UUID)
	KindInt32                     // 32-bit signed integer
	KindInt64                     // 64-bit signed integer
	KindText                      // non-empty string
)

// DefaultKind is the kind selected when a directive omits the selector
// or supplies one that cannot be resolved.
const DefaultKind = KindOpaque

// String returns the selector name of the backing kind.
func (k BackingKind) String() string {
	switch k {
	case KindOpaque:
		return "opaque"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the four defined kinds.
func (k BackingKind) Valid() bool {
	return k >= KindOpaque && k <= KindText
}

// KindFromSelector maps an integer selector to a backing kind.
// Out-of-range selectors normalize to DefaultKind; ok reports whether
// the selector was in range.
func KindFromSelector(n int) (kind BackingKind, ok bool) {
	k := BackingKind(n)
	if !k.Valid() {
		return DefaultKind, false
	}
	return k, true
}

// ParseKind resolves a selector written as a name ("opaque", "int32",
// "int64", "text") or as its integer value ("0".."3"). Anything else
// normalizes to DefaultKind with ok == false.
func ParseKind(s string) (kind BackingKind, ok bool) {
	switch s {
	case "opaque":
		return KindOpaque, true
	case "int32":
		return KindInt32, true
	case "int64":
		return KindInt64, true
	case "text":
		return KindText, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return KindFromSelector(n)
	}
	return DefaultKind, false
}
