// Package golang renders strongly typed identifier declarations from
// descriptors.
//
// Render produces one complete, gofmt-formatted Go source file per
// descriptor. The member set is identical across the four backing
// kinds; only the cells in kindSpec and the per-kind emitter arms
// differ. Generated code depends on the standard library and, for the
// opaque kind, github.com/google/uuid.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/broady/typedid/ir"
)

// Header is the first line of every generated file, in the canonical
// form build tools recognize.
const Header = "// Code generated by typedid. DO NOT EDIT."

// GeneratedSuffix is the default file name suffix for generated files.
const GeneratedSuffix = "_typedid.go"

// Filename returns the generated file name for a descriptor:
// the snake_case type name plus GeneratedSuffix.
func Filename(d ir.Descriptor) string {
	return Snake(d.TypeName) + GeneratedSuffix
}

// Render generates the complete Go source file declaring the
// identifier type described by d.
func Render(d ir.Descriptor) ([]byte, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid descriptor %s: %w", d.QualifiedName(), errs[0])
	}

	e := &emitter{d: d, spec: kinds[d.Kind], names: deriveNames(d)}

	var buf bytes.Buffer
	e.emitFile(&buf)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// A format failure means the emitter produced invalid Go.
		// Attach the unformatted text so the defect is visible.
		return nil, fmt.Errorf("format generated %s: %w\n\nunformatted source:\n%s", d.TypeName, err, buf.String())
	}
	return src, nil
}

// names are the package-level identifiers derived from the type name,
// cased to match its visibility. Method names are fixed by interface
// contracts and do not vary.
type names struct {
	typ      string // OrderID
	empty    string // EmptyOrderID
	new      string // NewOrderID
	from     string // OrderIDFrom
	parse    string // ParseOrderID
	tryParse string // TryParseOrderID
}

func deriveNames(d ir.Descriptor) names {
	t := d.TypeName
	if d.Exported {
		return names{
			typ:      t,
			empty:    "Empty" + t,
			new:      "New" + t,
			from:     t + "From",
			parse:    "Parse" + t,
			tryParse: "TryParse" + t,
		}
	}
	u := upperFirst(t)
	return names{
		typ:      t,
		empty:    "empty" + u,
		new:      "new" + u,
		from:     t + "From",
		parse:    "parse" + u,
		tryParse: "tryParse" + u,
	}
}

// emitter writes the generated file for one descriptor.
type emitter struct {
	d     ir.Descriptor
	spec  kindSpec
	names names
}

func (e *emitter) emitFile(buf *bytes.Buffer) {
	e.emitHeader(buf)
	e.emitImports(buf)
	e.emitTypeDecl(buf)
	e.emitEmpty(buf)
	if e.spec.hasNew {
		e.emitNew(buf)
	}
	e.emitFrom(buf)
	e.emitParse(buf)
	e.emitTryParse(buf)
	e.emitRaw(buf)
	e.emitIsEmpty(buf)
	e.emitString(buf)
	e.emitCompare(buf)
	e.emitJSON(buf)
	e.emitText(buf)
	e.emitSQL(buf)
}

func (e *emitter) emitHeader(buf *bytes.Buffer) {
	buf.WriteString(Header)
	buf.WriteString("\n\n")
	fmt.Fprintf(buf, "package %s\n\n", e.d.PkgName)
}

func (e *emitter) emitImports(buf *bytes.Buffer) {
	var std, ext []string
	for _, path := range e.spec.imports {
		if strings.Contains(strings.SplitN(path, "/", 2)[0], ".") {
			ext = append(ext, path)
		} else {
			std = append(std, path)
		}
	}

	buf.WriteString("import (\n")
	for _, path := range std {
		fmt.Fprintf(buf, "\t%q\n", path)
	}
	if len(ext) > 0 {
		buf.WriteString("\n")
		for _, path := range ext {
			fmt.Fprintf(buf, "\t%q\n", path)
		}
	}
	buf.WriteString(")\n\n")
}

func (e *emitter) emitTypeDecl(buf *bytes.Buffer) {
	n := e.names

	// The user's own doc when the placeholder had one, a standard
	// one-liner otherwise.
	if len(e.d.Doc) > 0 {
		for _, line := range e.d.Doc {
			if line == "" {
				buf.WriteString("//\n")
			} else {
				fmt.Fprintf(buf, "// %s\n", line)
			}
		}
	} else {
		fmt.Fprintf(buf, "// %s is a strongly typed identifier backed by %s.\n", n.typ, e.spec.prim)
	}

	buf.WriteString("//\n")
	if e.spec.fromErr {
		fmt.Fprintf(buf, "// Values compare with == and are usable as map keys. The direct\n")
		fmt.Fprintf(buf, "// conversion %s(v) bypasses validation; %s rejects the\n", n.typ, n.from)
		fmt.Fprintf(buf, "// empty string.\n")
	} else {
		fmt.Fprintf(buf, "// Values compare with == and are usable as map keys. %s(v) and\n", n.typ)
		fmt.Fprintf(buf, "// Raw convert to and from the backing primitive.\n")
	}
	fmt.Fprintf(buf, "type %s %s\n\n", n.typ, e.spec.prim)
}

func (e *emitter) emitEmpty(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// %s is the zero %s%s.\n", n.empty, n.typ, e.spec.zeroNote)
	fmt.Fprintf(buf, "var %s %s\n\n", n.empty, n.typ)
}

func (e *emitter) emitNew(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// %s returns a new random %s.\n", n.new, n.typ)
	fmt.Fprintf(buf, "func %s() %s {\n", n.new, n.typ)
	fmt.Fprintf(buf, "\treturn %s(uuid.New())\n", n.typ)
	buf.WriteString("}\n\n")
}

func (e *emitter) emitFrom(buf *bytes.Buffer) {
	n := e.names
	if e.spec.fromErr {
		fmt.Fprintf(buf, "// %s validates and returns v as %s; the empty string is rejected.\n", n.from, n.typ)
		fmt.Fprintf(buf, "func %s(v string) (%s, error) {\n", n.from, n.typ)
		fmt.Fprintf(buf, "\tif v == \"\" {\n")
		fmt.Fprintf(buf, "\t\treturn %s, fmt.Errorf(\"invalid %s: empty string\")\n", n.empty, n.typ)
		buf.WriteString("\t}\n")
		fmt.Fprintf(buf, "\treturn %s(v), nil\n", n.typ)
		buf.WriteString("}\n\n")
		return
	}
	fmt.Fprintf(buf, "// %s converts a raw %s to %s.\n", n.from, e.spec.prim, n.typ)
	fmt.Fprintf(buf, "func %s(v %s) %s {\n", n.from, e.spec.prim, n.typ)
	fmt.Fprintf(buf, "\treturn %s(v)\n", n.typ)
	buf.WriteString("}\n\n")
}

func (e *emitter) emitParse(buf *bytes.Buffer) {
	n := e.names
	switch e.d.Kind {
	case ir.KindOpaque:
		fmt.Fprintf(buf, "// %s parses s in the canonical UUID text form.\n", n.parse)
		fmt.Fprintf(buf, "func %s(s string) (%s, error) {\n", n.parse, n.typ)
		buf.WriteString("\tu, err := uuid.Parse(s)\n")
		buf.WriteString("\tif err != nil {\n")
		fmt.Fprintf(buf, "\t\treturn %s, fmt.Errorf(\"parse %s: %%w\", err)\n", n.empty, n.typ)
		buf.WriteString("\t}\n")
		fmt.Fprintf(buf, "\treturn %s(u), nil\n", n.typ)
		buf.WriteString("}\n\n")
	case ir.KindInt32, ir.KindInt64:
		bits := 32
		if e.d.Kind == ir.KindInt64 {
			bits = 64
		}
		fmt.Fprintf(buf, "// %s parses s as base-10 digits.\n", n.parse)
		fmt.Fprintf(buf, "func %s(s string) (%s, error) {\n", n.parse, n.typ)
		fmt.Fprintf(buf, "\tn, err := strconv.ParseInt(s, 10, %d)\n", bits)
		buf.WriteString("\tif err != nil {\n")
		fmt.Fprintf(buf, "\t\treturn %s, fmt.Errorf(\"parse %s: %%w\", err)\n", n.empty, n.typ)
		buf.WriteString("\t}\n")
		fmt.Fprintf(buf, "\treturn %s(n), nil\n", n.typ)
		buf.WriteString("}\n\n")
	case ir.KindText:
		fmt.Fprintf(buf, "// %s returns s as %s; any non-empty string parses.\n", n.parse, n.typ)
		fmt.Fprintf(buf, "func %s(s string) (%s, error) {\n", n.parse, n.typ)
		fmt.Fprintf(buf, "\treturn %s(s)\n", n.from)
		buf.WriteString("}\n\n")
	}
}

func (e *emitter) emitTryParse(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// %s parses s, returning (%s, false) when s\n", n.tryParse, n.empty)
	buf.WriteString("// does not parse.\n")
	fmt.Fprintf(buf, "func %s(s string) (%s, bool) {\n", n.tryParse, n.typ)
	fmt.Fprintf(buf, "\tv, err := %s(s)\n", n.parse)
	buf.WriteString("\tif err != nil {\n")
	fmt.Fprintf(buf, "\t\treturn %s, false\n", n.empty)
	buf.WriteString("\t}\n")
	buf.WriteString("\treturn v, true\n")
	buf.WriteString("}\n\n")
}

func (e *emitter) emitRaw(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// Raw returns the backing %s.\n", e.spec.prim)
	fmt.Fprintf(buf, "func (v %s) Raw() %s {\n", n.typ, e.spec.prim)
	fmt.Fprintf(buf, "\treturn %s(v)\n", e.spec.prim)
	buf.WriteString("}\n\n")
}

func (e *emitter) emitIsEmpty(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// IsEmpty reports whether v is %s.\n", n.empty)
	fmt.Fprintf(buf, "func (v %s) IsEmpty() bool {\n", n.typ)
	fmt.Fprintf(buf, "\treturn v == %s\n", n.empty)
	buf.WriteString("}\n\n")
}

func (e *emitter) emitString(buf *bytes.Buffer) {
	n := e.names
	switch e.d.Kind {
	case ir.KindOpaque:
		buf.WriteString("// String returns the canonical UUID text form.\n")
		fmt.Fprintf(buf, "func (v %s) String() string {\n", n.typ)
		buf.WriteString("\treturn uuid.UUID(v).String()\n")
	case ir.KindInt32, ir.KindInt64:
		buf.WriteString("// String returns the base-10 digits of v.\n")
		fmt.Fprintf(buf, "func (v %s) String() string {\n", n.typ)
		buf.WriteString("\treturn strconv.FormatInt(int64(v), 10)\n")
	case ir.KindText:
		buf.WriteString("// String returns the backing string unchanged.\n")
		fmt.Fprintf(buf, "func (v %s) String() string {\n", n.typ)
		buf.WriteString("\treturn string(v)\n")
	}
	buf.WriteString("}\n\n")
}

func (e *emitter) emitCompare(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// Compare returns -1, 0, or 1 ordering v against o %s.\n", e.spec.compareWord)
	fmt.Fprintf(buf, "func (v %s) Compare(o %s) int {\n", n.typ, n.typ)
	if e.d.Kind == ir.KindOpaque {
		buf.WriteString("\treturn bytes.Compare(v[:], o[:])\n")
	} else {
		fmt.Fprintf(buf, "\treturn cmp.Compare(%s(v), %s(o))\n", e.spec.prim, e.spec.prim)
	}
	buf.WriteString("}\n\n")
}

func (e *emitter) emitJSON(buf *bytes.Buffer) {
	n := e.names
	switch e.d.Kind {
	case ir.KindOpaque:
		buf.WriteString("// MarshalJSON encodes v as a JSON string in canonical UUID form.\n")
		fmt.Fprintf(buf, "func (v %s) MarshalJSON() ([]byte, error) {\n", n.typ)
		buf.WriteString("\treturn json.Marshal(uuid.UUID(v).String())\n")
		buf.WriteString("}\n\n")

		buf.WriteString("// UnmarshalJSON decodes a JSON string in canonical UUID form.\n")
		buf.WriteString("// JSON null leaves v unchanged.\n")
		e.emitUnmarshalJSONString(buf, n.parse)
	case ir.KindInt32, ir.KindInt64:
		buf.WriteString("// MarshalJSON encodes v as a bare JSON number.\n")
		fmt.Fprintf(buf, "func (v %s) MarshalJSON() ([]byte, error) {\n", n.typ)
		buf.WriteString("\treturn []byte(v.String()), nil\n")
		buf.WriteString("}\n\n")

		buf.WriteString("// UnmarshalJSON decodes a bare JSON number.\n")
		buf.WriteString("// JSON null leaves v unchanged.\n")
		fmt.Fprintf(buf, "func (v *%s) UnmarshalJSON(data []byte) error {\n", n.typ)
		buf.WriteString("\tif string(data) == \"null\" {\n")
		buf.WriteString("\t\treturn nil\n")
		buf.WriteString("\t}\n")
		fmt.Fprintf(buf, "\tparsed, err := %s(string(data))\n", n.parse)
		buf.WriteString("\tif err != nil {\n")
		buf.WriteString("\t\treturn err\n")
		buf.WriteString("\t}\n")
		buf.WriteString("\t*v = parsed\n")
		buf.WriteString("\treturn nil\n")
		buf.WriteString("}\n\n")
	case ir.KindText:
		buf.WriteString("// MarshalJSON encodes v as a JSON string.\n")
		fmt.Fprintf(buf, "func (v %s) MarshalJSON() ([]byte, error) {\n", n.typ)
		buf.WriteString("\treturn json.Marshal(string(v))\n")
		buf.WriteString("}\n\n")

		buf.WriteString("// UnmarshalJSON decodes a JSON string, rejecting the empty string.\n")
		buf.WriteString("// JSON null leaves v unchanged.\n")
		e.emitUnmarshalJSONString(buf, n.from)
	}
}

// emitUnmarshalJSONString writes the UnmarshalJSON body shared by the
// kinds whose JSON form is a string: decode the string, hand it to the
// named constructor, assign on success.
func (e *emitter) emitUnmarshalJSONString(buf *bytes.Buffer, construct string) {
	n := e.names
	fmt.Fprintf(buf, "func (v *%s) UnmarshalJSON(data []byte) error {\n", n.typ)
	buf.WriteString("\tif string(data) == \"null\" {\n")
	buf.WriteString("\t\treturn nil\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\tvar s string\n")
	buf.WriteString("\tif err := json.Unmarshal(data, &s); err != nil {\n")
	fmt.Fprintf(buf, "\t\treturn fmt.Errorf(\"unmarshal %s: %%w\", err)\n", n.typ)
	buf.WriteString("\t}\n")
	fmt.Fprintf(buf, "\tparsed, err := %s(s)\n", construct)
	buf.WriteString("\tif err != nil {\n")
	buf.WriteString("\t\treturn err\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\t*v = parsed\n")
	buf.WriteString("\treturn nil\n")
	buf.WriteString("}\n\n")
}

func (e *emitter) emitText(buf *bytes.Buffer) {
	n := e.names
	buf.WriteString("// MarshalText implements encoding.TextMarshaler.\n")
	fmt.Fprintf(buf, "func (v %s) MarshalText() ([]byte, error) {\n", n.typ)
	buf.WriteString("\treturn []byte(v.String()), nil\n")
	buf.WriteString("}\n\n")

	buf.WriteString("// UnmarshalText implements encoding.TextUnmarshaler.\n")
	fmt.Fprintf(buf, "func (v *%s) UnmarshalText(text []byte) error {\n", n.typ)
	fmt.Fprintf(buf, "\tparsed, err := %s(string(text))\n", n.parse)
	buf.WriteString("\tif err != nil {\n")
	buf.WriteString("\t\treturn err\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\t*v = parsed\n")
	buf.WriteString("\treturn nil\n")
	buf.WriteString("}\n\n")
}

func (e *emitter) emitSQL(buf *bytes.Buffer) {
	n := e.names
	fmt.Fprintf(buf, "// Scan implements sql.Scanner. A nil src scans to %s.\n", n.empty)
	fmt.Fprintf(buf, "func (v *%s) Scan(src any) error {\n", n.typ)
	buf.WriteString("\tswitch s := src.(type) {\n")
	buf.WriteString("\tcase nil:\n")
	fmt.Fprintf(buf, "\t\t*v = %s\n", n.empty)
	buf.WriteString("\t\treturn nil\n")
	switch e.d.Kind {
	case ir.KindInt32:
		buf.WriteString("\tcase int64:\n")
		buf.WriteString("\t\tif s < math.MinInt32 || s > math.MaxInt32 {\n")
		fmt.Fprintf(buf, "\t\t\treturn fmt.Errorf(\"scan %s: value %%d overflows int32\", s)\n", n.typ)
		buf.WriteString("\t\t}\n")
		fmt.Fprintf(buf, "\t\t*v = %s(s)\n", n.typ)
		buf.WriteString("\t\treturn nil\n")
	case ir.KindInt64:
		buf.WriteString("\tcase int64:\n")
		fmt.Fprintf(buf, "\t\t*v = %s(s)\n", n.typ)
		buf.WriteString("\t\treturn nil\n")
	}
	buf.WriteString("\tcase string:\n")
	buf.WriteString("\t\treturn v.UnmarshalText([]byte(s))\n")
	buf.WriteString("\tcase []byte:\n")
	buf.WriteString("\t\treturn v.UnmarshalText(s)\n")
	buf.WriteString("\tdefault:\n")
	fmt.Fprintf(buf, "\t\treturn fmt.Errorf(\"scan %s: unsupported source type %%T\", src)\n", n.typ)
	buf.WriteString("\t}\n")
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "// Value implements driver.Valuer, yielding %s.\n", e.spec.valueDoc)
	fmt.Fprintf(buf, "func (v %s) Value() (driver.Value, error) {\n", n.typ)
	switch e.d.Kind {
	case ir.KindOpaque:
		buf.WriteString("\treturn v.String(), nil\n")
	case ir.KindInt32, ir.KindInt64:
		buf.WriteString("\treturn int64(v), nil\n")
	case ir.KindText:
		buf.WriteString("\treturn string(v), nil\n")
	}
	buf.WriteString("}\n")
}
