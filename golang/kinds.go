package golang

import "github.com/broady/typedid/ir"

// uuidImport is the only third-party dependency generated code takes on.
const uuidImport = "github.com/google/uuid"

// kindSpec holds the emission cells that vary across backing kinds.
// The member skeleton is shared; adding a kind means adding a row here
// plus its arms in the emitter, nothing else.
type kindSpec struct {
	prim        string   // backing primitive type expression
	imports     []string // import paths the generated file needs
	hasNew      bool     // the kind mints fresh values
	fromErr     bool     // From validates and returns (T, error)
	zeroNote    string   // parenthetical in the Empty sentinel doc
	compareWord string   // how Compare orders values
	valueDoc    string   // what Value yields, for the driver.Valuer doc
}

var kinds = map[ir.BackingKind]kindSpec{
	ir.KindOpaque: {
		prim:        "uuid.UUID",
		imports:     []string{"bytes", "database/sql/driver", "encoding/json", "fmt", uuidImport},
		hasNew:      true,
		zeroNote:    " (the nil UUID)",
		compareWord: "bytewise",
		valueDoc:    "the canonical UUID string",
	},
	ir.KindInt32: {
		prim:        "int32",
		imports:     []string{"cmp", "database/sql/driver", "fmt", "math", "strconv"},
		compareWord: "numerically",
		valueDoc:    "an int64",
	},
	ir.KindInt64: {
		prim:        "int64",
		imports:     []string{"cmp", "database/sql/driver", "fmt", "strconv"},
		compareWord: "numerically",
		valueDoc:    "an int64",
	},
	ir.KindText: {
		prim:        "string",
		imports:     []string{"cmp", "database/sql/driver", "encoding/json", "fmt"},
		fromErr:     true,
		zeroNote:    " (the empty string)",
		compareWord: "lexically",
		valueDoc:    "the backing string",
	},
}
