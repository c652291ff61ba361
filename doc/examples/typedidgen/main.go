// Package typedidgen provides example usage of the generator API for
// documentation.
package typedidgen

import (
	"context"
	"log"

	"github.com/broady/typedid"
	"github.com/broady/typedid/ir"
)

func exampleGenerate() {
	ctx := context.Background()
	// [snippet:generate]
	res, err := typedid.Generate(ctx, &typedid.Config{
		Patterns: []string{"./..."},
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d files", len(res.Artifacts))
	// [/snippet:generate]
}

func exampleBuilder() {
	ctx := context.Background()
	// [snippet:builder]
	res, err := typedid.FromPatterns("./internal/...").
		Suffix("_id.gen.go").
		Run(ctx)
	// [/snippet:builder]
	if err != nil {
		log.Fatal(err)
	}
	_ = res
}

func exampleDescriptors() {
	ctx := context.Background()
	// [snippet:descriptors]
	res, err := typedid.FromDescriptors(ir.Descriptor{
		PkgPath:  "example.com/shop/ids",
		PkgName:  "ids",
		TypeName: "OrderID",
		Kind:     ir.KindOpaque,
		Exported: true,
	}).Dir("./ids").Run(ctx)
	// [/snippet:descriptors]
	if err != nil {
		log.Fatal(err)
	}
	_ = res
}

func exampleDryRun() {
	ctx := context.Background()
	// [snippet:dry-run]
	res, mem, err := typedid.FromPatterns("./...").DryRun(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, a := range res.Artifacts {
		log.Printf("would write %s (%d bytes)", a.Path, len(mem.Get(a.Path)))
	}
	// [/snippet:dry-run]
}

// Keep imports used.
var (
	_ = exampleGenerate
	_ = exampleBuilder
	_ = exampleDescriptors
	_ = exampleDryRun
)
