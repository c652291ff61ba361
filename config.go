package typedid

import (
	"context"
	"log/slog"

	"github.com/broady/typedid/ir"
	"github.com/broady/typedid/sink"
)

// Generator provides a fluent API for generation.
// Create with FromPatterns() or FromDescriptors() and configure with
// method chaining.
//
// Example:
//
//	typedid.FromPatterns("./...").
//	    Dir("internal/api").
//	    Run(ctx)
type Generator struct {
	descriptors []ir.Descriptor // for descriptor-driven generation without a loader
	cfg         Config
}

// FromPatterns creates a Generator that scans the packages matching
// the given go command patterns. No patterns means "./...".
// This is the entry point for the fluent API.
func FromPatterns(patterns ...string) *Generator {
	return &Generator{cfg: Config{Patterns: patterns}}
}

// FromDescriptors creates a Generator over hand-built descriptors,
// bypassing package loading entirely.
//
// Example:
//
//	typedid.FromDescriptors(ir.Descriptor{
//	    PkgPath:  "example.com/shop",
//	    PkgName:  "shop",
//	    TypeName: "OrderID",
//	    Kind:     ir.KindOpaque,
//	    Exported: true,
//	}).RunTo(ctx, mem)
func FromDescriptors(ds ...ir.Descriptor) *Generator {
	return &Generator{descriptors: ds}
}

// Dir sets the working directory for package loading and output paths.
func (g *Generator) Dir(dir string) *Generator {
	g.cfg.Dir = dir
	return g
}

// Tags sets the build constraints enabled while loading.
// The typedid tag is always enabled.
func (g *Generator) Tags(tags ...string) *Generator {
	g.cfg.Tags = tags
	return g
}

// Suffix sets the generated file suffix. It must end in ".go".
func (g *Generator) Suffix(suffix string) *Generator {
	g.cfg.Suffix = suffix
	return g
}

// Logger sets a custom logger.
// If not set, slog.Default() will be used.
func (g *Generator) Logger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// Run generates to the filesystem, writing each file next to the
// package that declares its placeholder.
// This is a terminal operation.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	dir := g.cfg.Dir
	if dir == "" {
		dir = "."
	}
	return g.RunTo(ctx, sink.NewFilesystemSink(dir))
}

// RunTo generates through a caller-provided sink.
// This is a terminal operation.
func (g *Generator) RunTo(ctx context.Context, out sink.OutputSink) (*Result, error) {
	if g.descriptors != nil {
		return generateDescriptors(ctx, g.cfg, g.descriptors, out)
	}
	return GenerateTo(ctx, g.cfg, out)
}

// DryRun runs the full pipeline against a MemorySink and returns the
// sink alongside the result; nothing touches the filesystem.
func (g *Generator) DryRun(ctx context.Context) (*Result, *sink.MemorySink, error) {
	mem := sink.NewMemorySink()
	res, err := g.RunTo(ctx, mem)
	return res, mem, err
}
