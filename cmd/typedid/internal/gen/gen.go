// Package gen implements the typedid gen command.
package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/broady/typedid"
	"github.com/broady/typedid/ir"
	"github.com/broady/typedid/sink"
)

type Cmd struct {
	Patterns []string `arg:"" optional:"" help:"Package patterns to scan (default \"./...\")."`
	Dir      string   `help:"Working directory for package loading and output."`
	Tags     []string `help:"Build tags enabled while loading."`
	Suffix   string   `help:"Generated file suffix." default:"_typedid.go"`
	DryRun   bool     `help:"Render everything but write nothing." short:"n"`
	Verbose  bool     `help:"Enable debug logging." short:"v"`
}

func (c *Cmd) Run() error {
	ctx := context.Background()
	cfg := typedid.Config{
		Patterns: c.Patterns,
		Dir:      c.Dir,
		Tags:     c.Tags,
		Suffix:   c.Suffix,
		Logger:   newLogger(c.Verbose),
	}

	var res *typedid.Result
	var err error
	if c.DryRun {
		res, err = typedid.GenerateTo(ctx, cfg, sink.NewMemorySink())
	} else {
		res, err = typedid.Generate(ctx, cfg)
	}
	if err != nil {
		return err
	}

	printWarnings(res.Warnings)

	for _, a := range res.Artifacts {
		if c.DryRun {
			fmt.Printf("would write %s (%s)\n", a.Path, a.Type)
			continue
		}
		fmt.Printf("✓ wrote %s (%s)\n", a.Path, a.Type)
	}
	if len(res.Artifacts) == 0 {
		fmt.Println("no annotated declarations found")
	}

	return nil
}

// newLogger returns a stderr text logger. Non-verbose runs only
// surface warnings; the command prints its own progress lines.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printWarnings writes generation warnings to stderr, one line each,
// with the source position when one is known.
func printWarnings(warnings []ir.Warning) {
	for _, w := range warnings {
		if w.Source != nil {
			fmt.Fprintf(os.Stderr, "%s: warning: %s (%s)\n", w.Source, w.Message, w.Code)
			continue
		}
		fmt.Fprintf(os.Stderr, "warning: %s (%s)\n", w.Message, w.Code)
	}
}
