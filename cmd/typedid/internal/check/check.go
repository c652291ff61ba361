// Package check implements the typedid check command: a CI guard that
// renders everything to memory and diffs it against the files on disk.
package check

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/broady/typedid"
	"github.com/broady/typedid/golang"
	"github.com/broady/typedid/ir"
	"github.com/broady/typedid/sink"
)

type Cmd struct {
	Patterns []string `arg:"" optional:"" help:"Package patterns to scan (default \"./...\")."`
	Dir      string   `help:"Working directory for package loading."`
	Tags     []string `help:"Build tags enabled while loading."`
	Suffix   string   `help:"Generated file suffix." default:"_typedid.go"`
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

	mem := sink.NewMemorySink()
	res, err := typedid.GenerateTo(ctx, cfg, mem)
	if err != nil {
		return err
	}

	printWarnings(res.Warnings)

	root := c.Dir
	if root == "" {
		root = "."
	}

	var missing, stale []string
	for _, a := range res.Artifacts {
		onDisk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(a.Path)))
		if err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, a.Path)
				continue
			}
			return fmt.Errorf("read %s: %w", a.Path, err)
		}
		if !bytes.Equal(onDisk, mem.Get(a.Path)) {
			stale = append(stale, a.Path)
		}
	}

	suffix := c.Suffix
	if suffix == "" {
		suffix = golang.GeneratedSuffix
	}
	orphaned, err := findOrphans(root, suffix, res)
	if err != nil {
		return err
	}

	for _, p := range missing {
		fmt.Printf("✗ missing %s\n", p)
	}
	for _, p := range stale {
		fmt.Printf("✗ stale %s\n", p)
	}
	for _, p := range orphaned {
		fmt.Printf("✗ orphaned %s (no matching declaration)\n", p)
	}

	if n := len(missing) + len(stale) + len(orphaned); n > 0 {
		return fmt.Errorf("%d generated files out of date; run typedid gen", n)
	}

	fmt.Printf("✓ %d generated files up to date\n", len(res.Artifacts))
	return nil
}

// findOrphans walks root for generated files that no current
// declaration accounts for: right suffix, generated header, but absent
// from the expected artifact set.
func findOrphans(root, suffix string, res *typedid.Result) ([]string, error) {
	expected := make(map[string]bool, len(res.Artifacts))
	for _, a := range res.Artifacts {
		expected[a.Path] = true
	}

	var orphaned []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "testdata" || name == "vendor" || name == "node_modules") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath := filepath.ToSlash(rel)
		if expected[relPath] {
			return nil
		}

		// Only flag files this tool wrote; a coincidental suffix match
		// on a hand-written file is none of our business.
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if line, _, _ := bytes.Cut(content, []byte("\n")); string(line) == golang.Header {
			orphaned = append(orphaned, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan for orphaned files: %w", err)
	}
	return orphaned, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printWarnings(warnings []ir.Warning) {
	for _, w := range warnings {
		if w.Source != nil {
			fmt.Fprintf(os.Stderr, "%s: warning: %s (%s)\n", w.Source, w.Message, w.Code)
			continue
		}
		fmt.Fprintf(os.Stderr, "warning: %s (%s)\n", w.Message, w.Code)
	}
}
