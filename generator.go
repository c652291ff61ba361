package typedid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/broady/typedid/golang"
	"github.com/broady/typedid/internal/directive"
	"github.com/broady/typedid/internal/extract"
	"github.com/broady/typedid/ir"
	"github.com/broady/typedid/sink"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

// Config holds the configuration for a generation run.
type Config struct {
	// Patterns are the package patterns to scan, in go command syntax.
	// e.g. []string{"./...", "./api"}
	// Default: ["./..."].
	Patterns []string `validate:"min=1,dive,required"`

	// Dir is the working directory for package loading and the root
	// against which generated file paths are resolved.
	// Empty means the process working directory.
	Dir string

	// Tags are the build constraints enabled while loading. The typedid
	// tag is always enabled so placeholder files are visible.
	// Default: ["typedid"].
	Tags []string `validate:"min=1,dive,required"`

	// Suffix is appended to the snake_case type name to form the
	// generated file name. Must end in ".go".
	// Default: "_typedid.go".
	Suffix string `validate:"required,endswith=.go"`

	// Logger receives progress logs. Nil means slog.Default().
	Logger *slog.Logger `validate:"-"`
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	// Make a copy to avoid mutating the input
	result := *cfg

	if len(result.Patterns) == 0 {
		result.Patterns = []string{"./..."}
	}
	if len(result.Tags) == 0 {
		result.Tags = []string{extract.Tag}
	}
	if result.Suffix == "" {
		result.Suffix = golang.GeneratedSuffix
	}
	if result.Logger == nil {
		result.Logger = slog.Default()
	}

	return &result
}

// Generate scans the packages matching cfg.Patterns and writes one
// generated file per annotated placeholder declaration, next to the
// source file that declares it.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return GenerateTo(ctx, cfg, sink.NewFilesystemSink(dir))
}

// GenerateTo runs the same pipeline as Generate but hands every
// generated file to a caller-provided sink. Paths given to the sink are
// slash-separated and relative to cfg.Dir.
func GenerateTo(ctx context.Context, cfg Config, out sink.OutputSink) (*Result, error) {
	c := applyConfigDefaults(&cfg)
	if err := validate.Struct(c); err != nil {
		return nil, fromValidationErrors(err)
	}

	extracted, err := extract.Packages(ctx, c.Patterns, extract.Options{
		Dir:       c.Dir,
		BuildTags: c.Tags,
	})
	if err != nil {
		var perr *directive.ParseError
		if errors.As(err, &perr) {
			return nil, Errorf(CodeInvalidDirective, "%v", err)
		}
		return nil, Errorf(CodeLoadFailed, "%v", err)
	}

	return run(ctx, c, out, extracted)
}

// generateDescriptors drives the pipeline from hand-built descriptors,
// bypassing package loading entirely.
func generateDescriptors(ctx context.Context, cfg Config, ds []ir.Descriptor, out sink.OutputSink) (*Result, error) {
	c := applyConfigDefaults(&cfg)
	if err := validate.Struct(c); err != nil {
		return nil, fromValidationErrors(err)
	}

	// Loader-built descriptors are valid by construction; hand-built
	// ones must hold up on their own.
	for _, d := range ds {
		if errs := d.Validate(); len(errs) > 0 {
			return nil, Errorf(CodeInvalidConfig, "descriptor %s: %v", d.QualifiedName(), errs[0])
		}
	}

	return run(ctx, c, out, &extract.Result{Descriptors: ds})
}

// artifactFile pairs a descriptor with its output path and rendered
// content as it moves through the pipeline.
type artifactFile struct {
	desc    ir.Descriptor
	path    string
	content []byte
}

// run renders every descriptor and writes the artifacts through out.
func run(ctx context.Context, cfg *Config, out sink.OutputSink, extracted *extract.Result) (*Result, error) {
	start := time.Now()
	logger := cfg.Logger

	result := &Result{Warnings: extracted.Warnings}
	descriptors := dedupe(extracted.Descriptors, result)

	root := cfg.Dir
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, Errorf(CodeWriteFailed, "resolve %s: %v", root, err)
	}
	// The loader reports symlink-resolved file positions; resolve the
	// root the same way so relative paths line up.
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	files := make([]artifactFile, len(descriptors))
	for i, d := range descriptors {
		path, err := artifactPath(absRoot, d, cfg.Suffix)
		if err != nil {
			return nil, err
		}
		files[i] = artifactFile{desc: d, path: path}
	}

	// Renders are pure and independent; fan them out across CPUs.
	idx := make(chan int, len(files))
	eg := new(errgroup.Group)
	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := range idx {
				content, err := golang.Render(files[i].desc)
				if err != nil {
					return Errorf(CodeRenderInternal, "render %s: %v", files[i].desc.QualifiedName(), err)
				}
				files[i].content = content
			}
			return nil
		})
	}
	for i := range files {
		idx <- i
	}
	close(idx)
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Write in path order so logs and failures are deterministic.
	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })
	for _, f := range files {
		if err := out.WriteFile(ctx, f.path, f.content); err != nil {
			return nil, Errorf(CodeWriteFailed, "write %s: %v", f.path, err)
		}
		logger.Debug("wrote generated file",
			slog.String("path", f.path),
			slog.String("type", f.desc.QualifiedName()),
			slog.Int("bytes", len(f.content)))
		result.Artifacts = append(result.Artifacts, Artifact{
			Type: f.desc.QualifiedName(),
			Path: f.path,
			Size: len(f.content),
		})
	}

	logger.Info("generation complete",
		slog.Int("artifacts", len(result.Artifacts)),
		slog.Int("warnings", len(result.Warnings)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// dedupe drops descriptors whose qualified name was already seen in
// this run, keeping the first and recording a warning for the rest.
func dedupe(ds []ir.Descriptor, result *Result) []ir.Descriptor {
	seen := make(map[string]bool, len(ds))
	out := make([]ir.Descriptor, 0, len(ds))
	for _, d := range ds {
		qn := d.QualifiedName()
		if seen[qn] {
			var src *ir.Source
			if !d.Src.IsZero() {
				s := d.Src
				src = &s
			}
			result.Warnings = append(result.Warnings, ir.Warning{
				Code:     ir.WarnDuplicateType,
				Message:  fmt.Sprintf("duplicate descriptor for %s; keeping the first", qn),
				Source:   src,
				TypeName: d.TypeName,
			})
			continue
		}
		seen[qn] = true
		out = append(out, d)
	}
	return out
}

// artifactPath derives the sink-relative path for a descriptor's
// generated file. Descriptors without a source position land at the
// sink root.
func artifactPath(absRoot string, d ir.Descriptor, suffix string) (string, error) {
	name := golang.Snake(d.TypeName) + suffix
	if d.Src.File == "" {
		return name, nil
	}

	rel, err := filepath.Rel(absRoot, filepath.Dir(d.Src.File))
	if err != nil {
		return "", Errorf(CodeWriteFailed, "resolve output path for %s: %v", d.QualifiedName(), err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", Errorf(CodeWriteFailed, "generated file for %s falls outside %s", d.QualifiedName(), absRoot)
	}
	return filepath.ToSlash(filepath.Join(rel, name)), nil
}
