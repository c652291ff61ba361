package typedid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/broady/typedid/golang"
	"github.com/broady/typedid/internal/testutil"
	"github.com/broady/typedid/ir"
	"github.com/broady/typedid/sink"
)

// placeholderSrc is a minimal annotated package used across the
// pipeline tests.
const placeholderSrc = `//go:build typedid

package ids

//typedid:id
type OrderID struct{}

//typedid:id kind=text
type Slug struct{}
`

func TestApplyConfigDefaults(t *testing.T) {
	tests := []struct {
		name   string
		input  *Config
		check  func(*Config) bool
		errMsg string
	}{
		{
			name:  "empty config gets defaults",
			input: &Config{},
			check: func(c *Config) bool {
				return len(c.Patterns) == 1 && c.Patterns[0] == "./..." &&
					len(c.Tags) == 1 && c.Tags[0] == "typedid" &&
					c.Suffix == "_typedid.go" &&
					c.Logger != nil
			},
			errMsg: "defaults not applied correctly",
		},
		{
			name: "explicit values preserved",
			input: &Config{
				Patterns: []string{"./api"},
				Tags:     []string{"typedid", "integration"},
				Suffix:   "_gen.go",
			},
			check: func(c *Config) bool {
				return len(c.Patterns) == 1 && c.Patterns[0] == "./api" &&
					len(c.Tags) == 2 &&
					c.Suffix == "_gen.go"
			},
			errMsg: "explicit values not preserved",
		},
		{
			name:  "partial config",
			input: &Config{Patterns: []string{"./internal/api"}},
			check: func(c *Config) bool {
				return c.Patterns[0] == "./internal/api" && c.Suffix == "_typedid.go"
			},
			errMsg: "partial config not handled correctly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyConfigDefaults(tt.input)
			if !tt.check(result) {
				t.Error(tt.errMsg)
			}
		})
	}
}

func TestApplyConfigDefaultsDoesNotMutate(t *testing.T) {
	cfg := &Config{}
	applyConfigDefaults(cfg)
	if cfg.Patterns != nil || cfg.Tags != nil || cfg.Suffix != "" || cfg.Logger != nil {
		t.Errorf("input config mutated: %+v", cfg)
	}
}

func TestGenerateTo(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids/ids.go": placeholderSrc})

	mem := sink.NewMemorySink()
	res, err := GenerateTo(context.Background(), Config{Dir: dir}, mem)
	if err != nil {
		t.Fatalf("GenerateTo: %v", err)
	}

	if len(res.Artifacts) != 2 {
		t.Fatalf("got %d artifacts, want 2", len(res.Artifacts))
	}

	// Artifacts come back in path order.
	if res.Artifacts[0].Path != "ids/order_id_typedid.go" || res.Artifacts[1].Path != "ids/slug_typedid.go" {
		t.Errorf("artifact paths = %q, %q", res.Artifacts[0].Path, res.Artifacts[1].Path)
	}

	a, ok := res.Artifact("test/ids.OrderID")
	if !ok {
		t.Fatal("no artifact recorded for test/ids.OrderID")
	}
	content := mem.Get(a.Path)
	if content == nil {
		t.Fatalf("nothing written at %q", a.Path)
	}
	if !strings.HasPrefix(string(content), golang.Header) {
		t.Errorf("generated file does not start with the header:\n%.80s", content)
	}
	if !strings.Contains(string(content), "type OrderID uuid.UUID") {
		t.Error("generated file missing the type declaration")
	}
	if a.Size != len(content) {
		t.Errorf("artifact size = %d, want %d", a.Size, len(content))
	}

	if _, ok := res.Artifact("test/ids.Missing"); ok {
		t.Error("lookup of unknown type should report absence")
	}
}

func TestGenerateWritesToDisk(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids/ids.go": placeholderSrc})

	res, err := Generate(context.Background(), Config{Dir: dir})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "ids", "order_id_typedid.go")); err != nil {
		t.Errorf("generated file not written next to its source: %v", err)
	}
	for _, a := range res.Artifacts {
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(a.Path)))
		if err != nil {
			t.Fatalf("read %s: %v", a.Path, err)
		}
		if len(content) != a.Size {
			t.Errorf("%s: %d bytes on disk, artifact says %d", a.Path, len(content), a.Size)
		}
	}
}

func TestGenerateToDeterministic(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids/ids.go": placeholderSrc})

	generate := func() (*Result, map[string][]byte) {
		mem := sink.NewMemorySink()
		res, err := GenerateTo(context.Background(), Config{Dir: dir}, mem)
		if err != nil {
			t.Fatalf("GenerateTo: %v", err)
		}
		return res, mem.Files()
	}

	res1, files1 := generate()
	res2, files2 := generate()

	if len(res1.Artifacts) != len(res2.Artifacts) {
		t.Fatalf("artifact counts differ: %d vs %d", len(res1.Artifacts), len(res2.Artifacts))
	}
	for i := range res1.Artifacts {
		if res1.Artifacts[i] != res2.Artifacts[i] {
			t.Errorf("artifact %d differs: %+v vs %+v", i, res1.Artifacts[i], res2.Artifacts[i])
		}
	}
	for path, content := range files1 {
		if string(files2[path]) != string(content) {
			t.Errorf("content of %s differs between runs", path)
		}
	}
}

func TestGenerateToBadSuffix(t *testing.T) {
	_, err := GenerateTo(context.Background(), Config{Suffix: "out.txt"}, sink.NewMemorySink())

	var terr *Error
	if !errors.As(err, &terr) || terr.Code != CodeInvalidConfig {
		t.Fatalf("expected %s error, got %v", CodeInvalidConfig, err)
	}
	if _, ok := terr.Details["Suffix"]; !ok {
		t.Errorf("expected Suffix detail, got %v", terr.Details)
	}
}

func TestGenerateToLoadFailure(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids.go": "package ids\n"})

	_, err := GenerateTo(context.Background(), Config{Dir: dir, Patterns: []string{"./missing"}}, sink.NewMemorySink())

	var terr *Error
	if !errors.As(err, &terr) || terr.Code != CodeLoadFailed {
		t.Fatalf("expected %s error, got %v", CodeLoadFailed, err)
	}
}

func TestGenerateToInvalidDirective(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids.go": `//go:build typedid

package ids

//typedid:frobnicate
type OrderID struct{}
`})

	_, err := GenerateTo(context.Background(), Config{Dir: dir}, sink.NewMemorySink())

	var terr *Error
	if !errors.As(err, &terr) || terr.Code != CodeInvalidDirective {
		t.Fatalf("expected %s error, got %v", CodeInvalidDirective, err)
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error should name the directive: %v", err)
	}
}

func TestGenerateToWarningsPropagate(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids/ids.go": `package ids

//typedid:id kind=99
type OrderID struct{}
`})

	mem := sink.NewMemorySink()
	res, err := GenerateTo(context.Background(), Config{Dir: dir}, mem)
	if err != nil {
		t.Fatalf("GenerateTo: %v", err)
	}

	codes := make(map[string]bool)
	for _, w := range res.Warnings {
		codes[w.Code] = true
	}
	if !codes[ir.WarnMissingBuildTag] {
		t.Error("expected missing_build_tag warning for unguarded placeholder file")
	}
	if !codes[ir.WarnSelectorOutOfRange] {
		t.Error("expected selector_out_of_range warning for kind=99")
	}

	// Generation still happens, with the default kind.
	content := mem.Get("ids/order_id_typedid.go")
	if content == nil {
		t.Fatal("artifact missing despite warnings")
	}
	if !strings.Contains(string(content), "uuid.UUID") {
		t.Error("out-of-range selector should fall back to the opaque kind")
	}
}

func TestGenerateToCustomSuffix(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids/ids.go": placeholderSrc})

	mem := sink.NewMemorySink()
	res, err := GenerateTo(context.Background(), Config{Dir: dir, Suffix: "_gen.go"}, mem)
	if err != nil {
		t.Fatalf("GenerateTo: %v", err)
	}
	if res.Artifacts[0].Path != "ids/order_id_gen.go" {
		t.Errorf("artifact path = %q, want ids/order_id_gen.go", res.Artifacts[0].Path)
	}
}

func TestFromDescriptors(t *testing.T) {
	ds := []ir.Descriptor{
		{PkgPath: "example.com/shop", PkgName: "shop", TypeName: "OrderID", Kind: ir.KindOpaque, Exported: true},
		{PkgPath: "example.com/shop", PkgName: "shop", TypeName: "OrderID", Kind: ir.KindText, Exported: true},
		{PkgPath: "example.com/shop", PkgName: "shop", TypeName: "Slug", Kind: ir.KindText, Exported: true},
	}

	mem := sink.NewMemorySink()
	res, err := FromDescriptors(ds...).RunTo(context.Background(), mem)
	if err != nil {
		t.Fatalf("RunTo: %v", err)
	}

	if len(res.Artifacts) != 2 {
		t.Fatalf("got %d artifacts, want 2 after duplicate removal", len(res.Artifacts))
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != ir.WarnDuplicateType {
		t.Fatalf("warnings = %+v, want a single duplicate_type", res.Warnings)
	}

	// The first declaration wins: OrderID stays opaque.
	content := mem.Get("order_id_typedid.go")
	if content == nil {
		t.Fatal("order_id_typedid.go not written")
	}
	if !strings.Contains(string(content), "uuid.UUID") {
		t.Error("duplicate did not keep the first descriptor's kind")
	}
}

func TestFromDescriptorsInvalid(t *testing.T) {
	_, err := FromDescriptors(ir.Descriptor{PkgName: "shop"}).RunTo(context.Background(), sink.NewMemorySink())

	var terr *Error
	if !errors.As(err, &terr) || terr.Code != CodeInvalidConfig {
		t.Fatalf("expected %s error, got %v", CodeInvalidConfig, err)
	}
}

func TestDryRun(t *testing.T) {
	dir := testutil.WriteModule(t, map[string]string{"ids/ids.go": placeholderSrc})

	res, mem, err := FromPatterns("./...").Dir(dir).DryRun(context.Background())
	if err != nil {
		t.Fatalf("DryRun: %v", err)
	}
	if len(res.Artifacts) != 2 {
		t.Fatalf("got %d artifacts, want 2", len(res.Artifacts))
	}

	if _, err := os.Stat(filepath.Join(dir, "ids", "order_id_typedid.go")); !os.IsNotExist(err) {
		t.Errorf("dry run touched the filesystem: %v", err)
	}
	if mem.Get("ids/order_id_typedid.go") == nil {
		t.Error("dry run did not capture content in memory")
	}
}

func TestArtifactPathOutsideRoot(t *testing.T) {
	d := ir.Descriptor{
		PkgPath:  "example.com/p",
		PkgName:  "p",
		TypeName: "OrderID",
		Kind:     ir.KindOpaque,
		Exported: true,
		Src:      ir.Source{File: "/elsewhere/p/placeholder.go", Line: 4},
	}

	if _, err := artifactPath(filepath.FromSlash("/work/project"), d, "_typedid.go"); err == nil {
		t.Fatal("expected error for a file outside the output root")
	}
}
