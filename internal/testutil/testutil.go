// Package testutil provides filesystem helpers shared by generator
// tests. It is import-cycle safe and can be used from any package
// within the typedid module.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WriteModule materializes a Go module in a temp directory from a map
// of relative file paths to contents and returns its root. A minimal
// go.mod is supplied unless files carries its own. GOWORK is turned
// off so an enclosing workspace does not leak into package loads.
func WriteModule(t *testing.T, files map[string]string) string {
	t.Helper()
	t.Setenv("GOWORK", "off")

	dir := t.TempDir()
	if _, ok := files["go.mod"]; !ok {
		WriteFile(t, filepath.Join(dir, "go.mod"), "module test\n\ngo 1.21\n")
	}
	for name, content := range files {
		WriteFile(t, filepath.Join(dir, name), content)
	}
	return dir
}

// WriteFile writes content at path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Golden compares got against the golden file at path. With update set
// the file is rewritten instead and the comparison always passes.
func Golden(t *testing.T, path string, got []byte, update bool) {
	t.Helper()
	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, got, 0644); err != nil {
			t.Fatalf("update golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (run with -update to create it)", path, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("output differs from golden %s\ngot:\n%s\nwant:\n%s", path, got, want)
	}
}
