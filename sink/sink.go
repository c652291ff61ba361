// Package sink provides output destinations for generated files.
//
// The generator renders in memory and hands finished files to an
// OutputSink; FilesystemSink is the production destination, MemorySink
// backs dry runs, staleness checks, and tests.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// OutputSink receives generated file content.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile writes content at path. The path is slash-separated
	// and relative; the sink decides where it lands.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes files under a root directory on the local
// filesystem. Writes are atomic: content lands in a temp file that is
// renamed into place, so a crashed run never leaves a half-written
// generated file.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode. Zero means 0644.
	Mode os.FileMode
}

// NewFilesystemSink returns a FilesystemSink rooted at root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644}
}

// WriteFile writes content to path under the root directory, creating
// parent directories as needed. Existing files are replaced.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.Root, filepath.FromSlash(path))

	// Joining cleans the path, but confirm the result stays under Root.
	absRoot, err := filepath.Abs(s.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("path escapes root directory: %q", path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(dir, ".typedid-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Leftover temp files carry the .typedid- prefix, so a failed
	// cleanup is recognizable and harmless.
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if closeErr != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("set file mode: %w", err)
	}

	if err := ctx.Err(); err != nil {
		cleanup()
		return err
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// MemorySink stores written files in memory. All methods are safe for
// concurrent use.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile records content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := make([]byte, len(content))
	copy(buf, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = buf
	return nil
}

// Files returns a copy of all written files keyed by path.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(s.files))
	for path, content := range s.files {
		buf := make([]byte, len(content))
		copy(buf, content)
		out[path] = buf
	}
	return out
}

// Get returns the content written at path, or nil if nothing was.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	buf := make([]byte, len(content))
	copy(buf, content)
	return buf
}

// Reset discards all stored files.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
}

// ValidatePath checks that path is usable as a sink destination:
// non-empty, relative, slash-separated, clean, and free of traversal
// components.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(path) {
		return errors.New("absolute paths not allowed")
	}
	// Windows drive-letter paths are absolute even on other platforms.
	if len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0]) {
		return errors.New("absolute paths not allowed")
	}
	if strings.Contains(path, "..") {
		return errors.New("path traversal not allowed")
	}
	if cleaned := filepath.Clean(filepath.ToSlash(path)); cleaned != filepath.ToSlash(path) {
		return fmt.Errorf("path is not clean (want %q)", cleaned)
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
