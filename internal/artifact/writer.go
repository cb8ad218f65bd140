// Package artifact persists the generated parser to its well-known location.
// At most one artifact exists at the target path; every write fully replaces
// the previous attempt.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer overwrites the artifact file at Path. A failed write is fatal to
// the run: without a persisted artifact there is nothing to verify.
type Writer struct {
	Path string
}

// Write strips any residual fence markers (double-sanitization against a
// generator that missed one mid-text), ensures the destination directory
// exists, and overwrites the target file.
func (w *Writer) Write(code string) error {
	code = strings.ReplaceAll(code, "```", "")
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("artifact: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(w.Path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("artifact: write %s: %w", w.Path, err)
	}
	return nil
}
