package buffer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the document back to its associated path and clears the
// modified flag. Buffers without an associated path fail with
// ErrNoDestination; use SaveAs to give them one.
func (b *LineBuffer) Save() error {
	if b.source == "" {
		return ErrNoDestination
	}
	if err := os.WriteFile(b.source, []byte(b.Text()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", b.source, err)
	}
	b.modified = false
	return nil
}

// SaveAs writes the document to path, creating missing parent directories,
// and associates the buffer with path from then on. On success the modified
// flag is cleared; on failure the buffer keeps its previous source.
func (b *LineBuffer) SaveAs(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(b.Text()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b.source = path
	b.modified = false
	return nil
}
