package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputPath maps an in-site path to its on-disk location, mirroring how
// static hosts resolve directory indexes.
func outputPath(route string) string {
	route = strings.Trim(strings.TrimSpace(route), "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

type diskWriter struct {
	root string
}

func newDiskWriter(root string) diskWriter {
	return diskWriter{root: strings.TrimSpace(root)}
}

func (w diskWriter) WriteFile(rel string, data []byte) (string, error) {
	full := filepath.Join(w.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("generator: create output dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("generator: write %s: %w", rel, err)
	}
	return full, nil
}

// Remove deletes the output root. Missing roots are not an error.
func (w diskWriter) Remove() error {
	if w.root == "" {
		return nil
	}
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("generator: clean %s: %w", w.root, err)
	}
	return nil
}
