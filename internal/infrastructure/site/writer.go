package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sitegen/internal/ports/output"
)

var _ output.SiteWriter = (*DistWriter)(nil)

// DistWriter persists rendered pages under a single output root. Paths are
// always relative; anything trying to escape the root is rejected.
type DistWriter struct {
	root string
}

func NewDistWriter(root string) (*DistWriter, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("site: output root %q: %w", root, err)
	}
	if abs == string(filepath.Separator) {
		return nil, fmt.Errorf("site: refusing %q as output root", abs)
	}
	return &DistWriter{root: abs}, nil
}

func (w *DistWriter) Write(relPath string, data []byte) error {
	target, err := w.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("site: mkdir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("site: write %s: %w", relPath, err)
	}
	return nil
}

// Clean empties the output root so pages removed from the site do not
// survive from an earlier build. The root itself stays in place.
func (w *DistWriter) Clean() error {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("site: clean %s: %w", w.root, err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(w.root, e.Name())); err != nil {
			return fmt.Errorf("site: clean %s: %w", w.root, err)
		}
	}
	return nil
}

func (w *DistWriter) resolve(relPath string) (string, error) {
	if relPath == "" || filepath.IsAbs(relPath) {
		return "", fmt.Errorf("site: invalid output path %q", relPath)
	}
	target := filepath.Join(w.root, filepath.FromSlash(relPath))
	if target != w.root && !strings.HasPrefix(target, w.root+string(filepath.Separator)) {
		return "", fmt.Errorf("site: output path %q escapes the output root", relPath)
	}
	return target, nil
}
