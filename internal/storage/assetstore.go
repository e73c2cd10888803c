// Package storage owns the on-disk lifecycle of uploaded icons and
// extracted build trees: staging, discard, and replace-after-commit.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AssetStore stages assets under two roots, one for icon files and one for
// extracted build trees. Staged paths become the record of truth once a
// persisted catalog row references them; there is no separate commit step.
// Every failed operation must Discard whatever it staged.
type AssetStore struct {
	iconDir  string
	buildDir string
}

// New creates both roots if needed.
func New(iconDir, buildDir string) (*AssetStore, error) {
	if err := os.MkdirAll(iconDir, 0o755); err != nil {
		return nil, fmt.Errorf("create icon dir: %w", err)
	}
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return nil, fmt.Errorf("create build dir: %w", err)
	}
	return &AssetStore{iconDir: iconDir, buildDir: buildDir}, nil
}

// StageIcon streams src to a fresh uniquely named file under the icon root
// and returns its path. ext includes the leading dot.
func (s *AssetStore) StageIcon(src io.Reader, name, ext string) (string, error) {
	path := filepath.Join(s.iconDir, UniqueName(name)+ext)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("stage icon: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("stage icon: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("stage icon: %w", err)
	}
	return path, nil
}

// NewBuildPath returns a fresh uniquely named directory path under the
// build root for an extraction to target. The directory itself is created
// by the extractor.
func (s *AssetStore) NewBuildPath(name string) string {
	return filepath.Join(s.buildDir, UniqueName(name))
}

// Discard deletes a staged file or recursively deletes a staged directory.
// It is idempotent and tolerates already-missing paths.
func (s *AssetStore) Discard(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("discard %s: %w", path, err)
	}
	return nil
}

// Replace removes oldPath after the caller has confirmed that the database
// write referencing newPath succeeded. Removing old-before-confirm is never
// valid: it opens a window where neither asset is servable.
func (s *AssetStore) Replace(oldPath, newPath string) error {
	if oldPath == "" || oldPath == newPath {
		return nil
	}
	return s.Discard(oldPath)
}

// UniqueName derives an on-disk base name from a display name: runs of
// non-alphanumeric characters become underscores, with a short random
// suffix so repeated uploads of the same title never collide.
func UniqueName(name string) string {
	return SanitizeName(name) + "_" + uuid.NewString()[:8]
}

// SanitizeName keeps only alphanumerics, mapping everything else to
// underscores. An empty result falls back to "game".
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if strings.Trim(b.String(), "_") == "" {
		return "game"
	}
	return b.String()
}
