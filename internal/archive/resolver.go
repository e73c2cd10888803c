// Package archive extracts uploaded game builds and locates the playable
// entrypoint inside the extracted tree.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrExtraction covers corrupt or unsupported archives and entries that try
// to escape the destination directory.
var ErrExtraction = errors.New("archive extraction failed")

// markerFile identifies the directory holding the runnable build.
const markerFile = "index.html"

// Extract unpacks the zip at archivePath into destDir, preserving relative
// structure, then locates the entrypoint directory by depth-first lexical
// search for index.html. If no marker exists anywhere in the tree it returns
// destDir with found=false; callers store the fallback but must surface the
// unresolved state. The source archive is never deleted here; that is the
// caller's responsibility after a confirmed-successful extraction.
func Extract(archivePath, destDir string) (entryDir string, found bool, err error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", false, err
	}

	for _, entry := range reader.File {
		if err := extractEntry(entry, destDir); err != nil {
			return "", false, err
		}
	}

	if dir := findEntrypoint(destDir); dir != "" {
		return dir, true, nil
	}
	return destDir, false, nil
}

func extractEntry(entry *zip.File, destDir string) error {
	target, err := securePath(destDir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return nil
}

// securePath resolves an archive entry name under destDir and rejects
// entries that would escape it (zip-slip).
func securePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	base := filepath.Clean(destDir)
	if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: illegal entry path %q", ErrExtraction, name)
	}
	return target, nil
}

// findEntrypoint walks dir depth-first in lexical order and returns the
// first directory containing the marker file, or "" if none exists.
func findEntrypoint(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
			continue
		}
		if e.Name() == markerFile {
			return dir
		}
	}

	// os.ReadDir returns entries sorted by name, so traversal order is
	// deterministic.
	for _, name := range subdirs {
		if found := findEntrypoint(filepath.Join(dir, name)); found != "" {
			return found
		}
	}
	return ""
}
