package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeZip builds a zip fixture at a temp path. Entries with a trailing
// slash become directories.
func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "build.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("create entry %q: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %q: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestExtractFindsNestedEntrypoint(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"WebGL Build/index.html":       "<html></html>",
		"WebGL Build/Build/game.wasm":  "wasm",
		"WebGL Build/TemplateData/x.c": "css",
		"readme.txt":                   "notes",
	})

	dest := filepath.Join(t.TempDir(), "out")
	entry, found, err := Extract(zipPath, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !found {
		t.Fatal("expected entrypoint to be found")
	}
	if want := filepath.Join(dest, "WebGL Build"); entry != want {
		t.Errorf("entry = %q, want %q", entry, want)
	}

	if _, err := os.Stat(filepath.Join(dest, "WebGL Build", "Build", "game.wasm")); err != nil {
		t.Errorf("extracted file missing: %v", err)
	}
}

func TestExtractEntrypointAtRoot(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"index.html": "<html></html>",
		"app.js":     "js",
	})

	dest := filepath.Join(t.TempDir(), "out")
	entry, found, err := Extract(zipPath, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !found || entry != dest {
		t.Errorf("entry = %q found=%v, want root %q found", entry, found, dest)
	}
}

func TestExtractPicksLexicallyFirstMarker(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"beta/index.html":  "b",
		"alpha/index.html": "a",
	})

	dest := filepath.Join(t.TempDir(), "out")
	entry, _, err := Extract(zipPath, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if want := filepath.Join(dest, "alpha"); entry != want {
		t.Errorf("entry = %q, want %q", entry, want)
	}
}

func TestExtractNoMarkerFallsBackToRoot(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"assets/logo.png": "png",
	})

	dest := filepath.Join(t.TempDir(), "out")
	entry, found, err := Extract(zipPath, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if found {
		t.Error("expected found=false when no index.html exists")
	}
	if entry != dest {
		t.Errorf("entry = %q, want fallback %q", entry, dest)
	}
}

func TestExtractRejectsZipSlip(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"../evil.sh": "#!/bin/sh",
	})

	dest := filepath.Join(t.TempDir(), "out")
	_, _, err := Extract(zipPath, dest)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil.sh")); statErr == nil {
		t.Error("zip-slip entry was written outside the destination")
	}
}

func TestExtractCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	if err := os.WriteFile(path, []byte("this is not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Extract(path, filepath.Join(t.TempDir(), "out"))
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}
