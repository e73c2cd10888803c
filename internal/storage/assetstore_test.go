package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *AssetStore {
	t.Helper()
	root := t.TempDir()
	store, err := New(filepath.Join(root, "icons"), filepath.Join(root, "builds"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestStageIcon(t *testing.T) {
	store := newTestStore(t)

	path, err := store.StageIcon(strings.NewReader("png-bytes"), "Tap Away!", ".png")
	if err != nil {
		t.Fatalf("StageIcon: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read staged icon: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("staged content = %q", data)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "Tap_Away_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("unexpected staged name %q", base)
	}
}

func TestNewBuildPathIsUnique(t *testing.T) {
	store := newTestStore(t)

	a := store.NewBuildPath("Tap Away")
	b := store.NewBuildPath("Tap Away")
	if a == b {
		t.Errorf("expected distinct build paths, both %q", a)
	}
}

func TestDiscardIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	dir := store.NewBuildPath("game")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := store.Discard(dir); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory still present after Discard")
	}

	// Second discard of a missing path must not error.
	if err := store.Discard(dir); err != nil {
		t.Fatalf("Discard (repeat): %v", err)
	}
	if err := store.Discard(""); err != nil {
		t.Fatalf("Discard (empty): %v", err)
	}
}

func TestReplaceKeepsIdenticalPath(t *testing.T) {
	store := newTestStore(t)

	path, err := store.StageIcon(strings.NewReader("x"), "icon", ".png")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Replace(path, path); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("Replace removed a path that was not superseded")
	}

	other, err := store.StageIcon(strings.NewReader("y"), "icon", ".png")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Replace(path, other); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("old path still present after Replace")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Tap Away!", "Tap_Away_"},
		{"simple", "simple"},
		{"???", "game"},
		{"", "game"},
	}
	for _, c := range cases {
		if got := SanitizeName(c.in); got != c.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
