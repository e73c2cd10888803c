package catalog

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestComingSoonLifecycle(t *testing.T) {
	env := newTestEnv(t)

	entry, err := env.svc.CreateComingSoon("Sky Racer", "coming this fall", icon())
	if err != nil {
		t.Fatalf("CreateComingSoon: %v", err)
	}
	if entry.HideGame {
		t.Error("new entry should not be hidden")
	}
	if _, err := os.Stat(entry.IconPath); err != nil {
		t.Errorf("icon missing on disk: %v", err)
	}

	oldIcon := entry.IconPath
	newIcon := &UploadedFile{Reader: strings.NewReader("new-png"), Filename: "v2.png"}
	name := "Sky Racer 2"
	updated, err := env.svc.UpdateComingSoon(entry.ID, &name, nil, newIcon)
	if err != nil {
		t.Fatalf("UpdateComingSoon: %v", err)
	}
	if updated.Name != "Sky Racer 2" || updated.Description != "coming this fall" {
		t.Errorf("partial update wrong: %+v", updated)
	}
	if updated.IconPath == oldIcon {
		t.Error("icon path not replaced")
	}
	if _, err := os.Stat(oldIcon); !os.IsNotExist(err) {
		t.Error("old icon still on disk after replacement")
	}

	if err := env.svc.DeleteComingSoon(entry.ID); err != nil {
		t.Fatalf("DeleteComingSoon: %v", err)
	}
	if _, err := os.Stat(updated.IconPath); !os.IsNotExist(err) {
		t.Error("icon still on disk after delete")
	}
	if err := env.svc.DeleteComingSoon(entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestCreateComingSoonValidation(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.svc.CreateComingSoon("  ", "d", icon()); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name: expected ErrValidation, got %v", err)
	}
	if _, err := env.svc.CreateComingSoon("Sky Racer", "d", nil); !errors.Is(err, ErrMissingFile) {
		t.Errorf("missing icon: expected ErrMissingFile, got %v", err)
	}
}

func TestSetComingSoonHidden(t *testing.T) {
	env := newTestEnv(t)

	entry, err := env.svc.CreateComingSoon("Sky Racer", "d", icon())
	if err != nil {
		t.Fatal(err)
	}

	hidden, err := env.svc.SetComingSoonHidden(entry.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !hidden.HideGame {
		t.Error("HideGame not set")
	}

	shown, err := env.svc.SetComingSoonHidden(entry.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if shown.HideGame {
		t.Error("HideGame not cleared")
	}
}
