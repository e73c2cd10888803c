package catalog

import (
	"errors"
	"testing"

	"gamevault/backend/internal/models"
)

func TestCategoryCRUD(t *testing.T) {
	env := newTestEnv(t)

	category, err := env.svc.CreateCategory("  Puzzle  ", " brain teasers ")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.Name != "Puzzle" || category.Description != "brain teasers" {
		t.Errorf("fields not trimmed: %+v", category)
	}
	if category.HideCategory {
		t.Error("new category should not be hidden")
	}

	if _, err := env.svc.CreateCategory("Puzzle", ""); !errors.Is(err, ErrNameExists) {
		t.Errorf("expected ErrNameExists, got %v", err)
	}
	if _, err := env.svc.CreateCategory("   ", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for blank name, got %v", err)
	}

	updated, err := env.svc.UpdateCategory(category.ID, "Arcade", nil)
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.Name != "Arcade" || updated.Description != "brain teasers" {
		t.Errorf("rename should keep description: %+v", updated)
	}

	if err := env.svc.DeleteCategory(category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if err := env.svc.DeleteCategory(category.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeat delete, got %v", err)
	}

	// A deleted category's name is free again.
	if _, err := env.svc.CreateCategory("Arcade", ""); err != nil {
		t.Errorf("deleted name should be reusable: %v", err)
	}
}

func TestUpdateCategoryDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.svc.CreateCategory("Puzzle", ""); err != nil {
		t.Fatal(err)
	}
	other, err := env.svc.CreateCategory("Arcade", "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.svc.UpdateCategory(other.ID, "Puzzle", nil); !errors.Is(err, ErrNameExists) {
		t.Errorf("expected ErrNameExists, got %v", err)
	}
}

func TestListCategoriesSortedAndUnfiltered(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range []string{"Racing", "Arcade", "Puzzle"} {
		if _, err := env.svc.CreateCategory(name, ""); err != nil {
			t.Fatal(err)
		}
	}
	existing, err := env.svc.ListCategories()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.SetCategoryHidden(existing[1].ID, true); err != nil {
		t.Fatal(err)
	}

	categories, err := env.svc.ListCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 3 {
		t.Fatalf("admin list must include hidden items, got %d", len(categories))
	}
	want := []string{"Arcade", "Puzzle", "Racing"}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, categories[i].Name, name)
		}
	}
}

func TestCreateTagNormalization(t *testing.T) {
	env := newTestEnv(t)

	tag, err := env.svc.CreateTag("  NEW  ", "")
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	if tag.Name != "new" {
		t.Errorf("name = %q, want lowercase new", tag.Name)
	}
	if tag.Color != models.DefaultTagColor {
		t.Errorf("color = %q, want default %q", tag.Color, models.DefaultTagColor)
	}

	// Case-insensitive uniqueness via normalization.
	if _, err := env.svc.CreateTag("New", "#ff0000"); !errors.Is(err, ErrNameExists) {
		t.Errorf("expected ErrNameExists, got %v", err)
	}
}

func TestTagColorValidation(t *testing.T) {
	env := newTestEnv(t)

	for _, color := range []string{"#abc", "#AABBCC", "#9945ff"} {
		if _, err := env.svc.CreateTag("tag-"+color, color); err != nil {
			t.Errorf("color %q rejected: %v", color, err)
		}
	}
	for _, color := range []string{"red", "#12", "#12345g", "9945ff"} {
		if _, err := env.svc.CreateTag("bad-"+color, color); !errors.Is(err, ErrValidation) {
			t.Errorf("color %q accepted, want ErrValidation", color)
		}
	}
}

func TestUpdateTagKeepsColorWhenOmitted(t *testing.T) {
	env := newTestEnv(t)

	tag, err := env.svc.CreateTag("hot", "#ff0000")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := env.svc.UpdateTag(tag.ID, "Trending", "")
	if err != nil {
		t.Fatalf("UpdateTag: %v", err)
	}
	if updated.Name != "trending" {
		t.Errorf("name = %q, want trending", updated.Name)
	}
	if updated.Color != "#ff0000" {
		t.Errorf("omitted color should be kept, got %q", updated.Color)
	}
}

func TestSetTagHidden(t *testing.T) {
	env := newTestEnv(t)

	tag, err := env.svc.CreateTag("new", "")
	if err != nil {
		t.Fatal(err)
	}

	hidden, err := env.svc.SetTagHidden(tag.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !hidden.HideTag {
		t.Error("HideTag not set")
	}

	if _, err := env.svc.SetTagHidden(999, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
