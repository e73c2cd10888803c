package visibility

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestEngine(t *testing.T) (*Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "visibility.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db), db
}

func seedGame(t *testing.T, db *gorm.DB, title string, active bool) *models.Game {
	t.Helper()
	game := &models.Game{
		Title:       title,
		Slug:        fmt.Sprintf("game-%s-%d", title, len(title)),
		Description: "d",
		IsActive:    true,
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	if !active {
		// Assigned separately: a zero-valued field with a column default is
		// skipped by Create.
		if err := db.Model(game).Update("is_active", false).Error; err != nil {
			t.Fatal(err)
		}
		game.IsActive = false
	}
	return game
}

func hideSection(t *testing.T, db *gorm.DB, collection string, hidden bool) {
	t.Helper()
	var setting models.VisibilitySetting
	err := db.Where("collection = ?", collection).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.VisibilitySetting{Collection: collection}
	} else if err != nil {
		t.Fatal(err)
	}
	setting.HideSection = hidden
	if err := db.Save(&setting).Error; err != nil {
		t.Fatal(err)
	}
}

func TestActiveCategories(t *testing.T) {
	engine, db := newTestEngine(t)

	for _, c := range []models.Category{
		{Name: "Racing"},
		{Name: "Puzzle"},
		{Name: "Arcade", HideCategory: true},
	} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatal(err)
		}
	}

	categories, err := engine.ActiveCategories()
	if err != nil {
		t.Fatalf("ActiveCategories: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Puzzle" || categories[1].Name != "Racing" {
		t.Errorf("unexpected visible set: %+v", categories)
	}

	// Hiding the whole section empties the set without touching rows.
	hideSection(t, db, models.CollectionCategories, true)
	categories, err = engine.ActiveCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 0 {
		t.Errorf("hidden section returned %d items", len(categories))
	}

	// Unhiding restores the same set.
	hideSection(t, db, models.CollectionCategories, false)
	categories, err = engine.ActiveCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 2 {
		t.Errorf("restored section returned %d items, want 2", len(categories))
	}
}

func TestActiveTags(t *testing.T) {
	engine, db := newTestEngine(t)

	for _, tag := range []models.Tag{
		{Name: "new", Color: models.DefaultTagColor},
		{Name: "hot", Color: models.DefaultTagColor, HideTag: true},
	} {
		if err := db.Create(&tag).Error; err != nil {
			t.Fatal(err)
		}
	}

	tags, err := engine.ActiveTags()
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 || tags[0].Name != "new" {
		t.Errorf("unexpected visible tags: %+v", tags)
	}

	hideSection(t, db, models.CollectionTags, true)
	tags, err = engine.ActiveTags()
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 0 {
		t.Errorf("hidden tag section returned %d items", len(tags))
	}
}

func TestActiveComingSoon(t *testing.T) {
	engine, db := newTestEngine(t)

	for _, entry := range []models.ComingSoon{
		{Name: "Sky Racer", IconPath: "a.png"},
		{Name: "Block Drop", IconPath: "b.png", HideGame: true},
	} {
		if err := db.Create(&entry).Error; err != nil {
			t.Fatal(err)
		}
	}

	entries, err := engine.ActiveComingSoon()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "Sky Racer" {
		t.Errorf("unexpected visible entries: %+v", entries)
	}
}

func TestActiveFeatureGamesDropsMissingAndInactive(t *testing.T) {
	engine, db := newTestEngine(t)

	active := seedGame(t, db, "Active", true)
	inactive := seedGame(t, db, "Inactive", false)

	slots := []models.FeatureGame{
		{GameID: active.ID, Position: 1},
		{GameID: inactive.ID, Position: 2},
		{GameID: 999, Position: 3}, // dangling reference
	}
	for i := range slots {
		if err := db.Create(&slots[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	visible, err := engine.ActiveFeatureGames()
	if err != nil {
		t.Fatalf("ActiveFeatureGames: %v", err)
	}
	if len(visible) != 1 || visible[0].Position != 1 {
		t.Errorf("unexpected visible slots: %+v", visible)
	}
	if visible[0].Game.Title != "Active" {
		t.Errorf("game not preloaded: %+v", visible[0].Game)
	}
}

func TestActiveFeatureGamesSectionHidden(t *testing.T) {
	engine, db := newTestEngine(t)

	game := seedGame(t, db, "Active", true)
	if err := db.Create(&models.FeatureGame{GameID: game.ID, Position: 1}).Error; err != nil {
		t.Fatal(err)
	}

	hideSection(t, db, models.CollectionFeatureGames, true)
	visible, err := engine.ActiveFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 0 {
		t.Errorf("hidden featured section returned %d slots", len(visible))
	}
}

func TestActiveFeatureGamesTagVisibility(t *testing.T) {
	engine, db := newTestEngine(t)

	shown := models.Tag{Name: "new", Color: models.DefaultTagColor}
	hidden := models.Tag{Name: "hot", Color: models.DefaultTagColor, HideTag: true}
	for _, tag := range []*models.Tag{&shown, &hidden} {
		if err := db.Create(tag).Error; err != nil {
			t.Fatal(err)
		}
	}

	first := seedGame(t, db, "First", true)
	second := seedGame(t, db, "Second", true)
	for _, slot := range []models.FeatureGame{
		{GameID: first.ID, TagID: &shown.ID, Position: 1},
		{GameID: second.ID, TagID: &hidden.ID, Position: 2},
	} {
		if err := db.Create(&slot).Error; err != nil {
			t.Fatal(err)
		}
	}

	// A hidden tag nulls out its slot's tag; the slot itself stays.
	visible, err := engine.ActiveFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 2 {
		t.Fatalf("visible slots = %d, want 2", len(visible))
	}
	if visible[0].Tag == nil || visible[0].Tag.Name != "new" {
		t.Errorf("slot 1 should keep its tag: %+v", visible[0].Tag)
	}
	if visible[1].TagID != nil || visible[1].Tag != nil {
		t.Errorf("slot 2 tag should be nulled: %+v", visible[1])
	}

	// Hiding the whole tag section nulls every slot's tag but keeps the slots.
	hideSection(t, db, models.CollectionTags, true)
	visible, err = engine.ActiveFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 2 {
		t.Fatalf("visible slots = %d, want 2 with tag section hidden", len(visible))
	}
	for i, slot := range visible {
		if slot.TagID != nil || slot.Tag != nil {
			t.Errorf("slot %d tag should be nulled with tag section hidden: %+v", i, slot)
		}
	}
}

func TestActiveFeatureGamesDeletedTagNulled(t *testing.T) {
	engine, db := newTestEngine(t)

	game := seedGame(t, db, "Tap Away", true)
	goneTagID := uint(999)
	slot := models.FeatureGame{GameID: game.ID, TagID: &goneTagID, Position: 1}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatal(err)
	}

	// The tag row no longer exists; the slot must not carry a tagId that
	// resolves to nothing.
	visible, err := engine.ActiveFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 1 {
		t.Fatalf("visible slots = %d, want 1", len(visible))
	}
	if visible[0].TagID != nil || visible[0].Tag != nil {
		t.Errorf("stale tag reference should be nulled: %+v", visible[0])
	}
}

func TestCategoryHidingDoesNotHideGames(t *testing.T) {
	engine, db := newTestEngine(t)

	category := models.Category{Name: "Puzzle"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal(err)
	}
	game := seedGame(t, db, "Tap Away", true)
	if err := db.Model(game).Association("Categories").Append(&category); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.FeatureGame{GameID: game.ID, Position: 1}).Error; err != nil {
		t.Fatal(err)
	}

	// Hide the category item and the whole categories section.
	category.HideCategory = true
	if err := db.Save(&category).Error; err != nil {
		t.Fatal(err)
	}
	hideSection(t, db, models.CollectionCategories, true)

	categories, err := engine.ActiveCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 0 {
		t.Errorf("categories should be hidden, got %+v", categories)
	}

	// The game itself remains featured and active.
	visible, err := engine.ActiveFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 1 || visible[0].Game.Title != "Tap Away" {
		t.Errorf("category hiding must not hide games: %+v", visible)
	}
}
