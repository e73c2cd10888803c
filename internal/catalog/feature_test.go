package catalog

import (
	"errors"
	"fmt"
	"testing"
)

func (env *testEnv) seedGame(t *testing.T, title string) uint {
	t.Helper()
	game, err := env.svc.CreateGame(CreateGameInput{
		Title:       title,
		Description: "d",
		Icon:        icon(),
		ArchivePath: env.makeBuildZip(t),
	})
	if err != nil {
		t.Fatalf("seed game %q: %v", title, err)
	}
	return game.ID
}

func TestUpsertFeatureGameCreate(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t, "Tap Away")

	tag, err := env.svc.CreateTag("new", "")
	if err != nil {
		t.Fatal(err)
	}

	slot, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{
		GameID:   gameID,
		TagID:    &tag.ID,
		Position: 1,
	})
	if err != nil {
		t.Fatalf("UpsertFeatureGame: %v", err)
	}
	if slot.Position != 1 || slot.Game.ID != gameID {
		t.Errorf("unexpected slot %+v", slot)
	}
	if slot.Tag == nil || slot.Tag.Name != "new" {
		t.Errorf("tag not preloaded: %+v", slot.Tag)
	}
}

func TestUpsertFeatureGamePositionConflict(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedGame(t, "First")
	second := env.seedGame(t, "Second")

	slot, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: first, Position: 1})
	if err != nil {
		t.Fatal(err)
	}

	// A create targeting an occupied position is rejected.
	_, err = env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: second, Position: 1})
	if !errors.Is(err, ErrPositionTaken) {
		t.Fatalf("expected ErrPositionTaken, got %v", err)
	}

	// An update of the occupant itself may keep its position.
	updated, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{
		ID:       &slot.ID,
		GameID:   second,
		Position: 1,
	})
	if err != nil {
		t.Fatalf("self-update rejected: %v", err)
	}
	if updated.ID != slot.ID || updated.GameID != second {
		t.Errorf("unexpected slot after update: %+v", updated)
	}

	slots, err := env.svc.ListFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Errorf("slot count = %d, want 1", len(slots))
	}
}

func TestUpsertFeatureGameMoveOntoOtherSlot(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedGame(t, "First")
	second := env.seedGame(t, "Second")

	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: first, Position: 1}); err != nil {
		t.Fatal(err)
	}
	slot2, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: second, Position: 2})
	if err != nil {
		t.Fatal(err)
	}

	// Moving slot 2 onto position 1 collides with a different row.
	_, err = env.svc.UpsertFeatureGame(FeatureGameUpsert{ID: &slot2.ID, GameID: second, Position: 1})
	if !errors.Is(err, ErrPositionTaken) {
		t.Errorf("expected ErrPositionTaken, got %v", err)
	}
}

func TestUpsertFeatureGameValidation(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t, "Tap Away")

	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: gameID, Position: 0}); !errors.Is(err, ErrValidation) {
		t.Errorf("position 0: expected ErrValidation, got %v", err)
	}
	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: gameID, Position: -3}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative position: expected ErrValidation, got %v", err)
	}

	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: 999, Position: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing game: expected ErrNotFound, got %v", err)
	}

	missingTag := uint(999)
	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: gameID, TagID: &missingTag, Position: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing tag: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFeatureGameByPosition(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t, "Tap Away")

	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: gameID, Position: 3}); err != nil {
		t.Fatal(err)
	}

	if err := env.svc.DeleteFeatureGameByPosition(3); err != nil {
		t.Fatalf("DeleteFeatureGameByPosition: %v", err)
	}
	if err := env.svc.DeleteFeatureGameByPosition(3); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty position, got %v", err)
	}
	if err := env.svc.DeleteFeatureGameByPosition(0); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for position 0, got %v", err)
	}
}

func TestFeatureGamePositionReusableAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedGame(t, "First")
	second := env.seedGame(t, "Second")

	slot, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: first, Position: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := env.svc.DeleteFeatureGame(slot.ID); err != nil {
		t.Fatal(err)
	}

	// The freed position must accept a new slot.
	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: second, Position: 1}); err != nil {
		t.Fatalf("deleted slot's position should be reusable: %v", err)
	}

	// Same after delete-by-position.
	if err := env.svc.DeleteFeatureGameByPosition(1); err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: first, Position: 1}); err != nil {
		t.Fatalf("position freed by delete-by-position should be reusable: %v", err)
	}
}

func TestListFeatureGamesOrderedByPosition(t *testing.T) {
	env := newTestEnv(t)

	for i, pos := range []int{5, 2, 9} {
		gameID := env.seedGame(t, fmt.Sprintf("Game %d", i))
		if _, err := env.svc.UpsertFeatureGame(FeatureGameUpsert{GameID: gameID, Position: pos}); err != nil {
			t.Fatal(err)
		}
	}

	slots, err := env.svc.ListFeatureGames()
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 5, 9}
	for i, pos := range want {
		if slots[i].Position != pos {
			t.Errorf("slot %d position = %d, want %d", i, slots[i].Position, pos)
		}
	}
}
