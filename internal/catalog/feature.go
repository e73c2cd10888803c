package catalog

import (
	"errors"
	"fmt"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// FeatureGameUpsert is the decoded create-or-update request for a featured
// slot. A non-nil ID makes it an update of that row; otherwise it creates a
// new one. The admin frontend relies on this single-endpoint shape.
type FeatureGameUpsert struct {
	ID       *uint
	GameID   uint
	TagID    *uint
	Position int
}

// UpsertFeatureGame validates the referenced game (required) and tag
// (optional), enforces position uniqueness, and creates or updates the slot.
// An update keeping its own position is allowed; any other occupant of the
// position is ErrPositionTaken.
func (s *Service) UpsertFeatureGame(in FeatureGameUpsert) (*models.FeatureGame, error) {
	if in.Position < 1 {
		return nil, fmt.Errorf("%w: position must be a positive integer", ErrValidation)
	}

	var game models.Game
	if err := s.db.First(&game, in.GameID).Error; err != nil {
		return nil, notFound(err)
	}
	if in.TagID != nil {
		var tag models.Tag
		if err := s.db.First(&tag, *in.TagID).Error; err != nil {
			return nil, notFound(err)
		}
	}

	var occupant models.FeatureGame
	err := s.db.Where("position = ?", in.Position).First(&occupant).Error
	switch {
	case err == nil:
		if in.ID == nil || occupant.ID != *in.ID {
			return nil, ErrPositionTaken
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var slot models.FeatureGame
	if in.ID != nil {
		if err := s.db.First(&slot, *in.ID).Error; err != nil {
			return nil, notFound(err)
		}
	}
	slot.GameID = in.GameID
	slot.TagID = in.TagID
	slot.Position = in.Position

	if err := s.db.Save(&slot).Error; err != nil {
		return nil, translateDup(err, ErrPositionTaken)
	}

	if err := s.db.Preload("Game").Preload("Tag").First(&slot, slot.ID).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// DeleteFeatureGame hard-deletes a featured slot by id, freeing its
// position for reuse.
func (s *Service) DeleteFeatureGame(id uint) error {
	result := s.db.Unscoped().Delete(&models.FeatureGame{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFeatureGameByPosition removes whichever slot occupies position.
func (s *Service) DeleteFeatureGameByPosition(position int) error {
	if position < 1 {
		return fmt.Errorf("%w: position must be a positive integer", ErrValidation)
	}
	result := s.db.Unscoped().Where("position = ?", position).Delete(&models.FeatureGame{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFeatureGames returns every slot ordered by position, unfiltered, with
// game and tag preloaded for the admin grid.
func (s *Service) ListFeatureGames() ([]models.FeatureGame, error) {
	var slots []models.FeatureGame
	if err := s.db.Preload("Game").Preload("Tag").Order("position").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
