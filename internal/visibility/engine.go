// Package visibility computes the effective visible sets consumed by the
// public site, composing section-wide hide flags, per-item hide flags, and
// foreign-key validity.
package visibility

import (
	"errors"
	"fmt"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// ErrQueryFailed wraps any lookup error hit while composing a view. Partial
// results are never returned.
var ErrQueryFailed = errors.New("visibility query failed")

// Engine reads the catalog collections and their visibility settings.
type Engine struct {
	db *gorm.DB
}

// New creates a visibility engine.
func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// ActiveCategories returns the publicly visible categories sorted by name.
// A hidden section yields an empty set regardless of item flags.
func (e *Engine) ActiveCategories() ([]models.Category, error) {
	hidden, err := e.sectionHidden(models.CollectionCategories)
	if err != nil {
		return nil, err
	}
	if hidden {
		return []models.Category{}, nil
	}

	var categories []models.Category
	if err := e.db.Where("hide_category = ?", false).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return categories, nil
}

// ActiveTags returns the publicly visible tags sorted by name.
func (e *Engine) ActiveTags() ([]models.Tag, error) {
	hidden, err := e.sectionHidden(models.CollectionTags)
	if err != nil {
		return nil, err
	}
	if hidden {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	if err := e.db.Where("hide_tag = ?", false).Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return tags, nil
}

// ActiveComingSoon returns the publicly visible teaser entries sorted by name.
func (e *Engine) ActiveComingSoon() ([]models.ComingSoon, error) {
	hidden, err := e.sectionHidden(models.CollectionComingSoon)
	if err != nil {
		return nil, err
	}
	if hidden {
		return []models.ComingSoon{}, nil
	}

	var entries []models.ComingSoon
	if err := e.db.Where("hide_game = ?", false).Order("name").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return entries, nil
}

// ActiveFeatureGames returns the featured slots fit for public display,
// ordered by position. Slots whose game is missing or inactive are dropped.
// A hidden featured section yields an empty set. A hidden tag section nulls
// out every slot's tag while the slots themselves stay visible; otherwise
// individually hidden or deleted tags are nulled per slot.
func (e *Engine) ActiveFeatureGames() ([]models.FeatureGame, error) {
	sectionHidden, err := e.sectionHidden(models.CollectionFeatureGames)
	if err != nil {
		return nil, err
	}
	if sectionHidden {
		return []models.FeatureGame{}, nil
	}

	tagsHidden, err := e.sectionHidden(models.CollectionTags)
	if err != nil {
		return nil, err
	}

	var slots []models.FeatureGame
	err = e.db.Preload("Game").Preload("Tag").Order("position").Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	visible := make([]models.FeatureGame, 0, len(slots))
	for _, slot := range slots {
		if slot.Game.ID == 0 || !slot.Game.IsActive {
			continue
		}
		tagGone := slot.TagID != nil && slot.Tag == nil
		if tagsHidden || tagGone || (slot.Tag != nil && slot.Tag.HideTag) {
			slot.TagID = nil
			slot.Tag = nil
		}
		visible = append(visible, slot)
	}
	return visible, nil
}

func (e *Engine) sectionHidden(collection string) (bool, error) {
	var setting models.VisibilitySetting
	err := e.db.Where("collection = ?", collection).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return setting.HideSection, nil
}
