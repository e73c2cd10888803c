package catalog

import (
	"errors"
	"fmt"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// SetSectionHidden sets the collection-wide hide flag for one collection,
// stored as a single settings row rather than smeared across every item.
func (s *Service) SetSectionHidden(collection string, hidden bool) error {
	if !models.KnownCollection(collection) {
		return fmt.Errorf("%w: unknown collection %q", ErrValidation, collection)
	}

	var setting models.VisibilitySetting
	err := s.db.Where("collection = ?", collection).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.VisibilitySetting{Collection: collection, HideSection: hidden}
		return s.db.Create(&setting).Error
	case err != nil:
		return err
	}

	setting.HideSection = hidden
	return s.db.Save(&setting).Error
}

// SectionHidden reports the collection-wide hide flag. A missing settings
// row means visible.
func (s *Service) SectionHidden(collection string) (bool, error) {
	if !models.KnownCollection(collection) {
		return false, fmt.Errorf("%w: unknown collection %q", ErrValidation, collection)
	}

	var setting models.VisibilitySetting
	err := s.db.Where("collection = ?", collection).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return setting.HideSection, nil
}
