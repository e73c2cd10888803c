package catalog

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"gamevault/backend/internal/models"
)

// CreateComingSoon adds a teaser entry with its icon, following the same
// stage-then-persist discipline as game ingestion.
func (s *Service) CreateComingSoon(name, description string, icon *UploadedFile) (*models.ComingSoon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if icon == nil {
		return nil, fmt.Errorf("%w: icon file is required", ErrMissingFile)
	}

	iconPath, err := s.store.StageIcon(icon.Reader, name, filepath.Ext(icon.Filename))
	if err != nil {
		return nil, err
	}

	entry := &models.ComingSoon{
		Name:        name,
		Description: strings.TrimSpace(description),
		IconPath:    iconPath,
	}
	if err := s.db.Create(entry).Error; err != nil {
		s.rollback(iconPath)
		return nil, err
	}
	return entry, nil
}

// UpdateComingSoon applies the non-nil fields. A new icon replaces the old
// one only after the database write succeeds.
func (s *Service) UpdateComingSoon(id uint, name, description *string, icon *UploadedFile) (*models.ComingSoon, error) {
	var entry models.ComingSoon
	if err := s.db.First(&entry, id).Error; err != nil {
		return nil, notFound(err)
	}

	oldIconPath := entry.IconPath

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		entry.Name = trimmed
	}
	if description != nil {
		entry.Description = strings.TrimSpace(*description)
	}

	var newIconPath string
	if icon != nil {
		path, err := s.store.StageIcon(icon.Reader, entry.Name, filepath.Ext(icon.Filename))
		if err != nil {
			return nil, err
		}
		newIconPath = path
		entry.IconPath = path
	}

	if err := s.db.Save(&entry).Error; err != nil {
		s.rollback(newIconPath)
		return nil, err
	}

	if newIconPath != "" {
		if err := s.store.Replace(oldIconPath, newIconPath); err != nil {
			log.Printf("warning: could not remove replaced icon: %v", err)
		}
	}
	return &entry, nil
}

// DeleteComingSoon hard-deletes the row, then best-effort deletes the icon.
func (s *Service) DeleteComingSoon(id uint) error {
	var entry models.ComingSoon
	if err := s.db.First(&entry, id).Error; err != nil {
		return notFound(err)
	}

	if err := s.db.Unscoped().Delete(&entry).Error; err != nil {
		return err
	}

	if err := s.store.Discard(entry.IconPath); err != nil {
		log.Printf("warning: could not remove icon for deleted coming-soon %d: %v", id, err)
	}
	return nil
}

// ListComingSoon returns every teaser entry sorted by name, unfiltered.
func (s *Service) ListComingSoon() ([]models.ComingSoon, error) {
	var entries []models.ComingSoon
	if err := s.db.Order("name").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SetComingSoonHidden sets the per-item hide flag on one teaser entry.
func (s *Service) SetComingSoonHidden(id uint, hidden bool) (*models.ComingSoon, error) {
	var entry models.ComingSoon
	if err := s.db.First(&entry, id).Error; err != nil {
		return nil, notFound(err)
	}
	entry.HideGame = hidden
	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
