package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"gamevault/backend/internal/models"
)

// hexColor matches #rgb and #rrggbb tag colors.
var hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategory adds a category with a unique name.
func (s *Service) CreateCategory(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := &models.Category{Name: name, Description: strings.TrimSpace(description)}
	if err := s.db.Create(category).Error; err != nil {
		return nil, translateDup(err, ErrNameExists)
	}
	return category, nil
}

// UpdateCategory renames a category and optionally changes its description.
func (s *Service) UpdateCategory(id uint, name string, description *string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}

	category.Name = name
	if description != nil {
		category.Description = strings.TrimSpace(*description)
	}
	if err := s.db.Save(&category).Error; err != nil {
		return nil, translateDup(err, ErrNameExists)
	}
	return &category, nil
}

// DeleteCategory hard-deletes a category, freeing its name for reuse.
// Games referencing it simply lose the association.
func (s *Service) DeleteCategory(id uint) error {
	result := s.db.Unscoped().Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns every category sorted by name, unfiltered.
func (s *Service) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory looks up one category by id.
func (s *Service) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

// SetCategoryHidden sets the per-item hide flag on one category.
func (s *Service) SetCategoryHidden(id uint, hidden bool) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}
	category.HideCategory = hidden
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateTag adds a tag. Names are normalized to lowercase; an empty color
// gets the default.
func (s *Service) CreateTag(name, color string) (*models.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}
	if color == "" {
		color = models.DefaultTagColor
	} else if !hexColor.MatchString(color) {
		return nil, fmt.Errorf("%w: invalid color format, use hex (e.g. %s)", ErrValidation, models.DefaultTagColor)
	}

	tag := &models.Tag{Name: name, Color: color}
	if err := s.db.Create(tag).Error; err != nil {
		return nil, translateDup(err, ErrNameExists)
	}
	return tag, nil
}

// UpdateTag renames a tag and optionally changes its color.
func (s *Service) UpdateTag(id uint, name, color string) (*models.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}
	if color != "" && !hexColor.MatchString(color) {
		return nil, fmt.Errorf("%w: invalid color format, use hex (e.g. %s)", ErrValidation, models.DefaultTagColor)
	}

	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, notFound(err)
	}

	tag.Name = name
	if color != "" {
		tag.Color = color
	}
	if err := s.db.Save(&tag).Error; err != nil {
		return nil, translateDup(err, ErrNameExists)
	}
	return &tag, nil
}

// DeleteTag hard-deletes a tag, freeing its name for reuse. Featured slots
// referencing it keep their game and fall back to the no-tag state on read.
func (s *Service) DeleteTag(id uint) error {
	result := s.db.Unscoped().Delete(&models.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTags returns every tag sorted by name, unfiltered.
func (s *Service) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// SetTagHidden sets the per-item hide flag on one tag.
func (s *Service) SetTagHidden(id uint, hidden bool) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, notFound(err)
	}
	tag.HideTag = hidden
	if err := s.db.Save(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
