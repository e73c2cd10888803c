// Package catalog creates, updates, and deletes catalog records, keeping
// the database and the asset store consistent around every mutation: on any
// failure everything staged for the attempt is discarded, and old assets are
// removed only after the write referencing their replacements has succeeded.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gamevault/backend/internal/archive"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/slug"
	"gamevault/backend/internal/storage"

	"gorm.io/gorm"
)

// Service orchestrates catalog mutations over the database and asset store.
type Service struct {
	db    *gorm.DB
	store *storage.AssetStore
}

// New creates a catalog service.
func New(db *gorm.DB, store *storage.AssetStore) *Service {
	return &Service{db: db, store: store}
}

// UploadedFile carries an uploaded file's content and original filename,
// used for icons streamed straight into the asset store.
type UploadedFile struct {
	Reader   io.Reader
	Filename string
}

// CreateGameInput holds the fields of an ingestion request. ArchivePath
// points at the uploaded zip already spooled to scratch disk.
type CreateGameInput struct {
	Title       string
	Description string
	Orientation string
	CategoryIDs []uint
	Icon        *UploadedFile
	ArchivePath string
}

// UpdateGameInput applies only the fields that are non-nil, so omit, clear,
// and set are distinct states. CategoryIDs non-nil fully replaces the
// category set; an explicit empty slice clears it.
type UpdateGameInput struct {
	Title       *string
	Description *string
	Orientation *string
	CategoryIDs *[]uint
	Icon        *UploadedFile
	ArchivePath *string
}

// CreateGame ingests a new game: stages the icon, extracts the archive into
// a fresh build directory, derives a collision-free slug, and persists the
// record. On any failure after staging has begun, every staged path is
// discarded before the error is returned.
func (s *Service) CreateGame(in CreateGameInput) (*models.Game, error) {
	if in.Title == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	if in.Icon == nil || in.ArchivePath == "" {
		return nil, fmt.Errorf("%w: both icon and zip file are required", ErrMissingFile)
	}

	// Cheap pre-check before any file I/O. The unique index remains the
	// authoritative guard under concurrent creates.
	var count int64
	if err := s.db.Model(&models.Game{}).Where("title = ?", in.Title).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateTitle
	}

	categories, err := s.categoriesByID(in.CategoryIDs)
	if err != nil {
		return nil, err
	}

	iconPath, err := s.store.StageIcon(in.Icon.Reader, in.Title, filepath.Ext(in.Icon.Filename))
	if err != nil {
		return nil, err
	}

	buildRoot := s.store.NewBuildPath(in.Title)
	entryDir, entryFound, err := archive.Extract(in.ArchivePath, buildRoot)
	if err != nil {
		s.rollback(iconPath, buildRoot)
		return nil, err
	}

	// Extraction is confirmed; the scratch archive is no longer needed.
	if err := os.Remove(in.ArchivePath); err != nil {
		log.Printf("warning: could not remove uploaded archive %s: %v", in.ArchivePath, err)
	}

	slugs, err := s.slugSnapshot(0)
	if err != nil {
		s.rollback(iconPath, buildRoot)
		return nil, err
	}

	game := &models.Game{
		Title:             in.Title,
		Slug:              slug.GenerateUnique(in.Title, slugs),
		Description:       in.Description,
		Orientation:       in.Orientation,
		IconPath:          iconPath,
		BuildEntryPath:    entryDir,
		ExtractRootPath:   buildRoot,
		EntrypointMissing: !entryFound,
		IsActive:          true,
		Categories:        categories,
	}

	if err := s.db.Create(game).Error; err != nil {
		s.rollback(iconPath, buildRoot)
		return nil, translateDup(err, ErrDuplicateTitle)
	}
	return game, nil
}

// UpdateGame applies a partial update. A title change re-checks uniqueness
// against all other rows and regenerates the slug. Icon and archive
// replacements stage the new asset first and delete the old one only after
// the database write succeeds.
func (s *Service) UpdateGame(id uint, in UpdateGameInput) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		return nil, notFound(err)
	}

	oldIconPath := game.IconPath
	oldExtractRoot := game.ExtractRootPath

	if in.Title != nil && *in.Title != game.Title {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		var count int64
		if err := s.db.Model(&models.Game{}).Where("title = ? AND id <> ?", *in.Title, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateTitle
		}

		slugs, err := s.slugSnapshot(id)
		if err != nil {
			return nil, err
		}
		game.Title = *in.Title
		game.Slug = slug.GenerateUnique(*in.Title, slugs)
	}
	if in.Description != nil {
		game.Description = *in.Description
	}
	if in.Orientation != nil {
		game.Orientation = *in.Orientation
	}

	var categories []*models.Category
	if in.CategoryIDs != nil {
		var err error
		if categories, err = s.categoriesByID(*in.CategoryIDs); err != nil {
			return nil, err
		}
		if categories == nil {
			// Key present with no ids clears the set.
			categories = []*models.Category{}
		}
	}

	var newIconPath, newBuildRoot string
	if in.Icon != nil {
		path, err := s.store.StageIcon(in.Icon.Reader, game.Title, filepath.Ext(in.Icon.Filename))
		if err != nil {
			return nil, err
		}
		newIconPath = path
		game.IconPath = path
	}

	if in.ArchivePath != nil {
		newBuildRoot = s.store.NewBuildPath(game.Title)
		entryDir, entryFound, err := archive.Extract(*in.ArchivePath, newBuildRoot)
		if err != nil {
			s.rollback(newIconPath, newBuildRoot)
			return nil, err
		}
		if err := os.Remove(*in.ArchivePath); err != nil {
			log.Printf("warning: could not remove uploaded archive %s: %v", *in.ArchivePath, err)
		}
		game.BuildEntryPath = entryDir
		game.ExtractRootPath = newBuildRoot
		game.EntrypointMissing = !entryFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&game).Error; err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			return tx.Model(&game).Association("Categories").Replace(categories)
		}
		return nil
	})
	if err != nil {
		s.rollback(newIconPath, newBuildRoot)
		return nil, translateDup(err, ErrDuplicateTitle)
	}

	// The row now references the new assets; the superseded ones can go.
	if newIconPath != "" {
		if err := s.store.Replace(oldIconPath, newIconPath); err != nil {
			log.Printf("warning: could not remove replaced icon: %v", err)
		}
	}
	if newBuildRoot != "" {
		if err := s.store.Replace(oldExtractRoot, newBuildRoot); err != nil {
			log.Printf("warning: could not remove replaced build tree: %v", err)
		}
	}

	if err := s.db.Preload("Categories").First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// ToggleGameActive flips the active flag. No file-system effect.
func (s *Service) ToggleGameActive(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		return nil, notFound(err)
	}
	game.IsActive = !game.IsActive
	if err := s.db.Save(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame removes the catalog row, then best-effort deletes the icon and
// the entire extracted tree. File-system failures are logged, not surfaced:
// once the row is gone the delete is authoritative. The delete is a hard
// delete; a retained row would keep holding the unique title and slug.
func (s *Service) DeleteGame(id uint) error {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		return notFound(err)
	}

	if err := s.db.Unscoped().Select("Categories").Delete(&game).Error; err != nil {
		return err
	}

	if err := s.store.Discard(game.IconPath); err != nil {
		log.Printf("warning: could not remove icon for deleted game %d: %v", id, err)
	}
	if err := s.store.Discard(game.ExtractRootPath); err != nil {
		log.Printf("warning: could not remove build tree for deleted game %d: %v", id, err)
	}
	return nil
}

// GetGame resolves a game by slug first, falling back to a numeric id for
// backward compatibility with pre-slug links.
func (s *Service) GetGame(slugOrID string) (*models.Game, error) {
	var game models.Game
	err := s.db.Preload("Categories").Where("slug = ?", slugOrID).First(&game).Error
	if err == nil {
		return &game, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if id, convErr := strconv.ParseUint(slugOrID, 10, 32); convErr == nil {
		err = s.db.Preload("Categories").First(&game, uint(id)).Error
		if err == nil {
			return &game, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

// ListGames returns one page of games with the total row count.
func (s *Service) ListGames(page, limit int) ([]models.Game, int64, error) {
	var total int64
	if err := s.db.Model(&models.Game{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var games []models.Game
	offset := (page - 1) * limit
	err := s.db.Preload("Categories").Offset(offset).Limit(limit).Order("id").Find(&games).Error
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

// slugSnapshot returns the set of slugs currently in use, excluding the
// given game id (0 excludes nothing).
func (s *Service) slugSnapshot(excludeID uint) (map[string]bool, error) {
	query := s.db.Model(&models.Game{})
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var slugs []string
	if err := query.Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return set, nil
}

func (s *Service) categoriesByID(ids []uint) ([]*models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []*models.Category
	if err := s.db.Find(&categories, ids).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, fmt.Errorf("%w: unknown category id", ErrValidation)
	}
	return categories, nil
}

// rollback discards everything staged by a failed attempt. Failures here
// are logged; the original error is what the caller reports.
func (s *Service) rollback(paths ...string) {
	for _, p := range paths {
		if err := s.store.Discard(p); err != nil {
			log.Printf("warning: rollback could not remove %s: %v", p, err)
		}
	}
}
