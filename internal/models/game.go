package models

import "gorm.io/gorm"

// Game represents a published browser-playable game package.
type Game struct {
	gorm.Model
	Title       string `gorm:"size:255;unique;not null"`
	Slug        string `gorm:"size:255;unique;not null"`
	Description string
	IconPath    string `gorm:"size:512;not null"`
	// BuildEntryPath is the directory holding the playable index.html.
	// Always a descendant of (or equal to) ExtractRootPath.
	BuildEntryPath  string `gorm:"size:512;not null"`
	ExtractRootPath string `gorm:"size:512;not null"`
	// EntrypointMissing marks games whose archive contained no index.html;
	// the extraction root was stored as a fallback and the player will 404.
	EntrypointMissing bool
	Orientation       string      `gorm:"size:50"`
	IsActive          bool        `gorm:"not null;default:true"`
	Categories        []*Category `gorm:"many2many:game_categories;"`
}
