package models

import "gorm.io/gorm"

// Category groups games on the public site (e.g. "Puzzle", "Arcade").
type Category struct {
	gorm.Model
	Name        string `gorm:"size:255;unique;not null"`
	Description string
	// HideCategory hides this one category from public views without
	// touching the rest of the collection.
	HideCategory bool `gorm:"not null;default:false"`
}
