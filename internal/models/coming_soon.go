package models

import "gorm.io/gorm"

// ComingSoon is a teaser entry for an unreleased game. It carries only an
// icon, no playable build.
type ComingSoon struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Description string
	IconPath    string `gorm:"size:512;not null"`
	HideGame    bool   `gorm:"not null;default:false"`
}
