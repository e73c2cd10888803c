package models

import "gorm.io/gorm"

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#9945ff"

// Tag labels featured slots (e.g. "hot", "new"). Names are stored lowercase.
type Tag struct {
	gorm.Model
	Name    string `gorm:"size:100;unique;not null"`
	Color   string `gorm:"size:7;not null;default:'#9945ff'"`
	HideTag bool   `gorm:"not null;default:false"`
}
