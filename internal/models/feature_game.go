package models

import "gorm.io/gorm"

// FeatureGame pins a game into a featured slot on the public landing page.
// Position is unique across all slots. The tag is optional; "no tag" is a
// valid state.
type FeatureGame struct {
	gorm.Model
	GameID   uint  `gorm:"not null;index"`
	TagID    *uint `gorm:"index"`
	Position int   `gorm:"not null;unique"`

	Game Game `gorm:"foreignKey:GameID"`
	Tag  *Tag `gorm:"foreignKey:TagID"`
}
