package models

import "gorm.io/gorm"

// Collection names accepted by the section-hide endpoints.
const (
	CollectionCategories   = "categories"
	CollectionTags         = "tags"
	CollectionComingSoon   = "comingSoon"
	CollectionFeatureGames = "featureGames"
)

// VisibilitySetting stores the section-wide hide flag for one collection as
// a single row, keyed by collection name. A missing row means the section is
// visible.
type VisibilitySetting struct {
	gorm.Model
	Collection  string `gorm:"size:100;unique;not null"`
	HideSection bool   `gorm:"not null;default:false"`
}

// KnownCollection reports whether name is one of the hideable collections.
func KnownCollection(name string) bool {
	switch name {
	case CollectionCategories, CollectionTags, CollectionComingSoon, CollectionFeatureGames:
		return true
	}
	return false
}
