package models

import "gorm.io/gorm"

// Admin represents a curator of the catalog.
type Admin struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'admin'"`
}
