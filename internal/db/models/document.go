package models

import "time"

// Document's OrganizationID is always the owner's organization, and
// LastModifiedAt is strictly after CreatedAt.
type Document struct {
	ID                   int    `gorm:"primaryKey"`
	Name                 string `gorm:"not null"`
	Size                 int    // KB
	PageCount            int
	Path                 string
	ConfidentialityLevel string `gorm:"not null"` // Policy.LevelName
	IsPasswordProtected  bool
	OwnerUserID          int `gorm:"index;not null"`
	OrganizationID       int `gorm:"index;not null"`
	CreatedAt            time.Time
	LastModifiedAt       time.Time
}
