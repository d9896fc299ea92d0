package models

import "time"

type Tag struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	Category  string
	CreatedAt time.Time
}

// DocumentTag associates a document with a tag; OrganizationID is copied
// from the document, never chosen independently.
type DocumentTag struct {
	DocID          int `gorm:"primaryKey;not null"`
	TagID          int `gorm:"primaryKey;not null"`
	OrganizationID int `gorm:"index;not null"`
}
